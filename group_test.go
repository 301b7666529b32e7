package goargs

import (
	"errors"
	"testing"

	"github.com/napalu/goargs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exclusivePair(t *testing.T, required bool) *Parser {
	t.Helper()
	p := NewParser()
	g := p.AddExclusiveGroup("output", required)
	require.NoError(t, g.AddArgument(NewArg(WithType(types.StoreTrue)), "-a"))
	require.NoError(t, g.AddArgument(NewArg(WithType(types.StoreTrue)), "-b"))
	return p
}

func TestGroup_Exclusive(t *testing.T) {
	p := exclusivePair(t, false)

	_, err := p.Parse(nil)
	assert.NoError(t, err, "an optional exclusive group accepts absence")

	_, err = p.Parse([]string{"-a"})
	assert.NoError(t, err)

	_, err = p.Parse([]string{"-a", "-b"})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrGroupConstraint)
	assert.Contains(t, err.Error(), "only one of the arguments")
}

func TestGroup_ExclusiveRequired(t *testing.T) {
	p := exclusivePair(t, true)

	_, err := p.Parse(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrGroupConstraint)
	assert.Contains(t, err.Error(), "one of the arguments")

	_, err = p.Parse([]string{"-b"})
	assert.NoError(t, err)
}

func TestGroup_ExclusiveRejectsRequiredArgument(t *testing.T) {
	p := NewParser()
	g := p.AddExclusiveGroup("", false)
	err := g.AddArgument(NewArg(SetRequired(true)), "--must")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrRequiredInExclusiveGroup)
}

func TestGroup_Inclusive(t *testing.T) {
	p := NewParser()
	g := p.AddInclusiveGroup("", false)
	require.NoError(t, g.AddArgument(NewArg(), "--host"))
	require.NoError(t, g.AddArgument(NewArg(), "--port"))

	_, err := p.Parse(nil)
	assert.NoError(t, err, "an inclusive group accepts total absence")

	_, err = p.Parse([]string{"--host", "h"})
	require.Error(t, err, "a partial inclusive group must fail")
	assert.ErrorIs(t, err, types.ErrGroupConstraint)
	assert.Contains(t, err.Error(), "all of the arguments")

	_, err = p.Parse([]string{"--host", "h", "--port", "80"})
	assert.NoError(t, err)
}

func TestGroup_AnyOfRequired(t *testing.T) {
	p := NewParser()
	g := p.AddAnyGroup("", true)
	require.NoError(t, g.AddArgument(NewArg(WithType(types.StoreTrue)), "-x"))
	require.NoError(t, g.AddArgument(NewArg(WithType(types.StoreTrue)), "-y"))

	_, err := p.Parse(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one of the arguments")

	_, err = p.Parse([]string{"-x"})
	assert.NoError(t, err)

	_, err = p.Parse([]string{"-x", "-y"})
	assert.NoError(t, err, "any-of permits several members")
}

func TestGroup_NestedSatisfiedChildCountsAsOne(t *testing.T) {
	p := NewParser()
	outer := p.AddExclusiveGroup("", false)
	require.NoError(t, outer.AddArgument(NewArg(WithType(types.StoreTrue)), "-s"))
	inner := outer.AddNestedGroup(types.Inclusive, "")
	require.NoError(t, p.AddArgument(NewArg(WithType(types.StoreTrue)), "-u"))
	require.NoError(t, p.AddArgument(NewArg(WithType(types.StoreTrue)), "-v"))
	ua, err := p.Lookup("u")
	require.NoError(t, err)
	va, err := p.Lookup("v")
	require.NoError(t, err)
	require.NoError(t, inner.AddMember(ua))
	require.NoError(t, inner.AddMember(va))

	_, err = p.Parse([]string{"-u", "-v"})
	assert.NoError(t, err, "a satisfied nested group alone is one exclusive member")

	_, err = p.Parse([]string{"-s", "-u", "-v"})
	require.Error(t, err, "the satisfied nested group plus a leaf breaks exclusivity")
	assert.ErrorIs(t, err, types.ErrGroupConstraint)
}

func TestGroup_NegatedExpressesNand(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.AddArgument(NewArg(WithType(types.StoreTrue)), "-a"))
	require.NoError(t, p.AddArgument(NewArg(WithType(types.StoreTrue)), "-b"))
	aa, err := p.Lookup("a")
	require.NoError(t, err)
	ba, err := p.Lookup("b")
	require.NoError(t, err)

	nand := p.AddConstraintGroup(types.Negated, "nand", true)
	inner := nand.AddNestedGroup(types.Inclusive, "")
	require.NoError(t, inner.AddMember(aa))
	require.NoError(t, inner.AddMember(ba))

	_, err = p.Parse(nil)
	assert.NoError(t, err)
	_, err = p.Parse([]string{"-a"})
	assert.NoError(t, err, "a single member must not trip the negated inclusive")
	_, err = p.Parse([]string{"-a", "-b"})
	require.Error(t, err, "both members together violate the negation")
	assert.ErrorIs(t, err, types.ErrGroupConstraint)
}

func TestGroup_CustomPredicate(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.AddArgument(NewArg(WithConverter(AsInt), WithDefault(0)), "--level"))
	p.AddCustomGroup("level sanity", true, func(parser *Parser, seen []*Argument) (bool, error) {
		for _, a := range seen {
			if a.Dest == "level" {
				return true, nil
			}
		}
		return false, errors.New("a level must be given")
	})

	_, err := p.Parse([]string{"--level", "3"})
	assert.NoError(t, err)

	_, err = p.Parse(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrGroupConstraint)
	assert.Contains(t, err.Error(), "a level must be given")
}

func TestGroup_CrossTestsRunInRegistrationOrder(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.AddArgument(NewArg(WithType(types.StoreTrue)), "-a"))

	var order []string
	p.AddCrossTest("first", func(parser *Parser, seen []*Argument) error {
		order = append(order, "first")
		return nil
	})
	p.AddCrossTest("second", func(parser *Parser, seen []*Argument) error {
		order = append(order, "second")
		return errors.New("stop here")
	})
	p.AddCrossTest("third", func(parser *Parser, seen []*Argument) error {
		order = append(order, "third")
		return nil
	})

	_, err := p.Parse([]string{"-a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stop here")
	assert.Equal(t, []string{"first", "second"}, order,
		"the first failing cross-test aborts the chain")
}

func TestGroup_SeenSequenceIsOrdered(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.AddArgument(NewArg(WithType(types.StoreTrue)), "-a"))
	require.NoError(t, p.AddArgument(NewArg(WithType(types.StoreTrue)), "-b"))

	var got []string
	p.AddCrossTest("record", func(parser *Parser, seen []*Argument) error {
		for _, a := range seen {
			got = append(got, a.Dest)
		}
		return nil
	})

	_, err := p.Parse([]string{"-b", "-a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, got,
		"cross-tests see arguments in encounter order")
}
