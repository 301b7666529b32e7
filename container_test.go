package goargs

import (
	"testing"

	"github.com/napalu/goargs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_ConflictErrorPolicy(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.AddArgument(NewArg(), "-f", "--foo"))

	err := p.AddArgument(NewArg(WithDest("foo2")), "--foo")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrConflictingOption)
	assert.Contains(t, err.Error(), "--foo")
}

func TestContainer_ConflictReplaceDetachesSpelling(t *testing.T) {
	p, err := NewCmdLine(WithConflictPolicy(types.ConflictReplace))
	require.NoError(t, err)

	old := NewArg()
	require.NoError(t, p.AddArgument(old, "-f", "--foo"))
	require.NoError(t, p.AddArgument(NewArg(WithDest("foo_new")), "--foo"))

	assert.Equal(t, []string{"-f"}, old.OptionStrings,
		"the old argument keeps only its unchallenged spelling")

	res, err := p.Parse([]string{"--foo", "x", "-f", "y"})
	require.NoError(t, err)
	v, _ := res.GetString("foo_new")
	assert.Equal(t, "x", v)
	w, _ := res.GetString("foo")
	assert.Equal(t, "y", w)
}

func TestContainer_ConflictReplaceRemovesEmptiedArgument(t *testing.T) {
	p, err := NewCmdLine(WithConflictPolicy(types.ConflictReplace))
	require.NoError(t, err)

	old := NewArg()
	require.NoError(t, p.AddArgument(old, "--foo"))
	require.NoError(t, p.AddArgument(NewArg(), "--foo"))

	assert.Len(t, p.Arguments(), 1, "an argument stripped of every spelling is removed")
	current, err := p.Lookup("foo")
	require.NoError(t, err)
	assert.NotSame(t, old, current)
}

func TestContainer_ConflictInheritKeepsSharedParentIntact(t *testing.T) {
	parent := NewParser()
	require.NoError(t, parent.AddArgument(NewArg(), "--foo"))

	child1, err := NewCmdLine(WithConflictPolicy(types.ConflictInherit), WithParents(parent))
	require.NoError(t, err)
	child2, err := NewCmdLine(WithConflictPolicy(types.ConflictInherit), WithParents(parent))
	require.NoError(t, err)

	own := NewArg(WithConverter(AsInt))
	require.NoError(t, child1.AddArgument(own, "--foo"))

	res, err := child1.Parse([]string{"--foo", "7"})
	require.NoError(t, err)
	n, ok := res.GetInt("foo")
	assert.True(t, ok, "child1 should resolve --foo to its own argument")
	assert.Equal(t, 7, n)

	res, err = child2.Parse([]string{"--foo", "7"})
	require.NoError(t, err)
	s, ok := res.GetString("foo")
	assert.True(t, ok, "child2 must still see the shared parent argument")
	assert.Equal(t, "7", s)

	res, err = parent.Parse([]string{"--foo", "7"})
	require.NoError(t, err)
	s, _ = res.GetString("foo")
	assert.Equal(t, "7", s, "the parent's own view is never mutated")
}

func TestContainer_ConflictInheritSingleOwnerReplaces(t *testing.T) {
	p, err := NewCmdLine(WithConflictPolicy(types.ConflictInherit))
	require.NoError(t, err)

	old := NewArg()
	require.NoError(t, p.AddArgument(old, "--foo"))
	require.NoError(t, p.AddArgument(NewArg(WithConverter(AsInt)), "--foo"))

	res, err := p.Parse([]string{"--foo", "5"})
	require.NoError(t, err)
	n, ok := res.GetInt("foo")
	assert.True(t, ok, "a single-owner collision degrades to replacement")
	assert.Equal(t, 5, n)
}

func TestContainer_DuplicateDestination(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.AddArgument(NewArg(), "--foo"))

	err := p.AddArgument(NewArg(WithDest("foo")), "--bar")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrDuplicateDestination)
}

func TestContainer_DestDerivation(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.AddArgument(NewArg(), "-x", "--my-option"))

	a, err := p.Lookup("my_option")
	require.NoError(t, err, "the long spelling drives the destination, dashes becoming underscores")
	assert.Equal(t, []string{"-x", "--my-option"}, a.OptionStrings)

	camel, err := NewCmdLine(WithDestConverter(ToLowerCamel))
	require.NoError(t, err)
	require.NoError(t, camel.AddArgument(NewArg(), "--my-option"))
	_, err = camel.Lookup("myOption")
	assert.NoError(t, err)
}

func TestContainer_MixedNamesRejected(t *testing.T) {
	p := NewParser()
	err := p.AddArgument(NewArg(), "--foo", "bar")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidOptionName)
}

func TestContainer_AddParentMergesGroupsByTitle(t *testing.T) {
	parent := NewParser()
	pg := parent.AddGroup("common", "shared settings")
	require.NoError(t, pg.AddArgument(NewArg(), "--shared"))

	child := NewParser()
	cg := child.AddGroup("common", "")
	require.NoError(t, cg.AddArgument(NewArg(), "--own"))
	require.NoError(t, child.AddParent(parent))

	assert.Len(t, child.groups, 1, "same-titled groups merge instead of duplicating")
	members := cg.Arguments()
	require.Len(t, members, 2)
	assert.Equal(t, "own", members[0].Dest)
	assert.Equal(t, "shared", members[1].Dest)

	res, err := child.Parse([]string{"--shared", "v"})
	require.NoError(t, err)
	v, _ := res.GetString("shared")
	assert.Equal(t, "v", v)
}

func TestContainer_AddParentCarriesCrossTests(t *testing.T) {
	parent := NewParser()
	g := parent.AddExclusiveGroup("", false)
	require.NoError(t, g.AddArgument(NewArg(WithType(types.StoreTrue)), "-a"))
	require.NoError(t, g.AddArgument(NewArg(WithType(types.StoreTrue)), "-b"))

	child, err := NewCmdLine(WithParents(parent))
	require.NoError(t, err)

	_, err = child.Parse([]string{"-a", "-b"})
	require.Error(t, err, "the parent's exclusive constraint must hold on the child")
	assert.ErrorIs(t, err, types.ErrGroupConstraint)
}

func TestContainer_PositionalImplicitlyRequired(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.AddArgument(NewArg(), "name"))
	require.NoError(t, p.AddArgument(NewArg(WithArity(types.ZeroOrMore())), "rest"))

	_, err := p.Parse(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrMissingRequired)
	assert.Contains(t, err.Error(), "name")
	assert.NotContains(t, err.Error(), "rest",
		"a zero-or-more positional is satisfied by an empty span")
}

func TestArgument_ValidationErrors(t *testing.T) {
	p := NewParser()

	err := p.AddArgument(NewArg(
		WithType(types.StoreTrue), WithArity(types.Exact(2))), "--flag")
	require.Error(t, err, "flag actions cannot carry an arity")
	assert.ErrorIs(t, err, types.ErrConfiguration)

	err = p.AddArgument(NewArg(WithType(types.StoreConst)), "--c")
	require.Error(t, err, "store-const needs a const value")
	assert.ErrorIs(t, err, types.ErrConfiguration)

	bad := &Argument{}
	e := bad.Set(WithArity(types.Between(3, 1)))
	require.Error(t, e)
	assert.ErrorIs(t, e, types.ErrInvalidArity)
}
