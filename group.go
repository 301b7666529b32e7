package goargs

import (
	"fmt"
	"strings"

	"github.com/napalu/goargs/types"
)

// Group is a cosmetic argument group used to structure usage output. Its
// arguments register on the owning parser; the group only records
// membership.
type Group struct {
	title       string
	description string
	parser      *Parser
	arguments   []*Argument
}

// AddGroup creates a cosmetic group. Parent inheritance merges groups with
// equal titles.
func (p *Parser) AddGroup(title, description string) *Group {
	g := &Group{title: title, description: description, parser: p}
	p.groups = append(p.groups, g)
	return g
}

func (p *Parser) findGroup(title string) *Group {
	for _, g := range p.groups {
		if g.title == title {
			return g
		}
	}
	return nil
}

// Title returns the group title.
func (g *Group) Title() string { return g.title }

// Arguments returns the group members in registration order.
func (g *Group) Arguments() []*Argument {
	out := make([]*Argument, len(g.arguments))
	copy(out, g.arguments)
	return out
}

// AddArgument registers an argument on the owning parser and records it as a
// member of this group.
func (g *Group) AddArgument(arg *Argument, names ...string) error {
	return g.parser.addArgument(arg, names, g, nil)
}

// ConstraintGroup is a node in the constraint tree: its children are
// argument leaves or nested groups, and its kind decides when the node is
// satisfied. Top-level groups self-register as cross-tests at creation, so
// they run after matching in source order relative to explicit cross-tests.
type ConstraintGroup struct {
	kind      types.GroupKind
	label     string
	required  bool
	parser    *Parser
	parent    *ConstraintGroup
	members   []constraintMember
	predicate GroupTestFunc
}

type constraintMember struct {
	arg   *Argument
	group *ConstraintGroup
}

// AddConstraintGroup creates a top-level constraint group of the given kind.
// A required group must be satisfied by every parse. The label names the
// group in error messages; empty falls back to the member list.
func (p *Parser) AddConstraintGroup(kind types.GroupKind, label string, required bool) *ConstraintGroup {
	g := &ConstraintGroup{kind: kind, label: label, required: required, parser: p}
	p.constraintGroups = append(p.constraintGroups, g)
	name := label
	if name == "" {
		name = kind.String() + " group"
	}
	p.AddCrossTest(name, g.crossTest)
	return g
}

// AddExclusiveGroup creates a top-level group allowing at most one member.
func (p *Parser) AddExclusiveGroup(label string, required bool) *ConstraintGroup {
	return p.AddConstraintGroup(types.Exclusive, label, required)
}

// AddInclusiveGroup creates a top-level group requiring all members once any
// member is present.
func (p *Parser) AddInclusiveGroup(label string, required bool) *ConstraintGroup {
	return p.AddConstraintGroup(types.Inclusive, label, required)
}

// AddAnyGroup creates a top-level group satisfied by at least one member.
func (p *Parser) AddAnyGroup(label string, required bool) *ConstraintGroup {
	return p.AddConstraintGroup(types.AnyOf, label, required)
}

// AddCustomGroup creates a top-level group whose satisfaction is decided by
// test, which receives the ordered seen sequence.
func (p *Parser) AddCustomGroup(label string, required bool, test GroupTestFunc) *ConstraintGroup {
	g := p.AddConstraintGroup(types.Custom, label, required)
	g.predicate = test
	return g
}

// AddNestedGroup creates a child constraint node. A satisfied child counts
// as one seen member of its parent. Nested under a Negated parent, children
// are evaluated for satisfaction only and raise no errors of their own.
func (g *ConstraintGroup) AddNestedGroup(kind types.GroupKind, label string) *ConstraintGroup {
	child := &ConstraintGroup{kind: kind, label: label, parser: g.parser, parent: g}
	g.members = append(g.members, constraintMember{group: child})
	return child
}

// AddCustomNestedGroup creates a child node driven by test.
func (g *ConstraintGroup) AddCustomNestedGroup(label string, test GroupTestFunc) *ConstraintGroup {
	child := g.AddNestedGroup(types.Custom, label)
	child.predicate = test
	return child
}

// AddArgument registers a new argument on the owning parser and makes it a
// leaf of this node. Exclusive nodes reject required arguments.
func (g *ConstraintGroup) AddArgument(arg *Argument, names ...string) error {
	if err := g.parser.addArgument(arg, names, nil, g); err != nil {
		return err
	}
	g.members = append(g.members, constraintMember{arg: arg})
	return nil
}

// AddMember makes an already registered argument a leaf of this node, so one
// argument can participate in several groups.
func (g *ConstraintGroup) AddMember(arg *Argument) error {
	if arg == nil {
		return configErr("nil argument")
	}
	if existing, ok := g.parser.dests[arg.Dest]; !ok || existing != arg {
		return fmt.Errorf("%w: %s", types.ErrArgumentNotFound, arg.Dest)
	}
	if g.kind == types.Exclusive && g.parser.argumentRequired(arg) {
		return fmt.Errorf("%w: %s", types.ErrRequiredInExclusiveGroup, arg.name())
	}
	g.members = append(g.members, constraintMember{arg: arg})
	return nil
}

// Members returns the node's argument leaves, nested groups excluded.
func (g *ConstraintGroup) Members() []*Argument {
	var out []*Argument
	for _, m := range g.members {
		if m.arg != nil {
			out = append(out, m.arg)
		}
	}
	return out
}

func (g *ConstraintGroup) crossTest(p *Parser, seen []*Argument) error {
	seenSet := make(map[*Argument]bool, len(seen))
	for _, a := range seen {
		seenSet[a] = true
	}
	_, err := g.evaluate(p, seenSet, seen, true)
	return err
}

// evaluate returns whether the node is satisfied by the seen set. With
// enforce set, a violated invariant yields a user-facing error; children of
// a Negated node are never enforced, only consulted.
func (g *ConstraintGroup) evaluate(p *Parser, seenSet map[*Argument]bool, seen []*Argument, enforce bool) (bool, error) {
	enforceChild := enforce && g.kind != types.Negated
	count := 0
	for _, m := range g.members {
		if m.arg != nil {
			if seenSet[m.arg] {
				count++
			}
			continue
		}
		sat, err := m.group.evaluate(p, seenSet, seen, enforceChild)
		if err != nil {
			return false, err
		}
		if sat {
			count++
		}
	}

	switch g.kind {
	case types.Exclusive:
		if enforce && count > 1 {
			return false, g.violation("only one of the arguments [%s] is allowed")
		}
		if enforce && g.required && count == 0 {
			return false, g.violation("one of the arguments [%s] is required")
		}
		return count == 1, nil
	case types.Inclusive:
		total := len(g.members)
		if enforce && count > 0 && count < total {
			return false, g.violation("all of the arguments [%s] are required")
		}
		if enforce && g.required && count == 0 {
			return false, g.violation("all of the arguments [%s] are required")
		}
		return total > 0 && count == total, nil
	case types.AnyOf:
		if enforce && g.required && count == 0 {
			return false, g.violation("at least one of the arguments [%s] is required")
		}
		return count > 0, nil
	case types.Negated:
		sat := count == 0
		if enforce && g.required && !sat {
			return false, g.violation("the arguments [%s] are not allowed in this combination")
		}
		return sat, nil
	case types.Custom:
		if g.predicate == nil {
			return false, nil
		}
		sat, err := g.predicate(p, seen)
		if err != nil {
			return false, fmt.Errorf("%w: %v", types.ErrGroupConstraint, err)
		}
		if enforce && g.required && !sat {
			return false, g.violation("the arguments [%s] do not satisfy the constraint")
		}
		return sat, nil
	default:
		return false, fmt.Errorf("%w: unknown group kind %d", types.ErrGroupConstraint, int(g.kind))
	}
}

func (g *ConstraintGroup) violation(format string) error {
	msg := fmt.Sprintf(format, g.memberLabel())
	if g.label != "" {
		msg = g.label + ": " + msg
	}
	return fmt.Errorf("%w: %s", types.ErrGroupConstraint, msg)
}

func (g *ConstraintGroup) memberLabel() string {
	parts := make([]string, 0, len(g.members))
	for _, m := range g.members {
		if m.arg != nil {
			parts = append(parts, m.arg.name())
			continue
		}
		parts = append(parts, "("+m.group.memberLabel()+")")
	}
	return strings.Join(parts, ", ")
}
