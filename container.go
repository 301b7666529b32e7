package goargs

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/napalu/goargs/types"
)

var negNumPattern = regexp.MustCompile(`^-\d+$|^-\d*\.\d+$`)

// AddArgument registers an argument under the given names. Names carrying a
// prefix rune register option strings; a single unprefixed name registers a
// positional. The destination is derived from the first long option string
// (else the first name) through the parser's dest converter, unless the
// argument sets Dest explicitly.
func (p *Parser) AddArgument(arg *Argument, names ...string) error {
	return p.addArgument(arg, names, nil, nil)
}

func (p *Parser) addArgument(arg *Argument, names []string, group *Group, cgroup *ConstraintGroup) error {
	if arg == nil {
		return configErr("nil argument")
	}
	arg.ensureInit()
	if len(names) == 0 {
		return configErr("at least one name is required")
	}

	var optionals, positionals []string
	for _, name := range names {
		if p.isOptionName(name) {
			optionals = append(optionals, name)
		} else {
			positionals = append(positionals, name)
		}
	}
	switch {
	case len(positionals) > 0 && len(optionals) > 0:
		return fmt.Errorf("%w: cannot mix positional and option names: %s",
			types.ErrInvalidOptionName, strings.Join(names, ", "))
	case len(positionals) > 1:
		return fmt.Errorf("%w: a positional takes a single name, got %s",
			types.ErrInvalidOptionName, strings.Join(names, ", "))
	case len(positionals) == 1:
		arg.OptionStrings = nil
		if arg.Dest == "" {
			arg.Dest = p.destConverter(positionals[0])
		}
	default:
		arg.OptionStrings = optionals
		if arg.Dest == "" {
			dest, err := p.deriveDest(optionals)
			if err != nil {
				return err
			}
			arg.Dest = dest
		}
	}
	if arg.Dest == "" {
		return fmt.Errorf("%w: empty destination derived from %s",
			types.ErrInvalidOptionName, strings.Join(names, ", "))
	}
	if arg.TypeOf == types.SubCommand && arg.Arity.Kind == types.ArityOne {
		arg.Arity = types.Command()
	}
	if err := arg.validate(); err != nil {
		return err
	}
	if cgroup != nil && cgroup.kind == types.Exclusive && p.argumentRequired(arg) {
		return fmt.Errorf("%w: %s", types.ErrRequiredInExclusiveGroup, arg.name())
	}
	if err := p.resolveConflicts(arg); err != nil {
		return err
	}
	// checked after conflict resolution so a full replacement clears its dest
	if existing, ok := p.dests[arg.Dest]; ok && existing != arg {
		return fmt.Errorf("%w: %s", types.ErrDuplicateDestination, arg.Dest)
	}
	p.register(arg, group)
	return nil
}

// argumentRequired reports whether the argument must appear: explicitly
// required, or a positional whose arity cannot match an empty span.
func (p *Parser) argumentRequired(a *Argument) bool {
	if a.Required {
		return true
	}
	if !a.isPositional() {
		return false
	}
	switch a.effectiveArity().Kind {
	case types.ArityOptional, types.ArityZeroOrMore, types.ArityRemainder:
		return false
	case types.ArityRange:
		return a.effectiveArity().Min > 0
	case types.ArityExact:
		return a.effectiveArity().Count > 0
	default:
		return true
	}
}

func (p *Parser) isOptionName(name string) bool {
	if name == "" {
		return false
	}
	return p.isPrefixRune([]rune(name)[0])
}

func (p *Parser) isPrefixRune(r rune) bool {
	for _, pr := range p.prefixes {
		if r == pr {
			return true
		}
	}
	return false
}

// deriveDest picks the first long option string, falling back to the first
// name, strips its prefix runes and applies the dest converter.
func (p *Parser) deriveDest(optionals []string) (string, error) {
	source := optionals[0]
	for _, name := range optionals {
		runes := []rune(name)
		if len(runes) > 1 && p.isPrefixRune(runes[0]) && p.isPrefixRune(runes[1]) {
			source = name
			break
		}
	}
	stripped := strings.TrimLeftFunc(source, p.isPrefixRune)
	if stripped == "" {
		return "", fmt.Errorf("%w: %s", types.ErrInvalidOptionName, source)
	}
	return p.destConverter(stripped), nil
}

func (p *Parser) register(arg *Argument, group *Group) {
	arg.owners = append(arg.owners, ownerRef{parser: p, group: group})
	p.arguments = append(p.arguments, arg)
	p.dests[arg.Dest] = arg
	for _, os := range arg.OptionStrings {
		p.optionIndex.Set(os, arg)
		if negNumPattern.MatchString(os) {
			p.hasNegNumOptions = true
		}
	}
	if group != nil {
		group.arguments = append(group.arguments, arg)
	}
}

// resolveConflicts applies the configured conflict policy to every option
// string the new argument shares with an already registered one.
func (p *Parser) resolveConflicts(arg *Argument) error {
	type collision struct {
		optionString string
		existing     *Argument
	}
	var collisions []collision
	for _, os := range arg.OptionStrings {
		if v, ok := p.optionIndex.Get(os); ok {
			if existing := v.(*Argument); existing != arg {
				collisions = append(collisions, collision{optionString: os, existing: existing})
			}
		}
	}
	if len(collisions) == 0 {
		return nil
	}

	switch p.conflictPolicy {
	case types.ConflictError:
		parts := make([]string, len(collisions))
		for i, c := range collisions {
			parts[i] = c.optionString
		}
		return argErrf(arg, types.ErrConflictingOption, "%s", strings.Join(parts, ", "))
	case types.ConflictReplace:
		for _, c := range collisions {
			p.detachOptionString(c.existing, c.optionString)
		}
		return nil
	case types.ConflictInherit:
		handled := map[*Argument]bool{}
		for _, c := range collisions {
			if c.existing.ownerParserCount() > 1 {
				if !handled[c.existing] {
					p.removeFromParser(c.existing)
					handled[c.existing] = true
				}
				continue
			}
			p.detachOptionString(c.existing, c.optionString)
		}
		return nil
	default:
		return fmt.Errorf("%w: %d", types.ErrInvalidConflictPolicy, int(p.conflictPolicy))
	}
}

// detachOptionString removes one spelling from an argument; an argument left
// with no spellings is removed from every owner.
func (p *Parser) detachOptionString(a *Argument, optionString string) {
	kept := a.OptionStrings[:0]
	for _, os := range a.OptionStrings {
		if os != optionString {
			kept = append(kept, os)
		}
	}
	a.OptionStrings = kept
	if v, ok := p.optionIndex.Get(optionString); ok && v.(*Argument) == a {
		p.optionIndex.Delete(optionString)
	}
	if len(a.OptionStrings) == 0 {
		owners := append([]ownerRef(nil), a.owners...)
		for _, o := range owners {
			o.parser.removeFromParser(a)
		}
	}
}

func (a *Argument) ownerParserCount() int {
	seen := map[*Parser]bool{}
	for _, o := range a.owners {
		seen[o.parser] = true
	}
	return len(seen)
}

// removeFromParser subtracts this parser's ownership edges for a, leaving
// every other owner untouched.
func (p *Parser) removeFromParser(a *Argument) {
	kept := a.owners[:0]
	var droppedGroups []*Group
	for _, o := range a.owners {
		if o.parser == p {
			if o.group != nil {
				droppedGroups = append(droppedGroups, o.group)
			}
			continue
		}
		kept = append(kept, o)
	}
	a.owners = kept

	args := p.arguments[:0]
	for _, existing := range p.arguments {
		if existing != a {
			args = append(args, existing)
		}
	}
	p.arguments = args

	for _, os := range a.OptionStrings {
		if v, ok := p.optionIndex.Get(os); ok && v.(*Argument) == a {
			p.optionIndex.Delete(os)
		}
	}
	if p.dests[a.Dest] == a {
		delete(p.dests, a.Dest)
	}
	for _, g := range droppedGroups {
		members := g.arguments[:0]
		for _, m := range g.arguments {
			if m != a {
				members = append(members, m)
			}
		}
		g.arguments = members
	}
}

// AddParent adopts every argument of parent by reference, merging cosmetic
// groups by title and appending parent's cross-tests in their registration
// order. Adopted arguments gain an ownership edge on this parser; they are
// never copied or reparented.
func (p *Parser) AddParent(parent *Parser) error {
	if parent == p {
		return configErr("a parser cannot be its own parent")
	}
	groupMap := map[*Group]*Group{}
	for _, g := range parent.groups {
		target := p.findGroup(g.title)
		if target == nil {
			target = p.AddGroup(g.title, g.description)
		}
		groupMap[g] = target
	}
	for _, a := range parent.arguments {
		var target *Group
		for _, o := range a.owners {
			if o.parser == parent && o.group != nil {
				target = groupMap[o.group]
				break
			}
		}
		if err := p.adoptArgument(a, target); err != nil {
			return err
		}
	}
	for dest, value := range parent.defaults {
		if _, ok := p.defaults[dest]; !ok {
			p.defaults[dest] = value
		}
	}
	p.constraintGroups = append(p.constraintGroups, parent.constraintGroups...)
	p.crossTests = append(p.crossTests, parent.crossTests...)
	return nil
}

func (p *Parser) adoptArgument(a *Argument, group *Group) error {
	if existing, ok := p.dests[a.Dest]; ok && existing != a {
		return fmt.Errorf("%w: %s", types.ErrDuplicateDestination, a.Dest)
	}
	if err := p.resolveConflicts(a); err != nil {
		return err
	}
	p.register(a, group)
	return nil
}
