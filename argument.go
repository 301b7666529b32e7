package goargs

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/napalu/goargs/types"
)

// Argument describes a single command-line argument: how it is spelled, how
// many values it claims, how raw tokens become typed values and where the
// result is stored.
type Argument struct {
	// OptionStrings holds the prefixed spellings; empty for a positional.
	OptionStrings []string
	// Dest is the key the parse result is stored under.
	Dest string
	// TypeOf selects the action applied on a match.
	TypeOf types.ActionType
	// Arity determines how many values are claimed per occurrence.
	Arity types.Arity
	// Const is stored by StoreConst/AppendConst and by an Optional arity
	// option seen without a value.
	Const interface{}
	// Default is stored when the argument never appears. A string default
	// paired with a converter is converted once, after matching.
	Default interface{}
	// Converter turns each raw token into a typed value; nil keeps strings.
	Converter types.ConvertFunc
	// Choices restricts converted values to a closed set.
	Choices []interface{}
	// Required reports the argument as missing when absent.
	Required bool
	// Requires lists destinations that become required once this argument
	// is seen. The promotion is per-parse and never alters configuration.
	Requires []string
	// Help is the usage description.
	Help string
	// Metavar overrides the value placeholder in usage output.
	Metavar string

	owners   []ownerRef
	matchers [2]*regexp.Regexp
}

func (a *Argument) ensureInit() {
	if a.OptionStrings == nil {
		a.OptionStrings = []string{}
	}
}

// isPositional reports whether the argument is matched by position rather
// than by option string.
func (a *Argument) isPositional() bool {
	return len(a.OptionStrings) == 0
}

// name returns the identity used in error and usage output: the joined
// option strings, or the metavar/destination for positionals.
func (a *Argument) name() string {
	if len(a.OptionStrings) > 0 {
		return strings.Join(a.OptionStrings, "/")
	}
	if a.Metavar != "" {
		return a.Metavar
	}
	return a.Dest
}

// metavarName returns the placeholder shown for claimed values.
func (a *Argument) metavarName() string {
	if a.Metavar != "" {
		return a.Metavar
	}
	if a.isPositional() {
		return a.Dest
	}
	return strings.ToUpper(DefaultDestConverter(a.Dest))
}

// effectiveArity returns the arity the matcher uses. Flag-style actions
// always claim zero values regardless of the configured arity.
func (a *Argument) effectiveArity() types.Arity {
	if !a.TypeOf.TakesValue() {
		return types.Exact(0)
	}
	if a.TypeOf == types.SubCommand {
		return types.Command()
	}
	return a.Arity
}

// matcher returns the compiled symbol pattern for the argument, caching per
// variant. Index 0 is the greedy form, 1 the lazy form used for slot sharing.
func (a *Argument) matcher(lazy bool) *regexp.Regexp {
	idx := 0
	if lazy {
		idx = 1
	}
	if a.matchers[idx] == nil {
		a.matchers[idx] = regexp.MustCompile("^" + a.effectiveArity().Pattern(a.isPositional(), lazy))
	}
	return a.matchers[idx]
}

func (a *Argument) patternSource(lazy bool) string {
	return a.effectiveArity().Pattern(a.isPositional(), lazy)
}

// validate checks the argument's configuration before registration.
func (a *Argument) validate() error {
	if err := a.Arity.Validate(); err != nil {
		return fmt.Errorf("%w: %v", types.ErrConfiguration, err)
	}
	if !a.TypeOf.TakesValue() {
		if a.Arity.Kind != types.ArityOne && !(a.Arity.Kind == types.ArityExact && a.Arity.Count == 0) {
			return configErr("action %s takes no values, arity must be left unset", a.TypeOf)
		}
		switch a.TypeOf {
		case types.StoreConst, types.AppendConst:
			if a.Const == nil {
				return configErr("action %s requires a const value", a.TypeOf)
			}
		}
	}
	if a.TypeOf == types.Store && a.Const != nil && a.Arity.Kind != types.ArityOptional {
		return configErr("const is only honored with an optional arity")
	}
	if a.Arity.Kind == types.ArityExact && a.Arity.Count == 0 && a.TypeOf.TakesValue() {
		return configErr("zero-arity is reserved for flag actions")
	}
	return nil
}

func (a *Argument) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.name(), a.TypeOf, a.effectiveArity().Format(a.metavarName()))
}

// ownerRef is one ownership edge: the container (and optionally the group
// within it) an argument belongs to. Arguments shared across parsers via
// AddParent carry one edge per container; removal subtracts edges and never
// mutates another container's view.
type ownerRef struct {
	parser *Parser
	group  *Group
}
