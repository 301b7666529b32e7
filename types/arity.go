package types

import (
	"fmt"
	"strings"
)

// ArityKind enumerates the value-count specifications an Argument may carry.
type ArityKind int

const (
	// ArityOne consumes exactly one value and stores a scalar.
	ArityOne ArityKind = iota
	// ArityExact consumes exactly Count values and stores a list.
	ArityExact
	// ArityOptional consumes at most one value, falling back to Const
	// (optionals) or Default (positionals) when none is present.
	ArityOptional
	// ArityZeroOrMore consumes any number of values.
	ArityZeroOrMore
	// ArityOneOrMore consumes at least one value.
	ArityOneOrMore
	// ArityRange consumes between Min and Max values; Max < 0 leaves the
	// upper bound open.
	ArityRange
	// ArityRemainder consumes every remaining token, options included,
	// without conversion checks.
	ArityRemainder
	// ArityCommand consumes one value then the entire remainder, checking
	// choices on the first value only.
	ArityCommand
)

// Arity describes how many command-line values an argument claims.
// The zero value is ArityOne.
type Arity struct {
	Kind  ArityKind
	Count int
	Min   int
	Max   int
}

// One returns the default arity: exactly one value, scalar result.
func One() Arity { return Arity{Kind: ArityOne} }

// Exact returns an arity consuming exactly n values.
func Exact(n int) Arity { return Arity{Kind: ArityExact, Count: n} }

// Optional returns an arity consuming at most one value.
func Optional() Arity { return Arity{Kind: ArityOptional} }

// ZeroOrMore returns an arity consuming any number of values.
func ZeroOrMore() Arity { return Arity{Kind: ArityZeroOrMore} }

// OneOrMore returns an arity consuming at least one value.
func OneOrMore() Arity { return Arity{Kind: ArityOneOrMore} }

// Between returns an arity consuming between m and n values. Pass n < 0 to
// leave the upper bound open.
func Between(m, n int) Arity { return Arity{Kind: ArityRange, Min: m, Max: n} }

// Remainder returns an arity consuming every remaining token.
func Remainder() Arity { return Arity{Kind: ArityRemainder} }

// Command returns the sub-command arity: one value then the remainder.
func Command() Arity { return Arity{Kind: ArityCommand} }

// Validate rejects malformed arities at configuration time.
func (a Arity) Validate() error {
	switch a.Kind {
	case ArityOne, ArityOptional, ArityZeroOrMore, ArityOneOrMore, ArityRemainder, ArityCommand:
		return nil
	case ArityExact:
		if a.Count < 0 {
			return fmt.Errorf("%w: negative count %d", ErrInvalidArity, a.Count)
		}
		return nil
	case ArityRange:
		if a.Min < 0 {
			return fmt.Errorf("%w: negative lower bound %d", ErrInvalidArity, a.Min)
		}
		if a.Max >= 0 && a.Max < a.Min {
			return fmt.Errorf("%w: bounds %d..%d", ErrInvalidArity, a.Min, a.Max)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidArity, int(a.Kind))
	}
}

// IsVariable reports whether the arity can claim a varying number of values,
// which makes the argument a candidate for slot sharing with positionals.
func (a Arity) IsVariable() bool {
	switch a.Kind {
	case ArityOptional, ArityZeroOrMore, ArityOneOrMore, ArityRange, ArityRemainder, ArityCommand:
		return true
	default:
		return false
	}
}

func (a Arity) rangeQuantifier() string {
	if a.Max < 0 {
		return fmt.Sprintf("{%d,}", a.Min)
	}
	return fmt.Sprintf("{%d,%d}", a.Min, a.Max)
}

// Pattern compiles the arity into a regular pattern over the token symbol
// alphabet: 'A' value, 'O' option, '-' separator. Positionals may absorb
// separator tokens; option arguments never do, so their patterns drop the
// separator atoms. The lazy form is used when an option's claim must yield
// values to trailing positionals.
func (a Arity) Pattern(positional, lazy bool) string {
	if lazy {
		return a.lazyPattern(positional)
	}
	var pat string
	switch a.Kind {
	case ArityOne:
		pat = "(-*A-*)"
	case ArityExact:
		parts := make([]string, a.Count)
		for i := range parts {
			parts[i] = "A"
		}
		pat = "(-*" + strings.Join(parts, "-*") + "-*)"
	case ArityOptional:
		pat = "(-*A?-*)"
	case ArityZeroOrMore:
		pat = "(-*[A-]*)"
	case ArityOneOrMore:
		pat = "(-*A[A-]*)"
	case ArityRange:
		pat = "([-A]" + a.rangeQuantifier() + ")"
	case ArityRemainder:
		pat = "([-AO]*)"
	case ArityCommand:
		pat = "(-*A[-AO]*)"
	}
	if !positional {
		pat = strings.ReplaceAll(pat, "-*", "")
		pat = strings.ReplaceAll(pat, "-", "")
	}
	return pat
}

func (a Arity) lazyPattern(positional bool) string {
	atom := "A"
	if positional {
		atom = "[-A]"
	}
	switch a.Kind {
	case ArityOptional:
		return "(" + atom + "??)"
	case ArityZeroOrMore:
		return "(" + atom + "*?)"
	case ArityOneOrMore:
		return "(A" + atom + "*?)"
	case ArityRange:
		return "(" + atom + a.rangeQuantifier() + "?)"
	case ArityRemainder:
		if positional {
			return "([-AO]*?)"
		}
		return "([AO]*?)"
	case ArityCommand:
		if positional {
			return "(A[-AO]*?)"
		}
		return "(A[AO]*?)"
	default:
		return a.Pattern(positional, false)
	}
}

// String returns a usage-style rendering of the arity applied to metavar.
func (a Arity) String() string {
	return a.Format("X")
}

// Format renders the arity for usage output with the given metavar.
func (a Arity) Format(metavar string) string {
	switch a.Kind {
	case ArityOne:
		return metavar
	case ArityExact:
		parts := make([]string, a.Count)
		for i := range parts {
			parts[i] = metavar
		}
		return strings.Join(parts, " ")
	case ArityOptional:
		return "[" + metavar + "]"
	case ArityZeroOrMore:
		return "[" + metavar + " [" + metavar + " ...]]"
	case ArityOneOrMore:
		return metavar + " [" + metavar + " ...]"
	case ArityRange:
		return metavar + a.rangeQuantifier()
	case ArityRemainder:
		return "..."
	case ArityCommand:
		return metavar + " ..."
	default:
		return metavar
	}
}
