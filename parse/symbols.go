package parse

import "strings"

// Token symbols the matching engine operates on. Every argv token is
// classified as exactly one symbol; arity patterns are regular expressions
// over this alphabet.
const (
	SymValue     byte = 'A'
	SymOption    byte = 'O'
	SymSeparator byte = '-'
)

// Symbols is the classified form of an argv slice, one symbol per token.
type Symbols string

// CountOptions returns the number of option symbols in s.
func (s Symbols) CountOptions() int {
	return strings.Count(string(s), string(SymOption))
}

// HasOption reports whether any option symbol remains in s.
func (s Symbols) HasOption() bool {
	return strings.IndexByte(string(s), SymOption) >= 0
}

// OptionIndices returns the positions of all option symbols, in order.
func (s Symbols) OptionIndices() []int {
	var indices []int
	for i := 0; i < len(s); i++ {
		if s[i] == SymOption {
			indices = append(indices, i)
		}
	}
	return indices
}

// SeparatorIndices returns the positions of all separator symbols, in order.
func (s Symbols) SeparatorIndices() []int {
	var indices []int
	for i := 0; i < len(s); i++ {
		if s[i] == SymSeparator {
			indices = append(indices, i)
		}
	}
	return indices
}
