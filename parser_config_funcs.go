package goargs

import (
	"fmt"

	"github.com/napalu/goargs/types"
)

// WithProg sets the program name used in usage and error output
func WithProg(prog string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.prog = prog
	}
}

// WithDescription sets the description shown in help output
func WithDescription(description string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.description = description
	}
}

// WithPrefixes sets the runes recognized as option prefixes
func WithPrefixes(prefixes ...rune) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if len(prefixes) == 0 {
			*err = configErr("at least one prefix rune is required")
			return
		}
		p.prefixes = prefixes
	}
}

// WithConflictPolicy selects how option string collisions are handled
func WithConflictPolicy(policy types.ConflictPolicy) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		switch policy {
		case types.ConflictError, types.ConflictReplace, types.ConflictInherit:
			p.conflictPolicy = policy
		default:
			*err = fmt.Errorf("%w: %d", types.ErrInvalidConflictPolicy, int(policy))
		}
	}
}

// WithDestConverter sets the option-name to destination-name conversion
func WithDestConverter(converter NameConversionFunc) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if converter == nil {
			*err = configErr("nil dest converter")
			return
		}
		p.destConverter = converter
	}
}

// WithArgsDefaultToPositional makes unmatched option-like tokens fall back
// to positional values instead of becoming unrecognized
func WithArgsDefaultToPositional(enabled bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.argsDefaultToPositional = enabled
	}
}

// WithParents adopts the arguments and cross-tests of the given parsers
func WithParents(parents ...*Parser) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		for _, parent := range parents {
			if e := p.AddParent(parent); e != nil {
				*err = e
				return
			}
		}
	}
}

// WithArgument registers an argument during construction
func WithArgument(arg *Argument, names ...string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if e := p.AddArgument(arg, names...); e != nil {
			*err = e
		}
	}
}
