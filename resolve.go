package goargs

import (
	"strings"

	"github.com/napalu/goargs/types"
)

// optionTuple is the resolution of one option-like token: the argument it
// names, the spelling that matched and any value attached with '='. A nil
// arg marks a token that looks like an option but matches nothing.
type optionTuple struct {
	arg          *Argument
	optionString string
	explicitArg  *string
}

// classifyToken resolves one token. A nil tuple classifies the token as a
// positional value.
func (p *Parser) classifyToken(token string) (*optionTuple, error) {
	if token == "" {
		return nil, nil
	}
	if !p.isOptionName(token) {
		return nil, nil
	}
	if v, ok := p.optionIndex.Get(token); ok {
		return &optionTuple{arg: v.(*Argument), optionString: token}, nil
	}
	if len([]rune(token)) == 1 {
		return nil, nil
	}
	if i := strings.IndexByte(token, '='); i >= 0 {
		if v, ok := p.optionIndex.Get(token[:i]); ok {
			explicit := token[i+1:]
			return &optionTuple{arg: v.(*Argument), optionString: token[:i], explicitArg: &explicit}, nil
		}
	}

	tuples := p.optionTuples(token)
	if len(tuples) > 1 {
		names := make([]string, len(tuples))
		for i, t := range tuples {
			names[i] = t.optionString
		}
		return nil, argErrf(nil, types.ErrAmbiguousOption,
			"%s could match %s", token, strings.Join(names, ", "))
	}
	if len(tuples) == 1 {
		return tuples[0], nil
	}

	if p.argsDefaultToPositional {
		return nil, nil
	}
	if !p.hasNegNumOptions && negNumPattern.MatchString(token) {
		return nil, nil
	}
	if strings.ContainsRune(token, ' ') {
		return nil, nil
	}
	return &optionTuple{optionString: token}, nil
}

// optionTuples collects the registered spellings a token could abbreviate:
// prefix matches for long options, exact-head plus attached value for short
// ones. Candidate order follows registration order.
func (p *Parser) optionTuples(token string) []*optionTuple {
	var result []*optionTuple
	runes := []rune(token)
	if len(runes) > 1 && p.isPrefixRune(runes[0]) && p.isPrefixRune(runes[1]) {
		prefix := token
		var explicit *string
		if i := strings.IndexByte(token, '='); i >= 0 {
			prefix = token[:i]
			e := token[i+1:]
			explicit = &e
		}
		for pair := p.optionIndex.Oldest(); pair != nil; pair = pair.Next() {
			os := pair.Key.(string)
			if strings.HasPrefix(os, prefix) {
				result = append(result, &optionTuple{
					arg:          pair.Value.(*Argument),
					optionString: os,
					explicitArg:  explicit,
				})
			}
		}
		return result
	}
	if len(runes) > 1 && p.isPrefixRune(runes[0]) {
		shortHead := string(runes[:2])
		shortExplicit := string(runes[2:])
		for pair := p.optionIndex.Oldest(); pair != nil; pair = pair.Next() {
			os := pair.Key.(string)
			switch {
			case os == shortHead && shortExplicit != "":
				e := shortExplicit
				result = append(result, &optionTuple{
					arg:          pair.Value.(*Argument),
					optionString: os,
					explicitArg:  &e,
				})
			case strings.HasPrefix(os, token):
				result = append(result, &optionTuple{
					arg:          pair.Value.(*Argument),
					optionString: os,
				})
			}
		}
	}
	return result
}

// isShortOption reports a single-prefix spelling such as -x, the only form
// eligible for cluster splitting.
func (p *Parser) isShortOption(optionString string) bool {
	runes := []rune(optionString)
	return len(runes) > 1 && !p.isPrefixRune(runes[1])
}

// isSeparator reports the doubled-prefix token that ends option processing.
func (p *Parser) isSeparator(token string) bool {
	runes := []rune(token)
	return len(runes) == 2 && runes[0] == runes[1] && p.isPrefixRune(runes[0])
}
