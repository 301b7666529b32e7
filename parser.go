// Copyright 2024 the goargs authors. All rights reserved.
// Use of this source code is governed by the MIT license
// which can be found in the LICENSE file.

// Package goargs provides declarative command-line argument parsing with
// positional/optional interleaving, regex-driven arity matching, grouped
// constraints and ordered cross-argument validation.
package goargs

import (
	"fmt"
	"os"
	"strings"

	"github.com/napalu/goargs/parse"
	"github.com/napalu/goargs/types"
	orderedmap "github.com/wk8/go-ordered-map"
)

// Parser is the root container. Configuration (arguments, groups, parents,
// cross-tests) completes before the first Parse call; a configured Parser is
// reusable because parsing never mutates it.
type Parser struct {
	prog                    string
	description             string
	prefixes                []rune
	conflictPolicy          types.ConflictPolicy
	destConverter           NameConversionFunc
	argsDefaultToPositional bool

	arguments        []*Argument
	optionIndex      *orderedmap.OrderedMap
	dests            map[string]*Argument
	groups           []*Group
	constraintGroups []*ConstraintGroup
	crossTests       []crossTest
	defaults         map[string]interface{}
	hasNegNumOptions bool
}

// NewParser returns a Parser with default configuration: '-' prefix, error
// conflict policy, dash-to-underscore destination derivation.
func NewParser() *Parser {
	return &Parser{
		prog:           defaultProg(),
		prefixes:       []rune{'-'},
		conflictPolicy: types.ConflictError,
		destConverter:  DefaultDestConverter,
		optionIndex:    orderedmap.New(),
		dests:          map[string]*Argument{},
		defaults:       map[string]interface{}{},
	}
}

// NewCmdLine allows initialization of a Parser using option functions. The
// caller should always test for error as some options may fail to apply.
func NewCmdLine(configs ...ConfigureParserFunc) (*Parser, error) {
	p := NewParser()
	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

func defaultProg() string {
	if len(os.Args) > 0 {
		base := os.Args[0]
		if i := strings.LastIndexByte(base, '/'); i >= 0 {
			base = base[i+1:]
		}
		return base
	}
	return ""
}

// Prog returns the program name used in usage and error output.
func (p *Parser) Prog() string {
	return p.prog
}

// Arguments returns the registered arguments in registration order.
func (p *Parser) Arguments() []*Argument {
	out := make([]*Argument, len(p.arguments))
	copy(out, p.arguments)
	return out
}

// Lookup returns the argument registered under dest.
func (p *Parser) Lookup(dest string) (*Argument, error) {
	if a, ok := p.dests[dest]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("%w: %s", types.ErrArgumentNotFound, dest)
}

// SetDefaults records parser-level defaults applied to destinations left
// unset after matching, and updates matching registered arguments.
func (p *Parser) SetDefaults(defaults map[string]interface{}) {
	for dest, value := range defaults {
		p.defaults[dest] = value
		if a, ok := p.dests[dest]; ok {
			a.Default = value
		}
	}
}

// GetDefault returns the default value for dest, from the argument when
// registered, else from parser-level defaults.
func (p *Parser) GetDefault(dest string) interface{} {
	if a, ok := p.dests[dest]; ok && a.Default != nil {
		return a.Default
	}
	return p.defaults[dest]
}

// AddCrossTest registers a whole-line validation hook. Hooks run after
// matching in registration order; constraint groups register theirs at
// creation, so interleaving with explicit hooks follows source order.
func (p *Parser) AddCrossTest(name string, fn CrossTestFunc) {
	p.crossTests = append(p.crossTests, crossTest{name: name, fn: fn})
}

type crossTest struct {
	name string
	fn   CrossTestFunc
}

// Parse matches args and fails when any token is left unclaimed.
func (p *Parser) Parse(args []string) (*Result, error) {
	res, err := p.ParseKnown(args)
	if err != nil {
		return res, err
	}
	if len(res.Leftover) > 0 {
		return res, argErrf(nil, types.ErrUnrecognizedArguments,
			"%s", strings.Join(res.Leftover, " "))
	}
	return res, nil
}

// ParseKnown matches args, collecting unclaimed tokens into Result.Leftover
// instead of failing.
func (p *Parser) ParseKnown(args []string) (*Result, error) {
	return p.ParseInto(args, NewResult())
}

// ParseInto matches args into a pre-seeded Result. Destinations already
// present keep their values unless the command line assigns them; defaults
// never overwrite pre-seeded keys.
func (p *Parser) ParseInto(args []string, res *Result) (*Result, error) {
	if res == nil {
		res = NewResult()
	}
	if err := p.parseKnownArgs(args, res); err != nil {
		return res, err
	}
	return res, nil
}

// ParseString splits a command line with shell quoting rules and parses it.
func (p *Parser) ParseString(line string) (*Result, error) {
	args, err := parse.Split(line)
	if err != nil {
		return nil, err
	}
	return p.Parse(args)
}

// ParseArgs parses the process command line.
func (p *Parser) ParseArgs() (*Result, error) {
	return p.Parse(os.Args[1:])
}
