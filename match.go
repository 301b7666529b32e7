package goargs

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ef-ds/deque"
	"github.com/napalu/goargs/parse"
	"github.com/napalu/goargs/types"
)

// parseState is the per-parse scratch state. Parsing never mutates the
// Parser; everything a parse learns lives here or in the Result.
type parseState struct {
	res               *Result
	seen              map[*Argument]bool
	seenNonDefault    []*Argument
	seenNonDefaultSet map[*Argument]bool
	extras            []string
	requiredOverride  map[string]bool
}

// loopState is the state of one consume pass: the pending positional queue
// and the tokens nothing claimed.
type loopState struct {
	args        []string
	symbols     parse.Symbols
	positionals []*Argument
	extras      []string
}

type loopResult struct {
	extras    []string
	remaining int
}

func (p *Parser) parseKnownArgs(args []string, res *Result) error {
	st := &parseState{
		res:               res,
		seen:              map[*Argument]bool{},
		seenNonDefaultSet: map[*Argument]bool{},
		requiredOverride:  map[string]bool{},
	}

	symbols, tuples, err := p.classify(args)
	if err != nil {
		return err
	}

	// When variable-arity options compete with pending positionals, dry-run
	// passes raise the sharing threshold until the positional queue empties.
	// Dry runs match but never store.
	threshold := 0
	if len(p.positionalArguments()) > 0 && p.hasVariableOptions(tuples) {
		optionCount := symbols.CountOptions()
		for ii := 0; ii < optionCount; ii++ {
			loop, err := p.consumeLoop(st, args, symbols, tuples, true, ii)
			if err != nil {
				return err
			}
			threshold = ii
			if loop.remaining == 0 {
				break
			}
		}
	}

	loop, err := p.consumeLoop(st, args, symbols, tuples, false, threshold)
	if err != nil {
		return err
	}
	st.extras = loop.extras

	if err := p.checkRequired(st); err != nil {
		return err
	}
	for _, ct := range p.crossTests {
		if err := ct.fn(p, st.seenNonDefault); err != nil {
			return &ArgumentError{Err: err}
		}
	}
	if err := p.applyDefaults(st); err != nil {
		return err
	}
	res.Leftover = append(res.Leftover, st.extras...)
	return nil
}

// classify resolves every token to a symbol: 'A' value, 'O' option, '-' the
// first doubled-prefix separator. Everything after the separator is a value.
func (p *Parser) classify(args []string) (parse.Symbols, map[int]*optionTuple, error) {
	var sb strings.Builder
	tuples := map[int]*optionTuple{}
	seenSeparator := false
	for i, token := range args {
		if seenSeparator {
			sb.WriteByte(parse.SymValue)
			continue
		}
		if p.isSeparator(token) {
			seenSeparator = true
			sb.WriteByte(parse.SymSeparator)
			continue
		}
		tup, err := p.classifyToken(token)
		if err != nil {
			return "", nil, err
		}
		if tup == nil {
			sb.WriteByte(parse.SymValue)
			continue
		}
		sb.WriteByte(parse.SymOption)
		tuples[i] = tup
	}
	return parse.Symbols(sb.String()), tuples, nil
}

func (p *Parser) positionalArguments() []*Argument {
	var out []*Argument
	for _, a := range p.arguments {
		if a.isPositional() {
			out = append(out, a)
		}
	}
	return out
}

func (p *Parser) hasVariableOptions(tuples map[int]*optionTuple) bool {
	for _, t := range tuples {
		if t.arg != nil && t.arg.effectiveArity().IsVariable() {
			return true
		}
	}
	return false
}

// consumeLoop alternates positional and optional consumption over the symbol
// string: before each option, the pending positionals claim the span; tokens
// neither side claims become extras.
func (p *Parser) consumeLoop(st *parseState, args []string, symbols parse.Symbols, tuples map[int]*optionTuple, dryRun bool, threshold int) (*loopResult, error) {
	loop := &loopState{
		args:        args,
		symbols:     symbols,
		positionals: p.positionalArguments(),
	}
	optQueue := deque.New()
	for _, idx := range symbols.OptionIndices() {
		optQueue.PushBack(idx)
	}

	startIndex := 0
	for {
		nextOption := peekOption(optQueue, startIndex)
		if nextOption < 0 {
			break
		}
		if startIndex != nextOption {
			end, err := p.consumePositionals(st, loop, startIndex, dryRun)
			if err != nil {
				return nil, err
			}
			if end > startIndex {
				startIndex = end
				continue
			}
			startIndex = end
		}
		if startIndex != nextOption {
			loop.extras = append(loop.extras, args[startIndex:nextOption]...)
			startIndex = nextOption
		}
		stop, err := p.consumeOptional(st, loop, startIndex, tuples, dryRun, threshold)
		if err != nil {
			return nil, err
		}
		startIndex = stop
	}

	stop, err := p.consumePositionals(st, loop, startIndex, dryRun)
	if err != nil {
		return nil, err
	}
	if stop < len(args) {
		loop.extras = append(loop.extras, args[stop:]...)
	}
	return &loopResult{extras: loop.extras, remaining: len(loop.positionals)}, nil
}

// peekOption returns the first queued option position at or past start,
// discarding positions already consumed.
func peekOption(q *deque.Deque, start int) int {
	for {
		v, ok := q.Front()
		if !ok {
			return -1
		}
		if idx := v.(int); idx >= start {
			return idx
		}
		q.PopFront()
	}
}

// consumeOptional matches the option at pos and every value it claims,
// splitting short clusters and honoring values attached with '='. A
// variable-arity option sharing its span with pending positionals is capped
// at the slot the span split assigns it, once the sharing threshold allows.
func (p *Parser) consumeOptional(st *parseState, loop *loopState, pos int, tuples map[int]*optionTuple, dryRun bool, threshold int) (int, error) {
	tup := tuples[pos]
	action, optionString, explicit := tup.arg, tup.optionString, tup.explicitArg

	type matched struct {
		action *Argument
		values []string
		opt    string
	}
	var matches []matched
	var stop int

	for {
		if action == nil {
			loop.extras = append(loop.extras, loop.args[pos])
			return pos + 1, nil
		}
		if explicit != nil {
			count, err := p.matchArgument(action, parse.Symbols("A"))
			if err != nil {
				return 0, err
			}
			if count == 0 && p.isShortOption(optionString) && *explicit != "" {
				matches = append(matches, matched{action: action, opt: optionString})
				head := []rune(optionString)
				rest := []rune(*explicit)
				nextOption := string(head[0]) + string(rest[0])
				var nextExplicit *string
				if len(rest) > 1 {
					s := string(rest[1:])
					nextExplicit = &s
				}
				if v, ok := p.optionIndex.Get(nextOption); ok {
					action = v.(*Argument)
					optionString = nextOption
					explicit = nextExplicit
					continue
				}
				return 0, argErrf(action, types.ErrIgnoredExplicitArgument, "'%s'", *explicit)
			}
			if count == 1 {
				stop = pos + 1
				matches = append(matches, matched{action: action, values: []string{*explicit}, opt: optionString})
				break
			}
			return 0, argErrf(action, types.ErrIgnoredExplicitArgument, "'%s'", *explicit)
		}

		start := pos + 1
		sel := loop.symbols[start:]
		count, err := p.matchArgument(action, sel)
		if err != nil {
			return 0, err
		}
		if action.effectiveArity().IsVariable() && len(loop.positionals) > 0 {
			if slots := p.sharedSlots(action, loop.positionals, sel); len(slots) > 0 {
				if sel.CountOptions() <= threshold && count > slots[0] {
					count = slots[0]
				}
			}
		}
		stop = start + count
		matches = append(matches, matched{action: action, values: loop.args[start:stop], opt: optionString})
		break
	}

	if dryRun {
		return stop, nil
	}
	for _, m := range matches {
		if err := p.takeArgument(st, m.action, m.values, m.opt); err != nil {
			return 0, err
		}
	}
	return stop, nil
}

// consumePositionals matches the longest prefix of the pending positional
// queue against the span at start, progressively dropping tail actions.
// Trailing zero-width matches are deferred while options remain ahead.
func (p *Parser) consumePositionals(st *parseState, loop *loopState, start int, dryRun bool) (int, error) {
	sel := loop.symbols[start:]
	counts := p.matchPartial(loop.positionals, sel)
	if sel.HasOption() {
		for len(counts) > 0 && counts[len(counts)-1] == 0 {
			counts = counts[:len(counts)-1]
		}
	}
	for i, count := range counts {
		action := loop.positionals[i]
		values := loop.args[start : start+count]
		kind := action.effectiveArity().Kind
		if kind != types.ArityRemainder && kind != types.ArityCommand {
			// the '--' token is claimed by the span but stores no value
			span := loop.symbols[start : start+count]
			if seps := span.SeparatorIndices(); len(seps) > 0 {
				j := seps[0]
				trimmed := make([]string, 0, len(values)-1)
				trimmed = append(trimmed, values[:j]...)
				trimmed = append(trimmed, values[j+1:]...)
				values = trimmed
			}
		}
		start += count
		if !dryRun {
			if err := p.takeArgument(st, action, values, ""); err != nil {
				return 0, err
			}
		}
	}
	loop.positionals = loop.positionals[len(counts):]
	return start, nil
}

// matchArgument returns how many leading symbols the argument's arity
// pattern claims from sel.
func (p *Parser) matchArgument(a *Argument, sel parse.Symbols) (int, error) {
	m := a.matcher(false).FindStringSubmatch(string(sel))
	if m == nil {
		return 0, argErr(a, arityError(a.effectiveArity()))
	}
	return len(m[1]), nil
}

func arityError(ar types.Arity) error {
	switch ar.Kind {
	case types.ArityOne:
		return fmt.Errorf("%w: expected one argument", types.ErrExpectedArguments)
	case types.ArityOptional:
		return fmt.Errorf("%w: expected at most one argument", types.ErrExpectedArguments)
	case types.ArityOneOrMore, types.ArityCommand:
		return fmt.Errorf("%w: expected at least one argument", types.ErrExpectedArguments)
	case types.ArityExact:
		return fmt.Errorf("%w: expected %d argument(s)", types.ErrExpectedArguments, ar.Count)
	case types.ArityRange:
		if ar.Max < 0 {
			return fmt.Errorf("%w: expected at least %d argument(s)", types.ErrExpectedArguments, ar.Min)
		}
		return fmt.Errorf("%w: expected between %d and %d arguments", types.ErrExpectedArguments, ar.Min, ar.Max)
	default:
		return types.ErrExpectedArguments
	}
}

// matchPartial matches a prefix of actions against sel, dropping actions
// from the tail until the concatenated pattern matches. The returned counts
// parallel the matched prefix; nil means not even one action matched.
func (p *Parser) matchPartial(actions []*Argument, sel parse.Symbols) []int {
	for end := len(actions); end > 0; end-- {
		var sb strings.Builder
		sb.WriteByte('^')
		for _, a := range actions[:end] {
			sb.WriteString(a.patternSource(false))
		}
		m := regexp.MustCompile(sb.String()).FindStringSubmatch(string(sel))
		if m == nil {
			continue
		}
		counts := make([]int, 0, end)
		for _, g := range m[1:] {
			counts = append(counts, len(g))
		}
		return counts
	}
	return nil
}

// sharedSlots splits sel between a variable-arity option and the pending
// positionals. The anchored form makes the option yield every value the
// positionals can legally claim; when the span cannot satisfy them all, the
// unanchored greedy split decides instead.
func (p *Parser) sharedSlots(option *Argument, positionals []*Argument, sel parse.Symbols) []int {
	var sb strings.Builder
	sb.WriteByte('^')
	sb.WriteString(option.patternSource(true))
	for _, a := range positionals {
		sb.WriteString(a.patternSource(false))
	}
	sb.WriteByte('$')
	if m := regexp.MustCompile(sb.String()).FindStringSubmatch(string(sel)); m != nil {
		counts := make([]int, 0, len(m)-1)
		for _, g := range m[1:] {
			counts = append(counts, len(g))
		}
		return counts
	}
	all := make([]*Argument, 0, len(positionals)+1)
	all = append(all, option)
	all = append(all, positionals...)
	return p.matchPartial(all, sel)
}
