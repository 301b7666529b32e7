package goargs

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/napalu/goargs/types"
)

// takeArgument applies one matched occurrence: convert and check the claimed
// values, record the argument as seen, store per its action.
func (p *Parser) takeArgument(st *parseState, a *Argument, rawValues []string, optionString string) error {
	st.seen[a] = true
	var value interface{}
	usingDefault := false
	if a.TypeOf.TakesValue() {
		var err error
		value, usingDefault, err = p.getValues(a, rawValues)
		if err != nil {
			return err
		}
	}
	if !usingDefault && !st.seenNonDefaultSet[a] {
		st.seenNonDefaultSet[a] = true
		st.seenNonDefault = append(st.seenNonDefault, a)
	}

	switch a.TypeOf {
	case types.Store, types.SubCommand:
		st.res.Set(a.Dest, value)
	case types.StoreConst:
		st.res.Set(a.Dest, a.Const)
	case types.StoreTrue:
		st.res.Set(a.Dest, true)
	case types.StoreFalse:
		st.res.Set(a.Dest, false)
	case types.Append:
		list, _ := st.res.GetList(a.Dest)
		next := make([]interface{}, 0, len(list)+1)
		next = append(next, list...)
		next = append(next, value)
		st.res.Set(a.Dest, next)
	case types.AppendConst:
		list, _ := st.res.GetList(a.Dest)
		next := make([]interface{}, 0, len(list)+1)
		next = append(next, list...)
		next = append(next, a.Const)
		st.res.Set(a.Dest, next)
	case types.Count:
		n, _ := st.res.GetInt(a.Dest)
		st.res.Set(a.Dest, n+1)
	}

	for _, dest := range a.Requires {
		st.requiredOverride[dest] = true
	}
	return nil
}

// getValues turns the claimed raw tokens into the stored value. The second
// return reports that the argument fell back to its default, which keeps it
// out of the seen-with-non-default sequence.
func (p *Parser) getValues(a *Argument, raw []string) (interface{}, bool, error) {
	ar := a.effectiveArity()
	switch {
	case len(raw) == 0 && ar.Kind == types.ArityOptional && !a.isPositional():
		return p.fallbackValue(a, a.Const, false)
	case len(raw) == 0 && ar.Kind == types.ArityOptional && a.isPositional():
		return p.fallbackValue(a, a.Default, true)
	case len(raw) == 0 && ar.Kind == types.ArityZeroOrMore && a.isPositional():
		if a.Default != nil {
			return p.fallbackValue(a, a.Default, true)
		}
		return []interface{}{}, true, nil
	case len(raw) == 1 && (ar.Kind == types.ArityOne || ar.Kind == types.ArityOptional):
		v, err := p.convertToken(a, raw[0])
		if err != nil {
			return nil, false, err
		}
		if err := p.checkValues(a, []interface{}{v}); err != nil {
			return nil, false, err
		}
		return v, false, nil
	case ar.Kind == types.ArityRemainder:
		values, err := p.convertAll(a, raw)
		if err != nil {
			return nil, false, err
		}
		return values, false, nil
	case ar.Kind == types.ArityCommand:
		values, err := p.convertAll(a, raw)
		if err != nil {
			return nil, false, err
		}
		if len(values) > 0 {
			if err := p.checkValues(a, values[:1]); err != nil {
				return nil, false, err
			}
		}
		return values, false, nil
	default:
		values, err := p.convertAll(a, raw)
		if err != nil {
			return nil, false, err
		}
		if err := p.checkValues(a, values); err != nil {
			return nil, false, err
		}
		return values, false, nil
	}
}

// fallbackValue resolves an empty match to const or default; a string
// fallback goes through the converter and the choice check like any token.
func (p *Parser) fallbackValue(a *Argument, value interface{}, usingDefault bool) (interface{}, bool, error) {
	if s, ok := value.(string); ok {
		v, err := p.convertToken(a, s)
		if err != nil {
			return nil, false, err
		}
		if err := p.checkValues(a, []interface{}{v}); err != nil {
			return nil, false, err
		}
		return v, usingDefault, nil
	}
	return value, usingDefault, nil
}

func (p *Parser) convertAll(a *Argument, raw []string) ([]interface{}, error) {
	values := make([]interface{}, len(raw))
	for i, s := range raw {
		v, err := p.convertToken(a, s)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func (p *Parser) convertToken(a *Argument, raw string) (interface{}, error) {
	if a.Converter == nil {
		return raw, nil
	}
	v, err := a.Converter(raw)
	if err != nil {
		return nil, &ValueError{Name: a.name(), Token: raw, Err: err}
	}
	return v, nil
}

// checkValues verifies choice membership on converted values, collecting
// every violation into one error.
func (p *Parser) checkValues(a *Argument, values []interface{}) error {
	if len(a.Choices) == 0 {
		return nil
	}
	var bad []string
	for _, v := range values {
		if !choiceContains(a.Choices, v) {
			bad = append(bad, fmt.Sprintf("%v", v))
		}
	}
	if len(bad) == 0 {
		return nil
	}
	return argErrf(a, types.ErrInvalidChoice, "%s (choose from %s)",
		strings.Join(bad, ", "), choicesLabel(a.Choices))
}

func choiceContains(choices []interface{}, v interface{}) bool {
	for _, c := range choices {
		if reflect.DeepEqual(c, v) {
			return true
		}
	}
	return false
}

func choicesLabel(choices []interface{}) string {
	parts := make([]string, len(choices))
	for i, c := range choices {
		parts[i] = fmt.Sprintf("%v", c)
	}
	return strings.Join(parts, ", ")
}

// checkRequired collects every absent required argument, including per-parse
// promotions recorded by Requires, into a single error.
func (p *Parser) checkRequired(st *parseState) error {
	var missing []string
	for _, a := range p.arguments {
		if st.seen[a] {
			continue
		}
		if p.argumentRequired(a) || st.requiredOverride[a.Dest] {
			missing = append(missing, a.name())
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return argErrf(nil, types.ErrMissingRequired, "%s", strings.Join(missing, ", "))
}

// applyDefaults is the second pipeline phase: destinations still unset after
// matching receive their defaults. String defaults are converted here, once;
// pre-seeded Result keys are never overwritten.
func (p *Parser) applyDefaults(st *parseState) error {
	for _, a := range p.arguments {
		if st.res.Has(a.Dest) {
			continue
		}
		if a.Default == nil {
			st.res.Set(a.Dest, nil)
			continue
		}
		if s, ok := a.Default.(string); ok && a.Converter != nil {
			v, err := p.convertToken(a, s)
			if err != nil {
				return err
			}
			st.res.Set(a.Dest, v)
			continue
		}
		st.res.Set(a.Dest, a.Default)
	}
	for dest, value := range p.defaults {
		if !st.res.Has(dest) {
			st.res.Set(dest, value)
		}
	}
	return nil
}
