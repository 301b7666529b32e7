package goargs

import (
	"time"

	"github.com/napalu/goargs/types"
	orderedmap "github.com/wk8/go-ordered-map"
)

// Result is the destination→value mapping produced by a parse, ordered by
// first assignment. Leftover collects tokens no argument claimed.
type Result struct {
	values   *orderedmap.OrderedMap
	Leftover []string
}

// NewResult returns an empty Result. Pre-seed it with Set and pass it to
// ParseInto to layer parsed values over existing ones.
func NewResult() *Result {
	return &Result{values: orderedmap.New()}
}

// Set stores value under dest.
func (r *Result) Set(dest string, value interface{}) {
	r.values.Set(dest, value)
}

// Get returns the raw value stored under dest.
func (r *Result) Get(dest string) (interface{}, bool) {
	return r.values.Get(dest)
}

// Has reports whether dest is present, even when its value is nil.
func (r *Result) Has(dest string) bool {
	_, ok := r.values.Get(dest)
	return ok
}

// Keys returns the destinations in first-assignment order.
func (r *Result) Keys() []string {
	keys := make([]string, 0, r.values.Len())
	for pair := r.values.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key.(string))
	}
	return keys
}

// Len returns the number of stored destinations.
func (r *Result) Len() int {
	return r.values.Len()
}

// GetString returns the value under dest as a string.
func (r *Result) GetString(dest string) (string, bool) {
	if v, ok := r.values.Get(dest); ok {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}

// GetInt returns the value under dest as an int.
func (r *Result) GetInt(dest string) (int, bool) {
	if v, ok := r.values.Get(dest); ok {
		if n, ok := v.(int); ok {
			return n, true
		}
	}
	return 0, false
}

// GetFloat returns the value under dest as a float64.
func (r *Result) GetFloat(dest string) (float64, bool) {
	if v, ok := r.values.Get(dest); ok {
		if f, ok := v.(float64); ok {
			return f, true
		}
	}
	return 0, false
}

// GetBool returns the value under dest as a bool.
func (r *Result) GetBool(dest string) (bool, bool) {
	if v, ok := r.values.Get(dest); ok {
		if b, ok := v.(bool); ok {
			return b, true
		}
	}
	return false, false
}

// GetDuration returns the value under dest as a time.Duration.
func (r *Result) GetDuration(dest string) (time.Duration, bool) {
	if v, ok := r.values.Get(dest); ok {
		if d, ok := v.(time.Duration); ok {
			return d, true
		}
	}
	return 0, false
}

// GetTime returns the value under dest as a time.Time.
func (r *Result) GetTime(dest string) (time.Time, bool) {
	if v, ok := r.values.Get(dest); ok {
		if t, ok := v.(time.Time); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// GetList returns the value under dest as the list a multi-value arity or an
// append action produced.
func (r *Result) GetList(dest string) ([]interface{}, bool) {
	if v, ok := r.values.Get(dest); ok {
		if l, ok := v.([]interface{}); ok {
			return l, true
		}
	}
	return nil, false
}

// Pairs returns every destination and its value as ordered key-value pairs.
func (r *Result) Pairs() []types.KeyValue {
	pairs := make([]types.KeyValue, 0, r.values.Len())
	for pair := r.values.Oldest(); pair != nil; pair = pair.Next() {
		pairs = append(pairs, types.KeyValue{Key: pair.Key.(string), Value: pair.Value})
	}
	return pairs
}

// GetStrings returns the list under dest with every element asserted to
// string. It fails when any element is not a string.
func (r *Result) GetStrings(dest string) ([]string, bool) {
	list, ok := r.GetList(dest)
	if !ok {
		return nil, false
	}
	out := make([]string, len(list))
	for i, v := range list {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}
