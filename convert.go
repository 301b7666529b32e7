package goargs

import (
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/goargs/types"
)

// Built-in converters. A nil Argument.Converter keeps raw strings; these
// cover the common typed destinations. Flag-style actions never invoke a
// converter.
var (
	// AsString is the identity converter
	AsString types.ConvertFunc = func(value string) (interface{}, error) {
		return value, nil
	}
	// AsInt converts to int
	AsInt types.ConvertFunc = func(value string) (interface{}, error) {
		v, err := strconv.Atoi(value)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	// AsInt64 converts to int64
	AsInt64 types.ConvertFunc = func(value string) (interface{}, error) {
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	// AsFloat converts to float64
	AsFloat types.ConvertFunc = func(value string) (interface{}, error) {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	// AsBool converts to bool using strconv semantics
	AsBool types.ConvertFunc = func(value string) (interface{}, error) {
		v, err := strconv.ParseBool(value)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	// AsDuration converts to time.Duration
	AsDuration types.ConvertFunc = func(value string) (interface{}, error) {
		v, err := time.ParseDuration(value)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	// AsTime converts to time.Time, accepting the formats dateparse knows
	AsTime types.ConvertFunc = func(value string) (interface{}, error) {
		v, err := dateparse.ParseLocal(value)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
)
