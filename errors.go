package goargs

import (
	"fmt"

	"github.com/napalu/goargs/types"
)

// ArgumentError ties a parse failure to the argument it concerns. Name is
// empty for failures not attributable to a single argument.
type ArgumentError struct {
	Name string
	Err  error
}

func (e *ArgumentError) Error() string {
	if e.Name == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("argument %s: %v", e.Name, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// ValueError reports a converter failure on a single raw token.
type ValueError struct {
	Name  string
	Token string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("argument %s: invalid value '%s': %v", e.Name, e.Token, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

func (e *ValueError) Is(target error) bool {
	return target == types.ErrInvalidValue
}

func argErr(a *Argument, err error) error {
	name := ""
	if a != nil {
		name = a.name()
	}
	return &ArgumentError{Name: name, Err: err}
}

func argErrf(a *Argument, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Errorf("%w", sentinel)
	if format != "" {
		inner = fmt.Errorf("%w: "+format, append([]interface{}{sentinel}, args...)...)
	}
	return argErr(a, inner)
}

func configErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{types.ErrConfiguration}, args...)...)
}
