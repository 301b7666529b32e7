package goargs

import (
	"github.com/napalu/goargs/types"
)

// NewArg convenience initialization method to configure arguments
func NewArg(configs ...ConfigureArgumentFunc) *Argument {
	argument := &Argument{}
	for _, config := range configs {
		config(argument, nil)
	}

	return argument
}

// Set configures the Argument instance with the provided ConfigureArgumentFunc(s),
// and returns an error if a configuration results in an error.
//
// Usage example:
//
//	arg := &Argument{}
//	err := arg.Set(
//	    WithHelp("number of retries"),
//	    WithConverter(AsInt),
//	    SetRequired(true),
//	)
//	if err != nil {
//	    // handle error
//	}
func (a *Argument) Set(configs ...ConfigureArgumentFunc) error {
	a.ensureInit()
	var err error
	for _, config := range configs {
		config(a, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// WithType selects the action applied when the argument matches
func WithType(typeof types.ActionType) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.TypeOf = typeof
	}
}

// WithArity sets the number of values the argument claims per occurrence
func WithArity(arity types.Arity) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		if e := arity.Validate(); e != nil {
			if err != nil {
				*err = e
			}
			return
		}
		argument.Arity = arity
	}
}

// WithConst sets the constant stored by StoreConst/AppendConst, or by an
// optional-arity option seen without a value
func WithConst(value interface{}) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Const = value
	}
}

// WithDefault sets the value stored when the argument never appears
func WithDefault(value interface{}) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Default = value
	}
}

// WithConverter sets the per-token conversion function
func WithConverter(converter types.ConvertFunc) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Converter = converter
	}
}

// WithChoices restricts converted values to the given set
func WithChoices(choices ...interface{}) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Choices = choices
	}
}

// SetRequired when true, the argument must be supplied on the command line
func SetRequired(required bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Required = required
	}
}

// WithRequires lists destinations that become required for the current parse
// once this argument is seen
func WithRequires(dests ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Requires = append(argument.Requires, dests...)
	}
}

// WithHelp sets the usage description
func WithHelp(help string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Help = help
	}
}

// WithMetavar overrides the value placeholder in usage and error output
func WithMetavar(metavar string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Metavar = metavar
	}
}

// WithDest overrides the derived destination name
func WithDest(dest string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Dest = dest
	}
}
