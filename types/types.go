package types

import "errors"

// ActionType defines what a matched Argument does with its values.
type ActionType int

const (
	// Store keeps the converted value (or list of values) under the destination.
	Store ActionType = iota
	// StoreConst stores the argument's Const value, consuming nothing.
	StoreConst
	// StoreTrue stores true, consuming nothing.
	StoreTrue
	// StoreFalse stores false, consuming nothing.
	StoreFalse
	// Append accumulates one value per occurrence into a list.
	Append
	// AppendConst accumulates the Const value per occurrence into a list.
	AppendConst
	// Count stores the number of occurrences.
	Count
	// SubCommand stores a command name followed by the unparsed remainder.
	SubCommand
)

// String returns the string representation of an ActionType
func (t ActionType) String() string {
	switch t {
	case Store:
		return "store"
	case StoreConst:
		return "store-const"
	case StoreTrue:
		return "store-true"
	case StoreFalse:
		return "store-false"
	case Append:
		return "append"
	case AppendConst:
		return "append-const"
	case Count:
		return "count"
	case SubCommand:
		return "sub-command"
	default:
		return "unknown"
	}
}

// TakesValue reports whether the action consumes command-line values.
// Flag-style actions (constants, booleans, counters) never do and never
// invoke a converter.
func (t ActionType) TakesValue() bool {
	switch t {
	case StoreConst, StoreTrue, StoreFalse, AppendConst, Count:
		return false
	default:
		return true
	}
}

// GroupKind selects the constraint a ConstraintGroup enforces over its
// children.
type GroupKind int

const (
	// Exclusive allows at most one child to be present.
	Exclusive GroupKind = iota
	// Inclusive requires all children once any child is present.
	Inclusive
	// AnyOf is satisfied when at least one child is present.
	AnyOf
	// Negated inverts the satisfaction of its single child.
	Negated
	// Custom delegates satisfaction to an injected predicate.
	Custom
)

// String returns the string representation of a GroupKind
func (k GroupKind) String() string {
	switch k {
	case Exclusive:
		return "exclusive"
	case Inclusive:
		return "inclusive"
	case AnyOf:
		return "any-of"
	case Negated:
		return "negated"
	case Custom:
		return "custom"
	default:
		return "unknown"
	}
}

// ConflictPolicy decides what happens when a newly added argument reuses an
// option string already registered on the parser.
type ConflictPolicy int

const (
	// ConflictError rejects the new argument.
	ConflictError ConflictPolicy = iota
	// ConflictReplace detaches the colliding strings from the old argument,
	// removing it entirely once no strings remain.
	ConflictReplace
	// ConflictInherit removes a multi-owner argument from the adding
	// container only; a single-owner collision behaves like ConflictReplace.
	ConflictInherit
)

// String returns the string representation of a ConflictPolicy
func (c ConflictPolicy) String() string {
	switch c {
	case ConflictError:
		return "error"
	case ConflictReplace:
		return "replace"
	case ConflictInherit:
		return "inherit"
	default:
		return "unknown"
	}
}

// ConvertFunc converts one raw command-line token into a typed value.
type ConvertFunc func(value string) (interface{}, error)

// KeyValue is a generic key-value pair.
type KeyValue struct {
	Key   string
	Value interface{}
}

var (
	// ErrConfiguration marks errors that can only arise while building a
	// parser, before the first Parse call.
	ErrConfiguration = errors.New("configuration error")
	// ErrInvalidArity indicates a malformed arity specification
	ErrInvalidArity = errors.New("invalid arity")
	// ErrInvalidConflictPolicy indicates an unknown conflict policy value
	ErrInvalidConflictPolicy = errors.New("invalid conflict policy")
	// ErrConflictingOption indicates an option string collision under the error policy
	ErrConflictingOption = errors.New("conflicting option strings")
	// ErrDuplicateDestination indicates two arguments deriving the same destination
	ErrDuplicateDestination = errors.New("duplicate destination")
	// ErrInvalidOptionName indicates an unusable option or positional name
	ErrInvalidOptionName = errors.New("invalid option name")
	// ErrRequiredInExclusiveGroup indicates a required argument added to an exclusive group
	ErrRequiredInExclusiveGroup = errors.New("exclusive group arguments must be optional")
	// ErrAmbiguousOption indicates an abbreviation matching several long options
	ErrAmbiguousOption = errors.New("ambiguous option")
	// ErrExpectedArguments indicates an option that could not claim the value count its arity demands
	ErrExpectedArguments = errors.New("argument count mismatch")
	// ErrIgnoredExplicitArgument indicates a value attached with '=' to an option that takes none
	ErrIgnoredExplicitArgument = errors.New("ignored explicit argument")
	// ErrMissingRequired indicates required arguments absent from the command line
	ErrMissingRequired = errors.New("missing required arguments")
	// ErrInvalidChoice indicates converted values outside the configured choices
	ErrInvalidChoice = errors.New("invalid choice")
	// ErrInvalidValue indicates a converter rejecting a raw token
	ErrInvalidValue = errors.New("invalid value")
	// ErrUnrecognizedArguments indicates leftover tokens rejected by Parse
	ErrUnrecognizedArguments = errors.New("unrecognized arguments")
	// ErrGroupConstraint indicates a constraint group whose invariant failed
	ErrGroupConstraint = errors.New("group constraint violated")
	// ErrArgumentNotFound indicates a lookup of an unregistered destination
	ErrArgumentNotFound = errors.New("argument not found")
)
