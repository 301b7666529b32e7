package goargs

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// ConfigureParserFunc is used to configure a Parser via option functions
type ConfigureParserFunc func(p *Parser, err *error)

// ConfigureArgumentFunc is used to configure an Argument via option functions
type ConfigureArgumentFunc func(argument *Argument, err *error)

// CrossTestFunc is a whole-line validation hook. It runs after matching, in
// registration order, and receives the arguments seen with non-default
// values in the order they were first encountered.
type CrossTestFunc func(p *Parser, seen []*Argument) error

// GroupTestFunc decides satisfaction for a Custom constraint group.
type GroupTestFunc func(p *Parser, seen []*Argument) (bool, error)

// NameConversionFunc converts an option name to a destination name
type NameConversionFunc func(s string) string

// Built-in name conversion strategies
var (
	// ToSnakeCase converts a string to snake_case
	ToSnakeCase NameConversionFunc = func(s string) string {
		return strcase.ToSnake(s)
	}
	// ToScreamingSnake converts a string to SCREAMING_SNAKE
	ToScreamingSnake NameConversionFunc = func(s string) string {
		return strcase.ToScreamingSnake(s)
	}
	// ToKebabCase converts a string to kebab-case
	ToKebabCase NameConversionFunc = func(s string) string {
		return strcase.ToKebab(s)
	}
	// ToLowerCamel converts a string to lowerCamelCase
	ToLowerCamel NameConversionFunc = func(s string) string {
		return strcase.ToLowerCamel(s)
	}
	// DefaultDestConverter replaces dashes with underscores
	DefaultDestConverter NameConversionFunc = func(s string) string {
		return strings.ReplaceAll(s, "-", "_")
	}
)
