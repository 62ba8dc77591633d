package ast

import (
	"github.com/elbow-jason/graphql-parser/pkg/lexer/position"
)

// Argument is a name value pair, e.g. id: 1.
// Argument lists keep source order and may contain the same name more than once.
type Argument struct {
	Position position.Position
	Name     string
	Value    Value
}

// Directive e.g. @include(if: $foo)
type Directive struct {
	Position  position.Position // @
	Name      string
	Arguments []Argument
}

// ArgumentByName returns the last argument with the given name
func (d Directive) ArgumentByName(name string) (Argument, bool) {
	return LastArgumentByName(d.Arguments, name)
}

// LastArgumentByName returns the last argument with name, later duplicates win
func LastArgumentByName(arguments []Argument, name string) (Argument, bool) {
	for i := len(arguments) - 1; i >= 0; i-- {
		if arguments[i].Name == name {
			return arguments[i], true
		}
	}
	return Argument{}, false
}

// Description is the string literal documenting a type system definition
type Description struct {
	IsDefined     bool
	IsBlockString bool   // """foo""" or "foo"
	Content       string // decoded content without quotes
	Position      position.Position
}
