// Package token contains the tokens emitted by the lexer
package token

import (
	"fmt"

	"github.com/elbow-jason/graphql-parser/pkg/input"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/position"
)

// Kind classifies a Token, the set of kinds is closed
type Kind int

const (
	EOF Kind = iota
	Name
	Punctuator
	IntValue
	FloatValue
	StringValue
	BlockStringValue
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EndOfFile"
	case Name:
		return "Name"
	case Punctuator:
		return "Punctuator"
	case IntValue:
		return "IntValue"
	case FloatValue:
		return "FloatValue"
	case StringValue:
		return "StringValue"
	case BlockStringValue:
		return "BlockStringValue"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a classified piece of the input.
// Literal spans the exact source text of the token, for strings this includes the quotes.
type Token struct {
	Kind     Kind
	Literal  input.ByteSliceReference
	Position position.Position
}

func (t Token) String() string {
	return fmt.Sprintf("token:: Kind: %s, Pos: %s", t.Kind, t.Position)
}
