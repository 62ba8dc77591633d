package ast

import (
	"github.com/elbow-jason/graphql-parser/pkg/lexer/position"
)

type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindNamed
	TypeKindList
	TypeKindNonNull
)

func (k TypeKind) String() string {
	switch k {
	case TypeKindNamed:
		return "NamedType"
	case TypeKindList:
		return "ListType"
	case TypeKindNonNull:
		return "NonNullType"
	default:
		return "UnknownType"
	}
}

// Type is a type reference, one of NamedType, ListType or NonNullType.
// Nesting is unbounded, e.g. [Int!]! is NonNullType{ListType{NonNullType{NamedType{Int}}}}.
type Type interface {
	TypeKind() TypeKind
	Pos() position.Position
	isType()
}

type NamedType struct {
	Position position.Position
	Name     string // e.g. String
}

type ListType struct {
	Position position.Position // [
	OfType   Type
}

type NonNullType struct {
	Position position.Position // start of OfType
	Bang     position.Position // !
	OfType   Type
}

func (NamedType) TypeKind() TypeKind   { return TypeKindNamed }
func (ListType) TypeKind() TypeKind    { return TypeKindList }
func (NonNullType) TypeKind() TypeKind { return TypeKindNonNull }

func (t NamedType) Pos() position.Position   { return t.Position }
func (t ListType) Pos() position.Position    { return t.Position }
func (t NonNullType) Pos() position.Position { return t.Position }

func (NamedType) isType()   {}
func (ListType) isType()    {}
func (NonNullType) isType() {}

// NamedTypeName unwraps all list and non null modifiers and returns the innermost type name
func NamedTypeName(t Type) string {
	for {
		switch v := t.(type) {
		case NamedType:
			return v.Name
		case ListType:
			t = v.OfType
		case NonNullType:
			t = v.OfType
		default:
			return ""
		}
	}
}
