package ast

import (
	"strconv"

	"github.com/elbow-jason/graphql-parser/pkg/lexer/position"
)

type ValueKind int

const (
	ValueKindUnknown ValueKind = iota
	ValueKindVariable
	ValueKindInteger
	ValueKindFloat
	ValueKindString
	ValueKindBoolean
	ValueKindNull
	ValueKindEnum
	ValueKindList
	ValueKindObject
)

func (k ValueKind) String() string {
	switch k {
	case ValueKindVariable:
		return "Variable"
	case ValueKindInteger:
		return "Int"
	case ValueKindFloat:
		return "Float"
	case ValueKindString:
		return "String"
	case ValueKindBoolean:
		return "Boolean"
	case ValueKindNull:
		return "Null"
	case ValueKindEnum:
		return "Enum"
	case ValueKindList:
		return "List"
	case ValueKindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// Value is an input value literal.
// The set of implementations is closed: Variable, IntValue, FloatValue, StringValue,
// BooleanValue, NullValue, EnumValue, ListValue and ObjectValue.
type Value interface {
	ValueKind() ValueKind
	Pos() position.Position
	isValue()
}

// Variable e.g. $id, Name excludes the $
type Variable struct {
	Position position.Position
	Name     string
}

// IntValue keeps the literal as written, GraphQL does not bound integer literals
type IntValue struct {
	Position position.Position
	Raw      string // e.g. -123
}

func (v IntValue) Int64() (int64, error) {
	return strconv.ParseInt(v.Raw, 10, 64)
}

type FloatValue struct {
	Position position.Position
	Raw      string // e.g. 1.5e3
}

func (v FloatValue) Float64() (float64, error) {
	return strconv.ParseFloat(v.Raw, 64)
}

// StringValue holds the decoded content of a string or block string literal
type StringValue struct {
	Position position.Position
	Value    string
	Block    bool
}

type BooleanValue struct {
	Position position.Position
	Value    bool
}

type NullValue struct {
	Position position.Position
}

type EnumValue struct {
	Position position.Position
	Name     string
}

type ListValue struct {
	Position position.Position // [
	Values   []Value
}

type ObjectValue struct {
	Position position.Position // {
	Fields   []ObjectField
}

type ObjectField struct {
	Position position.Position
	Name     string
	Value    Value
}

func (Variable) ValueKind() ValueKind     { return ValueKindVariable }
func (IntValue) ValueKind() ValueKind     { return ValueKindInteger }
func (FloatValue) ValueKind() ValueKind   { return ValueKindFloat }
func (StringValue) ValueKind() ValueKind  { return ValueKindString }
func (BooleanValue) ValueKind() ValueKind { return ValueKindBoolean }
func (NullValue) ValueKind() ValueKind    { return ValueKindNull }
func (EnumValue) ValueKind() ValueKind    { return ValueKindEnum }
func (ListValue) ValueKind() ValueKind    { return ValueKindList }
func (ObjectValue) ValueKind() ValueKind  { return ValueKindObject }

func (v Variable) Pos() position.Position     { return v.Position }
func (v IntValue) Pos() position.Position     { return v.Position }
func (v FloatValue) Pos() position.Position   { return v.Position }
func (v StringValue) Pos() position.Position  { return v.Position }
func (v BooleanValue) Pos() position.Position { return v.Position }
func (v NullValue) Pos() position.Position    { return v.Position }
func (v EnumValue) Pos() position.Position    { return v.Position }
func (v ListValue) Pos() position.Position    { return v.Position }
func (v ObjectValue) Pos() position.Position  { return v.Position }

func (Variable) isValue()     {}
func (IntValue) isValue()     {}
func (FloatValue) isValue()   {}
func (StringValue) isValue()  {}
func (BooleanValue) isValue() {}
func (NullValue) isValue()    {}
func (EnumValue) isValue()    {}
func (ListValue) isValue()    {}
func (ObjectValue) isValue()  {}
