package schema

import (
	"github.com/elbow-jason/graphql-parser/pkg/ast"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/position"
)

// TypeDefinition is one of *ScalarType, *ObjectType, *InterfaceType, *UnionType, *EnumType or *InputObjectType
type TypeDefinition interface {
	Definition
	TypeName() string
	isTypeDefinition()
}

// TypeExtension is one of the six extension shapes, e.g. *ObjectTypeExtension.
// Extensions never carry a description.
type TypeExtension interface {
	Definition
	TypeName() string
	isTypeExtension()
}

// ScalarType e.g. scalar JSON @dir
type ScalarType struct {
	Position    position.Position
	Description ast.Description
	Name        string
	Directives  []ast.Directive
}

// ObjectType
// example:
//
//	type Person implements Node & Entity @dir {
//		name: String
//	}
type ObjectType struct {
	Position             position.Position
	Description          ast.Description
	Name                 string
	ImplementsInterfaces []ast.NamedType
	Directives           []ast.Directive
	Fields               []FieldDefinition
}

// InterfaceType
// example:
//
//	interface Named implements Node {
//		name: String
//	}
type InterfaceType struct {
	Position             position.Position
	Description          ast.Description
	Name                 string
	ImplementsInterfaces []ast.NamedType
	Directives           []ast.Directive
	Fields               []FieldDefinition
}

// UnionType e.g. union SearchResult = Photo | Person
type UnionType struct {
	Position    position.Position
	Description ast.Description
	Name        string
	Directives  []ast.Directive
	Types       []ast.NamedType
}

// EnumType
// example:
//
//	enum Direction {
//		NORTH
//		SOUTH
//	}
type EnumType struct {
	Position    position.Position
	Description ast.Description
	Name        string
	Directives  []ast.Directive
	Values      []EnumValueDefinition
}

// InputObjectType
// example:
//
//	input Point {
//		x: Float = 0
//	}
type InputObjectType struct {
	Position    position.Position
	Description ast.Description
	Name        string
	Directives  []ast.Directive
	Fields      []InputValueDefinition
}

// FieldDefinition e.g. picture(size: Int = 64): Url @deprecated
type FieldDefinition struct {
	Position    position.Position
	Description ast.Description
	Name        string
	Arguments   []InputValueDefinition
	Type        ast.Type
	Directives  []ast.Directive
}

// InputValueDefinition is an argument or an input object field, e.g. size: Int = 64 @dir
type InputValueDefinition struct {
	Position     position.Position
	Description  ast.Description
	Name         string
	Type         ast.Type
	DefaultValue ast.Value // nil when absent
	Directives   []ast.Directive
}

// EnumValueDefinition e.g. NORTH @deprecated
type EnumValueDefinition struct {
	Position    position.Position
	Description ast.Description
	Name        string
	Directives  []ast.Directive
}

// ScalarTypeExtension e.g. extend scalar JSON @dir
type ScalarTypeExtension struct {
	Position   position.Position // extend
	Name       string
	Directives []ast.Directive
}

// ObjectTypeExtension e.g. extend type Person implements Node { age: Int }
type ObjectTypeExtension struct {
	Position             position.Position
	Name                 string
	ImplementsInterfaces []ast.NamedType
	Directives           []ast.Directive
	Fields               []FieldDefinition
}

type InterfaceTypeExtension struct {
	Position             position.Position
	Name                 string
	ImplementsInterfaces []ast.NamedType
	Directives           []ast.Directive
	Fields               []FieldDefinition
}

// UnionTypeExtension e.g. extend union SearchResult = Video
type UnionTypeExtension struct {
	Position   position.Position
	Name       string
	Directives []ast.Directive
	Types      []ast.NamedType
}

type EnumTypeExtension struct {
	Position   position.Position
	Name       string
	Directives []ast.Directive
	Values     []EnumValueDefinition
}

type InputObjectTypeExtension struct {
	Position   position.Position
	Name       string
	Directives []ast.Directive
	Fields     []InputValueDefinition
}

func (t *ScalarType) Pos() position.Position               { return t.Position }
func (t *ObjectType) Pos() position.Position               { return t.Position }
func (t *InterfaceType) Pos() position.Position            { return t.Position }
func (t *UnionType) Pos() position.Position                { return t.Position }
func (t *EnumType) Pos() position.Position                 { return t.Position }
func (t *InputObjectType) Pos() position.Position          { return t.Position }
func (t *ScalarTypeExtension) Pos() position.Position      { return t.Position }
func (t *ObjectTypeExtension) Pos() position.Position      { return t.Position }
func (t *InterfaceTypeExtension) Pos() position.Position   { return t.Position }
func (t *UnionTypeExtension) Pos() position.Position       { return t.Position }
func (t *EnumTypeExtension) Pos() position.Position        { return t.Position }
func (t *InputObjectTypeExtension) Pos() position.Position { return t.Position }

func (t *ScalarType) TypeName() string               { return t.Name }
func (t *ObjectType) TypeName() string               { return t.Name }
func (t *InterfaceType) TypeName() string            { return t.Name }
func (t *UnionType) TypeName() string                { return t.Name }
func (t *EnumType) TypeName() string                 { return t.Name }
func (t *InputObjectType) TypeName() string          { return t.Name }
func (t *ScalarTypeExtension) TypeName() string      { return t.Name }
func (t *ObjectTypeExtension) TypeName() string      { return t.Name }
func (t *InterfaceTypeExtension) TypeName() string   { return t.Name }
func (t *UnionTypeExtension) TypeName() string       { return t.Name }
func (t *EnumTypeExtension) TypeName() string        { return t.Name }
func (t *InputObjectTypeExtension) TypeName() string { return t.Name }

func (*ScalarType) isDefinition()               {}
func (*ObjectType) isDefinition()               {}
func (*InterfaceType) isDefinition()            {}
func (*UnionType) isDefinition()                {}
func (*EnumType) isDefinition()                 {}
func (*InputObjectType) isDefinition()          {}
func (*ScalarTypeExtension) isDefinition()      {}
func (*ObjectTypeExtension) isDefinition()      {}
func (*InterfaceTypeExtension) isDefinition()   {}
func (*UnionTypeExtension) isDefinition()       {}
func (*EnumTypeExtension) isDefinition()        {}
func (*InputObjectTypeExtension) isDefinition() {}

func (*ScalarType) isTypeDefinition()      {}
func (*ObjectType) isTypeDefinition()      {}
func (*InterfaceType) isTypeDefinition()   {}
func (*UnionType) isTypeDefinition()       {}
func (*EnumType) isTypeDefinition()        {}
func (*InputObjectType) isTypeDefinition() {}

func (*ScalarTypeExtension) isTypeExtension()      {}
func (*ObjectTypeExtension) isTypeExtension()      {}
func (*InterfaceTypeExtension) isTypeExtension()   {}
func (*UnionTypeExtension) isTypeExtension()       {}
func (*EnumTypeExtension) isTypeExtension()        {}
func (*InputObjectTypeExtension) isTypeExtension() {}

// FieldByName returns the first field definition with the given name
func FieldByName(fields []FieldDefinition, name string) (FieldDefinition, bool) {
	for _, field := range fields {
		if field.Name == name {
			return field, true
		}
	}
	return FieldDefinition{}, false
}
