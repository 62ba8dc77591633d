// Package schema contains the syntax tree of GraphQL type system documents.
//
// Every name held by a node is a view into Document.Input, see package input.
package schema

import (
	"github.com/elbow-jason/graphql-parser/pkg/ast"
	"github.com/elbow-jason/graphql-parser/pkg/input"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/position"
)

// Document is the root of a parsed type system document
type Document struct {
	Input       *input.Input
	Definitions []Definition
}

// TypeDefinitions returns all type definitions in source order, extensions are not included
func (d *Document) TypeDefinitions() []TypeDefinition {
	var out []TypeDefinition
	for _, definition := range d.Definitions {
		if typeDefinition, ok := definition.(TypeDefinition); ok {
			out = append(out, typeDefinition)
		}
	}
	return out
}

// TypeDefinitionByName returns the first type definition with the given name
func (d *Document) TypeDefinitionByName(name string) (TypeDefinition, bool) {
	for _, typeDefinition := range d.TypeDefinitions() {
		if typeDefinition.TypeName() == name {
			return typeDefinition, true
		}
	}
	return nil, false
}

// DirectiveDefinitionByName returns the first directive definition with the given name
func (d *Document) DirectiveDefinitionByName(name string) (*DirectiveDefinition, bool) {
	for _, definition := range d.Definitions {
		if directive, ok := definition.(*DirectiveDefinition); ok && directive.Name == name {
			return directive, true
		}
	}
	return nil, false
}

// Definition is one of *SchemaDefinition, *SchemaExtension, TypeDefinition, TypeExtension or *DirectiveDefinition
type Definition interface {
	Pos() position.Position
	isDefinition()
}

// OperationType names the root of a schema
type OperationType int

const (
	OperationTypeUnknown OperationType = iota
	OperationTypeQuery
	OperationTypeMutation
	OperationTypeSubscription
)

func (o OperationType) String() string {
	switch o {
	case OperationTypeQuery:
		return "query"
	case OperationTypeMutation:
		return "mutation"
	case OperationTypeSubscription:
		return "subscription"
	default:
		return "unknown"
	}
}

// SchemaDefinition
// example:
//
//	schema {
//		query: Query
//		mutation: Mutation
//	}
//
// RootOperationTypes keeps every binding in source order, repeated bindings of one operation type included.
type SchemaDefinition struct {
	Position           position.Position // schema
	Description        ast.Description
	Directives         []ast.Directive
	RootOperationTypes []RootOperationTypeDefinition
}

// Bindings returns all root operation types bound to operation in source order
func (s *SchemaDefinition) Bindings(operation OperationType) []RootOperationTypeDefinition {
	return bindings(s.RootOperationTypes, operation)
}

// SchemaExtension
// example:
// extend schema @dir { subscription: Subscription }
type SchemaExtension struct {
	Position           position.Position // extend
	Directives         []ast.Directive
	RootOperationTypes []RootOperationTypeDefinition
}

func (s *SchemaExtension) Bindings(operation OperationType) []RootOperationTypeDefinition {
	return bindings(s.RootOperationTypes, operation)
}

func bindings(rootOperationTypes []RootOperationTypeDefinition, operation OperationType) []RootOperationTypeDefinition {
	var out []RootOperationTypeDefinition
	for _, rootOperationType := range rootOperationTypes {
		if rootOperationType.Operation == operation {
			out = append(out, rootOperationType)
		}
	}
	return out
}

// RootOperationTypeDefinition e.g. query: Query
type RootOperationTypeDefinition struct {
	Position  position.Position
	Operation OperationType
	NamedType ast.NamedType
}

// DirectiveDefinition
// example:
// directive @example(arg: Int) repeatable on FIELD | FRAGMENT_SPREAD
type DirectiveDefinition struct {
	Position    position.Position // directive
	Description ast.Description
	Name        string // without the @
	Arguments   []InputValueDefinition
	Repeatable  bool
	Locations   DirectiveLocations
}

func (s *SchemaDefinition) Pos() position.Position    { return s.Position }
func (s *SchemaExtension) Pos() position.Position     { return s.Position }
func (d *DirectiveDefinition) Pos() position.Position { return d.Position }

func (*SchemaDefinition) isDefinition()    {}
func (*SchemaExtension) isDefinition()     {}
func (*DirectiveDefinition) isDefinition() {}
