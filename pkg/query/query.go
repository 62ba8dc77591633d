// Package query contains the syntax tree of executable GraphQL documents.
//
// Every name held by a node is a view into Document.Input, see package input.
package query

import (
	"github.com/elbow-jason/graphql-parser/pkg/ast"
	"github.com/elbow-jason/graphql-parser/pkg/input"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/position"
)

// Document is the root of a parsed executable document
type Document struct {
	Input       *input.Input
	Definitions []Definition
}

// Operations returns all operation definitions in source order
func (d *Document) Operations() []*OperationDefinition {
	var out []*OperationDefinition
	for _, definition := range d.Definitions {
		if operation, ok := definition.(*OperationDefinition); ok {
			out = append(out, operation)
		}
	}
	return out
}

// Fragments returns all fragment definitions in source order
func (d *Document) Fragments() []*FragmentDefinition {
	var out []*FragmentDefinition
	for _, definition := range d.Definitions {
		if fragment, ok := definition.(*FragmentDefinition); ok {
			out = append(out, fragment)
		}
	}
	return out
}

// OperationByName returns the first operation with the given name
func (d *Document) OperationByName(name string) (*OperationDefinition, bool) {
	for _, operation := range d.Operations() {
		if operation.Name == name {
			return operation, true
		}
	}
	return nil, false
}

// FragmentByName returns the first fragment with the given name
func (d *Document) FragmentByName(name string) (*FragmentDefinition, bool) {
	for _, fragment := range d.Fragments() {
		if fragment.Name == name {
			return fragment, true
		}
	}
	return nil, false
}

// Definition is either an *OperationDefinition or a *FragmentDefinition
type Definition interface {
	Pos() position.Position
	isDefinition()
}

type OperationKind int

const (
	// OperationKindSelectionSet is the shorthand form { ... } without a keyword
	OperationKindSelectionSet OperationKind = iota
	OperationKindQuery
	OperationKindMutation
	OperationKindSubscription
)

func (k OperationKind) String() string {
	switch k {
	case OperationKindQuery:
		return "query"
	case OperationKindMutation:
		return "mutation"
	case OperationKindSubscription:
		return "subscription"
	default:
		return "selection set"
	}
}

// OperationDefinition
// example:
// query Q($id: ID!) @dir { ... }
// or the shorthand { ... } in which case Kind is OperationKindSelectionSet and everything but the selection set is empty
type OperationDefinition struct {
	Position            position.Position
	Kind                OperationKind
	Name                string // empty for anonymous operations
	VariableDefinitions []VariableDefinition
	Directives          []ast.Directive
	SelectionSet        SelectionSet
}

// IsShorthand reports whether the operation was written as a bare selection set
func (o *OperationDefinition) IsShorthand() bool {
	return o.Kind == OperationKindSelectionSet
}

// FragmentDefinition
// example:
// fragment friendFields on User @dir { ... }
type FragmentDefinition struct {
	Position      position.Position
	Name          string
	TypeCondition TypeCondition
	Directives    []ast.Directive
	SelectionSet  SelectionSet
}

func (o *OperationDefinition) Pos() position.Position { return o.Position }
func (f *FragmentDefinition) Pos() position.Position  { return f.Position }

func (*OperationDefinition) isDefinition() {}
func (*FragmentDefinition) isDefinition()  {}

// VariableDefinition e.g. $id: ID! = 1 @dir
type VariableDefinition struct {
	Position     position.Position // $
	Name         string            // without the $
	Type         ast.Type
	DefaultValue ast.Value // nil when absent
	Directives   []ast.Directive
}

// TypeCondition e.g. on User
type TypeCondition struct {
	Position position.Position // on
	On       string
}

// Span brackets a region of the source
type Span struct {
	Start position.Position
	End   position.Position
}

// SelectionSet e.g. { id name }
// Span.Start is the position of the opening brace, Span.End the position of the closing brace.
type SelectionSet struct {
	Span  Span
	Items []Selection
}

// IsDefined reports whether the selection set was present in the source.
// An empty but present set { } is defined.
func (s SelectionSet) IsDefined() bool {
	return s.Span.Start.IsSet()
}
