package query

import (
	"github.com/elbow-jason/graphql-parser/pkg/ast"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/position"
)

// Selection is one of *Field, *FragmentSpread or *InlineFragment
type Selection interface {
	Pos() position.Position
	isSelection()
}

// Field
// example:
// smallPic: profilePic(size: 64) @skip(if: $foo) { url }
type Field struct {
	Position     position.Position
	Alias        string // empty when the field is not aliased
	Name         string
	Arguments    []ast.Argument
	Directives   []ast.Directive
	SelectionSet SelectionSet
}

// HasSelectionSet tells a leaf field apart from a field with a, possibly empty, selection set
func (f *Field) HasSelectionSet() bool {
	return f.SelectionSet.IsDefined()
}

// ResponseKey is the alias if one is given, otherwise the name
func (f *Field) ResponseKey() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// FragmentSpread
// example:
// ...friendFields @dir
type FragmentSpread struct {
	Position     position.Position // ...
	FragmentName string
	Directives   []ast.Directive
}

// InlineFragment
// example:
// ... on User @dir { id }
// TypeCondition is nil for ... @dir { id }
type InlineFragment struct {
	Position      position.Position // ...
	TypeCondition *TypeCondition
	Directives    []ast.Directive
	SelectionSet  SelectionSet
}

func (f *Field) Pos() position.Position          { return f.Position }
func (f *FragmentSpread) Pos() position.Position { return f.Position }
func (f *InlineFragment) Pos() position.Position { return f.Position }

func (*Field) isSelection()          {}
func (*FragmentSpread) isSelection() {}
func (*InlineFragment) isSelection() {}
