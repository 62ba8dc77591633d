package astparser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elbow-jason/graphql-parser/pkg/ast"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/position"
	"github.com/elbow-jason/graphql-parser/pkg/schema"
)

func mustParseSchema(t *testing.T, src string) *schema.Document {
	t.Helper()
	doc, err := ParseSchema([]byte(src))
	require.NoError(t, err)
	require.NotNil(t, doc)
	return doc
}

func TestParseSchema_SchemaDefinition(t *testing.T) {
	doc := mustParseSchema(t, `"root" schema @dir { query: Query mutation: Mutation subscription: Subscription }`)

	require.Len(t, doc.Definitions, 1)
	definition := doc.Definitions[0].(*schema.SchemaDefinition)
	assertTreeEqual(t, &schema.SchemaDefinition{
		Description: ast.Description{IsDefined: true, Content: "root"},
		Directives:  []ast.Directive{{Name: "dir"}},
		RootOperationTypes: []schema.RootOperationTypeDefinition{
			{Operation: schema.OperationTypeQuery, NamedType: ast.NamedType{Name: "Query"}},
			{Operation: schema.OperationTypeMutation, NamedType: ast.NamedType{Name: "Mutation"}},
			{Operation: schema.OperationTypeSubscription, NamedType: ast.NamedType{Name: "Subscription"}},
		},
	}, definition)
	assert.Equal(t, position.Position{Line: 1, Column: 8}, definition.Position)
}

func TestParseSchema_DuplicateOperationBinding(t *testing.T) {
	doc := mustParseSchema(t, "schema { query: A query: B }")

	definition := doc.Definitions[0].(*schema.SchemaDefinition)
	require.Len(t, definition.RootOperationTypes, 2)

	bindings := definition.Bindings(schema.OperationTypeQuery)
	require.Len(t, bindings, 2)
	assert.Equal(t, "A", bindings[0].NamedType.Name)
	assert.Equal(t, "B", bindings[1].NamedType.Name)
	assert.True(t, bindings[0].Position.Less(bindings[1].Position))
}

func TestParseSchema_TypeDefinitions(t *testing.T) {
	doc := mustParseSchema(t, `
		"""
		A scalar
		"""
		scalar Time @specifiedBy(url: "https://example.com")

		"A person"
		type Person implements & Node & Entity @key(fields: "id") {
			"the id"
			id: ID!
			friends(first: Int = 10 @deprecated, "cursor" after: String): [Person!]! @cost(weight: 2)
		}

		interface Node implements Entity { id: ID! }

		union SearchResult @dir = | Photo | Person

		enum Direction { "up" NORTH @deprecated(reason: "no") SOUTH }

		input Point { x: Float = 0.5, y: Float! @dir, tags: [String] = ["a"] }

		type Empty
	`)

	require.Len(t, doc.Definitions, 7)

	assertTreeEqual(t, []schema.Definition{
		&schema.ScalarType{
			Description: ast.Description{IsDefined: true, IsBlockString: true, Content: "A scalar"},
			Name:        "Time",
			Directives: []ast.Directive{
				{Name: "specifiedBy", Arguments: []ast.Argument{{Name: "url", Value: ast.StringValue{Value: "https://example.com"}}}},
			},
		},
		&schema.ObjectType{
			Description:          ast.Description{IsDefined: true, Content: "A person"},
			Name:                 "Person",
			ImplementsInterfaces: []ast.NamedType{{Name: "Node"}, {Name: "Entity"}},
			Directives: []ast.Directive{
				{Name: "key", Arguments: []ast.Argument{{Name: "fields", Value: ast.StringValue{Value: "id"}}}},
			},
			Fields: []schema.FieldDefinition{
				{
					Description: ast.Description{IsDefined: true, Content: "the id"},
					Name:        "id",
					Type:        ast.NonNullType{OfType: ast.NamedType{Name: "ID"}},
				},
				{
					Name: "friends",
					Arguments: []schema.InputValueDefinition{
						{
							Name:         "first",
							Type:         ast.NamedType{Name: "Int"},
							DefaultValue: ast.IntValue{Raw: "10"},
							Directives:   []ast.Directive{{Name: "deprecated"}},
						},
						{
							Description: ast.Description{IsDefined: true, Content: "cursor"},
							Name:        "after",
							Type:        ast.NamedType{Name: "String"},
						},
					},
					Type: ast.NonNullType{OfType: ast.ListType{OfType: ast.NonNullType{OfType: ast.NamedType{Name: "Person"}}}},
					Directives: []ast.Directive{
						{Name: "cost", Arguments: []ast.Argument{{Name: "weight", Value: ast.IntValue{Raw: "2"}}}},
					},
				},
			},
		},
		&schema.InterfaceType{
			Name:                 "Node",
			ImplementsInterfaces: []ast.NamedType{{Name: "Entity"}},
			Fields: []schema.FieldDefinition{
				{Name: "id", Type: ast.NonNullType{OfType: ast.NamedType{Name: "ID"}}},
			},
		},
		&schema.UnionType{
			Name:       "SearchResult",
			Directives: []ast.Directive{{Name: "dir"}},
			Types:      []ast.NamedType{{Name: "Photo"}, {Name: "Person"}},
		},
		&schema.EnumType{
			Name: "Direction",
			Values: []schema.EnumValueDefinition{
				{
					Description: ast.Description{IsDefined: true, Content: "up"},
					Name:        "NORTH",
					Directives: []ast.Directive{
						{Name: "deprecated", Arguments: []ast.Argument{{Name: "reason", Value: ast.StringValue{Value: "no"}}}},
					},
				},
				{Name: "SOUTH"},
			},
		},
		&schema.InputObjectType{
			Name: "Point",
			Fields: []schema.InputValueDefinition{
				{Name: "x", Type: ast.NamedType{Name: "Float"}, DefaultValue: ast.FloatValue{Raw: "0.5"}},
				{Name: "y", Type: ast.NonNullType{OfType: ast.NamedType{Name: "Float"}}, Directives: []ast.Directive{{Name: "dir"}}},
				{
					Name:         "tags",
					Type:         ast.ListType{OfType: ast.NamedType{Name: "String"}},
					DefaultValue: ast.ListValue{Values: []ast.Value{ast.StringValue{Value: "a"}}},
				},
			},
		},
		&schema.ObjectType{
			Name: "Empty",
		},
	}, doc.Definitions)

	object := doc.Definitions[1].(*schema.ObjectType)
	assert.Equal(t, position.Position{Line: 8, Column: 3}, object.Position)
	assert.Equal(t, position.Position{Line: 7, Column: 3}, object.Description.Position)
}

func TestParseSchema_DirectiveDefinition(t *testing.T) {
	doc := mustParseSchema(t, `
		"caches a field"
		directive @cached(ttl: Int = 60) repeatable on | FIELD_DEFINITION | OBJECT | FIELD
		directive @plain on QUERY
	`)

	require.Len(t, doc.Definitions, 2)

	cached := doc.Definitions[0].(*schema.DirectiveDefinition)
	assert.Equal(t, "cached", cached.Name)
	assert.Equal(t, "caches a field", cached.Description.Content)
	assert.True(t, cached.Repeatable)
	require.Len(t, cached.Arguments, 1)
	assert.Equal(t, ast.IntValue{Position: position.Position{Line: 3, Column: 32}, Raw: "60"}, cached.Arguments[0].DefaultValue)
	assert.Equal(t, 3, cached.Locations.Len())
	assert.Equal(t, []schema.DirectiveLocation{
		schema.ExecutableDirectiveLocationField,
		schema.TypeSystemDirectiveLocationObject,
		schema.TypeSystemDirectiveLocationFieldDefinition,
	}, cached.Locations.Slice())

	plain := doc.Definitions[1].(*schema.DirectiveDefinition)
	assert.False(t, plain.Repeatable)
	assert.True(t, plain.Locations.Get(schema.ExecutableDirectiveLocationQuery))

	found, ok := doc.DirectiveDefinitionByName("plain")
	assert.True(t, ok)
	assert.Same(t, plain, found)
}

func TestParseSchema_Extensions(t *testing.T) {
	doc := mustParseSchema(t, `
		extend schema @dir { subscription: Subscription }
		extend scalar Time @dir
		extend type Person implements Node { age: Int }
		extend interface Node @dir
		extend union SearchResult = Video
		extend enum Direction { EAST }
		extend input Point @dir
	`)

	assertTreeEqual(t, []schema.Definition{
		&schema.SchemaExtension{
			Directives: []ast.Directive{{Name: "dir"}},
			RootOperationTypes: []schema.RootOperationTypeDefinition{
				{Operation: schema.OperationTypeSubscription, NamedType: ast.NamedType{Name: "Subscription"}},
			},
		},
		&schema.ScalarTypeExtension{Name: "Time", Directives: []ast.Directive{{Name: "dir"}}},
		&schema.ObjectTypeExtension{
			Name:                 "Person",
			ImplementsInterfaces: []ast.NamedType{{Name: "Node"}},
			Fields:               []schema.FieldDefinition{{Name: "age", Type: ast.NamedType{Name: "Int"}}},
		},
		&schema.InterfaceTypeExtension{Name: "Node", Directives: []ast.Directive{{Name: "dir"}}},
		&schema.UnionTypeExtension{Name: "SearchResult", Types: []ast.NamedType{{Name: "Video"}}},
		&schema.EnumTypeExtension{Name: "Direction", Values: []schema.EnumValueDefinition{{Name: "EAST"}}},
		&schema.InputObjectTypeExtension{Name: "Point", Directives: []ast.Directive{{Name: "dir"}}},
	}, doc.Definitions)

	extension, ok := doc.Definitions[2].(schema.TypeExtension)
	require.True(t, ok)
	assert.Equal(t, "Person", extension.TypeName())
	assert.Equal(t, position.Position{Line: 4, Column: 3}, extension.Pos())
	assert.Len(t, doc.TypeDefinitions(), 0)
}

func TestParseSchema_Errors(t *testing.T) {
	run := func(t *testing.T, src, wantErr string) {
		t.Helper()
		doc, err := ParseSchema([]byte(src))
		assert.Nil(t, doc)
		require.Error(t, err)
		assert.Equal(t, wantErr, err.Error())
	}

	t.Run("invalid directive location", func(t *testing.T) {
		_, err := ParseSchema([]byte("directive @d on NOT_A_LOCATION"))
		require.Error(t, err)
		assert.Equal(t, `syntax error at 1:17: invalid directive location "NOT_A_LOCATION"`, err.Error())
		assert.True(t, errors.Is(err, schema.ErrInvalidDirectiveLocation))

		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, position.Position{Line: 1, Column: 17}, parseErr.Position())
	})
	t.Run("missing directive location", func(t *testing.T) {
		run(t, "directive @d on", `syntax error at 1:16: unexpected EndOfFile, expected one of: "|", Name`)
	})
	t.Run("repeatable after on", func(t *testing.T) {
		run(t, "directive @d on repeatable", `syntax error at 1:17: invalid directive location "repeatable"`)
	})
	t.Run("empty extension", func(t *testing.T) {
		run(t, "extend type A", `syntax error at 1:14: unexpected EndOfFile, expected one of: "implements", "@", "{"`)
	})
	t.Run("empty scalar extension", func(t *testing.T) {
		run(t, "extend scalar A scalar B", `syntax error at 1:17: unexpected Name "scalar", expected "@"`)
	})
	t.Run("description on extension", func(t *testing.T) {
		run(t, `"desc" extend type A @d`, `syntax error at 1:8: unexpected Name "extend", expected one of: "schema", "scalar", "type", "interface", "union", "enum", "input", "directive"`)
	})
	t.Run("empty schema definition", func(t *testing.T) {
		run(t, "schema {}", `syntax error at 1:9: unexpected "}", expected one of: "query", "mutation", "subscription"`)
	})
	t.Run("missing field type", func(t *testing.T) {
		run(t, "type A { b }", `syntax error at 1:12: unexpected "}", expected one of: "(", ":"`)
	})
	t.Run("unterminated block string", func(t *testing.T) {
		run(t, "\"\"\"doc\ntype A", "lexical error at 1:1: unterminated block string")
	})
	t.Run("executable definition", func(t *testing.T) {
		run(t, "{ a }", `syntax error at 1:1: unexpected "{", expected one of: StringValue, BlockStringValue, "extend", "schema", "scalar", "type", "interface", "union", "enum", "input", "directive"`)
	})
	t.Run("depth limit in default value", func(t *testing.T) {
		_, err := NewParser(WithMaxDepth(1)).ParseSchema([]byte("input A { b: [Int] = [[1]] }"))
		assert.EqualError(t, err, "syntax error at 1:23: maximum nesting depth of 1 exceeded")
	})
}

func TestParseSchemaString(t *testing.T) {
	doc, err := ParseSchemaString("scalar A")
	require.NoError(t, err)
	typeDefinition, ok := doc.TypeDefinitionByName("A")
	require.True(t, ok)
	assert.IsType(t, &schema.ScalarType{}, typeDefinition)
}
