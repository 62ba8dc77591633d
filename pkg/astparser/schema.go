package astparser

import (
	"github.com/elbow-jason/graphql-parser/pkg/ast"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/token"
	"github.com/elbow-jason/graphql-parser/pkg/schema"
)

// parseSchemaDocument reads one or more type system definitions up to the end of the input
func (g *grammar) parseSchemaDocument() *schema.Document {
	doc := &schema.Document{
		Input: g.input,
	}

	for g.ok() {
		definition := g.parseTypeSystemDefinition()
		if !g.ok() {
			return nil
		}
		doc.Definitions = append(doc.Definitions, definition)

		if g.peekEquals(matchEOF) {
			return doc
		}
	}

	return nil
}

func (g *grammar) parseTypeSystemDefinition() schema.Definition {
	description := g.parseDescription()
	if !g.ok() {
		return nil
	}

	if !description.IsDefined && g.peekEquals(matchExtend) {
		return g.parseExtension()
	}

	switch {
	case g.peekEquals(matchSchema):
		return g.parseSchemaDefinition(description)
	case g.peekEquals(matchScalar):
		return g.parseScalarType(description)
	case g.peekEquals(matchType):
		return g.parseObjectType(description)
	case g.peekEquals(matchIface):
		return g.parseInterfaceType(description)
	case g.peekEquals(matchUnion):
		return g.parseUnionType(description)
	case g.peekEquals(matchEnum):
		return g.parseEnumType(description)
	case g.peekEquals(matchInput):
		return g.parseInputObjectType(description)
	case g.peekEquals(matchDir):
		return g.parseDirectiveDefinition(description)
	default:
		g.fail()
		return nil
	}
}

// parseSchemaDefinition
// example:
// schema @dir { query: Query mutation: Mutation }
func (g *grammar) parseSchemaDefinition(description ast.Description) *schema.SchemaDefinition {
	schemaToken := g.consume()

	definition := &schema.SchemaDefinition{
		Position:    schemaToken.Position,
		Description: description,
		Directives:  g.parseDirectives(),
	}
	definition.RootOperationTypes = g.parseRootOperationTypes()
	return definition
}

// parseRootOperationTypes reads { operation: NamedType ... }, at least one binding is required.
// Bindings are kept in source order, binding the same operation twice is not an error.
func (g *grammar) parseRootOperationTypes() []schema.RootOperationTypeDefinition {
	g.mustRead(matchLBRACE)

	var rootOperationTypes []schema.RootOperationTypeDefinition
	for g.ok() {
		var operation schema.OperationType
		switch {
		case g.peekEquals(matchQuery):
			operation = schema.OperationTypeQuery
		case g.peekEquals(matchMut):
			operation = schema.OperationTypeMutation
		case g.peekEquals(matchSub):
			operation = schema.OperationTypeSubscription
		default:
			g.fail()
			return nil
		}
		operationToken := g.consume()
		g.mustRead(matchCOLON)
		namedType := g.parseNamedType()
		if !g.ok() {
			return nil
		}
		rootOperationTypes = append(rootOperationTypes, schema.RootOperationTypeDefinition{
			Position:  operationToken.Position,
			Operation: operation,
			NamedType: namedType,
		})

		if _, ok := g.optional(matchRBRACE); ok {
			return rootOperationTypes
		}
	}
	return nil
}

func (g *grammar) parseScalarType(description ast.Description) *schema.ScalarType {
	scalar := g.consume()
	_, name := g.mustReadName()
	return &schema.ScalarType{
		Position:    scalar.Position,
		Description: description,
		Name:        name,
		Directives:  g.parseDirectives(),
	}
}

// parseObjectType
// example:
// type Person implements Node & Entity @dir { name: String }
func (g *grammar) parseObjectType(description ast.Description) *schema.ObjectType {
	typeToken := g.consume()
	_, name := g.mustReadName()
	return &schema.ObjectType{
		Position:             typeToken.Position,
		Description:          description,
		Name:                 name,
		ImplementsInterfaces: g.parseImplementsInterfaces(),
		Directives:           g.parseDirectives(),
		Fields:               g.parseFieldDefinitions(),
	}
}

func (g *grammar) parseInterfaceType(description ast.Description) *schema.InterfaceType {
	interfaceToken := g.consume()
	_, name := g.mustReadName()
	return &schema.InterfaceType{
		Position:             interfaceToken.Position,
		Description:          description,
		Name:                 name,
		ImplementsInterfaces: g.parseImplementsInterfaces(),
		Directives:           g.parseDirectives(),
		Fields:               g.parseFieldDefinitions(),
	}
}

// parseUnionType
// example:
// union SearchResult @dir = Photo | Person
func (g *grammar) parseUnionType(description ast.Description) *schema.UnionType {
	union := g.consume()
	_, name := g.mustReadName()
	return &schema.UnionType{
		Position:    union.Position,
		Description: description,
		Name:        name,
		Directives:  g.parseDirectives(),
		Types:       g.parseUnionMembers(),
	}
}

func (g *grammar) parseEnumType(description ast.Description) *schema.EnumType {
	enum := g.consume()
	_, name := g.mustReadName()
	return &schema.EnumType{
		Position:    enum.Position,
		Description: description,
		Name:        name,
		Directives:  g.parseDirectives(),
		Values:      g.parseEnumValueDefinitions(),
	}
}

func (g *grammar) parseInputObjectType(description ast.Description) *schema.InputObjectType {
	inputToken := g.consume()
	_, name := g.mustReadName()
	return &schema.InputObjectType{
		Position:    inputToken.Position,
		Description: description,
		Name:        name,
		Directives:  g.parseDirectives(),
		Fields:      g.parseInputFieldDefinitions(),
	}
}

// parseImplementsInterfaces reads implements A & B if present, a leading & is allowed
func (g *grammar) parseImplementsInterfaces() []ast.NamedType {
	if _, ok := g.optional(matchImpl); !ok {
		return nil
	}

	g.optional(matchAND)
	interfaces := []ast.NamedType{g.parseNamedType()}
	for g.ok() {
		if _, ok := g.optional(matchAND); !ok {
			return interfaces
		}
		interfaces = append(interfaces, g.parseNamedType())
	}
	return nil
}

// parseUnionMembers reads = A | B if present, a leading | is allowed
func (g *grammar) parseUnionMembers() []ast.NamedType {
	if _, ok := g.optional(matchEQUALS); !ok {
		return nil
	}

	g.optional(matchPIPE)
	members := []ast.NamedType{g.parseNamedType()}
	for g.ok() {
		if _, ok := g.optional(matchPIPE); !ok {
			return members
		}
		members = append(members, g.parseNamedType())
	}
	return nil
}

// parseFieldDefinitions reads { field* } if present
func (g *grammar) parseFieldDefinitions() []schema.FieldDefinition {
	if _, ok := g.optional(matchLBRACE); !ok {
		return nil
	}

	fields := []schema.FieldDefinition{}
	for g.ok() {
		if _, ok := g.optional(matchRBRACE); ok {
			return fields
		}
		field := g.parseFieldDefinition()
		if !g.ok() {
			return nil
		}
		fields = append(fields, field)
	}
	return nil
}

// parseFieldDefinition
// example:
// "description" picture(size: Int = 64): Url @dir
func (g *grammar) parseFieldDefinition() schema.FieldDefinition {
	description := g.parseDescription()
	nameToken, name := g.mustReadName()
	field := schema.FieldDefinition{
		Position:    nameToken.Position,
		Description: description,
		Name:        name,
		Arguments:   g.parseArgumentDefinitions(),
	}
	g.mustRead(matchCOLON)
	field.Type = g.parseType()
	field.Directives = g.parseDirectives()
	return field
}

// parseArgumentDefinitions reads (arg: Type = default, ...) if present, at least one argument is required inside the parentheses
func (g *grammar) parseArgumentDefinitions() []schema.InputValueDefinition {
	if _, ok := g.optional(matchLPAREN); !ok {
		return nil
	}

	var arguments []schema.InputValueDefinition
	for g.ok() {
		argument := g.parseInputValueDefinition()
		if !g.ok() {
			return nil
		}
		arguments = append(arguments, argument)
		if _, ok := g.optional(matchRPAREN); ok {
			return arguments
		}
	}
	return nil
}

// parseInputFieldDefinitions reads { inputValue* } if present
func (g *grammar) parseInputFieldDefinitions() []schema.InputValueDefinition {
	if _, ok := g.optional(matchLBRACE); !ok {
		return nil
	}

	fields := []schema.InputValueDefinition{}
	for g.ok() {
		if _, ok := g.optional(matchRBRACE); ok {
			return fields
		}
		field := g.parseInputValueDefinition()
		if !g.ok() {
			return nil
		}
		fields = append(fields, field)
	}
	return nil
}

// parseInputValueDefinition
// example:
// "description" size: Int = 64 @dir
func (g *grammar) parseInputValueDefinition() schema.InputValueDefinition {
	description := g.parseDescription()
	nameToken, name := g.mustReadName()
	g.mustRead(matchCOLON)
	inputValue := schema.InputValueDefinition{
		Position:    nameToken.Position,
		Description: description,
		Name:        name,
		Type:        g.parseType(),
	}
	if _, ok := g.optional(matchEQUALS); ok {
		inputValue.DefaultValue = g.parseValue()
	}
	inputValue.Directives = g.parseDirectives()
	return inputValue
}

// parseEnumValueDefinitions reads { VALUE* } if present
func (g *grammar) parseEnumValueDefinitions() []schema.EnumValueDefinition {
	if _, ok := g.optional(matchLBRACE); !ok {
		return nil
	}

	values := []schema.EnumValueDefinition{}
	for g.ok() {
		if _, ok := g.optional(matchRBRACE); ok {
			return values
		}
		description := g.parseDescription()
		nameToken, name := g.mustReadName()
		value := schema.EnumValueDefinition{
			Position:    nameToken.Position,
			Description: description,
			Name:        name,
			Directives:  g.parseDirectives(),
		}
		if !g.ok() {
			return nil
		}
		values = append(values, value)
	}
	return nil
}

// parseDirectiveDefinition
// example:
// directive @example(arg: Int) repeatable on | FIELD | FRAGMENT_SPREAD
func (g *grammar) parseDirectiveDefinition(description ast.Description) *schema.DirectiveDefinition {
	directive := g.consume()
	g.mustRead(matchAT)
	_, name := g.mustReadName()

	definition := &schema.DirectiveDefinition{
		Position:    directive.Position,
		Description: description,
		Name:        name,
		Arguments:   g.parseArgumentDefinitions(),
	}
	if _, ok := g.optional(matchRepeat); ok {
		definition.Repeatable = true
	}
	g.mustRead(matchOn)
	definition.Locations = g.parseDirectiveLocations()
	return definition
}

// parseDirectiveLocations reads LOCATION | LOCATION ..., a leading | is allowed
func (g *grammar) parseDirectiveLocations() schema.DirectiveLocations {
	var locations schema.DirectiveLocations

	g.optional(matchPIPE)
	for g.ok() {
		tok := g.mustRead(matchName)
		if !g.ok() {
			break
		}
		location, err := schema.ParseDirectiveLocation(g.text(tok))
		if err != nil {
			g.failAt(tok.Position, err, "invalid directive location %q", g.text(tok))
			break
		}
		locations.Set(location)

		if _, ok := g.optional(matchPIPE); !ok {
			break
		}
	}
	return locations
}

// parseExtension
// example:
// extend type Person implements Node @dir { age: Int }
func (g *grammar) parseExtension() schema.Definition {
	extend := g.consume()

	switch {
	case g.peekEquals(matchSchema):
		return g.parseSchemaExtension(extend)
	case g.peekEquals(matchScalar):
		return g.parseScalarTypeExtension(extend)
	case g.peekEquals(matchType):
		return g.parseObjectTypeExtension(extend)
	case g.peekEquals(matchIface):
		return g.parseInterfaceTypeExtension(extend)
	case g.peekEquals(matchUnion):
		return g.parseUnionTypeExtension(extend)
	case g.peekEquals(matchEnum):
		return g.parseEnumTypeExtension(extend)
	case g.peekEquals(matchInput):
		return g.parseInputObjectTypeExtension(extend)
	default:
		g.fail()
		return nil
	}
}

// requireExtension fails on the next token when an extension adds nothing
func (g *grammar) requireExtension(extends bool) {
	if !extends {
		g.fail()
	}
}

func (g *grammar) parseSchemaExtension(extend token.Token) *schema.SchemaExtension {
	g.consume()
	extension := &schema.SchemaExtension{
		Position:   extend.Position,
		Directives: g.parseDirectives(),
	}
	if g.peekEquals(matchLBRACE) {
		extension.RootOperationTypes = g.parseRootOperationTypes()
	}
	g.requireExtension(len(extension.Directives) != 0 || len(extension.RootOperationTypes) != 0)
	return extension
}

func (g *grammar) parseScalarTypeExtension(extend token.Token) *schema.ScalarTypeExtension {
	g.consume()
	_, name := g.mustReadName()
	extension := &schema.ScalarTypeExtension{
		Position:   extend.Position,
		Name:       name,
		Directives: g.parseDirectives(),
	}
	g.requireExtension(len(extension.Directives) != 0)
	return extension
}

func (g *grammar) parseObjectTypeExtension(extend token.Token) *schema.ObjectTypeExtension {
	g.consume()
	_, name := g.mustReadName()
	extension := &schema.ObjectTypeExtension{
		Position:             extend.Position,
		Name:                 name,
		ImplementsInterfaces: g.parseImplementsInterfaces(),
		Directives:           g.parseDirectives(),
		Fields:               g.parseFieldDefinitions(),
	}
	g.requireExtension(extension.ImplementsInterfaces != nil || extension.Directives != nil || extension.Fields != nil)
	return extension
}

func (g *grammar) parseInterfaceTypeExtension(extend token.Token) *schema.InterfaceTypeExtension {
	g.consume()
	_, name := g.mustReadName()
	extension := &schema.InterfaceTypeExtension{
		Position:             extend.Position,
		Name:                 name,
		ImplementsInterfaces: g.parseImplementsInterfaces(),
		Directives:           g.parseDirectives(),
		Fields:               g.parseFieldDefinitions(),
	}
	g.requireExtension(extension.ImplementsInterfaces != nil || extension.Directives != nil || extension.Fields != nil)
	return extension
}

func (g *grammar) parseUnionTypeExtension(extend token.Token) *schema.UnionTypeExtension {
	g.consume()
	_, name := g.mustReadName()
	extension := &schema.UnionTypeExtension{
		Position:   extend.Position,
		Name:       name,
		Directives: g.parseDirectives(),
		Types:      g.parseUnionMembers(),
	}
	g.requireExtension(extension.Directives != nil || extension.Types != nil)
	return extension
}

func (g *grammar) parseEnumTypeExtension(extend token.Token) *schema.EnumTypeExtension {
	g.consume()
	_, name := g.mustReadName()
	extension := &schema.EnumTypeExtension{
		Position:   extend.Position,
		Name:       name,
		Directives: g.parseDirectives(),
		Values:     g.parseEnumValueDefinitions(),
	}
	g.requireExtension(extension.Directives != nil || extension.Values != nil)
	return extension
}

func (g *grammar) parseInputObjectTypeExtension(extend token.Token) *schema.InputObjectTypeExtension {
	g.consume()
	_, name := g.mustReadName()
	extension := &schema.InputObjectTypeExtension{
		Position:   extend.Position,
		Name:       name,
		Directives: g.parseDirectives(),
		Fields:     g.parseInputFieldDefinitions(),
	}
	g.requireExtension(extension.Directives != nil || extension.Fields != nil)
	return extension
}
