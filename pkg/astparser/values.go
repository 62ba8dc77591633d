package astparser

import (
	"github.com/elbow-jason/graphql-parser/pkg/ast"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/token"
)

// parseValue
// example:
// $id, 1, 1.5, "s", """block""", true, null, RED, [1 2], {a: 1}
func (g *grammar) parseValue() ast.Value {
	if !g.ok() {
		return nil
	}

	switch {
	case g.peekEquals(matchDOLLAR):
		return g.parseVariable()
	case g.peekEquals(matchInt):
		tok := g.consume()
		return ast.IntValue{Position: tok.Position, Raw: g.text(tok)}
	case g.peekEquals(matchFloat):
		tok := g.consume()
		return ast.FloatValue{Position: tok.Position, Raw: g.text(tok)}
	case g.peekEquals(matchString), g.peekEquals(matchBlock):
		return g.parseStringValue()
	case g.peekEquals(matchName):
		tok := g.consume()
		switch {
		case g.matches(matchTrue, tok):
			return ast.BooleanValue{Position: tok.Position, Value: true}
		case g.matches(matchFalse, tok):
			return ast.BooleanValue{Position: tok.Position, Value: false}
		case g.matches(matchNull, tok):
			return ast.NullValue{Position: tok.Position}
		default:
			return ast.EnumValue{Position: tok.Position, Name: g.text(tok)}
		}
	case g.peekEquals(matchLBRACK):
		return g.parseListValue()
	case g.peekEquals(matchLBRACE):
		return g.parseObjectValue()
	default:
		g.fail()
		return nil
	}
}

// parseVariable reads $name, the $ and the name are separate tokens
func (g *grammar) parseVariable() ast.Variable {
	dollar := g.mustRead(matchDOLLAR)
	_, name := g.mustReadName()
	return ast.Variable{
		Position: dollar.Position,
		Name:     name,
	}
}

func (g *grammar) parseStringValue() ast.Value {
	tok := g.consume()
	raw := g.text(tok)

	if tok.Kind == token.BlockStringValue {
		return ast.StringValue{
			Position: tok.Position,
			Value:    ast.BlockStringValue(raw),
			Block:    true,
		}
	}

	value, err := ast.DecodeString(raw)
	if err != nil {
		g.failAt(tok.Position, err, "%s", err.Error())
		return nil
	}
	return ast.StringValue{
		Position: tok.Position,
		Value:    value,
	}
}

func (g *grammar) parseListValue() ast.Value {
	open := g.mustRead(matchLBRACK)
	if !g.enter(open.Position) {
		return nil
	}
	defer g.leave()

	list := ast.ListValue{
		Position: open.Position,
	}
	for g.ok() {
		if _, ok := g.optional(matchRBRACK); ok {
			return list
		}
		value := g.parseValue()
		if !g.ok() {
			return nil
		}
		list.Values = append(list.Values, value)
	}
	return nil
}

func (g *grammar) parseObjectValue() ast.Value {
	open := g.mustRead(matchLBRACE)
	if !g.enter(open.Position) {
		return nil
	}
	defer g.leave()

	object := ast.ObjectValue{
		Position: open.Position,
	}
	for g.ok() {
		if _, ok := g.optional(matchRBRACE); ok {
			return object
		}
		nameToken, name := g.mustReadName()
		g.mustRead(matchCOLON)
		value := g.parseValue()
		if !g.ok() {
			return nil
		}
		object.Fields = append(object.Fields, ast.ObjectField{
			Position: nameToken.Position,
			Name:     name,
			Value:    value,
		})
	}
	return nil
}

// parseType
// example:
// String, [String], String!, [[Int!]]!
func (g *grammar) parseType() ast.Type {
	var ofType ast.Type

	switch {
	case g.peekEquals(matchName):
		tok := g.consume()
		ofType = ast.NamedType{Position: tok.Position, Name: g.text(tok)}
	case g.peekEquals(matchLBRACK):
		open := g.consume()
		if !g.enter(open.Position) {
			return nil
		}
		inner := g.parseType()
		g.mustRead(matchRBRACK)
		g.leave()
		if !g.ok() {
			return nil
		}
		ofType = ast.ListType{Position: open.Position, OfType: inner}
	default:
		g.fail()
		return nil
	}

	if bang, ok := g.optional(matchBANG); ok {
		return ast.NonNullType{
			Position: ofType.Pos(),
			Bang:     bang.Position,
			OfType:   ofType,
		}
	}
	return ofType
}

func (g *grammar) parseNamedType() ast.NamedType {
	tok, name := g.mustReadName()
	return ast.NamedType{Position: tok.Position, Name: name}
}

// parseArguments reads (name: value, ...) if present, at least one argument is required inside the parentheses
func (g *grammar) parseArguments() []ast.Argument {
	if _, ok := g.optional(matchLPAREN); !ok {
		return nil
	}

	var arguments []ast.Argument
	for g.ok() {
		nameToken, name := g.mustReadName()
		g.mustRead(matchCOLON)
		value := g.parseValue()
		if !g.ok() {
			return nil
		}
		arguments = append(arguments, ast.Argument{
			Position: nameToken.Position,
			Name:     name,
			Value:    value,
		})
		if _, ok := g.optional(matchRPAREN); ok {
			return arguments
		}
	}
	return nil
}

// parseDirectives reads any number of @name(arguments)
func (g *grammar) parseDirectives() []ast.Directive {
	var directives []ast.Directive
	for g.ok() {
		at, ok := g.optional(matchAT)
		if !ok {
			return directives
		}
		_, name := g.mustReadName()
		arguments := g.parseArguments()
		if !g.ok() {
			return nil
		}
		directives = append(directives, ast.Directive{
			Position:  at.Position,
			Name:      name,
			Arguments: arguments,
		})
	}
	return nil
}

// parseDescription reads an optional string or block string in front of a type system definition
func (g *grammar) parseDescription() ast.Description {
	if !g.peekEquals(matchString) && !g.peekEquals(matchBlock) {
		return ast.Description{}
	}

	value, ok := g.parseStringValue().(ast.StringValue)
	if !ok {
		return ast.Description{}
	}
	return ast.Description{
		IsDefined:     true,
		IsBlockString: value.Block,
		Content:       value.Value,
		Position:      value.Position,
	}
}
