package astprinter

import (
	"github.com/elbow-jason/graphql-parser/pkg/ast"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/literal"
	"github.com/elbow-jason/graphql-parser/pkg/schema"
)

// PrintSchema writes all definitions of document separated by empty lines
func (p *Printer) PrintSchema(document *schema.Document) {
	for _, definition := range document.Definitions {
		p.margin()
		switch d := definition.(type) {
		case *schema.SchemaDefinition:
			p.printDescription(d.Description)
			p.write(literal.SCHEMA)
			p.printDirectives(d.Directives)
			p.write(literal.SPACE)
			p.printRootOperationTypes(d.RootOperationTypes)
		case *schema.SchemaExtension:
			p.printExtend()
			p.write(literal.SCHEMA)
			p.printDirectives(d.Directives)
			if len(d.RootOperationTypes) != 0 {
				p.write(literal.SPACE)
				p.printRootOperationTypes(d.RootOperationTypes)
			} else {
				p.endline()
			}
		case *schema.ScalarType:
			p.printDescription(d.Description)
			p.printScalar(literal.SCALAR, d.Name, d.Directives)
		case *schema.ScalarTypeExtension:
			p.printExtend()
			p.printScalar(literal.SCALAR, d.Name, d.Directives)
		case *schema.ObjectType:
			p.printDescription(d.Description)
			p.printObject(literal.TYPE, d.Name, d.ImplementsInterfaces, d.Directives, d.Fields)
		case *schema.ObjectTypeExtension:
			p.printExtend()
			p.printObject(literal.TYPE, d.Name, d.ImplementsInterfaces, d.Directives, d.Fields)
		case *schema.InterfaceType:
			p.printDescription(d.Description)
			p.printObject(literal.INTERFACE, d.Name, d.ImplementsInterfaces, d.Directives, d.Fields)
		case *schema.InterfaceTypeExtension:
			p.printExtend()
			p.printObject(literal.INTERFACE, d.Name, d.ImplementsInterfaces, d.Directives, d.Fields)
		case *schema.UnionType:
			p.printDescription(d.Description)
			p.printUnion(literal.UNION, d.Name, d.Directives, d.Types)
		case *schema.UnionTypeExtension:
			p.printExtend()
			p.printUnion(literal.UNION, d.Name, d.Directives, d.Types)
		case *schema.EnumType:
			p.printDescription(d.Description)
			p.printEnum(literal.ENUM, d.Name, d.Directives, d.Values)
		case *schema.EnumTypeExtension:
			p.printExtend()
			p.printEnum(literal.ENUM, d.Name, d.Directives, d.Values)
		case *schema.InputObjectType:
			p.printDescription(d.Description)
			p.printInputObject(literal.INPUT, d.Name, d.Directives, d.Fields)
		case *schema.InputObjectTypeExtension:
			p.printExtend()
			p.printInputObject(literal.INPUT, d.Name, d.Directives, d.Fields)
		case *schema.DirectiveDefinition:
			p.printDescription(d.Description)
			p.printDirectiveDefinition(d)
		}
	}
}

func (p *Printer) printExtend() {
	p.write(literal.EXTEND)
	p.write(literal.SPACE)
}

// printDescription writes the description on its own line at the current indentation
func (p *Printer) printDescription(description ast.Description) {
	if !description.IsDefined {
		return
	}
	p.printString(description.Content, description.IsBlockString)
	p.endline()
	p.indent()
}

func (p *Printer) printKeyword(keyword []byte, name string) {
	p.write(keyword)
	p.write(literal.SPACE)
	p.writeString(name)
}

func (p *Printer) printRootOperationTypes(rootOperationTypes []schema.RootOperationTypeDefinition) {
	p.startBlock()
	for i := range rootOperationTypes {
		p.indent()
		p.writeString(rootOperationTypes[i].Operation.String())
		p.write(literal.COLON)
		p.write(literal.SPACE)
		p.writeString(rootOperationTypes[i].NamedType.Name)
		p.endline()
	}
	p.endBlock()
}

func (p *Printer) printScalar(keyword []byte, name string, directives []ast.Directive) {
	p.printKeyword(keyword, name)
	p.printDirectives(directives)
	p.endline()
}

func (p *Printer) printObject(keyword []byte, name string, implements []ast.NamedType, directives []ast.Directive, fields []schema.FieldDefinition) {
	p.printKeyword(keyword, name)
	if len(implements) != 0 {
		p.write(literal.SPACE)
		p.write(literal.IMPLEMENTS)
		for i := range implements {
			if i != 0 {
				p.write(literal.SPACE)
				p.write(literal.AND)
			}
			p.write(literal.SPACE)
			p.writeString(implements[i].Name)
		}
	}
	p.printDirectives(directives)
	if fields == nil {
		p.endline()
		return
	}
	p.write(literal.SPACE)
	p.startBlock()
	for i := range fields {
		p.indent()
		p.printDescription(fields[i].Description)
		p.writeString(fields[i].Name)
		p.printArgumentDefinitions(fields[i].Arguments)
		p.write(literal.COLON)
		p.write(literal.SPACE)
		p.printType(fields[i].Type)
		p.printDirectives(fields[i].Directives)
		p.endline()
	}
	p.endBlock()
}

func (p *Printer) printUnion(keyword []byte, name string, directives []ast.Directive, members []ast.NamedType) {
	p.printKeyword(keyword, name)
	p.printDirectives(directives)
	for i := range members {
		p.write(literal.SPACE)
		if i == 0 {
			p.write(literal.EQUALS)
		} else {
			p.write(literal.PIPE)
		}
		p.write(literal.SPACE)
		p.writeString(members[i].Name)
	}
	p.endline()
}

func (p *Printer) printEnum(keyword []byte, name string, directives []ast.Directive, values []schema.EnumValueDefinition) {
	p.printKeyword(keyword, name)
	p.printDirectives(directives)
	if values == nil {
		p.endline()
		return
	}
	p.write(literal.SPACE)
	p.startBlock()
	for i := range values {
		p.indent()
		p.printDescription(values[i].Description)
		p.writeString(values[i].Name)
		p.printDirectives(values[i].Directives)
		p.endline()
	}
	p.endBlock()
}

func (p *Printer) printInputObject(keyword []byte, name string, directives []ast.Directive, fields []schema.InputValueDefinition) {
	p.printKeyword(keyword, name)
	p.printDirectives(directives)
	if fields == nil {
		p.endline()
		return
	}
	p.write(literal.SPACE)
	p.startBlock()
	for i := range fields {
		p.indent()
		p.printInputValueDefinition(fields[i])
		p.endline()
	}
	p.endBlock()
}

// printArgumentDefinitions keeps arguments on one line unless one of them has a description
func (p *Printer) printArgumentDefinitions(arguments []schema.InputValueDefinition) {
	if len(arguments) == 0 {
		return
	}

	multiline := p.style.MultilineArguments
	for i := range arguments {
		if arguments[i].Description.IsDefined {
			multiline = true
		}
	}

	p.write(literal.LPAREN)
	if !multiline {
		for i := range arguments {
			if i != 0 {
				p.write(literal.COMMA)
				p.write(literal.SPACE)
			}
			p.printInputValueDefinition(arguments[i])
		}
		p.write(literal.RPAREN)
		return
	}

	p.endline()
	p.level++
	for i := range arguments {
		p.indent()
		p.printInputValueDefinition(arguments[i])
		p.endline()
	}
	p.level--
	p.indent()
	p.write(literal.RPAREN)
}

func (p *Printer) printInputValueDefinition(value schema.InputValueDefinition) {
	p.printDescription(value.Description)
	p.writeString(value.Name)
	p.write(literal.COLON)
	p.write(literal.SPACE)
	p.printType(value.Type)
	p.printDefaultValue(value.DefaultValue)
	p.printDirectives(value.Directives)
}

func (p *Printer) printDefaultValue(value ast.Value) {
	if value == nil {
		return
	}
	p.write(literal.SPACE)
	p.write(literal.EQUALS)
	p.write(literal.SPACE)
	p.printValue(value)
}

func (p *Printer) printDirectiveDefinition(directive *schema.DirectiveDefinition) {
	p.write(literal.DIRECTIVE)
	p.write(literal.SPACE)
	p.write(literal.AT)
	p.writeString(directive.Name)
	p.printArgumentDefinitions(directive.Arguments)
	if directive.Repeatable {
		p.write(literal.SPACE)
		p.write(literal.REPEATABLE)
	}
	p.write(literal.SPACE)
	p.write(literal.ON)
	iter := directive.Locations.Iterable()
	for i := 0; iter.Next(); i++ {
		p.write(literal.SPACE)
		if i != 0 {
			p.write(literal.PIPE)
			p.write(literal.SPACE)
		}
		p.writeString(iter.Value().String())
	}
	p.endline()
}
