package astprinter

import (
	"github.com/elbow-jason/graphql-parser/pkg/lexer/literal"
	"github.com/elbow-jason/graphql-parser/pkg/query"
)

// PrintQuery writes all definitions of document separated by empty lines
func (p *Printer) PrintQuery(document *query.Document) {
	for _, definition := range document.Definitions {
		p.margin()
		switch d := definition.(type) {
		case *query.OperationDefinition:
			p.printOperationDefinition(d)
		case *query.FragmentDefinition:
			p.printFragmentDefinition(d)
		}
	}
}

func (p *Printer) printOperationDefinition(operation *query.OperationDefinition) {
	if operation.IsShorthand() {
		p.printSelectionSet(operation.SelectionSet)
		return
	}

	p.writeString(operation.Kind.String())
	if operation.Name != "" {
		p.write(literal.SPACE)
		p.writeString(operation.Name)
	}
	p.printVariableDefinitions(operation.VariableDefinitions)
	p.printDirectives(operation.Directives)
	p.write(literal.SPACE)
	p.printSelectionSet(operation.SelectionSet)
}

func (p *Printer) printVariableDefinitions(definitions []query.VariableDefinition) {
	if len(definitions) == 0 {
		return
	}
	p.write(literal.LPAREN)
	for i := range definitions {
		if i != 0 {
			p.write(literal.COMMA)
			p.write(literal.SPACE)
		}
		p.write(literal.DOLLAR)
		p.writeString(definitions[i].Name)
		p.write(literal.COLON)
		p.write(literal.SPACE)
		p.printType(definitions[i].Type)
		p.printDefaultValue(definitions[i].DefaultValue)
		p.printDirectives(definitions[i].Directives)
	}
	p.write(literal.RPAREN)
}

func (p *Printer) printFragmentDefinition(fragment *query.FragmentDefinition) {
	p.write(literal.FRAGMENT)
	p.write(literal.SPACE)
	p.writeString(fragment.Name)
	p.write(literal.SPACE)
	p.printTypeCondition(fragment.TypeCondition)
	p.printDirectives(fragment.Directives)
	p.write(literal.SPACE)
	p.printSelectionSet(fragment.SelectionSet)
}

func (p *Printer) printTypeCondition(condition query.TypeCondition) {
	p.write(literal.ON)
	p.write(literal.SPACE)
	p.writeString(condition.On)
}

func (p *Printer) printSelectionSet(set query.SelectionSet) {
	p.startBlock()
	for _, selection := range set.Items {
		p.indent()
		switch s := selection.(type) {
		case *query.Field:
			p.printField(s)
		case *query.FragmentSpread:
			p.write(literal.SPREAD)
			p.writeString(s.FragmentName)
			p.printDirectives(s.Directives)
			p.endline()
		case *query.InlineFragment:
			p.write(literal.SPREAD)
			if s.TypeCondition != nil {
				p.write(literal.SPACE)
				p.printTypeCondition(*s.TypeCondition)
			}
			p.printDirectives(s.Directives)
			p.write(literal.SPACE)
			p.printSelectionSet(s.SelectionSet)
		}
	}
	p.endBlock()
}

func (p *Printer) printField(field *query.Field) {
	if field.Alias != "" {
		p.writeString(field.Alias)
		p.write(literal.COLON)
		p.write(literal.SPACE)
	}
	p.writeString(field.Name)
	p.printArguments(field.Arguments)
	p.printDirectives(field.Directives)
	if field.HasSelectionSet() {
		p.write(literal.SPACE)
		p.printSelectionSet(field.SelectionSet)
		return
	}
	p.endline()
}
