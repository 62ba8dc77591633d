package astparser

import (
	"github.com/elbow-jason/graphql-parser/pkg/lexer/literal"
	"github.com/elbow-jason/graphql-parser/pkg/query"
)

// parseQueryDocument reads one or more definitions up to the end of the input
func (g *grammar) parseQueryDocument() *query.Document {
	doc := &query.Document{
		Input: g.input,
	}

	for g.ok() {
		definition := g.parseExecutableDefinition()
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

func (g *grammar) parseExecutableDefinition() query.Definition {
	switch {
	case g.peekEquals(matchLBRACE):
		selectionSet := g.parseSelectionSet()
		return &query.OperationDefinition{
			Position:     selectionSet.Span.Start,
			Kind:         query.OperationKindSelectionSet,
			SelectionSet: selectionSet,
		}
	case g.peekEquals(matchQuery):
		return g.parseOperationDefinition(query.OperationKindQuery)
	case g.peekEquals(matchMut):
		return g.parseOperationDefinition(query.OperationKindMutation)
	case g.peekEquals(matchSub):
		return g.parseOperationDefinition(query.OperationKindSubscription)
	case g.peekEquals(matchFrag):
		return g.parseFragmentDefinition()
	default:
		g.fail()
		return nil
	}
}

// parseOperationDefinition
// example:
// query Q($id: ID!) @dir { ... }
func (g *grammar) parseOperationDefinition(kind query.OperationKind) *query.OperationDefinition {
	operationType := g.consume()

	operation := &query.OperationDefinition{
		Position: operationType.Position,
		Kind:     kind,
	}

	if tok, ok := g.optional(matchName); ok {
		operation.Name = g.text(tok)
	}
	operation.VariableDefinitions = g.parseVariableDefinitions()
	operation.Directives = g.parseDirectives()
	operation.SelectionSet = g.parseSelectionSet()

	return operation
}

// parseVariableDefinitions reads ($a: Int = 1 @dir, ...) if present, at least one definition is required inside the parentheses
func (g *grammar) parseVariableDefinitions() []query.VariableDefinition {
	if _, ok := g.optional(matchLPAREN); !ok {
		return nil
	}

	var definitions []query.VariableDefinition
	for g.ok() {
		variable := g.parseVariable()
		g.mustRead(matchCOLON)
		definition := query.VariableDefinition{
			Position: variable.Position,
			Name:     variable.Name,
			Type:     g.parseType(),
		}
		if _, ok := g.optional(matchEQUALS); ok {
			definition.DefaultValue = g.parseValue()
		}
		definition.Directives = g.parseDirectives()
		if !g.ok() {
			return nil
		}
		definitions = append(definitions, definition)

		if _, ok := g.optional(matchRPAREN); ok {
			return definitions
		}
	}
	return nil
}

// parseFragmentDefinition
// example:
// fragment friendFields on User @dir { ... }
func (g *grammar) parseFragmentDefinition() *query.FragmentDefinition {
	fragment := g.consume()

	nameToken := g.peek()
	if g.matches(matchOn, nameToken) {
		g.failAt(nameToken.Position, nil, "fragment name must not be %q", literal.ON)
		return nil
	}
	_, name := g.mustReadName()

	return &query.FragmentDefinition{
		Position:      fragment.Position,
		Name:          name,
		TypeCondition: g.parseTypeCondition(),
		Directives:    g.parseDirectives(),
		SelectionSet:  g.parseSelectionSet(),
	}
}

func (g *grammar) parseTypeCondition() query.TypeCondition {
	on := g.mustRead(matchOn)
	_, name := g.mustReadName()
	return query.TypeCondition{
		Position: on.Position,
		On:       name,
	}
}

// parseSelectionSet reads { selection* }, an empty set is accepted
func (g *grammar) parseSelectionSet() query.SelectionSet {
	open := g.mustRead(matchLBRACE)
	if !g.ok() || !g.enter(open.Position) {
		return query.SelectionSet{}
	}
	defer g.leave()

	set := query.SelectionSet{
		Span: query.Span{Start: open.Position},
	}

	for g.ok() {
		if closing, ok := g.optional(matchRBRACE); ok {
			set.Span.End = closing.Position
			return set
		}
		selection := g.parseSelection()
		if !g.ok() {
			break
		}
		set.Items = append(set.Items, selection)
	}

	return query.SelectionSet{}
}

func (g *grammar) parseSelection() query.Selection {
	switch {
	case g.peekEquals(matchSPREAD):
		return g.parseFragment()
	case g.peekEquals(matchName):
		return g.parseField()
	default:
		g.fail()
		return nil
	}
}

// parseField
// example:
// smallPic: profilePic(size: 64) @dir { url }
func (g *grammar) parseField() *query.Field {
	first, text := g.mustReadName()

	field := &query.Field{
		Position: first.Position,
		Name:     text,
	}

	// a colon after the first name turns it into the alias
	if _, ok := g.optional(matchCOLON); ok {
		field.Alias = text
		_, field.Name = g.mustReadName()
	}

	field.Arguments = g.parseArguments()
	field.Directives = g.parseDirectives()

	if g.peekEquals(matchLBRACE) {
		field.SelectionSet = g.parseSelectionSet()
	}

	return field
}

// parseFragment reads either a fragment spread or an inline fragment
// example:
// ...friendFields @dir
// ... on User { id }
// ... @dir { id }
func (g *grammar) parseFragment() query.Selection {
	spread := g.consume()

	// a name other than "on" makes it a spread, otherwise the name is rewound and read as type condition
	cp := g.checkpoint()
	if nameToken, ok := g.optional(matchName); ok {
		if !g.matches(matchOn, nameToken) {
			return &query.FragmentSpread{
				Position:     spread.Position,
				FragmentName: g.text(nameToken),
				Directives:   g.parseDirectives(),
			}
		}
		g.restore(cp)
	}

	inlineFragment := &query.InlineFragment{
		Position: spread.Position,
	}
	if g.peekEquals(matchOn) {
		typeCondition := g.parseTypeCondition()
		inlineFragment.TypeCondition = &typeCondition
	}
	inlineFragment.Directives = g.parseDirectives()
	inlineFragment.SelectionSet = g.parseSelectionSet()
	return inlineFragment
}
