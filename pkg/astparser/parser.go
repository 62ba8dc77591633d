// Package astparser turns GraphQL source text into the syntax trees of package query and package schema.
//
// Parsing stops at the first error, a failed parse never returns a partial document.
package astparser

import (
	"github.com/jensneuse/abstractlogger"

	"github.com/elbow-jason/graphql-parser/internal/pkg/unsafebytes"
	"github.com/elbow-jason/graphql-parser/pkg/input"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/position"
	"github.com/elbow-jason/graphql-parser/pkg/query"
	"github.com/elbow-jason/graphql-parser/pkg/schema"
)

// DefaultMaxDepth bounds the nesting of selection sets, list and object values and list types
const DefaultMaxDepth = 512

// Options are the settings a Parser applies to every document
type Options struct {
	// MaxDepth is the maximum nesting depth, 0 disables the limit
	MaxDepth int
}

// Option configures a Parser created with NewParser
type Option func(options *parserOptions)

type parserOptions struct {
	Options
	logger abstractlogger.Logger
}

// WithMaxDepth sets the maximum nesting depth, 0 disables the limit
func WithMaxDepth(depth int) Option {
	return func(options *parserOptions) {
		options.MaxDepth = depth
	}
}

// WithLogger sets the logger parse failures are reported to at debug level
func WithLogger(logger abstractlogger.Logger) Option {
	return func(options *parserOptions) {
		options.logger = logger
	}
}

// Parser holds configuration only, it is safe for concurrent use
type Parser struct {
	options Options
	log     abstractlogger.Logger
}

// NewParser returns a Parser with DefaultMaxDepth and a noop logger unless opts say otherwise
func NewParser(opts ...Option) *Parser {
	options := parserOptions{
		Options: Options{
			MaxDepth: DefaultMaxDepth,
		},
		logger: abstractlogger.Noop{},
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.MaxDepth < 0 {
		options.MaxDepth = 0
	}
	return &Parser{
		options: options.Options,
		log:     options.logger,
	}
}

var defaultParser = NewParser()

// ParseQuery parses an executable document with the default options.
// The returned document references src, src must not be modified afterwards.
func ParseQuery(src []byte) (*query.Document, error) {
	return defaultParser.ParseQuery(src)
}

// ParseSchema parses a type system document with the default options.
// The returned document references src, src must not be modified afterwards.
func ParseSchema(src []byte) (*schema.Document, error) {
	return defaultParser.ParseSchema(src)
}

// ParseQueryString is ParseQuery for a string, the document shares memory with src
func ParseQueryString(src string) (*query.Document, error) {
	return defaultParser.ParseQuery(unsafebytes.StringToBytes(src))
}

// ParseSchemaString is ParseSchema for a string, the document shares memory with src
func ParseSchemaString(src string) (*schema.Document, error) {
	return defaultParser.ParseSchema(unsafebytes.StringToBytes(src))
}

// ParseQuery parses an executable document, the document references src
func (p *Parser) ParseQuery(src []byte) (*query.Document, error) {
	g := p.newGrammar(src)
	doc := g.parseQueryDocument()
	if err := g.result(); err != nil {
		p.log.Debug("astparser: query parse failed",
			abstractlogger.String("grammar", "query"),
			abstractlogger.Error(err),
		)
		return nil, err
	}
	return doc, nil
}

// ParseSchema parses a type system document, the document references src
func (p *Parser) ParseSchema(src []byte) (*schema.Document, error) {
	g := p.newGrammar(src)
	doc := g.parseSchemaDocument()
	if err := g.result(); err != nil {
		p.log.Debug("astparser: schema parse failed",
			abstractlogger.String("grammar", "schema"),
			abstractlogger.Error(err),
		)
		return nil, err
	}
	return doc, nil
}

func (p *Parser) newGrammar(src []byte) *grammar {
	g := &grammar{
		maxDepth: p.options.MaxDepth,
	}
	g.reset(input.NewInput(src))
	return g
}

// grammar is the state of a single parse call
type grammar struct {
	tokenStream
	maxDepth int
	depth    int
}

func (g *grammar) result() error {
	if g.err != nil {
		return g.err
	}
	return nil
}

// enter increases the nesting depth for a construct starting at pos
func (g *grammar) enter(pos position.Position) bool {
	g.depth++
	if g.maxDepth > 0 && g.depth > g.maxDepth {
		cause := ErrDepthLimitExceeded{limit: g.maxDepth}
		g.failAt(pos, cause, "%s", cause.Error())
		return false
	}
	return true
}

func (g *grammar) leave() {
	g.depth--
}
