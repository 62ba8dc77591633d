package astparser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/elbow-jason/graphql-parser/pkg/lexer"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/position"
)

// ErrDepthLimitExceeded is wrapped by a ParseError when a document nests deeper than the configured limit
type ErrDepthLimitExceeded struct {
	limit int
}

func (e ErrDepthLimitExceeded) Error() string {
	return fmt.Sprintf("maximum nesting depth of %d exceeded", e.limit)
}

// Limit is the maximum nesting depth that was in effect
func (e ErrDepthLimitExceeded) Limit() int {
	return e.limit
}

type errorKind int

const (
	errorKindSyntax errorKind = iota
	errorKindLexical
)

// ParseError is the only error returned by ParseQuery and ParseSchema.
// Apart from Position its content is meant for display, use Error to render it.
type ParseError struct {
	kind       errorKind
	position   position.Position
	message    string
	unexpected string
	expected   []string
	cause      error
}

func (e *ParseError) Error() string {
	var sb strings.Builder

	switch e.kind {
	case errorKindLexical:
		sb.WriteString("lexical error at ")
	default:
		sb.WriteString("syntax error at ")
	}
	sb.WriteString(e.position.String())
	sb.WriteString(": ")

	if e.message != "" {
		sb.WriteString(e.message)
		return sb.String()
	}

	sb.WriteString("unexpected ")
	sb.WriteString(e.unexpected)

	switch len(e.expected) {
	case 0:
	case 1:
		sb.WriteString(", expected ")
		sb.WriteString(e.expected[0])
	default:
		sb.WriteString(", expected one of: ")
		sb.WriteString(strings.Join(e.expected, ", "))
	}

	return sb.String()
}

// Position is the location of the offending token or character
func (e *ParseError) Position() position.Position {
	return e.position
}

// IsLexical reports whether the source could not be split into tokens
func (e *ParseError) IsLexical() bool {
	return e.kind == errorKindLexical
}

func (e *ParseError) Unwrap() error {
	return e.cause
}

func newLexicalError(err error) *ParseError {
	var lexErr *lexer.LexError
	if errors.As(err, &lexErr) {
		return &ParseError{
			kind:     errorKindLexical,
			position: lexErr.Position(),
			message:  lexErr.Message(),
			cause:    err,
		}
	}
	return &ParseError{
		kind:    errorKindLexical,
		message: err.Error(),
		cause:   err,
	}
}
