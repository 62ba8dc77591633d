package astparser

import (
	"fmt"
	"strconv"

	"github.com/elbow-jason/graphql-parser/pkg/input"
	"github.com/elbow-jason/graphql-parser/pkg/lexer"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/position"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/token"
)

// tokenStream turns the lexer into a cursor that can be peeked, consumed and rewound.
// The first error is sticky: once err is set every match fails and nothing gets consumed.
type tokenStream struct {
	lexer  lexer.Lexer
	input  *input.Input
	cursor lexer.Cursor

	peeked     token.Token
	peekedNext lexer.Cursor
	hasPeeked  bool

	// expected collects the descriptions of all matchers that failed against the next token
	expected []string

	err *ParseError
}

// checkpoint is a saved stream position, see tokenStream.restore
type checkpoint struct {
	cursor   lexer.Cursor
	expected []string
}

func (s *tokenStream) reset(in *input.Input) {
	s.input = in
	s.lexer.SetInput(in)
	s.cursor = s.lexer.Start()
	s.hasPeeked = false
	s.expected = s.expected[:0]
	s.err = nil
}

func (s *tokenStream) ok() bool {
	return s.err == nil
}

// peek returns the next token without consuming it.
// A lexical error is recorded and reported as an EOF token.
func (s *tokenStream) peek() token.Token {
	if s.hasPeeked {
		return s.peeked
	}
	if s.err != nil {
		return token.Token{Kind: token.EOF, Position: s.cursor.Position}
	}

	tok, next, err := s.lexer.Read(s.cursor)
	if err != nil {
		s.err = newLexicalError(err)
		return token.Token{Kind: token.EOF, Position: s.cursor.Position}
	}

	s.peeked = tok
	s.peekedNext = next
	s.hasPeeked = true
	return tok
}

// consume returns the next token and advances past it
func (s *tokenStream) consume() token.Token {
	tok := s.peek()
	if s.err != nil {
		return tok
	}
	s.cursor = s.peekedNext
	s.hasPeeked = false
	s.expected = s.expected[:0]
	return tok
}

func (s *tokenStream) checkpoint() checkpoint {
	cp := checkpoint{
		cursor: s.cursor,
	}
	if len(s.expected) != 0 {
		cp.expected = append(cp.expected, s.expected...)
	}
	return cp
}

// restore rewinds the stream to cp, the lexer is pure so the tokens after cp are read again
func (s *tokenStream) restore(cp checkpoint) {
	if s.err != nil {
		return
	}
	if cp.cursor != s.cursor {
		s.cursor = cp.cursor
		s.hasPeeked = false
	}
	s.expected = append(s.expected[:0], cp.expected...)
}

func (s *tokenStream) expect(description string) {
	for _, existing := range s.expected {
		if existing == description {
			return
		}
	}
	s.expected = append(s.expected, description)
}

func (s *tokenStream) text(tok token.Token) string {
	return s.input.ByteSliceString(tok.Literal)
}

// fail reports the next token as unexpected against everything tried so far
func (s *tokenStream) fail() {
	if s.err != nil {
		return
	}
	tok := s.peek()
	if s.err != nil {
		return
	}
	expected := make([]string, len(s.expected))
	copy(expected, s.expected)
	s.err = &ParseError{
		kind:       errorKindSyntax,
		position:   tok.Position,
		unexpected: s.describe(tok),
		expected:   expected,
	}
}

// failAt reports a syntax error with a custom message
func (s *tokenStream) failAt(pos position.Position, cause error, format string, args ...interface{}) {
	if s.err != nil {
		return
	}
	s.err = &ParseError{
		kind:     errorKindSyntax,
		position: pos,
		message:  fmt.Sprintf(format, args...),
		cause:    cause,
	}
}

func (s *tokenStream) describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return tok.Kind.String()
	case token.Punctuator:
		return strconv.Quote(s.text(tok))
	default:
		return fmt.Sprintf("%s %s", tok.Kind, strconv.Quote(s.text(tok)))
	}
}
