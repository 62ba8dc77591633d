package astparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elbow-jason/graphql-parser/pkg/input"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/literal"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/position"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/token"
)

func newStream(src string) *tokenStream {
	s := &tokenStream{}
	s.reset(input.NewInput([]byte(src)))
	return s
}

func TestTokenStream_PeekConsume(t *testing.T) {
	s := newStream("a { b }")

	first := s.peek()
	assert.Equal(t, token.Name, first.Kind)
	assert.Equal(t, first, s.peek())
	assert.Equal(t, "a", s.text(first))

	assert.Equal(t, first, s.consume())
	assert.Equal(t, "{", s.text(s.consume()))
	assert.Equal(t, "b", s.text(s.consume()))
	assert.Equal(t, "}", s.text(s.consume()))

	eof := s.consume()
	assert.Equal(t, token.EOF, eof.Kind)
	assert.Equal(t, token.EOF, s.consume().Kind)
	assert.Equal(t, position.Position{Line: 1, Column: 8}, eof.Position)
	assert.True(t, s.ok())
}

func TestTokenStream_CheckpointRestore(t *testing.T) {
	s := newStream("a b c")

	s.consume()
	cp := s.checkpoint()
	assert.Equal(t, "b", s.text(s.consume()))
	assert.Equal(t, "c", s.text(s.consume()))

	s.restore(cp)
	assert.Equal(t, "b", s.text(s.peek()))
	assert.Equal(t, "b", s.text(s.consume()))
}

func TestTokenStream_RestoreExpected(t *testing.T) {
	s := newStream("a b")

	assert.False(t, s.peekEquals(punct(literal.LBRACE)))
	cp := s.checkpoint()
	s.consume()
	assert.False(t, s.peekEquals(punct(literal.COLON)))
	assert.Equal(t, []string{`":"`}, s.expected)

	s.restore(cp)
	assert.Equal(t, []string{`"{"`}, s.expected)
}

func TestTokenStream_StickyError(t *testing.T) {
	s := newStream("a ?")

	s.consume()
	assert.Equal(t, token.EOF, s.peek().Kind)
	require.False(t, s.ok())
	assert.True(t, s.err.IsLexical())
	assert.Equal(t, position.Position{Line: 1, Column: 3}, s.err.Position())

	first := s.err
	s.fail()
	s.failAt(position.Position{Line: 9, Column: 9}, nil, "ignored")
	assert.Same(t, first, s.err)
	assert.False(t, s.peekEquals(name()))
}

func TestPrimitives(t *testing.T) {
	t.Run("kind", func(t *testing.T) {
		s := newStream("1 a")
		assert.True(t, s.peekEquals(kind(token.IntValue)))
		assert.False(t, s.peekEquals(kind(token.FloatValue)))
		_, ok := s.optional(kind(token.IntValue))
		assert.True(t, ok)
		assert.Empty(t, s.expected)
	})
	t.Run("keyword is exact", func(t *testing.T) {
		s := newStream("queryX")
		assert.False(t, s.peekEquals(keyword(literal.QUERY)))
		assert.True(t, s.peekEquals(name()))
	})
	t.Run("punctuator is not a name", func(t *testing.T) {
		s := newStream("{")
		assert.False(t, s.peekEquals(name()))
		assert.True(t, s.peekEquals(punct(literal.LBRACE)))
	})
	t.Run("expected set is deduplicated", func(t *testing.T) {
		s := newStream("1")
		s.peekEquals(name())
		s.peekEquals(name())
		s.peekEquals(punct(literal.LBRACE))
		assert.Equal(t, []string{"Name", `"{"`}, s.expected)
	})
	t.Run("mustRead", func(t *testing.T) {
		s := newStream("a")
		tok := s.mustRead(punct(literal.SPREAD))
		assert.Equal(t, token.Token{}, tok)
		require.False(t, s.ok())
		assert.Equal(t, `syntax error at 1:1: unexpected Name "a", expected "..."`, s.err.Error())
	})
}
