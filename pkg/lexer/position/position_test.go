package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromOffset(t *testing.T) {
	run := func(t *testing.T, input string, offset int, want Position) {
		t.Helper()
		assert.Equal(t, want, FromOffset([]byte(input), offset))
	}

	t.Run("start", func(t *testing.T) {
		run(t, "query", 0, Position{Line: 1, Column: 1})
	})
	t.Run("same line", func(t *testing.T) {
		run(t, "query foo", 6, Position{Line: 1, Column: 7})
	})
	t.Run("line feed", func(t *testing.T) {
		run(t, "a\nb", 2, Position{Line: 2, Column: 1})
	})
	t.Run("carriage return line feed counts once", func(t *testing.T) {
		run(t, "a\r\nb", 3, Position{Line: 2, Column: 1})
	})
	t.Run("lone carriage return", func(t *testing.T) {
		run(t, "a\rb", 2, Position{Line: 2, Column: 1})
	})
	t.Run("multiple blank lines", func(t *testing.T) {
		run(t, "\n\r\n\n  x", 6, Position{Line: 4, Column: 3})
	})
	t.Run("multi byte characters count as one column", func(t *testing.T) {
		run(t, `"héllo" x`, 9, Position{Line: 1, Column: 9})
	})
	t.Run("offset beyond input is clamped", func(t *testing.T) {
		run(t, "ab", 10, Position{Line: 1, Column: 3})
	})
}

func TestPosition_Advance(t *testing.T) {
	in := []byte("a\r\nbc\r\nd")
	first := Start().Advance(in, 0, 1)
	assert.Equal(t, Position{Line: 1, Column: 2}, first)

	afterCR := first.Advance(in, 1, 2)
	assert.Equal(t, Position{Line: 2, Column: 1}, afterCR)

	// splitting between \r and \n must not count the line twice
	second := afterCR.Advance(in, 2, 3)
	assert.Equal(t, Position{Line: 2, Column: 1}, second)

	assert.Equal(t, FromOffset(in, 7), second.Advance(in, 3, 7))
}

func TestPosition_Compare(t *testing.T) {
	a := Position{Line: 1, Column: 5}
	b := Position{Line: 2, Column: 1}
	c := Position{Line: 2, Column: 3}

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.False(t, c.Less(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, 1, c.Compare(b))
	assert.Equal(t, "2:3", c.String())
	assert.False(t, Position{}.IsSet())
	assert.True(t, Start().IsSet())
}
