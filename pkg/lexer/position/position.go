// Package position tracks line and column information of a GraphQL document
package position

import (
	"fmt"
	"unicode/utf8"
)

// Position is a 1-based line and column pair, columns count characters not bytes
type Position struct {
	Line   uint32
	Column uint32
}

// Start is the position of the first character of every document
func Start() Position {
	return Position{
		Line:   1,
		Column: 1,
	}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func (p Position) IsSet() bool {
	return p.Line != 0 || p.Column != 0
}

// Compare returns -1, 0 or +1 ordering by line first and column second
func (p Position) Compare(another Position) int {
	switch {
	case p.Line < another.Line:
		return -1
	case p.Line > another.Line:
		return 1
	case p.Column < another.Column:
		return -1
	case p.Column > another.Column:
		return 1
	default:
		return 0
	}
}

func (p Position) Less(another Position) bool {
	return p.Compare(another) < 0
}

// Advance returns the position of offset to, given that p is the position of offset from.
// \n, \r\n and a lone \r each end a line, \r\n is counted once.
func (p Position) Advance(input []byte, from, to int) Position {
	if to > len(input) {
		to = len(input)
	}
	for i := from; i < to; i++ {
		switch input[i] {
		case '\n':
			if i > 0 && input[i-1] == '\r' {
				continue
			}
			p.Line++
			p.Column = 1
		case '\r':
			p.Line++
			p.Column = 1
		default:
			if utf8.RuneStart(input[i]) {
				p.Column++
			}
		}
	}
	return p
}

// FromOffset computes the position of the byte at offset
func FromOffset(input []byte, offset int) Position {
	return Start().Advance(input, 0, offset)
}
