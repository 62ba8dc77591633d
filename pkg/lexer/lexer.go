// Package lexer turns GraphQL source text into tokens
package lexer

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/elbow-jason/graphql-parser/pkg/input"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/literal"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/position"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/runes"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/token"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Lexer emits tokens from an input.
// It keeps no state besides the input, all progress lives in the Cursor handed to Read.
type Lexer struct {
	input *input.Input
}

// Cursor is a resumable position within the input
type Cursor struct {
	Offset   int
	Position position.Position
}

// LexError is returned for input that cannot be tokenized
type LexError struct {
	message  string
	position position.Position
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexical error at %s: %s", e.position, e.message)
}

// Message is the description of the error without position information
func (e *LexError) Message() string {
	return e.message
}

func (e *LexError) Position() position.Position {
	return e.position
}

// SetInput sets the input to read tokens from
func (l *Lexer) SetInput(input *input.Input) {
	l.input = input
}

// Start returns the cursor pointing at the beginning of the input
func (l *Lexer) Start() Cursor {
	return Cursor{
		Position: position.Start(),
	}
}

// Read emits the token starting at cur together with the cursor right after it.
// Reading at the end of the input returns an EOF token, any number of times.
func (l *Lexer) Read(cur Cursor) (tok token.Token, next Cursor, err error) {
	raw := l.input.RawBytes

	start := l.skipIgnored(cur.Offset)
	pos := cur.Position.Advance(raw, cur.Offset, start)
	tok.Position = pos

	if start >= len(raw) {
		tok.Kind = token.EOF
		tok.Literal = input.ByteSliceReference{Start: uint32(len(raw)), End: uint32(len(raw))}
		return tok, Cursor{Offset: len(raw), Position: pos}, nil
	}

	var end int
	r := raw[start]

	switch {
	case runeIsNameStart(r):
		tok.Kind = token.Name
		end = l.readName(start)
	case r == runes.SUB || runeIsDigit(r):
		tok.Kind, end, err = l.readNumber(start, pos)
	case r == runes.QUOTE:
		if bytes.HasPrefix(raw[start:], literal.BLOCKQUOTE) {
			tok.Kind = token.BlockStringValue
			end, err = l.readBlockString(start, pos)
		} else {
			tok.Kind = token.StringValue
			end, err = l.readString(start, pos)
		}
	case r == runes.DOT:
		if !bytes.HasPrefix(raw[start:], literal.SPREAD) {
			return tok, cur, l.errUnexpectedCharacter(start, pos)
		}
		tok.Kind = token.Punctuator
		end = start + len(literal.SPREAD)
	case runeIsPunctuator(r):
		tok.Kind = token.Punctuator
		end = start + 1
	default:
		return tok, cur, l.errUnexpectedCharacter(start, pos)
	}

	if err != nil {
		return tok, cur, err
	}

	tok.Literal = input.ByteSliceReference{Start: uint32(start), End: uint32(end)}
	next = Cursor{
		Offset:   end,
		Position: pos.Advance(raw, start, end),
	}
	return tok, next, nil
}

// ReadAll tokenizes the whole input, the trailing EOF token is not part of the result
func (l *Lexer) ReadAll() ([]token.Token, error) {
	tokens := make([]token.Token, 0, 64)
	cur := l.Start()
	for {
		tok, next, err := l.Read(cur)
		if err != nil {
			return tokens, err
		}
		if tok.Kind == token.EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
		cur = next
	}
}

// skipIgnored returns the offset of the first significant byte at or after offset
func (l *Lexer) skipIgnored(offset int) int {
	raw := l.input.RawBytes
	for offset < len(raw) {
		switch raw[offset] {
		case runes.SPACE, runes.TAB, runes.COMMA, runes.LINETERMINATOR, runes.CARRIAGERETURN:
			offset++
		case runes.HASHTAG:
			for offset < len(raw) && raw[offset] != runes.LINETERMINATOR && raw[offset] != runes.CARRIAGERETURN {
				offset++
			}
		case bom[0]:
			if !bytes.HasPrefix(raw[offset:], bom) {
				return offset
			}
			offset += len(bom)
		default:
			return offset
		}
	}
	return offset
}

func (l *Lexer) readName(start int) int {
	raw := l.input.RawBytes
	end := start + 1
	for end < len(raw) && runeIsNameContinue(raw[end]) {
		end++
	}
	return end
}

func (l *Lexer) readNumber(start int, pos position.Position) (kind token.Kind, end int, err error) {
	raw := l.input.RawBytes
	i := start
	kind = token.IntValue

	if raw[i] == runes.SUB {
		i++
	}

	if i >= len(raw) || !runeIsDigit(raw[i]) {
		return kind, i, l.errAt(start, i, pos, "invalid number, expected digit after '-'")
	}

	if raw[i] == '0' {
		i++
		if i < len(raw) && runeIsDigit(raw[i]) {
			return kind, i, l.errAt(start, i, pos, fmt.Sprintf("invalid number, unexpected digit after 0: %q", raw[i]))
		}
	} else {
		i = l.readDigits(i)
	}

	if i < len(raw) && raw[i] == runes.DOT {
		kind = token.FloatValue
		i++
		if i >= len(raw) || !runeIsDigit(raw[i]) {
			return kind, i, l.errAt(start, i, pos, "invalid number, expected digit after '.'")
		}
		i = l.readDigits(i)
	}

	if i < len(raw) && (raw[i] == 'e' || raw[i] == 'E') {
		kind = token.FloatValue
		i++
		if i < len(raw) && (raw[i] == runes.ADD || raw[i] == runes.SUB) {
			i++
		}
		if i >= len(raw) || !runeIsDigit(raw[i]) {
			return kind, i, l.errAt(start, i, pos, "invalid number, expected digit in exponent")
		}
		i = l.readDigits(i)
	}

	if i < len(raw) && (raw[i] == runes.DOT || runeIsNameStart(raw[i])) {
		return kind, i, l.errAt(start, i, pos, fmt.Sprintf("invalid number, unexpected character %q", l.runeAt(i)))
	}

	return kind, i, nil
}

func (l *Lexer) readDigits(i int) int {
	raw := l.input.RawBytes
	for i < len(raw) && runeIsDigit(raw[i]) {
		i++
	}
	return i
}

func (l *Lexer) readString(start int, pos position.Position) (end int, err error) {
	raw := l.input.RawBytes
	i := start + 1

	for i < len(raw) {
		switch raw[i] {
		case runes.QUOTE:
			return i + 1, nil
		case runes.LINETERMINATOR, runes.CARRIAGERETURN:
			return i, l.errAt(start, start, pos, "unterminated string")
		case runes.BACKSLASH:
			if i+1 >= len(raw) {
				return i, l.errAt(start, start, pos, "unterminated string")
			}
			switch raw[i+1] {
			case runes.QUOTE, runes.BACKSLASH, runes.SLASH, 'b', 'f', 'n', 'r', 't':
				i += 2
			case 'u':
				if i+6 > len(raw) || !bytesAreHex(raw[i+2:i+6]) {
					return i, l.errAt(start, i, pos, "invalid unicode escape sequence")
				}
				i += 6
			default:
				return i, l.errAt(start, i, pos, fmt.Sprintf("invalid escape sequence \\%c", l.runeAt(i+1)))
			}
		default:
			if raw[i] < runes.SPACE && raw[i] != runes.TAB {
				return i, l.errAt(start, i, pos, fmt.Sprintf("invalid character within string: %q", rune(raw[i])))
			}
			i++
		}
	}

	return i, l.errAt(start, start, pos, "unterminated string")
}

func (l *Lexer) readBlockString(start int, pos position.Position) (end int, err error) {
	raw := l.input.RawBytes
	i := start + len(literal.BLOCKQUOTE)

	for i < len(raw) {
		switch {
		case raw[i] == runes.BACKSLASH && bytes.HasPrefix(raw[i+1:], literal.BLOCKQUOTE):
			i += 1 + len(literal.BLOCKQUOTE)
		case bytes.HasPrefix(raw[i:], literal.BLOCKQUOTE):
			return i + len(literal.BLOCKQUOTE), nil
		default:
			i++
		}
	}

	return i, l.errAt(start, start, pos, "unterminated block string")
}

func (l *Lexer) runeAt(offset int) rune {
	r, _ := utf8.DecodeRune(l.input.RawBytes[offset:])
	return r
}

func (l *Lexer) errUnexpectedCharacter(offset int, pos position.Position) error {
	return &LexError{
		message:  fmt.Sprintf("unexpected character %q", l.runeAt(offset)),
		position: pos,
	}
}

// errAt reports message at offset, start and pos describe the beginning of the current token
func (l *Lexer) errAt(start, offset int, pos position.Position, message string) error {
	return &LexError{
		message:  message,
		position: pos.Advance(l.input.RawBytes, start, offset),
	}
}

func runeIsNameStart(r byte) bool {
	return r == runes.UNDERSCORE || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func runeIsNameContinue(r byte) bool {
	return runeIsNameStart(r) || runeIsDigit(r)
}

func runeIsDigit(r byte) bool {
	return r >= '0' && r <= '9'
}

func runeIsPunctuator(r byte) bool {
	switch r {
	case runes.BANG, runes.DOLLAR, runes.AND, runes.LPAREN, runes.RPAREN, runes.COLON, runes.EQUALS,
		runes.AT, runes.LBRACK, runes.RBRACK, runes.LBRACE, runes.PIPE, runes.RBRACE:
		return true
	default:
		return false
	}
}

func bytesAreHex(b []byte) bool {
	for _, r := range b {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
