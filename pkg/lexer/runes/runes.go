// Package runes contains the bytes the lexer dispatches on
package runes

// ignored between tokens
const (
	SPACE          = ' '
	TAB            = '\t'
	COMMA          = ','
	LINETERMINATOR = '\n'
	CARRIAGERETURN = '\r'
	HASHTAG        = '#'
)

// punctuators
const (
	BANG   = '!'
	DOLLAR = '$'
	AND    = '&'
	LPAREN = '('
	RPAREN = ')'
	DOT    = '.'
	COLON  = ':'
	EQUALS = '='
	AT     = '@'
	LBRACK = '['
	RBRACK = ']'
	LBRACE = '{'
	PIPE   = '|'
	RBRACE = '}'
)

// strings
const (
	QUOTE     = '"'
	BACKSLASH = '\\'
	SLASH     = '/'
)

// numbers and names
const (
	SUB        = '-'
	ADD        = '+'
	UNDERSCORE = '_'
)
