package astparser

import (
	"strconv"

	"github.com/elbow-jason/graphql-parser/pkg/lexer/literal"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/token"
)

// matcher describes a token the grammar is looking for.
// All token comparisons of the grammars go through a matcher.
type matcher struct {
	kind  token.Kind
	value string
}

// kind matches any token of kind k
func kind(k token.Kind) matcher {
	return matcher{kind: k}
}

// name matches any Name token, keywords included
func name() matcher {
	return matcher{kind: token.Name}
}

// punct matches the punctuator v
func punct(v []byte) matcher {
	return matcher{kind: token.Punctuator, value: string(v)}
}

// keyword matches a Name token spelled exactly v
func keyword(v []byte) matcher {
	return matcher{kind: token.Name, value: string(v)}
}

var (
	matchLBRACE = punct(literal.LBRACE)
	matchRBRACE = punct(literal.RBRACE)
	matchLPAREN = punct(literal.LPAREN)
	matchRPAREN = punct(literal.RPAREN)
	matchLBRACK = punct(literal.LBRACK)
	matchRBRACK = punct(literal.RBRACK)
	matchCOLON  = punct(literal.COLON)
	matchBANG   = punct(literal.BANG)
	matchDOLLAR = punct(literal.DOLLAR)
	matchAT     = punct(literal.AT)
	matchEQUALS = punct(literal.EQUALS)
	matchSPREAD = punct(literal.SPREAD)
	matchPIPE   = punct(literal.PIPE)
	matchAND    = punct(literal.AND)
	matchEOF    = kind(token.EOF)
	matchName   = name()
	matchString = kind(token.StringValue)
	matchBlock  = kind(token.BlockStringValue)
	matchInt    = kind(token.IntValue)
	matchFloat  = kind(token.FloatValue)
	matchQuery  = keyword(literal.QUERY)
	matchMut    = keyword(literal.MUTATION)
	matchSub    = keyword(literal.SUBSCRIPTION)
	matchFrag   = keyword(literal.FRAGMENT)
	matchOn     = keyword(literal.ON)
	matchTrue   = keyword(literal.TRUE)
	matchFalse  = keyword(literal.FALSE)
	matchNull   = keyword(literal.NULL)
	matchSchema = keyword(literal.SCHEMA)
	matchExtend = keyword(literal.EXTEND)
	matchScalar = keyword(literal.SCALAR)
	matchType   = keyword(literal.TYPE)
	matchIface  = keyword(literal.INTERFACE)
	matchUnion  = keyword(literal.UNION)
	matchEnum   = keyword(literal.ENUM)
	matchInput  = keyword(literal.INPUT)
	matchDir    = keyword(literal.DIRECTIVE)
	matchImpl   = keyword(literal.IMPLEMENTS)
	matchRepeat = keyword(literal.REPEATABLE)
)

// String is the description used in "expected" lists
func (m matcher) String() string {
	if m.value != "" {
		return strconv.Quote(m.value)
	}
	return m.kind.String()
}

func (s *tokenStream) matches(m matcher, tok token.Token) bool {
	if tok.Kind != m.kind {
		return false
	}
	if m.value == "" {
		return true
	}
	return s.text(tok) == m.value
}

// peekEquals reports whether the next token matches m.
// A miss adds m to the expected set of the current position.
func (s *tokenStream) peekEquals(m matcher) bool {
	tok := s.peek()
	if s.err != nil {
		return false
	}
	if s.matches(m, tok) {
		return true
	}
	s.expect(m.String())
	return false
}

// optional consumes the next token if it matches m
func (s *tokenStream) optional(m matcher) (token.Token, bool) {
	if !s.peekEquals(m) {
		return token.Token{}, false
	}
	return s.consume(), true
}

// mustRead consumes the next token, a mismatch sets the sticky error
func (s *tokenStream) mustRead(m matcher) token.Token {
	if tok, ok := s.optional(m); ok {
		return tok
	}
	s.fail()
	return token.Token{}
}

// mustReadName consumes a Name token and returns its text
func (s *tokenStream) mustReadName() (token.Token, string) {
	tok := s.mustRead(matchName)
	if s.err != nil {
		return tok, ""
	}
	return tok, s.text(tok)
}
