package lexer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elbow-jason/graphql-parser/pkg/input"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/position"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/token"
)

func TestLexer_Read(t *testing.T) {

	type checkFunc func(t *testing.T, lex *Lexer, cur *Cursor, i int)

	run := func(t *testing.T, inStr string, checks ...checkFunc) {
		t.Helper()
		lexer := &Lexer{}
		lexer.SetInput(input.NewInput([]byte(inStr)))
		cur := lexer.Start()
		for i := range checks {
			checks[i](t, lexer, &cur, i+1)
		}
	}

	mustRead := func(k token.Kind, wantLiteral string) checkFunc {
		return func(t *testing.T, lex *Lexer, cur *Cursor, i int) {
			t.Helper()
			tok, next, err := lex.Read(*cur)
			require.NoError(t, err, "check: %d", i)
			if k != tok.Kind {
				t.Fatalf("mustRead: want(kind): %s, got: %s [check: %d]", k, tok.String(), i)
			}
			gotLiteral := lex.input.ByteSliceString(tok.Literal)
			if wantLiteral != gotLiteral {
				t.Fatalf("mustRead: want(literal): %s, got: %s [check: %d]", wantLiteral, gotLiteral, i)
			}
			*cur = next
		}
	}

	mustReadPosition := func(line, column uint32) checkFunc {
		return func(t *testing.T, lex *Lexer, cur *Cursor, i int) {
			t.Helper()
			tok, next, err := lex.Read(*cur)
			require.NoError(t, err, "check: %d", i)
			want := position.Position{Line: line, Column: column}
			if want != tok.Position {
				t.Fatalf("mustReadPosition: want: %s, got: %s [check: %d]", want, tok.Position, i)
			}
			*cur = next
		}
	}

	mustErr := func(wantMessage string, line, column uint32) checkFunc {
		return func(t *testing.T, lex *Lexer, cur *Cursor, i int) {
			t.Helper()
			_, _, err := lex.Read(*cur)
			require.Error(t, err, "check: %d", i)
			var lexErr *LexError
			require.True(t, errors.As(err, &lexErr), "check: %d", i)
			assert.Equal(t, wantMessage, lexErr.Message(), "check: %d", i)
			assert.Equal(t, position.Position{Line: line, Column: column}, lexErr.Position(), "check: %d", i)
		}
	}

	t.Run("read eof multiple times", func(t *testing.T) {
		run(t, "x",
			mustRead(token.Name, "x"),
			mustRead(token.EOF, ""),
			mustRead(token.EOF, ""),
		)
	})
	t.Run("read empty input", func(t *testing.T) {
		run(t, "", mustRead(token.EOF, ""))
	})
	t.Run("read only whitespace and comments", func(t *testing.T) {
		run(t, " \t,\n# comment\r\n  ", mustRead(token.EOF, ""))
	})
	t.Run("read name", func(t *testing.T) {
		run(t, "_foo_Bar9 baz",
			mustRead(token.Name, "_foo_Bar9"),
			mustRead(token.Name, "baz"),
		)
	})
	t.Run("read keywords as names", func(t *testing.T) {
		run(t, "query fragment on",
			mustRead(token.Name, "query"),
			mustRead(token.Name, "fragment"),
			mustRead(token.Name, "on"),
		)
	})
	t.Run("read integer", func(t *testing.T) {
		run(t, "1337", mustRead(token.IntValue, "1337"))
	})
	t.Run("read zero", func(t *testing.T) {
		run(t, "0", mustRead(token.IntValue, "0"))
	})
	t.Run("read negative integer", func(t *testing.T) {
		run(t, "-1337", mustRead(token.IntValue, "-1337"))
	})
	t.Run("read integer with comma", func(t *testing.T) {
		run(t, "1337,", mustRead(token.IntValue, "1337"), mustRead(token.EOF, ""))
	})
	t.Run("read float", func(t *testing.T) {
		run(t, "13.37", mustRead(token.FloatValue, "13.37"))
	})
	t.Run("read negative float", func(t *testing.T) {
		run(t, "-13.37", mustRead(token.FloatValue, "-13.37"))
	})
	t.Run("read float followed by bracket", func(t *testing.T) {
		run(t, "1.1)", mustRead(token.FloatValue, "1.1"), mustRead(token.Punctuator, ")"))
	})
	t.Run("read float with exponent", func(t *testing.T) {
		run(t, "1e10 1.5E-3 2e+2",
			mustRead(token.FloatValue, "1e10"),
			mustRead(token.FloatValue, "1.5E-3"),
			mustRead(token.FloatValue, "2e+2"),
		)
	})
	t.Run("read with carriage return and line feed", func(t *testing.T) {
		run(t, "13.37\r\n", mustRead(token.FloatValue, "13.37"))
	})
	t.Run("read punctuators", func(t *testing.T) {
		run(t, "! $ & ( ) ... : = @ [ ] { | }",
			mustRead(token.Punctuator, "!"),
			mustRead(token.Punctuator, "$"),
			mustRead(token.Punctuator, "&"),
			mustRead(token.Punctuator, "("),
			mustRead(token.Punctuator, ")"),
			mustRead(token.Punctuator, "..."),
			mustRead(token.Punctuator, ":"),
			mustRead(token.Punctuator, "="),
			mustRead(token.Punctuator, "@"),
			mustRead(token.Punctuator, "["),
			mustRead(token.Punctuator, "]"),
			mustRead(token.Punctuator, "{"),
			mustRead(token.Punctuator, "|"),
			mustRead(token.Punctuator, "}"),
			mustRead(token.EOF, ""),
		)
	})
	t.Run("read spread followed by name", func(t *testing.T) {
		run(t, "...Frag",
			mustRead(token.Punctuator, "..."),
			mustRead(token.Name, "Frag"),
		)
	})
	t.Run("read variable", func(t *testing.T) {
		run(t, "$foo",
			mustRead(token.Punctuator, "$"),
			mustRead(token.Name, "foo"),
		)
	})
	t.Run("read string", func(t *testing.T) {
		run(t, `"foo bar"`, mustRead(token.StringValue, `"foo bar"`))
	})
	t.Run("read empty string", func(t *testing.T) {
		run(t, `"" x`, mustRead(token.StringValue, `""`), mustRead(token.Name, "x"))
	})
	t.Run("read string with escapes", func(t *testing.T) {
		run(t, `"a\"b\\c\/d\b\f\n\r\té"`, mustRead(token.StringValue, `"a\"b\\c\/d\b\f\n\r\té"`))
	})
	t.Run("read string with multi byte characters", func(t *testing.T) {
		run(t, `"héllo" x`,
			mustRead(token.StringValue, `"héllo"`),
			mustReadPosition(1, 9),
		)
	})
	t.Run("read block string", func(t *testing.T) {
		run(t, "\"\"\"\n  foo\n  \"bar\"\n\"\"\" baz",
			mustRead(token.BlockStringValue, "\"\"\"\n  foo\n  \"bar\"\n\"\"\""),
			mustRead(token.Name, "baz"),
		)
	})
	t.Run("read block string with escaped triple quote", func(t *testing.T) {
		run(t, `"""foo \""" bar""" x`,
			mustRead(token.BlockStringValue, `"""foo \""" bar"""`),
			mustRead(token.Name, "x"),
		)
	})
	t.Run("read empty block string", func(t *testing.T) {
		run(t, `""""""`, mustRead(token.BlockStringValue, `""""""`))
	})
	t.Run("skip comments", func(t *testing.T) {
		run(t, "# comment\nfoo # trailing\n# another\nbar",
			mustRead(token.Name, "foo"),
			mustRead(token.Name, "bar"),
			mustRead(token.EOF, ""),
		)
	})
	t.Run("skip byte order mark", func(t *testing.T) {
		run(t, "\xEF\xBB\xBFfoo", mustRead(token.Name, "foo"))
	})
	t.Run("positions", func(t *testing.T) {
		run(t, "query {\n  hero\r\n  ... on Droid\r\t}",
			mustReadPosition(1, 1),
			mustReadPosition(1, 7),
			mustReadPosition(2, 3),
			mustReadPosition(3, 3),
			mustReadPosition(3, 7),
			mustReadPosition(3, 10),
			mustReadPosition(4, 2),
			mustReadPosition(4, 3),
		)
	})
	t.Run("positions after block string", func(t *testing.T) {
		run(t, "\"\"\"a\nb\"\"\" c",
			mustReadPosition(1, 1),
			mustReadPosition(2, 6),
		)
	})

	t.Run("err on single dot", func(t *testing.T) {
		run(t, "..", mustErr(`unexpected character '.'`, 1, 1))
	})
	t.Run("err on unexpected character", func(t *testing.T) {
		run(t, "foo\n  ?", mustRead(token.Name, "foo"), mustErr(`unexpected character '?'`, 2, 3))
	})
	t.Run("err on unexpected multi byte character", func(t *testing.T) {
		run(t, "é", mustErr(`unexpected character 'é'`, 1, 1))
	})
	t.Run("err on leading zero", func(t *testing.T) {
		run(t, "0123", mustErr(`invalid number, unexpected digit after 0: '1'`, 1, 2))
	})
	t.Run("err on negative sign without digits", func(t *testing.T) {
		run(t, "- 1", mustErr("invalid number, expected digit after '-'", 1, 2))
	})
	t.Run("err on missing fraction digits", func(t *testing.T) {
		run(t, "1.", mustErr("invalid number, expected digit after '.'", 1, 3))
	})
	t.Run("err on missing exponent digits", func(t *testing.T) {
		run(t, "1.5e", mustErr("invalid number, expected digit in exponent", 1, 5))
	})
	t.Run("err on name directly after number", func(t *testing.T) {
		run(t, "123abc", mustErr(`invalid number, unexpected character 'a'`, 1, 4))
	})
	t.Run("err on second dot", func(t *testing.T) {
		run(t, "1.2.3", mustErr(`invalid number, unexpected character '.'`, 1, 4))
	})
	t.Run("err on unterminated string", func(t *testing.T) {
		run(t, `a "foo`, mustRead(token.Name, "a"), mustErr("unterminated string", 1, 3))
	})
	t.Run("err on string with line break", func(t *testing.T) {
		run(t, "\"foo\nbar\"", mustErr("unterminated string", 1, 1))
	})
	t.Run("err on string ending in backslash", func(t *testing.T) {
		run(t, `"foo\`, mustErr("unterminated string", 1, 1))
	})
	t.Run("read string with tab", func(t *testing.T) {
		run(t, "\"a\tb\"", mustRead(token.StringValue, "\"a\tb\""))
	})
	t.Run("err on control character in string", func(t *testing.T) {
		run(t, "\"a\x01b\"", mustErr(`invalid character within string: '\x01'`, 1, 3))
	})
	t.Run("err on null byte in string", func(t *testing.T) {
		run(t, "x \"\x00\"", mustRead(token.Name, "x"), mustErr(`invalid character within string: '\x00'`, 1, 4))
	})
	t.Run("err on invalid escape", func(t *testing.T) {
		run(t, `"ab\x"`, mustErr(`invalid escape sequence \x`, 1, 4))
	})
	t.Run("err on invalid unicode escape", func(t *testing.T) {
		run(t, `"\u12G4"`, mustErr("invalid unicode escape sequence", 1, 2))
	})
	t.Run("err on short unicode escape", func(t *testing.T) {
		run(t, `"\u12`, mustErr("invalid unicode escape sequence", 1, 2))
	})
	t.Run("err on unterminated block string", func(t *testing.T) {
		run(t, "x \"\"\"foo\n\"\"", mustRead(token.Name, "x"), mustErr("unterminated block string", 1, 3))
	})
}

func TestLexer_ReadIsPure(t *testing.T) {
	lexer := &Lexer{}
	lexer.SetInput(input.NewInput([]byte("a b c")))

	start := lexer.Start()
	first, afterFirst, err := lexer.Read(start)
	require.NoError(t, err)
	_, _, err = lexer.Read(afterFirst)
	require.NoError(t, err)

	again, afterAgain, err := lexer.Read(start)
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, afterFirst, afterAgain)
}

func TestLexer_ReadAll(t *testing.T) {
	lexer := &Lexer{}
	lexer.SetInput(input.NewInput([]byte(`query q($a: [Int!]! = [1, -2.5]) { f(b: "x") @d }`)))

	tokens, err := lexer.ReadAll()
	require.NoError(t, err)

	literals := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		literals = append(literals, lexer.input.ByteSliceString(tok.Literal))
	}
	assert.Equal(t, `query q ( $ a : [ Int ! ] ! = [ 1 -2.5 ] ) { f ( b : "x" ) @ d }`, strings.Join(literals, " "))
}

func TestLexer_Monotonicity(t *testing.T) {
	source := "# leading\nquery Q($v: Int = 1) {\r\n  a: b(c: \"\"\"x\n y\"\"\", d: [1.5e3, {e: $v}]) @skip(if: true)\n  ... on T { f }\n}\n"
	lexer := &Lexer{}
	lexer.SetInput(input.NewInput([]byte(source)))

	cur := lexer.Start()
	var previous token.Token
	for i := 0; ; i++ {
		tok, next, err := lexer.Read(cur)
		require.NoError(t, err)
		if i > 0 {
			assert.False(t, tok.Position.Less(previous.Position), "position must not decrease at token %d", i)
			if tok.Kind != token.EOF {
				assert.Greater(t, tok.Literal.Start, previous.Literal.Start, "offset must increase at token %d", i)
			}
		}
		assert.Equal(t, position.FromOffset([]byte(source), int(tok.Literal.Start)), tok.Position)
		if tok.Kind == token.EOF {
			again, _, err := lexer.Read(next)
			require.NoError(t, err)
			assert.Equal(t, tok, again)
			return
		}
		previous = tok
		cur = next
	}
}

func BenchmarkLexer_Read(b *testing.B) {
	source := []byte(`query Hero($episode: Episode = JEDI, $withFriends: Boolean!) {
  hero(episode: $episode) {
    name
    friends @include(if: $withFriends) {
      name
      ... on Droid { primaryFunction }
    }
  }
}`)
	lexer := &Lexer{}
	lexer.SetInput(input.NewInput(source))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cur := lexer.Start()
		for {
			tok, next, err := lexer.Read(cur)
			if err != nil {
				b.Fatal(err)
			}
			if tok.Kind == token.EOF {
				break
			}
			cur = next
		}
	}
}
