package escape

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elbow-jason/graphql-parser/pkg/ast"
)

func TestBytes(t *testing.T) {
	input := `foo
	bar
  baz	bal
"str"
`

	marshalled, err := json.Marshal(input)
	if err != nil {
		t.Fatal(err)
	}

	want := marshalled[1 : len(marshalled)-1]

	var out []byte

	got := Bytes([]byte(input), out)
	if !bytes.Equal(got, want) {
		t.Fatalf("\n%s (want)\n%s (got)", string(want), string(got))
	}

	out = make([]byte, len(input))

	got = Bytes([]byte(input), out)
	if !bytes.Equal(got, want) {
		t.Fatalf("\n%s (want)\n%s (got)", string(want), string(got))
	}

	out = out[:0]

	got = Bytes([]byte(input), out)
	if !bytes.Equal(got, want) {
		t.Fatalf("\n%s (want)\n%s (got)", string(want), string(got))
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, `a\\b\"c\u0001\u007fé`, String("a\\b\"c\x01\x7fé"))
	assert.Equal(t, "plain", String("plain"))
}

func TestNeeded(t *testing.T) {
	assert.False(t, Needed("plain text"))
	assert.True(t, Needed("new\nline"))
	assert.True(t, Needed(`back\slash`))
}

func TestStringDecodesBack(t *testing.T) {
	for _, in := range []string{"", "a\"b", "tab\there", "\\u0041", "\x00\x1f", "emoji 😀"} {
		decoded, err := ast.DecodeString(`"` + String(in) + `"`)
		assert.NoError(t, err)
		assert.Equal(t, in, decoded)
	}
}

func BenchmarkBytes(b *testing.B) {
	input := `foo
	bar
  baz	bal
`
	inputBytes := []byte(input)
	out := make([]byte, len(inputBytes)*2)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		out = Bytes(inputBytes, out)
	}
}
