// Package literal contains the fixed text of GraphQL punctuators and keywords
package literal

var (
	COLON          = []byte(":")
	BANG           = []byte("!")
	LINETERMINATOR = []byte("\n")
	TAB            = []byte("\t")
	SPACE          = []byte(" ")
	QUOTE          = []byte(`"`)
	BLOCKQUOTE     = []byte(`"""`)
	COMMA          = []byte(",")
	AT             = []byte("@")
	DOLLAR         = []byte("$")
	SPREAD         = []byte("...")
	PIPE           = []byte("|")
	EQUALS         = []byte("=")
	AND            = []byte("&")

	LPAREN = []byte("(")
	RPAREN = []byte(")")
	LBRACK = []byte("[")
	RBRACK = []byte("]")
	LBRACE = []byte("{")
	RBRACE = []byte("}")

	QUERY        = []byte("query")
	MUTATION     = []byte("mutation")
	SUBSCRIPTION = []byte("subscription")
	FRAGMENT     = []byte("fragment")
	ON           = []byte("on")
	TRUE         = []byte("true")
	FALSE        = []byte("false")
	NULL         = []byte("null")

	SCHEMA     = []byte("schema")
	EXTEND     = []byte("extend")
	SCALAR     = []byte("scalar")
	TYPE       = []byte("type")
	INTERFACE  = []byte("interface")
	UNION      = []byte("union")
	ENUM       = []byte("enum")
	INPUT      = []byte("input")
	DIRECTIVE  = []byte("directive")
	IMPLEMENTS = []byte("implements")
	REPEATABLE = []byte("repeatable")
)
