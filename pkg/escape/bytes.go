// Package escape escapes text for use inside a quoted GraphQL string literal
package escape

const hex = "0123456789abcdef"

// Bytes appends the escaped form of in to out[:0] and returns the result.
// Quotes, backslashes and control characters are escaped, everything else is copied as is.
func Bytes(in, out []byte) []byte {
	out = out[:0]

	for _, c := range in {
		switch c {
		case '"':
			out = append(out, '\\', '"')
		case '\\':
			out = append(out, '\\', '\\')
		case '\n':
			out = append(out, '\\', 'n')
		case '\r':
			out = append(out, '\\', 'r')
		case '\t':
			out = append(out, '\\', 't')
		case '\b':
			out = append(out, '\\', 'b')
		case '\f':
			out = append(out, '\\', 'f')
		default:
			if c < 0x20 || c == 0x7f {
				out = append(out, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xf])
				continue
			}
			out = append(out, c)
		}
	}

	return out
}

// String is Bytes for strings
func String(in string) string {
	return string(Bytes([]byte(in), make([]byte, 0, len(in)+2)))
}

// Needed reports whether in contains a character Bytes would escape
func Needed(in string) bool {
	for i := 0; i < len(in); i++ {
		c := in[i]
		if c == '"' || c == '\\' || c < 0x20 || c == 0x7f {
			return true
		}
	}
	return false
}
