package ast

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

const blockQuote = `"""`

// DecodeString returns the content of a quoted string literal with all escape sequences resolved.
// raw must include the surrounding quotes. Without escape sequences the result shares memory with raw.
func DecodeString(raw string) (string, error) {
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return "", fmt.Errorf("DecodeString: not a quoted string: %q", raw)
	}
	body := raw[1 : len(raw)-1]
	if strings.IndexByte(body, '\\') == -1 {
		return body, nil
	}

	var sb strings.Builder
	sb.Grow(len(body))

	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		if i+1 >= len(body) {
			return "", fmt.Errorf("DecodeString: unterminated escape sequence in %q", raw)
		}
		i++
		switch body[i] {
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		case '/':
			sb.WriteByte('/')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'u':
			r, err := decodeHex(body, i+1)
			if err != nil {
				return "", err
			}
			i += 4
			if utf16.IsSurrogate(r) && strings.HasPrefix(body[i+1:], `\u`) {
				if low, err := decodeHex(body, i+3); err == nil {
					if combined := utf16.DecodeRune(r, low); combined != utf8.RuneError {
						r = combined
						i += 6
					}
				}
			}
			sb.WriteRune(r)
		default:
			return "", fmt.Errorf("DecodeString: invalid escape sequence \\%c in %q", body[i], raw)
		}
	}

	return sb.String(), nil
}

func decodeHex(body string, start int) (rune, error) {
	if start+4 > len(body) {
		return 0, fmt.Errorf("DecodeString: invalid unicode escape sequence")
	}
	code, err := strconv.ParseUint(body[start:start+4], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("DecodeString: invalid unicode escape sequence: %w", err)
	}
	return rune(code), nil
}

// BlockStringValue returns the content of a block string literal including its triple quotes.
// Common indentation is removed from all lines but the first,
// leading and trailing blank lines are dropped and line terminators are normalized to \n.
func BlockStringValue(raw string) string {
	body := strings.TrimSuffix(strings.TrimPrefix(raw, blockQuote), blockQuote)
	body = strings.ReplaceAll(body, `\"""`, blockQuote)

	lines := splitLines(body)

	commonIndent := -1
	for _, line := range lines[1:] {
		indent := leadingWhitespace(line)
		if indent == len(line) {
			continue
		}
		if commonIndent == -1 || indent < commonIndent {
			commonIndent = indent
		}
	}

	if commonIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) < commonIndent {
				lines[i] = ""
				continue
			}
			lines[i] = lines[i][commonIndent:]
		}
	}

	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}

	switch len(lines) {
	case 0:
		return ""
	case 1:
		return lines[0]
	default:
		return strings.Join(lines, "\n")
	}
}

func splitLines(body string) []string {
	lines := make([]string, 0, 8)
	start := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\n':
			lines = append(lines, body[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, body[start:i])
			if i+1 < len(body) && body[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	return append(lines, body[start:])
}

func leadingWhitespace(line string) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}

func isBlank(line string) bool {
	return leadingWhitespace(line) == len(line)
}
