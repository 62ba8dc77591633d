//go:build windows

package goldie

import (
	"bytes"
)

// fixtures are checked in with \n line endings
func normalizeLineEndings(actual []byte) []byte {
	return bytes.ReplaceAll(actual, []byte("\r\n"), []byte("\n"))
}
