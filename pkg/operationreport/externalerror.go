package operationreport

import (
	"errors"

	"github.com/elbow-jason/graphql-parser/pkg/astparser"
)

const (
	CodeLexicalError       = "LEXICAL_ERROR"
	CodeSyntaxError        = "GRAPHQL_PARSE_FAILED"
	CodeDepthLimitExceeded = "DEPTH_LIMIT_EXCEEDED"
)

// Location is a 1-based line and column within the document
type Location struct {
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
}

type Extensions struct {
	Code string `json:"code"`
}

// ExternalError is an error meant to be shown to the author of the document
type ExternalError struct {
	Message    string      `json:"message"`
	Locations  []Location  `json:"locations,omitempty"`
	Extensions *Extensions `json:"extensions,omitempty"`
}

func (e ExternalError) Error() string {
	return e.Message
}

// ErrParse converts an error returned by the parser, ok is false for any other error
func ErrParse(err error) (externalError ExternalError, ok bool) {
	var parseErr *astparser.ParseError
	if !errors.As(err, &parseErr) {
		return ExternalError{}, false
	}

	code := CodeSyntaxError
	var depthErr astparser.ErrDepthLimitExceeded
	switch {
	case parseErr.IsLexical():
		code = CodeLexicalError
	case errors.As(parseErr, &depthErr):
		code = CodeDepthLimitExceeded
	}

	externalError = ExternalError{
		Message:    parseErr.Error(),
		Extensions: &Extensions{Code: code},
	}
	if pos := parseErr.Position(); pos.IsSet() {
		externalError.Locations = []Location{{Line: pos.Line, Column: pos.Column}}
	}
	return externalError, true
}
