// Package unsafeprinter prints documents for tests, every error panics
package unsafeprinter

import (
	"github.com/elbow-jason/graphql-parser/internal/pkg/unsafeparser"
	"github.com/elbow-jason/graphql-parser/pkg/astprinter"
	"github.com/elbow-jason/graphql-parser/pkg/query"
	"github.com/elbow-jason/graphql-parser/pkg/schema"
)

func PrintQuery(document *query.Document) string {
	str, err := astprinter.PrintQueryString(document, astprinter.DefaultStyle())
	if err != nil {
		panic(err)
	}
	return str
}

func PrintSchema(document *schema.Document) string {
	str, err := astprinter.PrintSchemaString(document, astprinter.DefaultStyle())
	if err != nil {
		panic(err)
	}
	return str
}

// PrettifyQuery normalizes the layout of an executable document
func PrettifyQuery(document string) string {
	return PrintQuery(unsafeparser.ParseQueryString(document))
}

// PrettifySchema normalizes the layout of a type system document
func PrettifySchema(document string) string {
	return PrintSchema(unsafeparser.ParseSchemaString(document))
}
