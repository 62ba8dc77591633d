// Package unsafeparser is for testing purposes only when error handling is overhead and panics are ok
package unsafeparser

import (
	"os"

	"github.com/elbow-jason/graphql-parser/pkg/astparser"
	"github.com/elbow-jason/graphql-parser/pkg/query"
	"github.com/elbow-jason/graphql-parser/pkg/schema"
)

func ParseQueryString(input string) *query.Document {
	doc, err := astparser.ParseQueryString(input)
	if err != nil {
		panic(err)
	}
	return doc
}

func ParseQueryFile(filePath string) *query.Document {
	doc, err := astparser.ParseQuery(readFile(filePath))
	if err != nil {
		panic(err)
	}
	return doc
}

func ParseSchemaString(input string) *schema.Document {
	doc, err := astparser.ParseSchemaString(input)
	if err != nil {
		panic(err)
	}
	return doc
}

func ParseSchemaFile(filePath string) *schema.Document {
	doc, err := astparser.ParseSchema(readFile(filePath))
	if err != nil {
		panic(err)
	}
	return doc
}

func readFile(filePath string) []byte {
	fileBytes, err := os.ReadFile(filePath)
	if err != nil {
		panic(err)
	}
	return fileBytes
}
