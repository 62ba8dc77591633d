// Package astprinter renders query and schema documents back into GraphQL source text.
//
// Printing a parsed document and parsing the output again yields the same tree, positions aside.
package astprinter

import (
	"bytes"
	"io"
	"strings"

	"github.com/elbow-jason/graphql-parser/internal/pkg/unsafebytes"
	"github.com/elbow-jason/graphql-parser/pkg/ast"
	"github.com/elbow-jason/graphql-parser/pkg/escape"
	"github.com/elbow-jason/graphql-parser/pkg/lexer/literal"
	"github.com/elbow-jason/graphql-parser/pkg/query"
	"github.com/elbow-jason/graphql-parser/pkg/schema"
)

// Style configures the layout of the output
type Style struct {
	// IndentWidth is the number of spaces per indentation level, ignored if UseTabs is set
	IndentWidth int
	UseTabs     bool
	// MultilineArguments puts every argument, list item and object field on its own line
	MultilineArguments bool
}

// DefaultStyle indents with two spaces and keeps arguments on one line
func DefaultStyle() Style {
	return Style{
		IndentWidth: 2,
	}
}

func (s Style) indentUnit() []byte {
	if s.UseTabs {
		return literal.TAB
	}
	return bytes.Repeat(literal.SPACE, s.IndentWidth)
}

func PrintQuery(document *query.Document, style Style, out io.Writer) error {
	p := NewPrinter(style, out)
	p.PrintQuery(document)
	return p.err
}

func PrintQueryString(document *query.Document, style Style) (string, error) {
	buff := &bytes.Buffer{}
	err := PrintQuery(document, style, buff)
	return buff.String(), err
}

func PrintSchema(document *schema.Document, style Style, out io.Writer) error {
	p := NewPrinter(style, out)
	p.PrintSchema(document)
	return p.err
}

func PrintSchemaString(document *schema.Document, style Style) (string, error) {
	buff := &bytes.Buffer{}
	err := PrintSchema(document, style, buff)
	return buff.String(), err
}

// PrintValue writes value on a single line
func PrintValue(value ast.Value, out io.Writer) error {
	p := NewPrinter(DefaultStyle(), out)
	p.printValue(value)
	return p.err
}

// PrintType writes a type reference, e.g. [Int!]!
func PrintType(t ast.Type, out io.Writer) error {
	p := NewPrinter(DefaultStyle(), out)
	p.printType(t)
	return p.err
}

// Printer writes documents to out, the first write error is kept and stops all further output
type Printer struct {
	style      Style
	unit       []byte
	out        io.Writer
	err        error
	level      int
	hasWritten bool
	escapeBuf  []byte
}

func NewPrinter(style Style, out io.Writer) *Printer {
	return &Printer{
		style: style,
		unit:  style.indentUnit(),
		out:   out,
	}
}

// Err returns the first error returned by the underlying writer
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) write(data []byte) {
	if p.err != nil || len(data) == 0 {
		return
	}
	p.hasWritten = true
	_, p.err = p.out.Write(data)
}

func (p *Printer) writeString(s string) {
	p.write(unsafebytes.StringToBytes(s))
}

// margin separates top level definitions by an empty line
func (p *Printer) margin() {
	if p.hasWritten {
		p.write(literal.LINETERMINATOR)
	}
}

func (p *Printer) indent() {
	for i := 0; i < p.level; i++ {
		p.write(p.unit)
	}
}

func (p *Printer) endline() {
	p.write(literal.LINETERMINATOR)
}

func (p *Printer) startBlock() {
	p.write(literal.LBRACE)
	p.endline()
	p.level++
}

func (p *Printer) endBlock() {
	p.level--
	p.indent()
	p.write(literal.RBRACE)
	p.endline()
}

func (p *Printer) startArgumentBlock(open []byte) {
	p.write(open)
	if p.style.MultilineArguments {
		p.endline()
		p.level++
	}
}

func (p *Printer) startArgument() {
	if p.style.MultilineArguments {
		p.indent()
	}
}

func (p *Printer) delimitArgument() {
	p.write(literal.COMMA)
	if p.style.MultilineArguments {
		p.endline()
		return
	}
	p.write(literal.SPACE)
}

func (p *Printer) endArgumentBlock(close []byte) {
	if p.style.MultilineArguments {
		p.endline()
		p.level--
		p.indent()
	}
	p.write(close)
}

func (p *Printer) printDirectives(directives []ast.Directive) {
	for i := range directives {
		p.write(literal.SPACE)
		p.write(literal.AT)
		p.writeString(directives[i].Name)
		p.printArguments(directives[i].Arguments)
	}
}

func (p *Printer) printArguments(arguments []ast.Argument) {
	if len(arguments) == 0 {
		return
	}
	p.startArgumentBlock(literal.LPAREN)
	for i := range arguments {
		if i != 0 {
			p.delimitArgument()
		}
		p.startArgument()
		p.writeString(arguments[i].Name)
		p.write(literal.COLON)
		p.write(literal.SPACE)
		p.printValue(arguments[i].Value)
	}
	p.endArgumentBlock(literal.RPAREN)
}

func (p *Printer) printType(t ast.Type) {
	switch t := t.(type) {
	case ast.NamedType:
		p.writeString(t.Name)
	case ast.ListType:
		p.write(literal.LBRACK)
		p.printType(t.OfType)
		p.write(literal.RBRACK)
	case ast.NonNullType:
		p.printType(t.OfType)
		p.write(literal.BANG)
	}
}

func (p *Printer) printValue(value ast.Value) {
	switch v := value.(type) {
	case ast.Variable:
		p.write(literal.DOLLAR)
		p.writeString(v.Name)
	case ast.IntValue:
		p.writeString(v.Raw)
	case ast.FloatValue:
		p.writeString(v.Raw)
	case ast.StringValue:
		p.printString(v.Value, v.Block)
	case ast.BooleanValue:
		if v.Value {
			p.write(literal.TRUE)
		} else {
			p.write(literal.FALSE)
		}
	case ast.NullValue:
		p.write(literal.NULL)
	case ast.EnumValue:
		p.writeString(v.Name)
	case ast.ListValue:
		if len(v.Values) == 0 {
			p.write(literal.LBRACK)
			p.write(literal.RBRACK)
			return
		}
		p.startArgumentBlock(literal.LBRACK)
		for i := range v.Values {
			if i != 0 {
				p.delimitArgument()
			}
			p.startArgument()
			p.printValue(v.Values[i])
		}
		p.endArgumentBlock(literal.RBRACK)
	case ast.ObjectValue:
		if len(v.Fields) == 0 {
			p.write(literal.LBRACE)
			p.write(literal.RBRACE)
			return
		}
		p.startArgumentBlock(literal.LBRACE)
		for i := range v.Fields {
			if i != 0 {
				p.delimitArgument()
			}
			p.startArgument()
			p.writeString(v.Fields[i].Name)
			p.write(literal.COLON)
			p.write(literal.SPACE)
			p.printValue(v.Fields[i].Value)
		}
		p.endArgumentBlock(literal.RBRACE)
	}
}

// printString writes content as block string if requested and possible, otherwise as quoted string
func (p *Printer) printString(content string, block bool) {
	if block {
		switch blockLayoutOf(content) {
		case blockLayoutInline:
			p.write(literal.BLOCKQUOTE)
			p.writeString(escapeBlockString(content))
			p.write(literal.BLOCKQUOTE)
			return
		case blockLayoutLines:
			p.printBlockLines(content)
			return
		}
	}

	p.write(literal.QUOTE)
	if escape.Needed(content) {
		p.escapeBuf = escape.Bytes(unsafebytes.StringToBytes(content), p.escapeBuf)
		p.write(p.escapeBuf)
	} else {
		p.writeString(content)
	}
	p.write(literal.QUOTE)
}

// printBlockLines writes every line of content on its own line between the triple quotes
func (p *Printer) printBlockLines(content string) {
	p.write(literal.BLOCKQUOTE)
	p.endline()
	for _, line := range strings.Split(content, "\n") {
		if line != "" {
			p.indent()
			p.writeString(escapeBlockString(line))
		}
		p.endline()
	}
	p.indent()
	p.write(literal.BLOCKQUOTE)
}

type blockLayout int

const (
	blockLayoutNone blockLayout = iota
	blockLayoutInline
	blockLayoutLines
)

// blockLayoutOf picks a block string layout that reads back as content, or none if there is no such layout
func blockLayoutOf(content string) blockLayout {
	if strings.ContainsRune(content, '\r') {
		return blockLayoutNone
	}
	lines := strings.Split(content, "\n")
	if isBlankLine(lines[0]) && content != "" || isBlankLine(lines[len(lines)-1]) && len(lines) > 1 {
		return blockLayoutNone
	}

	if len(lines) > 1 {
		// the common indentation of the printed lines must be the printer indentation only
		for _, line := range lines {
			if line != "" && !isBlankLine(line) && line[0] != ' ' && line[0] != '\t' {
				return blockLayoutLines
			}
		}
		return blockLayoutNone
	}

	if !strings.HasSuffix(content, `"`) && !strings.HasSuffix(content, `\`) {
		return blockLayoutInline
	}
	if content[0] != ' ' && content[0] != '\t' {
		return blockLayoutLines
	}
	return blockLayoutNone
}

func escapeBlockString(s string) string {
	return strings.ReplaceAll(s, `"""`, `\"""`)
}

func isBlankLine(line string) bool {
	return strings.TrimLeft(line, " \t") == ""
}
