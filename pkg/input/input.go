// Package input holds the raw source of a GraphQL document.
//
// Tokens and syntax tree nodes never copy text out of the source. They either
// keep a ByteSliceReference into RawBytes or a string that shares memory with
// RawBytes. RawBytes must therefore stay untouched for as long as any token or
// tree produced from it is in use.
package input

import (
	"github.com/elbow-jason/graphql-parser/internal/pkg/unsafebytes"
)

// Input is a raw graphql document
type Input struct {
	// RawBytes is the raw byte input
	RawBytes []byte
}

// NewInput wraps the given bytes without copying them
func NewInput(source []byte) *Input {
	return &Input{RawBytes: source}
}

func (i *Input) Reset() {
	i.RawBytes = i.RawBytes[:0]
}

// ResetInputBytes points the input at bytes, it does not copy
func (i *Input) ResetInputBytes(bytes []byte) {
	i.RawBytes = bytes
}

// ResetInputString points the input at the memory of input, it does not copy
func (i *Input) ResetInputString(input string) {
	i.RawBytes = unsafebytes.StringToBytes(input)
}

func (i *Input) Length() int {
	return len(i.RawBytes)
}

func (i *Input) ByteSlice(reference ByteSliceReference) []byte {
	return i.RawBytes[reference.Start:reference.End]
}

// ByteSliceString returns a view into RawBytes, no bytes get copied
func (i *Input) ByteSliceString(reference ByteSliceReference) string {
	return unsafebytes.BytesToString(i.ByteSlice(reference))
}

// ByteSliceReferenceContentEquals reports whether both references point to equal content
func (i *Input) ByteSliceReferenceContentEquals(left, right ByteSliceReference) bool {
	if left.Length() != right.Length() {
		return false
	}
	length := int(left.Length())
	for k := 0; k < length; k++ {
		if i.RawBytes[int(left.Start)+k] != i.RawBytes[int(right.Start)+k] {
			return false
		}
	}
	return true
}

// ByteSliceReference is a half open byte range [Start,End) into Input.RawBytes
type ByteSliceReference struct {
	Start uint32
	End   uint32
}

func (b ByteSliceReference) Length() uint32 {
	return b.End - b.Start
}
