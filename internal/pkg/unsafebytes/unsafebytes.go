// Package unsafebytes converts between byte slices and strings without copying.
//
// The returned values share memory with their argument, callers must not
// mutate the underlying bytes while the other representation is alive.
package unsafebytes

import (
	"unsafe"
)

func BytesToString(bytes []byte) string {
	if len(bytes) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(bytes), len(bytes))
}

func StringToBytes(str string) []byte {
	if len(str) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(str), len(str))
}
