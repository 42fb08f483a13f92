package utils

import (
	"unsafe"
)

// String2Bytes converts string to byte slice without memory allocation (zero-copy).
//
// WARNING: The returned []byte must be treated as read-only.
// Modifying the returned slice may break Go's string immutability guarantee and cause undefined behavior.
// This method uses unsafe tricks and relies on Go's current runtime implementation.
// It is not guaranteed to be safe across all Go versions.
// Use only when you are sure the []byte will not be modified.
// For safety, prefer []byte(s) if you need a writable copy.
func String2Bytes(s string) []byte {
	if len(s) == 0 {
		return []byte("")
	}
	return *(*[]byte)(unsafe.Pointer(
		&struct {
			string
			Cap int
		}{s, len(s)},
	))
}
