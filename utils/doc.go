// Package utils provides a zero-copy string-to-bytes conversion used when
// mixing visited path names into a running hash without allocating.
// WARNING: Uses unsafe operations - the returned byte slice is read-only and must not be modified.
package utils
