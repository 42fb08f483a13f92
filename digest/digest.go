// Package digest provides an immutable, fixed-length digest value type
// shared by every algorithm in core/ and hash/, independent of which
// algorithm produced it. Separating the digest value from the hash
// machinery that produces it (grounded on the "digest" vs. "hash"
// separation other checksum libraries use) lets callers compare, store and
// serialize digests without depending on hash.Hash at all.
package digest

import "encoding/hex"

// Digest is an immutable fixed-length hash output. Two digests compare
// equal iff their bytes are equal; there is no timing guarantee on Equal
// since this module does not implement keyed/authenticated hashing.
type Digest []byte

// FromHex parses a lowercase or uppercase hex string into a Digest of the
// given size in bytes. Returns InvalidLengthError if len(s) != 2*size, and
// ParseError if s contains non-hex characters.
func FromHex(s string, size int) (Digest, error) {
	if len(s) != 2*size {
		return nil, InvalidLengthError{Length: len(s), Want: 2 * size}
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, ParseError{Err: err}
	}
	return Digest(b), nil
}

// LowerHex renders the digest as lowercase hex with no separators.
func (d Digest) LowerHex() string { return hex.EncodeToString(d) }

// UpperHex renders the digest as uppercase hex with no separators.
func (d Digest) UpperHex() string {
	return string(toUpperHex(hex.EncodeToString(d)))
}

func toUpperHex(s string) []byte {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'f' {
			b[i] = c - ('a' - 'A')
		}
	}
	return b
}

// String renders the digest as lowercase hex, satisfying fmt.Stringer.
func (d Digest) String() string { return d.LowerHex() }

// Equal reports whether d and o hold the same bytes.
func (d Digest) Equal(o Digest) bool {
	if len(d) != len(o) {
		return false
	}
	for i := range d {
		if d[i] != o[i] {
			return false
		}
	}
	return true
}

// Bytes returns the digest's raw bytes.
func (d Digest) Bytes() []byte { return []byte(d) }
