package digest

import "fmt"

// InvalidLengthError is returned by FromHex when the input string's length
// does not equal twice the expected digest size in bytes.
type InvalidLengthError struct {
	Length int // the length actually given
	Want   int // the length required (2 * digest size in bytes)
}

func (e InvalidLengthError) Error() string {
	return fmt.Sprintf("digest: invalid hex length %d, want %d", e.Length, e.Want)
}

// ParseError is returned by FromHex when the input contains characters
// outside the hex alphabet.
type ParseError struct {
	Err error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("digest: failed to parse hex digest: %v", e.Err)
}

func (e ParseError) Unwrap() error { return e.Err }
