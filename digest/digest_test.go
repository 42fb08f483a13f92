package digest

import (
	"errors"
	"testing"
)

func TestFromHexRoundTrip(t *testing.T) {
	d := Digest([]byte{0xde, 0xad, 0xbe, 0xef})
	t.Run("lower", func(t *testing.T) {
		got, err := FromHex(d.LowerHex(), len(d))
		if err != nil {
			t.Fatalf("FromHex: %v", err)
		}
		if !got.Equal(d) {
			t.Errorf("got %v, want %v", got, d)
		}
	})
	t.Run("upper", func(t *testing.T) {
		got, err := FromHex(d.UpperHex(), len(d))
		if err != nil {
			t.Fatalf("FromHex: %v", err)
		}
		if !got.Equal(d) {
			t.Errorf("got %v, want %v", got, d)
		}
	})
}

func TestFromHexInvalidLength(t *testing.T) {
	_, err := FromHex("abcd", 4)
	var lenErr InvalidLengthError
	if !errors.As(err, &lenErr) {
		t.Fatalf("expected InvalidLengthError, got %v", err)
	}
}

func TestFromHexParseError(t *testing.T) {
	_, err := FromHex("zz", 1)
	var parseErr ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestEqual(t *testing.T) {
	a := Digest([]byte{1, 2, 3})
	b := Digest([]byte{1, 2, 3})
	c := Digest([]byte{1, 2, 4})
	if !a.Equal(b) {
		t.Errorf("expected equal digests")
	}
	if a.Equal(c) {
		t.Errorf("expected unequal digests")
	}
	if a.Equal(Digest([]byte{1, 2})) {
		t.Errorf("expected unequal digests of different length")
	}
}
