package sha1

import (
	"encoding/hex"
	"testing"
)

func padSingleBlock(msg []byte) *[BlockSize]byte {
	var block [BlockSize]byte
	copy(block[:], msg)
	block[len(msg)] = 0x80
	bitLen := uint64(len(msg)) * 8
	for i := 0; i < 8; i++ {
		block[BlockSize-1-i] = byte(bitLen >> (8 * i))
	}
	return &block
}

func TestState_KnownVectors(t *testing.T) {
	cases := []struct {
		msg  string
		want string
	}{
		{"", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
	}
	for _, c := range cases {
		s := New()
		s.Update(padSingleBlock([]byte(c.msg)))
		got := hex.EncodeToString(s.Bytes()[:])
		if got != c.want {
			t.Errorf("SHA1(%q) = %s, want %s", c.msg, got, c.want)
		}
	}
}

func TestState4LaneEquivalence(t *testing.T) {
	msgs := [4]string{"", "abc", "hello", "SHA1"}
	s4 := New4()
	var blocks [4]*[BlockSize]byte
	for i, m := range msgs {
		blocks[i] = padSingleBlock([]byte(m))
	}
	s4.Update4(blocks)

	for i, m := range msgs {
		scalar := New()
		scalar.Update(padSingleBlock([]byte(m)))
		want := scalar.Digest()
		got := s4.Digest(i)
		if got != want {
			t.Errorf("lane %d (%q): State4 digest = %#x, scalar digest = %#x", i, m, got, want)
		}
	}
}

func BenchmarkCompressScalar(b *testing.B) {
	block := padSingleBlock([]byte("benchmark message"))
	b.SetBytes(BlockSize)
	for i := 0; i < b.N; i++ {
		s := New()
		s.Update(block)
	}
}

func BenchmarkCompressVec4(b *testing.B) {
	block := padSingleBlock([]byte("benchmark message"))
	blocks := [4]*[BlockSize]byte{block, block, block, block}
	b.SetBytes(4 * BlockSize)
	for i := 0; i < b.N; i++ {
		s4 := New4()
		s4.Update4(blocks)
	}
}
