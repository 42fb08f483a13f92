package lane

import "encoding/binary"

// Word64 is the scalar 64-bit word used by SHA-2/384 and SHA-2/512.
type Word64 uint64

func (w Word64) And(o Word64) Word64 { return w & o }
func (w Word64) Or(o Word64) Word64  { return w | o }
func (w Word64) Xor(o Word64) Word64 { return w ^ o }
func (w Word64) Not() Word64         { return ^w }
func (w Word64) Shl(n uint) Word64   { return w << n }
func (w Word64) Shr(n uint) Word64   { return w >> n }
func (w Word64) Add(o Word64) Word64 { return w + o }

// RotateLeft rotates the 64-bit word left by n bits, 0 <= n < 64.
func (w Word64) RotateLeft(n uint) Word64 {
	n &= 63
	return (w << n) | (w >> (64 - n))
}

// BytesBE serializes w as 8 big-endian bytes.
func (w Word64) BytesBE() [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(w))
	return b
}

// Word64FromBE reads a big-endian 64-bit word from b.
func Word64FromBE(b []byte) Word64 { return Word64(binary.BigEndian.Uint64(b)) }
