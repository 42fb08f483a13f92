package lane

import "encoding/binary"

// Word32 is the scalar (single-lane) 32-bit word. It is the N=1 identity
// lane width used by every 32-bit-word algorithm in this module (MD5,
// SHA-1, SHA-2/224, SHA-2/256).
type Word32 uint32

func (w Word32) And(o Word32) Word32 { return w & o }
func (w Word32) Or(o Word32) Word32  { return w | o }
func (w Word32) Xor(o Word32) Word32 { return w ^ o }
func (w Word32) Not() Word32         { return ^w }
func (w Word32) Shl(n uint) Word32   { return w << n }
func (w Word32) Shr(n uint) Word32   { return w >> n }
func (w Word32) Add(o Word32) Word32 { return w + o }

// RotateLeft rotates the 32-bit word left by n bits, 0 <= n < 32.
func (w Word32) RotateLeft(n uint) Word32 {
	n &= 31
	return (w << n) | (w >> (32 - n))
}

// BytesBE serializes w as 4 big-endian bytes.
func (w Word32) BytesBE() [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(w))
	return b
}

// BytesLE serializes w as 4 little-endian bytes (used by MD5).
func (w Word32) BytesLE() [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(w))
	return b
}

// Word32FromBE reads a big-endian 32-bit word from b.
func Word32FromBE(b []byte) Word32 { return Word32(binary.BigEndian.Uint32(b)) }

// Word32FromLE reads a little-endian 32-bit word from b (used by MD5).
func Word32FromLE(b []byte) Word32 { return Word32(binary.LittleEndian.Uint32(b)) }
