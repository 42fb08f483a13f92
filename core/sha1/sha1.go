// Package sha1 implements the SHA-1 compression core per FIPS 180-4,
// generic over lane width so the same round logic runs scalar or 4-wide.
package sha1

import "github.com/dromara/chksum/lane"

const (
	// BlockSize is the SHA-1 block size in bytes.
	BlockSize = 64
	// Size is the SHA-1 digest size in bytes.
	Size = 20

	scheduleWords = 80
	inputWords    = 16
)

// regs holds the five working registers at lane width T.
type regs[T lane.Lane32[T]] struct {
	a, b, c, d, e T
}

// expand builds the 80-word message schedule from the 16 input words per
// FIPS 180-4 §6.1.2 step 1.
func expand[T lane.Lane32[T]](m [inputWords]T) [scheduleWords]T {
	var w [scheduleWords]T
	copy(w[:inputWords], m[:])
	for i := inputWords; i < scheduleWords; i++ {
		w[i] = w[i-3].Xor(w[i-8]).Xor(w[i-14]).Xor(w[i-16]).RotateLeft(1)
	}
	return w
}

// compress runs all 80 rounds of SHA-1 over the expanded schedule and
// folds the result back into r by wrapping-add.
func compress[T lane.Lane32[T]](r regs[T], m [inputWords]T, k [4]T) regs[T] {
	w := expand(m)
	a, b, c, d, e := r.a, r.b, r.c, r.d, r.e
	for i := 0; i < scheduleWords; i++ {
		var f, kt T
		switch {
		case i < 20:
			f = b.And(c).Or(b.Not().And(d))
			kt = k[0]
		case i < 40:
			f = b.Xor(c).Xor(d)
			kt = k[1]
		case i < 60:
			f = b.And(c).Or(b.And(d)).Or(c.And(d))
			kt = k[2]
		default:
			f = b.Xor(c).Xor(d)
			kt = k[3]
		}
		temp := a.RotateLeft(5).Add(f).Add(e).Add(kt).Add(w[i])
		e = d
		d = c
		c = b.RotateLeft(30)
		b = a
		a = temp
	}
	return regs[T]{
		a: r.a.Add(a),
		b: r.b.Add(b),
		c: r.c.Add(c),
		d: r.d.Add(d),
		e: r.e.Add(e),
	}
}

// State is the scalar (single-stream) SHA-1 compression state.
type State struct {
	r regs[lane.Word32]
}

var scalarK = [4]lane.Word32{0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xca62c1d6}
var vec4K = [4]lane.Vec4{
	lane.BroadcastVec4(0x5a827999),
	lane.BroadcastVec4(0x6ed9eba1),
	lane.BroadcastVec4(0x8f1bbcdc),
	lane.BroadcastVec4(0xca62c1d6),
}

// New returns a State initialized to the SHA-1 IV.
func New() State {
	var s State
	s.Reset()
	return s
}

// Reset restores the SHA-1 IV (FIPS 180-4 §5.3.1).
func (s *State) Reset() {
	s.r = regs[lane.Word32]{
		a: 0x67452301,
		b: 0xefcdab89,
		c: 0x98badcfe,
		d: 0x10325476,
		e: 0xc3d2e1f0,
	}
}

// Update mutates s by one 64-byte block, interpreted big-endian.
func (s *State) Update(block *[BlockSize]byte) {
	var m [inputWords]lane.Word32
	for i := 0; i < inputWords; i++ {
		m[i] = lane.Word32FromBE(block[i*4 : i*4+4])
	}
	s.r = compress(s.r, m, scalarK)
}

// Digest returns the state words verbatim.
func (s State) Digest() [5]uint32 {
	return [5]uint32{uint32(s.r.a), uint32(s.r.b), uint32(s.r.c), uint32(s.r.d), uint32(s.r.e)}
}

// Bytes serializes the digest words big-endian, per SHA-1's natural byte order.
func (s State) Bytes() [Size]byte {
	var out [Size]byte
	d := s.Digest()
	for i, w := range d {
		b := lane.Word32(w).BytesBE()
		copy(out[i*4:], b[:])
	}
	return out
}

// State4 is the 4-wide SHA-1 compression state, packing four independent
// streams.
type State4 struct {
	r regs[lane.Vec4]
}

// New4 returns a State4 with all four lanes initialized to the SHA-1 IV.
func New4() State4 {
	var s State4
	s.Reset()
	return s
}

// Reset restores all four lanes to the SHA-1 IV.
func (s *State4) Reset() {
	s.r = regs[lane.Vec4]{
		a: lane.BroadcastVec4(0x67452301),
		b: lane.BroadcastVec4(0xefcdab89),
		c: lane.BroadcastVec4(0x98badcfe),
		d: lane.BroadcastVec4(0x10325476),
		e: lane.BroadcastVec4(0xc3d2e1f0),
	}
}

// Update4 mutates s by one block from each of the four independent streams.
func (s *State4) Update4(blocks [4]*[BlockSize]byte) {
	var m [inputWords]lane.Vec4
	for wi := 0; wi < inputWords; wi++ {
		var lanes [4]lane.Word32
		for li := 0; li < 4; li++ {
			lanes[li] = lane.Word32FromBE(blocks[li][wi*4 : wi*4+4])
		}
		m[wi] = lane.Vec4FromArray(lanes)
	}
	s.r = compress(s.r, m, vec4K)
}

// Digest extracts the digest words of one lane.
func (s State4) Digest(lane_ int) [5]uint32 {
	return [5]uint32{
		uint32(s.r.a.Lane(lane_)),
		uint32(s.r.b.Lane(lane_)),
		uint32(s.r.c.Lane(lane_)),
		uint32(s.r.d.Lane(lane_)),
		uint32(s.r.e.Lane(lane_)),
	}
}
