// Package md5 implements the MD5 compression core: a fixed-size state and a
// pure update(state, block) function, generic over lane width so the same
// round logic runs scalar or 4-wide. See RFC 1321.
//
// This is the L2 layer only — it has no buffering, no padding, and no
// length counting. hash.New(hash.MD5) builds the streaming Hash (L3) on
// top of State.
package md5

import "github.com/dromara/chksum/lane"

const (
	// BlockSize is the MD5 block size in bytes.
	BlockSize = 64
	// Size is the MD5 digest size in bytes.
	Size = 16
	// words is the number of 32-bit words per block.
	words = 16
)

// shifts holds the per-round left-rotate amount, repeating every 4 rounds
// within each of the four 16-round passes.
var shifts = [64]uint{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

// constants holds the 64 sine-derived round constants (RFC 1321 §3.4).
var constants = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee, 0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be, 0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa, 0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed, 0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c, 0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05, 0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039, 0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1, 0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// gIndex returns the message word index consumed by round i (RFC 1321 §3.4).
func gIndex(i int) int {
	switch {
	case i < 16:
		return i
	case i < 32:
		return (5*i + 1) % 16
	case i < 48:
		return (3*i + 5) % 16
	default:
		return (7 * i) % 16
	}
}

// regs holds the four working registers at lane width T.
type regs[T lane.Lane32[T]] struct {
	a, b, c, d T
}

// compress runs all 64 rounds of MD5 over one block's worth of lanes and
// folds the result back into r by wrapping-add, per RFC 1321 §3.4.
func compress[T lane.Lane32[T]](r regs[T], m [words]T, k [64]T) regs[T] {
	a, b, c, d := r.a, r.b, r.c, r.d
	for i := 0; i < 64; i++ {
		var f T
		switch {
		case i < 16:
			f = b.And(c).Or(b.Not().And(d))
		case i < 32:
			f = d.And(b).Or(d.Not().And(c))
		case i < 48:
			f = b.Xor(c).Xor(d)
		default:
			f = c.Xor(b.Or(d.Not()))
		}
		f = f.Add(a).Add(k[i]).Add(m[gIndex(i)])
		a, d, c = d, c, b
		b = b.Add(f.RotateLeft(shifts[i]))
	}
	return regs[T]{a: r.a.Add(a), b: r.b.Add(b), c: r.c.Add(c), d: r.d.Add(d)}
}

// State is the scalar (single-stream) MD5 compression state.
type State struct {
	r regs[lane.Word32]
}

// New returns a State initialized to the MD5 IV.
func New() State {
	var s State
	s.Reset()
	return s
}

// Reset restores the IV (RFC 1321 §3.3).
func (s *State) Reset() {
	s.r = regs[lane.Word32]{
		a: 0x67452301,
		b: 0xefcdab89,
		c: 0x98badcfe,
		d: 0x10325476,
	}
}

var scalarConstants = buildScalarConstants()

func buildScalarConstants() [64]lane.Word32 {
	var k [64]lane.Word32
	for i, c := range constants {
		k[i] = lane.Word32(c)
	}
	return k
}

// Update mutates s by one 64-byte block, interpreted little-endian.
func (s *State) Update(block *[BlockSize]byte) {
	var m [words]lane.Word32
	for i := 0; i < words; i++ {
		m[i] = lane.Word32FromLE(block[i*4 : i*4+4])
	}
	s.r = compress(s.r, m, scalarConstants)
}

// Digest returns the state words verbatim (identity projection: MD5 does
// not truncate).
func (s State) Digest() [4]uint32 {
	return [4]uint32{uint32(s.r.a), uint32(s.r.b), uint32(s.r.c), uint32(s.r.d)}
}

// Bytes serializes the digest words little-endian, per MD5's natural
// byte order.
func (s State) Bytes() [Size]byte {
	var out [Size]byte
	d := s.Digest()
	for i, w := range d {
		b := lane.Word32(w).BytesLE()
		copy(out[i*4:], b[:])
	}
	return out
}

// State4 is the 4-wide MD5 compression state: four independent MD5 streams
// packed into one set of registers. The four streams are never combined.
type State4 struct {
	r regs[lane.Vec4]
}

// New4 returns a State4 with all four lanes initialized to the MD5 IV.
func New4() State4 {
	var s State4
	s.Reset()
	return s
}

// Reset restores all four lanes to the MD5 IV.
func (s *State4) Reset() {
	s.r = regs[lane.Vec4]{
		a: lane.BroadcastVec4(0x67452301),
		b: lane.BroadcastVec4(0xefcdab89),
		c: lane.BroadcastVec4(0x98badcfe),
		d: lane.BroadcastVec4(0x10325476),
	}
}

var vec4Constants = buildVec4Constants()

func buildVec4Constants() [64]lane.Vec4 {
	var k [64]lane.Vec4
	for i, c := range constants {
		k[i] = lane.BroadcastVec4(lane.Word32(c))
	}
	return k
}

// Update4 mutates s by one block from each of the four independent
// streams. blocks[i] feeds lane i.
func (s *State4) Update4(blocks [4]*[BlockSize]byte) {
	var m [words]lane.Vec4
	for wi := 0; wi < words; wi++ {
		var lanes [4]lane.Word32
		for li := 0; li < 4; li++ {
			lanes[li] = lane.Word32FromLE(blocks[li][wi*4 : wi*4+4])
		}
		m[wi] = lane.Vec4FromArray(lanes)
	}
	s.r = compress(s.r, m, vec4Constants)
}

// Digest extracts the digest words of one lane.
func (s State4) Digest(lane_ int) [4]uint32 {
	return [4]uint32{
		uint32(s.r.a.Lane(lane_)),
		uint32(s.r.b.Lane(lane_)),
		uint32(s.r.c.Lane(lane_)),
		uint32(s.r.d.Lane(lane_)),
	}
}
