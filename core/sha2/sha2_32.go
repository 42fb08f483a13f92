// Package sha2 implements the SHA-2/224, /256, /384 and /512 compression
// cores per FIPS 180-4. The 224/256 half operates on 32-bit words and is
// generic over lane width (scalar or 4-wide); the 384/512 half operates on
// 64-bit words, for which only the scalar lane width is defined.
package sha2

import "github.com/dromara/chksum/lane"

const (
	// BlockSize32 is the block size in bytes of SHA-2/224 and SHA-2/256.
	BlockSize32 = 64
	// Size224 is the SHA-2/224 digest size in bytes.
	Size224 = 28
	// Size256 is the SHA-2/256 digest size in bytes.
	Size256 = 32

	inputWords32    = 16
	scheduleWords32 = 64
)

// constants32 holds the 64 prime-derived round constants shared by
// SHA-2/224 and SHA-2/256 (FIPS 180-4 §4.2.2).
var constants32 = [scheduleWords32]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

var iv224 = [8]uint32{0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939, 0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4}
var iv256 = [8]uint32{0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a, 0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19}

// regs32 holds the eight working registers at lane width T.
type regs32[T lane.Lane32[T]] struct {
	h [8]T
}

// expand32 builds the 64-word message schedule per FIPS 180-4 §6.2.2 step 1.
func expand32[T lane.Lane32[T]](m [inputWords32]T) [scheduleWords32]T {
	var w [scheduleWords32]T
	copy(w[:inputWords32], m[:])
	for i := inputWords32; i < scheduleWords32; i++ {
		s0 := w[i-15].RotateLeft(32 - 7).Xor(w[i-15].RotateLeft(32 - 18)).Xor(w[i-15].Shr(3))
		s1 := w[i-2].RotateLeft(32 - 17).Xor(w[i-2].RotateLeft(32 - 19)).Xor(w[i-2].Shr(10))
		w[i] = w[i-16].Add(s0).Add(w[i-7]).Add(s1)
	}
	return w
}

// compress32 runs all 64 rounds of SHA-2/256-family compression and folds
// the result back into r by wrapping-add (FIPS 180-4 §6.2.2 steps 2-4).
func compress32[T lane.Lane32[T]](r regs32[T], m [inputWords32]T, k [scheduleWords32]T) regs32[T] {
	w := expand32(m)
	a, b, c, d, e, f, g, h := r.h[0], r.h[1], r.h[2], r.h[3], r.h[4], r.h[5], r.h[6], r.h[7]
	for i := 0; i < scheduleWords32; i++ {
		bigS1 := e.RotateLeft(32 - 6).Xor(e.RotateLeft(32 - 11)).Xor(e.RotateLeft(32 - 25))
		ch := e.And(f).Xor(e.Not().And(g))
		t1 := h.Add(bigS1).Add(ch).Add(k[i]).Add(w[i])
		bigS0 := a.RotateLeft(32 - 2).Xor(a.RotateLeft(32 - 13)).Xor(a.RotateLeft(32 - 22))
		maj := a.And(b).Xor(a.And(c)).Xor(b.And(c))
		t2 := bigS0.Add(maj)

		h = g
		g = f
		f = e
		e = d.Add(t1)
		d = c
		c = b
		b = a
		a = t1.Add(t2)
	}
	return regs32[T]{h: [8]T{
		r.h[0].Add(a), r.h[1].Add(b), r.h[2].Add(c), r.h[3].Add(d),
		r.h[4].Add(e), r.h[5].Add(f), r.h[6].Add(g), r.h[7].Add(h),
	}}
}

func scalarIV(iv [8]uint32) regs32[lane.Word32] {
	var r regs32[lane.Word32]
	for i, w := range iv {
		r.h[i] = lane.Word32(w)
	}
	return r
}

func vec4IV(iv [8]uint32) regs32[lane.Vec4] {
	var r regs32[lane.Vec4]
	for i, w := range iv {
		r.h[i] = lane.BroadcastVec4(lane.Word32(w))
	}
	return r
}

var scalarConstants32 = buildScalarConstants32()
var vec4Constants32 = buildVec4Constants32()

func buildScalarConstants32() [scheduleWords32]lane.Word32 {
	var k [scheduleWords32]lane.Word32
	for i, c := range constants32 {
		k[i] = lane.Word32(c)
	}
	return k
}

func buildVec4Constants32() [scheduleWords32]lane.Vec4 {
	var k [scheduleWords32]lane.Vec4
	for i, c := range constants32 {
		k[i] = lane.BroadcastVec4(lane.Word32(c))
	}
	return k
}

func blockWords32(block *[BlockSize32]byte) [inputWords32]lane.Word32 {
	var m [inputWords32]lane.Word32
	for i := 0; i < inputWords32; i++ {
		m[i] = lane.Word32FromBE(block[i*4 : i*4+4])
	}
	return m
}

func bytesBE32(h [8]uint32, n int) []byte {
	out := make([]byte, n)
	for i := 0; i*4 < n; i++ {
		b := lane.Word32(h[i]).BytesBE()
		copy(out[i*4:], b[:])
	}
	return out
}

// State224 is the scalar SHA-2/224 compression state.
type State224 struct{ r regs32[lane.Word32] }

// New224 returns a State224 initialized to the SHA-2/224 IV.
func New224() State224 { return State224{r: scalarIV(iv224)} }

// Reset restores the SHA-2/224 IV.
func (s *State224) Reset() { s.r = scalarIV(iv224) }

// Update mutates s by one 64-byte block.
func (s *State224) Update(block *[BlockSize32]byte) {
	s.r = compress32(s.r, blockWords32(block), scalarConstants32)
}

// Digest returns the eight internal words verbatim; truncation to 224 bits
// (dropping the 8th word) happens in Bytes, matching FIPS 180-4's
// definition of SHA-224 as SHA-256 with a different IV and a truncated
// output.
func (s State224) Digest() [8]uint32 {
	var d [8]uint32
	for i, w := range s.r.h {
		d[i] = uint32(w)
	}
	return d
}

// Bytes serializes the truncated 28-byte SHA-2/224 digest, big-endian.
func (s State224) Bytes() [Size224]byte {
	var out [Size224]byte
	copy(out[:], bytesBE32(s.Digest(), Size224))
	return out
}

// State256 is the scalar SHA-2/256 compression state.
type State256 struct{ r regs32[lane.Word32] }

// New256 returns a State256 initialized to the SHA-2/256 IV.
func New256() State256 { return State256{r: scalarIV(iv256)} }

// Reset restores the SHA-2/256 IV.
func (s *State256) Reset() { s.r = scalarIV(iv256) }

// Update mutates s by one 64-byte block.
func (s *State256) Update(block *[BlockSize32]byte) {
	s.r = compress32(s.r, blockWords32(block), scalarConstants32)
}

// Digest returns the eight state words verbatim.
func (s State256) Digest() [8]uint32 {
	var d [8]uint32
	for i, w := range s.r.h {
		d[i] = uint32(w)
	}
	return d
}

// Bytes serializes the 32-byte SHA-2/256 digest, big-endian.
func (s State256) Bytes() [Size256]byte {
	var out [Size256]byte
	copy(out[:], bytesBE32(s.Digest(), Size256))
	return out
}

// State224x4 packs four independent SHA-2/224 streams.
type State224x4 struct{ r regs32[lane.Vec4] }

// New224x4 returns a State224x4 with all four lanes initialized to the
// SHA-2/224 IV.
func New224x4() State224x4 { return State224x4{r: vec4IV(iv224)} }

// Update4 mutates s by one block from each of the four independent streams.
func (s *State224x4) Update4(blocks [4]*[BlockSize32]byte) {
	s.r = compress32(s.r, combineBlocks32(blocks), vec4Constants32)
}

// Digest extracts the eight state words of one lane.
func (s State224x4) Digest(lane_ int) [8]uint32 {
	var d [8]uint32
	for i, w := range s.r.h {
		d[i] = uint32(w.Lane(lane_))
	}
	return d
}

// State256x4 packs four independent SHA-2/256 streams.
type State256x4 struct{ r regs32[lane.Vec4] }

// New256x4 returns a State256x4 with all four lanes initialized to the
// SHA-2/256 IV.
func New256x4() State256x4 { return State256x4{r: vec4IV(iv256)} }

// Update4 mutates s by one block from each of the four independent streams.
func (s *State256x4) Update4(blocks [4]*[BlockSize32]byte) {
	s.r = compress32(s.r, combineBlocks32(blocks), vec4Constants32)
}

// Digest extracts the eight state words of one lane.
func (s State256x4) Digest(lane_ int) [8]uint32 {
	var d [8]uint32
	for i, w := range s.r.h {
		d[i] = uint32(w.Lane(lane_))
	}
	return d
}

func combineBlocks32(blocks [4]*[BlockSize32]byte) [inputWords32]lane.Vec4 {
	var m [inputWords32]lane.Vec4
	for wi := 0; wi < inputWords32; wi++ {
		var lanes [4]lane.Word32
		for li := 0; li < 4; li++ {
			lanes[li] = lane.Word32FromBE(blocks[li][wi*4 : wi*4+4])
		}
		m[wi] = lane.Vec4FromArray(lanes)
	}
	return m
}
