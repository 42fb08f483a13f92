package sha2

import "github.com/dromara/chksum/lane"

const (
	// BlockSize64 is the block size in bytes of SHA-2/384 and SHA-2/512.
	BlockSize64 = 128
	// Size384 is the SHA-2/384 digest size in bytes.
	Size384 = 48
	// Size512 is the SHA-2/512 digest size in bytes.
	Size512 = 64

	inputWords64    = 16
	scheduleWords64 = 80
)

// constants64 holds the 80 prime-derived round constants shared by
// SHA-2/384 and SHA-2/512 (FIPS 180-4 §4.2.3).
var constants64 = [scheduleWords64]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

var iv384 = [8]uint64{
	0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
	0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
}
var iv512 = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

// regs64 holds the eight working registers at lane width T.
type regs64[T lane.Lane64[T]] struct {
	h [8]T
}

// expand64 builds the 80-word message schedule per FIPS 180-4 §6.4.2 step 1.
func expand64[T lane.Lane64[T]](m [inputWords64]T) [scheduleWords64]T {
	var w [scheduleWords64]T
	copy(w[:inputWords64], m[:])
	for i := inputWords64; i < scheduleWords64; i++ {
		s0 := w[i-15].RotateLeft(64 - 1).Xor(w[i-15].RotateLeft(64 - 8)).Xor(w[i-15].Shr(7))
		s1 := w[i-2].RotateLeft(64 - 19).Xor(w[i-2].RotateLeft(64 - 61)).Xor(w[i-2].Shr(6))
		w[i] = w[i-16].Add(s0).Add(w[i-7]).Add(s1)
	}
	return w
}

// compress64 runs all 80 rounds of SHA-2/512-family compression and folds
// the result back into r by wrapping-add.
func compress64[T lane.Lane64[T]](r regs64[T], m [inputWords64]T, k [scheduleWords64]T) regs64[T] {
	w := expand64(m)
	a, b, c, d, e, f, g, h := r.h[0], r.h[1], r.h[2], r.h[3], r.h[4], r.h[5], r.h[6], r.h[7]
	for i := 0; i < scheduleWords64; i++ {
		bigS1 := e.RotateLeft(64 - 14).Xor(e.RotateLeft(64 - 18)).Xor(e.RotateLeft(64 - 41))
		ch := e.And(f).Xor(e.Not().And(g))
		t1 := h.Add(bigS1).Add(ch).Add(k[i]).Add(w[i])
		bigS0 := a.RotateLeft(64 - 28).Xor(a.RotateLeft(64 - 34)).Xor(a.RotateLeft(64 - 39))
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
	return regs64[T]{h: [8]T{
		r.h[0].Add(a), r.h[1].Add(b), r.h[2].Add(c), r.h[3].Add(d),
		r.h[4].Add(e), r.h[5].Add(f), r.h[6].Add(g), r.h[7].Add(h),
	}}
}

func scalarIV64(iv [8]uint64) regs64[lane.Word64] {
	var r regs64[lane.Word64]
	for i, w := range iv {
		r.h[i] = lane.Word64(w)
	}
	return r
}

var scalarConstants64 = buildScalarConstants64()

func buildScalarConstants64() [scheduleWords64]lane.Word64 {
	var k [scheduleWords64]lane.Word64
	for i, c := range constants64 {
		k[i] = lane.Word64(c)
	}
	return k
}

func blockWords64(block *[BlockSize64]byte) [inputWords64]lane.Word64 {
	var m [inputWords64]lane.Word64
	for i := 0; i < inputWords64; i++ {
		m[i] = lane.Word64FromBE(block[i*8 : i*8+8])
	}
	return m
}

func bytesBE64(h [8]uint64, n int) []byte {
	out := make([]byte, n)
	for i := 0; i*8 < n; i++ {
		b := lane.Word64(h[i]).BytesBE()
		copy(out[i*8:], b[:])
	}
	return out
}

// State384 is the scalar SHA-2/384 compression state.
type State384 struct{ r regs64[lane.Word64] }

// New384 returns a State384 initialized to the SHA-2/384 IV.
func New384() State384 { return State384{r: scalarIV64(iv384)} }

// Reset restores the SHA-2/384 IV.
func (s *State384) Reset() { s.r = scalarIV64(iv384) }

// Update mutates s by one 128-byte block.
func (s *State384) Update(block *[BlockSize64]byte) {
	s.r = compress64(s.r, blockWords64(block), scalarConstants64)
}

// Digest returns the eight internal words verbatim; truncation to 384 bits
// (dropping the last two words) happens in Bytes.
func (s State384) Digest() [8]uint64 {
	var d [8]uint64
	for i, w := range s.r.h {
		d[i] = uint64(w)
	}
	return d
}

// Bytes serializes the truncated 48-byte SHA-2/384 digest, big-endian.
func (s State384) Bytes() [Size384]byte {
	var out [Size384]byte
	copy(out[:], bytesBE64(s.Digest(), Size384))
	return out
}

// State512 is the scalar SHA-2/512 compression state.
type State512 struct{ r regs64[lane.Word64] }

// New512 returns a State512 initialized to the SHA-2/512 IV.
func New512() State512 { return State512{r: scalarIV64(iv512)} }

// Reset restores the SHA-2/512 IV.
func (s *State512) Reset() { s.r = scalarIV64(iv512) }

// Update mutates s by one 128-byte block.
func (s *State512) Update(block *[BlockSize64]byte) {
	s.r = compress64(s.r, blockWords64(block), scalarConstants64)
}

// Digest returns the eight state words verbatim.
func (s State512) Digest() [8]uint64 {
	var d [8]uint64
	for i, w := range s.r.h {
		d[i] = uint64(w)
	}
	return d
}

// Bytes serializes the 64-byte SHA-2/512 digest, big-endian.
func (s State512) Bytes() [Size512]byte {
	var out [Size512]byte
	copy(out[:], bytesBE64(s.Digest(), Size512))
	return out
}
