// Package hash implements the streaming hash (L3): buffering, message-length
// counting, standard padding and digest extraction on top of the
// compression cores in core/md5, core/sha1 and core/sha2. One Hash is
// owned by exactly one caller; see chksum/ for the layer that drives a
// Hash from file and directory content.
package hash

import "github.com/dromara/chksum/digest"

// Hash is a single-owner streaming hash instance. It is not safe for
// concurrent use: all operations on one Hash execute sequentially from its
// owner's viewpoint.
type Hash struct {
	algo Algorithm
	meta meta
	c    core
	buf  []byte // always len(buf) < meta.blockSize
	n    uint64 // total bytes passed to Update
}

// New returns an empty Hash for the given algorithm.
func New(a Algorithm) *Hash {
	m := metaTable[a]
	return &Hash{
		algo: a,
		meta: m,
		c:    newCore(a),
		buf:  make([]byte, 0, m.blockSize),
	}
}

// Algorithm reports which algorithm this Hash was constructed with.
func (h *Hash) Algorithm() Algorithm { return h.algo }

// Update feeds data into the hash. It never fails. Per spec §4.3:
//  1. counter += len(data)
//  2. if the buffer is empty, whole blocks are consumed directly from data
//     without copying, and the remainder is stashed into the buffer.
//  3. otherwise, if buffer+data straddle a block boundary, the buffer is
//     topped up and drained first, then whole blocks are consumed directly
//     from the advanced input, then the remainder is stashed.
//  4. otherwise data is appended to the buffer.
func (h *Hash) Update(data []byte) *Hash {
	h.n += uint64(len(data))
	bs := h.meta.blockSize

	if len(h.buf) == 0 {
		for len(data) >= bs {
			h.c.updateBlock(data[:bs])
			data = data[bs:]
		}
		h.buf = append(h.buf[:0], data...)
		return h
	}

	if len(h.buf)+len(data) >= bs {
		need := bs - len(h.buf)
		h.buf = append(h.buf, data[:need]...)
		h.c.updateBlock(h.buf)
		h.buf = h.buf[:0]
		data = data[need:]

		for len(data) >= bs {
			h.c.updateBlock(data[:bs])
			data = data[bs:]
		}
		h.buf = append(h.buf[:0], data...)
		return h
	}

	h.buf = append(h.buf, data...)
	return h
}

// Write implements io.Writer by delegating to Update; it never returns an
// error, matching Update's infallibility.
func (h *Hash) Write(p []byte) (int, error) {
	h.Update(p)
	return len(p), nil
}

// Digest computes the final digest without mutating h: it pads and
// compresses a cloned copy of the state, so further Update calls on h see
// none of the padding.
func (h *Hash) Digest() digest.Digest {
	clone := h.c.clone()

	var scratch [2 * maxBlockSize]byte
	n := copy(scratch[:], h.buf)
	n += writePadding(scratch[n:], len(h.buf), h.n, h.meta)
	data := scratch[:n]

	bs := h.meta.blockSize
	for len(data) > 0 {
		clone.updateBlock(data[:bs])
		data = data[bs:]
	}
	return digest.Digest(append([]byte(nil), clone.bytes()...))
}

// Reset restores h to the state New(h.Algorithm()) would produce.
func (h *Hash) Reset() *Hash {
	h.c.reset()
	h.buf = h.buf[:0]
	h.n = 0
	return h
}
