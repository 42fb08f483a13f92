package hash

import "encoding/binary"

// writePadding fills scratch starting at offset 0 with 0x80, the minimum
// zero fill, and the length field, such that bufferedLen+len(padding) is a
// positive multiple of blockSize, per spec §4.3 step 2. It returns the
// number of bytes written. scratch must have room for the whole padding
// (at most 2*blockSize-bufferedLen bytes); the caller is responsible for
// that sizing so this function never allocates.
func writePadding(scratch []byte, bufferedLen int, counter uint64, m meta) int {
	bitLen := counter * 8

	total := bufferedLen + 1 + m.lengthFieldSize
	zeros := 0
	if rem := total % m.blockSize; rem != 0 {
		zeros = m.blockSize - rem
	}

	n := 0
	scratch[n] = 0x80
	n++
	for i := 0; i < zeros; i++ {
		scratch[n] = 0x00
		n++
	}

	switch {
	case m.lengthFieldSize == 16:
		// upper 64 bits are always zero: no message this module hashes
		// reaches 2^64 bits in length.
		binary.BigEndian.PutUint64(scratch[n:n+8], 0)
		binary.BigEndian.PutUint64(scratch[n+8:n+16], bitLen)
		n += 16
	case m.lengthLE:
		binary.LittleEndian.PutUint64(scratch[n:n+8], bitLen)
		n += 8
	default:
		binary.BigEndian.PutUint64(scratch[n:n+8], bitLen)
		n += 8
	}
	return n
}
