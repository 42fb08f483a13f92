package lane

// Vec4 packs four independent 32-bit lanes. Every operation is applied
// element-wise and lanes never interact, so a Vec4 hashes four unrelated
// message streams at once: it is not a 128-bit integer.
//
// The element-wise loops below compile to the same instruction sequence on
// all four lanes, which is exactly the shape a SIMD backend would fill in
// with actual vector instructions (PAND/POR/PXOR/PSLLD/PADDD and friends);
// keeping the Go implementation scalar-per-lane means the lane width is a
// correctness concept independent of whether the host ever gets a hardware
// backend for it.
type Vec4 [4]uint32

// BroadcastVec4 builds a Vec4 with the same scalar in every lane.
func BroadcastVec4(w Word32) Vec4 {
	v := Vec4{}
	for i := range v {
		v[i] = uint32(w)
	}
	return v
}

// Vec4FromArray packs four independent lanes, one per message stream.
func Vec4FromArray(lanes [4]Word32) Vec4 {
	return Vec4{uint32(lanes[0]), uint32(lanes[1]), uint32(lanes[2]), uint32(lanes[3])}
}

// Vec4From1 places w in lane 0 and zeros the rest.
func Vec4From1(w Word32) Vec4 {
	return Vec4{uint32(w), 0, 0, 0}
}

func (v Vec4) And(o Vec4) Vec4 {
	var r Vec4
	for i := range v {
		r[i] = v[i] & o[i]
	}
	return r
}

func (v Vec4) Or(o Vec4) Vec4 {
	var r Vec4
	for i := range v {
		r[i] = v[i] | o[i]
	}
	return r
}

func (v Vec4) Xor(o Vec4) Vec4 {
	var r Vec4
	for i := range v {
		r[i] = v[i] ^ o[i]
	}
	return r
}

func (v Vec4) Not() Vec4 {
	var r Vec4
	for i := range v {
		r[i] = ^v[i]
	}
	return r
}

func (v Vec4) Shl(n uint) Vec4 {
	var r Vec4
	for i := range v {
		r[i] = v[i] << n
	}
	return r
}

func (v Vec4) Shr(n uint) Vec4 {
	var r Vec4
	for i := range v {
		r[i] = v[i] >> n
	}
	return r
}

func (v Vec4) Add(o Vec4) Vec4 {
	var r Vec4
	for i := range v {
		r[i] = v[i] + o[i]
	}
	return r
}

func (v Vec4) RotateLeft(n uint) Vec4 {
	n &= 31
	var r Vec4
	for i := range v {
		r[i] = (v[i] << n) | (v[i] >> (32 - n))
	}
	return r
}

// Lane extracts the scalar word carried by one of the four independent
// streams, e.g. after hashing four messages in parallel.
func (v Vec4) Lane(i int) Word32 { return Word32(v[i]) }
