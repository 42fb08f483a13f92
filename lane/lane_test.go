package lane

import "testing"

func TestWord32RotateLeft(t *testing.T) {
	cases := []struct {
		w    Word32
		n    uint
		want Word32
	}{
		{0x00000001, 1, 0x00000002},
		{0x80000000, 1, 0x00000001},
		{0x12345678, 0, 0x12345678},
		{0x12345678, 32, 0x12345678},
	}
	for _, c := range cases {
		if got := c.w.RotateLeft(c.n); got != c.want {
			t.Errorf("Word32(%#x).RotateLeft(%d) = %#x, want %#x", uint32(c.w), c.n, uint32(got), uint32(c.want))
		}
	}
}

func TestWord32BytesRoundTrip(t *testing.T) {
	w := Word32(0xdeadbeef)
	be := w.BytesBE()
	if got := Word32FromBE(be[:]); got != w {
		t.Errorf("BE round trip = %#x, want %#x", uint32(got), uint32(w))
	}
	le := w.BytesLE()
	if got := Word32FromLE(le[:]); got != w {
		t.Errorf("LE round trip = %#x, want %#x", uint32(got), uint32(w))
	}
}

func TestVec4IsElementWise(t *testing.T) {
	a := Vec4FromArray([4]Word32{1, 2, 3, 4})
	b := Vec4FromArray([4]Word32{10, 20, 30, 40})
	sum := a.Add(b)
	want := Vec4{11, 22, 33, 44}
	if sum != want {
		t.Errorf("Vec4.Add = %v, want %v", sum, want)
	}
}

func TestVec4MatchesScalarPerLane(t *testing.T) {
	lanes := [4]Word32{0x1, 0x2, 0x3, 0x4}
	v := Vec4FromArray(lanes)
	rotated := v.RotateLeft(5)
	for i, w := range lanes {
		if rotated.Lane(i) != w.RotateLeft(5) {
			t.Errorf("lane %d: Vec4 rotate = %#x, scalar rotate = %#x", i, uint32(rotated.Lane(i)), uint32(w.RotateLeft(5)))
		}
	}
}

func TestVec4Broadcast(t *testing.T) {
	v := BroadcastVec4(Word32(7))
	for i := 0; i < 4; i++ {
		if v.Lane(i) != 7 {
			t.Errorf("lane %d = %d, want 7", i, v.Lane(i))
		}
	}
}

func TestVec4From1(t *testing.T) {
	v := Vec4From1(Word32(9))
	if v.Lane(0) != 9 {
		t.Errorf("lane 0 = %d, want 9", v.Lane(0))
	}
	for i := 1; i < 4; i++ {
		if v.Lane(i) != 0 {
			t.Errorf("lane %d = %d, want 0", i, v.Lane(i))
		}
	}
}

func TestWord64RotateLeft(t *testing.T) {
	w := Word64(0x8000000000000000)
	if got := w.RotateLeft(1); got != 1 {
		t.Errorf("RotateLeft(1) = %#x, want 1", uint64(got))
	}
}
