package bitslice

import "testing"

func TestSwapMoveIsInvolution(t *testing.T) {
	for logShift := uint(0); logShift < 6; logShift++ {
		a, b := uint64(0x0123456789abcdef), uint64(0xfedcba9876543210)
		a1, b1 := swapMove(a, b, logShift)
		a2, b2 := swapMove(a1, b1, logShift)
		if a2 != a || b2 != b {
			t.Fatalf("swapMove logShift=%d not an involution: got (%x,%x), want (%x,%x)", logShift, a2, b2, a, b)
		}
	}
}

func TestBitsliceOrderRoundTrip16(t *testing.T) {
	var words [8]uint16
	for i := range words {
		words[i] = uint16(i*4111 + 7)
	}
	orig := words
	toBitsliceOrder16(&words)
	fromBitsliceOrder16(&words)
	if words != orig {
		t.Fatalf("16-bit order round trip failed: got %v, want %v", words, orig)
	}
}

func TestBitsliceOrderRoundTrip32(t *testing.T) {
	var words [8]uint32
	for i := range words {
		words[i] = uint32(i)*0x01010101 + 0x13579
	}
	orig := words
	toBitsliceOrder32(&words)
	fromBitsliceOrder32(&words)
	if words != orig {
		t.Fatalf("32-bit order round trip failed: got %v, want %v", words, orig)
	}
}

func TestBitsliceOrderRoundTrip64(t *testing.T) {
	var words [8]uint64
	for i := range words {
		words[i] = uint64(i)*0x0101010101010101 + 0x123456789
	}
	orig := words
	toBitsliceOrder64(&words)
	fromBitsliceOrder64(&words)
	if words != orig {
		t.Fatalf("64-bit order round trip failed: got %v, want %v", words, orig)
	}
}

func TestRepeatMaskKnownValues(t *testing.T) {
	cases := []struct {
		shift uint
		want  uint64
	}{
		{1, 0x5555555555555555},
		{2, 0x3333333333333333},
		{4, 0x0f0f0f0f0f0f0f0f},
		{8, 0x00ff00ff00ff00ff},
		{16, 0x0000ffff0000ffff},
		{32, 0x00000000ffffffff},
	}
	for _, c := range cases {
		if got := repeatMask[uint64](c.shift); got != c.want {
			t.Errorf("repeatMask[uint64](%d) = %#x, want %#x", c.shift, got, c.want)
		}
	}
}

func TestLoadStoreLERoundTrip(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	v := loadLE[uint64](buf)
	out := make([]byte, 8)
	storeLE(v, out)
	for i := range buf {
		if out[i] != buf[i] {
			t.Fatalf("loadLE/storeLE round trip mismatch at %d: got %d, want %d", i, out[i], buf[i])
		}
	}
}
