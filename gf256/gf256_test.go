package gf256

import "testing"

func TestMulKnownVector(t *testing.T) {
	// 0x53 * 0xCA = 0x01 in GF(2^8)/(x^8+x^4+x^3+x+1); the textbook
	// example used throughout the Rijndael spec.
	got := Element(0x53).Mul(Element(0xca))
	if got != Element(0x01) {
		t.Fatalf("0x53 * 0xca = 0x%02x, want 0x01", byte(got))
	}
}

func TestMulCommutative(t *testing.T) {
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			a := Element(x).Mul(Element(y))
			b := Element(y).Mul(Element(x))
			if a != b {
				t.Fatalf("mul not commutative: %d*%d = %d, %d*%d = %d", x, y, a, y, x, b)
			}
		}
	}
}

func TestMulIdentity(t *testing.T) {
	for x := 0; x < 256; x++ {
		if got := Element(x).Mul(Element(1)); got != Element(x) {
			t.Fatalf("%d * 1 = %d, want %d", x, got, x)
		}
	}
}

func TestInverseTableIsPermutationOfNonzero(t *testing.T) {
	inv := InverseTable()

	seen := make(map[Element]bool)
	for x := 1; x < 256; x++ {
		y := inv[x]
		if y == 0 {
			t.Fatalf("inverse of %d is 0, must be nonzero", x)
		}
		if Element(x).Mul(y) != Element(1) {
			t.Fatalf("%d * inv(%d)=%d != 1", x, x, y)
		}
		if seen[y] {
			t.Fatalf("inverse table is not a permutation: %d repeated", y)
		}
		seen[y] = true
	}
}

func TestAddIsXOR(t *testing.T) {
	if Element(0x53).Add(Element(0x53)) != Element(0) {
		t.Fatal("x + x must be 0 in characteristic 2")
	}
}

func TestMultiplicationTableMatchesMul(t *testing.T) {
	// For every constant k and every input byte x, evaluating the
	// symbolic bit-plane table against x's bits must reproduce
	// Element(x).Mul(Element(k)) exactly.
	for _, k := range []byte{1, 2, 3, 9, 11, 13, 14} {
		table := MultiplicationTable(k)
		for x := 0; x < 256; x++ {
			var want byte
			for plane := 0; plane < 8; plane++ {
				bit := byte(0)
				for src := 0; src < 8; src++ {
					if table[plane].Has(src) && (x>>uint(src))&1 != 0 {
						bit ^= 1
					}
				}
				want |= bit << uint(plane)
			}
			got := byte(Element(x).Mul(Element(k)))
			if got != want {
				t.Fatalf("k=%d x=%d: symbolic table gives %02x, Mul gives %02x", k, x, want, got)
			}
		}
	}
}
