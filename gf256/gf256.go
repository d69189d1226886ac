// Package gf256 implements arithmetic in GF(2⁸)/(x⁸ + x⁴ + x³ + x + 1),
// the finite field used by every AES operation.
package gf256

// Element is a value of GF(2⁸)/(x⁸ + x⁴ + x³ + x + 1).
type Element byte

// Add returns e + f, which in this field is the same as subtraction.
func (e Element) Add(f Element) Element {
	return e ^ f
}

// Mul returns the product of e and f, reduced modulo x⁸+x⁴+x³+x+1.
func (e Element) Mul(f Element) Element {
	var a, b, p byte = byte(e), byte(f), 0

	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}

		hiBitSet := a&0x80 != 0
		a <<= 1
		if hiBitSet {
			a ^= 0x1b
		}

		b >>= 1
	}

	return Element(p)
}

// InverseTable returns, for every nonzero byte value, its multiplicative
// inverse in GF(2⁸). Element(0) has no inverse and maps to itself.
//
// The table is built by exhaustive search: it is a test/build-time
// helper, never evaluated on a secret-dependent code path.
func InverseTable() [256]Element {
	var inv [256]Element

	for x := 1; x < 256; x++ {
		for y := 1; y < 256; y++ {
			if Element(x).Mul(Element(y)) == Element(1) {
				inv[x] = Element(y)
				break
			}
		}
	}

	return inv
}

// XORBytes XORs two equal-length byte slices into a freshly allocated slice.
// It is the GF(2⁸) vector addition used by AddRoundKey.
func XORBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}
