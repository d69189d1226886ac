package bitslice

// This file evaluates the AES S-box as a straight-line boolean circuit
// over the eight bit-planes of a word, with no table lookup and no
// data-dependent branch: the same constant-time property every
// bit-sliced operation in this package must hold.
//
// The circuit is built from two GF(2^8) primitives, themselves
// expressed as bit-plane boolean formulas:
//
//   - squaring is GF(2)-linear (Frobenius: (a+b)^2 = a^2+b^2 in
//     characteristic 2), so square(a) is a fixed XOR of a's own bit
//     planes, independent of any other operand;
//   - multiplication of two unknown bit-sliced values is bilinear: each
//     output plane is an XOR of AND-products of one plane from each
//     operand.
//
// Both tables below enumerate exactly which planes combine for the
// field GF(2^8)/(x^8+x^4+x^3+x+1) AES uses, the same field gf256
// implements numerically. SubBytes's inversion step computes a^254 (=
// a^-1 for nonzero a, since the multiplicative group has order 255)
// via the addition chain 1,2,3,4,7,8,15,16,31,32,63,64,127,254 — six
// multiplies and seven squarings — then wraps it in the Rijndael
// affine transform; InvSubBytes undoes the affine transform first.

type mulTerm struct {
	i, j int
}

// gf256MulTerms[p] lists the (i, j) bit-plane pairs whose AND
// contributes (via XOR) to output plane p of a bit-sliced GF(2^8)
// multiply of two unknown operands.
var gf256MulTerms = [8][]mulTerm{
	{{0, 0}, {1, 7}, {2, 6}, {3, 5}, {4, 4}, {5, 3}, {5, 7}, {6, 2}, {6, 6}, {6, 7}, {7, 1}, {7, 5}, {7, 6}},
	{{0, 1}, {1, 0}, {1, 7}, {2, 6}, {2, 7}, {3, 5}, {3, 6}, {4, 4}, {4, 5}, {5, 3}, {5, 4}, {5, 7}, {6, 2}, {6, 3}, {6, 6}, {7, 1}, {7, 2}, {7, 5}, {7, 7}},
	{{0, 2}, {1, 1}, {2, 0}, {2, 7}, {3, 6}, {3, 7}, {4, 5}, {4, 6}, {5, 4}, {5, 5}, {6, 3}, {6, 4}, {6, 7}, {7, 2}, {7, 3}, {7, 6}},
	{{0, 3}, {1, 2}, {1, 7}, {2, 1}, {2, 6}, {3, 0}, {3, 5}, {3, 7}, {4, 4}, {4, 6}, {4, 7}, {5, 3}, {5, 5}, {5, 6}, {5, 7}, {6, 2}, {6, 4}, {6, 5}, {6, 6}, {6, 7}, {7, 1}, {7, 3}, {7, 4}, {7, 5}, {7, 6}, {7, 7}},
	{{0, 4}, {1, 3}, {1, 7}, {2, 2}, {2, 6}, {2, 7}, {3, 1}, {3, 5}, {3, 6}, {4, 0}, {4, 4}, {4, 5}, {4, 7}, {5, 3}, {5, 4}, {5, 6}, {6, 2}, {6, 3}, {6, 5}, {7, 1}, {7, 2}, {7, 4}, {7, 7}},
	{{0, 5}, {1, 4}, {2, 3}, {2, 7}, {3, 2}, {3, 6}, {3, 7}, {4, 1}, {4, 5}, {4, 6}, {5, 0}, {5, 4}, {5, 5}, {5, 7}, {6, 3}, {6, 4}, {6, 6}, {7, 2}, {7, 3}, {7, 5}},
	{{0, 6}, {1, 5}, {2, 4}, {3, 3}, {3, 7}, {4, 2}, {4, 6}, {4, 7}, {5, 1}, {5, 5}, {5, 6}, {6, 0}, {6, 4}, {6, 5}, {6, 7}, {7, 3}, {7, 4}, {7, 6}},
	{{0, 7}, {1, 6}, {2, 5}, {3, 4}, {4, 3}, {4, 7}, {5, 2}, {5, 6}, {5, 7}, {6, 1}, {6, 5}, {6, 6}, {7, 0}, {7, 4}, {7, 5}, {7, 7}},
}

// gf256SquareTerms[p] lists the input planes whose XOR gives output
// plane p of a bit-sliced GF(2^8) squaring.
var gf256SquareTerms = [8][]int{
	{0, 4, 6},
	{4, 6, 7},
	{1, 5},
	{4, 5, 6, 7},
	{2, 4, 7},
	{5, 6},
	{3, 5},
	{6, 7},
}

func gf256MulPlanes[W word](a, b [8]W) [8]W {
	var out [8]W
	for p := 0; p < 8; p++ {
		var acc W
		for _, t := range gf256MulTerms[p] {
			acc ^= a[t.i] & b[t.j]
		}
		out[p] = acc
	}
	return out
}

func gf256SquarePlanes[W word](a [8]W) [8]W {
	var out [8]W
	for p := 0; p < 8; p++ {
		var acc W
		for _, i := range gf256SquareTerms[p] {
			acc ^= a[i]
		}
		out[p] = acc
	}
	return out
}

// gf256InversePlanes computes the bit-sliced multiplicative inverse
// (0 maps to itself, matching the scalar convention gf256.Element
// uses) via a^254 = a * a^2 * a^4 * ... * a^64, all raised once more
// to the square: the addition chain 1,2,3,4,7,8,15,16,31,32,63,64,127,254.
func gf256InversePlanes[W word](a [8]W) [8]W {
	s2 := gf256SquarePlanes(a)
	acc := gf256MulPlanes(a, s2) // a^3

	s4 := gf256SquarePlanes(s2) // a^4
	acc = gf256MulPlanes(acc, s4) // a^7

	s8 := gf256SquarePlanes(s4) // a^8
	acc = gf256MulPlanes(acc, s8) // a^15

	s16 := gf256SquarePlanes(s8) // a^16
	acc = gf256MulPlanes(acc, s16) // a^31

	s32 := gf256SquarePlanes(s16) // a^32
	acc = gf256MulPlanes(acc, s32) // a^63

	s64 := gf256SquarePlanes(s32) // a^64
	acc = gf256MulPlanes(acc, s64) // a^127

	return gf256SquarePlanes(acc) // a^254 == a^-1 for a != 0, and 0 for a == 0
}

// affineTerms[p] lists the input planes (of the multiplicative
// inverse) XORed to produce output plane p of the Rijndael affine
// transform b ^ rotl(b,1) ^ rotl(b,2) ^ rotl(b,3) ^ rotl(b,4) ^ 0x63,
// excluding the constant 0x63 (added separately since it does not
// depend on any input plane).
var affineTerms = [8][]int{
	{0, 4, 5, 6, 7},
	{0, 1, 5, 6, 7},
	{0, 1, 2, 6, 7},
	{0, 1, 2, 3, 7},
	{0, 1, 2, 3, 4},
	{1, 2, 3, 4, 5},
	{2, 3, 4, 5, 6},
	{3, 4, 5, 6, 7},
}

// affineConstant is the 0x63 term of the forward affine transform,
// bit p of which XORs unconditionally into output plane p.
var affineConstant = [8]bool{true, true, false, false, false, true, true, false}

func affinePlanes[W word](a [8]W, allOnes W) [8]W {
	var out [8]W
	for p := 0; p < 8; p++ {
		var acc W
		for _, i := range affineTerms[p] {
			acc ^= a[i]
		}
		if affineConstant[p] {
			acc ^= allOnes
		}
		out[p] = acc
	}
	return out
}

// invAffineTerms/invAffineConstant implement the inverse of the
// affine transform above: x -> rotl(x,1) ^ rotl(x,3) ^ rotl(x,6) ^
// 0x05, applied before inversion in InvSubBytes.
var invAffineTerms = [8][]int{
	{2, 5, 7},
	{0, 3, 6},
	{1, 4, 7},
	{0, 2, 5},
	{1, 3, 6},
	{2, 4, 7},
	{0, 3, 5},
	{1, 4, 6},
}

var invAffineConstant = [8]bool{true, false, true, false, false, false, false, false}

func invAffinePlanes[W word](a [8]W, allOnes W) [8]W {
	var out [8]W
	for p := 0; p < 8; p++ {
		var acc W
		for _, i := range invAffineTerms[p] {
			acc ^= a[i]
		}
		if invAffineConstant[p] {
			acc ^= allOnes
		}
		out[p] = acc
	}
	return out
}

// SubBytes applies the forward AES S-box to every packed byte, in
// place, with no table lookup: inversion in GF(2^8) followed by the
// Rijndael affine transform, both evaluated as boolean circuits over
// whole bit-plane words.
func (bs *Bitslice[W]) SubBytes() {
	var allOnes W
	allOnes = ^allOnes

	inv := gf256InversePlanes(bs.planes)
	bs.planes = affinePlanes(inv, allOnes)
}

// InvSubBytes applies the inverse AES S-box: the inverse affine
// transform followed by GF(2^8) inversion (inversion is its own
// inverse on the nonzero elements).
func (bs *Bitslice[W]) InvSubBytes() {
	var allOnes W
	allOnes = ^allOnes

	x := invAffinePlanes(bs.planes, allOnes)
	bs.planes = gf256InversePlanes(x)
}
