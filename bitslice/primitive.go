package bitslice

import "github.com/go-ctaes/ctaes/gf256"

// rotateLeft rotates the low `width` bits of x left by shift
// positions, treating x as already confined to those `width` bits
// (bits above `width` must be zero). It underlies both ShiftRows
// (rotating within one row's own segment) and MixColumns (rotating a
// whole row-group into a neighboring row's position).
func rotateLeft[W word](x W, shift, width uint) W {
	shift %= width
	if shift == 0 {
		return x
	}
	var mask W
	mask = (W(1) << width) - 1
	return ((x << shift) | (x >> (width - shift))) & mask
}

func isolate[W word](x W, offset, width uint) W {
	var mask W
	mask = (W(1) << width) - 1
	return (x >> offset) & mask
}

// ShiftRows cyclically rotates row r of every packed block left by r
// column-positions. Each row occupies its own contiguous rowShift-bit
// segment of every plane, so this is a per-segment local rotation
// rather than a whole-word shift: row 0's segment is untouched, row
// 1's is rotated by one colShift, row 2's by two, row 3's by three.
func (bs *Bitslice[W]) ShiftRows() {
	bs.planes = shiftRowsPlanes(bs.planes, false)
}

// InvShiftRows undoes ShiftRows, rotating row r right by r instead of
// left.
func (bs *Bitslice[W]) InvShiftRows() {
	bs.planes = shiftRowsPlanes(bs.planes, true)
}

func shiftRowsPlanes[W word](planes [8]W, inverse bool) [8]W {
	rs := uint(rowShift[W]())
	cs := uint(colShift[W]())

	var out [8]W
	for p := 0; p < 8; p++ {
		var acc W
		for row := uint(0); row < 4; row++ {
			seg := isolate(planes[p], row*rs, rs)
			shift := (rs - (row*cs)%rs) % rs
			if inverse {
				shift = (row * cs) % rs
			}
			rotated := rotateLeft(seg, shift, rs)
			acc |= rotated << (row * rs)
		}
		out[p] = acc
	}
	return out
}

func rowMask[W word](row uint) W {
	rs := uint(rowShift[W]())
	var one W = 1
	full := (one << rs) - 1
	return full << (row * rs)
}

func mulConstPlanes[W word](planes [8]W, table gf256.Multiple) [8]W {
	var out [8]W
	for p := 0; p < 8; p++ {
		var acc W
		for i := 0; i < 8; i++ {
			if table[p].Has(i) {
				acc ^= planes[i]
			}
		}
		out[p] = acc
	}
	return out
}

func xorPlanes[W word](a, b [8]W) [8]W {
	var out [8]W
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// mixColumnsMatrix and invMixColumnsMatrix are the MixColumns forward
// and inverse coefficient matrices, row-major: matrix[outRow][inRow].
var mixColumnsMatrix = [4][4]byte{
	{2, 3, 1, 1},
	{1, 2, 3, 1},
	{1, 1, 2, 3},
	{3, 1, 1, 2},
}

var invMixColumnsMatrix = [4][4]byte{
	{14, 11, 13, 9},
	{9, 14, 11, 13},
	{13, 9, 14, 11},
	{11, 13, 9, 14},
}

// mixColumnsTables holds the symbolic multiplication table for every
// constant MixColumns/InvMixColumns ever multiplies by (1, 2, 3, 9, 11,
// 13, 14), computed once at package init rather than on every
// MixColumns call: these bit-plane decompositions are fixed at
// init time, never recomputed in the hot round path.
var mixColumnsTables = func() map[byte]gf256.Multiple {
	m := make(map[byte]gf256.Multiple, 7)
	for _, k := range [...]byte{1, 2, 3, 9, 11, 13, 14} {
		m[k] = gf256.MultiplicationTable(k)
	}
	return m
}()

func mixColumnsWith[W word](planes [8]W, matrix [4][4]byte) [8]W {
	rs := uint(rowShift[W]())
	var out [8]W

	for outRow := uint(0); outRow < 4; outRow++ {
		var acc [8]W
		for inRow := uint(0); inRow < 4; inRow++ {
			coeff := matrix[outRow][inRow]

			var masked [8]W
			m := rowMask[W](inRow)
			for p := 0; p < 8; p++ {
				masked[p] = planes[p] & m
			}

			term := mulConstPlanes(masked, mixColumnsTables[coeff])

			var shifted [8]W
			shift := ((outRow + 4 - inRow) % 4) * rs
			for p := 0; p < 8; p++ {
				shifted[p] = rotateLeftFull(term[p], shift, uint(wordBits[W]()))
			}

			acc = xorPlanes(acc, shifted)
		}
		for p := 0; p < 8; p++ {
			out[p] |= acc[p]
		}
	}

	return out
}

// rotateLeftFull rotates the entire width-bit word x left by shift
// positions; unlike rotateLeft it assumes x already spans the whole
// word (no smaller segment to preserve outside the rotation).
func rotateLeftFull[W word](x W, shift, width uint) W {
	shift %= width
	if shift == 0 {
		return x
	}
	return (x << shift) | (x >> (width - shift))
}

// rotateRightFull rotates the entire width-bit word x right by shift
// positions.
func rotateRightFull[W word](x W, shift, width uint) W {
	shift %= width
	if shift == 0 {
		return x
	}
	return rotateLeftFull(x, width-shift, width)
}

// MixColumns mixes each packed block's columns as polynomials over
// GF(2^8), matching reference.State.MixColumns but evaluated as a
// boolean circuit over bit-planes instead of per-byte table-free
// arithmetic.
func (bs *Bitslice[W]) MixColumns() {
	bs.planes = mixColumnsWith(bs.planes, mixColumnsMatrix)
}

// InvMixColumns is the inverse of MixColumns.
func (bs *Bitslice[W]) InvMixColumns() {
	bs.planes = mixColumnsWith(bs.planes, invMixColumnsMatrix)
}
