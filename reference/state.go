// Package reference implements the byte-oriented, table-based AES
// backend. It is not constant-time (SubBytes indexes a lookup table by
// secret data) and exists purely as the correctness oracle the
// bit-sliced backend is tested against.
package reference

import (
	"github.com/go-ctaes/ctaes/block"
	"github.com/go-ctaes/ctaes/gf256"
)

// State is one AES block under the reference representation. It is a
// defined type over block.Block, not an alias, so this package can
// attach its own methods (block.Block's methods stay in the block
// package) while sharing the identical [16]byte layout.
type State block.Block

func (s *State) asBlock() *block.Block {
	return (*block.Block)(s)
}

// SubBytes applies the forward S-box to every byte of the state.
func (s *State) SubBytes() {
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

// InvSubBytes applies the inverse S-box to every byte of the state.
func (s *State) InvSubBytes() {
	for i := range s {
		s[i] = invSBox[s[i]]
	}
}

// ShiftRows cyclically shifts row r left by r bytes.
func (s *State) ShiftRows() {
	b := s.asBlock()
	var out block.Block
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.Set(row, col, b.At(row, (col+row)%4))
		}
	}
	*b = out
}

// InvShiftRows cyclically shifts row r right by r bytes.
func (s *State) InvShiftRows() {
	b := s.asBlock()
	var out block.Block
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.Set(row, (col+row)%4, b.At(row, col))
		}
	}
	*b = out
}

// MixColumns mixes each column of the state as a polynomial over
// GF(2^8), multiplying by the fixed matrix [[2,3,1,1],[1,2,3,1],
// [1,1,2,3],[3,1,1,2]].
func (s *State) MixColumns() {
	b := s.asBlock()
	var out block.Block
	for col := 0; col < 4; col++ {
		a0 := gf256.Element(b.At(0, col))
		a1 := gf256.Element(b.At(1, col))
		a2 := gf256.Element(b.At(2, col))
		a3 := gf256.Element(b.At(3, col))

		two := gf256.Element(2)
		three := gf256.Element(3)

		out.Set(0, col, byte(a0.Mul(two).Add(a1.Mul(three)).Add(a2).Add(a3)))
		out.Set(1, col, byte(a0.Add(a1.Mul(two)).Add(a2.Mul(three)).Add(a3)))
		out.Set(2, col, byte(a0.Add(a1).Add(a2.Mul(two)).Add(a3.Mul(three))))
		out.Set(3, col, byte(a0.Mul(three).Add(a1).Add(a2).Add(a3.Mul(two))))
	}
	*b = out
}

// InvMixColumns is the inverse of MixColumns, using the matrix
// [[14,11,13,9],[9,14,11,13],[13,9,14,11],[11,13,9,14]].
func (s *State) InvMixColumns() {
	b := s.asBlock()
	var out block.Block
	for col := 0; col < 4; col++ {
		a0 := gf256.Element(b.At(0, col))
		a1 := gf256.Element(b.At(1, col))
		a2 := gf256.Element(b.At(2, col))
		a3 := gf256.Element(b.At(3, col))

		c9 := gf256.Element(9)
		c11 := gf256.Element(11)
		c13 := gf256.Element(13)
		c14 := gf256.Element(14)

		out.Set(0, col, byte(a0.Mul(c14).Add(a1.Mul(c11)).Add(a2.Mul(c13)).Add(a3.Mul(c9))))
		out.Set(1, col, byte(a0.Mul(c9).Add(a1.Mul(c14)).Add(a2.Mul(c11)).Add(a3.Mul(c13))))
		out.Set(2, col, byte(a0.Mul(c13).Add(a1.Mul(c9)).Add(a2.Mul(c14)).Add(a3.Mul(c11))))
		out.Set(3, col, byte(a0.Mul(c11).Add(a1.Mul(c13)).Add(a2.Mul(c9)).Add(a3.Mul(c14))))
	}
	*b = out
}

// AddRoundKey XORs the given round key into the state.
func (s *State) AddRoundKey(rk State) {
	copy(s[:], gf256.XORBytes(s[:], rk[:]))
}
