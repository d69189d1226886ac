// Package bitslice implements the constant-time, bit-sliced AES
// backend: 1, 2, or 4 AES blocks (for word widths 16, 32, 64 bits) are
// packed into eight machine words, one per bit-plane, so that every
// round operation becomes a fixed sequence of boolean and shift
// instructions with no data-dependent branch or memory access.
package bitslice

import (
	"fmt"

	"github.com/go-ctaes/ctaes/block"
)

// Bitslice holds NumBlocks[W]() AES blocks packed into eight words of
// type W, one per bit-plane: planes[p] holds bit p of every byte
// across every packed block, at bit position bitIndex(block,row,col).
type Bitslice[W word] struct {
	planes [8]W
}

// NumBytes returns how many plaintext bytes one Bitslice[W] holds.
func NumBytes[W word]() int {
	return 8 * (wordBits[W]() / 8)
}

// NumBlocks returns how many 16-byte AES blocks one Bitslice[W] packs
// together (1, 2, or 4, for W = uint16, uint32, uint64).
func NumBlocks[W word]() int {
	return NumBytes[W]() / block.Size
}

func colShift[W word]() int {
	return NumBlocks[W]()
}

func rowShift[W word]() int {
	return 4 * NumBlocks[W]()
}

// bitIndex returns the bit position within a bit-plane word that
// holds the given byte of the given block: row and col address a byte
// within one AES state the way block.Block does, and blockIdx selects
// which of the NumBlocks[W]() packed blocks.
func bitIndex[W word](blockIdx, row, col int) int {
	return rowShift[W]()*row + colShift[W]()*col + blockIdx
}

// Pack loads NumBytes[W]() bytes — NumBlocks[W]() concatenated AES
// blocks in column-major wire order — into bit-sliced form.
func Pack[W word](buf []byte) (Bitslice[W], error) {
	n := NumBytes[W]()
	if len(buf) != n {
		return Bitslice[W]{}, fmt.Errorf("bitslice: input must be %d bytes, got %d", n, len(buf))
	}

	wordLen := wordBits[W]() / 8
	var words [8]W
	for i := 0; i < 8; i++ {
		words[i] = loadLE[W](buf[i*wordLen : i*wordLen+wordLen])
	}
	toBitsliceOrder(&words)

	return Bitslice[W]{planes: words}, nil
}

// Unpack reverses Pack, returning the NumBytes[W]() bytes the
// Bitslice represents in column-major wire order.
func (bs Bitslice[W]) Unpack() []byte {
	words := bs.planes
	fromBitsliceOrder(&words)

	wordLen := wordBits[W]() / 8
	out := make([]byte, NumBytes[W]())
	for i := 0; i < 8; i++ {
		storeLE(words[i], out[i*wordLen:i*wordLen+wordLen])
	}
	return out
}

// byteAt returns the byte at (blockIdx, row, col), reassembled from
// the bit at that position in every bit-plane: bit p of the result is
// taken from plane p. It is a test/debugging helper, not used on the hot
// encrypt/decrypt path.
func (bs Bitslice[W]) byteAt(blockIdx, row, col int) byte {
	pos := uint(bitIndex[W](blockIdx, row, col))
	var v byte
	for p := 0; p < 8; p++ {
		if (bs.planes[p]>>pos)&1 != 0 {
			v |= 1 << uint(p)
		}
	}
	return v
}

// AddRoundKey XORs the given round key's bit-planes into the state.
func (bs *Bitslice[W]) AddRoundKey(rk RoundKey[W]) {
	for i := range bs.planes {
		bs.planes[i] ^= rk.planes[i]
	}
}

// Planes returns the eight raw bit-plane words backing bs. This
// exposes the packed representation to other backends that need to
// move a value between the bit-sliced layout and their own — the
// hardware backend's SoftLane is itself a single-block Bitslice, and
// converts through this rather than re-deriving the layout.
func (bs Bitslice[W]) Planes() [8]W {
	return bs.planes
}

// FromPlanes builds a Bitslice directly from eight already bit-sliced
// plane words, skipping Pack's byte-order transpose. Used when the
// planes originate from another bit-sliced value (a RoundKey, or
// another Bitslice) rather than from raw wire bytes.
func FromPlanes[W word](planes [8]W) Bitslice[W] {
	return Bitslice[W]{planes: planes}
}
