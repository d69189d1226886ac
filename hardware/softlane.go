package hardware

import "github.com/go-ctaes/ctaes/bitslice"

// SoftLane is the portable Lane implementation: every round operation
// delegates to the single-block bit-sliced backend (bitslice.Bitslice
// with W = uint16, which packs exactly NumBlocks[uint16]() == 1 block),
// so it has no hardware dependency and runs identically wherever
// bitslice.Cipher[uint16] does. It exists so Interleave has a working
// Lane on every platform; a real assembly-backed Lane satisfying the
// same interface is a drop-in replacement once Supported() reports a
// usable CPU extension.
type SoftLane struct {
	bs bitslice.Bitslice[uint16]
}

// NewSoftLane packs one 16-byte AES block into a SoftLane.
func NewSoftLane(buf []byte) SoftLane {
	bs, err := bitslice.Pack[uint16](buf)
	if err != nil {
		// buf is always exactly block.Size bytes here (Interleave slices
		// it that way); Pack cannot fail on a correctly sized input.
		panic(err)
	}
	return SoftLane{bs: bs}
}

// Bytes unpacks l back into its 16-byte wire representation.
func (l SoftLane) Bytes() [16]byte {
	var out [16]byte
	copy(out[:], l.bs.Unpack())
	return out
}

func softLaneBytes(l SoftLane) [16]byte {
	return l.Bytes()
}

func roundKeyOf(rk SoftLane) bitslice.RoundKey[uint16] {
	return bitslice.RoundKeyFromPlanes(rk.bs.Planes())
}

// XorRoundKey XORs rk's bit-planes into l.
func (l SoftLane) XorRoundKey(rk SoftLane) SoftLane {
	out := l
	out.bs.AddRoundKey(roundKeyOf(rk))
	return out
}

// EncryptRound performs SubBytes, ShiftRows, MixColumns, then
// AddRoundKey(rk).
func (l SoftLane) EncryptRound(rk SoftLane) SoftLane {
	out := l
	out.bs.SubBytes()
	out.bs.ShiftRows()
	out.bs.MixColumns()
	out.bs.AddRoundKey(roundKeyOf(rk))
	return out
}

// EncryptRoundFinal performs SubBytes, ShiftRows, then AddRoundKey(rk),
// omitting MixColumns.
func (l SoftLane) EncryptRoundFinal(rk SoftLane) SoftLane {
	out := l
	out.bs.SubBytes()
	out.bs.ShiftRows()
	out.bs.AddRoundKey(roundKeyOf(rk))
	return out
}

// DecryptRound performs InvShiftRows, InvSubBytes, AddRoundKey(rk),
// then InvMixColumns — the equivalent-inverse-cipher ordering
// internal/roundops.Decrypt uses for the software backends.
func (l SoftLane) DecryptRound(rk SoftLane) SoftLane {
	out := l
	out.bs.InvShiftRows()
	out.bs.InvSubBytes()
	out.bs.AddRoundKey(roundKeyOf(rk))
	out.bs.InvMixColumns()
	return out
}

// DecryptRoundFinal performs InvShiftRows, InvSubBytes, then
// AddRoundKey(rk), omitting InvMixColumns.
func (l SoftLane) DecryptRoundFinal(rk SoftLane) SoftLane {
	out := l
	out.bs.InvShiftRows()
	out.bs.InvSubBytes()
	out.bs.AddRoundKey(roundKeyOf(rk))
	return out
}
