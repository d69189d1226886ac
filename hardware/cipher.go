package hardware

import (
	"runtime"

	"github.com/go-ctaes/ctaes/bitslice"
	"github.com/go-ctaes/ctaes/key"
	"golang.org/x/sys/cpu"
)

// Supported reports whether the running CPU advertises a hardware AES
// instruction set (AES-NI on amd64, the ARMv8 Crypto Extensions on
// arm64). It is meant to be called once, at Schedule/Cipher
// construction time, to pick a backend — never per-block, which would
// turn CPU-feature detection into a branch inside the hot encrypt loop.
// This module has no assembly-backed Lane yet, so Supported always
// reports what the CPU offers; NewCipher does not yet act on it and
// always builds the SoftLane-backed interleave, documented in
// DESIGN.md.
func Supported() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasAES
	case "arm64":
		return cpu.ARM64.HasAES
	default:
		return false
	}
}

// Cipher is the hardware backend surface: it wraps an Interleave of
// SoftLane values (single-lane factor, i.e. one block per call) built
// from the bit-sliced width-16 schedule. It satisfies the same
// BlockCipher/ParallelBlockCipher shape as reference.Cipher and
// bitslice.Cipher[W], so the three backends are interchangeable behind
// the root ctaes package's selector interfaces.
type Cipher struct {
	interleave Interleave[SoftLane]
}

// NewCipher builds a Cipher from an AES key. The lane factor is fixed
// at 1: a real hardware Lane would pick a larger interleave factor
// (2, 3, 4, 6, or 8) to amortize AESENC's pipeline latency, but
// SoftLane gains nothing from interleaving since it has no instruction
// pipeline to hide, so factor 1 keeps this fallback simple.
func NewCipher(k key.Key) Cipher {
	bsSched := bitslice.NewSchedule[uint16](k)
	laneKeys := make([]SoftLane, bsSched.Len())
	for i := range laneKeys {
		rk := bsSched.RoundKey(i)
		laneKeys[i] = SoftLane{bs: bitslice.FromPlanes(rk.Planes())}
	}
	sched := key.NewSchedule(laneKeys)

	return Cipher{
		interleave: NewInterleave[SoftLane](1, NewSoftLane, softLaneBytes, sched.Slice()),
	}
}

// ParallelBlocks reports how many blocks one EncryptBlocks/DecryptBlocks
// call processes.
func (c Cipher) ParallelBlocks() int {
	return c.interleave.ParallelBlocks()
}

// EncryptBlocks encrypts exactly one batch taken from the front of
// buf, in place, and returns the number of bytes consumed.
func (c Cipher) EncryptBlocks(buf []byte) (int, error) {
	return c.interleave.EncryptBlocks(buf)
}

// DecryptBlocks decrypts exactly one batch taken from the front of
// buf, in place, and returns the number of bytes consumed.
func (c Cipher) DecryptBlocks(buf []byte) (int, error) {
	return c.interleave.DecryptBlocks(buf)
}
