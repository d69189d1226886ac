package hardware

import (
	"fmt"

	"github.com/go-ctaes/ctaes/block"
)

// Interleave runs factor independent Lane values through the AES round
// schedule in lockstep: every lane completes round r before any lane
// starts round r+1, rather than running one lane's full encryption to
// completion before starting the next. This is the Go generalization
// of the original's macro-generated Interleave1/2/3/4/6/8 family — one
// generic type parameterized by a runtime factor instead of six
// near-identical generated types, since Go lacks the const-generic
// array sizes the original leans on.
//
// newLane builds one Lane from a 16-byte block, and roundKeys holds the
// schedule's round keys already converted to L, in round order.
type Interleave[L Lane[L]] struct {
	factor    int
	newLane   func([]byte) L
	laneBytes func(L) [16]byte
	roundKeys []L
}

// NewInterleave builds an Interleave with the given lane factor (the
// number of blocks processed per EncryptBlocks/DecryptBlocks call),
// lane constructor/destructor pair, and round-key schedule (already
// expressed in the lane's own representation, since a Lane's round-key
// type is its own type).
func NewInterleave[L Lane[L]](factor int, newLane func([]byte) L, laneBytes func(L) [16]byte, roundKeys []L) Interleave[L] {
	return Interleave[L]{
		factor:    factor,
		newLane:   newLane,
		laneBytes: laneBytes,
		roundKeys: roundKeys,
	}
}

// ParallelBlocks reports how many blocks one EncryptBlocks/DecryptBlocks
// call processes.
func (in Interleave[L]) ParallelBlocks() int {
	return in.factor
}

func (in Interleave[L]) batchSize() int {
	return in.factor * block.Size
}

// EncryptBlocks encrypts exactly one batch (ParallelBlocks() blocks)
// taken from the front of buf, in place, and returns the number of
// bytes consumed.
func (in Interleave[L]) EncryptBlocks(buf []byte) (int, error) {
	batch := in.batchSize()
	if len(buf) < batch {
		return 0, fmt.Errorf("hardware: buffer length %d is shorter than one batch of %d", len(buf), batch)
	}

	lanes := make([]L, in.factor)
	for i := range lanes {
		lanes[i] = in.newLane(buf[i*block.Size : (i+1)*block.Size])
	}

	nr := len(in.roundKeys) - 1
	for i := range lanes {
		lanes[i] = lanes[i].XorRoundKey(in.roundKeys[0])
	}
	for r := 1; r < nr; r++ {
		for i := range lanes {
			lanes[i] = lanes[i].EncryptRound(in.roundKeys[r])
		}
	}
	for i := range lanes {
		lanes[i] = lanes[i].EncryptRoundFinal(in.roundKeys[nr])
	}

	for i := range lanes {
		out := in.laneBytes(lanes[i])
		copy(buf[i*block.Size:(i+1)*block.Size], out[:])
	}
	return batch, nil
}

// DecryptBlocks decrypts exactly one batch taken from the front of
// buf, in place, and returns the number of bytes consumed. The round
// order is the same equivalent-inverse-cipher arrangement
// internal/roundops.Decrypt uses — InvShiftRows, InvSubBytes,
// AddRoundKey, InvMixColumns per inner round — so the lane schedule and
// the software schedule agree on which round-key ordering to expect.
func (in Interleave[L]) DecryptBlocks(buf []byte) (int, error) {
	batch := in.batchSize()
	if len(buf) < batch {
		return 0, fmt.Errorf("hardware: buffer length %d is shorter than one batch of %d", len(buf), batch)
	}

	lanes := make([]L, in.factor)
	for i := range lanes {
		lanes[i] = in.newLane(buf[i*block.Size : (i+1)*block.Size])
	}

	nr := len(in.roundKeys) - 1
	for i := range lanes {
		lanes[i] = lanes[i].XorRoundKey(in.roundKeys[nr])
	}
	for r := nr - 1; r >= 1; r-- {
		for i := range lanes {
			lanes[i] = lanes[i].DecryptRound(in.roundKeys[r])
		}
	}
	for i := range lanes {
		lanes[i] = lanes[i].DecryptRoundFinal(in.roundKeys[0])
	}

	for i := range lanes {
		out := in.laneBytes(lanes[i])
		copy(buf[i*block.Size:(i+1)*block.Size], out[:])
	}
	return batch, nil
}
