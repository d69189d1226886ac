package bitslice

import (
	"fmt"

	"github.com/go-ctaes/ctaes/internal/roundops"
	"github.com/go-ctaes/ctaes/key"
)

// Cipher is the bit-sliced AES backend for word width W. It satisfies
// both ctaes.BlockCipher and ctaes.ParallelBlockCipher: one call to
// EncryptBlocks/DecryptBlocks processes NumBlocks[W]() blocks at once.
type Cipher[W word] struct {
	sched key.Schedule[RoundKey[W]]
}

// NewCipher builds a Cipher from an AES key.
func NewCipher[W word](k key.Key) Cipher[W] {
	return Cipher[W]{sched: NewSchedule[W](k)}
}

// ParallelBlocks reports how many AES blocks this backend processes
// per batch: 1, 2, or 4 for W = uint16, uint32, uint64.
func (c Cipher[W]) ParallelBlocks() int {
	return NumBlocks[W]()
}

// EncryptBlocks encrypts exactly one NumBytes[W]()-byte batch taken
// from the front of buf, in place, and returns the number of bytes
// consumed. A caller with more than one batch to process calls
// EncryptBlocks repeatedly, advancing by the returned count each time
// — this backend does not loop over the rest of buf itself, matching
// the same per-call batch contract as every other backend.
func (c Cipher[W]) EncryptBlocks(buf []byte) (int, error) {
	batch := NumBytes[W]()
	if len(buf) < batch {
		return 0, fmt.Errorf("bitslice: buffer length %d is shorter than one batch of %d", len(buf), batch)
	}

	bs, err := Pack[W](buf[:batch])
	if err != nil {
		return 0, err
	}
	roundops.Encrypt[*Bitslice[W], RoundKey[W]](&bs, c.sched.Slice())
	copy(buf[:batch], bs.Unpack())
	return batch, nil
}

// DecryptBlocks decrypts exactly one NumBytes[W]()-byte batch taken
// from the front of buf, in place, and returns the number of bytes
// consumed.
func (c Cipher[W]) DecryptBlocks(buf []byte) (int, error) {
	batch := NumBytes[W]()
	if len(buf) < batch {
		return 0, fmt.Errorf("bitslice: buffer length %d is shorter than one batch of %d", len(buf), batch)
	}

	bs, err := Pack[W](buf[:batch])
	if err != nil {
		return 0, err
	}
	roundops.Decrypt[*Bitslice[W], RoundKey[W]](&bs, c.sched.Slice())
	copy(buf[:batch], bs.Unpack())
	return batch, nil
}
