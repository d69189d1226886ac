package reference

import (
	"fmt"

	"github.com/go-ctaes/ctaes/block"
	"github.com/go-ctaes/ctaes/internal/roundops"
	"github.com/go-ctaes/ctaes/key"
)

type word [4]byte

func subWord(w word) word {
	return word{sbox[w[0]], sbox[w[1]], sbox[w[2]], sbox[w[3]]}
}

func rotWord(w word) word {
	return word{w[1], w[2], w[3], w[0]}
}

// NewSchedule expands k into the reference backend's round-key
// schedule, following the FIPS-197 key expansion: the first Nk words
// come directly from the key; each subsequent word is the previous
// word XORed with the word Nk positions back, with an extra
// RotWord/SubWord/Rcon treatment every Nk words (and an extra SubWord
// for AES-256 at the halfway point of each Nk block).
func NewSchedule(k key.Key) key.Schedule[State] {
	nk := k.Size().Words()
	nr := k.Size().Rounds()
	totalWords := 4 * (nr + 1)

	w := make([]word, totalWords)
	raw := k.Bytes()
	for i := 0; i < nk; i++ {
		copy(w[i][:], raw[4*i:4*i+4])
	}

	for i := nk; i < totalWords; i++ {
		temp := w[i-1]
		switch {
		case i%nk == 0:
			temp = subWord(rotWord(temp))
			temp[0] ^= key.RoundConstants[i/nk-1]
		case nk > 6 && i%nk == 4:
			temp = subWord(temp)
		}
		for j := 0; j < 4; j++ {
			w[i][j] = w[i-nk][j] ^ temp[j]
		}
	}

	keys := make([]State, nr+1)
	for round := 0; round <= nr; round++ {
		var blk block.Block
		for c := 0; c < 4; c++ {
			wd := w[round*4+c]
			for r := 0; r < 4; r++ {
				blk.Set(r, c, wd[r])
			}
		}
		keys[round] = State(blk)
	}

	return key.NewSchedule(keys)
}

// Cipher is the reference, table-based AES backend. It satisfies
// ctaes.BlockCipher.
type Cipher struct {
	sched key.Schedule[State]
}

// NewCipher builds a Cipher from an AES key.
func NewCipher(k key.Key) Cipher {
	return Cipher{sched: NewSchedule(k)}
}

// ParallelBlocks is the reference backend's advertised parallelism: it
// processes one block per call, having no word-level or lane-level
// parallelism of its own.
func (c Cipher) ParallelBlocks() int { return 1 }

// EncryptBlocks encrypts exactly one 16-byte batch taken from the front
// of buf, in place, and returns the number of bytes consumed
// (block.Size). It does not loop over the rest of buf — a caller
// processing a larger buffer calls EncryptBlocks repeatedly, advancing
// by the returned count each time, per the BlockCipher contract every
// backend in this module shares.
func (c Cipher) EncryptBlocks(buf []byte) (int, error) {
	if len(buf) < block.Size {
		return 0, fmt.Errorf("reference: buffer length %d is shorter than one batch of %d", len(buf), block.Size)
	}

	blk, err := block.FromBytes(buf[:block.Size])
	if err != nil {
		return 0, err
	}
	st := State(blk)
	roundops.Encrypt[*State, State](&st, c.sched.Slice())
	copy(buf[:block.Size], block.Block(st).Bytes())
	return block.Size, nil
}

// DecryptBlocks decrypts exactly one 16-byte batch taken from the front
// of buf, in place, and returns the number of bytes consumed.
func (c Cipher) DecryptBlocks(buf []byte) (int, error) {
	if len(buf) < block.Size {
		return 0, fmt.Errorf("reference: buffer length %d is shorter than one batch of %d", len(buf), block.Size)
	}

	blk, err := block.FromBytes(buf[:block.Size])
	if err != nil {
		return 0, err
	}
	st := State(blk)
	roundops.Decrypt[*State, State](&st, c.sched.Slice())
	copy(buf[:block.Size], block.Block(st).Bytes())
	return block.Size, nil
}
