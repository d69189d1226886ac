// Package ctaes is a constant-time AES block cipher library offering
// three interchangeable backends behind a common selector surface: a
// byte-oriented reference implementation (test oracle only, not
// constant-time), a bit-sliced software implementation that processes
// 1, 2, or 4 blocks in parallel via word-level parallelism, and a
// hardware backend surface whose only Lane is a portable one built on
// the bit-sliced backend; it issues no CPU AES instructions, whether
// or not the CPU offers them. There is no chaining mode,
// padding, or authentication here — this is raw ECB block primitive
// surface, the same way crypto/cipher.Block is a primitive a caller
// wraps with its own mode of operation.
package ctaes

import (
	"github.com/go-ctaes/ctaes/bitslice"
	"github.com/go-ctaes/ctaes/hardware"
	"github.com/go-ctaes/ctaes/key"
	"github.com/go-ctaes/ctaes/reference"
)

// Key is a raw AES key of one of the three valid sizes (128, 192, or
// 256 bits). It is a re-export of key.Key so callers never need to
// import the key package directly.
type Key = key.Key

// KeyFromBytes validates buf's length (16, 24, or 32 bytes) and
// returns the Key it represents.
func KeyFromBytes(buf []byte) (Key, error) {
	return key.FromBytes(buf)
}

// BlockCipher is the common surface every backend satisfies:
// encrypt_blocks/decrypt_blocks process exactly one backend-specific
// batch taken from the front of buf, in place, and return the number
// of bytes consumed. Callers with more bytes than one batch call
// again, advancing by the returned count, until the buffer is
// exhausted.
type BlockCipher interface {
	EncryptBlocks(buf []byte) (int, error)
	DecryptBlocks(buf []byte) (int, error)
}

// ParallelBlockCipher refines BlockCipher with the backend's advertised
// parallelism: the number of 16-byte AES blocks one EncryptBlocks or
// DecryptBlocks call processes.
type ParallelBlockCipher interface {
	BlockCipher
	ParallelBlocks() int
}

var (
	_ ParallelBlockCipher = reference.Cipher{}
	_ ParallelBlockCipher = bitslice.Cipher[uint16]{}
	_ ParallelBlockCipher = bitslice.Cipher[uint32]{}
	_ ParallelBlockCipher = bitslice.Cipher[uint64]{}
	_ ParallelBlockCipher = hardware.Cipher{}
)

// Backend selects which implementation NewBlockCipher builds.
type Backend int

const (
	// BackendReference is the byte-oriented table-based implementation.
	// It is not constant-time and exists only as the correctness oracle
	// the other backends are checked against.
	BackendReference Backend = iota
	// BackendBitslice16 packs a single AES block into eight 16-bit
	// bit-planes.
	BackendBitslice16
	// BackendBitslice32 packs two AES blocks into eight 32-bit
	// bit-planes.
	BackendBitslice32
	// BackendBitslice64 packs four AES blocks into eight 64-bit
	// bit-planes.
	BackendBitslice64
	// BackendHardware selects the hardware backend surface. Today this
	// always builds the SoftLane-backed Interleave (see hardware.
	// Supported and hardware.NewCipher's doc comment); a real
	// assembly-backed Lane would slot in behind the same Backend value
	// without changing caller code.
	BackendHardware
)

// NewBlockCipher builds the named backend's BlockCipher from k. Picking
// the backend is a single, initialization-time branch on a value the
// caller supplies — never a runtime branch on secret data, keeping
// backend selection itself free of the timing leaks constant-time AES
// is meant to avoid.
func NewBlockCipher(backend Backend, k Key) (ParallelBlockCipher, error) {
	switch backend {
	case BackendReference:
		return reference.NewCipher(k), nil
	case BackendBitslice16:
		return bitslice.NewCipher[uint16](k), nil
	case BackendBitslice32:
		return bitslice.NewCipher[uint32](k), nil
	case BackendBitslice64:
		return bitslice.NewCipher[uint64](k), nil
	case BackendHardware:
		return hardware.NewCipher(k), nil
	default:
		return nil, errInvalidBackend(backend)
	}
}

// PreferredBackend picks BackendHardware when the running CPU
// advertises a usable AES instruction set, and BackendBitslice64
// otherwise (the widest, most block-parallel constant-time software
// backend). This check runs once, at the call site's discretion —
// never inside the hot encrypt/decrypt path.
func PreferredBackend() Backend {
	if hardware.Supported() {
		return BackendHardware
	}
	return BackendBitslice64
}
