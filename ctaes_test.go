package ctaes

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex literal %q: %v", s, err)
	}
	return b
}

var backends = []struct {
	name    string
	backend Backend
}{
	{"reference", BackendReference},
	{"bitslice16", BackendBitslice16},
	{"bitslice32", BackendBitslice32},
	{"bitslice64", BackendBitslice64},
	{"hardware", BackendHardware},
}

func TestNewBlockCipherKnownAnswer(t *testing.T) {
	k, err := KeyFromBytes(mustHex(t, "000102030405060708090a0b0c0d0e0f"))
	if err != nil {
		t.Fatalf("KeyFromBytes: %v", err)
	}
	plaintext := mustHex(t, "00112233445566778899aabbccddeeff")
	ciphertext := mustHex(t, "69c4e0d86a7b0430d8cdb78070b4c55a")

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			cipher, err := NewBlockCipher(b.backend, k)
			if err != nil {
				t.Fatalf("NewBlockCipher: %v", err)
			}

			batch := cipher.ParallelBlocks() * 16
			buf := make([]byte, batch)
			for i := 0; i < batch; i += 16 {
				copy(buf[i:i+16], plaintext)
			}

			n, err := cipher.EncryptBlocks(buf)
			if err != nil {
				t.Fatalf("EncryptBlocks: %v", err)
			}
			if n != batch {
				t.Fatalf("EncryptBlocks consumed %d bytes, want %d", n, batch)
			}
			if !bytes.Equal(buf[:16], ciphertext) {
				t.Fatalf("ciphertext mismatch: got %x, want %x", buf[:16], ciphertext)
			}

			if _, err := cipher.DecryptBlocks(buf); err != nil {
				t.Fatalf("DecryptBlocks: %v", err)
			}
			if !bytes.Equal(buf[:16], plaintext) {
				t.Fatalf("round trip mismatch: got %x, want %x", buf[:16], plaintext)
			}
		})
	}
}

func TestNewBlockCipherRejectsUnknownBackend(t *testing.T) {
	k, err := KeyFromBytes(make([]byte, 16))
	if err != nil {
		t.Fatalf("KeyFromBytes: %v", err)
	}
	if _, err := NewBlockCipher(Backend(99), k); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestPreferredBackendDoesNotPanic(t *testing.T) {
	k, err := KeyFromBytes(make([]byte, 16))
	if err != nil {
		t.Fatalf("KeyFromBytes: %v", err)
	}
	if _, err := NewBlockCipher(PreferredBackend(), k); err != nil {
		t.Fatalf("NewBlockCipher(PreferredBackend()): %v", err)
	}
}
