package key

import (
	"errors"
	"testing"
)

func TestFromBytesSizes(t *testing.T) {
	cases := []struct {
		n      int
		rounds int
		words  int
	}{
		{16, 10, 4},
		{24, 12, 6},
		{32, 14, 8},
	}
	for _, c := range cases {
		k, err := FromBytes(make([]byte, c.n))
		if err != nil {
			t.Fatalf("%d bytes: unexpected error %v", c.n, err)
		}
		if got := k.Size().Rounds(); got != c.rounds {
			t.Errorf("%d bytes: Rounds() = %d, want %d", c.n, got, c.rounds)
		}
		if got := k.Size().Words(); got != c.words {
			t.Errorf("%d bytes: Words() = %d, want %d", c.n, got, c.words)
		}
		if got := k.Size().NumRoundKeys(); got != c.rounds+1 {
			t.Errorf("%d bytes: NumRoundKeys() = %d, want %d", c.n, got, c.rounds+1)
		}
	}
}

func TestFromBytesRejectsInvalidSize(t *testing.T) {
	for _, n := range []int{0, 1, 15, 17, 23, 25, 31, 33, 64} {
		if _, err := FromBytes(make([]byte, n)); !errors.Is(err, ErrInvalidKeySize) {
			t.Errorf("%d bytes: expected ErrInvalidKeySize, got %v", n, err)
		}
	}
}

func TestRoundConstants(t *testing.T) {
	want := [10]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}
	if RoundConstants != want {
		t.Fatalf("RoundConstants = %v, want %v", RoundConstants, want)
	}
}

func TestScheduleRoundTrip(t *testing.T) {
	keys := []int{1, 2, 3, 4}
	s := NewSchedule(keys)
	if s.Len() != len(keys) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(keys))
	}
	for i, want := range keys {
		if got := s.RoundKey(i); got != want {
			t.Errorf("RoundKey(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestBytesRoundTrip(t *testing.T) {
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = byte(i)
	}
	k, err := FromBytes(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := k.Bytes(); string(got) != string(raw) {
		t.Fatalf("Bytes() round-trip mismatch: got %v, want %v", got, raw)
	}
}
