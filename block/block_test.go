package block

import "testing"

func TestIdxMatchesRowPlusFourCol(t *testing.T) {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			want := row + 4*col
			if got := idx(row, col); got != want {
				t.Fatalf("idx(%d,%d) = %d, want %d", row, col, got, want)
			}
		}
	}
}

func TestFromBytesRejectsWrongLength(t *testing.T) {
	if _, err := FromBytes(make([]byte, 15)); err == nil {
		t.Fatal("expected error for 15-byte input")
	}
	if _, err := FromBytes(make([]byte, 17)); err == nil {
		t.Fatal("expected error for 17-byte input")
	}
}

func TestTransposeIsInvolution(t *testing.T) {
	var b Block
	for i := range b {
		b[i] = byte(i * 17)
	}
	got := b.Transpose().Transpose()
	if got != b {
		t.Fatalf("transpose twice must be identity: got %v, want %v", got, b)
	}
}

func TestTransposeSwapsRowCol(t *testing.T) {
	var b Block
	b.Set(1, 2, 0xAB)
	tr := b.Transpose()
	if tr.At(2, 1) != 0xAB {
		t.Fatalf("transpose(row=1,col=2) should land at (2,1), got %02x", tr.At(2, 1))
	}
}

func TestXORSelfIsZero(t *testing.T) {
	var b Block
	for i := range b {
		b[i] = byte(i + 1)
	}
	got := b.XOR(b)
	var zero Block
	if got != zero {
		t.Fatalf("b XOR b must be zero, got %v", got)
	}
}
