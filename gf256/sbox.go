package gf256

// SBox and InvSBox compute the Rijndael S-box and its inverse: the
// multiplicative inverse in GF(2^8) (0 maps to itself) run through the
// affine transform b ^ rotl(b,1) ^ rotl(b,2) ^ rotl(b,3) ^ rotl(b,4) ^
// 0x63. The byte-oriented reference backend uses the table directly;
// the bit-sliced backend computes the same permutation as a boolean
// circuit instead, and uses this table only as the test oracle it
// checks that circuit against.
func SBox() [256]byte {
	sbox, _ := sboxTables()
	return sbox
}

// InvSBox returns the inverse S-box, satisfying InvSBox()[SBox()[x]] == x.
func InvSBox() [256]byte {
	_, inv := sboxTables()
	return inv
}

func rotl8(b byte, n uint) byte {
	return (b << n) | (b >> (8 - n))
}

func affineTransform(b byte) byte {
	return b ^ rotl8(b, 1) ^ rotl8(b, 2) ^ rotl8(b, 3) ^ rotl8(b, 4) ^ 0x63
}

func sboxTables() (sbox [256]byte, invSBox [256]byte) {
	inv := InverseTable()

	for x := 0; x < 256; x++ {
		var in byte
		if x != 0 {
			in = byte(inv[x])
		}
		sbox[x] = affineTransform(in)
	}

	for x := 0; x < 256; x++ {
		invSBox[sbox[x]] = byte(x)
	}

	return sbox, invSBox
}
