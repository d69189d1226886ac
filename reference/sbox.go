package reference

import "github.com/go-ctaes/ctaes/gf256"

// sbox and invSBox are computed once at package init, the way the
// teacher's InitSBOX/InitInvSBOX build them at startup rather than
// shipping a 256-byte literal.
var sbox, invSBox = gf256.SBox(), gf256.InvSBox()
