package nat

import "math/big"

// Conversions to and from math/big go through big-endian bytes so they work
// for either word width regardless of the platform's big.Word.

const wordBytes = W / 8

// ToBig returns x as a non-negative big.Int.
func ToBig(x Nat) *big.Int {
	x = x.Norm()
	buf := make([]byte, len(x)*wordBytes)
	for i, w := range x {
		for b := range wordBytes {
			buf[len(buf)-1-i*wordBytes-b] = byte(w >> (8 * b))
		}
	}
	return new(big.Int).SetBytes(buf)
}

// FromBig returns the canonical Nat equal to v. It panics if v is negative.
func FromBig(v *big.Int) Nat {
	need(v.Sign() >= 0, "nat.FromBig", "negative value")
	buf := v.Bytes()
	z := make(Nat, (len(buf)+wordBytes-1)/wordBytes)
	for i := range buf {
		z[i/wordBytes] |= Word(buf[len(buf)-1-i]) << (8 * (i % wordBytes))
	}
	return z.Norm()
}

// String returns the decimal representation of x.
func (x Nat) String() string {
	return ToBig(x).String()
}
