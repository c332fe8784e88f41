// This file implements the single-word reciprocal: for a normalized word d
// it returns v = floor((B²-1)/d) - B using a table seed followed by a fixed
// number of Newton corrections, with no division instruction.

package nat

import "math/bits"

// invertTable32[i] = floor((2^24 - 2^14 + 2^9) / (2^9 + i)), indexed by the
// nine bits below the top bit of the divisor.
var invertTable32 = func() (t [512]uint32) {
	for i := range t {
		t[i] = uint32((1<<24 - 1<<14 + 1<<9) / (1<<9 + i))
	}
	return t
}()

// invertTable64[i] = floor((2^19 - 3·2^8) / (2^8 + i)), indexed by the eight
// bits below the top bit of the divisor.
var invertTable64 = func() (t [256]uint64) {
	for i := range t {
		t[i] = uint64((1<<19 - 3<<8) / (1<<8 + i))
	}
	return t
}()

// InvertLimb32 returns floor((2^64-1)/d) - 2^32 for d with its top bit set.
func InvertLimb32(d uint32) uint32 {
	need(d>>31 == 1, "nat.InvertLimb32", "divisor not normalized")
	a := invertTable32[d<<1>>23]
	b := a<<4 - uint32((uint64(a*a)*uint64(d>>11+1))>>32) - 1
	c := -(b * (d >> 1))
	if d&1 != 0 {
		c -= b - b>>1
	}
	e := b<<15 + uint32((uint64(b)*uint64(c))>>32)>>1
	return e - (uint32((uint64(e)*uint64(d)+uint64(d))>>32) + d)
}

// InvertLimb64 returns floor((2^128-1)/d) - 2^64 for d with its top bit set.
func InvertLimb64(d uint64) uint64 {
	need(d>>63 == 1, "nat.InvertLimb64", "divisor not normalized")
	a := d>>24 + 1
	b := invertTable64[d<<1>>56]
	c := b<<11 - (b*b*a>>40 + 1)
	e := (c*(1<<60-c*a))>>47 + c<<13
	f := -(e * (d >> 1))
	if d&1 != 0 {
		f -= e - e>>1
	}
	hi, _ := bits.Mul64(e, f)
	g := e<<31 + hi>>1
	hi, lo := bits.Mul64(g, d)
	_, carry := bits.Add64(lo, d, 0)
	return g - (hi + carry + d)
}
