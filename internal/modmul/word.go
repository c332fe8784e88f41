package modmul

import (
	"math/bits"

	"github.com/agbru/natcalc/internal/nat"
)

// Single-word moduli. The reciprocal is InvertLimb of the modulus shifted
// up to its top bit; the shift itself is recomputed on every call from the
// modulus, which costs one instruction.

// PrecomputeWord returns the reciprocal MulWord needs for the nonzero m.
func PrecomputeWord(m nat.Word) nat.Word {
	need(m != 0, "modmul.PrecomputeWord", "zero modulus")
	return nat.InvertLimb(m << nlz(m))
}

// MulWord returns x·y mod m for x, y < m, given inv = PrecomputeWord(m).
func MulWord(x, y, m, inv nat.Word) nat.Word {
	if nat.W == 64 {
		return nat.Word(Mul64(uint64(x), uint64(y), uint64(m), uint64(inv)))
	}
	return nat.Word(Mul32(uint32(x), uint32(y), uint32(m), uint32(inv)))
}

// Precompute64 returns the reciprocal Mul64 needs for the nonzero m.
func Precompute64(m uint64) uint64 {
	need(m != 0, "modmul.Precompute64", "zero modulus")
	return nat.InvertLimb64(m << bits.LeadingZeros64(m))
}

// Mul64 returns x·y mod m for x, y < m, given inv = Precompute64(m).
func Mul64(x, y, m, inv uint64) uint64 {
	s := uint(bits.LeadingZeros64(m))
	hi, lo := bits.Mul64(x, y)
	if s != 0 {
		hi = hi<<s | lo>>(64-s)
		lo <<= s
	}
	return rem64(hi, lo, m<<s, inv) >> s
}

// rem64 is the two-by-one remainder step for a normalized d with
// dinv = InvertLimb64(d), requiring nh < d.
func rem64(nh, nl, d, dinv uint64) uint64 {
	qh, ql := bits.Mul64(nh, dinv)
	var c uint64
	ql, c = bits.Add64(ql, nl, 0)
	qh += nh + 1 + c
	r := nl - qh*d
	if r > ql {
		r += d
	}
	if r >= d {
		r -= d
	}
	return r
}

// Precompute32 returns the reciprocal Mul32 needs for the nonzero m.
func Precompute32(m uint32) uint32 {
	need(m != 0, "modmul.Precompute32", "zero modulus")
	return nat.InvertLimb32(m << bits.LeadingZeros32(m))
}

// Mul32 returns x·y mod m for x, y < m, given inv = Precompute32(m).
func Mul32(x, y, m, inv uint32) uint32 {
	s := uint(bits.LeadingZeros32(m))
	d := m << s
	p := uint64(x) * uint64(y) << s
	nh, nl := uint32(p>>32), uint32(p)

	// (nh·inv + nh:nl) mod 2^64 gives the quotient estimate in its top word.
	q := uint64(nh)*uint64(inv) + p
	qh, ql := uint32(q>>32)+1, uint32(q)
	r := nl - qh*d
	if r > ql {
		r += d
	}
	if r >= d {
		r -= d
	}
	return r >> s
}

func nlz(x nat.Word) uint {
	return uint(bits.LeadingZeros64(uint64(x))) - (64 - nat.W)
}

func mulWW(x, y nat.Word) (hi, lo nat.Word) {
	if nat.W == 64 {
		h, l := bits.Mul64(uint64(x), uint64(y))
		return nat.Word(h), nat.Word(l)
	}
	p := uint64(x) * uint64(y)
	return nat.Word(p >> (nat.W % 64)), nat.Word(p)
}
