// Package modmul multiplies residues modulo a fixed modulus using a
// reciprocal computed once per modulus. Moduli up to two words reduce with
// the preinverted two-by-one step or a three-word Barrett inverse; wider
// moduli fall back to a full product followed by division.
package modmul

import (
	apperrors "github.com/agbru/natcalc/internal/errors"
	"github.com/agbru/natcalc/internal/nat"
)

type kind uint8

const (
	kindOneWord kind = iota + 1
	// kindBase is the two-word modulus B itself: reduction keeps the low word.
	kindBase
	kindTwoWords
	kindWide
)

// Data is the per-modulus state produced by Precompute. The zero value is
// not usable. A Data is only valid with the modulus it was computed for.
type Data struct {
	kind  kind
	shift uint
	inv   [3]nat.Word
}

func need(ok bool, op, msg string) {
	if !ok {
		panic(apperrors.PreconditionError{Op: op, Message: msg})
	}
}

// Precompute returns the reduction state for the nonzero modulus m.
func Precompute(m nat.Nat) Data {
	m = m.Norm()
	need(len(m) > 0, "modmul.Precompute", "zero modulus")
	switch {
	case len(m) == 1:
		s := nlz(m[0])
		return Data{kind: kindOneWord, shift: s, inv: [3]nat.Word{nat.InvertLimb(m[0] << s)}}
	case len(m) == 2 && m[0] == 0 && m[1] == 1:
		return Data{kind: kindBase}
	case len(m) == 2:
		// inv = floor(B^4 / m), three words because m > B.
		q, _ := nat.DivMod(nat.Nat{0, 0, 0, 0, 1}, m)
		var d Data
		d.kind = kindTwoWords
		copy(d.inv[:], q)
		return d
	default:
		return Data{kind: kindWide}
	}
}

// Mul returns x·y mod m for x, y < m, given data = Precompute(m).
func Mul(x, y, m nat.Nat, data Data) nat.Nat {
	x, y, m = x.Norm(), y.Norm(), m.Norm()
	need(data.kind != 0, "modmul.Mul", "data not initialized by Precompute")
	need(x.Cmp(m) < 0 && y.Cmp(m) < 0, "modmul.Mul", "operand not below modulus")
	switch data.kind {
	case kindOneWord:
		return nat.FromWords([]nat.Word{mulOneWord(word(x), word(y), m[0], data.inv[0], data.shift)})
	case kindBase:
		return nat.FromWords([]nat.Word{word(x) * word(y)})
	case kindTwoWords:
		return mulTwoWords(x, y, m, data.inv)
	default:
		return MulNaive(x, y, m)
	}
}

// MulNaive returns x·y mod m by a full product and division.
func MulNaive(x, y, m nat.Nat) nat.Nat {
	need(!m.IsZero(), "modmul.MulNaive", "zero modulus")
	_, r := nat.DivMod(nat.Mul(x, y), m)
	return r
}

// Pow returns base^exp mod m by left-to-right square-and-multiply. base
// need not be reduced.
func Pow(base, exp, m nat.Nat) nat.Nat {
	m = m.Norm()
	need(len(m) > 0, "modmul.Pow", "zero modulus")
	if len(m) == 1 && m[0] == 1 {
		return nil
	}
	data := Precompute(m)
	_, b := nat.DivMod(base, m)
	result := nat.FromUint64(1)
	exp = exp.Norm()
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = Mul(result, result, m, data)
		if exp[i/nat.W]>>uint(i%nat.W)&1 != 0 {
			result = Mul(result, b, m, data)
		}
	}
	return result
}

func word(x nat.Nat) nat.Word {
	if len(x) == 0 {
		return 0
	}
	return x[0]
}

// mulOneWord reduces the double-word product x·y by the normalized m<<shift.
func mulOneWord(x, y, m, inv nat.Word, shift uint) nat.Word {
	hi, lo := mulWW(x, y)
	d := m << shift
	if shift != 0 {
		hi = hi<<shift | lo>>(nat.W-shift)
		lo <<= shift
	}
	_, r := nat.DivWordPreinv(hi, lo, d, inv)
	return r >> shift
}

// mulTwoWords is Barrett reduction with k = 2 words: the quotient estimate
// floor(floor(w/B)·inv / B^3) undershoots floor(w/m) by at most 2.
func mulTwoWords(x, y, m nat.Nat, inv [3]nat.Word) nat.Nat {
	var xs, ys [2]nat.Word
	copy(xs[:], x)
	copy(ys[:], y)
	var w [4]nat.Word
	nat.MulTo(w[:], xs[:], ys[:])

	var p [6]nat.Word
	nat.MulTo(p[:], w[1:4], inv[:])

	var qm [5]nat.Word
	nat.MulTo(qm[:], p[3:6], m[:2])

	var r [3]nat.Word
	nat.SubTo(r[:], w[:3], qm[:3])
	for r[2] != 0 || nat.CmpWords(r[:2], m[:2]) >= 0 {
		nat.SubInPlaceLeft(r[:], m[:2])
	}
	return nat.FromWords(r[:2])
}
