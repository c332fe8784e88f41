package nat

import (
	"slices"

	apperrors "github.com/agbru/natcalc/internal/errors"
)

// Nat is an unsigned integer stored as little-endian words: x[0] is the
// least significant word. A canonical Nat has no most-significant zero word;
// zero is the empty Nat. Functions returning a Nat never alias their inputs.
type Nat []Word

// need panics with a PreconditionError when ok is false.
func need(ok bool, op, msg string) {
	if !ok {
		panic(apperrors.PreconditionError{Op: op, Message: msg})
	}
}

// FromWords returns the canonical Nat whose words, least significant first,
// are ws. The input is copied.
func FromWords(ws []Word) Nat {
	z := make(Nat, len(ws))
	copy(z, ws)
	return z.Norm()
}

// FromUint64 returns the canonical Nat equal to v.
func FromUint64(v uint64) Nat {
	if v == 0 {
		return nil
	}
	if W == 64 {
		return Nat{Word(v)}
	}
	z := Nat{Word(v), Word(v >> (W % 64))}
	return z.Norm()
}

// Words returns a copy of the words of x, least significant first.
func (x Nat) Words() []Word {
	if len(x) == 0 {
		return nil
	}
	return slices.Clone([]Word(x))
}

// Norm returns x with its most-significant zero words removed. The result
// shares storage with x.
func (x Nat) Norm() Nat {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

// Clone returns a canonical copy of x.
func (x Nat) Clone() Nat {
	return FromWords(x)
}

// IsZero reports whether x is zero.
func (x Nat) IsZero() bool {
	return len(x.Norm()) == 0
}

// BitLen returns the number of significant bits of x.
func (x Nat) BitLen() int {
	x = x.Norm()
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*W + wordLen(x[len(x)-1])
}

// Uint64 returns x as a uint64 and whether it fits.
func (x Nat) Uint64() (uint64, bool) {
	x = x.Norm()
	if len(x)*W > 64 {
		return 0, false
	}
	var v uint64
	for i := len(x) - 1; i >= 0; i-- {
		v = v<<(W%64) | uint64(x[i])
	}
	return v, true
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Nat) Cmp(y Nat) int {
	x, y = x.Norm(), y.Norm()
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	return cmpVV(x, y)
}

// CmpWords compares two equal-length word vectors.
func CmpWords(x, y []Word) int {
	need(len(x) == len(y), "nat.CmpWords", "operand lengths differ")
	return cmpVV(x, y)
}

// ShlTo sets z[:len(x)] = x << s for 0 <= s < W and returns the bits shifted
// out of the top word. z may be x.
func ShlTo(z, x []Word, s uint) Word {
	need(s < W, "nat.ShlTo", "shift not smaller than word width")
	need(len(z) >= len(x), "nat.ShlTo", "output shorter than input")
	return shlVU(z[:len(x)], x, s)
}

// ShrTo sets z[:len(x)] = x >> s for 0 <= s < W and returns the bits shifted
// out of the bottom word, left-aligned. z may be x.
func ShrTo(z, x []Word, s uint) Word {
	need(s < W, "nat.ShrTo", "shift not smaller than word width")
	need(len(z) >= len(x), "nat.ShrTo", "output shorter than input")
	return shrVU(z[:len(x)], x, s)
}
