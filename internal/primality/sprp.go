package primality

import (
	"math/bits"

	"github.com/agbru/natcalc/internal/modmul"
)

// floatBits is the widest modulus for which the float64 quotient estimate
// in mulModFloat stays within the correction range.
const floatBits = 53

func oddPart(x uint64) uint64 {
	return x >> uint(bits.TrailingZeros64(x))
}

// ─────────────────────────────────────────────────────────────────────────────
// Float-accelerated arithmetic (moduli of at most floatBits bits)
// ─────────────────────────────────────────────────────────────────────────────

// mulModFloat returns a·b mod n for a, b < n < 2^53 given inv = 1/n. The
// quotient comes from a float64 product and the remainder is recovered in
// wrapping integer arithmetic.
func mulModFloat(a, b, n uint64, inv float64) uint64 {
	q := uint64(float64(a) * float64(b) * inv)
	r := a*b - q*n
	if int64(r) < 0 {
		r += n
		if int64(r) < 0 {
			r += n
		}
		return r
	}
	if r >= n {
		r -= n
	}
	return r
}

func powModFloat(a, e, n uint64, inv float64) uint64 {
	if n == 1 {
		return 0
	}
	x, y := uint64(1), a
	for e != 0 {
		if e&1 != 0 {
			x = mulModFloat(x, y, n, inv)
		}
		e >>= 1
		if e != 0 {
			y = mulModFloat(y, y, n, inv)
		}
	}
	return x
}

// sprpFloat is the strong probable prime test to base a for odd n with
// n-1 = d·2^s, d odd. Bases at or above n are reduced first.
func sprpFloat(n uint64, inv float64, a, d uint64) bool {
	a %= n
	nm1 := n - 1
	if a <= 1 || a == nm1 {
		return true
	}
	y := powModFloat(a, d, n, inv)
	if y == 1 {
		return true
	}
	for t := d << 1; t != nm1 && y != nm1; t <<= 1 {
		y = mulModFloat(y, y, n, inv)
	}
	return y == nm1
}

// ─────────────────────────────────────────────────────────────────────────────
// Preinverted integer arithmetic
// ─────────────────────────────────────────────────────────────────────────────

func powMod64(a, e, n, inv uint64) uint64 {
	if n == 1 {
		return 0
	}
	a %= n
	x := uint64(1)
	for e != 0 {
		if e&1 != 0 {
			x = modmul.Mul64(x, a, n, inv)
		}
		e >>= 1
		if e != 0 {
			a = modmul.Mul64(a, a, n, inv)
		}
	}
	return x
}

func sprp64(n, inv, a, d uint64) bool {
	a %= n
	nm1 := n - 1
	if a <= 1 || a == nm1 {
		return true
	}
	y := powMod64(a, d, n, inv)
	if y == 1 {
		return true
	}
	for t := d << 1; t != nm1 && y != nm1; t <<= 1 {
		y = modmul.Mul64(y, y, n, inv)
	}
	return y == nm1
}

func precompute32(n uint32) uint32 {
	return modmul.Precompute32(n)
}

func powMod32(a, e, n, inv uint32) uint32 {
	if n == 1 {
		return 0
	}
	a %= n
	x := uint32(1)
	for e != 0 {
		if e&1 != 0 {
			x = modmul.Mul32(x, a, n, inv)
		}
		e >>= 1
		if e != 0 {
			a = modmul.Mul32(a, a, n, inv)
		}
	}
	return x
}

func sprp32(n, inv, a, d uint32) bool {
	a %= n
	nm1 := n - 1
	if a <= 1 || a == nm1 {
		return true
	}
	y := powMod32(a, d, n, inv)
	if y == 1 {
		return true
	}
	for t := d << 1; t != nm1 && y != nm1; t <<= 1 {
		y = modmul.Mul32(y, y, n, inv)
	}
	return y == nm1
}

// sprp is the base-a strong probable prime test for odd n > 2, choosing the
// float path when n is narrow enough.
func sprp(n, a uint64) bool {
	d := oddPart(n - 1)
	if bits.Len64(n) <= floatBits {
		return sprpFloat(n, 1/float64(n), a, d)
	}
	return sprp64(n, modmul.Precompute64(n), a, d)
}

// fermat reports whether a^(n-1) ≡ 1 (mod n).
func fermat(n, a uint64) bool {
	if bits.Len64(n) <= floatBits {
		return powModFloat(a%n, n-1, n, 1/float64(n)) == 1
	}
	return powMod64(a, n-1, n, modmul.Precompute64(n)) == 1
}
