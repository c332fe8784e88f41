package primality

import (
	"math"
	"math/bits"

	"github.com/agbru/natcalc/internal/modmul"
)

// maxDiscriminants bounds the Selfridge search. Only perfect squares can
// exhaust it, and those are rejected before the search starts.
const maxDiscriminants = 100

// bpsw is the Baillie–PSW test for odd n ≥ bpswCutoff. Values ≡ 3, 7
// (mod 10) take the Fermat base-2 plus Fibonacci variant; the rest take the
// strong base-2 test plus the Lucas test.
func bpsw(n uint64) bool {
	if r := n % 10; r == 3 || r == 7 {
		return fermat(n, 2) && fibonacciProbablePrime(n)
	}
	return sprp(n, 2) && lucasProbablePrime(n)
}

// jacobi returns the Jacobi symbol (a/n) for odd n.
func jacobi(a, n uint64) int {
	a %= n
	result := 1
	for a != 0 {
		for a%2 == 0 {
			a /= 2
			if r := n % 8; r == 3 || r == 5 {
				result = -result
			}
		}
		a, n = n, a
		if a%4 == 3 && n%4 == 3 {
			result = -result
		}
		a %= n
	}
	if n == 1 {
		return result
	}
	return 0
}

// jacobiSigned returns (±d / n) for odd n, negative when neg is set.
func jacobiSigned(d uint64, neg bool, n uint64) int {
	j := jacobi(d, n)
	if neg && n%4 == 3 {
		j = -j
	}
	return j
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func isSquare(n uint64) bool {
	r := min(uint64(math.Sqrt(float64(n))), math.MaxUint32)
	for r*r > n {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= n {
		r++
	}
	return r*r == n
}

// selfridge returns the first D in 5, -7, 9, -11, ... with (D/n) = -1 as a
// magnitude and sign. ok is false when n is proved composite by a shared
// factor; exhausted is set when the search gave up.
func selfridge(n uint64) (d uint64, neg, ok, exhausted bool) {
	for i := range uint64(maxDiscriminants) {
		d = 5 + 2*i
		neg = i%2 == 1
		if g := gcd(d, n%d); g != 1 {
			if n != d {
				return 0, false, false, false
			}
			continue
		}
		if jacobiSigned(d, neg, n) == -1 {
			return d, neg, true, false
		}
	}
	return 0, false, true, true
}

// modInverse returns a⁻¹ mod n, or false when gcd(a, n) ≠ 1.
func modInverse(a, n uint64) (uint64, bool) {
	a %= n
	if a == 0 {
		return 0, false
	}
	// Extended Euclid on (n, a) tracking the coefficient of a with its sign.
	r0, r1 := n, a
	t0, t1 := uint64(0), uint64(1)
	neg0, neg1 := false, false
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		// t2 = t0 - q·t1 with signs.
		qt, qtNeg := q*t1, neg1
		var t2 uint64
		var neg2 bool
		switch {
		case neg0 != qtNeg:
			t2, neg2 = t0+qt, neg0
		case t0 >= qt:
			t2, neg2 = t0-qt, neg0
		default:
			t2, neg2 = qt-t0, !neg0
		}
		t0, t1, neg0, neg1 = t1, t2, neg1, neg2
	}
	if r0 != 1 {
		return 0, false
	}
	if neg0 {
		return n - t0%n, true
	}
	return t0 % n, true
}

func subMod(a, b, n uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a - b + n
}

// mulModN multiplies modulo n through whichever reduction n's width allows.
type mulModN func(a, b uint64) uint64

func mulModFor(n uint64) mulModN {
	if bits.Len64(n) <= floatBits {
		inv := 1 / float64(n)
		return func(a, b uint64) uint64 { return mulModFloat(a, b, n, inv) }
	}
	inv := modmul.Precompute64(n)
	return func(a, b uint64) uint64 { return modmul.Mul64(a, b, n, inv) }
}

// lucasChain returns (V_m, V_{m+1}) of the sequence V_0 = 2, V_1 = y0 with
// V_{2k} = V_k² - 2 and V_{2k+1} = V_k·V_{k+1} - c, for m ≥ 1.
func lucasChain(m, y0, c, n uint64, mul mulModN) (x, y uint64) {
	x, y = 2, y0
	for power := uint64(1) << (bits.Len64(m) - 1); power != 0; power >>= 1 {
		xy := subMod(mul(x, y), c, n)
		if m&power != 0 {
			x, y = xy, subMod(mul(y, y), 2, n)
		} else {
			x, y = subMod(mul(x, x), 2, n), xy
		}
	}
	return x, y
}

// lucasProbablePrime is the Lucas test with Selfridge parameters P = 1,
// Q = (1-D)/4, normalized to the single parameter a = Q⁻¹ - 2. n is odd and
// greater than 52.
func lucasProbablePrime(n uint64) bool {
	if isSquare(n) {
		return false
	}
	d, neg, ok, exhausted := selfridge(n)
	if !ok {
		return false
	}
	if exhausted {
		return true
	}
	// Q = (1 - D) / 4 mod n.
	var q uint64
	if neg {
		q = (1 + d) / 4
	} else {
		q = n - (d-1)/4%n
	}
	qInv, invertible := modInverse(q, n)
	if !invertible {
		return false
	}
	a := subMod(qInv, 2, n)
	mul := mulModFor(n)
	x, y := lucasChain(n+1, a, a, n, mul)
	return mul(a, x) == mul(2, y)
}

// fibonacciProbablePrime is the Fibonacci probable prime test: the V
// sequence with V_1 = -3 and Q = 1, evaluated at m = (n - (5/n)) / 2.
func fibonacciProbablePrime(n uint64) bool {
	if n <= 3 {
		return n >= 2
	}
	var m uint64
	switch jacobi(5, n) {
	case 1:
		m = (n - 1) / 2
	case -1:
		m = n/2 + 1
	default:
		m = n / 2
	}
	mul := mulModFor(n)
	x, y := lucasChain(m, n-3, n-3, n, mul)
	return mul(n-3, x) == mul(2, y)
}
