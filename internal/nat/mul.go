// This file implements multiplication: a quadratic basecase and Karatsuba
// splitting above Thresholds.Karatsuba words. Division and the Newton inverse
// depend on it for their product terms.

package nat

// Mul returns x * y using the default thresholds.
func Mul(x, y Nat) Nat {
	return DefaultThresholds().Mul(x, y)
}

// Mul returns x * y.
func (th Thresholds) Mul(x, y Nat) Nat {
	x, y = x.Norm(), y.Norm()
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	z := make(Nat, len(x)+len(y))
	th.mulTo(z, x, y)
	return z.Norm()
}

// MulTo writes x * y into z[:len(x)+len(y)] using the default thresholds.
// z must not alias x or y.
func MulTo(z, x, y []Word) {
	DefaultThresholds().MulTo(z, x, y)
}

// MulTo writes x * y into z[:len(x)+len(y)]. z must not alias x or y.
func (th Thresholds) MulTo(z, x, y []Word) {
	need(len(z) >= len(x)+len(y), "nat.MulTo", "output shorter than len(x)+len(y)")
	need(!alias(z, x) && !alias(z, y), "nat.MulTo", "output aliases an operand")
	th.mulTo(z, x, y)
}

// mulTo is MulTo without contract checks. Every word of z[:len(x)+len(y)] is
// written.
func (th Thresholds) mulTo(z, x, y []Word) {
	if len(x) < len(y) {
		x, y = y, x
	}
	n, m := len(x), len(y)
	z = z[:n+m]
	switch {
	case m == 0:
		clear(z)
	case m < th.karatsuba():
		mulBasecase(z, x, y)
	case n > 2*m:
		th.mulUnbalanced(z, x, y)
	default:
		th.karatsubaMul(z, x, y)
	}
}

// mulBasecase is schoolbook multiplication for len(x) >= len(y) >= 1.
func mulBasecase(z, x, y []Word) {
	n := len(x)
	z[n] = mulAddVWW(z[:n], x, y[0], 0)
	for j := 1; j < len(y); j++ {
		z[n+j] = addMulVVW(z[j:j+n], x, y[j])
	}
}

// mulUnbalanced multiplies x by a much shorter y by slicing x into chunks of
// len(y) words and accumulating the partial products.
func (th Thresholds) mulUnbalanced(z, x, y []Word) {
	m := len(y)
	clear(z)
	part := make([]Word, 2*m)
	for i := 0; i < len(x); i += m {
		end := min(i+m, len(x))
		p := part[:end-i+m]
		th.mulTo(p, x[i:end], y)
		// x[:end]*y fits in end+m words, so no carry leaves the window.
		addVV(z[i:i+len(p)], z[i:i+len(p)], p)
	}
}

// karatsubaMul computes x*y for len(y) <= len(x) <= 2*len(y) with one level
// of Karatsuba splitting:
//
//	x*y = z0 + (z1 - z0 - z2)·B^k + z2·B^2k
//	z0 = x0*y0, z2 = x1*y1, z1 = (x0+x1)*(y0+y1)
func (th Thresholds) karatsubaMul(z, x, y []Word) {
	n, m := len(x), len(y)
	k := (n + 1) / 2
	x0, x1 := x[:k], x[k:]
	y0, y1 := y[:k], y[k:] // m >= k because n <= 2m

	th.mulTo(z[:2*k], x0, y0)
	th.mulTo(z[2*k:], x1, y1)

	sx := make([]Word, k+1)
	if AddTo(sx[:k], x0, x1) {
		sx[k] = 1
	}
	sy := make([]Word, k+1)
	if AddTo(sy[:len(y0)], y0, y1) {
		sy[len(y0)] = 1
	}

	mid := make([]Word, 2*k+2)
	th.mulTo(mid, sx, sy)
	subVW(mid[2*k:], mid[2*k:], subVV(mid[:2*k], mid[:2*k], z[:2*k]))
	hi := z[2*k : n+m]
	subVW(mid[len(hi):], mid[len(hi):], subVV(mid[:len(hi)], mid[:len(hi)], hi))

	// mid = x0*y1 + x1*y0 < B^(n+m-k), so its upper words are zero.
	mid = mid[:min(len(mid), n+m-k)]
	AddInPlaceLeft(z[k:n+m], mid)
}

func (th Thresholds) karatsuba() int {
	return max(th.Karatsuba, 4)
}
