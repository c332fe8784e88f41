// This file implements the multi-word approximate inverse used by Barrett
// division. For an n-word normalized D the inverse is the n-word I with
// B^n + I = floor((B^2n - 1)/D). Small inverses are computed exactly by one
// division; large ones by Newton doubling, which lands within a few units of
// the exact value.

package nat

import "slices"

// ApproxInverse is an inverse of an n-word normalized divisor. Words holds
// exactly n words and is not canonicalized: I may have zero top words. When
// Exact is false, Words may differ from the exact inverse by a few units in
// the last place and Correct must be applied before relying on it.
type ApproxInverse struct {
	Words []Word
	Exact bool
}

// InvertScratchLen returns the number of scratch words InvertBasecase and
// InvertNewton need for an n-word divisor.
func InvertScratchLen(n int) int {
	return 10*n + 20
}

// Invert returns the inverse of the normalized d using the default
// thresholds.
func Invert(d Nat) ApproxInverse {
	return DefaultThresholds().Invert(d)
}

// Invert returns the inverse of the normalized d, computed exactly below
// th.InvNewton words and by Newton doubling above.
func (th Thresholds) Invert(d Nat) ApproxInverse {
	d = d.Norm()
	need(len(d) > 0, "nat.Invert", "zero divisor")
	need(d[len(d)-1]>>(W-1) == 1, "nat.Invert", "divisor not normalized")
	n := len(d)
	is := make([]Word, n)
	scratch := getWords(InvertScratchLen(n))
	defer putWords(scratch)
	exact := th.invertApprox(is, d, scratch)
	return ApproxInverse{Words: is, Exact: exact}
}

// Correct returns the exact inverse of d, which must be the divisor a was
// computed for.
func (a ApproxInverse) Correct(d Nat) ApproxInverse {
	if a.Exact {
		return a
	}
	d = d.Norm()
	need(len(d) == len(a.Words), "nat.ApproxInverse.Correct", "divisor length does not match inverse")
	need(d[len(d)-1]>>(W-1) == 1, "nat.ApproxInverse.Correct", "divisor not normalized")
	is := slices.Clone(a.Words)
	scratch := getWords(3*len(d) + 2)
	defer putWords(scratch)
	DefaultThresholds().exactify(is, d, scratch)
	return ApproxInverse{Words: is, Exact: true}
}

func checkInvert(op string, is, ds, scratch []Word) {
	need(len(ds) > 0, op, "empty divisor")
	need(ds[len(ds)-1]>>(W-1) == 1, op, "divisor not normalized")
	need(len(is) >= len(ds), op, "output shorter than divisor")
	need(len(scratch) >= InvertScratchLen(len(ds)), op, "scratch too short")
	need(!alias(is, ds) && !alias(is, scratch) && !alias(ds, scratch), op, "buffers overlap")
}

// InvertBasecase writes the exact inverse of the normalized ds to
// is[:len(ds)].
func InvertBasecase(is, ds, scratch []Word) {
	checkInvert("nat.InvertBasecase", is, ds, scratch)
	DefaultThresholds().invertBasecase(is[:len(ds)], ds, scratch)
}

// InvertNewton writes an approximate inverse of the normalized ds to
// is[:len(ds)] by Newton doubling. The result is within a few units of the
// exact inverse; it is not corrected.
func (th Thresholds) InvertNewton(is, ds, scratch []Word) {
	checkInvert("nat.InvertNewton", is, ds, scratch)
	if len(ds) == 1 {
		is[0] = InvertLimb(ds[0])
		return
	}
	th.invertNewton(is[:len(ds)], ds, scratch)
}

func (th Thresholds) invNewton() int {
	return max(th.InvNewton, 2)
}

// invertApprox writes an inverse of ds to is and reports whether it is exact.
func (th Thresholds) invertApprox(is, ds, scratch []Word) bool {
	if len(ds) < th.invNewton() {
		th.invertBasecase(is, ds, scratch)
		return true
	}
	th.invertNewton(is, ds, scratch)
	return false
}

// invertExact writes the exact inverse of ds to is.
func (th Thresholds) invertExact(is, ds, scratch []Word) {
	if !th.invertApprox(is, ds, scratch) {
		th.exactify(is, ds, scratch)
	}
}

// invertBasecase divides B^2n - 1 - D·B^n by D. The dividend's top half is
// ^D < D, so the quotient has exactly n words.
func (th Thresholds) invertBasecase(is, ds, scratch []Word) {
	n := len(ds)
	if n == 1 {
		is[0] = InvertLimb(ds[0])
		return
	}
	ns := scratch[:2*n]
	for i := range n {
		ns[i] = _M
		ns[n+i] = ^ds[i]
	}
	inv := Invert2(ds[n-1], ds[n-2])
	th.divDC(is[:n], ns, ds, inv, scratch[2*n:3*n])
}

// invertNewton computes X = B^k + I from the exact inverse X_h of the top
// h = ceil(k/2) words of D:
//
//	e = B^(k+h) - D·X_h
//	X = X_h·B^(k-h) + X_h·e / B^2h
//
// |e| < 2·B^k, and X lies within ten units of the exact inverse.
func (th Thresholds) invertNewton(is, ds, scratch []Word) {
	k := len(ds)
	h := (k + 1) / 2

	xh := scratch[:h+1]
	rest := scratch[h+1:]
	th.invertExact(xh[:h], ds[k-h:], rest)
	xh[h] = 1

	q := rest[:k+h+1]
	th.mulTo(q, ds, xh)
	neg := q[k+h] != 0
	if neg {
		q[k+h]--
	} else {
		for i := range q[:k+h] {
			q[i] = ^q[i]
		}
		addVW(q[:k+h], q[:k+h], 1)
	}
	e := q[:k+1]

	p := rest[k+h+1 : 2*k+2*h+3]
	th.mulTo(p, xh, e)
	delta := p[2*h:]

	x := rest[2*k+2*h+3 : 3*k+2*h+5]
	clear(x)
	copy(x[k-h:], xh)
	under := false
	if neg {
		under = SubInPlaceLeft(x, delta)
	} else {
		AddInPlaceLeft(x, delta)
	}

	switch {
	case under || (x[k+1] == 0 && x[k] == 0):
		clear(is)
	case x[k+1] != 0 || x[k] > 1:
		for i := range is {
			is[i] = _M
		}
	default:
		copy(is, x[:k])
	}
}

// exactify moves is to the exact inverse of ds by stepping X = B^k + I until
// D·X <= B^2k - 1 < D·(X+1). scratch needs 3k+2 words.
func (th Thresholds) exactify(is, ds, scratch []Word) {
	k := len(ds)
	x := scratch[:k+1]
	copy(x, is)
	x[k] = 1
	m := scratch[k+1 : 3*k+2]
	th.mulTo(m, ds, x)
	for m[2*k] != 0 {
		subVW(x, x, 1)
		SubInPlaceLeft(m, ds)
	}
	for complementAtLeast(m[:2*k], ds) {
		addVW(x, x, 1)
		AddInPlaceLeft(m, ds)
	}
	copy(is, x[:k])
}

// complementAtLeast reports whether B^len(m) - 1 - m >= d, where
// len(m) == 2·len(d).
func complementAtLeast(m, d []Word) bool {
	k := len(d)
	for _, w := range m[k:] {
		if w != _M {
			return true
		}
	}
	for i := k - 1; i >= 0; i-- {
		if c := ^m[i]; c != d[i] {
			return c > d[i]
		}
	}
	return true
}
