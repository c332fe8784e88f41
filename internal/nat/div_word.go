// This file implements division by one and two words: the two-by-one step
// driven by InvertLimb, division of a vector by a single word, the
// three-by-two step with its two-word inverse, and the two-word divisor path.

package nat

// DivWordPreinv divides the double word nh:nl by the normalized d given its
// reciprocal dinv = InvertLimb(d). It requires nh < d and returns the
// quotient and remainder.
func DivWordPreinv(nh, nl, d, dinv Word) (q, r Word) {
	qh, ql := mulWW(nh, dinv)
	var c Word
	ql, c = addWW(ql, nl, 0)
	qh, _ = addWW(qh, nh+1, c)
	r = nl - qh*d
	if r > ql {
		qh--
		r += d
	}
	if r >= d {
		qh++
		r -= d
	}
	return qh, r
}

// DivRemWord sets q[:len(u)] = u / d and returns u mod d. The divisor need
// not be normalized; the dividend is shifted on the fly. q may be u. It
// panics if d is zero or q is shorter than u.
func DivRemWord(q, u []Word, d Word) Word {
	need(d != 0, "nat.DivRemWord", "division by zero")
	need(len(q) >= len(u), "nat.DivRemWord", "quotient buffer shorter than dividend")
	if len(u) == 0 {
		return 0
	}
	s := nlz(d)
	d <<= s
	dinv := InvertLimb(d)
	n := len(u)
	if s == 0 {
		var r Word
		for i := n - 1; i >= 0; i-- {
			q[i], r = DivWordPreinv(r, u[i], d, dinv)
		}
		return r
	}
	// Words are consumed high to low and u[i-1] is read before q[i-1] is
	// written, so q may be u.
	sr := W - s
	r := u[n-1] >> sr
	for i := n - 1; i > 0; i-- {
		q[i], r = DivWordPreinv(r, u[i]<<s|u[i-1]>>sr, d, dinv)
	}
	q[0], r = DivWordPreinv(r, u[0]<<s, d, dinv)
	return r >> s
}

// ModWord returns u mod d. It panics if d is zero.
func ModWord(u []Word, d Word) Word {
	need(d != 0, "nat.ModWord", "division by zero")
	if len(u) == 0 {
		return 0
	}
	s := nlz(d)
	d <<= s
	dinv := InvertLimb(d)
	n := len(u)
	var r Word
	if s == 0 {
		for i := n - 1; i >= 0; i-- {
			_, r = DivWordPreinv(r, u[i], d, dinv)
		}
		return r
	}
	sr := W - s
	r = u[n-1] >> sr
	for i := n - 1; i > 0; i-- {
		_, r = DivWordPreinv(r, u[i]<<s|u[i-1]>>sr, d, dinv)
	}
	_, r = DivWordPreinv(r, u[0]<<s, d, dinv)
	return r >> s
}

// Invert2 returns floor((B³-1)/(d1·B+d0)) - B, the reciprocal used by the
// three-by-two division step. d1 must have its top bit set.
func Invert2(d1, d0 Word) Word {
	need(d1>>(W-1) == 1, "nat.Invert2", "divisor not normalized")
	v := InvertLimb(d1)
	p := d1*v + d0
	if p < d0 {
		v--
		if p >= d1 {
			v--
			p -= d1
		}
		p -= d1
	}
	t1, t0 := mulWW(d0, v)
	p += t1
	if p < t1 {
		v--
		if p > d1 || (p == d1 && t0 >= d0) {
			v--
		}
	}
	return v
}

// divQR3by2 divides n2:n1:n0 by the normalized d1:d0, given
// dinv = Invert2(d1, d0) and n2:n1 < d1:d0. It returns the quotient word and
// the two-word remainder r1:r0.
func divQR3by2(n2, n1, n0, d1, d0, dinv Word) (q, r1, r0 Word) {
	q, q0 := mulWW(n2, dinv)
	var c Word
	q0, c = addWW(q0, n1, 0)
	q, _ = addWW(q, n2, c)

	r1 = n1 - d1*q
	var b Word
	r0, b = subWW(n0, d0, 0)
	r1, _ = subWW(r1, d1, b)
	t1, t0 := mulWW(d0, q)
	r0, b = subWW(r0, t0, 0)
	r1, _ = subWW(r1, t1, b)
	q++

	if r1 >= q0 {
		q--
		r0, c = addWW(r0, d0, 0)
		r1, _ = addWW(r1, d1, c)
	}
	if r1 > d1 || (r1 == d1 && r0 >= d0) {
		q++
		r0, b = subWW(r0, d0, 0)
		r1, _ = subWW(r1, d1, b)
	}
	return q, r1, r0
}

// divRem2Normalized divides ns by the normalized two-word ds. It writes
// len(ns)-2 quotient words to qs, leaves the remainder in ns[:2] and returns
// whether the quotient has an extra top word equal to 1.
func divRem2Normalized(qs, ns, ds []Word) bool {
	n := len(ns)
	d1, d0 := ds[1], ds[0]
	r1, r0 := ns[n-1], ns[n-2]
	highest := r1 > d1 || (r1 == d1 && r0 >= d0)
	if highest {
		var b Word
		r0, b = subWW(r0, d0, 0)
		r1, _ = subWW(r1, d1, b)
	}
	dinv := Invert2(d1, d0)
	for i := n - 3; i >= 0; i-- {
		qs[i], r1, r0 = divQR3by2(r1, r0, ns[i], d1, d0, dinv)
	}
	ns[1], ns[0] = r1, r0
	return highest
}

// DivRemTwo divides u by the two-word divisor d (d[1] != 0, not necessarily
// normalized). It writes len(u)-1 quotient words to q and the two remainder
// words to r. u is not modified.
func DivRemTwo(q, r, u, d []Word) {
	need(len(d) == 2 && d[1] != 0, "nat.DivRemTwo", "divisor must have exactly two significant words")
	need(len(u) >= 2, "nat.DivRemTwo", "dividend shorter than divisor")
	need(len(q) >= len(u)-1, "nat.DivRemTwo", "quotient buffer too short")
	need(len(r) >= 2, "nat.DivRemTwo", "remainder buffer too short")
	n := len(u)
	s := nlz(d[1])
	var ds [2]Word
	shlVU(ds[:], d, s)
	ns := make([]Word, n+1)
	ns[n] = shlVU(ns[:n], u, s)
	divRem2Normalized(q[:n-1], ns, ds[:])
	shrVU(r[:2], ns[:2], s)
}
