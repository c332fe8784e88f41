package nat

// Divide-and-conquer division. A block of 2n dividend words by an n-word
// divisor is split into two half-size quotient computations, each of which
// divides by the top half of the divisor and then fixes the remainder with
// one multiplication by the bottom half.

// DivDCScratchLen returns the number of scratch words DivDC needs for an
// n-word divisor.
func DivDCScratchLen(n int) int { return n }

// DivDC divides ns by the normalized ds with the same contract as
// DivSchoolbook, recursing while the operands stay above th.DivDCThreshold words.
// scratch must hold DivDCScratchLen(len(ds)) words and must not overlap the
// other buffers.
func (th Thresholds) DivDC(qs, ns, ds []Word, inv Word, scratch []Word) bool {
	checkNormalizedDivision("nat.DivDC", qs, ns, ds)
	need(len(scratch) >= DivDCScratchLen(len(ds)), "nat.DivDC", "scratch too short")
	return th.divDC(qs, ns, ds, inv, scratch)
}

// dcThreshold is never below 6 so that both halves of a split block keep at
// least the two words the schoolbook step needs.
func (th Thresholds) dcThreshold() int {
	return max(th.DivDCThreshold, 6)
}

func (th Thresholds) divDC(qs, ns, ds []Word, inv Word, scratch []Word) bool {
	nn, dn := len(ns), len(ds)
	qn := nn - dn
	dc := th.dcThreshold()
	if qn < dc || dn < dc {
		return divSchoolbook(qs[:qn], ns, ds, inv)
	}
	if qn <= dn {
		return th.divDCSmall(qs[:qn], ns, ds, inv, scratch)
	}

	// Peel off a short top block so the rest is a whole number of dn-word
	// blocks. Every later block starts from a remainder below ds and so
	// never has a top quotient word.
	r := qn % dn
	if r == 0 {
		r = dn
	}
	off := qn - r
	highest := th.divDCSmall(qs[off:qn], ns[off:], ds, inv, scratch)
	for off > 0 {
		off -= dn
		th.divDCBlock(qs[off:off+dn], ns[off:off+2*dn], ds, inv, scratch)
	}
	return highest
}

// divDCSmall handles qn = len(ns)-len(ds) <= len(ds) by dividing the top
// 2·qn words by the top qn divisor words and correcting with the rest.
func (th Thresholds) divDCSmall(qs, ns, ds []Word, inv Word, scratch []Word) bool {
	dn := len(ds)
	qn := len(ns) - dn
	if qn < th.dcThreshold() {
		return divSchoolbook(qs, ns, ds, inv)
	}
	m := dn - qn
	highest := th.divDCBlock(qs[:qn], ns[m:], ds[m:], inv, scratch)
	if m == 0 {
		return highest
	}

	prod := scratch[:dn]
	th.mulTo(prod, qs[:qn], ds[:m])
	borrow := subVV(ns[:dn], ns[:dn], prod)
	if highest {
		borrow += subVV(ns[qn:dn], ns[qn:dn], ds[:m])
	}
	for borrow != 0 {
		if subVW(qs[:qn], qs[:qn], 1) != 0 {
			highest = false
		}
		borrow -= addVV(ns[:dn], ns[:dn], ds)
	}
	return highest
}

// divDCBlock divides the 2n words of ns by the n-word ds into n quotient
// words, leaving the remainder in ns[:n].
func (th Thresholds) divDCBlock(qs, ns, ds []Word, inv Word, scratch []Word) bool {
	n := len(ds)
	lo := n / 2
	hi := n - lo
	dc := th.dcThreshold()

	var highest bool
	if hi < dc {
		highest = divSchoolbook(qs[lo:n], ns[2*lo:2*n], ds[lo:], inv)
	} else {
		highest = th.divDCBlock(qs[lo:n], ns[2*lo:2*n], ds[lo:], inv, scratch)
	}
	prod := scratch[:n]
	th.mulTo(prod, qs[lo:n], ds[:lo])
	borrow := subVV(ns[lo:lo+n], ns[lo:lo+n], prod)
	if highest {
		borrow += subVV(ns[n:n+lo], ns[n:n+lo], ds[:lo])
	}
	for borrow != 0 {
		if subVW(qs[lo:n], qs[lo:n], 1) != 0 {
			highest = false
		}
		borrow -= addVV(ns[lo:lo+n], ns[lo:lo+n], ds)
	}

	var lowTop bool
	if lo < dc {
		lowTop = divSchoolbook(qs[:lo], ns[hi:n+lo], ds[hi:], inv)
	} else {
		lowTop = th.divDCBlock(qs[:lo], ns[hi:n+lo], ds[hi:], inv, scratch)
	}
	th.mulTo(prod, ds[:hi], qs[:lo])
	borrow = subVV(ns[:n], ns[:n], prod)
	if lowTop {
		borrow += subVV(ns[lo:n], ns[lo:n], ds[:hi])
	}
	for borrow != 0 {
		subVW(qs[:lo], qs[:lo], 1)
		borrow -= addVV(ns[:n], ns[:n], ds)
	}
	return highest
}
