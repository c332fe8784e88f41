package nat

// Barrett division. The quotient is produced in blocks of at most k words,
// where k is chosen so the blocks split the quotient evenly. Each block is
// estimated from the top words of the partial remainder and an inverse of
// the top k divisor words, then corrected by adding back or subtracting the
// divisor until the remainder is in range.

// barrettBlock returns the block size k for a qn-word quotient and a dn-word
// divisor: the smallest k <= dn that covers qn in ceil(qn/dn) blocks.
func barrettBlock(qn, dn int) int {
	blocks := (qn + dn - 1) / dn
	return (qn + blocks - 1) / blocks
}

// DivBarrettScratchLen returns the number of scratch words DivBarrett needs
// to divide an nn-word dividend by a dn-word divisor.
func DivBarrettScratchLen(nn, dn int) int {
	qn := max(nn-dn, 1)
	k := barrettBlock(qn, dn)
	return k + InvertScratchLen(k) + 2*k + k + dn
}

// DivBarrett divides ns by the normalized ds with the same contract as
// DivSchoolbook. scratch must hold DivBarrettScratchLen(len(ns), len(ds))
// words and must not overlap the other buffers.
func (th Thresholds) DivBarrett(qs, ns, ds, scratch []Word) bool {
	checkNormalizedDivision("nat.DivBarrett", qs, ns, ds)
	need(len(scratch) >= DivBarrettScratchLen(len(ns), len(ds)), "nat.DivBarrett", "scratch too short")
	return th.divBarrett(qs, ns, ds, scratch)
}

func (th Thresholds) divBarrett(qs, ns, ds, scratch []Word) bool {
	nn, dn := len(ns), len(ds)
	qn := nn - dn

	hiN := ns[qn:]
	highest := cmpVV(hiN, ds) >= 0
	if highest {
		subVV(hiN, hiN, ds)
	}
	if qn == 0 {
		return highest
	}

	k := barrettBlock(qn, dn)
	inv := scratch[:k]
	th.invertApprox(inv, ds[dn-k:], scratch[k:k+InvertScratchLen(k)])
	rest := scratch[k+InvertScratchLen(k):]
	p := rest[:2*k]
	t := rest[2*k : 3*k+dn]

	for j := qn; j > 0; {
		b := min(k, j)
		j -= b
		u := ns[j : j+dn+b]
		q := qs[j : j+b]

		// q = U_hi + floor(U_hi·I / B^k), where U_hi is the top b words of U.
		uhi := u[dn:]
		th.mulTo(p[:b+k], uhi, inv)
		copy(q, uhi)
		if addVV(q, q, p[k:k+b]) != 0 {
			for i := range q {
				q[i] = _M
			}
		}

		th.mulTo(t[:b+dn], q, ds)
		if subVV(u, u, t[:b+dn]) != 0 {
			for {
				subVW(q, q, 1)
				if AddInPlaceLeft(u, ds) {
					break
				}
			}
		}
		for !isZeroVec(u[dn:]) || cmpVV(u[:dn], ds) >= 0 {
			addVW(q, q, 1)
			SubInPlaceLeft(u, ds)
		}
	}
	return highest
}
