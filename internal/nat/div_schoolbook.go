package nat

// DivSchoolbook divides ns (nn words) by the normalized ds (dn >= 2 words,
// top bit of ds[dn-1] set) given inv = Invert2(ds[dn-1], ds[dn-2]). It
// writes nn-dn quotient words to qs, leaves the remainder in ns[:dn] and
// reports whether the quotient has an extra top word equal to 1. The words
// of ns above dn are clobbered.
func DivSchoolbook(qs, ns, ds []Word, inv Word) bool {
	checkNormalizedDivision("nat.DivSchoolbook", qs, ns, ds)
	return divSchoolbook(qs[:len(ns)-len(ds)], ns, ds, inv)
}

func checkNormalizedDivision(op string, qs, ns, ds []Word) {
	need(len(ds) >= 2, op, "divisor shorter than two words")
	need(ds[len(ds)-1]>>(W-1) == 1, op, "divisor not normalized")
	need(len(ns) >= len(ds), op, "dividend shorter than divisor")
	need(len(qs) >= len(ns)-len(ds), op, "quotient buffer too short")
	need(!alias(qs, ns) && !alias(qs, ds) && !alias(ns, ds), op, "buffers overlap")
}

// divSchoolbook is DivSchoolbook without contract checks. Each step
// estimates one quotient word from the top three remainder words and
// corrects it at most once.
func divSchoolbook(qs, ns, ds []Word, inv Word) bool {
	nn, dn := len(ns), len(ds)
	d1, d0 := ds[dn-1], ds[dn-2]

	hiN := ns[nn-dn:]
	highest := cmpVV(hiN, ds) >= 0
	if highest {
		subVV(hiN, hiN, ds)
	}

	n1 := ns[nn-1]
	for i := nn - 1; i >= dn; i-- {
		j := i - dn
		var q Word
		if n1 == d1 && ns[i-1] == d0 {
			q = _M
			subMulVVW(ns[j:i], ds, q)
			n1 = ns[i-1]
		} else {
			var n0 Word
			q, n1, n0 = divQR3by2(n1, ns[i-1], ns[i-2], d1, d0, inv)
			c := subMulVVW(ns[j:i-2], ds[:dn-2], q)
			under := n0 < c
			n0 -= c
			borrow := under && n1 == 0
			if under {
				n1--
			}
			ns[i-2] = n0
			if borrow {
				n1 += d1
				if addVV(ns[j:i-1], ns[j:i-1], ds[:dn-1]) != 0 {
					n1++
				}
				q--
			}
		}
		qs[j] = q
	}
	ns[dn-1] = n1
	return highest
}
