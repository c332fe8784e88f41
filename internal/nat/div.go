// This file holds the division entry points and the size-based dispatch
// between the schoolbook, divide-and-conquer and Barrett algorithms.

package nat

import "fmt"

// DivAlgorithm selects the algorithm used for normalized divisors of three
// or more words.
type DivAlgorithm int

const (
	// AlgAuto picks by operand size using the crossover thresholds.
	AlgAuto DivAlgorithm = iota
	// AlgSchoolbook is quadratic long division.
	AlgSchoolbook
	// AlgDC is recursive divide-and-conquer division.
	AlgDC
	// AlgBarrett divides by multiplying with an approximate inverse.
	AlgBarrett
)

func (a DivAlgorithm) String() string {
	switch a {
	case AlgAuto:
		return "auto"
	case AlgSchoolbook:
		return "schoolbook"
	case AlgDC:
		return "dc"
	case AlgBarrett:
		return "barrett"
	default:
		return fmt.Sprintf("DivAlgorithm(%d)", int(a))
	}
}

// ParseDivAlgorithm maps a name produced by String back to its algorithm.
func ParseDivAlgorithm(s string) (DivAlgorithm, error) {
	for a := AlgAuto; a <= AlgBarrett; a++ {
		if a.String() == s {
			return a, nil
		}
	}
	return AlgAuto, fmt.Errorf("unknown division algorithm %q", s)
}

// Thresholds are the word-count crossovers that steer multiplication,
// division and inversion. A zero field is raised to the smallest value the
// algorithm supports. Thresholds is a plain value: there is no package-level
// mutable copy.
type Thresholds struct {
	// DivDCThreshold is the divisor and quotient size below which
	// schoolbook division is used.
	DivDCThreshold int
	// DivMU and DivMUPI decide between divide-and-conquer and Barrett
	// division once both operands exceed DivDCThreshold.
	DivMU   int
	DivMUPI int
	// InvNewton is the size at which the inverse switches from one exact
	// division to Newton doubling.
	InvNewton int
	// Karatsuba is the size of the shorter factor at which multiplication
	// leaves the quadratic basecase.
	Karatsuba int
	// Algorithm forces one division algorithm when not AlgAuto.
	Algorithm DivAlgorithm
}

// DefaultThresholds returns the crossovers tuned for the build's word size.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DivDCThreshold: defaultDivDCThreshold,
		DivMU:          defaultDivMUThreshold,
		DivMUPI:        defaultDivMUPIThreshold,
		InvNewton:      defaultInvNewtonThreshold,
		Karatsuba:      defaultKaratsubaThreshold,
	}
}

// Validate reports the first field that is negative or not a known value.
func (th Thresholds) Validate() error {
	fields := []struct {
		name string
		v    int
	}{
		{"DivDCThreshold", th.DivDCThreshold},
		{"DivMU", th.DivMU},
		{"DivMUPI", th.DivMUPI},
		{"InvNewton", th.InvNewton},
		{"Karatsuba", th.Karatsuba},
	}
	for _, f := range fields {
		if f.v < 0 {
			return fmt.Errorf("threshold %s must be non-negative, got %d", f.name, f.v)
		}
	}
	if th.Algorithm < AlgAuto || th.Algorithm > AlgBarrett {
		return fmt.Errorf("unknown division algorithm %d", int(th.Algorithm))
	}
	return nil
}

// algorithm picks the algorithm for a normalized nn-word by dn-word division.
func (th Thresholds) algorithm(nn, dn int) DivAlgorithm {
	if th.Algorithm != AlgAuto {
		return th.Algorithm
	}
	qn := nn - dn
	if dn < th.DivDCThreshold || qn < th.DivDCThreshold {
		return AlgSchoolbook
	}
	if th.useDC(nn, dn) {
		return AlgDC
	}
	return AlgBarrett
}

// useDC reports whether divide-and-conquer beats Barrett: always for short
// divisors or dividends, otherwise when the dividend is not much longer than
// the divisor.
func (th Thresholds) useDC(nn, dn int) bool {
	if dn < th.DivMUPI || nn < 2*th.DivMU {
		return true
	}
	n, d := int64(nn), int64(dn)
	mu, mupi := int64(th.DivMU), int64(th.DivMUPI)
	return 2*(mu-mupi)*d+mupi*n > d*n
}

// DivScratchLen returns the number of scratch words the normalized division
// of an nn-word dividend by a dn-word divisor may need.
func DivScratchLen(nn, dn int) int {
	return max(DivDCScratchLen(dn), DivBarrettScratchLen(nn, dn))
}

// DivMod returns n / d and n mod d using the default thresholds. It panics
// if d is zero.
func DivMod(n, d Nat) (q, r Nat) {
	return DefaultThresholds().DivMod(n, d)
}

// DivMod returns n / d and n mod d. It panics if d is zero.
func (th Thresholds) DivMod(n, d Nat) (q, r Nat) {
	n, d = n.Norm(), d.Norm()
	need(len(d) > 0, "nat.DivMod", "division by zero")
	if len(n) < len(d) {
		return nil, n.Clone()
	}
	q = make(Nat, len(n)-len(d)+1)
	r = make(Nat, len(d))
	th.divModTo(q, r, n, d)
	return q.Norm(), r.Norm()
}

// DivModTo divides ns by ds using the default thresholds.
func DivModTo(qs, rs, ns, ds []Word) {
	DefaultThresholds().DivModTo(qs, rs, ns, ds)
}

// DivModTo writes the len(ns)-len(ds)+1 quotient words of ns / ds to qs and
// the len(ds) remainder words to rs. ds need not be normalized but its top
// word must be nonzero. ns and ds are not modified. qs and rs must not
// overlap ns, ds or each other.
func (th Thresholds) DivModTo(qs, rs, ns, ds []Word) {
	const op = "nat.DivModTo"
	need(len(ds) > 0 && ds[len(ds)-1] != 0, op, "divisor is zero or has a zero top word")
	need(len(ns) >= len(ds), op, "dividend shorter than divisor")
	need(len(qs) >= len(ns)-len(ds)+1, op, "quotient buffer too short")
	need(len(rs) >= len(ds), op, "remainder buffer too short")
	need(!alias(qs, ns) && !alias(qs, ds) && !alias(rs, ns) && !alias(rs, ds) && !alias(qs, rs), op, "buffers overlap")
	th.divModTo(qs, rs, ns, ds)
}

func (th Thresholds) divModTo(qs, rs, ns, ds []Word) {
	nn, dn := len(ns), len(ds)
	switch dn {
	case 1:
		rs[0] = DivRemWord(qs[:nn], ns, ds[0])
		return
	case 2:
		DivRemTwo(qs[:nn-1], rs[:2], ns, ds)
		return
	}

	s := nlz(ds[dn-1])
	dNorm := getWords(dn)
	defer putWords(dNorm)
	shlVU(dNorm, ds, s)
	nNorm := getWords(nn + 1)
	defer putWords(nNorm)
	nNorm[nn] = shlVU(nNorm[:nn], ns, s)

	// The extra top word keeps nNorm's top dn words below dNorm, so the
	// quotient fits in nn-dn+1 words with no separate top word.
	th.divNormalized(qs[:nn-dn+1], nNorm, dNorm)
	shrVU(rs[:dn], nNorm[:dn], s)
}

// divNormalized divides ns by the normalized ds, dn >= 3, choosing the
// algorithm by size.
func (th Thresholds) divNormalized(qs, ns, ds []Word) bool {
	nn, dn := len(ns), len(ds)
	inv := Invert2(ds[dn-1], ds[dn-2])
	switch th.algorithm(nn, dn) {
	case AlgSchoolbook:
		return divSchoolbook(qs, ns, ds, inv)
	case AlgDC:
		scratch := getWords(DivDCScratchLen(dn))
		defer putWords(scratch)
		return th.divDC(qs, ns, ds, inv, scratch)
	default:
		scratch := getWords(DivBarrettScratchLen(nn, dn))
		defer putWords(scratch)
		return th.divBarrett(qs, ns, ds, scratch)
	}
}
