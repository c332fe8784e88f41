package primality

import (
	"math/big"

	"github.com/agbru/natcalc/internal/modmul"
	"github.com/agbru/natcalc/internal/nat"
)

// sieveLimit is how many small primes IsProbablePrime trial-divides by
// before the probable prime tests.
const sieveLimit = 256

// IsProbablePrime reports whether n is a probable prime. Values that fit in
// 64 bits get the exact IsPrime64 verdict; wider values must pass trial
// division, the strong base-2 test and the Lucas V test with Selfridge
// parameters.
func IsProbablePrime(n nat.Nat) bool {
	n = n.Norm()
	if n.BitLen() <= 64 {
		v, _ := n.Uint64()
		return IsPrime64(v)
	}
	if n[0]&1 == 0 {
		return false
	}
	for _, p := range smallPrimes[1:min(sieveLimit, len(smallPrimes))] {
		if nat.ModWord(n, nat.Word(p)) == 0 {
			return false
		}
	}
	r := newResidues(n)
	return r.strongBase2() && r.lucasV()
}

// residues carries a multi-word modulus with its reduction state.
type residues struct {
	n, nm1 nat.Nat
	data   modmul.Data
}

func newResidues(n nat.Nat) *residues {
	nm1, _ := nat.Sub(n, nat.FromUint64(1))
	return &residues{n: n, nm1: nm1, data: modmul.Precompute(n)}
}

func (r *residues) mul(x, y nat.Nat) nat.Nat {
	return modmul.Mul(x, y, r.n, r.data)
}

func (r *residues) add(x, y nat.Nat) nat.Nat {
	s := nat.Add(x, y)
	if s.Cmp(r.n) >= 0 {
		s, _ = nat.Sub(s, r.n)
	}
	return s
}

func (r *residues) sub(x, y nat.Nat) nat.Nat {
	if x.Cmp(y) >= 0 {
		d, _ := nat.Sub(x, y)
		return d
	}
	d, _ := nat.Sub(r.n, y)
	return nat.Add(x, d)
}

// signed returns v mod n for a small signed v.
func (r *residues) signed(mag uint64, neg bool) nat.Nat {
	v := nat.FromUint64(mag)
	if !neg || v.IsZero() {
		return v
	}
	d, _ := nat.Sub(r.n, v)
	return d
}

func bit(x nat.Nat, i int) bool {
	return x[i/nat.W]>>uint(i%nat.W)&1 != 0
}

func (r *residues) strongBase2() bool {
	s := 0
	for !bit(r.nm1, s) {
		s++
	}
	d := shiftRight(r.nm1, s)
	y := modmul.Pow(nat.FromUint64(2), d, r.n)
	one := nat.FromUint64(1)
	if y.Cmp(one) == 0 || y.Cmp(r.nm1) == 0 {
		return true
	}
	for range s - 1 {
		y = r.mul(y, y)
		if y.Cmp(r.nm1) == 0 {
			return true
		}
	}
	return false
}

// shiftRight returns x >> s for any s ≥ 0.
func shiftRight(x nat.Nat, s int) nat.Nat {
	words := s / nat.W
	if words >= len(x) {
		return nil
	}
	z := make(nat.Nat, len(x)-words)
	nat.ShrTo(z, x[words:], uint(s%nat.W))
	return z.Norm()
}

// selfridgeWide is selfridge for n wider than 64 bits, where n > D always.
func selfridgeWide(n nat.Nat) (d uint64, neg, ok, exhausted bool) {
	nMod4 := uint64(n[0] & 3)
	for i := range uint64(maxDiscriminants) {
		d = 5 + 2*i
		neg = i%2 == 1
		rem := uint64(nat.ModWord(n, nat.Word(d)))
		if gcd(d, rem) != 1 {
			return 0, false, false, false
		}
		// (d/n) = (n mod d / d) by reciprocity for odd d and n.
		j := jacobi(rem, d)
		if d%4 == 3 && nMod4 == 3 {
			j = -j
		}
		if neg && nMod4 == 3 {
			j = -j
		}
		if j == -1 {
			return d, neg, true, false
		}
	}
	return 0, false, true, true
}

// lucasV checks V_{n+1} ≡ 2Q (mod n) for P = 1, Q = (1-D)/4.
func (r *residues) lucasV() bool {
	d, neg, ok, exhausted := selfridgeWide(r.n)
	if !ok {
		return false
	}
	if exhausted {
		// Only squares exhaust the search in practice.
		b := nat.ToBig(r.n)
		s := new(big.Int).Sqrt(b)
		return s.Mul(s, s).Cmp(b) != 0
	}
	// Q = (1 - D) / 4: positive for negative D.
	var q nat.Nat
	if neg {
		q = r.signed((1+d)/4, false)
	} else {
		q = r.signed((d-1)/4, true)
	}

	m := nat.Add(r.n, nat.FromUint64(1))
	x, y := nat.FromUint64(2), nat.FromUint64(1)
	qk := nat.FromUint64(1)
	for i := m.BitLen() - 1; i >= 0; i-- {
		xy := r.sub(r.mul(x, y), qk)
		if bit(m, i) {
			qk1 := r.mul(qk, q)
			x, y = xy, r.sub(r.mul(y, y), r.add(qk1, qk1))
			qk = r.mul(qk, qk1)
		} else {
			x, y = r.sub(r.mul(x, x), r.add(qk, qk)), xy
			qk = r.mul(qk, qk)
		}
	}
	return x.Cmp(r.add(q, q)) == 0
}
