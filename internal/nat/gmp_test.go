//go:build gmp

package nat

import (
	"fmt"
	"testing"

	"github.com/ncw/gmp"
)

func toGMP(x Nat) *gmp.Int {
	return new(gmp.Int).SetBytes(ToBig(x).Bytes())
}

// TestDivModAgainstGMP compares every division algorithm with libgmp on
// operands large enough for Barrett division at the default thresholds.
func TestDivModAgainstGMP(t *testing.T) {
	t.Parallel()
	for _, sz := range [][2]int{{300, 150}, {5000, 200}, {9000, 2500}} {
		t.Run(fmt.Sprintf("%dby%d", sz[0], sz[1]), func(t *testing.T) {
			t.Parallel()
			r := newRand(int64(sz[0] + sz[1]))
			n := Nat(randWords(r, sz[0], false))
			d := Nat(randWords(r, sz[1], false))
			wantQ, wantR := new(gmp.Int).QuoRem(toGMP(n), toGMP(d), new(gmp.Int))
			for _, alg := range []DivAlgorithm{AlgAuto, AlgDC, AlgBarrett} {
				th := DefaultThresholds()
				th.Algorithm = alg
				q, rem := th.DivMod(n, d)
				if toGMP(q).Cmp(wantQ) != 0 || toGMP(rem).Cmp(wantR) != 0 {
					t.Fatalf("%s: DivMod differs from libgmp", alg)
				}
			}
		})
	}
}
