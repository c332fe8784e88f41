//go:build gmp

package primality

import (
	"math/rand"
	"testing"

	"github.com/ncw/gmp"

	"github.com/agbru/natcalc/internal/nat"
)

// TestIsProbablePrimeAgainstGMP compares multi-word verdicts with libgmp's
// probable prime test on random odd values.
func TestIsProbablePrimeAgainstGMP(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(13))
	for range 2000 {
		ws := make([]nat.Word, 1+r.Intn(6))
		for i := range ws {
			ws[i] = nat.Word(r.Uint64())
		}
		ws[0] |= 1
		n := nat.FromWords(ws)
		g := new(gmp.Int).SetBytes(nat.ToBig(n).Bytes())
		if got, want := IsProbablePrime(n), g.ProbablyPrime(25); got != want {
			t.Fatalf("IsProbablePrime(%s) = %v, libgmp says %v", n, got, want)
		}
	}
}
