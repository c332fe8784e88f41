package primality

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/natcalc/internal/nat"
)

// TestPrimalityProperties checks the verdicts against math/big and against
// each other across the word widths.
func TestPrimalityProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 2000
	properties := gopter.NewProperties(parameters)

	properties.Property("IsPrime64 agrees with math/big", prop.ForAll(
		func(n uint64) bool {
			return IsPrime64(n) == bigPrime(n)
		},
		gen.UInt64(),
	))

	properties.Property("IsPrime32 agrees with IsPrime64", prop.ForAll(
		func(n uint32) bool {
			return IsPrime32(n) == IsPrime64(uint64(n))
		},
		gen.UInt32(),
	))

	properties.Property("IsProbablePrime agrees with IsPrime64 below 2^64", prop.ForAll(
		func(n uint64) bool {
			return IsProbablePrime(nat.FromUint64(n)) == IsPrime64(n)
		},
		gen.UInt64(),
	))

	properties.Property("products of two factors above one are composite", prop.ForAll(
		func(a, b uint32) bool {
			return !IsPrime64(uint64(a) * uint64(b))
		},
		gen.UInt32Range(2, 1<<31), gen.UInt32Range(2, 1<<31),
	))

	properties.TestingRun(t)
}

func FuzzIsPrime64(f *testing.F) {
	for _, seed := range []uint64{0, 1, 2, 561, 2047, 1_050_535_501, 1<<61 - 1, 3_825_123_056_546_413_051, ^uint64(0)} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, n uint64) {
		if got, want := IsPrime64(n), bigPrime(n); got != want {
			t.Fatalf("IsPrime64(%d) = %v, want %v", n, got, want)
		}
		if n <= 1<<32-1 {
			if got, want := IsPrime32(uint32(n)), bigPrime(n); got != want {
				t.Fatalf("IsPrime32(%d) = %v, want %v", n, got, want)
			}
		}
	})
}

func BenchmarkIsPrime64(b *testing.B) {
	cases := []struct {
		name string
		n    uint64
	}{
		{"table", 4093},
		{"hashed bases", 1_000_000_007},
		{"bpsw float", 4_503_599_627_370_449},
		{"bpsw lucas", 1<<61 - 1},
		{"bpsw fibonacci", 18_446_744_073_709_551_557},
	}
	for _, bc := range cases {
		b.Run(bc.name, func(b *testing.B) {
			for b.Loop() {
				IsPrime64(bc.n)
			}
		})
	}
}

func BenchmarkIsPrime32(b *testing.B) {
	for b.Loop() {
		IsPrime32(4_294_967_291)
	}
}

func BenchmarkIsProbablePrime(b *testing.B) {
	n := nat.FromBig(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 521), big.NewInt(1)))
	for b.Loop() {
		IsProbablePrime(n)
	}
}
