package nat

import (
	"math/bits"
	"testing"
)

func TestInvertLimb32Exhaustive(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping exhaustive reciprocal check in short mode")
	}
	t.Parallel()
	for d := uint64(1 << 31); d < 1<<32; d++ {
		want := uint32((^uint64(0))/d - 1<<32)
		if got := InvertLimb32(uint32(d)); got != want {
			t.Fatalf("InvertLimb32(%#x) = %#x, want %#x", d, got, want)
		}
	}
}

func TestInvertLimb32Sampled(t *testing.T) {
	t.Parallel()
	r := newRand(32)
	check := func(d uint32) {
		want := uint32((^uint64(0))/uint64(d) - 1<<32)
		if got := InvertLimb32(d); got != want {
			t.Fatalf("InvertLimb32(%#x) = %#x, want %#x", d, got, want)
		}
	}
	for _, d := range []uint32{1 << 31, 1<<31 + 1, 0xffffffff, 0xfffffffe, 0xc0000000} {
		check(d)
	}
	for i := 0; i < 100000; i++ {
		check(uint32(r.Uint64()) | 1<<31)
	}
}

// invertLimb64Reference divides B²-1 = (B-1)·B + (B-1) by d; the quotient
// is B + v, and bits.Div64 yields v directly from the high word B-1-d.
func invertLimb64Reference(d uint64) uint64 {
	q, _ := bits.Div64(^d, ^uint64(0), d)
	return q
}

func TestInvertLimb64(t *testing.T) {
	t.Parallel()
	edges := []uint64{
		1 << 63, 1<<63 + 1, 1<<63 + 1<<62, ^uint64(0), ^uint64(0) - 1,
		0x8000000100000000, 0xffffffff00000000, 0x8000000000000fff,
	}
	for _, d := range edges {
		if got, want := InvertLimb64(d), invertLimb64Reference(d); got != want {
			t.Errorf("InvertLimb64(%#x) = %#x, want %#x", d, got, want)
		}
	}
	r := newRand(64)
	for i := 0; i < 200000; i++ {
		d := r.Uint64() | 1<<63
		if got, want := InvertLimb64(d), invertLimb64Reference(d); got != want {
			t.Fatalf("InvertLimb64(%#x) = %#x, want %#x", d, got, want)
		}
	}
}

func TestInvertLimbUnnormalized(t *testing.T) {
	t.Parallel()
	mustPanicPrecondition(t, "nat.InvertLimb64", func() { InvertLimb64(1<<63 - 1) })
	mustPanicPrecondition(t, "nat.InvertLimb32", func() { InvertLimb32(1) })
}
