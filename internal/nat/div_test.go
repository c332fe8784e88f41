package nat

import (
	"fmt"
	"math/big"
	"slices"
	"testing"
)

func TestDivWordPreinv(t *testing.T) {
	t.Parallel()
	r := newRand(20)
	for i := 0; i < 10000; i++ {
		d := Word(r.Uint64()) | 1<<(W-1)
		nh := Word(r.Uint64()) % d
		nl := Word(r.Uint64())
		if i%7 == 0 {
			nh, nl = d-1, _M
		}
		q, rem := DivWordPreinv(nh, nl, d, InvertLimb(d))
		n := toBig([]Word{nl, nh})
		wantQ, wantR := new(big.Int).QuoRem(n, toBig([]Word{d}), new(big.Int))
		if toBig([]Word{q}).Cmp(wantQ) != 0 || toBig([]Word{rem}).Cmp(wantR) != 0 {
			t.Fatalf("DivWordPreinv(%#x, %#x, %#x) = %#x, %#x; want %s, %s", nh, nl, d, q, rem, wantQ, wantR)
		}
	}
}

func TestDivRemWord(t *testing.T) {
	t.Parallel()
	r := newRand(21)
	divisors := []Word{1, 2, 3, 7, 10, 1 << (W - 1), _M, _M - 1, 1<<(W/2) + 1}
	for i := 0; i < 50; i++ {
		divisors = append(divisors, Word(r.Uint64())>>(r.Intn(W)))
	}
	for _, d := range divisors {
		if d == 0 {
			continue
		}
		for _, n := range []int{0, 1, 2, 5, 13} {
			u := randWords(r, n, false)
			q := make([]Word, n)
			rem := DivRemWord(q, u, d)
			wantQ, wantR := new(big.Int).QuoRem(toBig(u), toBig([]Word{d}), new(big.Int))
			if toBig(q).Cmp(wantQ) != 0 || toBig([]Word{rem}).Cmp(wantR) != 0 {
				t.Fatalf("DivRemWord(%s, %d) = %s, %d; want %s, %s", toBig(u), d, toBig(q), rem, wantQ, wantR)
			}
			if m := ModWord(u, d); m != rem {
				t.Fatalf("ModWord(%s, %d) = %d, want %d", toBig(u), d, m, rem)
			}

			// The quotient may overwrite the dividend.
			inPlace := slices.Clone(u)
			if rem2 := DivRemWord(inPlace, inPlace, d); rem2 != rem || !slices.Equal(inPlace, q) {
				t.Fatalf("in-place DivRemWord(%s, %d) = %s, %d", toBig(u), d, toBig(inPlace), rem2)
			}
		}
	}
	mustPanicPrecondition(t, "nat.DivRemWord", func() { DivRemWord(make([]Word, 1), []Word{1}, 0) })
	mustPanicPrecondition(t, "nat.ModWord", func() { ModWord([]Word{1}, 0) })
}

func TestInvert2(t *testing.T) {
	t.Parallel()
	r := newRand(22)
	b3 := new(big.Int).Lsh(big.NewInt(1), 3*W)
	b3m1 := new(big.Int).Sub(b3, big.NewInt(1))
	b := new(big.Int).Lsh(big.NewInt(1), W)
	for i := 0; i < 2000; i++ {
		d1 := Word(r.Uint64()) | 1<<(W-1)
		d0 := Word(r.Uint64())
		switch i % 5 {
		case 1:
			d0 = _M
		case 2:
			d1, d0 = _M, _M
		case 3:
			d1, d0 = 1<<(W-1), 0
		}
		want := new(big.Int).Quo(b3m1, toBig([]Word{d0, d1}))
		want.Sub(want, b)
		if got := Invert2(d1, d0); toBig([]Word{got}).Cmp(want) != 0 {
			t.Fatalf("Invert2(%#x, %#x) = %#x, want %s", d1, d0, got, want)
		}
	}
	mustPanicPrecondition(t, "nat.Invert2", func() { Invert2(1, 0) })
}

func TestDivRemTwo(t *testing.T) {
	t.Parallel()
	r := newRand(23)
	for i := 0; i < 300; i++ {
		d := randWords(r, 2, false)
		if i%3 == 0 {
			d[1] >>= uint(r.Intn(W))
			if d[1] == 0 {
				d[1] = 1
			}
		}
		n := 2 + r.Intn(8)
		u := randWords(r, n, false)
		if i%4 == 0 {
			u = sparseWords(r, n)
		}
		orig := slices.Clone(u)
		q := make([]Word, n-1)
		rem := make([]Word, 2)
		DivRemTwo(q, rem, u, d)
		wantQ, wantR := new(big.Int).QuoRem(toBig(u), toBig(d), new(big.Int))
		if toBig(q).Cmp(wantQ) != 0 || toBig(rem).Cmp(wantR) != 0 {
			t.Fatalf("DivRemTwo(%s, %s) = %s, %s; want %s, %s", toBig(u), toBig(d), toBig(q), toBig(rem), wantQ, wantR)
		}
		if !slices.Equal(u, orig) {
			t.Fatal("DivRemTwo modified its dividend")
		}
	}
}

// checkDivMod compares th.DivMod(n, d) against math/big.
func checkDivMod(t *testing.T, th Thresholds, n, d []Word) {
	t.Helper()
	q, r := th.DivMod(n, d)
	wantQ, wantR := new(big.Int).QuoRem(toBig(n), toBig(d), new(big.Int))
	if ToBig(q).Cmp(wantQ) != 0 || ToBig(r).Cmp(wantR) != 0 {
		t.Fatalf("DivMod(%d words, %d words) with %s: q or r differ from math/big\n n = %s\n d = %s\n got q = %s r = %s\nwant q = %s r = %s",
			len(n), len(d), th.Algorithm, toBig(n), toBig(d), q, r, wantQ, wantR)
	}
}

func TestDivModAgainstBig(t *testing.T) {
	t.Parallel()
	shapes := [][2]int{
		{1, 1}, {3, 1}, {2, 2}, {7, 2}, {3, 3}, {5, 3}, {10, 4}, {20, 6}, {24, 12},
		{40, 13}, {60, 30}, {61, 7}, {100, 20}, {130, 64}, {200, 100},
	}
	for _, sh := range shapes {
		t.Run(fmt.Sprintf("%dby%d", sh[0], sh[1]), func(t *testing.T) {
			t.Parallel()
			r := newRand(int64(sh[0]*1000 + sh[1]))
			for i := 0; i < 6; i++ {
				var n, d []Word
				switch i % 3 {
				case 0:
					n, d = randWords(r, sh[0], false), randWords(r, sh[1], false)
				case 1:
					n, d = sparseWords(r, sh[0]), sparseWords(r, sh[1])
				default:
					n, d = randWords(r, sh[0], false), randWords(r, sh[1], true)
				}
				checkDivMod(t, DefaultThresholds(), n, d)
				checkDivMod(t, smallThresholds(), n, d)
			}
		})
	}
}

func TestDivisionAlgorithmsAgree(t *testing.T) {
	t.Parallel()
	base := smallThresholds()
	shapes := [][2]int{{6, 3}, {12, 6}, {13, 6}, {25, 8}, {40, 20}, {41, 20}, {64, 7}, {90, 45}, {150, 31}}
	for _, sh := range shapes {
		t.Run(fmt.Sprintf("%dby%d", sh[0], sh[1]), func(t *testing.T) {
			t.Parallel()
			r := newRand(int64(sh[0]*7 + sh[1]))
			for i := 0; i < 8; i++ {
				n := randWords(r, sh[0], false)
				d := randWords(r, sh[1], i%2 == 0)
				if i%4 == 3 {
					n, d = sparseWords(r, sh[0]), sparseWords(r, sh[1])
				}
				var qs, rs []Nat
				for _, alg := range []DivAlgorithm{AlgSchoolbook, AlgDC, AlgBarrett, AlgAuto} {
					th := base
					th.Algorithm = alg
					checkDivMod(t, th, n, d)
					quo, rem := th.DivMod(n, d)
					qs, rs = append(qs, quo), append(rs, rem)
				}
				for j := 1; j < len(qs); j++ {
					if qs[j].Cmp(qs[0]) != 0 || rs[j].Cmp(rs[0]) != 0 {
						t.Fatalf("algorithm %d disagrees with schoolbook", j)
					}
				}
			}
		})
	}
}

// TestNormalizedEntryPoints drives DivSchoolbook, DivDC and DivBarrett
// directly on normalized operands, including a top quotient word.
func TestNormalizedEntryPoints(t *testing.T) {
	t.Parallel()
	th := smallThresholds()
	r := newRand(24)
	for _, sh := range [][2]int{{4, 2}, {8, 3}, {20, 10}, {33, 12}, {70, 24}} {
		nn, dn := sh[0], sh[1]
		for i := 0; i < 4; i++ {
			ds := randWords(r, dn, true)
			ns := randWords(r, nn, false)
			if i == 0 {
				// Force the top dn words of ns above ds.
				copy(ns[nn-dn:], ds)
				ns[nn-1] = _M
			}
			wantQ, wantR := new(big.Int).QuoRem(toBig(ns), toBig(ds), new(big.Int))
			inv := Invert2(ds[dn-1], ds[dn-2])

			run := func(name string, f func(qs, ns []Word) bool) {
				work := slices.Clone(ns)
				qs := make([]Word, nn-dn)
				highest := f(qs, work)
				q := toBig(append(qs, boolWord(highest)))
				if q.Cmp(wantQ) != 0 || toBig(work[:dn]).Cmp(wantR) != 0 {
					t.Fatalf("%s(%d by %d): q = %s r = %s, want %s %s", name, nn, dn, q, toBig(work[:dn]), wantQ, wantR)
				}
			}
			run("DivSchoolbook", func(qs, ns []Word) bool { return DivSchoolbook(qs, ns, ds, inv) })
			run("DivDC", func(qs, ns []Word) bool {
				return th.DivDC(qs, ns, ds, inv, make([]Word, DivDCScratchLen(dn)))
			})
			run("DivBarrett", func(qs, ns []Word) bool {
				return th.DivBarrett(qs, ns, ds, make([]Word, DivBarrettScratchLen(nn, dn)))
			})
		}
	}
}

func TestDivModPreconditions(t *testing.T) {
	t.Parallel()
	mustPanicPrecondition(t, "nat.DivMod", func() { DivMod(Nat{1}, nil) })
	mustPanicPrecondition(t, "nat.DivModTo", func() { DivModTo(make([]Word, 2), make([]Word, 1), []Word{1, 2}, []Word{0}) })
	mustPanicPrecondition(t, "nat.DivModTo", func() { DivModTo(make([]Word, 1), make([]Word, 1), []Word{1, 2}, []Word{3}) })
	buf := []Word{1, 2, 3, 4}
	mustPanicPrecondition(t, "nat.DivModTo", func() { DivModTo(buf[:2], make([]Word, 2), buf[1:], []Word{1, 1}) })
	mustPanicPrecondition(t, "nat.DivSchoolbook", func() {
		DivSchoolbook(make([]Word, 2), []Word{1, 2, 3, 4}, []Word{1, 1}, 0)
	})
	mustPanicPrecondition(t, "nat.DivDC", func() {
		smallThresholds().DivDC(make([]Word, 2), []Word{1, 2, 3, 1 << (W - 1)}, []Word{1, 1 << (W - 1)}, 0, nil)
	})
}

func TestDivModToDisjointBuffers(t *testing.T) {
	t.Parallel()
	ns := []Word{7, 11, 13, 17, 19}
	ds := []Word{5, 3}
	wantQ, wantR := DivMod(FromWords(ns), FromWords(ds))

	buf := make([]Word, 8)
	qs, rs := buf[:4], buf[4:6]
	DivModTo(qs, rs, ns, ds)
	if FromWords(qs).Cmp(wantQ) != 0 || FromWords(rs).Cmp(wantR) != 0 {
		t.Errorf("DivModTo into one buffer = %v, %v; want %v, %v", qs, rs, wantQ, wantR)
	}
}

func TestAlias(t *testing.T) {
	t.Parallel()
	buf := make([]Word, 8)
	tests := []struct {
		name string
		x, y []Word
		want bool
	}{
		{"same slice", buf, buf, true},
		{"disjoint halves", buf[:4], buf[4:], false},
		{"adjacent words", buf[3:4], buf[4:5], false},
		{"one word shared", buf[:5], buf[4:], true},
		{"nested", buf[2:3], buf, true},
		{"different arrays", buf, make([]Word, 8), false},
		{"empty", buf[:0], buf, false},
	}
	for _, tt := range tests {
		if got := alias(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: alias = %v, want %v", tt.name, got, tt.want)
		}
		if got := alias(tt.y, tt.x); got != tt.want {
			t.Errorf("%s: alias reversed = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDivModSmallerDividend(t *testing.T) {
	t.Parallel()
	q, r := DivMod(Nat{5}, Nat{0, 1})
	if q != nil || r.Cmp(Nat{5}) != 0 {
		t.Errorf("DivMod(5, B) = %v, %v; want 0, 5", q, r)
	}
}

func TestDivModKnownVector(t *testing.T) {
	t.Parallel()
	q, r := DivMod(FromUint64(1_000_000_000_001), FromUint64(7))
	wantQ, wantR := new(big.Int).QuoRem(big.NewInt(1_000_000_000_001), big.NewInt(7), new(big.Int))
	if ToBig(q).Cmp(wantQ) != 0 || ToBig(r).Cmp(wantR) != 0 {
		t.Errorf("DivMod(1000000000001, 7) = %s, %s; want %s, %s", q, r, wantQ, wantR)
	}
}

func TestThresholds(t *testing.T) {
	t.Parallel()
	if err := DefaultThresholds().Validate(); err != nil {
		t.Fatalf("DefaultThresholds().Validate() = %v", err)
	}
	bad := DefaultThresholds()
	bad.DivDCThreshold = -1
	if bad.Validate() == nil {
		t.Error("Validate accepted a negative threshold")
	}
	bad = DefaultThresholds()
	bad.Algorithm = 9
	if bad.Validate() == nil {
		t.Error("Validate accepted an unknown algorithm")
	}
	for _, a := range []DivAlgorithm{AlgAuto, AlgSchoolbook, AlgDC, AlgBarrett} {
		got, err := ParseDivAlgorithm(a.String())
		if err != nil || got != a {
			t.Errorf("ParseDivAlgorithm(%q) = %v, %v", a.String(), got, err)
		}
	}
	if _, err := ParseDivAlgorithm("newton"); err == nil {
		t.Error("ParseDivAlgorithm accepted an unknown name")
	}

	th := DefaultThresholds()
	tests := []struct {
		nn, dn int
		want   DivAlgorithm
	}{
		{10, 5, AlgSchoolbook},
		{th.DivDCThreshold * 3, th.DivDCThreshold + 1, AlgDC},
		{th.DivMU * 2, th.DivMUPI * 2, AlgDC},
		{th.DivMU * 100, th.DivMUPI * 2, AlgBarrett},
	}
	for _, tt := range tests {
		if got := th.algorithm(tt.nn, tt.dn); got != tt.want {
			t.Errorf("algorithm(%d, %d) = %s, want %s", tt.nn, tt.dn, got, tt.want)
		}
	}
}
