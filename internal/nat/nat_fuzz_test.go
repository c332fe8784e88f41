package nat

import (
	"math/big"
	"testing"
)

// bytesToWords packs little-endian bytes into words.
func bytesToWords(b []byte) []Word {
	ws := make([]Word, (len(b)+wordBytes-1)/wordBytes)
	for i, c := range b {
		ws[i/wordBytes] |= Word(c) << (8 * (i % wordBytes))
	}
	return ws
}

// FuzzDivMod checks DivMod with both default and small thresholds against
// math/big on arbitrary byte-derived operands.
func FuzzDivMod(f *testing.F) {
	f.Add([]byte{1}, []byte{1})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 1}, []byte{3})
	f.Add(make([]byte, 200), []byte{0, 0, 0, 0, 0, 0, 0, 0x80, 1})
	f.Add([]byte("the quick brown fox jumps over the lazy dog, repeatedly and at length"), []byte("lazy dog!"))

	f.Fuzz(func(t *testing.T, nb, db []byte) {
		if len(nb) > 4096 || len(db) > 2048 {
			return
		}
		n, d := FromWords(bytesToWords(nb)), FromWords(bytesToWords(db))
		if d.IsZero() {
			return
		}
		wantQ, wantR := new(big.Int).QuoRem(ToBig(n), ToBig(d), new(big.Int))
		for _, th := range []Thresholds{DefaultThresholds(), smallThresholds()} {
			q, r := th.DivMod(n, d)
			if ToBig(q).Cmp(wantQ) != 0 || ToBig(r).Cmp(wantR) != 0 {
				t.Fatalf("DivMod(%s, %s) = %s, %s; want %s, %s", n, d, q, r, wantQ, wantR)
			}
		}
	})
}

// FuzzAddSub checks the add/sub round trip against math/big.
func FuzzAddSub(f *testing.F) {
	f.Add([]byte{0xff, 0xff}, []byte{1})
	f.Add([]byte{}, []byte{7})

	f.Fuzz(func(t *testing.T, xb, yb []byte) {
		x, y := FromWords(bytesToWords(xb)), FromWords(bytesToWords(yb))
		sum := Add(x, y)
		if want := new(big.Int).Add(ToBig(x), ToBig(y)); ToBig(sum).Cmp(want) != 0 {
			t.Fatalf("Add(%s, %s) = %s, want %s", x, y, sum, want)
		}
		if back, borrow := Sub(sum, y); borrow || back.Cmp(x) != 0 {
			t.Fatalf("Sub(Add(x, y), y) = %s, %v; want %s", back, borrow, x)
		}
	})
}
