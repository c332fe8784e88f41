package nat

import (
	"math/big"
	"slices"
	"testing"
)

func TestAddSubAgainstBig(t *testing.T) {
	t.Parallel()
	r := newRand(10)
	for i := 0; i < 300; i++ {
		var x, y []Word
		if i%2 == 0 {
			x, y = randWords(r, r.Intn(8), false), randWords(r, r.Intn(8), false)
		} else {
			x, y = sparseWords(r, r.Intn(8)), sparseWords(r, r.Intn(8))
		}
		bx, by := toBig(x), toBig(y)

		sum := Add(x, y)
		if want := new(big.Int).Add(bx, by); ToBig(sum).Cmp(want) != 0 {
			t.Fatalf("Add(%s, %s) = %s, want %s", bx, by, sum, want)
		}
		if len(sum) > 0 && sum[len(sum)-1] == 0 {
			t.Fatalf("Add result %v is not canonical", sum)
		}

		diff, borrow := Sub(x, y)
		if bx.Cmp(by) < 0 {
			if !borrow || diff != nil {
				t.Fatalf("Sub(%s, %s) = %v, %v; want borrow", bx, by, diff, borrow)
			}
		} else if want := new(big.Int).Sub(bx, by); borrow || ToBig(diff).Cmp(want) != 0 {
			t.Fatalf("Sub(%s, %s) = %s, %v; want %s", bx, by, diff, borrow, want)
		}

		if back, b := Sub(sum, y); b || back.Cmp(Nat(x)) != 0 {
			t.Fatalf("(x + y) - y = %v, want %v", back, x)
		}
	}
}

func TestAddToCarry(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		x, y      []Word
		want      []Word
		wantCarry bool
	}{
		{"no carry", []Word{1, 2}, []Word{3}, []Word{4, 2}, false},
		{"ripple", []Word{_M, _M}, []Word{1}, []Word{0, 0}, true},
		{"shorter first", []Word{1}, []Word{_M, 5}, []Word{0, 6}, false},
		{"both full", []Word{_M}, []Word{_M}, []Word{_M - 1}, true},
		{"empty", nil, nil, []Word{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := make([]Word, len(tt.want))
			carry := AddTo(out, tt.x, tt.y)
			if carry != tt.wantCarry || !slices.Equal(out, tt.want) {
				t.Errorf("AddTo = %v, %v; want %v, %v", out, carry, tt.want, tt.wantCarry)
			}
		})
	}
	mustPanicPrecondition(t, "nat.AddTo", func() { AddTo(make([]Word, 1), []Word{1, 2}, []Word{1}) })
}

func TestAddToAliasing(t *testing.T) {
	t.Parallel()
	x := []Word{_M, 1, 2}
	y := []Word{1, _M}
	want := toBig(x)
	want.Add(want, toBig(y))

	// out is exactly x.
	carry := AddTo(x, x, y)
	got := toBig(append(slices.Clone(x), boolWord(carry)))
	if got.Cmp(want) != 0 {
		t.Errorf("AddTo(x, x, y) = %s, want %s", got, want)
	}

	// out is exactly the shorter operand, grown into its capacity.
	x2 := []Word{_M, 1, 2}
	yBuf := make([]Word, 3)
	copy(yBuf, []Word{1, _M})
	carry = AddTo(yBuf, x2, yBuf[:2])
	got = toBig(append(slices.Clone(yBuf), boolWord(carry)))
	if got.Cmp(want) != 0 {
		t.Errorf("AddTo(y, x, y) = %s, want %s", got, want)
	}
}

func boolWord(b bool) Word {
	if b {
		return 1
	}
	return 0
}

func TestInPlaceAdds(t *testing.T) {
	t.Parallel()
	x := []Word{_M, _M, 3}
	y := []Word{1}
	if carry := AddInPlaceLeft(x, y); carry || !slices.Equal(x, []Word{0, 0, 4}) {
		t.Errorf("AddInPlaceLeft = %v, %v", x, carry)
	}

	short := []Word{2}
	long := []Word{_M, 0}
	if carry := AddInPlaceRight(short, long); carry || !slices.Equal(long, []Word{1, 1}) {
		t.Errorf("AddInPlaceRight = %v, %v", long, carry)
	}

	a := []Word{1}
	b := []Word{2, 3}
	right, carry := AddInPlaceEither(a, b)
	if !right || carry || !slices.Equal(b, []Word{3, 3}) {
		t.Errorf("AddInPlaceEither into longer right = %v, %v, %v", b, right, carry)
	}
	a = []Word{_M, _M}
	b = []Word{1, 0}
	right, carry = AddInPlaceEither(a, b)
	if right || !carry || !slices.Equal(a, []Word{0, 0}) {
		t.Errorf("AddInPlaceEither tie = %v, %v, %v", a, right, carry)
	}

	mustPanicPrecondition(t, "nat.AddInPlaceLeft", func() { AddInPlaceLeft([]Word{1}, []Word{1, 1}) })
	mustPanicPrecondition(t, "nat.AddInPlaceRight", func() { AddInPlaceRight([]Word{1, 1}, []Word{1}) })
}

func TestInPlaceSubs(t *testing.T) {
	t.Parallel()
	x := []Word{0, 0, 1}
	if borrow := SubInPlaceLeft(x, []Word{1}); borrow || !slices.Equal(x, []Word{_M, _M, 0}) {
		t.Errorf("SubInPlaceLeft = %v, %v", x, borrow)
	}

	y := []Word{5, 1}
	if borrow := SubInPlaceRight([]Word{7, 1}, y); borrow || !slices.Equal(y, []Word{2, 0}) {
		t.Errorf("SubInPlaceRight = %v, %v", y, borrow)
	}
	y = []Word{0, 2}
	if borrow := SubInPlaceRight([]Word{0, 1}, y); !borrow {
		t.Errorf("SubInPlaceRight(1·B, 2·B) reported no borrow")
	}

	out := make([]Word, 2)
	if borrow := SubTo(out, []Word{0, 1}, []Word{1}); borrow || !slices.Equal(out, []Word{_M, 0}) {
		t.Errorf("SubTo = %v, %v", out, borrow)
	}

	mustPanicPrecondition(t, "nat.SubInPlaceRight", func() { SubInPlaceRight([]Word{1, 1}, []Word{1}) })
	mustPanicPrecondition(t, "nat.SubTo", func() { SubTo(make([]Word, 2), []Word{1}, []Word{1, 1}) })
	mustPanicPrecondition(t, "nat.SubInPlaceLeft", func() { SubInPlaceLeft([]Word{1}, []Word{1, 1}) })
}

func TestWordInPlace(t *testing.T) {
	t.Parallel()
	x := []Word{_M, 1}
	if AddWordInPlace(x, 1) || !slices.Equal(x, []Word{0, 2}) {
		t.Errorf("AddWordInPlace = %v", x)
	}
	if SubWordInPlace(x, 1) || !slices.Equal(x, []Word{_M, 1}) {
		t.Errorf("SubWordInPlace = %v", x)
	}
	if !SubWordInPlace([]Word{0}, 1) {
		t.Error("SubWordInPlace(0, 1) reported no borrow")
	}
	if !AddWordInPlace([]Word{_M}, 1) {
		t.Error("AddWordInPlace(B-1, 1) reported no carry")
	}
}

func TestAssignVariants(t *testing.T) {
	t.Parallel()
	x := make(Nat, 1, 4)
	x[0] = _M
	z := AddAssign(x, Nat{1, 1})
	if z.Cmp(Nat{0, 2}) != 0 {
		t.Errorf("AddAssign = %v", z)
	}
	z, borrow := SubAssign(z, Nat{1})
	if borrow || z.Cmp(Nat{_M, 1}) != 0 {
		t.Errorf("SubAssign = %v, %v", z, borrow)
	}
	if _, borrow := SubAssign(Nat{1}, Nat{2}); !borrow {
		t.Error("SubAssign(1, 2) reported no borrow")
	}
}
