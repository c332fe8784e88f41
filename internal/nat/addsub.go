package nat

// Addition and subtraction over word vectors of possibly unequal length. The
// shorter operand is zero-extended. Every routine makes a single pass from
// the least significant word upwards, so an output that starts at the same
// word as an input never overwrites a word before it has been read. Any
// other overlap between output and inputs is forbidden.

// Add returns x + y.
func Add(x, y Nat) Nat {
	x, y = x.Norm(), y.Norm()
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(Nat, len(x)+1)
	if AddTo(z, x, y) {
		z[len(x)] = 1
	}
	return z.Norm()
}

// AddTo writes x + y into out[:max(len(x), len(y))] and reports the carry out
// of the most significant word. out may start at the same word as x or y.
// It panics if out is shorter than the longer operand.
func AddTo(out, x, y []Word) bool {
	if len(x) < len(y) {
		x, y = y, x
	}
	need(len(out) >= len(x), "nat.AddTo", "output shorter than longer operand")
	c := addVV(out[:len(y)], x[:len(y)], y)
	c = addVW(out[len(y):len(x)], x[len(y):], c)
	return c != 0
}

// AddInPlaceLeft sets x += y and reports the carry. It panics unless
// len(x) >= len(y).
func AddInPlaceLeft(x, y []Word) bool {
	need(len(x) >= len(y), "nat.AddInPlaceLeft", "left operand shorter than right")
	c := addVV(x[:len(y)], x[:len(y)], y)
	return addVW(x[len(y):], x[len(y):], c) != 0
}

// AddInPlaceRight sets y += x and reports the carry. It panics unless
// len(y) >= len(x).
func AddInPlaceRight(x, y []Word) bool {
	need(len(y) >= len(x), "nat.AddInPlaceRight", "right operand shorter than left")
	return AddInPlaceLeft(y, x)
}

// AddInPlaceEither adds x and y into whichever is longer, preferring x on a
// tie. It reports whether the sum was written to y, and the carry.
func AddInPlaceEither(x, y []Word) (right, carry bool) {
	if len(x) >= len(y) {
		return false, AddInPlaceLeft(x, y)
	}
	return true, AddInPlaceLeft(y, x)
}

// AddAssign returns x + y, reusing the storage of x when its capacity allows.
func AddAssign(x Nat, y Nat) Nat {
	x, y = x.Norm(), y.Norm()
	if len(x) < len(y) {
		n := len(x)
		x = append(x, make(Nat, len(y)-n)...)
	}
	if AddInPlaceLeft(x, y) {
		x = append(x, 1)
	}
	return x
}

// AddWordInPlace sets x += w and reports the carry.
func AddWordInPlace(x []Word, w Word) bool {
	return addVW(x, x, w) != 0
}

// Sub returns x - y. When y > x it returns nil and borrow == true: the caller
// decides what a negative result means.
func Sub(x, y Nat) (z Nat, borrow bool) {
	x, y = x.Norm(), y.Norm()
	if len(x) < len(y) {
		return nil, true
	}
	z = make(Nat, len(x))
	if SubTo(z, x, y) {
		return nil, true
	}
	return z.Norm(), false
}

// SubTo writes x - y into out[:len(x)] and reports the borrow out of the most
// significant word. out may start at the same word as x or y. It panics
// unless len(x) >= len(y) and len(out) >= len(x).
func SubTo(out, x, y []Word) bool {
	need(len(x) >= len(y), "nat.SubTo", "minuend shorter than subtrahend")
	need(len(out) >= len(x), "nat.SubTo", "output shorter than minuend")
	c := subVV(out[:len(y)], x[:len(y)], y)
	return subVW(out[len(y):len(x)], x[len(y):], c) != 0
}

// SubInPlaceLeft sets x -= y and reports the borrow. It panics unless
// len(x) >= len(y).
func SubInPlaceLeft(x, y []Word) bool {
	need(len(x) >= len(y), "nat.SubInPlaceLeft", "minuend shorter than subtrahend")
	c := subVV(x[:len(y)], x[:len(y)], y)
	return subVW(x[len(y):], x[len(y):], c) != 0
}

// SubInPlaceRight sets y = x - y and reports the borrow. It panics unless
// len(x) == len(y).
func SubInPlaceRight(x, y []Word) bool {
	need(len(x) == len(y), "nat.SubInPlaceRight", "operand lengths differ")
	return subVV(y, x, y) != 0
}

// SubAssign returns x - y, reusing the storage of x. When y > x it returns
// nil and borrow == true, and the contents of x are unspecified.
func SubAssign(x Nat, y Nat) (z Nat, borrow bool) {
	x, y = x.Norm(), y.Norm()
	if len(x) < len(y) {
		return nil, true
	}
	if SubInPlaceLeft(x, y) {
		return nil, true
	}
	return x.Norm(), false
}

// SubWordInPlace sets x -= w and reports the borrow.
func SubWordInPlace(x []Word, w Word) bool {
	return subVW(x, x, w) != 0
}
