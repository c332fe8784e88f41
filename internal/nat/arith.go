// This file provides the word-vector primitives that every other routine in
// the package is built from. None of them allocate or check lengths beyond
// what the Go runtime enforces; exported wrappers validate their contracts.

package nat

import "unsafe"

// _M is the largest Word value, B-1.
const _M = ^Word(0)

// ─────────────────────────────────────────────────────────────────────────────
// Addition and Subtraction
// ─────────────────────────────────────────────────────────────────────────────

// addVV sets z = x + y for len(x) == len(y) == len(z) and returns the carry.
// z may be x or y: each word is read before the same index is written.
func addVV(z, x, y []Word) (c Word) {
	x = x[:len(z)]
	y = y[:len(z)]
	for i := range z {
		z[i], c = addWW(x[i], y[i], c)
	}
	return c
}

// subVV sets z = x - y for len(x) == len(y) == len(z) and returns the borrow.
func subVV(z, x, y []Word) (c Word) {
	x = x[:len(z)]
	y = y[:len(z)]
	for i := range z {
		z[i], c = subWW(x[i], y[i], c)
	}
	return c
}

// addVW sets z = x + y and returns the carry. The loop stops copying early
// once the carry is absorbed and z is x.
func addVW(z, x []Word, y Word) (c Word) {
	x = x[:len(z)]
	c = y
	for i := range z {
		if c == 0 {
			if !sameStart(z, x) {
				copy(z[i:], x[i:])
			}
			return 0
		}
		z[i], c = addWW(x[i], c, 0)
	}
	return c
}

// subVW sets z = x - y and returns the borrow.
func subVW(z, x []Word, y Word) (c Word) {
	x = x[:len(z)]
	c = y
	for i := range z {
		if c == 0 {
			if !sameStart(z, x) {
				copy(z[i:], x[i:])
			}
			return 0
		}
		z[i], c = subWW(x[i], c, 0)
	}
	return c
}

// sameStart reports whether two non-empty slices start at the same element.
func sameStart(x, y []Word) bool {
	return len(x) > 0 && len(y) > 0 && &x[0] == &y[0]
}

// alias reports whether the words of x and y overlap in memory. Disjoint
// sub-slices of one array do not alias.
func alias(x, y []Word) bool {
	if len(x) == 0 || len(y) == 0 {
		return false
	}
	x0, x1 := uintptr(unsafe.Pointer(&x[0])), uintptr(unsafe.Pointer(&x[len(x)-1]))
	y0, y1 := uintptr(unsafe.Pointer(&y[0])), uintptr(unsafe.Pointer(&y[len(y)-1]))
	return x0 <= y1 && y0 <= x1
}

// ─────────────────────────────────────────────────────────────────────────────
// Multiply-Accumulate
// ─────────────────────────────────────────────────────────────────────────────

// mulAddVWW sets z = x*y + r and returns the high word.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	x = x[:len(z)]
	c = r
	for i := range z {
		hi, lo := mulWW(x[i], y)
		var cc Word
		lo, cc = addWW(lo, c, 0)
		z[i] = lo
		c = hi + cc
	}
	return c
}

// addMulVVW sets z += x*y and returns the carry word.
func addMulVVW(z, x []Word, y Word) (c Word) {
	x = x[:len(z)]
	for i := range z {
		hi, lo := mulWW(x[i], y)
		var cc Word
		lo, cc = addWW(lo, c, 0)
		hi += cc
		z[i], cc = addWW(z[i], lo, 0)
		c = hi + cc
	}
	return c
}

// subMulVVW sets z -= x*y and returns the borrow word.
func subMulVVW(z, x []Word, y Word) (c Word) {
	x = x[:len(z)]
	for i := range z {
		hi, lo := mulWW(x[i], y)
		var cc Word
		lo, cc = addWW(lo, c, 0)
		hi += cc
		z[i], cc = subWW(z[i], lo, 0)
		c = hi + cc
	}
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Shifts and Comparison
// ─────────────────────────────────────────────────────────────────────────────

// shlVU sets z = x << s for 0 <= s < W and returns the bits shifted out of
// the top word. Words are processed high to low, so z may be x.
func shlVU(z, x []Word, s uint) (c Word) {
	if len(z) == 0 {
		return 0
	}
	x = x[:len(z)]
	if s == 0 {
		copy(z, x)
		return 0
	}
	sr := W - s
	n := len(z)
	c = x[n-1] >> sr
	for i := n - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>sr
	}
	z[0] = x[0] << s
	return c
}

// shrVU sets z = x >> s for 0 <= s < W and returns the bits shifted out of
// the bottom word, left-aligned. Words are processed low to high, so z may
// be x.
func shrVU(z, x []Word, s uint) (c Word) {
	if len(z) == 0 {
		return 0
	}
	x = x[:len(z)]
	if s == 0 {
		copy(z, x)
		return 0
	}
	sr := W - s
	n := len(z)
	c = x[0] << sr
	for i := 0; i < n-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<sr
	}
	z[n-1] = x[n-1] >> s
	return c
}

// cmpVV compares equal-length vectors from the most significant word down.
func cmpVV(x, y []Word) int {
	y = y[:len(x)]
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// isZeroVec reports whether every word of x is zero.
func isZeroVec(x []Word) bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}
