package nat

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	apperrors "github.com/agbru/natcalc/internal/errors"
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// randWords returns n random words. When topSet is true the top word has its
// high bit set, which makes the value a normalized divisor.
func randWords(r *rand.Rand, n int, topSet bool) []Word {
	ws := make([]Word, n)
	for i := range ws {
		ws[i] = Word(r.Uint64())
	}
	if n > 0 {
		if topSet {
			ws[n-1] |= 1 << (W - 1)
		} else if ws[n-1] == 0 {
			ws[n-1] = 1
		}
	}
	return ws
}

// sparseWords returns n words drawn from a small set of extreme values, so
// carries and correction steps are exercised more often than with uniform
// words.
func sparseWords(r *rand.Rand, n int) []Word {
	choices := []Word{0, 1, 2, _M, _M - 1, 1 << (W - 1), 1<<(W-1) - 1}
	ws := make([]Word, n)
	for i := range ws {
		ws[i] = choices[r.Intn(len(choices))]
	}
	if n > 0 && ws[n-1] == 0 {
		ws[n-1] = _M
	}
	return ws
}

func toBig(ws []Word) *big.Int {
	return ToBig(Nat(ws))
}

// mustPanicPrecondition fails the test unless f panics with a
// PreconditionError naming op.
func mustPanicPrecondition(t *testing.T, op string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("%s: expected panic, got none", op)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("%s: panic value %v is not an error", op, r)
		}
		var pe apperrors.PreconditionError
		if !errors.As(err, &pe) {
			t.Fatalf("%s: panic value %T is not a PreconditionError", op, r)
		}
		if pe.Op != op {
			t.Errorf("PreconditionError.Op = %q, want %q", pe.Op, op)
		}
	}()
	f()
}

// smallThresholds forces every algorithm onto small operands.
func smallThresholds() Thresholds {
	return Thresholds{
		DivDCThreshold: 6,
		DivMU:          12,
		DivMUPI:        6,
		InvNewton:      3,
		Karatsuba:      4,
	}
}
