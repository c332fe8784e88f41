//go:build !word32

package nat

import "math/bits"

// Word is a single base-B digit of a Nat. The default build uses 64-bit
// words; building with the word32 tag selects 32-bit words.
type Word = uint64

// W is the width of a Word in bits.
const W = 64

// Division thresholds tuned for 64-bit words, in words.
const (
	defaultDivDCThreshold     = 85
	defaultDivMUThreshold     = 2094
	defaultDivMUPIThreshold   = 74
	defaultInvNewtonThreshold = 789
	defaultKaratsubaThreshold = 32
)

func mulWW(x, y Word) (hi, lo Word)        { return bits.Mul64(x, y) }
func addWW(x, y, c Word) (sum, carry Word) { return bits.Add64(x, y, c) }
func subWW(x, y, b Word) (diff, bout Word) { return bits.Sub64(x, y, b) }
func nlz(x Word) uint                      { return uint(bits.LeadingZeros64(x)) }
func wordLen(x Word) int                   { return bits.Len64(x) }

// InvertLimb returns floor((B²-1)/d) - B for a normalized word d.
func InvertLimb(d Word) Word { return InvertLimb64(d) }
