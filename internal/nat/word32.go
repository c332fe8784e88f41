//go:build word32

package nat

import "math/bits"

// Word is a single base-B digit of a Nat. The default build uses 64-bit
// words; building with the word32 tag selects 32-bit words.
type Word = uint32

// W is the width of a Word in bits.
const W = 32

// Division thresholds tuned for 32-bit words, in words.
const (
	defaultDivDCThreshold     = 7
	defaultDivMUThreshold     = 2243
	defaultDivMUPIThreshold   = 74
	defaultInvNewtonThreshold = 618
	defaultKaratsubaThreshold = 48
)

func mulWW(x, y Word) (hi, lo Word)        { return bits.Mul32(x, y) }
func addWW(x, y, c Word) (sum, carry Word) { return bits.Add32(x, y, c) }
func subWW(x, y, b Word) (diff, bout Word) { return bits.Sub32(x, y, b) }
func nlz(x Word) uint                      { return uint(bits.LeadingZeros32(x)) }
func wordLen(x Word) int                   { return bits.Len32(x) }

// InvertLimb returns floor((B²-1)/d) - B for a normalized word d.
func InvertLimb(d Word) Word { return InvertLimb32(d) }
