// Candidate operand sizes and crossover selection.

package calibration

import "github.com/agbru/natcalc/internal/nat"

// Crossover names, matching the flag names of the thresholds they set.
const (
	CrossoverDC             = "dc"
	CrossoverBarrett        = "barrett"
	CrossoverBarrettBalance = "barrett-balance"
	CrossoverInvNewton      = "inv-newton"
	CrossoverKaratsuba      = "karatsuba"
)

// scaled doubles word counts on 32-bit builds so that candidates cover the
// same bit lengths on either word width.
func scaled(sizes ...int) []int {
	if nat.W == 32 {
		for i := range sizes {
			sizes[i] *= 2
		}
	}
	return sizes
}

// GenerateDCCandidates returns the divisor sizes at which schoolbook and
// divide-and-conquer division are compared.
func GenerateDCCandidates(quick bool) []int {
	if quick {
		return scaled(16, 32, 64)
	}
	return scaled(16, 24, 32, 48, 64, 96, 128, 192)
}

// GenerateBarrettCandidates returns the divisor sizes of balanced (2n by n)
// divisions at which divide-and-conquer and Barrett division are compared.
func GenerateBarrettCandidates(quick bool) []int {
	if quick {
		return scaled(128, 256)
	}
	return scaled(256, 512, 1024, 2048, 4096)
}

// GenerateBarrettBalanceCandidates returns the divisor sizes of unbalanced
// (8n by n) divisions at which the two are compared.
func GenerateBarrettBalanceCandidates(quick bool) []int {
	if quick {
		return scaled(32, 64)
	}
	return scaled(32, 48, 64, 96, 128, 192, 256)
}

// GenerateInvNewtonCandidates returns the divisor sizes at which the exact
// inverse and Newton doubling are compared.
func GenerateInvNewtonCandidates(quick bool) []int {
	if quick {
		return scaled(64, 128)
	}
	return scaled(128, 256, 512, 1024, 2048)
}

// GenerateKaratsubaCandidates returns the factor sizes at which schoolbook
// and Karatsuba multiplication are compared.
func GenerateKaratsubaCandidates(quick bool) []int {
	if quick {
		return scaled(8, 16, 32)
	}
	return scaled(8, 12, 16, 24, 32, 48, 64)
}

// pickCrossover returns the smallest measured size from which the candidate
// algorithm wins at every larger measured size. When it never wins, the
// crossover lies beyond the measurements: fallback, but at least twice the
// largest size.
func pickCrossover(ms []Measurement, fallback int) int {
	if len(ms) == 0 {
		return fallback
	}
	best := 0
	for i := len(ms) - 1; i >= 0 && ms[i].CandidateWins(); i-- {
		best = ms[i].Words
	}
	if best == 0 {
		return max(fallback, 2*ms[len(ms)-1].Words)
	}
	return best
}
