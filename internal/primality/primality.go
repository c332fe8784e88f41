// Package primality decides whether machine-word integers are prime.
//
// Every verdict for a 32- or 64-bit input is exact: inputs are screened by
// trial division, small values are looked up in a sieved table, and the
// rest go through strong probable prime tests whose base sets have no
// pseudoprimes below the ranges they serve. 64-bit inputs from 1_050_535_501
// up use the Baillie–PSW test, which has no known counterexample below 2^64.
//
// IsProbablePrime extends the same test to multi-word values; above 64 bits
// its verdict is probabilistic in the usual Baillie–PSW sense.
package primality

import (
	"slices"

	"github.com/agbru/natcalc/internal/nat"
)

const (
	// smallCutoff bounds the sieved lookup table.
	smallCutoff = 4096
	// bpswCutoff is the first value handled by Baillie–PSW rather than by
	// hashed single-word bases.
	bpswCutoff = 1_050_535_501
)

// smallPrimes holds every prime below smallCutoff in ascending order.
var smallPrimes = sieve(smallCutoff)

// Trial divisors applied to every input from 121 up, and to inputs above
// one million respectively.
var (
	trialPrimes  = []uint32{11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53}
	trialPrimes2 = []uint32{59, 61, 67, 71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139, 149}
)

// sieve returns the primes below n.
func sieve(n int) []uint32 {
	composite := make([]bool, n)
	var primes []uint32
	for i := 2; i < n; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, uint32(i))
		for j := i * i; j < n; j += i {
			composite[j] = true
		}
	}
	return primes
}

func isSmallPrime(n uint32) bool {
	_, found := slices.BinarySearch(smallPrimes, n)
	return found
}

// screen runs the checks shared by every width. decided reports whether
// prime is already the verdict; otherwise n is odd, at least 3481 and free
// of the trial divisors.
func screen(n uint64) (prime, decided bool) {
	if n < 11 {
		return n == 2 || n == 3 || n == 5 || n == 7, true
	}
	if n%2 == 0 || n%3 == 0 || n%5 == 0 || n%7 == 0 {
		return false, true
	}
	if n < 121 {
		return true, true
	}
	for _, p := range trialPrimes {
		if n%uint64(p) == 0 {
			return false, true
		}
	}
	if n < 59*59 {
		return true, true
	}
	if n > 1_000_000 {
		for _, p := range trialPrimes2 {
			if n%uint64(p) == 0 {
				return false, true
			}
		}
	}
	return false, false
}

// IsPrime64 reports whether n is prime.
func IsPrime64(n uint64) bool {
	if prime, decided := screen(n); decided {
		return prime
	}
	switch {
	case n < smallCutoff:
		return isSmallPrime(uint32(n))
	case n >= bpswCutoff:
		return bpsw(n)
	}
	d := oddPart(n - 1)
	inv := 1 / float64(n)
	if n < 341_531 {
		return sprpFloat(n, inv, 9_345_883_071_009_581_737, d)
	}
	return sprpFloat(n, inv, 336_781_006_125, d) &&
		sprpFloat(n, inv, 9_639_812_373_923_155, d)
}

// IsPrime32 reports whether n is prime using only 32-bit arithmetic.
func IsPrime32(n uint32) bool {
	if prime, decided := screen(uint64(n)); decided {
		return prime
	}
	if n < smallCutoff {
		return isSmallPrime(n)
	}
	d := uint32(oddPart(uint64(n - 1)))
	inv := precompute32(n)
	if n < 9_080_191 {
		return sprp32(n, inv, 31, d) && sprp32(n, inv, 73, d)
	}
	return sprp32(n, inv, 2, d) && sprp32(n, inv, 7, d) && sprp32(n, inv, 61, d)
}

// IsPrime reports whether the single word n is prime, using the routine
// matching the build's word size.
func IsPrime(n nat.Word) bool {
	if nat.W == 32 {
		return IsPrime32(uint32(n))
	}
	return IsPrime64(uint64(n))
}
