// This file pools scratch word slices for division and inversion so that
// repeated calls on large operands do not churn the garbage collector.

package nat

import (
	"math/bits"
	"sync"
)

// ─────────────────────────────────────────────────────────────────────────────
// Scratch Pools
// ─────────────────────────────────────────────────────────────────────────────

// scratchSizes are the pool size classes, powers of 4 from 64 to 1M words.
var scratchSizes = [...]int{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576}

var scratchPools [len(scratchSizes)]sync.Pool

func init() {
	for i, size := range scratchSizes {
		scratchPools[i].New = func() any { return make([]Word, size) }
	}
}

// scratchPoolIndex returns the size class holding size words, or -1 when
// size is too large to pool. Class i holds 4^(i+3) words.
func scratchPoolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > scratchSizes[len(scratchSizes)-1] {
		return -1
	}
	return max((bits.Len(uint(size-1))-5)/2, 0)
}

// getWords returns a zeroed slice of size words. Release it with putWords.
func getWords(size int) []Word {
	idx := scratchPoolIndex(size)
	if idx < 0 {
		return make([]Word, size)
	}
	s := scratchPools[idx].Get().([]Word)
	clear(s)
	return s[:size]
}

// putWords returns a slice obtained from getWords to its pool. Slices whose
// capacity is not a size class are left to the garbage collector.
func putWords(s []Word) {
	if s == nil {
		return
	}
	c := cap(s)
	idx := scratchPoolIndex(c)
	if idx >= 0 && scratchSizes[idx] == c {
		scratchPools[idx].Put(s[:c])
	}
}

// PreWarm seeds the scratch pools with count buffers large enough for
// dividing operands of up to words words.
func PreWarm(words, count int) {
	idx := scratchPoolIndex(DivScratchLen(2*words, words))
	if idx < 0 {
		return
	}
	for range count {
		scratchPools[idx].Put(make([]Word, scratchSizes[idx]))
	}
}
