package dice

import (
	"fmt"
	"math"
	"math/bits"
)

// Roll rolls count dice with the given number of sides using src.
// A count of zero or less rolls nothing and yields an empty result.
//
// Precondition: sides >= 2; src must be non-nil.
// Postcondition: len(result.Dice) == max(count, 0); every die is in [1, sides].
func Roll(count, sides int, src Source) RollResult {
	if count < 0 {
		count = 0
	}
	rolled := make([]int, count)
	for i := range rolled {
		rolled[i] = src.Intn(sides) + 1
	}
	return RollResult{
		Expression: fmt.Sprintf("%dd%d", count, sides),
		Dice:       rolled,
	}
}

// Between draws a uniform integer in [lo, hi] inclusive.
// When lo == hi no randomness is consumed. Ranges wider than math.MaxInt are
// drawn from 16-bit chunks instead of a single Intn call.
//
// Precondition: lo <= hi; src must be non-nil.
// Postcondition: lo <= result <= hi.
func Between(lo, hi int, src Source) int {
	if lo > hi {
		panic(fmt.Sprintf("dice: Between called with lo %d > hi %d", lo, hi))
	}
	if lo == hi {
		return lo
	}
	span := uint64(hi) - uint64(lo)
	if span < uint64(math.MaxInt) {
		return lo + src.Intn(int(span)+1)
	}
	return int(uint64(lo) + wideDraw(span, src))
}

// wideDrawAttempts bounds rejection sampling so a fixed Source cannot spin forever.
const wideDrawAttempts = 64

// wideDraw returns a value in [0, span] for spans Intn cannot express.
func wideDraw(span uint64, src Source) uint64 {
	var r uint64
	for i := 0; i < wideDrawAttempts; i++ {
		r = 0
		for chunk := 0; chunk < bits.UintSize/16; chunk++ {
			r = r<<16 | uint64(src.Intn(1<<16))
		}
		if span == math.MaxUint64 || r <= span {
			return r
		}
	}
	return r % (span + 1)
}
