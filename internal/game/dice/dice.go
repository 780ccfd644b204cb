// Package dice provides the randomness abstraction and roll-result types
// used by the clash resolver.
package dice

import "fmt"

// RollResult holds the audit trail for a single pool of dice.
//
// Postcondition: Total() == sum(Dice) + Modifier.
type RollResult struct {
	Expression string // e.g. "6d6"
	Dice       []int  // individual die results
	Modifier   int    // flat modifier (may be negative)
}

// Total returns the sum of all die results plus the modifier.
func (r RollResult) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// AnyAtLeast reports whether at least one die shows threshold or higher.
//
// Postcondition: Returns false when Dice is empty.
func (r RollResult) AnyAtLeast(threshold int) bool {
	for _, d := range r.Dice {
		if d >= threshold {
			return true
		}
	}
	return false
}

// String returns a human-readable audit string in the format:
//
//	"3d6 → [4 5 1] +0 = 10"
//
// Precondition: r.Expression is non-empty.
func (r RollResult) String() string {
	if r.Expression == "" {
		panic("dice: RollResult.String() precondition violated: Expression must be non-empty")
	}
	return fmt.Sprintf("%s → %v %+d = %d", r.Expression, r.Dice, r.Modifier, r.Total())
}

// Source is the randomness provider for dice rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// SourceFunc adapts a plain function into a Source.
type SourceFunc func(n int) int

// Intn calls f(n).
func (f SourceFunc) Intn(n int) int { return f(n) }
