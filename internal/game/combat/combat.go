// Package combat resolves a single clash between an attacker and a defender.
package combat

import "github.com/cory-johannsen/clash/internal/game/creature"

const (
	// HitDieSides is the size of each hit die.
	HitDieSides = 6
	// HitThreshold is the lowest die face that counts as a hit.
	HitThreshold = 5
)

// Source is the subset of dice.Source used by the resolver.
type Source interface {
	Intn(n int) int
}

// Result is the audit record of one clash.
type Result struct {
	AttackerID string
	DefenderID string
	// RollCount is atk - def + 1 and may be zero or negative.
	RollCount int
	// Rolls holds the hit dice actually rolled; empty when RollCount <= 0.
	Rolls []int
	Hit   bool
	// Damage is the value drawn from the attacker's range; zero on a miss.
	Damage int
	// DefenderHP is the defender's hit points after the clash.
	DefenderHP int
	// DefenderDown is true when the defender is no longer alive after the clash.
	DefenderDown bool
}

// Outcome returns "hit" or "miss".
func (r Result) Outcome() string {
	if r.Hit {
		return "hit"
	}
	return "miss"
}

// AttackRollCount returns the number of hit dice the attacker rolls against
// the defender: attacker.Atk() - defender.Def() + 1.
//
// Postcondition: The result may be zero or negative; callers treat that as no dice.
func AttackRollCount(attacker, defender *creature.Creature) int {
	return attacker.Atk() - defender.Def() + 1
}
