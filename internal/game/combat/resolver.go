package combat

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/clash/internal/game/creature"
	"github.com/cory-johannsen/clash/internal/game/dice"
)

// Clash resolves one attack of attacker against defender.
// AttackRollCount d6 are rolled; the attack hits if any die shows HitThreshold or
// more. On a hit one value is drawn uniformly from the attacker's damage range
// and subtracted from the defender through TakeDamage.
//
// Neither creature's liveness is checked; keeping dead creatures out of the
// fight is the caller's job.
//
// Precondition: attacker, defender and src must be non-nil.
// Postcondition: On a miss defender is unchanged. On a hit defender.HP() is
// reduced by Result.Damage, clamped to [0, MaxHP()].
func Clash(attacker, defender *creature.Creature, src Source) Result {
	return resolve(attacker, defender,
		func(n int) dice.RollResult { return dice.Roll(n, HitDieSides, src) },
		func(lo, hi int) int { return dice.Between(lo, hi, src) },
	)
}

func resolve(attacker, defender *creature.Creature, roll func(n int) dice.RollResult, between func(lo, hi int) int) Result {
	count := AttackRollCount(attacker, defender)
	rolls := roll(count)

	res := tally(attacker, defender, count, rolls)
	if !res.Hit {
		res.DefenderHP = defender.HP()
		res.DefenderDown = !defender.Alive()
		return res
	}

	dmg := attacker.Damage()
	res.Damage = between(dmg.Min, dmg.Max)
	defender.TakeDamage(res.Damage)

	res.DefenderHP = defender.HP()
	res.DefenderDown = !defender.Alive()
	return res
}

// tally builds the hit/miss portion of a Result from an already
// rolled pool.
//
// Postcondition: Hit is true iff rolls contains a die >= HitThreshold.
func tally(attacker, defender *creature.Creature, count int, rolls dice.RollResult) Result {
	return Result{
		AttackerID: attacker.ID,
		DefenderID: defender.ID,
		RollCount:  count,
		Rolls:      rolls.Dice,
		Hit:        rolls.AnyAtLeast(HitThreshold),
	}
}

// Resolver resolves clashes with a shared randomness source and logs every
// roll and outcome.
type Resolver struct {
	roller *dice.Roller
	logger *zap.Logger
}

// NewResolver creates a Resolver.
//
// Precondition: src and logger must be non-nil.
func NewResolver(src dice.Source, logger *zap.Logger) *Resolver {
	return &Resolver{
		roller: dice.NewLoggedRoller(src, logger),
		logger: logger,
	}
}

// Clash resolves one attack exactly as the package-level Clash does and logs
// the outcome at info level.
func (r *Resolver) Clash(attacker, defender *creature.Creature) Result {
	res := resolve(attacker, defender,
		func(n int) dice.RollResult { return r.roller.Roll(n, HitDieSides) },
		r.roller.Between,
	)
	r.logger.Info("clash resolved",
		zap.String("attacker", attacker.ID),
		zap.String("attacker_name", attacker.Name),
		zap.String("defender", defender.ID),
		zap.String("defender_name", defender.Name),
		zap.Int("roll_count", res.RollCount),
		zap.Ints("rolls", res.Rolls),
		zap.String("outcome", res.Outcome()),
		zap.Int("damage", res.Damage),
		zap.Int("defender_hp", res.DefenderHP),
		zap.Bool("defender_down", res.DefenderDown),
	)
	return res
}
