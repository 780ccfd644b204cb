package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged dice rolling.
// Every roll and draw is logged at debug level.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Roll rolls count dice of the given sides and logs the result.
//
// Postcondition: identical to Roll.
func (r *Roller) Roll(count, sides int) RollResult {
	result := Roll(count, sides, r.src)
	r.logger.Debug("dice roll",
		zap.String("expression", result.Expression),
		zap.Ints("dice", result.Dice),
		zap.Int("total", result.Total()),
	)
	return result
}

// Between draws a uniform value in [lo, hi] and logs it.
//
// Postcondition: identical to Between.
func (r *Roller) Between(lo, hi int) int {
	v := Between(lo, hi, r.src)
	r.logger.Debug("dice draw",
		zap.Int("lo", lo),
		zap.Int("hi", hi),
		zap.Int("value", v),
	)
	return v
}
