// Package creature holds the validated combat state of a single creature and
// the player heal capability layered on top of it.
package creature

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Attack and defense ratings are bounded to [MinRating, MaxRating].
const (
	MinRating = 1
	MaxRating = 30
)

// ErrOutOfRange is wrapped by every attribute validation failure.
var ErrOutOfRange = errors.New("out of range")

// Kind distinguishes player creatures from monsters.
type Kind int

const (
	KindMonster Kind = iota
	KindPlayer
)

// String returns the lowercase kind label.
func (k Kind) String() string {
	switch k {
	case KindMonster:
		return "monster"
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Damage is an inclusive [Min, Max] range a hit's magnitude is drawn from.
type Damage struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Validate reports whether the range is well formed.
//
// Postcondition: Returns nil iff Min <= Max; otherwise the error wraps ErrOutOfRange.
func (d Damage) Validate() error {
	if d.Min > d.Max {
		return fmt.Errorf("damage min %d is greater than max %d: %w", d.Min, d.Max, ErrOutOfRange)
	}
	return nil
}

// Creature is the combat state shared by players and monsters.
//
// Invariant: 0 <= hp <= maxHP; MinRating <= atk, def <= MaxRating;
// damage.Min <= damage.Max. Once alive is false it never becomes true again.
type Creature struct {
	// ID uniquely identifies this creature for logging and result records.
	ID string
	// Name is a display label; it carries no invariants.
	Name string

	kind   Kind
	hp     int
	maxHP  int
	atk    int
	def    int
	damage Damage
	alive  bool
}

// New validates and constructs a creature at full health.
//
// Precondition: none; all arguments are validated.
// Postcondition: On success HP() == maxHP and Alive() is true. On failure the
// returned creature is nil and the error wraps ErrOutOfRange.
func New(maxHP, atk, def int, dmg Damage) (*Creature, error) {
	if err := validateMaxHP(maxHP); err != nil {
		return nil, err
	}
	if err := validateRating("atk", atk); err != nil {
		return nil, err
	}
	if err := validateRating("def", def); err != nil {
		return nil, err
	}
	if err := dmg.Validate(); err != nil {
		return nil, err
	}
	return &Creature{
		ID:     uuid.NewString(),
		kind:   KindMonster,
		hp:     maxHP,
		maxHP:  maxHP,
		atk:    atk,
		def:    def,
		damage: dmg,
		alive:  true,
	}, nil
}

func validateMaxHP(v int) error {
	if v < 0 {
		return fmt.Errorf("max hp %d cannot be negative: %w", v, ErrOutOfRange)
	}
	return nil
}

// addSat returns a+b, saturating at math.MinInt and math.MaxInt.
func addSat(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	}
	return a + b
}

// subSat returns a-b, saturating at math.MinInt and math.MaxInt.
func subSat(a, b int) int {
	switch {
	case b < 0 && a > math.MaxInt+b:
		return math.MaxInt
	case b > 0 && a < math.MinInt+b:
		return math.MinInt
	}
	return a - b
}

func validateRating(attr string, v int) error {
	if v < MinRating || v > MaxRating {
		return fmt.Errorf("%s %d outside [%d, %d]: %w", attr, v, MinRating, MaxRating, ErrOutOfRange)
	}
	return nil
}

// Kind reports whether this creature is a player or a monster.
func (c *Creature) Kind() Kind { return c.kind }

// HP returns current hit points.
//
// Postcondition: 0 <= HP() <= MaxHP().
func (c *Creature) HP() int { return c.hp }

// MaxHP returns the hit point ceiling.
//
// Postcondition: MaxHP() >= 0.
func (c *Creature) MaxHP() int { return c.maxHP }

// Atk returns the attack rating.
//
// Postcondition: MinRating <= Atk() <= MaxRating.
func (c *Creature) Atk() int { return c.atk }

// Def returns the defense rating.
//
// Postcondition: MinRating <= Def() <= MaxRating.
func (c *Creature) Def() int { return c.def }

// Damage returns the damage range hits are drawn from.
//
// Postcondition: Damage().Min <= Damage().Max.
func (c *Creature) Damage() Damage { return c.damage }

// Alive reports whether HP has never been driven to zero or below.
//
// Postcondition: Once false, Alive() never returns true again.
func (c *Creature) Alive() bool { return c.alive }

// SetHP assigns hit points, clamping instead of failing.
//
// Postcondition: v <= 0 sets HP() == 0 and Alive() == false permanently;
// v > MaxHP() sets HP() == MaxHP(); otherwise HP() == v.
func (c *Creature) SetHP(v int) {
	switch {
	case v <= 0:
		c.hp = 0
		c.alive = false
	case v > c.maxHP:
		c.hp = c.maxHP
	default:
		c.hp = v
	}
}

// SetMaxHP changes the hit point ceiling and resets HP to the new maximum.
// The reset goes through SetHP, so a maximum of zero kills the creature.
//
// Postcondition: On success MaxHP() == v and HP() == v. On failure nothing changes.
func (c *Creature) SetMaxHP(v int) error {
	if err := validateMaxHP(v); err != nil {
		return err
	}
	c.maxHP = v
	c.SetHP(v)
	return nil
}

// SetAtk assigns the attack rating.
//
// Postcondition: Returns an error wrapping ErrOutOfRange and leaves Atk()
// unchanged when v is outside [MinRating, MaxRating].
func (c *Creature) SetAtk(v int) error {
	if err := validateRating("atk", v); err != nil {
		return err
	}
	c.atk = v
	return nil
}

// SetDef assigns the defense rating. Same bounds as SetAtk.
func (c *Creature) SetDef(v int) error {
	if err := validateRating("def", v); err != nil {
		return err
	}
	c.def = v
	return nil
}

// SetDamage assigns the damage range.
//
// Postcondition: Returns an error wrapping ErrOutOfRange and leaves Damage()
// unchanged when d.Min > d.Max.
func (c *Creature) SetDamage(d Damage) error {
	if err := d.Validate(); err != nil {
		return err
	}
	c.damage = d
	return nil
}

// TakeDamage subtracts amount from HP through SetHP. A negative amount heals,
// still clamped at MaxHP.
//
// Postcondition: the subtraction saturates instead of wrapping, so a huge
// negative amount never kills.
func (c *Creature) TakeDamage(amount int) {
	c.SetHP(subSat(c.hp, amount))
}

// HealthDescription returns a visible health state suitable for status output.
//
// Postcondition: Returns a non-empty string.
func (c *Creature) HealthDescription() string {
	if !c.alive {
		return "dead"
	}
	if c.maxHP == 0 {
		return "unharmed"
	}
	pct := float64(c.hp) / float64(c.maxHP)
	switch {
	case pct >= 1.0:
		return "unharmed"
	case pct >= 0.85:
		return "barely scratched"
	case pct >= 0.60:
		return "lightly wounded"
	case pct >= 0.40:
		return "moderately wounded"
	case pct >= 0.20:
		return "heavily wounded"
	default:
		return "critically wounded"
	}
}
