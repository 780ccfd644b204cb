package creature

// Heal budget for a freshly constructed player.
const (
	StartingHeals = 4
	HealFraction  = 0.3
)

// Player is a creature with a bounded heal budget.
type Player struct {
	*Creature
	healsLeft int
}

// NewPlayer validates and constructs a player at full health with
// StartingHeals heals available.
//
// Postcondition: same as New; on success Kind() == KindPlayer.
func NewPlayer(maxHP, atk, def int, dmg Damage) (*Player, error) {
	c, err := New(maxHP, atk, def, dmg)
	if err != nil {
		return nil, err
	}
	c.kind = KindPlayer
	return &Player{Creature: c, healsLeft: StartingHeals}, nil
}

// HealsLeft returns the remaining heal budget.
func (p *Player) HealsLeft() int { return p.healsLeft }

// HealAmount is the hit points a single RestoreHP adds: MaxHP * HealFraction,
// truncated toward zero.
func (p *Player) HealAmount() int {
	return int(float64(p.maxHP) * HealFraction)
}

// RestoreHP spends one heal to raise HP by HealAmount, clamped at MaxHP.
// Healing does not revive a dead player.
//
// Postcondition: Returns false and changes nothing when HealsLeft() == 0;
// otherwise HealsLeft() decreases by one and true is returned.
func (p *Player) RestoreHP() bool {
	if p.healsLeft <= 0 {
		return false
	}
	p.SetHP(addSat(p.hp, p.HealAmount()))
	p.healsLeft--
	return true
}

// Monster is a creature with no state beyond the base model.
type Monster struct {
	*Creature
}

// NewMonster validates and constructs a monster at full health.
//
// Postcondition: same as New; on success Kind() == KindMonster.
func NewMonster(maxHP, atk, def int, dmg Damage) (*Monster, error) {
	c, err := New(maxHP, atk, def, dmg)
	if err != nil {
		return nil, err
	}
	return &Monster{Creature: c}, nil
}
