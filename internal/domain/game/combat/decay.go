package combat

// ApplyEndOfTurn applies burn and poison chip damage to a living combatant
// and returns the HP it lost
func ApplyEndOfTurn(c *Combatant) int {
	if c == nil || c.IsFainted() {
		return 0
	}

	maxHP := c.stats.MaxHP
	var damage int
	switch c.Ailment() {
	case AilmentBurn, AilmentPoison:
		damage = maxHP / 8
	case AilmentBadPoison:
		damage = maxHP * c.badPoisonTick() / 16
	default:
		return 0
	}
	if damage < 1 {
		damage = 1
	}

	return c.takeDamage(damage)
}

func decayNarrative(name string, a Ailment) string {
	switch a {
	case AilmentBurn:
		return name + " is hurt by its burn!"
	case AilmentPoison, AilmentBadPoison:
		return name + " is hurt by poison!"
	}
	return ""
}
