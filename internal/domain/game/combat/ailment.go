package combat

// Ailment is the single status condition a combatant can carry
type Ailment string

const (
	AilmentNone      Ailment = "None"
	AilmentBurn      Ailment = "Burn"
	AilmentPoison    Ailment = "Poison"
	AilmentBadPoison Ailment = "BadPoison"
	AilmentParalysis Ailment = "Paralysis"
	AilmentSleep     Ailment = "Sleep"
	AilmentFreeze    Ailment = "Freeze"
)

// maxBadPoison caps the bad-poison severity counter
const maxBadPoison = 15

// Ailment transitions. These are the only writers of Combatant.ailment so the
// one-ailment-at-a-time rule holds everywhere: None -> X via Inflict or
// PutToSleep, X -> None via Cure, wake or thaw.

// Ailment returns the current ailment
func (c *Combatant) Ailment() Ailment {
	if c.ailment == "" {
		return AilmentNone
	}
	return c.ailment
}

// HasAilment reports whether any ailment is active
func (c *Combatant) HasAilment() bool {
	return c.Ailment() != AilmentNone
}

// SleepTurns returns how many more blocked turns sleep has left
func (c *Combatant) SleepTurns() int {
	return c.sleepTurns
}

// BadPoisonSeverity returns the bad-poison counter
func (c *Combatant) BadPoisonSeverity() int {
	return c.badPoison
}

// Inflict applies a non-sleep ailment if the combatant has none.
// It reports whether the ailment took.
func (c *Combatant) Inflict(a Ailment) bool {
	if a == AilmentNone || a == AilmentSleep || c.HasAilment() {
		return false
	}
	c.ailment = a
	if a == AilmentBadPoison {
		c.badPoison = 0
	}
	return true
}

// PutToSleep applies sleep for the given number of blocked turns if the
// combatant has no ailment
func (c *Combatant) PutToSleep(turns int) bool {
	if c.HasAilment() || turns < 0 {
		return false
	}
	c.ailment = AilmentSleep
	c.sleepTurns = turns
	return true
}

// Cure clears any ailment and its counters
func (c *Combatant) Cure() {
	c.ailment = AilmentNone
	c.sleepTurns = 0
	c.badPoison = 0
}

// sleepTick consumes one turn of sleep. It reports true while the combatant
// stays asleep and wakes it once the counter is spent.
func (c *Combatant) sleepTick() bool {
	if c.sleepTurns > 0 {
		c.sleepTurns--
		return true
	}
	c.Cure()
	return false
}

// thaw ends a freeze
func (c *Combatant) thaw() {
	c.Cure()
}

// badPoisonTick raises severity by one up to its cap and returns it
func (c *Combatant) badPoisonTick() int {
	if c.badPoison < maxBadPoison {
		c.badPoison++
	}
	return c.badPoison
}

// ailmentVerb is the narration used when an ailment is newly applied
func ailmentVerb(a Ailment) string {
	switch a {
	case AilmentBurn:
		return "was burned!"
	case AilmentParalysis:
		return "is paralyzed!"
	case AilmentFreeze:
		return "was frozen solid!"
	case AilmentPoison:
		return "was poisoned!"
	case AilmentBadPoison:
		return "was badly poisoned!"
	case AilmentSleep:
		return "fell asleep!"
	}
	return ""
}
