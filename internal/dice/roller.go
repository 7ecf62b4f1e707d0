package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller is the single source of randomness for the battle engine.
// Every random draw goes through it so a seeded or scripted implementation
// makes a battle fully reproducible.
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// Float returns a uniform value in [0, 1)
	Float() (float64, error)
}
