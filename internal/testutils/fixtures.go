package testutils

import (
	"github.com/KirkDiggler/creature-battle/internal/domain/catalog"
	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/stats"
	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/typechart"
)

// CreateTestSpecies creates a species with the given types and base stats
func CreateTestSpecies(id, name string, base []int, types ...typechart.TypeName) *catalog.Species {
	return &catalog.Species{
		ID:     id,
		Name:   name,
		Types:  types,
		Base:   base,
		Sprite: id,
	}
}

// CreateTestMove creates a move with full accuracy
func CreateTestMove(id, name string, moveType typechart.TypeName, category catalog.Category, power, pp int) *catalog.Move {
	return &catalog.Move{
		ID:       id,
		Name:     name,
		Type:     moveType,
		Category: category,
		Power:    power,
		Accuracy: 100,
		PP:       pp,
	}
}

// TestSpecies returns a small roster of species covering single, dual and
// immune typings
func TestSpecies() []*catalog.Species {
	return []*catalog.Species{
		CreateTestSpecies("charizard", "Charizard", []int{78, 84, 78, 109, 85, 100}, typechart.Fire, typechart.Flying),
		CreateTestSpecies("blastoise", "Blastoise", []int{79, 83, 100, 85, 105, 78}, typechart.Water),
		CreateTestSpecies("venusaur", "Venusaur", []int{80, 82, 83, 100, 100, 80}, typechart.Grass, typechart.Poison),
		CreateTestSpecies("pikachu", "Pikachu", []int{35, 55, 40, 50, 50, 90}, typechart.Electric),
		CreateTestSpecies("snorlax", "Snorlax", []int{160, 110, 65, 65, 110, 30}, typechart.Normal),
		CreateTestSpecies("gengar", "Gengar", []int{60, 65, 60, 130, 75, 110}, typechart.Ghost, typechart.Poison),
		CreateTestSpecies("golem", "Golem", []int{80, 120, 130, 55, 65, 45}, typechart.Rock, typechart.Ground),
	}
}

// TestMoves returns moves covering each shape the engine resolves
func TestMoves() []*catalog.Move {
	flamethrower := CreateTestMove("flamethrower", "Flamethrower", typechart.Fire, catalog.CategorySpecial, 90, 15)
	flamethrower.Secondary = &catalog.SecondaryEffect{Burn: 10}

	thunderbolt := CreateTestMove("thunderbolt", "Thunderbolt", typechart.Electric, catalog.CategorySpecial, 90, 15)
	thunderbolt.Secondary = &catalog.SecondaryEffect{Paralysis: 10}

	iceBeam := CreateTestMove("ice-beam", "Ice Beam", typechart.Ice, catalog.CategorySpecial, 90, 10)
	iceBeam.Secondary = &catalog.SecondaryEffect{Freeze: 10}

	sludgeBomb := CreateTestMove("sludge-bomb", "Sludge Bomb", typechart.Poison, catalog.CategorySpecial, 90, 10)
	sludgeBomb.Secondary = &catalog.SecondaryEffect{Poison: 30}

	triAttack := CreateTestMove("tri-attack", "Tri Attack", typechart.Normal, catalog.CategorySpecial, 80, 10)
	triAttack.Secondary = &catalog.SecondaryEffect{Burn: 20, Paralysis: 20, Freeze: 20}

	growl := CreateTestMove("growl", "Growl", typechart.Normal, catalog.CategoryStatus, 0, 40)
	growl.Stage = &catalog.StageEffect{Target: stats.Attack, Delta: -1}

	screech := CreateTestMove("screech", "Screech", typechart.Normal, catalog.CategoryStatus, 0, 40)
	screech.Accuracy = 85
	screech.Stage = &catalog.StageEffect{Target: stats.Defense, Delta: -2}

	willOWisp := CreateTestMove("will-o-wisp", "Will-O-Wisp", typechart.Fire, catalog.CategoryStatus, 0, 15)
	willOWisp.Accuracy = 85
	willOWisp.Status = &catalog.StatusEffect{Burn: true}

	splash := CreateTestMove("splash", "Splash", typechart.Normal, catalog.CategoryStatus, 0, 40)
	splash.Accuracy = 0

	swift := CreateTestMove("swift", "Swift", typechart.Normal, catalog.CategorySpecial, 60, 20)
	swift.Accuracy = 1000

	hydroPump := CreateTestMove("hydro-pump", "Hydro Pump", typechart.Water, catalog.CategorySpecial, 110, 5)
	hydroPump.Accuracy = 80

	return []*catalog.Move{
		CreateTestMove("tackle", "Tackle", typechart.Normal, catalog.CategoryPhysical, 40, 35),
		flamethrower,
		CreateTestMove("surf", "Surf", typechart.Water, catalog.CategorySpecial, 90, 15),
		thunderbolt,
		iceBeam,
		sludgeBomb,
		triAttack,
		CreateTestMove("earthquake", "Earthquake", typechart.Ground, catalog.CategoryPhysical, 100, 10),
		CreateTestMove("shadow-ball", "Shadow Ball", typechart.Ghost, catalog.CategorySpecial, 80, 15),
		CreateTestMove("body-slam", "Body Slam", typechart.Normal, catalog.CategoryPhysical, 85, 15),
		growl,
		screech,
		willOWisp,
		splash,
		swift,
		hydroPump,
	}
}

// TestCatalog builds a catalog over TestSpecies, TestMoves and the standard chart
func TestCatalog() *catalog.Catalog {
	c, err := catalog.New(TestSpecies(), TestMoves(), typechart.Standard())
	if err != nil {
		panic(err)
	}
	return c
}
