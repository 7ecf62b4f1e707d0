package combat

import (
	"encoding/json"

	"github.com/KirkDiggler/creature-battle/internal/domain/catalog"
	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/stats"
	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/typechart"
)

type slotData struct {
	Move *catalog.Move `json:"move"`
	PP   int           `json:"pp"`
}

type combatantData struct {
	SpeciesID  string               `json:"species_id"`
	Name       string               `json:"name"`
	Sprite     string               `json:"sprite"`
	Level      int                  `json:"level"`
	Types      []typechart.TypeName `json:"types"`
	IV         int                  `json:"iv"`
	EVs        [6]int               `json:"evs"`
	Stats      stats.Derived        `json:"stats"`
	HP         int                  `json:"hp"`
	Ailment    Ailment              `json:"ailment"`
	SleepTurns int                  `json:"sleep_turns,omitempty"`
	BadPoison  int                  `json:"bad_poison,omitempty"`
	Stages     stats.Stages         `json:"stages"`
	MoveIDs    []string             `json:"move_ids"`
	Moves      []slotData           `json:"moves,omitempty"`
}

// MarshalJSON writes the full combatant state, including ailment counters
func (c *Combatant) MarshalJSON() ([]byte, error) {
	data := combatantData{
		SpeciesID:  c.speciesID,
		Name:       c.name,
		Sprite:     c.sprite,
		Level:      c.level,
		Types:      c.types,
		IV:         c.iv,
		EVs:        c.evs,
		Stats:      c.stats,
		HP:         c.hp,
		Ailment:    c.Ailment(),
		SleepTurns: c.sleepTurns,
		BadPoison:  c.badPoison,
		Stages:     c.stages,
		MoveIDs:    c.moveIDs,
	}
	for _, s := range c.moves {
		data.Moves = append(data.Moves, slotData{Move: s.move, PP: s.pp})
	}
	return json.Marshal(data)
}

// UnmarshalJSON restores a combatant written by MarshalJSON
func (c *Combatant) UnmarshalJSON(raw []byte) error {
	var data combatantData
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}

	*c = Combatant{
		speciesID:  data.SpeciesID,
		name:       data.Name,
		sprite:     data.Sprite,
		level:      data.Level,
		types:      data.Types,
		iv:         data.IV,
		evs:        data.EVs,
		stats:      data.Stats,
		ailment:    data.Ailment,
		sleepTurns: data.SleepTurns,
		badPoison:  data.BadPoison,
		stages:     data.Stages,
		moveIDs:    data.MoveIDs,
	}
	c.SetHP(data.HP)
	if data.Moves != nil {
		c.moves = make([]*MoveSlot, 0, len(data.Moves))
		for _, s := range data.Moves {
			c.moves = append(c.moves, &MoveSlot{move: s.Move, pp: s.PP})
		}
	}
	return nil
}
