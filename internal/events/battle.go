package events

import (
	"github.com/KirkDiggler/creature-battle/internal/domain/game/combat"
)

// BattleStartedEvent is emitted once a battle has been created and stored
type BattleStartedEvent struct {
	BaseEvent
	OwnerID string `json:"owner_id"`
	A       string `json:"a"`
	B       string `json:"b"`
}

// ActionResolvedEvent is emitted for every action resolved in a turn
type ActionResolvedEvent struct {
	BaseEvent
	Turn   int                  `json:"turn"`
	Side   combat.Side          `json:"side"`
	Result *combat.ActionResult `json:"result"`
}

// CombatantFaintedEvent is emitted when a combatant reaches 0 HP
type CombatantFaintedEvent struct {
	BaseEvent
	Side combat.Side `json:"side"`
	Name string      `json:"name"`
}

// TurnEndedEvent is emitted after end-of-turn ailment damage is applied
type TurnEndedEvent struct {
	BaseEvent
	Turn   int                 `json:"turn"`
	HPLost map[combat.Side]int `json:"hp_lost"`
	Lines  []string            `json:"lines"`
}

// WeatherChangedEvent is emitted when the weather of a battle changes
type WeatherChangedEvent struct {
	BaseEvent
	Weather combat.Weather `json:"weather"`
}

// BattleFinishedEvent is emitted when a battle ends. Winner is empty on a draw
type BattleFinishedEvent struct {
	BaseEvent
	Winner combat.Side `json:"winner,omitempty"`
}
