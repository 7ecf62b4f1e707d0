package battles

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/creature-battle/internal/domain/game/combat"
)

func encode(battle *combat.Battle) ([]byte, error) {
	data, err := json.Marshal(battle)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal battle %s: %w", battle.ID, err)
	}
	return data, nil
}

func decode(data []byte) (*combat.Battle, error) {
	var battle combat.Battle
	if err := json.Unmarshal(data, &battle); err != nil {
		return nil, fmt.Errorf("failed to unmarshal battle: %w", err)
	}
	return &battle, nil
}

// clone deep copies a battle through its JSON snapshot
func clone(battle *combat.Battle) (*combat.Battle, error) {
	data, err := encode(battle)
	if err != nil {
		return nil, err
	}
	return decode(data)
}
