package events

// Event type constants
const (
	EventTypeBattleStarted    EventType = "battle_started"
	EventTypeActionResolved   EventType = "action_resolved"
	EventTypeCombatantFainted EventType = "combatant_fainted"
	EventTypeTurnEnded        EventType = "turn_ended"
	EventTypeWeatherChanged   EventType = "weather_changed"
	EventTypeBattleFinished   EventType = "battle_finished"
)

// AllEventTypes lists every event the battle service emits
var AllEventTypes = []EventType{
	EventTypeBattleStarted,
	EventTypeActionResolved,
	EventTypeCombatantFainted,
	EventTypeTurnEnded,
	EventTypeWeatherChanged,
	EventTypeBattleFinished,
}

// Priority levels for listener order
const (
	PriorityAudit        = 0   // Logging, metrics
	PriorityState        = 100 // Listeners that read battle state
	PriorityNotification = 300 // Discord, spectators
)
