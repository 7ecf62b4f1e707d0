package events

import "time"

// EventType represents the type of battle event
type EventType string

// Event is the base interface for all battle events
type Event interface {
	GetType() EventType
	GetBattleID() string
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type       EventType `json:"type"`
	BattleID   string    `json:"battle_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Cancelled  bool      `json:"-"`
}

// NewBaseEvent stamps an event for a battle
func NewBaseEvent(eventType EventType, battleID string) BaseEvent {
	return BaseEvent{Type: eventType, BattleID: battleID, OccurredAt: time.Now()}
}

func (e *BaseEvent) GetType() EventType  { return e.Type }
func (e *BaseEvent) GetBattleID() string { return e.BattleID }
func (e *BaseEvent) IsCancelled() bool   { return e.Cancelled }
func (e *BaseEvent) Cancel()             { e.Cancelled = true }
