package events

import (
	"fmt"
	"log"
	"slices"
	"sync"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// ListenerFunc adapts a function to EventListener
type ListenerFunc struct {
	id       string
	priority int
	fn       func(Event) error
}

// NewListenerFunc creates a listener from a function
func NewListenerFunc(id string, priority int, fn func(Event) error) *ListenerFunc {
	return &ListenerFunc{id: id, priority: priority, fn: fn}
}

func (l *ListenerFunc) HandleEvent(event Event) error { return l.fn(event) }
func (l *ListenerFunc) Priority() int                 { return l.priority }
func (l *ListenerFunc) ID() string                    { return l.id }

// Bus fans battle events out to listeners in ascending priority order.
// Listeners with equal priority run in subscription order.
type Bus struct {
	mu        sync.RWMutex
	listeners map[EventType][]EventListener
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
	}
}

func byPriority(a, b EventListener) int {
	return a.Priority() - b.Priority()
}

func (b *Bus) subscribeLocked(eventType EventType, listener EventListener) {
	list := append(b.listeners[eventType], listener)
	slices.SortStableFunc(list, byPriority)
	b.listeners[eventType] = list
}

// removeLocked reports whether a listener was removed. Removal keeps order.
func (b *Bus) removeLocked(eventType EventType, listenerID string) bool {
	list := b.listeners[eventType]
	n := len(list)
	list = slices.DeleteFunc(list, func(l EventListener) bool { return l.ID() == listenerID })
	if len(list) == 0 {
		delete(b.listeners, eventType)
	} else {
		b.listeners[eventType] = list
	}
	return len(list) != n
}

// Subscribe adds a listener for one event type
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribeLocked(eventType, listener)
	log.Printf("EventBus: Subscribed listener %s to event %s with priority %d",
		listener.ID(), eventType, listener.Priority())
}

// Unsubscribe removes a listener from one event type
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.removeLocked(eventType, listenerID) {
		log.Printf("EventBus: Unsubscribed listener %s from event %s", listenerID, eventType)
	}
}

// SubscribeAll adds a listener for every battle event type under one lock, so
// an emit never sees the listener on only some types
func (b *Bus) SubscribeAll(listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, eventType := range AllEventTypes {
		b.subscribeLocked(eventType, listener)
	}
	log.Printf("EventBus: Subscribed listener %s to all events", listener.ID())
}

// UnsubscribeAll removes a listener from every event type
func (b *Bus) UnsubscribeAll(listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	removed := false
	for eventType := range b.listeners {
		if b.removeLocked(eventType, listenerID) {
			removed = true
		}
	}
	if removed {
		log.Printf("EventBus: Unsubscribed listener %s from all events", listenerID)
	}
}

// ListenerCount returns how many listeners are registered for an event type
func (b *Bus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[eventType])
}

// Emit delivers event to its listeners and stops at the first listener
// error or when a listener cancels the event. Listeners run outside the lock
// and may subscribe or unsubscribe.
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := slices.Clone(b.listeners[event.GetType()])
	b.mu.RUnlock()

	log.Printf("EventBus: Emitting event %s for battle %s with %d listeners",
		event.GetType(), event.GetBattleID(), len(listeners))

	for _, listener := range listeners {
		if event.IsCancelled() {
			log.Printf("EventBus: Event %s cancelled, stopping propagation", event.GetType())
			break
		}
		if err := listener.HandleEvent(event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}

	return nil
}
