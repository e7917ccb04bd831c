package view

import (
	"sync"
	"time"
)

// EventType represents the type of a runtime event.
type EventType string

const (
	// Component lifecycle events
	EventComponentMounted  EventType = "component_mounted"
	EventComponentRendered EventType = "component_rendered"

	// State and cascade events
	EventStoreChanged     EventType = "store_changed"
	EventCascadeScheduled EventType = "cascade_scheduled"
	EventCascadeCompleted EventType = "cascade_completed"
)

// Event represents an observable runtime event with typed data.
type Event struct {
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// EventEmitter manages event listeners and dispatches events.
type EventEmitter struct {
	mu        sync.RWMutex
	listeners []func(Event)
}

// NewEventEmitter creates a new EventEmitter.
func NewEventEmitter() *EventEmitter {
	return &EventEmitter{
		listeners: make([]func(Event), 0),
	}
}

// On registers a listener function to receive events.
// Listeners are called synchronously in registration order.
func (e *EventEmitter) On(listener func(Event)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

// Emit dispatches an event to all registered listeners.
func (e *EventEmitter) Emit(event Event) {
	e.mu.RLock()
	listeners := make([]func(Event), len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.RUnlock()

	for _, listener := range listeners {
		listener(event)
	}
}

// ListenerCount returns the number of registered listeners.
func (e *EventEmitter) ListenerCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners)
}

// Helper constructors for creating typed events

// ComponentMountedEvent creates a component_mounted event.
func ComponentMountedEvent(path string) Event {
	return Event{
		Type:      EventComponentMounted,
		Timestamp: time.Now(),
		Data: map[string]any{
			"path": path,
		},
	}
}

// ComponentRenderedEvent creates a component_rendered event.
func ComponentRenderedEvent(path string, duration time.Duration) Event {
	return Event{
		Type:      EventComponentRendered,
		Timestamp: time.Now(),
		Data: map[string]any{
			"path":        path,
			"duration_ms": duration.Milliseconds(),
		},
	}
}

// StoreChangedEvent creates a store_changed event.
func StoreChangedEvent(path, store string) Event {
	return Event{
		Type:      EventStoreChanged,
		Timestamp: time.Now(),
		Data: map[string]any{
			"path":  path,
			"store": store,
		},
	}
}

// CascadeScheduledEvent creates a cascade_scheduled event.
func CascadeScheduledEvent(path string) Event {
	return Event{
		Type:      EventCascadeScheduled,
		Timestamp: time.Now(),
		Data: map[string]any{
			"path": path,
		},
	}
}

// CascadeCompletedEvent creates a cascade_completed event.
func CascadeCompletedEvent(path string) Event {
	return Event{
		Type:      EventCascadeCompleted,
		Timestamp: time.Now(),
		Data: map[string]any{
			"path": path,
		},
	}
}
