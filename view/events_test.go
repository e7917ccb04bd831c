package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventEmitterDispatchOrder(t *testing.T) {
	e := NewEventEmitter()

	var order []string
	e.On(func(ev Event) { order = append(order, "first") })
	e.On(func(ev Event) { order = append(order, "second") })

	e.Emit(ComponentMountedEvent("Widget#default"))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestEventEmitterListenerCount(t *testing.T) {
	e := NewEventEmitter()
	assert.Equal(t, 0, e.ListenerCount())

	e.On(func(ev Event) {})
	e.On(func(ev Event) {})
	assert.Equal(t, 2, e.ListenerCount())
}

func TestEventEmitterNoListeners(t *testing.T) {
	e := NewEventEmitter()
	// Must not panic with zero listeners.
	e.Emit(CascadeScheduledEvent("Widget#default"))
}

func TestEventConstructors(t *testing.T) {
	tests := []struct {
		event Event
		typ   EventType
		data  map[string]any
	}{
		{
			event: ComponentMountedEvent("App#default"),
			typ:   EventComponentMounted,
			data:  map[string]any{"path": "App#default"},
		},
		{
			event: ComponentRenderedEvent("App#default", 2*time.Millisecond),
			typ:   EventComponentRendered,
			data:  map[string]any{"path": "App#default", "duration_ms": int64(2)},
		},
		{
			event: StoreChangedEvent("App#default", "count"),
			typ:   EventStoreChanged,
			data:  map[string]any{"path": "App#default", "store": "count"},
		},
		{
			event: CascadeScheduledEvent("App#default"),
			typ:   EventCascadeScheduled,
			data:  map[string]any{"path": "App#default"},
		},
		{
			event: CascadeCompletedEvent("App#default"),
			typ:   EventCascadeCompleted,
			data:  map[string]any{"path": "App#default"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.event.Type)
			assert.Equal(t, tt.data, tt.event.Data)
			require.False(t, tt.event.Timestamp.IsZero())
		})
	}
}
