package prism

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventDispatcherOrderAndRemoval(t *testing.T) {

	ed := &EventDispatcher{}
	calls := []string{}

	first := ed.AddEventListener(EventUpdate, func(e Event) { calls = append(calls, "first") })
	ed.AddEventListener(EventUpdate, func(e Event) { calls = append(calls, "second") })
	ed.AddEventListener(EventDispose, func(e Event) { calls = append(calls, "dispose") })

	assert.True(t, ed.HasEventListener(EventUpdate, first))
	assert.False(t, ed.HasEventListener(EventDispose, first))

	ed.DispatchEvent(Event{Type: EventUpdate})
	assert.Equal(t, []string{"first", "second"}, calls)

	ed.RemoveEventListener(EventUpdate, first)
	assert.False(t, ed.HasEventListener(EventUpdate, first))
	assert.Equal(t, 1, ed.ListenerCount(EventUpdate))

	calls = calls[:0]
	ed.DispatchEvent(Event{Type: EventUpdate})
	assert.Equal(t, []string{"second"}, calls)

}

func TestEventDispatcherSnapshot(t *testing.T) {

	ed := &EventDispatcher{}
	count := 0

	ed.AddEventListener(EventUpdate, func(e Event) {
		count++
		ed.AddEventListener(EventUpdate, func(e Event) { count += 10 })
	})

	ed.DispatchEvent(Event{Type: EventUpdate})
	assert.Equal(t, 1, count)

	ed.DispatchEvent(Event{Type: EventUpdate})
	assert.Equal(t, 12, count)

}

func TestEventDispatcherNoListeners(t *testing.T) {
	ed := &EventDispatcher{}
	assert.NotPanics(t, func() { ed.DispatchEvent(Event{Type: EventDispose}) })
	ed.RemoveEventListener(EventDispose, 42)
}
