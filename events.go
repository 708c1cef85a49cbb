package prism

// EventType names an event a Material (or anything else embedding an EventDispatcher) can dispatch.
type EventType string

const (
	EventUpdate  EventType = "update"  // EventUpdate is dispatched when a Material's render state should be re-uploaded.
	EventDispose EventType = "dispose" // EventDispose is dispatched when a Material's renderer-side resources should be freed.
)

// Event is passed to listeners when dispatched. Target is the object that dispatched it.
type Event struct {
	Type   EventType
	Target any
}

// EventListener is a function called when an Event it's listening for is dispatched.
type EventListener func(event Event)

// ListenerHandle identifies a registered listener so it can later be checked for or removed.
type ListenerHandle uint64

type registeredListener struct {
	handle   ListenerHandle
	listener EventListener
}

// EventDispatcher is an explicit, per-instance list of listeners keyed by event type.
// Dispatching is synchronous: every listener runs, in registration order, before DispatchEvent returns.
// An EventDispatcher is not safe for concurrent use.
type EventDispatcher struct {
	listeners  map[EventType][]registeredListener
	nextHandle ListenerHandle
}

// AddEventListener registers the listener for the given event type, returning a handle that identifies it.
func (ed *EventDispatcher) AddEventListener(eventType EventType, listener EventListener) ListenerHandle {
	if ed.listeners == nil {
		ed.listeners = map[EventType][]registeredListener{}
	}
	ed.nextHandle++
	ed.listeners[eventType] = append(ed.listeners[eventType], registeredListener{handle: ed.nextHandle, listener: listener})
	return ed.nextHandle
}

// HasEventListener returns true if the listener identified by handle is registered for the given event type.
func (ed *EventDispatcher) HasEventListener(eventType EventType, handle ListenerHandle) bool {
	for _, l := range ed.listeners[eventType] {
		if l.handle == handle {
			return true
		}
	}
	return false
}

// RemoveEventListener unregisters the listener identified by handle from the given event type.
func (ed *EventDispatcher) RemoveEventListener(eventType EventType, handle ListenerHandle) {
	list := ed.listeners[eventType]
	for i, l := range list {
		if l.handle == handle {
			ed.listeners[eventType] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// ListenerCount returns how many listeners are registered for the given event type.
func (ed *EventDispatcher) ListenerCount(eventType EventType) int {
	return len(ed.listeners[eventType])
}

// DispatchEvent calls every listener registered for the event's type. The listener list is snapshotted first,
// so listeners added or removed during dispatch take effect on the next dispatch.
func (ed *EventDispatcher) DispatchEvent(event Event) {
	list := ed.listeners[event.Type]
	if len(list) == 0 {
		return
	}
	snapshot := make([]registeredListener, len(list))
	copy(snapshot, list)
	for _, l := range snapshot {
		l.listener(event)
	}
}
