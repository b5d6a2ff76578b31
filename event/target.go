package event

import (
	"github.com/google/uuid"

	"github.com/heathj/domevents/webidl"
)

// EventTarget is implemented by anything an event can be dispatched to.
// Listener storage belongs to the implementation; the event only ever looks
// at TargetID.
// https://dom.spec.whatwg.org/#interface-eventtarget
type EventTarget interface {
	// TargetID returns a handle that is stable for the lifetime of the target
	// and unique among targets in the same tree.
	TargetID() uuid.UUID
	AddEventListener(eventType webidl.DOMString, listener EventListener, options ...AddEventListenerOptions)
	RemoveEventListener(eventType webidl.DOMString, listener EventListener, options ...EventListenerOptions)
}

// https://dom.spec.whatwg.org/#callbackdef-eventlistener
type EventListener interface {
	HandleEvent(e *Event)
}

// EventListenerFunc adapts a plain function to EventListener. Use a pointer to
// it when the listener has to be removed again, since funcs are not
// comparable.
type EventListenerFunc func(e *Event)

func (f EventListenerFunc) HandleEvent(e *Event) { f(e) }

// https://dom.spec.whatwg.org/#dictdef-eventlisteneroptions
type EventListenerOptions struct {
	Capture bool
}

// https://dom.spec.whatwg.org/#dictdef-addeventlisteneroptions
type AddEventListenerOptions struct {
	EventListenerOptions
	Passive bool
	Once    bool
}

// SameTarget reports whether a and b refer to the same target. Two nil
// targets are the same; a nil and a non-nil target are not.
func SameTarget(a, b EventTarget) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.TargetID() == b.TargetID()
}
