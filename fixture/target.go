package fixture

import (
	"reflect"

	"github.com/google/uuid"

	"github.com/heathj/domevents/event"
	"github.com/heathj/domevents/webidl"
)

// Target is a named event target. Its handle is derived from its name, so
// the same fixture always produces the same handles.
type Target struct {
	name      string
	id        uuid.UUID
	listeners map[webidl.DOMString][]listener
}

type listener struct {
	callback event.EventListener
	event.AddEventListenerOptions
}

func NewTarget(name string) *Target {
	return &Target{
		name:      name,
		id:        uuid.NewSHA1(uuid.NameSpaceURL, []byte("domevents:"+name)),
		listeners: map[webidl.DOMString][]listener{},
	}
}

func (t *Target) Name() string        { return t.name }
func (t *Target) String() string      { return t.name }
func (t *Target) TargetID() uuid.UUID { return t.id }

// AddEventListener ignores a listener that is already registered for the
// same type and capture value.
// https://dom.spec.whatwg.org/#add-an-event-listener
func (t *Target) AddEventListener(eventType webidl.DOMString, callback event.EventListener, options ...event.AddEventListenerOptions) {
	if callback == nil {
		return
	}

	var opts event.AddEventListenerOptions
	if len(options) > 0 {
		opts = options[0]
	}
	if t.find(eventType, callback, opts.Capture) >= 0 {
		return
	}
	t.listeners[eventType] = append(t.listeners[eventType], listener{callback: callback, AddEventListenerOptions: opts})
}

// https://dom.spec.whatwg.org/#remove-an-event-listener
func (t *Target) RemoveEventListener(eventType webidl.DOMString, callback event.EventListener, options ...event.EventListenerOptions) {
	var opts event.EventListenerOptions
	if len(options) > 0 {
		opts = options[0]
	}

	i := t.find(eventType, callback, opts.Capture)
	if i < 0 {
		return
	}
	ls := t.listeners[eventType]
	t.listeners[eventType] = append(ls[:i:i], ls[i+1:]...)
}

// Listeners returns the listeners registered for eventType in registration
// order.
func (t *Target) Listeners(eventType webidl.DOMString) []event.EventListener {
	ls := t.listeners[eventType]
	out := make([]event.EventListener, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.callback)
	}
	return out
}

func (t *Target) find(eventType webidl.DOMString, callback event.EventListener, capture bool) int {
	// funcs and other uncomparable listeners can never match
	if callback == nil || !reflect.TypeOf(callback).Comparable() {
		return -1
	}
	for i, l := range t.listeners[eventType] {
		if l.Capture == capture && reflect.TypeOf(l.callback).Comparable() && l.callback == callback {
			return i
		}
	}
	return -1
}

// Names returns the names of targets, falling back to the handle for
// targets that did not come from a fixture.
func Names(targets []event.EventTarget) []string {
	out := make([]string, 0, len(targets))
	for _, t := range targets {
		if ft, ok := t.(*Target); ok {
			out = append(out, ft.name)
			continue
		}
		if t == nil {
			out = append(out, "<nil>")
			continue
		}
		out = append(out, t.TargetID().String())
	}
	return out
}
