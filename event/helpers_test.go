package event

import (
	"github.com/google/uuid"

	"github.com/heathj/domevents/webidl"
)

type testTarget struct {
	id        uuid.UUID
	name      string
	listeners map[webidl.DOMString][]EventListener
}

func newTestTarget(name string) *testTarget {
	return &testTarget{
		id:        uuid.New(),
		name:      name,
		listeners: map[webidl.DOMString][]EventListener{},
	}
}

func (t *testTarget) TargetID() uuid.UUID { return t.id }

func (t *testTarget) AddEventListener(eventType webidl.DOMString, l EventListener, _ ...AddEventListenerOptions) {
	t.listeners[eventType] = append(t.listeners[eventType], l)
}

func (t *testTarget) RemoveEventListener(eventType webidl.DOMString, l EventListener, _ ...EventListenerOptions) {
	ls := t.listeners[eventType]
	for i := range ls {
		if ls[i] == l {
			t.listeners[eventType] = append(ls[:i], ls[i+1:]...)
			return
		}
	}
}

func (t *testTarget) String() string { return t.name }

// names maps targets to their test names so failures read well.
func names(targets []EventTarget) []string {
	out := make([]string, 0, len(targets))
	for _, t := range targets {
		out = append(out, t.(*testTarget).name)
	}
	return out
}

// plainPath builds a path without any shadow boundaries, target first.
func plainPath(targets ...*testTarget) []PathTarget {
	path := make([]PathTarget, 0, len(targets))
	for _, t := range targets {
		path = append(path, PathTarget{InvocationTarget: t})
	}
	return path
}

// withCurrent installs path and current target directly, bypassing Dispatch.
func withCurrent(e *Event, path []PathTarget, current EventTarget) *Event {
	e.path = path
	e.currentTarget = current
	return e
}
