package event

import (
	"github.com/sirupsen/logrus"

	"github.com/heathj/domevents/webidl"
)

var log = logrus.WithField("package", "event")

// https://dom.spec.whatwg.org/#dom-event-eventphase
type EventPhase webidl.UnsignedShort

const (
	NonePhase EventPhase = iota
	CapturingPhase
	AtTargetPhase
	BubblingPhase
)

func (p EventPhase) String() string {
	switch p {
	case NonePhase:
		return "none"
	case CapturingPhase:
		return "capturing"
	case AtTargetPhase:
		return "at-target"
	case BubblingPhase:
		return "bubbling"
	default:
		return "unknown"
	}
}

// https://dom.spec.whatwg.org/#dictdef-eventinit
type EventInit struct {
	Bubbles    bool
	Cancelable bool
	Composed   bool
}

// https://dom.spec.whatwg.org/#interface-event
type Event struct {
	eventType       webidl.DOMString
	target          EventTarget
	relatedTarget   EventTarget
	touchTargetList []EventTarget
	currentTarget   EventTarget
	path            []PathTarget
	flags           Flags
	eventPhase      EventPhase
	bubbles         bool
	cancelable      bool
	isTrusted       bool
	timeStamp       webidl.DOMHighResTimeStamp
}

// New creates an event of the given type. A nil init behaves like an
// EventInit with every member false.
// https://dom.spec.whatwg.org/#dom-event-event
func New(eventType webidl.DOMString, init *EventInit) *Event {
	if init == nil {
		init = &EventInit{}
	}

	e := &Event{
		eventType:  eventType,
		eventPhase: NonePhase,
		bubbles:    init.Bubbles,
		cancelable: init.Cancelable,
	}
	if init.Composed {
		e.flags.Set(ComposedFlag)
	}
	return e
}

func (e *Event) Type() webidl.DOMString { return e.eventType }
func (e *Event) Target() EventTarget    { return e.target }

// SrcElement is the legacy alias of Target.
func (e *Event) SrcElement() EventTarget    { return e.target }
func (e *Event) CurrentTarget() EventTarget { return e.currentTarget }
func (e *Event) EventPhase() EventPhase     { return e.eventPhase }

// https://dom.spec.whatwg.org/#dom-event-stoppropagation
func (e *Event) StopPropagation() {
	e.flags.Set(StopPropagationFlag)
}

// https://dom.spec.whatwg.org/#dom-event-cancelbubble
func (e *Event) CancelBubble() bool {
	return e.flags.IsSet(StopPropagationFlag)
}

// SetCancelBubble stops propagation when v is true. Setting false does
// nothing.
func (e *Event) SetCancelBubble(v bool) {
	if v {
		e.flags.Set(StopPropagationFlag)
	}
}

// https://dom.spec.whatwg.org/#dom-event-stopimmediatepropagation
func (e *Event) StopImmediatePropagation() {
	e.flags.Set(StopPropagationFlag | StopImmediatePropagationFlag)
}

func (e *Event) Bubbles() bool    { return e.bubbles }
func (e *Event) Cancelable() bool { return e.cancelable }

// https://dom.spec.whatwg.org/#dom-event-returnvalue
func (e *Event) ReturnValue() bool {
	return e.flags.IsUnset(CanceledFlag)
}

// SetReturnValue sets the canceled flag when v is false, the event is
// cancelable and no passive listener is running. Anything else is ignored.
// https://dom.spec.whatwg.org/#set-the-canceled-flag
func (e *Event) SetReturnValue(v bool) {
	if !v && e.cancelable && e.flags.IsUnset(InPassiveListenerFlag) {
		e.flags.Set(CanceledFlag)
	}
}

// PreventDefault sets the canceled flag without looking at cancelable or the
// in passive listener flag.
// https://dom.spec.whatwg.org/#dom-event-preventdefault
func (e *Event) PreventDefault() {
	e.flags.Set(CanceledFlag)
}

func (e *Event) DefaultPrevented() bool { return e.flags.IsSet(CanceledFlag) }
func (e *Event) Composed() bool         { return e.flags.IsSet(ComposedFlag) }

// IsTrusted is only ever true for events handed to BeginDispatch as trusted.
func (e *Event) IsTrusted() bool                       { return e.isTrusted }
func (e *Event) TimeStamp() webidl.DOMHighResTimeStamp { return e.timeStamp }

// Flags returns a copy of the event's flags.
func (e *Event) Flags() Flags { return e.flags }

// InitEvent does nothing while the event is being dispatched.
// https://dom.spec.whatwg.org/#dom-event-initevent
func (e *Event) InitEvent(eventType webidl.DOMString, bubbles, cancelable bool) {
	if e.flags.IsSet(DispatchFlag) {
		log.WithField("type", eventType).Debug("ignoring initEvent during dispatch")
		return
	}
	e.initialize(eventType, bubbles, cancelable)
}

// https://dom.spec.whatwg.org/#concept-event-initialize
func (e *Event) initialize(eventType webidl.DOMString, bubbles, cancelable bool) {
	e.flags.Set(InitializedFlag)
	e.flags.Clear(StopPropagationFlag | StopImmediatePropagationFlag | CanceledFlag)
	e.isTrusted = false
	e.target = nil
	e.eventType = eventType
	e.bubbles = bubbles
	e.cancelable = cancelable
}
