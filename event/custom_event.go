package event

import "github.com/heathj/domevents/webidl"

// https://dom.spec.whatwg.org/#dictdef-customeventinit
type CustomEventInit struct {
	EventInit
	Detail interface{}
}

// https://dom.spec.whatwg.org/#interface-customevent
type CustomEvent struct {
	*Event
	detail interface{}
}

func NewCustomEvent(eventType webidl.DOMString, init *CustomEventInit) *CustomEvent {
	if init == nil {
		init = &CustomEventInit{}
	}
	return &CustomEvent{
		Event:  New(eventType, &init.EventInit),
		detail: init.Detail,
	}
}

func (c *CustomEvent) Detail() interface{} { return c.detail }

// InitCustomEvent does nothing while the event is being dispatched.
// https://dom.spec.whatwg.org/#dom-customevent-initcustomevent
func (c *CustomEvent) InitCustomEvent(eventType webidl.DOMString, bubbles, cancelable bool, detail interface{}) {
	if c.flags.IsSet(DispatchFlag) {
		return
	}
	c.initialize(eventType, bubbles, cancelable)
	c.detail = detail
}
