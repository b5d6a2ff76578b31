package event

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/domevents/webidl"
)

// Dispatch is the dispatch algorithm's handle on an event for the duration of
// one dispatch. It is the only way to set the state listeners can read but
// not write: target, current target, phase, path and isTrusted.
//
// A Dispatch is owned by a single dispatcher and must not be shared between
// goroutines.
type Dispatch struct {
	event *Event
	ended bool
	log   *logrus.Entry
}

// BeginDispatch sets the event's dispatch flag and installs its target and
// path. path is ordered starting at target and moving outward; the caller
// keeps ownership of it and must not modify it until End is called.
// https://dom.spec.whatwg.org/#concept-event-dispatch
func BeginDispatch(e *Event, target EventTarget, path []PathTarget, trusted bool) (*Dispatch, error) {
	if e.flags.IsSet(DispatchFlag) {
		return nil, errors.Wrapf(ErrAlreadyDispatching, "dispatch %q", e.eventType)
	}
	if len(path) == 0 {
		return nil, errors.Wrapf(ErrEmptyPath, "dispatch %q", e.eventType)
	}
	if _, ok := FindInPath(path, target); !ok {
		return nil, errors.Wrapf(ErrTargetNotInPath, "dispatch %q", e.eventType)
	}

	e.flags.Set(DispatchFlag)
	e.target = target
	e.path = path
	e.isTrusted = trusted

	d := &Dispatch{
		event: e,
		log: log.WithFields(logrus.Fields{
			"type":   e.eventType,
			"target": target.TargetID(),
		}),
	}
	d.log.WithField("path", len(path)).Debug("dispatch started")
	return d, nil
}

func (d *Dispatch) Event() *Event { return d.event }

// Path returns the path installed by BeginDispatch, or nil once the dispatch
// has ended.
func (d *Dispatch) Path() []PathTarget { return d.event.path }

// Invoke makes current the event's current target for the given phase. It is
// called by the dispatcher before it runs the listeners of current.
// https://dom.spec.whatwg.org/#concept-event-listener-invoke
func (d *Dispatch) Invoke(current EventTarget, phase EventPhase) error {
	if d.ended {
		return errors.Wrapf(ErrNotDispatching, "invoke %q", d.event.eventType)
	}
	if _, ok := FindInPath(d.event.path, current); !ok {
		return errors.Wrapf(ErrTargetNotInPath, "invoke %q", d.event.eventType)
	}

	d.event.currentTarget = current
	d.event.eventPhase = phase
	d.log.WithFields(logrus.Fields{
		"current": current.TargetID(),
		"phase":   phase,
	}).Debug("invoking listeners")
	return nil
}

// SetInPassiveListener is toggled around each passive listener call.
// The setters below do nothing once End has been called, so a stale handle
// cannot reach into a later dispatch of the same event.
func (d *Dispatch) SetInPassiveListener(passive bool) {
	if d.ended {
		return
	}
	if passive {
		d.event.flags.Set(InPassiveListenerFlag)
	} else {
		d.event.flags.Clear(InPassiveListenerFlag)
	}
}

func (d *Dispatch) SetTimeStamp(ts webidl.DOMHighResTimeStamp) {
	if d.ended {
		return
	}
	d.event.timeStamp = ts
}

// https://dom.spec.whatwg.org/#event-relatedtarget
func (d *Dispatch) SetRelatedTarget(t EventTarget) {
	if d.ended {
		return
	}
	d.event.relatedTarget = t
}

func (d *Dispatch) RelatedTarget() EventTarget { return d.event.relatedTarget }

// https://dom.spec.whatwg.org/#event-touch-target-list
func (d *Dispatch) SetTouchTargets(targets []EventTarget) {
	if d.ended {
		return
	}
	d.event.touchTargetList = targets
}

func (d *Dispatch) TouchTargets() []EventTarget { return d.event.touchTargetList }

func (d *Dispatch) PropagationStopped() bool {
	return d.event.flags.IsSet(StopPropagationFlag)
}

func (d *Dispatch) ImmediatePropagationStopped() bool {
	return d.event.flags.IsSet(StopImmediatePropagationFlag)
}

// End resets the event once every listener has run. The target is kept so
// it can still be read after dispatch. Calling End more than once does
// nothing.
func (d *Dispatch) End() {
	if d.ended {
		return
	}
	d.ended = true

	e := d.event
	e.eventPhase = NonePhase
	e.currentTarget = nil
	e.path = nil
	e.flags.Clear(DispatchFlag | StopPropagationFlag | StopImmediatePropagationFlag | InPassiveListenerFlag)
	d.log.WithField("canceled", e.flags.IsSet(CanceledFlag)).Debug("dispatch ended")
}
