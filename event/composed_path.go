package event

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ComposedPath returns the invocation targets of the event's path that are
// visible from the current target, in path order. Targets inside closed
// shadow trees the current target is not part of are left out.
//
// It panics if the path is non-empty and the current target is not one of
// its invocation targets.
// https://dom.spec.whatwg.org/#dom-event-composedpath
func (e *Event) ComposedPath() []EventTarget {
	path := e.path
	if len(path) == 0 {
		return []EventTarget{}
	}

	currentTargetIndex, currentTargetHiddenSubtreeLevel := e.locateCurrentTarget()

	var (
		before = []EventTarget{}
		after  = []EventTarget{}
	)

	// Entries before the current target sit closer to the event's target.
	currentHiddenLevel := currentTargetHiddenSubtreeLevel
	maxHiddenLevel := currentTargetHiddenSubtreeLevel
	for i := currentTargetIndex - 1; i >= 0; i-- {
		pt := path[i]
		if pt.RootOfClosedTree {
			currentHiddenLevel++
		}
		if currentHiddenLevel <= maxHiddenLevel {
			before = append(before, pt.InvocationTarget)
		}
		if pt.SlotInClosedTree {
			currentHiddenLevel--
			if currentHiddenLevel < maxHiddenLevel {
				maxHiddenLevel = currentHiddenLevel
			}
		}
	}

	currentHiddenLevel = currentTargetHiddenSubtreeLevel
	maxHiddenLevel = currentTargetHiddenSubtreeLevel
	for i := currentTargetIndex + 1; i < len(path); i++ {
		pt := path[i]
		if pt.SlotInClosedTree {
			currentHiddenLevel++
		}
		if currentHiddenLevel <= maxHiddenLevel {
			after = append(after, pt.InvocationTarget)
		}
		if pt.RootOfClosedTree {
			currentHiddenLevel--
			if currentHiddenLevel < maxHiddenLevel {
				maxHiddenLevel = currentHiddenLevel
			}
		}
	}

	// before was collected walking down, prepend means reverse it.
	composedPath := make([]EventTarget, 0, len(before)+1+len(after))
	for i := len(before) - 1; i >= 0; i-- {
		composedPath = append(composedPath, before[i])
	}
	composedPath = append(composedPath, e.currentTarget)
	composedPath = append(composedPath, after...)

	if hidden := len(path) - len(composedPath); hidden > 0 {
		log.WithFields(logrus.Fields{
			"type":   e.eventType,
			"index":  currentTargetIndex,
			"hidden": hidden,
		}).Debug("composed path hides closed shadow tree entries")
	}
	return composedPath
}

// locateCurrentTarget scans the path from its outermost entry toward the
// event's target and returns the index of the current target along with the
// number of closed shadow trees it sits in.
func (e *Event) locateCurrentTarget() (int, int) {
	current := e.currentTarget
	if current == nil {
		panic(errors.Wrap(ErrTargetNotInPath, "composed path requested without a current target"))
	}

	level := 0
	for i := len(e.path) - 1; i >= 0; i-- {
		pt := e.path[i]
		if pt.RootOfClosedTree {
			level++
		}
		if SameTarget(pt.InvocationTarget, current) {
			return i, level
		}
		if pt.SlotInClosedTree {
			level--
		}
	}

	panic(errors.Wrapf(ErrTargetNotInPath, "current target %s", current.TargetID()))
}
