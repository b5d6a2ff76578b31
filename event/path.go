package event

// PathTarget is one entry of an event's path, appended by the dispatch
// algorithm starting at the event's target and moving outward.
// https://dom.spec.whatwg.org/#concept-event-path-append
type PathTarget struct {
	InvocationTarget EventTarget
	// InShadowTree is set when the invocation target is a node whose root
	// is a shadow root.
	InShadowTree         bool
	ShadowAdjustedTarget EventTarget
	RelatedTarget        EventTarget
	TouchTargets         []EventTarget
	// RootOfClosedTree is set when the invocation target is a shadow root
	// whose mode is closed.
	RootOfClosedTree bool
	// SlotInClosedTree is set when the invocation target is a slot whose
	// root is a closed shadow root.
	SlotInClosedTree bool
}

// FindInPath returns the index of the last entry in path whose invocation
// target is target.
func FindInPath(path []PathTarget, target EventTarget) (int, bool) {
	if target == nil {
		return 0, false
	}
	for i := len(path) - 1; i >= 0; i-- {
		if SameTarget(path[i].InvocationTarget, target) {
			return i, true
		}
	}
	return 0, false
}
