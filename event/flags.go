package event

import (
	"strings"

	"github.com/heathj/domevents/webidl"
)

// Flags is the set of flags associated with an event.
// https://dom.spec.whatwg.org/#stop-propagation-flag
type Flags webidl.UnsignedShort

const (
	// https://dom.spec.whatwg.org/#stop-propagation-flag
	StopPropagationFlag Flags = 1 << iota
	// https://dom.spec.whatwg.org/#stop-immediate-propagation-flag
	StopImmediatePropagationFlag
	// https://dom.spec.whatwg.org/#canceled-flag
	CanceledFlag
	// https://dom.spec.whatwg.org/#in-passive-listener-flag
	InPassiveListenerFlag
	// https://dom.spec.whatwg.org/#composed-flag
	ComposedFlag
	// https://dom.spec.whatwg.org/#initialized-flag
	InitializedFlag
	// https://dom.spec.whatwg.org/#dispatch-flag
	DispatchFlag
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{StopPropagationFlag, "stop-propagation"},
	{StopImmediatePropagationFlag, "stop-immediate-propagation"},
	{CanceledFlag, "canceled"},
	{InPassiveListenerFlag, "in-passive-listener"},
	{ComposedFlag, "composed"},
	{InitializedFlag, "initialized"},
	{DispatchFlag, "dispatch"},
}

// Set turns on every bit in flags.
func (f *Flags) Set(flags Flags) {
	*f |= flags
}

// Clear turns off every bit in flags. Bits that are already off stay off.
func (f *Flags) Clear(flags Flags) {
	*f &^= flags
}

func (f Flags) IsSet(flag Flags) bool {
	return f&flag != 0
}

func (f Flags) IsUnset(flag Flags) bool {
	return !f.IsSet(flag)
}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}

	names := []string{}
	for _, fn := range flagNames {
		if f.IsSet(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}
