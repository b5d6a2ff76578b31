package event

import "github.com/pkg/errors"

var (
	ErrAlreadyDispatching = errors.New("event is already being dispatched")
	ErrEmptyPath          = errors.New("event path is empty")
	ErrTargetNotInPath    = errors.New("target is not in the event path")
	ErrNotDispatching     = errors.New("event is not being dispatched")
)
