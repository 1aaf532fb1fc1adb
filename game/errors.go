package game

import (
	"errors"
	"fmt"
)

var ErrInvalidAction = errors.New("invalid action")

// InvalidActionError reports an action that cannot be applied to a state:
// the target is already occupied, out of range, or the action is not for the side to move.
type InvalidActionError struct {
	Action Action
	Reason string
}

func (e *InvalidActionError) Error() string {
	if e.Action == nil {
		return fmt.Sprintf("invalid action: %s", e.Reason)
	}
	return fmt.Sprintf("invalid action %v by %v: %s", e.Action, e.Action.Player(), e.Reason)
}

func (e *InvalidActionError) Is(target error) bool {
	return target == ErrInvalidAction
}

func InvalidAction(action Action, format string, args ...any) error {
	return &InvalidActionError{Action: action, Reason: fmt.Sprintf(format, args...)}
}
