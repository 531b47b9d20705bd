package screen

import (
	"errors"
	"fmt"
)

// UnknownScreenError is returned when an id has not been registered.
type UnknownScreenError struct {
	ID int
}

func (e *UnknownScreenError) Error() string {
	return fmt.Sprintf("screen: unknown screen %d", e.ID)
}

// DuplicateIDError is returned when a second screen is registered under an
// id that is already taken.
type DuplicateIDError struct {
	ID int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("screen: duplicate screen id %d", e.ID)
}

// InvalidIDError is returned when a screen reports a negative id.
type InvalidIDError struct {
	ID int
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("screen: invalid screen id %d", e.ID)
}

// TransitionInProgressError is returned when a screen change is requested
// while another one is still in flight. The in-flight transition is unaffected.
type TransitionInProgressError struct {
	Requested int // id passed to EnterScreen
	Pending   int // id the manager is transitioning to
}

func (e *TransitionInProgressError) Error() string {
	return fmt.Sprintf("screen: cannot enter screen %d, transition to %d in progress", e.Requested, e.Pending)
}

// IsUnknownScreen reports whether err is an UnknownScreenError.
func IsUnknownScreen(err error) bool {
	var target *UnknownScreenError
	return errors.As(err, &target)
}

// IsDuplicateID reports whether err is a DuplicateIDError.
func IsDuplicateID(err error) bool {
	var target *DuplicateIDError
	return errors.As(err, &target)
}

// IsTransitionInProgress reports whether err is a TransitionInProgressError.
func IsTransitionInProgress(err error) bool {
	var target *TransitionInProgressError
	return errors.As(err, &target)
}
