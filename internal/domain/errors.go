package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a numeric precondition is violated.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidStateTransition is returned when a simulator operation is not valid in its current state.
	ErrInvalidStateTransition = errors.New("invalid state transition")
)

// StateTransitionError describes a rejected simulator operation
type StateTransitionError struct {
	Op   string
	From SimulationStatus
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s while %s", ErrInvalidStateTransition, e.Op, e.From)
}

func (e *StateTransitionError) Unwrap() error { return ErrInvalidStateTransition }
