package session

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSelection is returned when an answer is submitted with nothing chosen.
	ErrNoSelection = errors.New("no answer selected")

	// ErrWrongPhase is returned when an action is not valid in the current state.
	ErrWrongPhase = errors.New("action not available in this phase")
)

// ValidationError reports missing input on the start screen.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PersistError reports that a finished attempt could not be saved.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("save results to %s: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
