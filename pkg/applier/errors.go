package applier

import (
	"errors"
	"fmt"
)

var (
	// ErrDestinationExists is returned when the target path is already taken
	ErrDestinationExists = errors.New("destination already exists")

	// ErrSourceMissing is returned when the entry to rename is gone
	ErrSourceMissing = errors.New("source does not exist")
)

// MoveError records the move that failed and the step it failed at
type MoveError struct {
	Op     string
	Source string
	Target string
	Err    error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%s %q to %q: %v", e.Op, e.Source, e.Target, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

func wrapMove(op string, m Move, err error) error {
	return &MoveError{Op: op, Source: m.Source(), Target: m.Target(), Err: err}
}
