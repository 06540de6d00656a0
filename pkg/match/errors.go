package match

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPattern is returned when a matcher is built from an empty pattern
	ErrEmptyPattern = errors.New("empty search pattern")
)

// PatternError reports a regular expression that failed to compile
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
