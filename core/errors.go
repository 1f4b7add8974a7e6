package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAction    = errors.New("invalid action")
	ErrConfiguration    = errors.New("invalid configuration")
	ErrContextCancelled = errors.New("context cancelled")
)

// InvalidActionError returns ErrInvalidAction annotated with the
// offending action and the valid range
func InvalidActionError(action, numActions int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidAction, action, numActions)
}

// ConfigurationError returns ErrConfiguration annotated with a message
func ConfigurationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
