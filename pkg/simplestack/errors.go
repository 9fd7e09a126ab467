package simplestack

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNotMounted indicates the navigator has no stack yet, or has been unmounted.
	ErrNotMounted = errors.New("navigator not mounted")

	// ErrUnknownPlatform indicates a configured platform name is not recognized.
	ErrUnknownPlatform = errors.New("unknown platform")
)

// InfrastructureError represents a failure of the surroundings of the
// navigator rather than of navigation itself: a config file that cannot be
// read, a message catalog that does not parse, an input device that cannot
// be opened.
//
// Navigation operations never produce errors; they clamp or ignore.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "load_config", "open_input")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("simplestack: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("simplestack: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsNotMounted checks if an error indicates the navigator is not mounted.
func IsNotMounted(err error) bool {
	return errors.Is(err, ErrNotMounted)
}
