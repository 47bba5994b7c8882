package tinyblue

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration problems.
var (
	// ErrInvalidScreen indicates a screen without items, or a nil screen.
	// Selection on an empty screen is undefined so these are rejected up front.
	ErrInvalidScreen = errors.New("invalid screen")

	// ErrMissingRootScreen indicates navigation was attempted before a
	// screen was registered at the root path.
	ErrMissingRootScreen = errors.New("no root screen registered")

	// ErrInvalidViewport indicates fewer than one row or two columns.
	ErrInvalidViewport = errors.New("invalid viewport")

	// ErrUnknownAction indicates a menu definition names an action that
	// was not provided.
	ErrUnknownAction = errors.New("unknown action")

	// ErrUnknownScreen indicates a menu definition opens a path that it
	// does not define.
	ErrUnknownScreen = errors.New("unknown screen")
)

// DisplayError represents a failure reported by the display collaborator.
// Navigation state is already updated when a render fails; retrying Render
// redraws the same rows.
type DisplayError struct {
	Op  string // Display operation that failed (e.g., "clear", "write_string")
	Err error  // Underlying error
}

func (e *DisplayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tinyblue: display %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("tinyblue: display %s", e.Op)
}

func (e *DisplayError) Unwrap() error {
	return e.Err
}

// NewDisplayError creates a new display error.
func NewDisplayError(op string, err error) *DisplayError {
	return &DisplayError{Op: op, Err: err}
}

// IsDisplayError checks if an error came from the display collaborator.
func IsDisplayError(err error) bool {
	var displayErr *DisplayError
	return errors.As(err, &displayErr)
}
