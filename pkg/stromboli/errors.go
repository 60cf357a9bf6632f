package stromboli

import (
	"errors"
	"fmt"
)

// Sentinel errors for construction-time invariant violations.
var (
	// ErrModeConflict indicates a Container was given both an external
	// navigation handle and a container options object. The combination is
	// ambiguous (unclear whether the container or the caller owns state) and
	// is never resolved silently.
	ErrModeConflict = errors.New("cannot supply both a navigation handle and container options; pass one or the other")

	// ErrMissingRouter indicates a stateful Container was constructed
	// without a Router.
	ErrMissingRouter = errors.New("a stateful container requires a router")

	// ErrMissingPressHandler indicates a BackButton was constructed without
	// its required press callback.
	ErrMissingPressHandler = errors.New("back button requires a press handler")
)

// InfrastructureError represents a framework-level error that indicates
// something is wrong below the navigation layer itself (an input device
// could not be opened, an event watch could not be installed, a config file
// could not be read). These errors typically require host-level recovery.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "open_input_device")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stromboli: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("stromboli: %s", e.Op)
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
