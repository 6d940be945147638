package toolchain

import (
	"errors"
	"fmt"
)

// ErrLaunch wraps failures to start an external tool at all (missing
// interpreter, unusable working directory). Distinct from a tool that
// ran and exited non-zero.
var ErrLaunch = errors.New("failed to launch tool")

// ExitError reports a tool that ran to completion but exited non-zero.
type ExitError struct {
	Module string
	Code   int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Module, e.Code)
}

// IsExit reports whether err is a non-zero exit from an external tool,
// as opposed to a launch failure or context cancellation.
func IsExit(err error) bool {
	var ee *ExitError
	return errors.As(err, &ee)
}
