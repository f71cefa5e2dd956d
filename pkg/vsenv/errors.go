// pkg/vsenv/errors.go
package vsenv

import (
	"errors"
	"fmt"
)

var (
	// ErrVersionNotSupported indicates the requested release name is not
	// one of the supported Visual Studio releases.
	ErrVersionNotSupported = errors.New("version not supported")

	// ErrNotInstalled indicates no matching Visual Studio installation
	// was found.
	ErrNotInstalled = errors.New("visual studio not installed")

	// ErrPlatformNotSupported indicates vcvarsall.bat rejected the target
	// platform or failed outright.
	ErrPlatformNotSupported = errors.New("platform not supported")

	// ErrNoEnvironment indicates the configuration script produced no
	// parseable environment variables.
	ErrNoEnvironment = errors.New("no environment captured")
)

// Error wraps an error with the operation and release it occurred for.
type Error struct {
	Op      string // Operation that failed
	Version string // Release name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Version != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Version, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
