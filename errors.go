// errors.go
package vctools

import (
	"github.com/rikdev/vctools/pkg/vsenv"
)

var (
	// ErrVersionNotSupported indicates the requested release name is not
	// one of the supported Visual Studio releases.
	ErrVersionNotSupported = vsenv.ErrVersionNotSupported

	// ErrNotInstalled indicates no matching Visual Studio installation
	// was found.
	ErrNotInstalled = vsenv.ErrNotInstalled

	// ErrPlatformNotSupported indicates vcvarsall.bat rejected the target
	// platform or failed outright.
	ErrPlatformNotSupported = vsenv.ErrPlatformNotSupported

	// ErrNoEnvironment indicates the configuration script produced no
	// parseable environment variables.
	ErrNoEnvironment = vsenv.ErrNoEnvironment
)

// Error wraps an error with the operation and release it occurred for.
type Error = vsenv.Error
