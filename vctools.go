// vctools.go
package vctools

import (
	"github.com/rikdev/vctools/pkg/vsenv"
)

// Re-export vsenv types for convenience
type (
	Config      = vsenv.Config
	Toolchain   = vsenv.Toolchain
	Environment = vsenv.Environment
	MapEnv      = vsenv.MapEnv
)

// Versions maps supported Visual Studio release names to their internal
// version numbers.
var Versions = vsenv.Versions

// Commands lists the tool aliases available on a Toolchain.
var Commands = vsenv.Commands

// DefaultPlatform is the vcvarsall.bat platform used when none is given.
const DefaultPlatform = vsenv.DefaultPlatform

// New resolves a Visual Studio installation and captures the environment
// vcvarsall.bat exports for the configured platform. See vsenv.New.
func New(cfg *Config) (*Toolchain, error) {
	return vsenv.New(cfg)
}
