// internal/cli/toolchain.go
package cli

import (
	"log"
	"os"

	"github.com/rikdev/vctools/internal/logger"
	"github.com/rikdev/vctools/pkg/vsenv"
)

// newToolchain resolves the toolchain selected by flags and config. Every
// subcommand resolves fresh; nothing is cached between runs.
func newToolchain() (*vsenv.Toolchain, error) {
	if config.Platform != "" && !vsenv.KnownPlatform(config.Platform) {
		logger.Warn("platform %q is not a documented vcvarsall.bat platform, passing it through\n", config.Platform)
	}

	cfg := &vsenv.Config{
		VersionName: config.VersionName,
		Platform:    config.Platform,
		Debug:       config.Debug,
	}
	if config.Debug {
		cfg.Logger = log.New(os.Stderr, "[vctools] ", log.LstdFlags)
	}

	tc, err := vsenv.New(cfg)
	if err != nil {
		return nil, err
	}

	logger.Debug("using Visual Studio %s (%s, platform %s)\n", tc.VersionName(), tc.ScriptPath(), tc.Platform())
	return tc, nil
}
