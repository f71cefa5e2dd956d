// pkg/vsenv/resolver.go
package vsenv

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
)

// osEnv reads the process environment.
type osEnv struct{}

func (osEnv) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

// New resolves a Visual Studio installation and captures the environment its
// vcvarsall.bat exports for the configured platform. With an explicit
// VersionName the named release must be installed; otherwise the newest
// installed release that accepts the platform is selected. The returned
// handle either fully works or New returns an error; there is no partial
// state.
func New(cfg *Config) (*Toolchain, error) {
	return newToolchain(cfg, execRunner{})
}

func newToolchain(cfg *Config, runner commandRunner) (*Toolchain, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	platform := cfg.Platform
	if platform == "" {
		platform = DefaultPlatform
	}

	env := cfg.Env
	if env == nil {
		env = osEnv{}
	}

	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stderr, "[vsenv] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	if cfg.VersionName != "" {
		version, ok := Versions[cfg.VersionName]
		if !ok {
			return nil, &Error{Op: "resolve", Version: cfg.VersionName, Err: ErrVersionNotSupported}
		}
		return loadRelease(cfg.VersionName, version, platform, env, logger, runner)
	}

	// Scan for the newest installed release. A release that is missing or
	// rejects the platform is skipped; anything else is fatal.
	for _, name := range releasesNewestFirst() {
		tc, err := loadRelease(name, Versions[name], platform, env, logger, runner)
		if err != nil {
			if errors.Is(err, ErrNotInstalled) || errors.Is(err, ErrPlatformNotSupported) {
				logger.Printf("skipping %s: %v", name, err)
				continue
			}
			return nil, err
		}
		return tc, nil
	}

	return nil, &Error{Op: "resolve", Err: fmt.Errorf("%w for platform %s", ErrNotInstalled, platform)}
}

func loadRelease(name string, version int, platform string, env Environment, logger *log.Logger, runner commandRunner) (*Toolchain, error) {
	install, err := installDir(env, name, version)
	if err != nil {
		return nil, err
	}

	script := scriptPath(install, version)
	logger.Printf("resolved %s: %s", name, script)

	environ, err := capture(name, script, platform, runner)
	if err != nil {
		return nil, err
	}
	logger.Printf("captured %d variables for %s/%s", len(environ), name, platform)

	return &Toolchain{
		versionName: name,
		version:     version,
		platform:    platform,
		installDir:  install,
		scriptPath:  script,
		environ:     environ,
		logger:      logger,
		runner:      runner,
	}, nil
}

// comntoolsVar returns the environment variable name holding the Common7
// tools directory of the given release, e.g. VS140COMNTOOLS.
func comntoolsVar(version int) string {
	return fmt.Sprintf("VS%d0COMNTOOLS", version)
}

// installDir resolves the Visual Studio install directory of one release.
// The VS<N>0COMNTOOLS variable points at Common7\Tools, two levels below the
// install root; when it is absent the registry is consulted.
func installDir(env Environment, name string, version int) (string, error) {
	varName := comntoolsVar(version)
	if tools, ok := env.LookupEnv(varName); ok && tools != "" {
		return joinPath(tools, "..", ".."), nil
	}
	// The registry describes the real machine, so the fallback only applies
	// when resolving against the real process environment.
	if _, isOS := env.(osEnv); isOS {
		if dir, ok := installDirFromRegistry(version); ok {
			return dir, nil
		}
	}
	return "", &Error{Op: "resolve", Version: name, Err: fmt.Errorf("%w (%s not set)", ErrNotInstalled, varName)}
}

// scriptPath returns the vcvarsall.bat location under an install directory.
func scriptPath(installDir string, version int) string {
	if version >= auxiliaryBuildVersion {
		return joinPath(installDir, "VC", "Auxiliary", "Build", "vcvarsall.bat")
	}
	return joinPath(installDir, "VC", "vcvarsall.bat")
}

// joinPath joins Windows path elements with backslashes without normalizing
// them. The paths only ever reach cmd.exe, which resolves ".." itself, and
// keeping them verbatim preserves the directory the variable actually named.
func joinPath(elem ...string) string {
	parts := make([]string, 0, len(elem))
	for _, e := range elem {
		e = strings.TrimRight(e, `\`)
		if e != "" {
			parts = append(parts, e)
		}
	}
	return strings.Join(parts, `\`)
}

// normalizePath collapses "." and ".." elements of a backslash path, e.g.
// C:\VS\Common7\Tools\..\.. becomes C:\VS. Used for paths handed back to
// callers; the paths given to cmd.exe stay verbatim.
func normalizePath(p string) string {
	parts := strings.Split(p, `\`)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		switch part {
		case ".":
		case "..":
			if n := len(out); n > 0 && out[n-1] != ".." {
				out = out[:n-1]
			} else {
				out = append(out, part)
			}
		default:
			out = append(out, part)
		}
	}
	return strings.Join(out, `\`)
}

// releasesNewestFirst returns the supported release names ordered from
// newest to oldest.
func releasesNewestFirst() []string {
	names := make([]string, 0, len(Versions))
	for name := range Versions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return Versions[names[i]] > Versions[names[j]]
	})
	return names
}
