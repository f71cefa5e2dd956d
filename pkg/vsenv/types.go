// pkg/vsenv/types.go
package vsenv

import (
	"log"
	"sort"
)

// Environment is the source of ambient environment variables read during
// toolchain resolution. The process environment is used by default; tests
// substitute a fabricated one.
type Environment interface {
	// LookupEnv retrieves the value of the named variable, reporting
	// whether it is set.
	LookupEnv(key string) (string, bool)
}

// MapEnv is an Environment backed by a plain map.
type MapEnv map[string]string

// LookupEnv retrieves the value of the named variable from the map.
func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Config configures toolchain resolution.
type Config struct {
	// VersionName selects a Visual Studio release by name ("2012", "2013",
	// "2015", "2017"). Empty means the newest installed release.
	VersionName string

	// Platform is the host/target platform argument passed to
	// vcvarsall.bat ("x86", "amd64", "x86_amd64", ...). Defaults to
	// DefaultPlatform.
	Platform string

	// Env supplies the ambient environment. Defaults to the process
	// environment.
	Env Environment

	// Logger receives debug output. Discarded unless set or Debug is on.
	Logger *log.Logger

	// Debug enables logging to stderr when no Logger is given.
	Debug bool
}

// Toolchain is a handle to one resolved Visual Studio release with the
// environment its configuration script exports. The captured environment is
// immutable for the lifetime of the handle; every tool invocation reads from
// it. A Toolchain is meant for a single owner and is not safe for concurrent
// use.
type Toolchain struct {
	versionName string
	version     int
	platform    string
	installDir  string
	scriptPath  string
	environ     map[string]string
	logger      *log.Logger
	runner      commandRunner
}

// VersionName returns the resolved release name, e.g. "2015".
func (t *Toolchain) VersionName() string {
	return t.versionName
}

// Version returns the internal version number of the resolved release,
// e.g. 14 for "2015".
func (t *Toolchain) Version() int {
	return t.version
}

// Platform returns the platform argument the environment was captured for.
func (t *Toolchain) Platform() string {
	return t.platform
}

// ScriptPath returns the path of the configuration script that was run.
func (t *Toolchain) ScriptPath() string {
	return t.scriptPath
}

// Env returns a copy of the captured environment mapping.
func (t *Toolchain) Env() map[string]string {
	out := make(map[string]string, len(t.environ))
	for k, v := range t.environ {
		out[k] = v
	}
	return out
}

// Environ returns the captured environment as sorted "NAME=VALUE" strings,
// suitable for exec.Cmd.Env.
func (t *Toolchain) Environ() []string {
	out := make([]string, 0, len(t.environ))
	for k, v := range t.environ {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}

// Lookup retrieves one variable from the captured environment.
func (t *Toolchain) Lookup(name string) (string, bool) {
	v, ok := t.environ[name]
	return v, ok
}
