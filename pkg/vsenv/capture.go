// pkg/vsenv/capture.go
package vsenv

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
)

// commandRunner is the process boundary used by capture and Run. Tests
// substitute a recording fake so no child process is spawned.
type commandRunner interface {
	// Output runs a raw cmd.exe command line and returns its captured
	// standard streams.
	Output(cmdline string) (stdout, stderr []byte, err error)
	// Run runs argv with the given environment and inherited standard
	// streams, blocking until it exits.
	Run(ctx context.Context, argv []string, env []string) error
}

// execRunner spawns real child processes via os/exec. Output is platform
// specific; see capture_windows.go.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, argv []string, env []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// captureCmdLine builds the cmd.exe command line that runs the
// configuration script for a platform and dumps the resulting environment.
// The whole command is wrapped in an extra pair of quotes and run with /S,
// so cmd.exe strips exactly those and the quoted script path survives even
// with spaces and parentheses in it. The script's own output is discarded;
// only the "set" dump reaches stdout.
func captureCmdLine(script, platform string) string {
	return fmt.Sprintf(`cmd.exe /S /C ""%s" %s > nul && set"`, script, platform)
}

// capture runs the configuration script and parses the environment it
// exports. vcvarsall.bat exits zero even on bad arguments, so stderr output
// and its usage-error marker are treated as failures too.
func capture(versionName, script, platform string, runner commandRunner) (map[string]string, error) {
	stdout, stderr, err := runner.Output(captureCmdLine(script, platform))
	if err != nil || len(stderr) > 0 || bytes.Contains(stdout, []byte(scriptUsageError)) {
		detail := string(bytes.TrimSpace(append(stdout, stderr...)))
		if err != nil {
			if detail != "" {
				return nil, &Error{Op: "capture", Version: versionName, Err: fmt.Errorf("%w: %v: %s", ErrPlatformNotSupported, err, detail)}
			}
			return nil, &Error{Op: "capture", Version: versionName, Err: fmt.Errorf("%w: %v", ErrPlatformNotSupported, err)}
		}
		return nil, &Error{Op: "capture", Version: versionName, Err: fmt.Errorf("%w: %s", ErrPlatformNotSupported, detail)}
	}

	env := ParseEnv(bytes.NewReader(stdout))
	if len(env) == 0 {
		return nil, &Error{Op: "capture", Version: versionName, Err: ErrNoEnvironment}
	}

	return env, nil
}
