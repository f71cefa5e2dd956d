// pkg/vsenv/fake_test.go
package vsenv

import (
	"context"
	"strings"
)

// fakeRunner records every process boundary call and plays back scripted
// output, so tests never spawn cmd.exe.
type fakeRunner struct {
	stdout    []byte
	stderr    []byte
	outputErr error
	runErr    error

	outputCalls []string
	runCalls    []fakeRunCall
}

type fakeRunCall struct {
	argv []string
	env  []string
}

func (f *fakeRunner) Output(cmdline string) ([]byte, []byte, error) {
	f.outputCalls = append(f.outputCalls, cmdline)
	return f.stdout, f.stderr, f.outputErr
}

func (f *fakeRunner) Run(ctx context.Context, argv []string, env []string) error {
	f.runCalls = append(f.runCalls, fakeRunCall{argv: argv, env: env})
	return f.runErr
}

// envDump renders an environment the way the cmd.exe "set" builtin prints
// it, one NAME=VALUE per line.
func envDump(env map[string]string) []byte {
	var b strings.Builder
	for k, v := range env {
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(v)
		b.WriteString("\r\n")
	}
	return []byte(b.String())
}
