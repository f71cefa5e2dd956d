// pkg/vsenv/capture_test.go
package vsenv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCaptureParsesEnvironment(t *testing.T) {
	ambient := map[string]string{
		"PATH":         `C:\VS2015\VC\bin;C:\Windows`,
		"INCLUDE":      `C:\VS2015\VC\include`,
		"LIB":          `C:\VS2015\VC\lib`,
		"VCINSTALLDIR": `C:\VS2015\VC\`,
	}
	runner := &fakeRunner{stdout: envDump(ambient)}

	env, err := capture("2015", `C:\VS2015\VC\vcvarsall.bat`, "x86", runner)
	require.NoError(t, err)
	require.Equal(t, ambient, env)
}

func TestCaptureRoundTripsNoOpScript(t *testing.T) {
	// A script that exits zero without changing anything dumps exactly
	// the ambient environment it was run in.
	ambient := MapEnv{"FOO": "bar", "PATH": `C:\Windows`}
	runner := &fakeRunner{stdout: []byte("FOO=bar\r\nPATH=C:\\Windows\r\n")}

	env, err := capture("2015", `C:\noop.bat`, "x86", runner)
	require.NoError(t, err)
	require.Equal(t, map[string]string(ambient), env)
}

func TestCaptureRejectsScriptFailure(t *testing.T) {
	tests := []struct {
		name   string
		runner *fakeRunner
	}{
		{
			name:   "non-zero exit",
			runner: &fakeRunner{outputErr: errors.New("exit status 1")},
		},
		{
			name:   "usage error marker in stdout",
			runner: &fakeRunner{stdout: []byte("Error in script usage. The correct usage is...\r\n")},
		},
		{
			name:   "stderr output",
			runner: &fakeRunner{stdout: []byte("FOO=bar\r\n"), stderr: []byte("The system cannot find the path specified.\r\n")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := capture("2015", `C:\VS2015\VC\vcvarsall.bat`, "ia64", tt.runner)
			require.ErrorIs(t, err, ErrPlatformNotSupported)
		})
	}
}

func TestCaptureRejectsEmptyEnvironment(t *testing.T) {
	runner := &fakeRunner{stdout: []byte("banner text without variables\r\n")}

	_, err := capture("2015", `C:\VS2015\VC\vcvarsall.bat`, "x86", runner)
	require.ErrorIs(t, err, ErrNoEnvironment)
}

func TestCaptureCmdLine(t *testing.T) {
	// The line goes to CreateProcess verbatim via SysProcAttr.CmdLine, so
	// this is exactly what cmd.exe receives: no CommandLineToArgvW-style
	// re-escaping may be layered on top of the quoting done here.
	line := captureCmdLine(`C:\Program Files (x86)\Microsoft Visual Studio 14.0\VC\vcvarsall.bat`, "amd64")

	require.Equal(t,
		`cmd.exe /S /C ""C:\Program Files (x86)\Microsoft Visual Studio 14.0\VC\vcvarsall.bat" amd64 > nul && set"`,
		line)
}

func TestCaptureRunsRawCommandLine(t *testing.T) {
	ambient := map[string]string{"PATH": `C:\Windows`}
	runner := &fakeRunner{stdout: envDump(ambient)}

	_, err := capture("2015", `C:\Program Files (x86)\Microsoft Visual Studio 14.0\VC\vcvarsall.bat`, "x86", runner)
	require.NoError(t, err)
	require.Equal(t, []string{
		`cmd.exe /S /C ""C:\Program Files (x86)\Microsoft Visual Studio 14.0\VC\vcvarsall.bat" x86 > nul && set"`,
	}, runner.outputCalls)
}
