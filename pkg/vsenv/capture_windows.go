//go:build windows

// pkg/vsenv/capture_windows.go
package vsenv

import (
	"bytes"
	"os/exec"
	"syscall"
)

// Output runs a raw cmd.exe command line. os/exec escapes every argument
// CommandLineToArgvW-style, which cmd.exe does not understand, so the line
// is handed to CreateProcess verbatim through SysProcAttr.CmdLine instead.
func (execRunner) Output(cmdline string) ([]byte, []byte, error) {
	cmd := exec.Command("cmd.exe")
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: cmdline}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
