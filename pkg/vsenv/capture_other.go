//go:build !windows

// pkg/vsenv/capture_other.go
package vsenv

import "fmt"

// Output needs cmd.exe; environment capture only works on Windows.
func (execRunner) Output(cmdline string) ([]byte, []byte, error) {
	return nil, nil, fmt.Errorf("cmd.exe is not available on this platform")
}
