//go:build !windows

// pkg/vsenv/registry_other.go
package vsenv

// installDirFromRegistry has no equivalent outside Windows; resolution
// relies on the VS<N>0COMNTOOLS variables alone.
func installDirFromRegistry(version int) (string, bool) {
	return "", false
}
