//go:build windows

// pkg/vsenv/registry_windows.go
package vsenv

import (
	"fmt"
	"strings"

	"golang.org/x/sys/windows/registry"
)

// installDirFromRegistry looks up the install directory of one Visual
// Studio version in the 32-bit SxS\VS7 registry key. Installers always
// write the 32-bit view regardless of process architecture.
func installDirFromRegistry(version int) (string, bool) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, registryKey, registry.QUERY_VALUE|registry.WOW64_32KEY)
	if err != nil {
		return "", false
	}
	defer key.Close()

	dir, _, err := key.GetStringValue(fmt.Sprintf("%d.0", version))
	if err != nil || dir == "" {
		return "", false
	}
	return strings.TrimRight(dir, `\`), true
}
