// pkg/vsenv/platform.go
package vsenv

import "strings"

// Platforms lists the host/target platform arguments vcvarsall.bat accepts
// across the supported releases.
var Platforms = []string{
	"x86",
	"amd64",
	"arm",
	"x86_amd64",
	"x86_arm",
	"amd64_x86",
	"amd64_arm",
}

// KnownPlatform reports whether the given platform argument is one of the
// documented vcvarsall.bat platforms. Unknown values are still passed
// through to the script, which is authoritative; this only exists so the
// CLI can warn early.
func KnownPlatform(platform string) bool {
	for _, p := range Platforms {
		if strings.EqualFold(p, platform) {
			return true
		}
	}
	return false
}
