// pkg/vsenv/constants.go
package vsenv

// Versions maps a Visual Studio release name to its internal version number.
// The version number is used to build the VS<N>0COMNTOOLS variable name and
// the registry value name for that release.
var Versions = map[string]int{
	"2012": 11,
	"2013": 12,
	"2015": 14,
	"2017": 15,
}

// Releases starting with 2017 moved vcvarsall.bat under VC\Auxiliary\Build.
const auxiliaryBuildVersion = 15

// DefaultPlatform is the vcvarsall.bat argument used when none is given.
const DefaultPlatform = "x86"

// Commands lists the tool aliases available on a Toolchain, in the order
// they are presented to the user.
var Commands = []string{
	"cl",
	"ml",
	"link",
	"lib",
	"msbuild",
	"nmake",
	"devenv",
}

// registryKey is the 32-bit registry key holding Visual Studio install
// directories, one value per "<N>.0" version.
const registryKey = `SOFTWARE\Microsoft\VisualStudio\SxS\VS7`

// scriptUsageError is printed by vcvarsall.bat when it rejects its
// arguments. The script exits zero even then, so the marker is the only
// reliable failure signal.
const scriptUsageError = "Error in script usage."
