// pkg/vsenv/runner.go
package vsenv

import (
	"context"
	"fmt"
	"strings"
)

// Run executes an arbitrary command with the captured environment in place
// of the ambient one. Standard streams are inherited so build output stays
// visible; the child's exit status is propagated as the returned error.
func (t *Toolchain) Run(ctx context.Context, argv ...string) error {
	if len(argv) == 0 {
		return &Error{Op: "run", Version: t.versionName, Err: fmt.Errorf("empty command")}
	}

	t.logger.Printf("running %s", strings.Join(argv, " "))
	if err := t.runner.Run(ctx, argv, t.Environ()); err != nil {
		return &Error{Op: argv[0], Version: t.versionName, Err: err}
	}
	return nil
}

// Command runs one of the tool aliases listed in Commands, prepending the
// tool name to the given arguments. Unknown names are rejected so typos do
// not silently fall through to cmd.exe lookup.
func (t *Toolchain) Command(ctx context.Context, tool string, args ...string) error {
	known := false
	for _, name := range Commands {
		if name == tool {
			known = true
			break
		}
	}
	if !known {
		return &Error{Op: "run", Version: t.versionName, Err: fmt.Errorf("unknown tool %q", tool)}
	}
	return t.Run(ctx, append([]string{tool}, args...)...)
}

// CL runs the C/C++ compiler.
func (t *Toolchain) CL(ctx context.Context, args ...string) error {
	return t.Command(ctx, "cl", args...)
}

// ML runs the assembler.
func (t *Toolchain) ML(ctx context.Context, args ...string) error {
	return t.Command(ctx, "ml", args...)
}

// Link runs the linker.
func (t *Toolchain) Link(ctx context.Context, args ...string) error {
	return t.Command(ctx, "link", args...)
}

// Lib runs the library manager.
func (t *Toolchain) Lib(ctx context.Context, args ...string) error {
	return t.Command(ctx, "lib", args...)
}

// MSBuild runs MSBuild.
func (t *Toolchain) MSBuild(ctx context.Context, args ...string) error {
	return t.Command(ctx, "msbuild", args...)
}

// NMake runs NMake.
func (t *Toolchain) NMake(ctx context.Context, args ...string) error {
	return t.Command(ctx, "nmake", args...)
}

// Devenv runs the Visual Studio IDE executable.
func (t *Toolchain) Devenv(ctx context.Context, args ...string) error {
	return t.Command(ctx, "devenv", args...)
}

// VCInstallDir returns the Visual C++ install directory from the captured
// environment.
func (t *Toolchain) VCInstallDir() string {
	return t.environ["VCINSTALLDIR"]
}

// VSInstallDir returns the Visual Studio install directory. Older releases
// do not always export VSINSTALLDIR, so the resolved install directory is
// the fallback, normalized so callers do not see the ..\.. left over from
// following VS<N>0COMNTOOLS.
func (t *Toolchain) VSInstallDir() string {
	if dir, ok := t.environ["VSINSTALLDIR"]; ok && dir != "" {
		return dir
	}
	return normalizePath(t.installDir)
}

// TargetPlatform returns the PLATFORM value the script exported, uppercased.
// vcvarsall.bat leaves it unset for 32-bit targets, hence the X86 default.
func (t *Toolchain) TargetPlatform() string {
	if p, ok := t.environ["PLATFORM"]; ok && p != "" {
		return strings.ToUpper(p)
	}
	return "X86"
}
