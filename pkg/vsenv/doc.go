// pkg/vsenv/doc.go
package vsenv

/*
Package vsenv locates an installed Visual Studio toolchain and captures the
environment its vcvarsall.bat script exports, so compiler and build tools
can be run outside a developer command prompt.

It handles:
  - Resolving install directories from the VS<N>0COMNTOOLS variables
    (with a registry fallback on Windows)
  - Running vcvarsall.bat for a target platform and capturing the full
    environment it produces
  - Running cl, ml, link, lib, msbuild, nmake and devenv under that
    captured environment

Basic Usage:

    import "github.com/rikdev/vctools/pkg/vsenv"

    // Resolve the newest installed release for 64-bit builds
    tc, err := vsenv.New(&vsenv.Config{Platform: "amd64"})
    if err != nil {
        log.Fatal(err)
    }

    // Compile a source file
    ctx := context.Background()
    if err := tc.CL(ctx, "main.cpp"); err != nil {
        log.Fatal(err)
    }

    // Or run anything else under the captured environment
    _ = tc.Run(ctx, "dumpbin", "/exports", "main.exe")

Resolution happens once, at construction: the handle either fully works or
New returns an error. The captured environment is never re-read or merged,
and each invocation spawns an independent child process that blocks until
the tool exits.
*/
