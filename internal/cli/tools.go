// internal/cli/tools.go
package cli

import (
	"github.com/rikdev/vctools/pkg/vsenv"
	"github.com/spf13/cobra"
)

// toolSummaries describes each tool alias in help output.
var toolSummaries = map[string]string{
	"cl":      "Compile with the C/C++ compiler",
	"ml":      "Assemble with the macro assembler",
	"link":    "Link objects with the linker",
	"lib":     "Manage static libraries with the library manager",
	"msbuild": "Build a project or solution with MSBuild",
	"nmake":   "Build with NMake",
	"devenv":  "Run the Visual Studio IDE",
}

// addToolCommands registers one subcommand per tool alias from the table in
// vsenv, so the CLI surface stays in sync with the library.
func addToolCommands(root *cobra.Command) {
	for _, name := range vsenv.Commands {
		name := name
		cmd := &cobra.Command{
			Use:   name + " [args...]",
			Short: toolSummaries[name],
			RunE: func(cmd *cobra.Command, args []string) error {
				tc, err := newToolchain()
				if err != nil {
					return err
				}
				return tc.Command(cmd.Context(), name, args...)
			},
		}
		cmd.Flags().SetInterspersed(false)
		root.AddCommand(cmd)
	}
}
