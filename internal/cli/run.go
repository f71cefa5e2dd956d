// internal/cli/run.go
package cli

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <command> [args...]",
	Short: "Run an arbitrary command under the captured environment",
	Long: `Run any command with the environment vcvarsall.bat would set,
in place of the ambient environment.

Examples:
  vctools run cl /EP main.cpp
  vctools -t amd64 run dumpbin /exports main.exe
  vctools -V 2015 run cmake -G "NMake Makefiles" ..`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	// Flags after the command name belong to the tool, not to vctools.
	runCmd.Flags().SetInterspersed(false)
}

func runRun(cmd *cobra.Command, args []string) error {
	tc, err := newToolchain()
	if err != nil {
		return err
	}
	return tc.Run(cmd.Context(), args...)
}
