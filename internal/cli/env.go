// internal/cli/env.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the captured environment",
	Long: `Print the environment vcvarsall.bat exports for the selected release
and platform, one NAME=VALUE per line, without running any tool.`,
	Args: cobra.NoArgs,
	RunE: runEnv,
}

func runEnv(cmd *cobra.Command, args []string) error {
	tc, err := newToolchain()
	if err != nil {
		return err
	}

	for _, kv := range tc.Environ() {
		fmt.Println(kv)
	}
	return nil
}
