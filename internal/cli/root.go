// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/rikdev/vctools/internal/logger"
	"github.com/rikdev/vctools/pkg/core"
	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	versionName string
	platform    string
	debug       bool
	config      *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vctools",
	Short: "Visual Studio C++ tools runner",
	Long: `vctools - Visual Studio C++ tools runner

Loads the environment vcvarsall.bat would set for an installed Visual
Studio release and runs compiler, linker and build tools under it,
without opening a developer command prompt.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/vctools/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&versionName, "version-name", "V", "", "Visual Studio release (2012, 2013, 2015, 2017; default: newest installed)")
	rootCmd.PersistentFlags().StringVarP(&platform, "target-platform", "t", "", "vcvarsall.bat platform argument (x86, amd64, x86_amd64, ...)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(versionCmd)
	addToolCommands(rootCmd)
}

func initConfig() {
	logger.Init(debug)

	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if versionName != "" {
		config.VersionName = versionName
	}
	if platform != "" {
		config.Platform = platform
	}
	if debug {
		config.Debug = true
	}
}
