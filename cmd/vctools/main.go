// cmd/vctools/main.go
package main

import (
	"errors"
	"os"
	"os/exec"

	"github.com/rikdev/vctools/internal/cli"
	"github.com/rikdev/vctools/internal/logger"
)

func main() {
	if err := cli.Execute(); err != nil {
		logger.Error("Error: %v\n", err)

		// A failed tool invocation keeps its own exit status.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}
