// internal/logger/logger.go
package logger

import (
	"github.com/fatih/color"
)

// Leveled printf-style functions colored by severity. Warnings go to
// stdout, errors to stderr; tool output from child processes is never
// routed through here.

// Warn logs warnings in bright magenta.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Debug logs debug messages in cyan when enabled, otherwise is a no-op.
var Debug func(format string, a ...any)

var errorf = color.New(color.FgRed).FprintfFunc()

// Error logs errors in red to stderr.
func Error(format string, a ...any) {
	errorf(color.Error, format, a...)
}

// Init enables or disables debug logging.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
