package logger

import (
	"os"

	"github.com/fatih/color" // Colored console output for the different log levels
	"github.com/mattn/go-isatty"
)

// Define colorized printing functions for different log levels using fatih/color.
// These are package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the log level.

// Info logs informational messages in green color.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta color.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red color.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It starts as a no-op and is reassigned during Init based on the debug flag.
var Debug = func(format string, a ...any) {}

// Init initializes the logger package, enabling or disabling debug logging.
// When stdout is not a terminal (e.g. output redirected to a file), ANSI
// color codes are suppressed so the staged progress output stays plain text.
func Init(enableDebug bool) {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		// No-op function that silently ignores debug logs.
		Debug = func(format string, a ...any) {}
	}
}
