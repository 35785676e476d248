package cmd

import (
	"github.com/spf13/cobra"

	"tko-bootstrap/internal/logger"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// configPath holds the path to the optional bootstrap configuration file.
var configPath string

// rootCmd is the base command for the CLI tool `tko-bootstrap`.
var rootCmd = &cobra.Command{
	Use:   "tko-bootstrap",
	Short: "Bootstrap tool for the TKO Analytics dashboard",

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute initializes flags, registers subcommands, and starts the command
// execution. It's the entry point for the CLI when invoked by the user.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "bootstrap.yaml", "Path to configuration file")

	_ = rootCmd.Execute()
}
