package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"tko-bootstrap/internal/bootstrap"
	"tko-bootstrap/internal/config"
	"tko-bootstrap/internal/logger"
)

// setupCmd runs the full bootstrap workflow: check the Python runtime,
// provision the virtual environment, install dependencies, and write a fresh
// .env with newly generated secrets. Safe to re-run at any time; an existing
// environment is reused and an existing .env is backed up before replacement.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Prepare the dashboard environment (venv, dependencies, secrets)",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configPath)
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			os.Exit(bootstrap.ExitBadConfig)
		}

		if code := bootstrap.Run(cfg); code != bootstrap.ExitSuccess {
			os.Exit(code)
		}
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
