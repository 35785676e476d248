package cmd

import (
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"tko-bootstrap/internal/bootstrap"
	"tko-bootstrap/internal/config"
	"tko-bootstrap/internal/logger"
	"tko-bootstrap/internal/venv"
)

// runCmd starts the dashboard server through the virtual environment's
// interpreter, forwarding any extra arguments verbatim (database path, --host,
// --port, --debug and so on are handled by the server itself).
var runCmd = &cobra.Command{
	Use:   "run [args...]",
	Short: "Start the dashboard server from the bootstrapped environment",
	// Everything after `run` belongs to the server, including flags like
	// --port, so cobra must not try to parse any of it.
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configPath)
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			os.Exit(bootstrap.ExitBadConfig)
		}

		tc, err := venv.Resolve(cfg.VenvDir)
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			logger.Error("[ERROR] Run `tko-bootstrap setup` first.\n")
			os.Exit(bootstrap.ExitActivationFailed)
		}

		serve := exec.Command(tc.Python, append([]string{cfg.ServeScript}, args...)...)
		logger.Debug("[DEBUG] Running command: %s\n", strings.Join(serve.Args, " "))
		serve.Stdin = os.Stdin
		serve.Stdout = os.Stdout
		serve.Stderr = os.Stderr
		if err := serve.Run(); err != nil {
			if exitErr, ok := err.(*exec.ExitError); ok {
				os.Exit(exitErr.ExitCode())
			}
			logger.Error("[ERROR] Failed to start dashboard: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
