package bootstrap

import (
	"tko-bootstrap/internal/config"
	"tko-bootstrap/internal/deps"
	"tko-bootstrap/internal/logger"
	"tko-bootstrap/internal/python"
	"tko-bootstrap/internal/secrets"
	"tko-bootstrap/internal/venv"
)

// Process exit codes. These form the operational contract with scripts and
// operators wrapping the bootstrap; the values are stable.
const (
	ExitSuccess           = 0 // All four steps completed
	ExitBadConfig         = 1 // bootstrap.yaml present but malformed (before any step runs)
	ExitRuntimeMissing    = 2 // Python interpreter not found or not invokable
	ExitEnvCreateFailed   = 3 // Virtual environment creation failed
	ExitActivationFailed  = 4 // Toolchain binaries missing inside the environment
	ExitInstallFailed     = 5 // Dependency manifest install failed
	ExitConfigWriteFailed = 6 // Secret configuration file could not be written
)

// Run executes the bootstrap workflow: runtime check, environment
// provisioning, dependency install, secret config write. Steps run strictly
// in order and the first failure halts the sequence; nothing already done is
// rolled back, the operator fixes the reported condition and re-runs.
func Run(cfg *config.Config) int {
	logger.Info("[1/4] Checking for Python...\n")
	rt, err := python.Find(cfg.PythonCandidates)
	if err != nil {
		logger.Error("[ERROR] %v\n", err)
		logger.Error("%s\n", python.InstallHints())
		return ExitRuntimeMissing
	}
	logger.Info("[INFO] Found Python %s at %s\n", rt.Version, rt.Path)

	logger.Info("[2/4] Provisioning virtual environment at %s...\n", cfg.VenvDir)
	created, err := venv.Ensure(rt, cfg.VenvDir)
	if err != nil {
		logger.Error("[ERROR] %v\n", err)
		return ExitEnvCreateFailed
	}
	if created {
		logger.Info("[INFO] Created virtual environment %s\n", cfg.VenvDir)
	} else {
		logger.Info("[INFO] Virtual environment %s already exists. Skipping creation.\n", cfg.VenvDir)
	}

	tc, err := venv.Resolve(cfg.VenvDir)
	if err != nil {
		logger.Error("[ERROR] %v\n", err)
		return ExitActivationFailed
	}

	logger.Info("[3/4] Installing dependencies from %s...\n", cfg.RequirementsFile)
	if err := deps.Install(tc, cfg.RequirementsFile); err != nil {
		logger.Error("[ERROR] %v\n", err)
		return ExitInstallFailed
	}
	deps.InstallProject(tc, ".")

	logger.Info("[4/4] Writing %s...\n", cfg.EnvFile)
	if err := secrets.WriteEnvFile(cfg.EnvFile, cfg.Mode); err != nil {
		logger.Error("[ERROR] %v\n", err)
		return ExitConfigWriteFailed
	}

	logger.Info("[INFO] Bootstrap complete.\n")
	logger.Info("[INFO] Next steps:\n")
	logger.Info("[INFO]   tko-bootstrap run\n")
	logger.Info("[INFO]   then open http://127.0.0.1:5000\n")
	return ExitSuccess
}
