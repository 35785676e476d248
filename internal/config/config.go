package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the paths and settings the bootstrap workflow operates on.
// Every field has a default matching the dashboard repository layout, so a
// bare checkout needs no configuration file at all.
type Config struct {
	// VenvDir is the virtual environment directory, relative to the
	// invocation directory unless absolute.
	VenvDir string `yaml:"venv_dir"`

	// RequirementsFile is the pip dependency manifest. It is read by pip,
	// never modified by this tool.
	RequirementsFile string `yaml:"requirements_file"`

	// EnvFile is the generated secret-bearing configuration file.
	EnvFile string `yaml:"env_file"`

	// PythonCandidates are interpreter names probed in order when locating
	// the Python runtime.
	PythonCandidates []string `yaml:"python"`

	// Mode is the value written for the ENVIRONMENT key in the env file.
	Mode string `yaml:"mode"`

	// ServeScript is the dashboard entry point started by the run command.
	ServeScript string `yaml:"serve_script"`
}

// Default returns the configuration used when no bootstrap.yaml is present.
func Default() *Config {
	return &Config{
		VenvDir:          ".venv",
		RequirementsFile: "requirements.txt",
		EnvFile:          ".env",
		PythonCandidates: []string{"python3", "python"},
		Mode:             "production",
		ServeScript:      "serve.py",
	}
}

// Load reads the optional YAML configuration file at path and merges it over
// the defaults. A missing file is not an error; a malformed one is, since a
// half-understood config must not silently fall back to defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var overrides Config
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if overrides.VenvDir != "" {
		cfg.VenvDir = overrides.VenvDir
	}
	if overrides.RequirementsFile != "" {
		cfg.RequirementsFile = overrides.RequirementsFile
	}
	if overrides.EnvFile != "" {
		cfg.EnvFile = overrides.EnvFile
	}
	if len(overrides.PythonCandidates) > 0 {
		cfg.PythonCandidates = overrides.PythonCandidates
	}
	if overrides.Mode != "" {
		cfg.Mode = overrides.Mode
	}
	if overrides.ServeScript != "" {
		cfg.ServeScript = overrides.ServeScript
	}

	return cfg, nil
}
