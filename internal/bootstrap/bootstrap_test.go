package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tko-bootstrap/internal/config"
)

// fixture builds a working directory with a requirements manifest and a
// stand-in python interpreter. The interpreter's `-m venv` creates a minimal
// environment whose pip behaves per pipBody.
func fixture(t *testing.T, pipBody string) *config.Config {
	t.Helper()
	dir := t.TempDir()

	pythonScript := `#!/bin/sh
here=$(dirname "$0")
if [ "$1" = "--version" ]; then
  echo "Python 3.12.1"
  exit 0
fi
if [ "$1" = "-m" ] && [ "$2" = "venv" ]; then
  mkdir -p "$3/bin" || exit 1
  printf '#!/bin/sh\necho "Python 3.12.1"\n' > "$3/bin/python"
  cp "$here/pip-template" "$3/bin/pip"
  chmod +x "$3/bin/python" "$3/bin/pip"
  exit 0
fi
exit 1
`
	fakePython := filepath.Join(dir, "python3")
	require.NoError(t, os.WriteFile(fakePython, []byte(pythonScript), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pip-template"), []byte("#!/bin/sh\n"+pipBody+"\n"), 0755))

	manifest := filepath.Join(dir, "requirements.txt")
	require.NoError(t, os.WriteFile(manifest, []byte("flask==3.0.0\n"), 0644))

	return &config.Config{
		VenvDir:          filepath.Join(dir, ".venv"),
		RequirementsFile: manifest,
		EnvFile:          filepath.Join(dir, ".env"),
		PythonCandidates: []string{fakePython},
		Mode:             "production",
		ServeScript:      "serve.py",
	}
}

func TestRunSucceedsEndToEnd(t *testing.T) {
	cfg := fixture(t, "exit 0")

	code := Run(cfg)
	require.Equal(t, ExitSuccess, code)

	assert.DirExists(t, cfg.VenvDir)
	assert.FileExists(t, cfg.EnvFile)
	assert.NoFileExists(t, cfg.EnvFile+".backup")
}

func TestRunTwiceIsSafe(t *testing.T) {
	cfg := fixture(t, "exit 0")

	require.Equal(t, ExitSuccess, Run(cfg))
	firstEnv, err := os.ReadFile(cfg.EnvFile)
	require.NoError(t, err)

	require.Equal(t, ExitSuccess, Run(cfg))

	// Exactly one environment and one backup from the second run.
	assert.DirExists(t, cfg.VenvDir)
	backup, err := os.ReadFile(cfg.EnvFile + ".backup")
	require.NoError(t, err)
	assert.Equal(t, firstEnv, backup)

	secondEnv, err := os.ReadFile(cfg.EnvFile)
	require.NoError(t, err)
	assert.NotEqual(t, firstEnv, secondEnv, "re-running must generate fresh secrets")
}

func TestRunStopsWhenRuntimeMissing(t *testing.T) {
	cfg := fixture(t, "exit 0")
	cfg.PythonCandidates = []string{"no-such-python-binary"}

	code := Run(cfg)
	require.Equal(t, ExitRuntimeMissing, code)

	// Nothing may be created or modified before the prerequisite check passes.
	assert.NoDirExists(t, cfg.VenvDir)
	assert.NoFileExists(t, cfg.EnvFile)
	assert.NoFileExists(t, cfg.EnvFile+".backup")
}

func TestRunStopsWhenManifestInstallFails(t *testing.T) {
	cfg := fixture(t, `case "$2" in -r) echo "no matching distribution" >&2; exit 1 ;; esac
exit 0`)

	code := Run(cfg)
	require.Equal(t, ExitInstallFailed, code)

	// The workflow halted before the configuration step.
	assert.NoFileExists(t, cfg.EnvFile)
}

func TestRunStopsWhenActivationFails(t *testing.T) {
	// A venv whose layout is broken: the directory exists, so creation is
	// skipped, but the toolchain binaries are missing.
	cfg := fixture(t, "exit 0")
	require.NoError(t, os.MkdirAll(cfg.VenvDir, 0755))

	code := Run(cfg)
	require.Equal(t, ExitActivationFailed, code)
	assert.NoFileExists(t, cfg.EnvFile)
}

func TestRunStopsWhenConfigWriteFails(t *testing.T) {
	cfg := fixture(t, "exit 0")
	// Point the env file into a directory that does not exist.
	cfg.EnvFile = filepath.Join(filepath.Dir(cfg.EnvFile), "missing", ".env")

	code := Run(cfg)
	require.Equal(t, ExitConfigWriteFailed, code)
	assert.NoFileExists(t, cfg.EnvFile)
}
