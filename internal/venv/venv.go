package venv

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"tko-bootstrap/internal/logger"
	"tko-bootstrap/internal/python"
)

// Toolchain is the resolved context of an activated virtual environment: the
// interpreter and installer binaries inside it. Passing this value around
// replaces the shell-session "activate" side effect the original scripts
// relied on, so every later step states explicitly which binaries it runs.
type Toolchain struct {
	Python string
	Pip    string
}

// Ensure creates the virtual environment at dir using the given runtime.
// If dir already exists as a directory it is reused untouched and created is
// false; re-running the bootstrap must never destroy or recreate an existing
// environment. Creation failures are fatal to the workflow and no cleanup of
// a possibly-partial directory is attempted.
func Ensure(rt *python.Runtime, dir string) (created bool, err error) {
	if info, statErr := os.Stat(dir); statErr == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s exists but is not a directory", dir)
		}
		logger.Debug("[DEBUG] Reusing existing environment at %s\n", dir)
		return false, nil
	}

	cmd := exec.Command(rt.Path, "-m", "venv", dir)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		return false, fmt.Errorf("failed to create virtual environment at %s: %w\nOutput: %s", dir, err, output)
	}

	return true, nil
}

// Resolve locates the interpreter and pip inside an existing environment and
// returns the toolchain context for it. Missing binaries mean the environment
// cannot be activated.
func Resolve(dir string) (*Toolchain, error) {
	bin := filepath.Join(dir, "bin")
	pythonName, pipName := "python", "pip"
	if runtime.GOOS == "windows" {
		bin = filepath.Join(dir, "Scripts")
		pythonName, pipName = "python.exe", "pip.exe"
	}

	tc := &Toolchain{
		Python: filepath.Join(bin, pythonName),
		Pip:    filepath.Join(bin, pipName),
	}

	for _, p := range []string{tc.Python, tc.Pip} {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("cannot activate environment %s: %w", dir, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("cannot activate environment %s: %s is a directory", dir, p)
		}
	}

	logger.Debug("[DEBUG] Resolved toolchain: python=%s pip=%s\n", tc.Python, tc.Pip)
	return tc, nil
}
