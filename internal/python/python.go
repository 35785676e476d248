package python

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"tko-bootstrap/internal/logger"
)

// Runtime describes a located Python interpreter: the resolved executable
// path and the version string it reported (e.g. "3.12.1").
type Runtime struct {
	Path    string
	Version string
}

// versionRe matches the output of `python --version`, which is of the form
// "Python 3.12.1". Some builds print it on stderr, so both streams are read.
var versionRe = regexp.MustCompile(`Python\s+(\d+(?:\.\d+)*)`)

// Find probes the candidate interpreter names in order and returns the first
// one that is on PATH and answers a version query. Absence of the runtime is
// not transient, so there is no retry; callers terminate the workflow.
func Find(candidates []string) (*Runtime, error) {
	for _, name := range candidates {
		path, err := exec.LookPath(name)
		if err != nil {
			logger.Debug("[DEBUG] %s not found on PATH\n", name)
			continue
		}

		cmd := exec.Command(path, "--version")
		output, err := cmd.CombinedOutput()
		if err != nil {
			logger.Debug("[DEBUG] %s --version failed: %v\n", path, err)
			continue
		}

		m := versionRe.FindSubmatch(output)
		if m == nil {
			logger.Debug("[DEBUG] Unexpected version output from %s: %q\n", path, strings.TrimSpace(string(output)))
			continue
		}

		return &Runtime{Path: path, Version: string(m[1])}, nil
	}

	return nil, fmt.Errorf("no working Python interpreter found (tried: %s)", strings.Join(candidates, ", "))
}

// InstallHints returns guidance for installing Python, covering at least two
// installation methods on each major platform so no operator is left without
// a next step.
func InstallHints() string {
	return strings.Join([]string{
		"Python 3 is required but was not found. Install it with one of:",
		"  macOS:    brew install python3           (or the installer from https://www.python.org/downloads/)",
		"  Linux:    sudo apt install python3 python3-venv   (Debian/Ubuntu)",
		"            sudo dnf install python3       (Fedora/RHEL)",
		"  Windows:  winget install Python.Python.3 (or the installer from https://www.python.org/downloads/)",
	}, "\n")
}
