package deps

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"tko-bootstrap/internal/logger"
	"tko-bootstrap/internal/venv"
)

// Install installs every entry of the dependency manifest into the
// environment's toolchain. pip's normal output is suppressed but its error
// output is passed straight through to the operator, since install failures
// (network, version conflicts) need human inspection rather than a retry.
func Install(tc *venv.Toolchain, manifest string) error {
	if _, err := os.Stat(manifest); err != nil {
		return fmt.Errorf("dependency manifest %s not readable: %w", manifest, err)
	}

	// Upgrade pip itself first. This is best effort: an old pip still
	// installs the manifest, so the result is deliberately not checked.
	upgrade := exec.Command(tc.Pip, "install", "--upgrade", "pip", "--quiet")
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(upgrade.Args, " "))
	upgrade.Stdout = io.Discard
	upgrade.Stderr = io.Discard
	if err := upgrade.Run(); err != nil {
		logger.Debug("[DEBUG] pip self-upgrade failed (ignored): %v\n", err)
	}

	install := exec.Command(tc.Pip, "install", "-r", manifest, "--quiet")
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(install.Args, " "))
	install.Stdout = io.Discard
	install.Stderr = os.Stderr
	if err := install.Run(); err != nil {
		return fmt.Errorf("failed to install dependencies from %s: %w", manifest, err)
	}

	return nil
}

// InstallProject attempts an editable install of the project package rooted
// at dir. The dashboard runs fine through its direct entry point without it,
// so a failure here is logged at warning level with pip's error text and the
// workflow continues.
func InstallProject(tc *venv.Toolchain, dir string) {
	cmd := exec.Command(tc.Pip, "install", "-e", dir, "--quiet")
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))

	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		logger.Warn("[WARN] Editable project install failed (continuing): %v\n", err)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			logger.Warn("[WARN] pip: %s\n", msg)
		}
	}
}
