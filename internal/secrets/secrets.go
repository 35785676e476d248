package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"

	"tko-bootstrap/internal/logger"
)

// tokenBytes is the amount of raw randomness per secret: 32 bytes = 256 bits.
const tokenBytes = 32

// NewSaltToken returns a fresh URL-safe random token used as the
// pseudonymization salt for student identifiers. 32 random bytes encode to a
// 43-character unpadded base64url string.
func NewSaltToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// NewHexToken returns a fresh 64-character lowercase hex token used as the
// session signing secret for the web application.
func NewHexToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// WriteEnvFile generates fresh secrets and writes the configuration file at
// path. If a file already exists there it is first renamed to path+".backup",
// unconditionally replacing any previous backup (one generation is retained).
// The new file is written to a temporary path and renamed into place, so an
// error can never leave a half-written secrets file at path.
func WriteEnvFile(path, mode string) error {
	if _, err := os.Stat(path); err == nil {
		backup := path + ".backup"
		// os.Rename replaces an existing target on POSIX but not on
		// Windows, so any previous backup is removed explicitly first.
		if err := os.Remove(backup); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to clear previous backup %s: %w", backup, err)
		}
		if err := os.Rename(path, backup); err != nil {
			return fmt.Errorf("failed to back up %s: %w", path, err)
		}
		logger.Info("[INFO] Backed up existing %s to %s\n", path, backup)
	}

	salt, err := NewSaltToken()
	if err != nil {
		return err
	}
	key, err := NewHexToken()
	if err != nil {
		return err
	}

	content := fmt.Sprintf("STUDENT_ID_SALT=%s\nFLASK_SECRET_KEY=%s\nENVIRONMENT=%s\n", salt, key, mode)

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		// Leave nothing half-written behind.
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to move %s into place: %w", tmp, err)
	}

	return nil
}
