// Package state persists the identifier of the last applied scheme.
package state

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"huectl/internal/config"
)

// Path returns the location of the current scheme file.
func Path(dataDir string) string {
	return filepath.Join(dataDir, config.CurrentSchemeFile)
}

// Read returns the last applied scheme, or "" when none has been applied.
func Read(dataDir string) (string, error) {
	data, err := os.ReadFile(Path(dataDir))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read current scheme from %s: %w", Path(dataDir), err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Write replaces the current scheme. The value is written to a temporary file
// in the same directory and renamed over the old one, so readers see either
// the previous or the new value.
func Write(dataDir, fullName string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}

	tmp, err := os.CreateTemp(dataDir, "."+config.CurrentSchemeFile+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dataDir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.WriteString(fullName + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, Path(dataDir)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", Path(dataDir), err)
	}
	return nil
}
