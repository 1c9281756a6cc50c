// Package render copies an item's theme file for a scheme into the data
// directory under a name other tools can compute on their own.
package render

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"huectl/internal/config"
	"huectl/internal/scheme"
)

// ErrThemeMissing is returned when an item has no theme file for a scheme.
var ErrThemeMissing = errors.New("theme file missing")

// Artifact is a rendered theme file.
type Artifact struct {
	Item   string
	Source string // theme file inside the item's themes directory
	Path   string // rendered file in the data directory
}

// ArtifactName returns "<system>-<item>-<themes-dir>-file<ext>" where the
// themes directory has its separators replaced by "-". ext includes the dot.
func ArtifactName(itemName, themesDir string, sys scheme.System, ext string) string {
	return fmt.Sprintf("%s-%s-%s-file%s", sys, itemName, flatten(themesDir), ext)
}

func flatten(dir string) string {
	dir = strings.Trim(filepath.ToSlash(filepath.Clean(dir)), "/")
	return strings.ReplaceAll(dir, "/", "-")
}

// Render writes the item's theme file for s to dataDir, replacing any previous
// artifact of the same name.
func Render(item config.Item, s *scheme.Scheme, dataDir string) (Artifact, error) {
	themesDir := filepath.Join(item.SourceDir(dataDir), item.ThemesDir)

	source, ext, err := findThemeFile(themesDir, s.Identifier.String(), item.Extension())
	if err != nil {
		return Artifact{}, fmt.Errorf("item %q: %w", item.Name, err)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return Artifact{}, fmt.Errorf("item %q: failed to read theme file %s: %w", item.Name, source, err)
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return Artifact{}, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	target := filepath.Join(dataDir, ArtifactName(item.Name, item.ThemesDir, s.System, ext))
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return Artifact{}, fmt.Errorf("item %q: failed to write %s: %w", item.Name, target, err)
	}

	return Artifact{Item: item.Name, Source: source, Path: target}, nil
}

// findThemeFile locates <themesDir>/<stem><ext>. With no fixed extension the
// first file (in name order) whose name without extension is stem is used.
func findThemeFile(themesDir, stem, ext string) (path string, foundExt string, err error) {
	if ext != "" {
		candidate := filepath.Join(themesDir, stem+ext)
		info, err := os.Stat(candidate)
		if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
			return "", "", fmt.Errorf("%w: %s", ErrThemeMissing, candidate)
		}
		if err != nil {
			return "", "", fmt.Errorf("failed to read %s: %w", candidate, err)
		}
		return candidate, ext, nil
	}

	entries, err := os.ReadDir(themesDir)
	if errors.Is(err, fs.ErrNotExist) {
		return "", "", fmt.Errorf("%w: themes directory %s does not exist: run \"huectl install\" first", ErrThemeMissing, themesDir)
	}
	if err != nil {
		return "", "", fmt.Errorf("failed to read themes directory %s: %w", themesDir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		e := filepath.Ext(name)
		if strings.TrimSuffix(name, e) == stem {
			return filepath.Join(themesDir, name), e, nil
		}
	}
	return "", "", fmt.Errorf("%w: no %s.* in %s", ErrThemeMissing, stem, themesDir)
}
