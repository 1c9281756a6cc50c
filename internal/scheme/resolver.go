package scheme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var extensions = []string{".yaml", ".yml"}

// Resolve finds and loads the scheme named fullName. dirs are searched in
// order and the first match wins.
func Resolve(fullName string, dirs []string) (*Scheme, error) {
	id, err := ParseIdentifier(fullName)
	if err != nil {
		return nil, err
	}

	path, err := Locate(id, dirs)
	if err != nil {
		return nil, err
	}

	s, err := Load(path, id.System)
	if err != nil {
		return nil, err
	}
	// The file name is authoritative for the identifier.
	s.Slug = id.Slug
	return s, nil
}

// Locate returns the path of the scheme file for id.
func Locate(id Identifier, dirs []string) (string, error) {
	anyDir := false
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err == nil {
			anyDir = true
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to read scheme directory %s: %w", dir, err)
		}
		for _, ext := range extensions {
			candidate := filepath.Join(dir, string(id.System), id.Slug+ext)
			info, err := os.Stat(candidate)
			if err == nil && !info.IsDir() {
				return candidate, nil
			}
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return "", fmt.Errorf("failed to read %s: %w", candidate, err)
			}
		}
	}

	if !anyDir && len(dirs) > 0 {
		return "", fmt.Errorf("%w: %s: %w in %s: run \"huectl install\" first", ErrSchemeNotFound, id, ErrSchemesMissing, dirs[0])
	}
	return "", fmt.Errorf("%w: %s", ErrSchemeNotFound, id)
}

// List returns every scheme identifier found in dirs, sorted, with duplicates
// across directories collapsed. It fails with ErrSchemesMissing when none of
// dirs exists.
func List(dirs []string) ([]Identifier, error) {
	seen := make(map[Identifier]bool)
	var ids []Identifier
	anyDir := false

	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			anyDir = true
		}
		for _, sys := range SupportedSystems() {
			entries, err := os.ReadDir(filepath.Join(dir, string(sys)))
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("failed to list schemes in %s: %w", filepath.Join(dir, string(sys)), err)
			}
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				ext := filepath.Ext(entry.Name())
				if ext != ".yaml" && ext != ".yml" {
					continue
				}
				id := Identifier{System: sys, Slug: strings.TrimSuffix(entry.Name(), ext)}
				if !seen[id] {
					seen[id] = true
					ids = append(ids, id)
				}
			}
		}
	}

	if !anyDir && len(dirs) > 0 {
		return nil, fmt.Errorf("%w in %s: run \"huectl install\" first", ErrSchemesMissing, dirs[0])
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	return ids, nil
}
