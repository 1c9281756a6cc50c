package config

import (
	"path/filepath"
	"strings"

	"huectl/internal/scheme"
)

// Config is the top-level configuration structure for huectl.
type Config struct {
	Shell            string   `yaml:"shell,omitempty"`             // Shell invocation template containing exactly one "{}"
	DefaultScheme    string   `yaml:"default-scheme,omitempty"`    // First entry of the cycle list, used by init
	PreferredSchemes []string `yaml:"preferred-schemes,omitempty"` // Remaining cycle list entries in order
	SchemesRepo      string   `yaml:"schemes-repo,omitempty"`      // Git URL of the builtin schemes repository
	Hooks            []string `yaml:"hooks,omitempty"`             // Run once after all items
	Items            []Item   `yaml:"items,omitempty"`
}

// Item is a downstream tool that receives a rendered theme file.
type Item struct {
	Name               string          `yaml:"name"`                           // Unique key, part of the artifact file name
	Path               string          `yaml:"path"`                           // Git URL or local directory
	ThemesDir          string          `yaml:"themes-dir"`                     // Directory inside Path holding <system>-<slug>.<ext>
	Hook               string          `yaml:"hook,omitempty"`                 // Supports %f (artifact path) and %o (operation)
	SupportedSystems   []scheme.System `yaml:"supported-systems,omitempty"`    // Empty means every system
	ThemeFileExtension string          `yaml:"theme-file-extension,omitempty"` // e.g. ".sh"; empty means whatever the theme file has
}

// Supports reports whether the item takes themes of the given system.
func (i Item) Supports(sys scheme.System) bool {
	if len(i.SupportedSystems) == 0 {
		return true
	}
	for _, s := range i.SupportedSystems {
		if s == sys {
			return true
		}
	}
	return false
}

// IsRemote reports whether Path is a git URL rather than a local directory.
func (i Item) IsRemote() bool {
	return isRemote(i.Path)
}

// SourceDir is where the item's files live: the clone under the data
// directory for remote items, the configured directory otherwise.
func (i Item) SourceDir(dataDir string) string {
	if i.IsRemote() {
		return filepath.Join(dataDir, RepoDir, i.Name)
	}
	return i.Path
}

// Extension returns ThemeFileExtension with a leading dot, or "".
func (i Item) Extension() string {
	ext := strings.TrimSpace(i.ThemeFileExtension)
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

func isRemote(path string) bool {
	for _, prefix := range []string{"https://", "http://", "ssh://", "git://", "git@"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
