package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetenv = os.Getenv

const (
	appDirName     = "huectl"
	configFileName = "config.yaml"

	ConfigEnvVar  = "HUECTL_CONFIG"
	DataDirEnvVar = "HUECTL_DATA_DIR"
)

// LoadConfig loads and validates the configuration at path. An empty path
// means the default location; a missing file yields the default configuration.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
	}

	config := GetDefaultConfig()
	fileConfig, err := loadConfigFromFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only.
	case err != nil:
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	default:
		config = mergeConfigs(config, fileConfig)
	}

	config, err = expandPaths(config)
	if err != nil {
		return Config{}, err
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Items are taken
// from the overlay as-is; duplicate names are left for Validate to report.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.Shell != "" {
		merged.Shell = overlay.Shell
	}
	if overlay.SchemesRepo != "" {
		merged.SchemesRepo = overlay.SchemesRepo
	}
	merged.DefaultScheme = overlay.DefaultScheme
	merged.PreferredSchemes = overlay.PreferredSchemes
	merged.Hooks = overlay.Hooks
	if overlay.Items != nil {
		merged.Items = overlay.Items
	}

	return merged
}

// expandPaths resolves "~" and environment variables in local item paths.
func expandPaths(config Config) (Config, error) {
	items := make([]Item, len(config.Items))
	for i, item := range config.Items {
		if !item.IsRemote() {
			expanded, err := expandHome(os.Expand(item.Path, osGetenv))
			if err != nil {
				return Config{}, fmt.Errorf("item %q: %w", item.Name, err)
			}
			item.Path = expanded
		}
		items[i] = item
	}
	config.Items = items
	return config, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// DefaultConfigPath returns $HUECTL_CONFIG, or config.yaml under the XDG
// config directory.
func DefaultConfigPath() (string, error) {
	if p := osGetenv(ConfigEnvVar); p != "" {
		return p, nil
	}
	base := osGetenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := osUserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not determine config directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appDirName, configFileName), nil
}

// DefaultDataDir returns $HUECTL_DATA_DIR, or huectl under the XDG data
// directory.
func DefaultDataDir() (string, error) {
	if p := osGetenv(DataDirEnvVar); p != "" {
		return p, nil
	}
	base := osGetenv("XDG_DATA_HOME")
	if base == "" {
		home, err := osUserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not determine data directory: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, appDirName), nil
}
