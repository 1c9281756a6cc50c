package config

import "path/filepath"

const (
	// DefaultShell runs hooks through sh; "{}" is replaced by the hook.
	DefaultShell = "sh -c '{}'"
	// DefaultSchemesRepo is cloned to <data>/repos/schemes by install.
	DefaultSchemesRepo = "https://github.com/tinted-theming/schemes"
	// FallbackScheme is applied by init when nothing else is configured.
	FallbackScheme = "base16-default-dark"

	CurrentSchemeFile = "current_scheme"
	RepoDir           = "repos"
	SchemesRepoName   = "schemes"
	CustomSchemesDir  = "custom-schemes"

	ShellPlaceholder = "{}"
)

// GetDefaultConfig returns the configuration used when no file exists.
func GetDefaultConfig() Config {
	return Config{
		Shell:       DefaultShell,
		SchemesRepo: DefaultSchemesRepo,
		Items:       []Item{},
	}
}

// SchemeSearchDirs returns the scheme directories in priority order: the
// installed schemes repository, then the user's custom schemes.
func SchemeSearchDirs(dataDir string) []string {
	return []string{
		filepath.Join(dataDir, RepoDir, SchemesRepoName),
		filepath.Join(dataDir, CustomSchemesDir),
	}
}
