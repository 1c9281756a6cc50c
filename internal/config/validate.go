package config

import (
	"fmt"
	"strings"

	"huectl/internal/scheme"
)

// Validate checks the structural invariants every command relies on. It runs
// once, right after loading, before anything touches the filesystem.
func (c Config) Validate() error {
	if n := strings.Count(c.Shell, ShellPlaceholder); n != 1 {
		return fmt.Errorf("%w: %q must contain exactly one %q, found %d", ErrInvalidShell, c.Shell, ShellPlaceholder, n)
	}

	if c.DefaultScheme != "" {
		if _, err := scheme.ParseIdentifier(c.DefaultScheme); err != nil {
			return fmt.Errorf("%w: default-scheme: %w", ErrInvalidScheme, err)
		}
	}
	for i, name := range c.PreferredSchemes {
		if _, err := scheme.ParseIdentifier(name); err != nil {
			return fmt.Errorf("%w: preferred-schemes[%d]: %w", ErrInvalidScheme, i, err)
		}
	}

	seen := make(map[string]int, len(c.Items))
	for i, item := range c.Items {
		if item.Name == "" {
			return fmt.Errorf("%w: items[%d] has no name", ErrInvalidItem, i)
		}
		if first, ok := seen[item.Name]; ok {
			return fmt.Errorf("%w: %q is used by items[%d] and items[%d]", ErrDuplicateItem, item.Name, first, i)
		}
		seen[item.Name] = i

		if item.Path == "" {
			return fmt.Errorf("%w: %q has no path", ErrInvalidItem, item.Name)
		}
		if item.ThemesDir == "" {
			return fmt.Errorf("%w: %q has no themes-dir", ErrInvalidItem, item.Name)
		}
		if strings.ContainsAny(item.Name, `/\`) {
			return fmt.Errorf("%w: %q: name must not contain path separators", ErrInvalidItem, item.Name)
		}
		for _, sys := range item.SupportedSystems {
			if _, err := scheme.ParseSystem(string(sys)); err != nil {
				return fmt.Errorf("%w: %q: %w", ErrInvalidItem, item.Name, err)
			}
		}
	}
	return nil
}
