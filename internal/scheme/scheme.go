package scheme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	VariantDark  = "dark"
	VariantLight = "light"
)

// Scheme is a parsed scheme file.
type Scheme struct {
	Identifier
	Name        string
	Author      string
	Description string
	Variant     string
	Path        string
	// Palette holds exactly the slots of the scheme's system.
	Palette map[string]Color
}

// rawScheme accepts both the current layout (palette map) and the legacy flat
// layout where slots sit at the top level next to "scheme" and "author".
type rawScheme struct {
	System      string                 `yaml:"system"`
	Name        string                 `yaml:"name"`
	Scheme      string                 `yaml:"scheme"`
	Slug        string                 `yaml:"slug"`
	Author      string                 `yaml:"author"`
	Description string                 `yaml:"description"`
	Variant     string                 `yaml:"variant"`
	Palette     map[string]string      `yaml:"palette"`
	Rest        map[string]interface{} `yaml:",inline"`
}

// Load reads and validates the scheme file at path. The system is the one the
// file was found under; a file declaring a different system is rejected.
func Load(path string, sys System) (*Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scheme %s: %w", path, err)
	}
	s, err := Parse(data, sys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Path = path
	if s.Slug == "" {
		s.Slug = slugFromPath(path)
	}
	return s, nil
}

// Parse decodes scheme YAML. The slug is left empty when the file does not
// declare one.
func Parse(data []byte, sys System) (*Scheme, error) {
	var raw rawScheme
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if raw.System != "" && System(raw.System) != sys {
		return nil, fmt.Errorf("%w: declares system %q, expected %q", ErrParse, raw.System, sys)
	}

	values := make(map[string]string, len(raw.Palette))
	for k, v := range raw.Palette {
		values[strings.ToLower(k)] = v
	}
	if len(values) == 0 {
		for k, v := range raw.Rest {
			if str, ok := v.(string); ok && strings.HasPrefix(k, "base") {
				values[strings.ToLower(k)] = str
			}
		}
	}

	palette := make(map[string]Color, len(sys.Slots()))
	for _, slot := range sys.Slots() {
		value, ok := values[strings.ToLower(slot)]
		if !ok {
			return nil, fmt.Errorf("%w: missing palette key %s", ErrParse, slot)
		}
		c, err := ParseColor(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrParse, slot, err)
		}
		palette[slot] = c
	}

	name := raw.Name
	if name == "" {
		name = raw.Scheme
	}

	s := &Scheme{
		Identifier:  Identifier{System: sys, Slug: raw.Slug},
		Name:        name,
		Author:      raw.Author,
		Description: raw.Description,
		Variant:     strings.ToLower(raw.Variant),
		Palette:     palette,
	}
	if s.Variant == "" {
		s.Variant = VariantDark
		if s.BackgroundLightness() >= 50 {
			s.Variant = VariantLight
		}
	}
	return s, nil
}

// Foreground is the default text colour slot.
func (s *Scheme) Foreground() Color {
	return s.Palette["base05"]
}

// Background is the default background colour slot.
func (s *Scheme) Background() Color {
	return s.Palette["base00"]
}

func (s *Scheme) ForegroundLightness() float64 {
	return s.Foreground().Lightness()
}

func (s *Scheme) BackgroundLightness() float64 {
	return s.Background().Lightness()
}

// Property returns a named metadata field, as printed by "current <property>".
func (s *Scheme) Property(name string) (string, error) {
	switch name {
	case "id":
		return s.Identifier.String(), nil
	case "system":
		return string(s.System), nil
	case "slug":
		return s.Slug, nil
	case "name":
		return s.Name, nil
	case "author":
		return s.Author, nil
	case "description":
		return s.Description, nil
	case "variant":
		return s.Variant, nil
	default:
		return "", fmt.Errorf("unknown property %q (valid: %s)", name, strings.Join(Properties(), ", "))
	}
}

// Properties lists the names accepted by Property.
func Properties() []string {
	return []string{"id", "system", "slug", "name", "author", "description", "variant"}
}

func slugFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
