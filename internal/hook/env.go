package hook

import (
	"sort"
	"strconv"
	"strings"

	"huectl/internal/scheme"
)

// EnvPrefix starts every variable exported to hooks. The names below are
// relied on by user scripts and must not change.
const EnvPrefix = "HUECTL_SCHEME_"

// Env returns the scheme variables for hook processes as sorted KEY=value
// pairs.
func Env(s *scheme.Scheme) []string {
	vars := map[string]string{
		"ID":          s.Identifier.String(),
		"SYSTEM":      string(s.System),
		"SLUG":        s.Slug,
		"NAME":        s.Name,
		"AUTHOR":      s.Author,
		"DESCRIPTION": s.Description,
		"VARIANT":     s.Variant,

		"LIGHTNESS_FOREGROUND": scheme.FormatFloat(s.ForegroundLightness()),
		"LIGHTNESS_BACKGROUND": scheme.FormatFloat(s.BackgroundLightness()),
	}

	for _, slot := range s.System.Slots() {
		c, ok := s.Palette[slot]
		if !ok {
			continue
		}
		key := "PALETTE_" + strings.ToUpper(slot)
		hr, hg, hb := c.HexChannels()
		dr, dg, db := c.Decimal()

		vars[key+"_HEX_R"] = hr
		vars[key+"_HEX_G"] = hg
		vars[key+"_HEX_B"] = hb
		vars[key+"_RGB_R"] = strconv.Itoa(int(c.R))
		vars[key+"_RGB_G"] = strconv.Itoa(int(c.G))
		vars[key+"_RGB_B"] = strconv.Itoa(int(c.B))
		vars[key+"_DEC_R"] = scheme.FormatFloat(dr)
		vars[key+"_DEC_G"] = scheme.FormatFloat(dg)
		vars[key+"_DEC_B"] = scheme.FormatFloat(db)
	}

	env := make([]string, 0, len(vars))
	for k, v := range vars {
		env = append(env, EnvPrefix+k+"="+v)
	}
	sort.Strings(env)
	return env
}
