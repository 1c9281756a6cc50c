package scheme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a single palette entry.
type Color struct {
	Hex string // six lowercase hex digits, no leading '#'
	R   uint8
	G   uint8
	B   uint8
}

// ParseColor accepts "#rrggbb" or "rrggbb".
func ParseColor(value string) (Color, error) {
	hex := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(value), "#"))
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("colour %q: expected 6 hex digits", value)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("colour %q: %v", value, err)
	}
	return Color{
		Hex: hex,
		R:   uint8(n >> 16),
		G:   uint8(n >> 8),
		B:   uint8(n),
	}, nil
}

// HexChannels returns the two-digit hex of each channel.
func (c Color) HexChannels() (r, g, b string) {
	return c.Hex[0:2], c.Hex[2:4], c.Hex[4:6]
}

// Decimal returns each channel scaled to 0.0-1.0.
func (c Color) Decimal() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// Lightness is the CIE L* of the colour on a 0-100 scale.
func (c Color) Lightness() float64 {
	r, g, b := c.Decimal()
	l, _, _ := colorful.Color{R: r, G: g, B: b}.Lab()
	return l * 100
}

// FormatFloat renders a channel or lightness value for hook environments.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
