package theme

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor converts "#rgb"/"#rrggbb" hex codes or tcell color names
// ("red", "darkblue", ...) to a tcell color. "reset" and "default" map to the
// matching tcell sentinels.
func ParseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return tcell.ColorDefault, fmt.Errorf("empty color")
	case "reset":
		return tcell.ColorReset, nil
	case "default":
		return tcell.ColorDefault, nil
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color '%s': %w", s, err)
		}
		r, g, b := c.RGB255()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
	}

	if c, ok := tcell.ColorNames[s]; ok {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color format or name '%s'", s)
}

// Hex formats c as "#rrggbb". Colors without an RGB value (default, reset)
// format as "default".
func Hex(c tcell.Color) string {
	r, g, b := c.RGB()
	if r < 0 {
		return "default"
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()
}

// ParsePalette parses every entry, reporting the first bad one.
func ParsePalette(entries []string) ([]tcell.Color, error) {
	palette := make([]tcell.Color, 0, len(entries))
	for i, e := range entries {
		c, err := ParseColor(e)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		palette = append(palette, c)
	}
	return palette, nil
}
