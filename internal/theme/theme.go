// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/sketch/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names looked up by the drawing code.
const (
	StyleDefault          = "Default"
	StyleCanvas           = "Canvas"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarMessage = "StatusBarMessage"
	StyleStatusBarPrompt  = "StatusBarPrompt"
	StyleStatusBarCommand = "StatusBarCommand"
)

// Theme is a named set of styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the named style. Dotted names fall back to their base
// (part before the first dot), then to "Default", then to tcell's default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if t == nil {
		return tcell.StyleDefault
	}
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// Paper is the built-in light theme: a white sheet with a slate status line.
var Paper Theme

func init() {
	paperWhite := tcell.NewHexColor(0xfafafa)
	ink := tcell.NewHexColor(0x1e1e1e)
	slate := tcell.NewHexColor(0x2a2f38)
	slateText := tcell.NewHexColor(0xc5cdd9)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)

	base := tcell.StyleDefault.Background(paperWhite).Foreground(ink)
	bar := tcell.StyleDefault.Background(slate).Foreground(slateText)

	Paper = Theme{
		Name:   "Paper",
		IsDark: false,
		Styles: map[string]tcell.Style{
			StyleDefault:          base,
			StyleCanvas:           base,
			StyleStatusBar:        bar,
			StyleStatusBarMessage: bar.Bold(true),
			StyleStatusBarPrompt:  bar.Foreground(yellow).Bold(true),
			StyleStatusBarCommand: bar.Foreground(green).Bold(true),
		},
	}
}

// Default returns a copy of the built-in theme.
func Default() *Theme {
	styles := make(map[string]tcell.Style, len(Paper.Styles))
	for k, v := range Paper.Styles {
		styles[k] = v
	}
	return &Theme{Name: Paper.Name, IsDark: Paper.IsDark, Styles: styles}
}
