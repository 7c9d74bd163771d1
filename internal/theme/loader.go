// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/sketch/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// TomlStyleDef represents a single style definition in the TOML file
type TomlStyleDef struct {
	Fg        *string `toml:"fg"` // Pointers detect missing values
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// TomlTheme represents the structure of a theme file
type TomlTheme struct {
	Name   string                  `toml:"name"`
	IsDark bool                    `toml:"is_dark"`
	Styles map[string]TomlStyleDef `toml:"styles"`
}

// LoadThemeFromFile parses a TOML theme. Styles the file leaves out are taken
// from the built-in theme, and every style inherits unset attributes from the
// file's "Default" style.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file '%s': %w", filePath, err)
	}

	var tomlTheme TomlTheme
	metadata, err := toml.Decode(string(data), &tomlTheme)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML theme file '%s': %w", filePath, err)
	}

	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Theme '%s': Unrecognized keys in file '%s': %v", tomlTheme.Name, filePath, metadata.Undecoded())
	}

	if tomlTheme.Name == "" {
		tomlTheme.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		logger.Debugf("Theme file '%s' missing 'name', using filename '%s'", filePath, tomlTheme.Name)
	}

	theme := Default()
	theme.Name = tomlTheme.Name
	theme.IsDark = tomlTheme.IsDark

	baseStyle := theme.Styles[StyleDefault]
	if defaultTomlStyle, ok := tomlTheme.Styles[StyleDefault]; ok {
		baseStyle, err = convertTomlStyle(defaultTomlStyle, tcell.StyleDefault)
		if err != nil {
			return nil, fmt.Errorf("theme '%s': style 'Default': %w", theme.Name, err)
		}
		theme.Styles[StyleDefault] = baseStyle
	}

	for name, tomlStyle := range tomlTheme.Styles {
		if name == StyleDefault {
			continue
		}
		style, err := convertTomlStyle(tomlStyle, baseStyle)
		if err != nil {
			logger.Warnf("Theme '%s': Failed to parse style '%s', skipping: %v", theme.Name, name, err)
			continue
		}
		theme.Styles[name] = style
	}

	logger.Debugf("Successfully loaded theme '%s' from '%s'", theme.Name, filePath)
	return theme, nil
}

// convertTomlStyle converts the TOML definition to a tcell.Style, inheriting from a base
func convertTomlStyle(tomlStyle TomlStyleDef, baseStyle tcell.Style) (tcell.Style, error) {
	style := baseStyle

	if tomlStyle.Fg != nil {
		color, err := ParseColor(*tomlStyle.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid foreground color '%s': %w", *tomlStyle.Fg, err)
		}
		style = style.Foreground(color)
	}
	if tomlStyle.Bg != nil {
		color, err := ParseColor(*tomlStyle.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid background color '%s': %w", *tomlStyle.Bg, err)
		}
		style = style.Background(color)
	}

	if tomlStyle.Bold != nil {
		style = style.Bold(*tomlStyle.Bold)
	}
	if tomlStyle.Italic != nil {
		style = style.Italic(*tomlStyle.Italic)
	}
	if tomlStyle.Underline != nil {
		style = style.Underline(*tomlStyle.Underline)
	}
	if tomlStyle.Reverse != nil {
		style = style.Reverse(*tomlStyle.Reverse)
	}

	return style, nil
}
