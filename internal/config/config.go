// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/sketch/internal/logger"
	"github.com/bethropolis/sketch/internal/theme"
	"github.com/rivo/uniseg"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // Logger config under [logger] table
	Canvas CanvasConfig  `toml:"canvas"`
	Theme  ThemeConfig   `toml:"theme"`

	problems []string // Values reset by validate, reported once the logger is up
}

// CanvasConfig holds drawing settings.
type CanvasConfig struct {
	DefaultColor    string   `toml:"default_color"`
	Brush           string   `toml:"brush"`
	HistoryLimit    int      `toml:"history_limit"` // 0 keeps every capture
	Palette         []string `toml:"palette"`
	SystemClipboard bool     `toml:"system_clipboard"`
}

// ThemeConfig selects the theme file. Empty means the user theme directory is
// tried, then the built-in theme.
type ThemeConfig struct {
	File string `toml:"file"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: DefaultLogFileName,
		},
		Canvas: CanvasConfig{
			DefaultColor:    DefaultColor,
			Brush:           DefaultBrush,
			HistoryLimit:    DefaultHistoryLimit,
			Palette:         append([]string(nil), DefaultPalette...),
			SystemClipboard: SystemClipboard,
		},
	}
}

// DefaultConfigPath returns ~/.config/sketch/config.toml (or the platform
// equivalent), or "" when the user config directory is unknown.
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// DefaultThemePath returns the theme file looked up when none is configured.
func DefaultThemePath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, ThemesDirName, DefaultThemeFileName)
}

// decodeFile decodes filePath over cfg, so keys the file leaves out keep their
// current values. A missing file is not an error.
func decodeFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		cfg.problems = append(cfg.problems, fmt.Sprintf("config file '%s': unrecognized keys: %v", filePath, undecoded))
	}
	return nil
}

// validate resets invalid values to defaults and records what it changed.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok {
		c.problemf("invalid log level '%s', using '%s'", c.Logger.LogLevel, defaults.Logger.LogLevel)
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}

	if _, err := theme.ParseColor(c.Canvas.DefaultColor); err != nil {
		c.problemf("invalid default color: %v", err)
		c.Canvas.DefaultColor = defaults.Canvas.DefaultColor
	}

	// The brush must paint exactly one cell.
	if uniseg.GraphemeClusterCount(c.Canvas.Brush) != 1 || uniseg.StringWidth(c.Canvas.Brush) != 1 {
		c.problemf("brush '%s' is not a single-cell character", c.Canvas.Brush)
		c.Canvas.Brush = defaults.Canvas.Brush
	}

	if c.Canvas.HistoryLimit < 0 {
		c.problemf("negative history limit %d, using unbounded history", c.Canvas.HistoryLimit)
		c.Canvas.HistoryLimit = defaults.Canvas.HistoryLimit
	}

	if len(c.Canvas.Palette) == 0 {
		c.Canvas.Palette = defaults.Canvas.Palette
	} else if _, err := theme.ParsePalette(c.Canvas.Palette); err != nil {
		c.problemf("invalid palette: %v", err)
		c.Canvas.Palette = defaults.Canvas.Palette
	}
}

func (c *Config) problemf(format string, args ...interface{}) {
	c.problems = append(c.problems, fmt.Sprintf(format, args...))
}

// Problems lists the values validation replaced and other non-fatal issues
// found while loading.
func (c *Config) Problems() []string {
	return c.problems
}

// Load builds a config from defaults, the file at configFilePath (or the
// default path when empty) and the flags that were set. flags may be nil.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultConfigPath()
	}

	var loadErr error
	if effectivePath != "" {
		loadErr = decodeFile(effectivePath, cfg)
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, loadErr
}
