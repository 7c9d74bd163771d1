package config

import "time"

// Base application details
const AppName = "sketch"
const Version = "0.3.0"
const ThemesDirName = "themes"
const DefaultThemeFileName = "theme.toml"   // Active theme file
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "sketch.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Canvas defaults
const DefaultColor = "#000000"
const DefaultBrush = "█"
const DefaultHistoryLimit = 0 // Unbounded
const SystemClipboard = true

// DefaultPalette is cycled with 'n' and picked with 1-8.
var DefaultPalette = []string{
	"#000000", "#e06c75", "#98c379", "#e5c07b",
	"#61afef", "#c678dd", "#56b6c2", "#abb2bf",
}
