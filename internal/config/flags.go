// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"
)

// Flags holds values parsed from command-line flags. Only flags that were
// actually set override the config file.
type Flags struct {
	fs *flag.FlagSet

	ConfigFilePath  *string
	Version         *bool
	LogLevel        *string
	LogFilePath     *string
	Color           *string
	Brush           *string
	HistoryLimit    *int
	ThemeFile       *string
	SystemClipboard *bool
	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
	EnableFiles     *string
	DisableFiles    *string
	DebugLog        *bool
}

// NewFlags defines every flag on fs. A nil fs uses flag.CommandLine.
func NewFlags(fs *flag.FlagSet) *Flags {
	if fs == nil {
		fs = flag.CommandLine
	}
	f := &Flags{fs: fs}
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.Color = fs.String("color", "", "Initial drawing color (name or #rrggbb) - Overrides config file")
	f.Brush = fs.String("brush", "", "Character used to paint strokes - Overrides config file")
	f.HistoryLimit = fs.Int("history-limit", -1, "Maximum undo depth, 0 for unbounded - Overrides config file") // -1 means unset
	f.ThemeFile = fs.String("theme", "", "Path to a TOML theme file - Overrides config file")
	f.SystemClipboard = fs.Bool("system-clipboard", SystemClipboard, "Use the system clipboard instead of the internal register")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.EnableFiles = fs.String("log-files", "", "Comma-separated list of files to enable - Overrides config file")
	f.DisableFiles = fs.String("log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	f.DebugLog = fs.Bool("debug-log", false, "Enable verbose debug logging for the logger filtering system")
	return f
}

// Parse parses args and returns the remaining non-flag arguments.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	return f.fs.Args(), nil
}

// ApplyOverrides updates cfg with values from flags *if* they were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	// Visit only processes flags that were actually set
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath // Empty string is valid (stderr)
		case "color":
			if *f.Color != "" {
				cfg.Canvas.DefaultColor = *f.Color
			}
		case "brush":
			if *f.Brush != "" {
				cfg.Canvas.Brush = *f.Brush
			}
		case "history-limit":
			if *f.HistoryLimit >= 0 {
				cfg.Canvas.HistoryLimit = *f.HistoryLimit
			}
		case "theme":
			cfg.Theme.File = *f.ThemeFile
		case "system-clipboard":
			cfg.Canvas.SystemClipboard = *f.SystemClipboard
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(*f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(*f.DisableFiles)
		}
	})
}

// splitCommaList splits a comma-separated list, dropping empty items.
func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
