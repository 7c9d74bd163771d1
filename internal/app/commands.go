package app

import (
	"strings"

	"github.com/bethropolis/sketch/internal/logger"
	"github.com/bethropolis/sketch/internal/theme"
)

// registerAppCommands registers commands that need the app, like :theme.
func registerAppCommands(app *App) {
	themeCmdFunc := func(args []string) error {
		if len(args) == 0 {
			app.statusBar.SetTemporaryMessage("Current theme: %s", app.GetTheme().Name)
			return nil
		}
		path := strings.Join(args, " ") // Allow paths with spaces
		if path == "default" {
			app.SetTheme(theme.Default())
		} else {
			th, err := theme.LoadThemeFromFile(path)
			if err != nil {
				return err
			}
			app.SetTheme(th)
		}
		app.statusBar.SetTemporaryMessage("Theme set to: %s", app.GetTheme().Name)
		return nil
	}

	if err := app.modeHandler.RegisterCommand("theme", themeCmdFunc); err != nil {
		logger.Warnf("Failed to register ':theme' command: %v", err)
	}
}
