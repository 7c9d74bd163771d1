// internal/app/app.go
package app

import (
	"fmt"
	"os"

	"github.com/bethropolis/sketch/internal/canvas"
	"github.com/bethropolis/sketch/internal/clipboard"
	"github.com/bethropolis/sketch/internal/config"
	"github.com/bethropolis/sketch/internal/event"
	"github.com/bethropolis/sketch/internal/input"
	"github.com/bethropolis/sketch/internal/logger"
	"github.com/bethropolis/sketch/internal/modehandler"
	"github.com/bethropolis/sketch/internal/scene"
	"github.com/bethropolis/sketch/internal/statusbar"
	"github.com/bethropolis/sketch/internal/theme"
	"github.com/bethropolis/sketch/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop.
type App struct {
	tuiManager   *tui.TUI
	canvas       *canvas.Canvas
	scene        *scene.Scene
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	modeHandler  *modehandler.ModeHandler
	clipboard    *clipboard.Manager
	activeTheme  *theme.Theme

	quit       chan struct{}    // Closed by the mode handler
	events     chan tcell.Event // Filled by tcell's poller
	stopEvents chan struct{}

	// Bracketed paste collects runes instead of treating them as key bindings.
	pasting  bool
	pasteBuf []rune
}

// NewApp builds every component from cfg. A nil screen opens the terminal.
func NewApp(cfg *config.Config, screen tcell.Screen) (*App, error) {
	activeTheme, err := loadTheme(cfg.Theme.File)
	if err != nil {
		return nil, err
	}

	tuiManager, err := tui.New(screen, activeTheme.GetStyle(theme.StyleCanvas))
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	// validate has already replaced unparsable values with defaults.
	color, err := theme.ParseColor(cfg.Canvas.DefaultColor)
	if err != nil {
		tuiManager.Close()
		return nil, fmt.Errorf("default color: %w", err)
	}
	palette, err := theme.ParsePalette(cfg.Canvas.Palette)
	if err != nil {
		tuiManager.Close()
		return nil, err
	}

	width, height := tuiManager.Size()
	drawing := canvas.New(width, height-config.StatusBarHeight)
	if brush := []rune(cfg.Canvas.Brush); len(brush) > 0 {
		drawing.SetBrush(brush[0])
	}

	eventManager := event.NewManager()
	sc := scene.New(scene.Options{
		History: scene.NewHistory(cfg.Canvas.HistoryLimit),
		Surface: drawing,
		Events:  eventManager,
	})
	statusBar := statusbar.New(statusbar.ConfigFromTheme(activeTheme, config.MessageTimeout))
	clip := clipboard.New(cfg.Canvas.SystemClipboard)
	quitChan := make(chan struct{})

	modeHandler := modehandler.New(modehandler.Config{
		Scene:          sc,
		Canvas:         drawing,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      statusBar,
		Clipboard:      clip,
		QuitSignal:     quitChan,
		Color:          color,
		Palette:        palette,
	})

	a := &App{
		tuiManager:   tuiManager,
		canvas:       drawing,
		scene:        sc,
		statusBar:    statusBar,
		eventManager: eventManager,
		modeHandler:  modeHandler,
		clipboard:    clip,
		activeTheme:  activeTheme,
		quit:         quitChan,
		events:       make(chan tcell.Event, 32),
		stopEvents:   make(chan struct{}),
	}

	a.subscribeEvents()
	registerAppCommands(a)

	logger.Debugf("App: Canvas %dx%d, history limit %d, theme '%s'",
		width, height-config.StatusBarHeight, cfg.Canvas.HistoryLimit, activeTheme.Name)
	return a, nil
}

// loadTheme loads path, or the user's default theme file when path is empty
// and that file exists, or falls back to the built-in theme.
func loadTheme(path string) (*theme.Theme, error) {
	if path == "" {
		path = config.DefaultThemePath()
		if path == "" {
			return theme.Default(), nil
		}
		if _, err := os.Stat(path); err != nil {
			return theme.Default(), nil
		}
	}
	th, err := theme.LoadThemeFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	return th, nil
}

// Run owns all state on the calling goroutine: it handles each event to
// completion, then draws.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer close(a.stopEvents)

	go a.tuiManager.ChannelEvents(a.events, a.stopEvents)

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("sketch - d draw | t text | u undo | r redo | : command | q quit")
	a.draw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("Exiting application.")
			return nil
		case ev, ok := <-a.events:
			if !ok {
				return nil
			}
			if a.handleEvent(ev) {
				a.draw()
			}
		}
	}
}

// handleEvent routes one tcell event. Returns true if a redraw is needed.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		width, height := a.tuiManager.Size()
		a.canvas.Resize(width, height-config.StatusBarHeight)
		a.scene.Render(a.canvas)
		logger.DebugTagf("draw", "App: Resized to %dx%d", width, height)
		return true

	case *tcell.EventPaste:
		if ev.Start() {
			a.pasting = true
			a.pasteBuf = a.pasteBuf[:0]
			return false
		}
		a.pasting = false
		return a.modeHandler.HandlePaste(string(a.pasteBuf))

	case *tcell.EventKey:
		if a.pasting {
			switch ev.Key() {
			case tcell.KeyRune:
				a.pasteBuf = append(a.pasteBuf, ev.Rune())
			case tcell.KeyEnter:
				a.pasteBuf = append(a.pasteBuf, '\n')
			}
			return false
		}
		return a.modeHandler.HandleKeyEvent(ev)

	case *tcell.EventMouse:
		return a.modeHandler.HandleMouseEvent(ev)
	}
	return false
}

// GetTheme returns the app's active theme.
func (a *App) GetTheme() *theme.Theme {
	return a.activeTheme
}

// SetTheme changes the app's active theme for the next draw.
func (a *App) SetTheme(t *theme.Theme) {
	if t == nil {
		return
	}
	a.activeTheme = t
	a.tuiManager.SetStyle(t.GetStyle(theme.StyleCanvas))
	cfg := statusbar.ConfigFromTheme(t, config.MessageTimeout)
	a.statusBar.SetStyles(cfg)
}
