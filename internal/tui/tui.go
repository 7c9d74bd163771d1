// internal/tui/tui.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen tcell.Screen
}

// New initializes screen with mouse reporting on. A nil screen opens the real
// terminal; tests pass a simulation screen.
func New(screen tcell.Screen, base tcell.Style) (*TUI, error) {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("failed to create tcell screen: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}

	screen.SetStyle(base)
	// Drag reporting is required to see pointer motion while the button is held.
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.EnablePaste()
	screen.HideCursor()
	return &TUI{screen: screen}, nil
}

// Close finalizes the tcell screen.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.DisableMouse()
		t.screen.Fini()
	}
}

// ChannelEvents forwards screen events to ch until quit is closed.
func (t *TUI) ChannelEvents(ch chan<- tcell.Event, quit <-chan struct{}) {
	t.screen.ChannelEvents(ch, quit)
}

// Show makes the changes visible.
func (t *TUI) Show() {
	t.screen.Show()
}

// Sync repaints everything, used after a resize.
func (t *TUI) Sync() {
	t.screen.Sync()
}

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// SetStyle changes the style of cleared cells.
func (t *TUI) SetStyle(style tcell.Style) {
	t.screen.SetStyle(style)
}

// ShowCursor places the terminal cursor at (x, y); negative values hide it.
func (t *TUI) ShowCursor(x, y int) {
	if x < 0 || y < 0 {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(x, y)
}

// GetScreen provides direct access (use with caution).
func (t *TUI) GetScreen() tcell.Screen {
	return t.screen
}
