// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bethropolis/sketch/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg" // For proper Unicode width calculation
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleMessage   tcell.Style // Style for temporary messages
	StylePrompt    tcell.Style // Style for the text prompt
	StyleCommand   tcell.Style // Style for the command line
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return ConfigFromTheme(theme.Default(), 4*time.Second)
}

// ConfigFromTheme takes the status bar styles from th.
func ConfigFromTheme(th *theme.Theme, timeout time.Duration) Config {
	return Config{
		StyleDefault:   th.GetStyle(theme.StyleStatusBar),
		StyleMessage:   th.GetStyle(theme.StyleStatusBarMessage),
		StylePrompt:    th.GetStyle(theme.StyleStatusBarPrompt),
		StyleCommand:   th.GetStyle(theme.StyleStatusBarCommand),
		MessageTimeout: timeout,
	}
}

type inputKind int

const (
	inputNone inputKind = iota
	inputPrompt
	inputCommand
)

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex // Protect access to text fields
	now    func() time.Time

	// Content fields (updated from scene and mode handler events)
	mode         string
	color        tcell.Color
	undoDepth    int
	redoDepth    int
	selectedText string
	hasSelection bool
	dragging     bool

	// Line entry echo; takes precedence over everything else
	input      inputKind
	inputLabel string
	inputText  string

	// Temporary message state
	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
		now:    time.Now,
		color:  tcell.ColorDefault,
	}
}

// SetStyles replaces the configuration, for example after a theme change.
func (sb *StatusBar) SetStyles(config Config) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config = config
}

// SetMode updates the displayed tool mode.
func (sb *StatusBar) SetMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.mode = mode
}

// SetColor updates the displayed drawing color.
func (sb *StatusBar) SetColor(c tcell.Color) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.color = c
}

// SetHistory updates the displayed undo and redo depths.
func (sb *StatusBar) SetHistory(undoDepth, redoDepth int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.undoDepth = undoDepth
	sb.redoDepth = redoDepth
}

// SetSelection shows the selected annotation's text, or nothing when ok is false.
func (sb *StatusBar) SetSelection(text string, ok bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.selectedText = text
	sb.hasSelection = ok
}

// SetDragging toggles the drag indicator.
func (sb *StatusBar) SetDragging(dragging bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.dragging = dragging
}

// SetPrompt echoes the text prompt as "label: text".
func (sb *StatusBar) SetPrompt(label, text string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.input = inputPrompt
	sb.inputLabel = label
	sb.inputText = text
}

// SetCommand echoes the command line as ":text".
func (sb *StatusBar) SetCommand(text string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.input = inputCommand
	sb.inputLabel = ""
	sb.inputText = text
}

// ClearInput stops echoing the prompt or command line.
func (sb *StatusBar) ClearInput() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.input = inputNone
	sb.inputLabel = ""
	sb.inputText = ""
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// getDefaultDisplayText builds the default status line text. Caller holds the lock.
func (sb *StatusBar) getDefaultDisplayText() string {
	var b strings.Builder
	mode := sb.mode
	if mode == "" {
		mode = "DRAW"
	}
	fmt.Fprintf(&b, "%s -- color %s -- undo %d redo %d", mode, theme.Hex(sb.color), sb.undoDepth, sb.redoDepth)
	if sb.hasSelection {
		fmt.Fprintf(&b, " -- selected %q", sb.selectedText)
	}
	if sb.dragging {
		b.WriteString(" [DRAG]")
	}
	return b.String()
}

// DisplayText returns the text and style Draw would paint now, expiring a
// stale temporary message on the way.
func (sb *StatusBar) DisplayText() (string, tcell.Style) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	switch sb.input {
	case inputPrompt:
		return fmt.Sprintf("%s: %s", sb.inputLabel, sb.inputText), sb.config.StylePrompt
	case inputCommand:
		return ":" + sb.inputText, sb.config.StyleCommand
	}

	isTempMsgActive := !sb.tempMessageTime.IsZero() && sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !isTempMsgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	if isTempMsgActive {
		return sb.tempMessage, sb.config.StyleMessage
	}
	return sb.getDefaultDisplayText(), sb.config.StyleDefault
}

// Draw renders the status bar onto the last screen row using visual widths.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1 // Status bar is always the last line

	text, style := sb.DisplayText()

	// Fill background first
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break // Stop if cluster doesn't fit
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			var combiningRunes []rune
			if len(runes) > 1 {
				combiningRunes = runes[1:]
			}
			screen.SetContent(currentX, y, runes[0], combiningRunes, style)
		}
		currentX += clusterWidth
	}
}
