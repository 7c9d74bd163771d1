package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/sketch/internal/config"
	"github.com/gdamore/tcell/v2"
)

func newTestApp(t *testing.T, closeOnCleanup bool) (*App, tcell.SimulationScreen) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := config.NewDefaultConfig()
	cfg.Canvas.SystemClipboard = false

	sim := tcell.NewSimulationScreen("UTF-8")
	a, err := NewApp(cfg, sim)
	if err != nil {
		t.Fatal(err)
	}
	sim.SetSize(80, 8)
	a.handleEvent(tcell.NewEventResize(80, 8))
	if closeOnCleanup {
		t.Cleanup(a.tuiManager.Close)
	}
	return a, sim
}

func screenRow(sim tcell.SimulationScreen, y int) string {
	cells, width, _ := sim.GetContents()
	var b strings.Builder
	for _, c := range cells[y*width : (y+1)*width] {
		if len(c.Runes) > 0 {
			b.WriteRune(c.Runes[0])
		}
	}
	return b.String()
}

func screenRune(sim tcell.SimulationScreen, x, y int) rune {
	cells, width, _ := sim.GetContents()
	if c := cells[y*width+x]; len(c.Runes) > 0 {
		return c.Runes[0]
	}
	return 0
}

func key(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestResizeKeepsStatusRow(t *testing.T) {
	a, _ := newTestApp(t, true)
	if w, h := a.canvas.Size(); w != 80 || h != 7 {
		t.Errorf("canvas = %dx%d, want 80x7", w, h)
	}
}

func TestResizeRepaintsClippedAnnotations(t *testing.T) {
	a, sim := newTestApp(t, true)
	a.handleEvent(key('t'))
	a.handleEvent(tcell.NewEventMouse(76, 2, tcell.Button1, tcell.ModNone))
	a.handleEvent(tcell.NewEventMouse(76, 2, tcell.ButtonNone, tcell.ModNone))
	for _, r := range "abcd" {
		a.handleEvent(key(r))
	}
	a.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	sim.SetSize(78, 8)
	a.handleEvent(tcell.NewEventResize(78, 8))
	if got := a.canvas.Cell(77, 2).Rune; got != 'b' {
		t.Fatalf("narrow canvas cell = %q, want 'b'", got)
	}

	sim.SetSize(80, 8)
	a.handleEvent(tcell.NewEventResize(80, 8))
	for i, want := range "abcd" {
		if got := a.canvas.Cell(76+i, 2).Rune; got != want {
			t.Errorf("cell %d = %q, want %q", 76+i, got, want)
		}
	}
}

func TestStrokeShowsOnScreen(t *testing.T) {
	a, sim := newTestApp(t, true)
	a.handleEvent(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	a.handleEvent(tcell.NewEventMouse(3, 1, tcell.Button1, tcell.ModNone))
	a.handleEvent(tcell.NewEventMouse(3, 1, tcell.ButtonNone, tcell.ModNone))
	a.draw()

	if got := screenRune(sim, 2, 1); got != '█' {
		t.Errorf("stroke cell = %q", got)
	}
	status := screenRow(sim, 7)
	if !strings.HasPrefix(status, "DRAW -- color #000000 -- undo 1 redo 0") {
		t.Errorf("status = %q", status)
	}
}

func TestTextAnnotationFlow(t *testing.T) {
	a, sim := newTestApp(t, true)
	a.handleEvent(key('t'))
	a.handleEvent(tcell.NewEventMouse(2, 2, tcell.Button1, tcell.ModNone))
	a.handleEvent(tcell.NewEventMouse(2, 2, tcell.ButtonNone, tcell.ModNone))
	a.handleEvent(key('h'))
	a.handleEvent(key('i'))
	a.draw()

	if got := screenRune(sim, 2, 2); got != 'h' {
		t.Errorf("preview cell = %q", got)
	}
	if x, y, visible := sim.GetCursor(); !visible || x != 4 || y != 2 {
		t.Errorf("cursor = (%d,%d) visible=%v, want (4,2)", x, y, visible)
	}
	if status := screenRow(sim, 7); !strings.HasPrefix(status, "text: hi") {
		t.Errorf("status = %q", status)
	}

	a.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	a.draw()
	if got := screenRune(sim, 3, 2); got != 'i' {
		t.Errorf("annotation cell = %q", got)
	}
	if status := screenRow(sim, 7); !strings.Contains(status, `selected "hi"`) {
		t.Errorf("status = %q", status)
	}
	if _, _, visible := sim.GetCursor(); visible {
		t.Error("cursor left visible after submit")
	}
}

func TestBracketedPasteGoesToPrompt(t *testing.T) {
	a, _ := newTestApp(t, true)
	a.handleEvent(key('t'))
	a.handleEvent(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	a.handleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))

	a.handleEvent(tcell.NewEventPaste(true))
	for _, r := range "u r" { // tool keys must not fire while pasting
		a.handleEvent(key(r))
	}
	a.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	a.handleEvent(key('x'))
	a.handleEvent(tcell.NewEventPaste(false))

	if got := a.modeHandler.GetPromptBuffer(); got != "u r x" {
		t.Errorf("prompt = %q", got)
	}
}

func TestThemeCommand(t *testing.T) {
	a, _ := newTestApp(t, true)
	path := filepath.Join(t.TempDir(), "ink.toml")
	if err := os.WriteFile(path, []byte("name = \"Ink\"\n[styles.Canvas]\nbg = \"#101010\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	a.handleEvent(key(':'))
	for _, r := range "theme " + path {
		a.handleEvent(key(r))
	}
	a.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if a.GetTheme().Name != "Ink" {
		t.Errorf("theme = %q", a.GetTheme().Name)
	}
}

func TestExplicitThemeFileMustLoad(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Theme.File = filepath.Join(t.TempDir(), "missing.toml")
	if _, err := NewApp(cfg, tcell.NewSimulationScreen("UTF-8")); err == nil {
		t.Error("missing theme file accepted")
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	a, sim := newTestApp(t, false)
	done := make(chan error, 1)
	go func() { done <- a.Run() }()
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
}
