package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want tcell.Color
	}{
		{"#000000", tcell.NewRGBColor(0, 0, 0)},
		{"#FF8000", tcell.NewRGBColor(255, 128, 0)},
		{"#f00", tcell.NewRGBColor(255, 0, 0)},
		{" red ", tcell.ColorRed},
		{"reset", tcell.ColorReset},
		{"default", tcell.ColorDefault},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#12", "#gggggg", "chartreuse-ish"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) accepted", bad)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex(tcell.NewRGBColor(255, 128, 0)); got != "#ff8000" {
		t.Errorf("Hex = %q", got)
	}
	if got := Hex(tcell.ColorDefault); got != "default" {
		t.Errorf("Hex(default) = %q", got)
	}
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette([]string{"#000000", "blue"})
	if err != nil || len(p) != 2 {
		t.Fatalf("ParsePalette = %v, %v", p, err)
	}
	if _, err := ParsePalette([]string{"#000000", "nope"}); err == nil {
		t.Error("bad palette entry accepted")
	}
}

func TestGetStyleFallbacks(t *testing.T) {
	th := Default()
	canvas := th.GetStyle(StyleCanvas)
	if canvas != Paper.Styles[StyleCanvas] {
		t.Error("exact lookup failed")
	}
	if th.GetStyle("StatusBar.extra") != th.Styles[StyleStatusBar] {
		t.Error("dotted name did not fall back to its base")
	}
	if th.GetStyle("Missing") != th.Styles[StyleDefault] {
		t.Error("missing name did not fall back to Default")
	}
	var nilTheme *Theme
	if nilTheme.GetStyle("x") != tcell.StyleDefault {
		t.Error("nil theme did not return tcell default")
	}
}

func TestDefaultIsACopy(t *testing.T) {
	th := Default()
	th.Styles[StyleCanvas] = tcell.StyleDefault.Bold(true)
	if Paper.Styles[StyleCanvas] == th.Styles[StyleCanvas] {
		t.Error("Default shares its style map with the built-in theme")
	}
}

func TestLoadThemeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "night.toml")
	content := `
is_dark = true

[styles.Default]
fg = "#ffffff"
bg = "#000000"

[styles.StatusBar]
bold = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "night" || !th.IsDark {
		t.Errorf("name/dark = %q/%v", th.Name, th.IsDark)
	}
	fg, bg, attrs := th.GetStyle(StyleStatusBar).Decompose()
	if fg != tcell.NewRGBColor(255, 255, 255) || bg != tcell.NewRGBColor(0, 0, 0) || attrs&tcell.AttrBold == 0 {
		t.Errorf("StatusBar = fg %v bg %v attrs %v", fg, bg, attrs)
	}
	if th.GetStyle(StyleStatusBarPrompt) != Paper.Styles[StyleStatusBarPrompt] {
		t.Error("style missing from file was not taken from the built-in theme")
	}
}

func TestLoadThemeErrors(t *testing.T) {
	if _, err := LoadThemeFromFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file accepted")
	}
	path := filepath.Join(t.TempDir(), "bad.toml")
	os.WriteFile(path, []byte("[styles.Default]\nfg = \"#zzzzzz\"\n"), 0o644)
	if _, err := LoadThemeFromFile(path); err == nil {
		t.Error("bad Default color accepted")
	}
}
