package app

import (
	"github.com/bethropolis/sketch/internal/theme"
	"github.com/rivo/uniseg"
)

// draw repaints the canvas, the prompt preview and the status bar.
func (a *App) draw() {
	a.updateStatusBarContent()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()

	a.canvas.Blit(screen, a.activeTheme.GetStyle(theme.StyleCanvas))
	a.statusBar.Draw(screen, width, height)

	// Preview prompt text where it will land, with the cursor after it.
	if anchor, ok := a.modeHandler.PromptAnchor(); ok {
		style := a.activeTheme.GetStyle(theme.StyleCanvas).Foreground(a.modeHandler.Color()).Underline(true)
		x := anchor.X
		gr := uniseg.NewGraphemes(a.modeHandler.GetPromptBuffer())
		for gr.Next() {
			runes := gr.Runes()
			if gr.Width() == 0 || x >= width {
				continue
			}
			screen.SetContent(x, anchor.Y, runes[0], runes[1:], style)
			x += gr.Width()
		}
		a.tuiManager.ShowCursor(x, anchor.Y)
	} else {
		a.tuiManager.ShowCursor(-1, -1)
	}

	a.tuiManager.Show()
}

// updateStatusBarContent pushes scene state the scene does not announce.
func (a *App) updateStatusBarContent() {
	a.statusBar.SetHistory(a.scene.UndoDepth(), a.scene.RedoDepth())
	a.statusBar.SetDragging(a.scene.Dragging())
	if sel := a.scene.Selected(); sel != nil {
		a.statusBar.SetSelection(sel.Text, true)
	} else {
		a.statusBar.SetSelection("", false)
	}
}
