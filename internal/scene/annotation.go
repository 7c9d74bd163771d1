// Package scene owns the text annotations drawn on the canvas: their order,
// hit-testing, the single selection and drag repositioning.
package scene

import (
	"github.com/bethropolis/sketch/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Annotation is a positioned, colored text string. The live collection holds
// pointers; two annotations with equal fields are still different objects.
type Annotation struct {
	X     int
	Y     int // Baseline row: the bottom edge of the hit box
	Text  string
	Color tcell.Color
}

// Pos returns the annotation's anchor point.
func (a *Annotation) Pos() types.Point {
	return types.Point{X: a.X, Y: a.Y}
}

// Snapshot is an independent value copy of the collection at one instant.
type Snapshot []Annotation

// Metrics measures annotation text for hit-testing.
type Metrics interface {
	TextWidth(text string) int
	TextHeight() int
}

// CellMetrics measures text in terminal cells. A glyph occupies exactly one
// row, so the height above the baseline is zero.
type CellMetrics struct{}

// TextWidth returns the display width of text in cells.
func (CellMetrics) TextWidth(text string) int {
	return uniseg.StringWidth(text)
}

// TextHeight returns 0: the box covers only the baseline row.
func (CellMetrics) TextHeight() int {
	return 0
}

// Surface is where the scene paints itself.
type Surface interface {
	Clear()
	DrawText(p types.Point, text string, color tcell.Color)
}

// collectionCodec deep-copies between the live pointer slice and snapshots.
type collectionCodec struct{}

func (collectionCodec) Snapshot(live []*Annotation) Snapshot {
	snap := make(Snapshot, len(live))
	for i, a := range live {
		snap[i] = *a
	}
	return snap
}

func (collectionCodec) Restore(snap Snapshot) []*Annotation {
	live := make([]*Annotation, len(snap))
	for i := range snap {
		a := snap[i]
		live[i] = &a
	}
	return live
}
