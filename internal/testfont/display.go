package testfont

import (
	"github.com/glyphbox/textbox/internal/geometry"
	"github.com/glyphbox/textbox/render"
)

// Pixel is one cell of a Display's recorded output, for assertions in
// tests.
type Pixel struct {
	Rune               rune
	TextColor          render.ColorOption
	BackgroundColor    render.ColorOption
	UnderlineColor     render.ColorOption
	StrikethroughColor render.ColorOption
}

// Display is an in-memory render.DisplayTarget: a rectangular grid of
// Pixel cells addressable by absolute coordinate, the role a real
// OLED/TFT frame buffer plays in production.
type Display struct {
	bounds geometry.Rectangle
	clip   geometry.Rectangle
	cells  map[geometry.Point]Pixel
}

// NewDisplay creates a Display of the given pixel size, rooted at (0,0).
func NewDisplay(width, height int) *Display {
	b := geometry.NewRectangle(geometry.NewPoint(0, 0), geometry.NewSize(width, height))
	return &Display{bounds: b, clip: b, cells: make(map[geometry.Point]Pixel)}
}

// BoundingBox implements render.DisplayTarget.
func (d *Display) BoundingBox() geometry.Rectangle { return d.clip }

// Clipped implements render.DisplayTarget: it returns a new Display
// sharing the same backing cell map but restricted to sub intersected
// with the current clip, so nested clips compose correctly.
func (d *Display) Clipped(sub geometry.Rectangle) render.DisplayTarget {
	return &Display{bounds: d.bounds, clip: d.clip.Clipped(sub), cells: d.cells}
}

func (d *Display) paintCell(x, y int, text, bg, underline, strike render.ColorOption, r rune) {
	p := geometry.NewPoint(x, y)
	if !d.clip.Contains(p) {
		return
	}
	d.cells[p] = Pixel{Rune: r, TextColor: text, BackgroundColor: bg, UnderlineColor: underline, StrikethroughColor: strike}
}

// At returns the recorded cell at (x, y), and whether anything was ever
// painted there.
func (d *Display) At(x, y int) (Pixel, bool) {
	p, ok := d.cells[geometry.NewPoint(x, y)]
	return p, ok
}

// RuneAt returns the rune painted at (x, y), or 0 if nothing was drawn
// there — a convenience for tests asserting rendered text layout.
func (d *Display) RuneAt(x, y int) rune {
	p, ok := d.cells[geometry.NewPoint(x, y)]
	if !ok {
		return 0
	}
	return p.Rune
}
