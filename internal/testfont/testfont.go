// Package testfont provides a fixed 6x8-pixel monospace CharacterRenderer
// and an in-memory DisplayTarget, used by package tests in place of a
// real glyph rasterizer and display driver, both of which are external
// collaborators out of this module's scope.
package testfont

import (
	"github.com/glyphbox/textbox/internal/geometry"
	"github.com/glyphbox/textbox/render"
	"github.com/mattn/go-runewidth"
)

// CharWidth and CharHeight are this font's fixed glyph cell size in
// pixels, matching the original crate's Font6x8 test font.
const (
	CharWidth  = 6
	CharHeight = 8
)

// Font is a CharacterRenderer over a fixed-cell monospace font. Wide
// (East-Asian) runes occupy two cells, measured via go-runewidth.
type Font struct {
	textColor          render.ColorOption
	backgroundColor    render.ColorOption
	underlineColor     render.ColorOption
	strikethroughColor render.ColorOption
}

// New returns a Font with no colors set.
func New() *Font { return &Font{} }

func (f *Font) cellsFor(text string) int {
	w := 0
	for _, r := range text {
		w += runewidth.RuneWidth(r)
	}
	return w
}

// MeasureString implements render.CharacterRenderer.
func (f *Font) MeasureString(text string) int { return f.cellsFor(text) * CharWidth }

// LineHeight implements render.CharacterRenderer.
func (f *Font) LineHeight() int { return CharHeight }

// DrawString implements render.CharacterRenderer: it records one Pixel
// (rune plus current colors) per rune at the top-left corner of its
// glyph cell in the target Display, advances CharWidth per cell (two
// cells for wide runes), and returns the pen position immediately after
// the drawn text.
func (f *Font) DrawString(text string, pos geometry.Point, target render.DisplayTarget) (geometry.Point, error) {
	grid, ok := target.(*Display)
	x := pos.X
	for _, r := range text {
		cells := runewidth.RuneWidth(r)
		if cells == 0 {
			cells = 1
		}
		if ok {
			grid.paintCell(x, pos.Y, f.textColor, f.backgroundColor, f.underlineColor, f.strikethroughColor, r)
		}
		x += cells * CharWidth
	}
	return geometry.NewPoint(x, pos.Y), nil
}

// DrawWhitespace implements render.CharacterRenderer: paints width pixels
// of background-colored blank cells.
func (f *Font) DrawWhitespace(width int, pos geometry.Point, target render.DisplayTarget) (geometry.Point, error) {
	if grid, ok := target.(*Display); ok {
		for x := pos.X; x < pos.X+width; x += CharWidth {
			grid.paintCell(x, pos.Y, render.NoColor(), f.backgroundColor, render.NoColor(), render.NoColor(), ' ')
		}
	}
	return geometry.NewPoint(pos.X+width, pos.Y), nil
}

// TextColor returns the color most recently set via SetTextColor, for
// test assertions about in-band SGR application order.
func (f *Font) TextColor() render.ColorOption { return f.textColor }

// BackgroundColor returns the color most recently set via
// SetBackgroundColor.
func (f *Font) BackgroundColor() render.ColorOption { return f.backgroundColor }

func (f *Font) SetTextColor(c render.ColorOption)          { f.textColor = c }
func (f *Font) SetBackgroundColor(c render.ColorOption)    { f.backgroundColor = c }
func (f *Font) SetUnderlineColor(c render.ColorOption)     { f.underlineColor = c }
func (f *Font) SetStrikethroughColor(c render.ColorOption) { f.strikethroughColor = c }
