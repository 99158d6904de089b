// Package termrender is a terminal-cell CharacterRenderer/DisplayTarget
// pair used by the textboxdemo command: one "pixel" is one
// terminal column/row, and SGR colors are applied through lipgloss
// instead of a glyph rasterizer, since this module ships no framebuffer
// display driver of its own — both are external collaborators left to
// the host application.
package termrender

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glyphbox/textbox/internal/geometry"
	"github.com/glyphbox/textbox/render"
)

type cell struct {
	r     rune
	style lipgloss.Style
}

// Grid is a render.DisplayTarget backed by a 2D buffer of terminal cells.
type Grid struct {
	bounds geometry.Rectangle
	clip   geometry.Rectangle
	cells  [][]cell
}

// NewGrid creates a blank width x height Grid.
func NewGrid(width, height int) *Grid {
	rows := make([][]cell, height)
	for y := range rows {
		rows[y] = make([]cell, width)
		for x := range rows[y] {
			rows[y][x] = cell{r: ' '}
		}
	}
	b := geometry.NewRectangle(geometry.NewPoint(0, 0), geometry.NewSize(width, height))
	return &Grid{bounds: b, clip: b, cells: rows}
}

// BoundingBox implements render.DisplayTarget.
func (g *Grid) BoundingBox() geometry.Rectangle { return g.clip }

// Clipped implements render.DisplayTarget.
func (g *Grid) Clipped(sub geometry.Rectangle) render.DisplayTarget {
	return &Grid{bounds: g.bounds, clip: g.clip.Clipped(sub), cells: g.cells}
}

func (g *Grid) set(x, y int, r rune, st lipgloss.Style) {
	p := geometry.NewPoint(x, y)
	if !g.clip.Contains(p) {
		return
	}
	g.cells[y][x] = cell{r: r, style: st}
}

// Render flattens the grid to a printable, ANSI-styled string.
func (g *Grid) Render() string {
	var b strings.Builder
	for _, row := range g.cells {
		for _, c := range row {
			b.WriteString(c.style.Render(string(c.r)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Font is a render.CharacterRenderer where one cell is one glyph: its
// line height and space width are both 1.
type Font struct {
	textColor       render.ColorOption
	backgroundColor render.ColorOption
	underline       bool
	strikethrough   bool
}

func (f *Font) lipglossStyle() lipgloss.Style {
	st := lipgloss.NewStyle()
	if f.textColor.Kind == render.ColorExplicit {
		c := f.textColor.Value
		st = st.Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
	}
	if f.backgroundColor.Kind == render.ColorExplicit {
		c := f.backgroundColor.Value
		st = st.Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
	}
	if f.underline {
		st = st.Underline(true)
	}
	if f.strikethrough {
		st = st.Strikethrough(true)
	}
	return st
}

// MeasureString implements render.CharacterRenderer.
func (f *Font) MeasureString(text string) int { return len([]rune(text)) }

// LineHeight implements render.CharacterRenderer.
func (f *Font) LineHeight() int { return 1 }

// DrawString implements render.CharacterRenderer.
func (f *Font) DrawString(text string, pos geometry.Point, target render.DisplayTarget) (geometry.Point, error) {
	grid := target.(*Grid)
	x := pos.X
	st := f.lipglossStyle()
	for _, r := range text {
		grid.set(x, pos.Y, r, st)
		x++
	}
	return geometry.NewPoint(x, pos.Y), nil
}

// DrawWhitespace implements render.CharacterRenderer.
func (f *Font) DrawWhitespace(width int, pos geometry.Point, target render.DisplayTarget) (geometry.Point, error) {
	grid := target.(*Grid)
	st := f.lipglossStyle()
	for x := pos.X; x < pos.X+width; x++ {
		grid.set(x, pos.Y, ' ', st)
	}
	return geometry.NewPoint(pos.X+width, pos.Y), nil
}

func (f *Font) SetTextColor(c render.ColorOption)       { f.textColor = c }
func (f *Font) SetBackgroundColor(c render.ColorOption) { f.backgroundColor = c }

func (f *Font) SetUnderlineColor(c render.ColorOption) {
	f.underline = c.Kind != render.ColorNone
}

func (f *Font) SetStrikethroughColor(c render.ColorOption) {
	f.strikethrough = c.Kind != render.ColorNone
}
