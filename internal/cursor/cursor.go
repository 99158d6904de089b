// Package cursor tracks pen position inside a text box's bounding box: the
// geometry component of the layout pipeline.
package cursor

import (
	"fmt"

	"github.com/glyphbox/textbox/internal/geometry"
)

// Cursor tracks the pen position inside bounds as lines are laid out. It
// never reaches outside bounds.Left()/bounds.Right() horizontally; vertical
// movement is unconstrained (the driver decides when to stop via
// InDisplayArea).
type Cursor struct {
	Bounds      geometry.Rectangle
	Pos         geometry.Point
	LineHeight  int
	LineSpacing int
	TabWidth    int
}

// New creates a Cursor positioned at the top-left of bounds.
func New(bounds geometry.Rectangle, lineHeight, lineSpacing, tabWidth int) *Cursor {
	return &Cursor{
		Bounds:      bounds,
		Pos:         bounds.Top,
		LineHeight:  lineHeight,
		LineSpacing: lineSpacing,
		TabWidth:    tabWidth,
	}
}

// ErrNoRoom is returned by Advance when k pixels would run past the right
// edge of the line. The caller receives the number of pixels that do fit.
type ErrNoRoom struct {
	Remaining int
}

func (e *ErrNoRoom) Error() string {
	return fmt.Sprintf("cursor: %d pixels remaining, advance does not fit", e.Remaining)
}

// Advance moves the cursor right by k pixels if it fits on the current
// line; otherwise it leaves the cursor unmoved and returns ErrNoRoom
// reporting how much room is actually left.
func (c *Cursor) Advance(k int) error {
	if !c.FitsInLine(k) {
		return &ErrNoRoom{Remaining: c.Space()}
	}
	c.Pos.X += k
	return nil
}

// AdvanceUnchecked moves the cursor right by k pixels without a bounds
// check. Callers use this after a prior FitsInLine(k) check to avoid
// double validation in the hot path.
func (c *Cursor) AdvanceUnchecked(k int) {
	c.Pos.X += k
}

// Rewind moves the cursor left by k pixels. It returns false (and leaves
// the cursor unmoved) when k exceeds the current column offset; the caller
// must then issue a CarriageReturn instead.
func (c *Cursor) Rewind(k int) bool {
	if k > c.Pos.X-c.Bounds.Left() {
		return false
	}
	c.Pos.X -= k
	return true
}

// FitsInLine reports whether k more pixels fit before the right edge.
func (c *Cursor) FitsInLine(k int) bool {
	return c.Pos.X+k <= c.Bounds.Right()
}

// Space returns the number of pixels remaining on the current line.
func (c *Cursor) Space() int {
	return c.Bounds.Right() - c.Pos.X
}

// LineWidth returns the full width of the bounding box.
func (c *Cursor) LineWidth() int {
	return c.Bounds.Width()
}

// NextTabWidth returns the pixel distance to the next tab stop (a column
// offset from the line's left edge that is a multiple of TabWidth),
// clamped to the space remaining on the line.
func (c *Cursor) NextTabWidth() int {
	if c.TabWidth <= 0 {
		return 0
	}
	col := c.Pos.X - c.Bounds.Left()
	dist := c.TabWidth - col%c.TabWidth
	if dist > c.Space() {
		return c.Space()
	}
	return dist
}

// NewLine advances the cursor to the next line: y increases by
// LineHeight+LineSpacing, x resets to the left edge.
func (c *Cursor) NewLine() {
	c.Pos.Y += c.LineHeight + c.LineSpacing
	c.Pos.X = c.Bounds.Left()
}

// CarriageReturn resets the cursor's x to the left edge without a
// vertical move.
func (c *Cursor) CarriageReturn() {
	c.Pos.X = c.Bounds.Left()
}

// InDisplayArea reports whether the cursor's current line is at least
// partially inside the bounding box vertically.
func (c *Cursor) InDisplayArea() bool {
	return c.Pos.Y < c.Bounds.Bottom() && c.Pos.Y+c.LineHeight > c.Bounds.TopEdge()
}

// RowRange returns the inclusive-exclusive [top, bottom) pixel row range
// this cursor's current line occupies.
func (c *Cursor) RowRange() (top, bottom int) {
	return c.Pos.Y, c.Pos.Y + c.LineHeight
}
