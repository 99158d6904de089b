package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glyphbox/textbox/internal/geometry"
)

func newTestCursor() *Cursor {
	bounds := geometry.NewRectangle(geometry.NewPoint(10, 10), geometry.NewSize(60, 24))
	return New(bounds, 8, 2, 24)
}

func TestCursor_AdvanceAndSpace(t *testing.T) {
	c := newTestCursor()
	assert.True(t, c.FitsInLine(60))
	assert.False(t, c.FitsInLine(61))

	assert.NoError(t, c.Advance(30))
	assert.Equal(t, 30, c.Space())

	err := c.Advance(31)
	assert.Error(t, err)
	var noRoom *ErrNoRoom
	assert.ErrorAs(t, err, &noRoom)
	assert.Equal(t, 30, noRoom.Remaining)
}

func TestCursor_Rewind(t *testing.T) {
	c := newTestCursor()
	c.AdvanceUnchecked(20)

	assert.True(t, c.Rewind(10))
	assert.Equal(t, 10, c.Pos.X-c.Bounds.Left())

	assert.False(t, c.Rewind(20), "cannot rewind past the left edge")
	assert.Equal(t, 10, c.Pos.X-c.Bounds.Left(), "failed rewind leaves cursor unmoved")
}

func TestCursor_NewLineAndCarriageReturn(t *testing.T) {
	c := newTestCursor()
	c.AdvanceUnchecked(15)

	startY := c.Pos.Y
	c.NewLine()
	assert.Equal(t, startY+8+2, c.Pos.Y)
	assert.Equal(t, c.Bounds.Left(), c.Pos.X)

	c.AdvanceUnchecked(5)
	c.CarriageReturn()
	assert.Equal(t, c.Bounds.Left(), c.Pos.X)
	assert.Equal(t, startY+8+2, c.Pos.Y, "carriage return does not move vertically")
}

func TestCursor_NextTabWidth(t *testing.T) {
	c := newTestCursor()
	assert.Equal(t, 24, c.NextTabWidth())

	c.AdvanceUnchecked(10)
	assert.Equal(t, 14, c.NextTabWidth())

	c.AdvanceUnchecked(48)
	// remaining line space is smaller than the next tab stop distance
	assert.Equal(t, c.Space(), c.NextTabWidth())
}

func TestCursor_InDisplayArea(t *testing.T) {
	c := newTestCursor()
	assert.True(t, c.InDisplayArea())

	c.Pos.Y = c.Bounds.Bottom()
	assert.False(t, c.InDisplayArea())
}
