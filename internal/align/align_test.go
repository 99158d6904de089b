package align

import (
	"testing"

	"github.com/glyphbox/textbox/style"
	"github.com/stretchr/testify/assert"
)

func TestHorizontal_Left(t *testing.T) {
	p := Horizontal(style.Left, 100, 6, LineMeasurement{Width: 40})
	assert.Equal(t, 0, p.LeftOffset)
}

func TestHorizontal_Right(t *testing.T) {
	p := Horizontal(style.Right, 100, 6, LineMeasurement{Width: 40})
	assert.Equal(t, 60, p.LeftOffset)
}

func TestHorizontal_Center(t *testing.T) {
	p := Horizontal(style.Center, 101, 6, LineMeasurement{Width: 41})
	assert.Equal(t, 30, p.LeftOffset)
}

func TestHorizontal_JustifiedLastLineFallsBackToUniform(t *testing.T) {
	p := Horizontal(style.Justified, 100, 6, LineMeasurement{Width: 40, SpaceCount: 3, LastLine: true})
	assert.Equal(t, 0, p.LeftOffset)
	assert.Equal(t, 6, p.Spaces.Consume(1))
}

func TestHorizontal_JustifiedStretchesSlack(t *testing.T) {
	m := LineMeasurement{Width: 40, TrailingSpaceWidth: 0, SpaceCount: 2, LastLine: false}
	p := Horizontal(style.Justified, 50, 6, m)
	assert.Equal(t, 0, p.LeftOffset)
	// slack = 50 - (40-0) = 10 over 2 units -> 5,5
	assert.Equal(t, 5, p.Spaces.Consume(1))
	assert.Equal(t, 5, p.Spaces.Consume(1))
}

func TestHorizontal_JustifiedNoWhitespaceFallsBackToUniform(t *testing.T) {
	p := Horizontal(style.Justified, 50, 6, LineMeasurement{Width: 40, SpaceCount: 0})
	assert.Equal(t, 6, p.Spaces.Consume(1))
}

func TestVerticalOffset(t *testing.T) {
	assert.Equal(t, 0, VerticalOffset(style.Top, 40, 100))
	assert.Equal(t, 30, VerticalOffset(style.Middle, 40, 100))
	assert.Equal(t, 60, VerticalOffset(style.Bottom, 40, 100))
	assert.Equal(t, 0, VerticalOffset(style.Middle, 140, 100), "overflowing text clamps to zero offset")
}
