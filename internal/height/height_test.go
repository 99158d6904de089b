package height

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glyphbox/textbox/internal/geometry"
	"github.com/glyphbox/textbox/style"
)

func box(h int) geometry.Rectangle {
	return geometry.NewRectangle(geometry.NewPoint(0, 0), geometry.NewSize(50, h))
}

func TestResolve_Exact(t *testing.T) {
	b := box(30)
	got := Resolve(style.Exact(style.FullRowsOnly), b, 100)
	assert.Equal(t, b, got)
}

func TestResolve_FitToText(t *testing.T) {
	b := box(30)
	got := Resolve(style.FitToText(), b, 100)
	assert.Equal(t, 100, got.Height())
	assert.Equal(t, 50, got.Width())
}

func TestResolve_ShrinkToTextNeverGrows(t *testing.T) {
	b := box(30)
	assert.Equal(t, 30, Resolve(style.ShrinkToText(style.FullRowsOnly), b, 100).Height())
	assert.Equal(t, 10, Resolve(style.ShrinkToText(style.FullRowsOnly), b, 10).Height())
}

func TestShouldDrawRow_FullRowsOnly(t *testing.T) {
	draw, _, _ := ShouldDrawRow(style.FullRowsOnly, 20, 16, 24)
	assert.False(t, draw, "a row straddling the bottom edge is skipped entirely")

	draw, _, _ = ShouldDrawRow(style.FullRowsOnly, 24, 16, 24)
	assert.True(t, draw)
}

func TestShouldDrawRow_Visible(t *testing.T) {
	draw, top, bottom := ShouldDrawRow(style.Visible, 20, 16, 24)
	assert.True(t, draw)
	assert.Equal(t, 16, top)
	assert.Equal(t, 20, bottom, "row is clipped to the visible range")
}

func TestShouldDrawRow_Hidden(t *testing.T) {
	draw, _, _ := ShouldDrawRow(style.Hidden, 20, 16, 24)
	assert.True(t, draw, "Hidden always draws full rows, relying on the target's own clip")

	draw, _, _ = ShouldDrawRow(style.Hidden, 20, 24, 32)
	assert.False(t, draw)
}
