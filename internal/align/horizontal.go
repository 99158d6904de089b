// Package align implements the horizontal and vertical alignment
// policies.
package align

import (
	"github.com/glyphbox/textbox/internal/space"
	"github.com/glyphbox/textbox/style"
)

// LineMeasurement is what a measure pass reports about one line: its
// measured pixel width, the width of any trailing whitespace, the
// number of individual inter-word space code points, and whether it
// is a paragraph's last line (next token is NewLine, end-of-input, or a
// carried empty token) — Justified falls back to Uniform on the last
// line and whenever there is no inter-word whitespace.
type LineMeasurement struct {
	Width              int
	TrailingSpaceWidth int
	SpaceCount         int
	LastLine           bool
}

// Placement is what a horizontal policy decides for one line: the pixel
// offset from the box's left edge, and the space configuration to render
// whitespace with.
type Placement struct {
	LeftOffset int
	Spaces     space.Config
}

// Horizontal dispatches on style.HorizontalAlignment to compute a line's
// placement from its measurement. It is a small closed set of policies,
// not an open interface hierarchy.
func Horizontal(h style.HorizontalAlignment, lineWidth, spaceWidth int, m LineMeasurement) Placement {
	switch h {
	case style.Right:
		return Placement{
			LeftOffset: lineWidth - m.Width,
			Spaces:     space.NewUniform(spaceWidth),
		}
	case style.Center:
		return Placement{
			LeftOffset: (lineWidth - m.Width) / 2,
			Spaces:     space.NewUniform(spaceWidth),
		}
	case style.Justified:
		if m.LastLine || m.SpaceCount == 0 {
			return Placement{LeftOffset: 0, Spaces: space.NewUniform(spaceWidth)}
		}
		slack := lineWidth - (m.Width - m.TrailingSpaceWidth)
		return Placement{LeftOffset: 0, Spaces: space.NewJustified(slack, m.SpaceCount)}
	default: // style.Left
		return Placement{LeftOffset: 0, Spaces: space.NewUniform(spaceWidth)}
	}
}
