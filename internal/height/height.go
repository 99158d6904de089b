// Package height applies the three HeightMode policies to a measured
// text block.
package height

import (
	"github.com/glyphbox/textbox/internal/geometry"
	"github.com/glyphbox/textbox/style"
)

// Resolve computes the rectangle a TextBox should actually draw into,
// given its originally configured bounds, the height mode in effect, and
// the pixel height of the measured content (sum of line heights plus
// line/paragraph spacing).
//
// Exact leaves bounds untouched; overdraw is not applied here.
// ShouldDrawRow computes the per-line overdraw decision, but TextBox.Draw
// does not call it: a line straddling the bottom edge is clipped only by
// the display target, whatever the Overdraw policy. FitToText always resizes to
// exactly textHeight. ShrinkToText resizes down to textHeight but never
// grows past the original bounds height.
func Resolve(mode style.HeightMode, bounds geometry.Rectangle, textHeight int) geometry.Rectangle {
	switch mode.Kind {
	case style.ModeFitToText:
		return bounds.WithHeight(textHeight)
	case style.ModeShrinkToText:
		if textHeight < bounds.Height() {
			return bounds.WithHeight(textHeight)
		}
		return bounds
	default: // style.ModeExact
		return bounds
	}
}

// ShouldDrawRow reports whether the pixel row range [top, bottom) of a
// line should be drawn at all under the given overdraw policy, and
// returns the clipped sub-range actually visible (only different from
// the input under Visible).
func ShouldDrawRow(overdraw style.Overdraw, boxBottom, top, bottom int) (draw bool, clippedTop, clippedBottom int) {
	switch overdraw {
	case style.Visible:
		if top >= boxBottom {
			return false, top, top
		}
		if bottom > boxBottom {
			bottom = boxBottom
		}
		return true, top, bottom
	case style.Hidden:
		return top < boxBottom, top, bottom
	default: // style.FullRowsOnly
		return bottom <= boxBottom, top, bottom
	}
}
