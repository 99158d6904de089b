package align

import (
	"github.com/glyphbox/textbox/style"
)

// VerticalOffset computes the pixel offset to apply to the box's top edge
// before the first line is drawn. textHeight is the total
// pixel height of the measured content (line heights + spacing);
// boxHeight is the available drawing area height. Scrolling returns 0
// (like Top) when the text fits; otherwise it returns the negative offset
// that aligns the text's bottom edge with the box's, so the tail of the
// text is the part left visible.
func VerticalOffset(v style.VerticalAlignment, textHeight, boxHeight int) int {
	switch v {
	case style.Middle:
		if d := boxHeight - textHeight; d > 0 {
			return d / 2
		}
		return 0
	case style.Scrolling:
		if textHeight <= boxHeight {
			return 0
		}
		return boxHeight - textHeight
	case style.Bottom:
		if d := boxHeight - textHeight; d > 0 {
			return d
		}
		return 0
	default: // style.Top
		return 0
	}
}
