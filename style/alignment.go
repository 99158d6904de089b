// Package style holds the immutable TextBoxStyle record and its
// fluent With* builder, plus the small closed
// enums the layout engine dispatches on: horizontal/vertical alignment,
// height mode and overdraw policy.
package style

import "fmt"

// HorizontalAlignment selects how a line's measured content is placed
// within the box width.
type HorizontalAlignment int

const (
	// Left packs words to the left edge; leading and trailing whitespace
	// both render.
	Left HorizontalAlignment = iota
	// Right packs words to the right edge; leading/trailing whitespace
	// is dropped.
	Right
	// Center centers the line; leading/trailing whitespace is dropped.
	Center
	// Justified stretches inter-word whitespace to fill the line width,
	// except on a paragraph's last line, which renders like Left.
	Justified
)

func (h HorizontalAlignment) String() string {
	switch h {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Center:
		return "Center"
	case Justified:
		return "Justified"
	default:
		return "Unknown"
	}
}

// VerticalAlignment selects where the laid-out text block starts within
// the box height.
type VerticalAlignment int

const (
	// Top starts at the box's top edge.
	Top VerticalAlignment = iota
	// Middle centers the text block vertically.
	Middle
	// Bottom aligns the text block's bottom edge with the box's bottom edge.
	Bottom
	// Scrolling behaves like Top when the text fits, otherwise exposes
	// the tail of the text (scroll-to-bottom semantics).
	Scrolling
)

func (v VerticalAlignment) String() string {
	switch v {
	case Top:
		return "Top"
	case Middle:
		return "Middle"
	case Bottom:
		return "Bottom"
	case Scrolling:
		return "Scrolling"
	default:
		return "Unknown"
	}
}

// Overdraw names how a line straddling the bottom edge of an Exact or
// ShrinkToText box is clipped, as computed by height.ShouldDrawRow.
// TextBox.Draw does not apply it; such a line is clipped only by the
// display target.
type Overdraw int

const (
	// FullRowsOnly skips any line whose first pixel row is at or past
	// the bottom edge; no partial row is ever drawn.
	FullRowsOnly Overdraw = iota
	// Visible clips rows to the visible range, drawing partial rows.
	Visible
	// Hidden draws full rows but relies on the display target's own
	// clipping to hide pixels past the bottom edge.
	Hidden
)

func (o Overdraw) String() string {
	switch o {
	case FullRowsOnly:
		return "FullRowsOnly"
	case Visible:
		return "Visible"
	case Hidden:
		return "Hidden"
	default:
		return "Unknown"
	}
}

// HeightModeKind tags a HeightMode.
type HeightModeKind int

const (
	// ModeExact treats the box height as authoritative.
	ModeExact HeightModeKind = iota
	// ModeFitToText resizes the box to exactly the measured text height.
	ModeFitToText
	// ModeShrinkToText resizes the box down to the measured text height,
	// but never grows it past its original height.
	ModeShrinkToText
)

// HeightMode is a tagged union over the three height policies.
type HeightMode struct {
	Kind     HeightModeKind
	Overdraw Overdraw // meaningful for ModeExact and ModeShrinkToText
}

// Exact returns an Exact height mode with the given overdraw policy.
func Exact(overdraw Overdraw) HeightMode {
	return HeightMode{Kind: ModeExact, Overdraw: overdraw}
}

// FitToText returns the FitToText height mode.
func FitToText() HeightMode {
	return HeightMode{Kind: ModeFitToText}
}

// ShrinkToText returns a ShrinkToText height mode with the given overdraw
// policy (applied only when the measured text is still taller than the
// shrunk box would otherwise allow, i.e. the box never grows).
func ShrinkToText(overdraw Overdraw) HeightMode {
	return HeightMode{Kind: ModeShrinkToText, Overdraw: overdraw}
}

func (m HeightMode) String() string {
	switch m.Kind {
	case ModeExact:
		return fmt.Sprintf("Exact(%s)", m.Overdraw)
	case ModeFitToText:
		return "FitToText"
	case ModeShrinkToText:
		return fmt.Sprintf("ShrinkToText(%s)", m.Overdraw)
	default:
		return "Unknown"
	}
}

// TabSizeKind tags a TabSize.
type TabSizeKind int

const (
	// TabSizeChars measures the tab stop in character-advance-widths.
	TabSizeChars TabSizeKind = iota
	// TabSizePixels measures the tab stop as an explicit pixel width.
	TabSizePixels
)

// TabSize configures the tab stop width, either as a character count (to
// be multiplied by the font's advance width) or an explicit pixel value.
type TabSize struct {
	Kind  TabSizeKind
	Value int
}

// TabChars returns a TabSize measured in character count.
func TabChars(n int) TabSize { return TabSize{Kind: TabSizeChars, Value: n} }

// TabPixels returns a TabSize measured in pixels.
func TabPixels(n int) TabSize { return TabSize{Kind: TabSizePixels, Value: n} }

// ResolvePixels converts this TabSize to a pixel width given the pixel
// width of a single space/advance in the active font.
func (t TabSize) ResolvePixels(spaceWidth int) int {
	if t.Kind == TabSizePixels {
		return t.Value
	}
	return t.Value * spaceWidth
}
