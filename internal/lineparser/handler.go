package lineparser

import "github.com/glyphbox/textbox/internal/token"

// Handler is the capability table the line element parser drives: one
// routine shared by the measure pass and the render pass, parameterized
// by Handler so they can never drift apart on where a line wraps. A
// measuring Handler accumulates widths without touching a display
// target; a rendering Handler calls through to a CharacterRenderer.
type Handler interface {
	// MeasureWidth returns the pixel width text would occupy if printed.
	MeasureWidth(text string) int
	// SpaceWidth returns the pixel width of a single space code point,
	// used for tab-stop math, NBSP rendering and cursor-move escapes.
	SpaceWidth() int

	// PrintedCharacters is invoked once per Word (or word-prefix, or
	// soft-hyphen glyph) committed to the line.
	PrintedCharacters(text string)
	// Space is invoked once per whitespace/tab render element. count is
	// the number of underlying space code points (0 for a tab, so
	// justification never stretches through one).
	Space(widthPixels, count int)
	// MoveCursor is invoked for a cursor-forward/backward escape.
	MoveCursor(dxPixels int)
	// Sgr is invoked for an in-band SGR escape.
	Sgr(s token.Sgr)
}
