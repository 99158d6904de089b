package linerender

import (
	"github.com/glyphbox/textbox/internal/cursor"
	"github.com/glyphbox/textbox/internal/token"
	"github.com/glyphbox/textbox/render"
)

// InitialColors carries the TextBoxStyle's starting colors, restored
// whenever an in-band SGR reset or color-reset directive fires.
type InitialColors struct {
	TextColor          render.ColorOption
	BackgroundColor    render.ColorOption
	UnderlineColor     render.ColorOption
	StrikethroughColor render.ColorOption
}

// renderHandler drives the real CharacterRenderer/DisplayTarget for one
// line. When skipDraw is set it
// still forwards Sgr so mutable style state stays in sync with the input,
// but issues no draw calls.
type renderHandler struct {
	cr       render.CharacterRenderer
	target   render.DisplayTarget
	cur      *cursor.Cursor
	skipDraw bool
	initial  InitialColors
	err      error
}

func (h *renderHandler) MeasureWidth(text string) int { return h.cr.MeasureString(text) }
func (h *renderHandler) SpaceWidth() int              { return h.cr.MeasureString(" ") }

func (h *renderHandler) PrintedCharacters(text string) {
	if h.err != nil || h.skipDraw || text == "" {
		return
	}
	if _, err := h.cr.DrawString(text, h.cur.Pos, h.target); err != nil {
		h.err = err
	}
}

func (h *renderHandler) Space(widthPixels, count int) {
	if h.err != nil || h.skipDraw || widthPixels == 0 {
		return
	}
	if _, err := h.cr.DrawWhitespace(widthPixels, h.cur.Pos, h.target); err != nil {
		h.err = err
	}
}

// MoveCursor does not draw: the cursor has already been advanced by
// ParseLine by the time this is invoked. Cursor-forward/backward
// escapes move the pen without emitting pixels.
func (h *renderHandler) MoveCursor(int) {}

func (h *renderHandler) Sgr(s token.Sgr) {
	if s.Reset {
		h.cr.SetTextColor(h.initial.TextColor)
		h.cr.SetBackgroundColor(h.initial.BackgroundColor)
		h.cr.SetUnderlineColor(render.NoColor())
		h.cr.SetStrikethroughColor(render.NoColor())
		return
	}

	switch s.TextColor.Kind {
	case token.ColorReset:
		h.cr.SetTextColor(h.initial.TextColor)
	case token.ColorRGB:
		h.cr.SetTextColor(render.ExplicitColor(render.Color{R: s.TextColor.R, G: s.TextColor.G, B: s.TextColor.B}))
	}

	switch s.BackgroundColor.Kind {
	case token.ColorReset:
		h.cr.SetBackgroundColor(h.initial.BackgroundColor)
	case token.ColorRGB:
		h.cr.SetBackgroundColor(render.ExplicitColor(render.Color{R: s.BackgroundColor.R, G: s.BackgroundColor.G, B: s.BackgroundColor.B}))
	}

	switch s.Underline {
	case token.On:
		h.cr.SetUnderlineColor(h.initial.UnderlineColor)
	case token.Off:
		h.cr.SetUnderlineColor(render.NoColor())
	}

	switch s.Strikethrough {
	case token.On:
		h.cr.SetStrikethroughColor(h.initial.StrikethroughColor)
	case token.Off:
		h.cr.SetStrikethroughColor(render.NoColor())
	}
}
