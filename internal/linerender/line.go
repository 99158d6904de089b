package linerender

import (
	"github.com/glyphbox/textbox/internal/align"
	"github.com/glyphbox/textbox/internal/cursor"
	"github.com/glyphbox/textbox/internal/lineparser"
	"github.com/glyphbox/textbox/internal/space"
	"github.com/glyphbox/textbox/internal/token"
	"github.com/glyphbox/textbox/render"
	"github.com/glyphbox/textbox/style"
)

// Line runs one full measure-then-render cycle: it clones the
// parser to measure the line, asks the horizontal alignment policy how
// to place it, then replays the element parser against the real parser
// and cursor with a drawing Handler. If the cursor's current line falls
// entirely outside the display's vertical clip, the measurement pass is
// skipped and the line is parsed once with a non-drawing Handler so SGR
// state and the parser position stay correct for the lines that follow.
func Line(p *token.Parser, cur *cursor.Cursor, carry *lineparser.Carry, h style.HorizontalAlignment, opts lineparser.Options, spaceWidth int, cr render.CharacterRenderer, target render.DisplayTarget, initial InitialColors) (lineparser.Result, error) {
	if !cur.InDisplayArea() {
		rh := &renderHandler{cr: cr, cur: cur, skipDraw: true, initial: initial}
		result := lineparser.ParseLine(p, cur, space.NewUniform(spaceWidth), carry, opts, rh)
		return result, rh.err
	}

	measurement := MeasureLine(p, cur, carry, opts, spaceWidth, cr)
	placement := align.Horizontal(h, cur.LineWidth(), spaceWidth, measurement.Line)

	cur.Pos.X += placement.LeftOffset

	rh := &renderHandler{cr: cr, target: target, cur: cur, initial: initial}
	result := lineparser.ParseLine(p, cur, placement.Spaces, carry, opts, rh)
	return result, rh.err
}
