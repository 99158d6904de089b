// Package driver implements the text box driver's outer loop: the
// paragraph-spacing- and carry-aware iteration over lines that sits
// above the per-line measure/render cycle.
package driver

import (
	"github.com/rs/zerolog"

	"github.com/glyphbox/textbox/internal/cursor"
	"github.com/glyphbox/textbox/internal/lineparser"
	"github.com/glyphbox/textbox/internal/token"
)

// nop is the disabled logger used whenever Run is called with a nil
// *zerolog.Logger, so callers that don't care about driver diagnostics
// never pay for building a log event.
var nop = zerolog.Nop()

// LineDrawer processes exactly one line's worth of tokens starting from
// p/carry's current state, advancing both and the cursor's horizontal
// position as it goes.
type LineDrawer interface {
	DrawLine(p *token.Parser, cur *cursor.Cursor, carry *lineparser.Carry) (lineparser.Result, error)
}

// Run executes the driver loop: `while (carry || !parser.empty()) { draw
// line; if carry != CarriageReturn { cursor.new_line() }; if the line
// just drawn ended on NewLine, add paragraph_spacing }`, so the spacing
// lands between a paragraph's last line and the next line.
// It returns as soon as drawer.DrawLine reports an error, or when both
// the parser and the carry slot are exhausted. logger may be nil, in
// which case diagnostics are silently dropped.
func Run(p *token.Parser, cur *cursor.Cursor, carry *lineparser.Carry, paragraphSpacing int, drawer LineDrawer, logger *zerolog.Logger) error {
	if logger == nil {
		logger = &nop
	}
	lineNo := 0

	for carry.HasValue() || !p.IsEmpty() {
		result, err := drawer.DrawLine(p, cur, carry)
		if err != nil {
			logger.Error().Int("line", lineNo).Err(err).Msg("driver: line draw failed")
			return err
		}
		logger.Debug().Int("line", lineNo).Int("y", cur.Pos.Y).Bool("endedWithNewLine", result.EndedWithNewLine).Msg("driver: line drawn")
		lineNo++

		if !carry.IsCarriageReturn() {
			cur.NewLine()
		}
		if result.EndedWithNewLine {
			cur.Pos.Y += paragraphSpacing
		}
	}
	return nil
}
