// Package linerender implements the measure/render split: one line
// element parser routine, parameterized by a Handler, run twice — once
// measuring, once drawing — so the two passes can never disagree about
// where a line wraps.
package linerender

import (
	"github.com/glyphbox/textbox/internal/align"
	"github.com/glyphbox/textbox/internal/cursor"
	"github.com/glyphbox/textbox/internal/lineparser"
	"github.com/glyphbox/textbox/internal/space"
	"github.com/glyphbox/textbox/internal/token"
	"github.com/glyphbox/textbox/render"
)

// measureHandler accumulates a LineMeasurement without touching a
// display target.
type measureHandler struct {
	cr                 render.CharacterRenderer
	width              int
	trailingSpaceWidth int
	spaceCount         int
}

func (h *measureHandler) MeasureWidth(text string) int { return h.cr.MeasureString(text) }
func (h *measureHandler) SpaceWidth() int              { return h.cr.MeasureString(" ") }

func (h *measureHandler) PrintedCharacters(text string) {
	h.width += h.cr.MeasureString(text)
	h.trailingSpaceWidth = 0
}

func (h *measureHandler) Space(widthPixels, count int) {
	h.width += widthPixels
	h.trailingSpaceWidth += widthPixels
	h.spaceCount += count
}

func (h *measureHandler) MoveCursor(dxPixels int) {
	h.width += dxPixels
	h.trailingSpaceWidth = 0
}

func (h *measureHandler) Sgr(token.Sgr) {}

// Measurement bundles a measure pass's result: the LineMeasurement the
// alignment policies consume, plus the line parser's Result for the
// measured line (the render pass always re-runs against the caller's
// real state).
type Measurement struct {
	Line   align.LineMeasurement
	Result lineparser.Result
}

// MeasureLine clones p, cur and carry, runs the line element parser with
// a measuring Handler, and reports the resulting LineMeasurement — it
// never mutates the caller's real state).
func MeasureLine(p *token.Parser, cur *cursor.Cursor, carry *lineparser.Carry, opts lineparser.Options, spaceWidth int, cr render.CharacterRenderer) Measurement {
	pClone := p.Clone()
	curClone := *cur
	carryClone := *carry

	mh := &measureHandler{cr: cr}
	result := lineparser.ParseLine(&pClone, &curClone, space.NewUniform(spaceWidth), &carryClone, opts, mh)

	_, stillCarried := carryClone.Peek()
	lastLine := result.EndedWithNewLine || (!stillCarried && pClone.IsEmpty())

	return Measurement{
		Line: align.LineMeasurement{
			Width:              mh.width,
			TrailingSpaceWidth: mh.trailingSpaceWidth,
			SpaceCount:         mh.spaceCount,
			LastLine:           lastLine,
		},
		Result: result,
	}
}
