package linerender

import (
	"github.com/glyphbox/textbox/internal/cursor"
	"github.com/glyphbox/textbox/internal/lineparser"
	"github.com/glyphbox/textbox/internal/space"
	"github.com/glyphbox/textbox/internal/token"
	"github.com/glyphbox/textbox/render"
	"github.com/glyphbox/textbox/style"
)

// RenderDrawer adapts Line to driver.LineDrawer for an actual draw call.
type RenderDrawer struct {
	Horizontal style.HorizontalAlignment
	Opts       lineparser.Options
	SpaceWidth int
	CR         render.CharacterRenderer
	Target     render.DisplayTarget
	Initial    InitialColors
}

// DrawLine implements driver.LineDrawer.
func (d RenderDrawer) DrawLine(p *token.Parser, cur *cursor.Cursor, carry *lineparser.Carry) (lineparser.Result, error) {
	return Line(p, cur, carry, d.Horizontal, d.Opts, d.SpaceWidth, d.CR, d.Target, d.Initial)
}

// HeightDrawer adapts a bare measuring pass to driver.LineDrawer, used to
// pre-measure a text block's total height (for Bottom/Middle vertical
// alignment and FitToText/ShrinkToText height modes) without a display
// target. Wrap decisions only depend on box width, never on height or
// vertical alignment, so running this over the configured width alone is
// sufficient.
type HeightDrawer struct {
	Opts       lineparser.Options
	SpaceWidth int
	CR         render.CharacterRenderer
}

// DrawLine implements driver.LineDrawer.
func (d HeightDrawer) DrawLine(p *token.Parser, cur *cursor.Cursor, carry *lineparser.Carry) (lineparser.Result, error) {
	mh := &measureHandler{cr: d.CR}
	result := lineparser.ParseLine(p, cur, space.NewUniform(d.SpaceWidth), carry, d.Opts, mh)
	return result, nil
}
