// Package textbox lays out and draws word-wrapped text into a
// pixel-addressed rectangular area. It never allocates beyond
// what the host font's renderer needs to measure a string, and performs
// no I/O: the caller supplies a CharacterRenderer (glyph rasterizer) and
// a DisplayTarget (pixel sink) and receives a single synchronous Draw
// call that blocks until the whole box has been laid out.
package textbox

import (
	"github.com/pkg/errors"

	"github.com/glyphbox/textbox/internal/align"
	"github.com/glyphbox/textbox/internal/cursor"
	"github.com/glyphbox/textbox/internal/driver"
	"github.com/glyphbox/textbox/internal/geometry"
	"github.com/glyphbox/textbox/internal/height"
	"github.com/glyphbox/textbox/internal/lineparser"
	"github.com/glyphbox/textbox/internal/linerender"
	"github.com/glyphbox/textbox/internal/token"
	"github.com/glyphbox/textbox/render"
	"github.com/glyphbox/textbox/style"
)

// TextBox pairs input text with the style it should be laid out under.
// It carries no mutable state of its own: every Draw call starts fresh.
type TextBox struct {
	text  string
	style style.TextBoxStyle
}

// New creates a TextBox over text, styled with st.
func New(text string, st style.TextBoxStyle) TextBox {
	return TextBox{text: text, style: st}
}

// Text returns the box's source text.
func (t TextBox) Text() string { return t.text }

// Style returns the box's style.
func (t TextBox) Style() style.TextBoxStyle { return t.style }

// WithText returns a copy of t over different text.
func (t TextBox) WithText(text string) TextBox {
	t.text = text
	return t
}

// WithStyle returns a copy of t under a different style.
func (t TextBox) WithStyle(st style.TextBoxStyle) TextBox {
	t.style = st
	return t
}

// Draw lays out and draws the box's text into target using cr to measure
// and render glyphs. It is a single blocking call: on return, either
// every visible line has been drawn, or an error from the display
// target has aborted the call — nothing is retried and no partial-line
// state is rolled back.
func (t TextBox) Draw(cr render.CharacterRenderer, target render.DisplayTarget) error {
	bounds := target.BoundingBox()
	lineHeight := cr.LineHeight()
	spaceWidth := cr.MeasureString(" ")
	tabWidth := t.style.TabSize().ResolvePixels(spaceWidth)
	opts := lineparser.Options{
		StartingSpaces: t.style.StartingSpaces(),
		EndingSpaces:   t.style.EndingSpaces(),
	}

	var textHeight int
	if t.needsPreMeasure() {
		textHeight = t.measureHeight(bounds.Width(), lineHeight, t.style.LineSpacing(), tabWidth, spaceWidth, opts, cr)
	}

	resolved := height.Resolve(t.style.HeightMode(), bounds, textHeight)
	clippedTarget := target
	if resolved != bounds {
		clippedTarget = target.Clipped(resolved)
	}

	vOffset := align.VerticalOffset(t.style.VerticalAlignment(), textHeight, resolved.Height())

	cur := cursor.New(resolved, lineHeight, t.style.LineSpacing(), tabWidth)
	cur.Pos.Y += vOffset

	p := token.New(t.text, t.style.AnsiEnabled())
	var carry lineparser.Carry

	initial := linerender.InitialColors{
		TextColor:          t.style.TextColor(),
		BackgroundColor:    t.style.BackgroundColor(),
		UnderlineColor:     t.style.UnderlineColor(),
		StrikethroughColor: t.style.StrikethroughColor(),
	}
	cr.SetTextColor(initial.TextColor)
	cr.SetBackgroundColor(initial.BackgroundColor)
	cr.SetUnderlineColor(render.NoColor())
	cr.SetStrikethroughColor(render.NoColor())

	drawer := linerender.RenderDrawer{
		Horizontal: t.style.HorizontalAlignment(),
		Opts:       opts,
		SpaceWidth: spaceWidth,
		CR:         cr,
		Target:     clippedTarget,
		Initial:    initial,
	}

	if err := driver.Run(&p, cur, &carry, t.style.ParagraphSpacing(), drawer, t.style.Logger()); err != nil {
		return errors.Wrap(err, "textbox: draw")
	}
	return nil
}

// needsPreMeasure reports whether Draw must run a measurement pass over
// the whole text before it can determine the box's drawing bounds:
// FitToText/ShrinkToText resize the box, and Bottom/Middle/Scrolling
// need the total text height to compute their vertical offset.
func (t TextBox) needsPreMeasure() bool {
	return t.style.HeightMode().Kind != style.ModeExact || t.style.VerticalAlignment() != style.Top
}

// MeasuredHeight returns the total pixel height the box's text would
// occupy at the given width, under the box's current style — the same
// pre-measurement Draw performs internally for FitToText/ShrinkToText and
// Bottom/Middle/Scrolling, exposed for callers that want to size their
// own display before drawing.
func (t TextBox) MeasuredHeight(cr render.CharacterRenderer, width int) int {
	lineHeight := cr.LineHeight()
	spaceWidth := cr.MeasureString(" ")
	tabWidth := t.style.TabSize().ResolvePixels(spaceWidth)
	opts := lineparser.Options{
		StartingSpaces: t.style.StartingSpaces(),
		EndingSpaces:   t.style.EndingSpaces(),
	}
	return t.measureHeight(width, lineHeight, t.style.LineSpacing(), tabWidth, spaceWidth, opts, cr)
}

// measureHeight runs the line element parser over the whole text with a
// measuring (non-drawing) Handler to determine total text height. Wrap
// decisions depend only on box width, never on height mode or vertical
// alignment, so this can run before either is resolved.
func (t TextBox) measureHeight(width, lineHeight, lineSpacing, tabWidth, spaceWidth int, opts lineparser.Options, cr render.CharacterRenderer) int {
	bounds := geometry.NewRectangle(geometry.NewPoint(0, 0), geometry.NewSize(width, 1<<30))
	cur := cursor.New(bounds, lineHeight, lineSpacing, tabWidth)
	p := token.New(t.text, t.style.AnsiEnabled())
	var carry lineparser.Carry
	drawer := linerender.HeightDrawer{Opts: opts, SpaceWidth: spaceWidth, CR: cr}

	lines := 0
	for carry.HasValue() || !p.IsEmpty() {
		result, _ := drawer.DrawLine(&p, cur, &carry)
		lines++
		if !carry.IsCarriageReturn() {
			cur.NewLine()
		}
		if result.EndedWithNewLine {
			cur.Pos.Y += t.style.ParagraphSpacing()
		}
	}
	if lines == 0 {
		return 0
	}
	return cur.Pos.Y - lineSpacing
}
