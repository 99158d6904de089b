package style

import (
	"github.com/rs/zerolog"

	"github.com/glyphbox/textbox/render"
)

// TextBoxStyle is the immutable styling record a TextBox draws with.
// Construct with New() and chain With* calls: every With* returns a new
// value rather than mutating the receiver.
type TextBoxStyle struct {
	horizontalAlignment HorizontalAlignment
	verticalAlignment   VerticalAlignment
	heightMode          HeightMode
	lineSpacing         int
	tabSize             TabSize
	paragraphSpacing    int
	trailingSpaces      bool
	leadingSpaces       bool
	textColor           render.ColorOption
	backgroundColor     render.ColorOption
	underlineColor      render.ColorOption
	strikethroughColor  render.ColorOption
	ansiEnabled         bool
	logger              *zerolog.Logger
}

// New returns the default TextBoxStyle: left/top aligned, Exact height
// mode with FullRowsOnly overdraw, no line/paragraph spacing, an 4-char
// tab stop, and ANSI escape recognition disabled.
func New() TextBoxStyle {
	return TextBoxStyle{
		horizontalAlignment: Left,
		verticalAlignment:   Top,
		heightMode:          Exact(FullRowsOnly),
		tabSize:             TabChars(4),
		trailingSpaces:      true,
		leadingSpaces:       true,
		textColor:           render.NoColor(),
		backgroundColor:     render.NoColor(),
		underlineColor:      render.InheritFromTextColor(),
		strikethroughColor:  render.InheritFromTextColor(),
	}
}

func (s TextBoxStyle) HorizontalAlignment() HorizontalAlignment { return s.horizontalAlignment }
func (s TextBoxStyle) VerticalAlignment() VerticalAlignment     { return s.verticalAlignment }
func (s TextBoxStyle) HeightMode() HeightMode                   { return s.heightMode }
func (s TextBoxStyle) LineSpacing() int                         { return s.lineSpacing }
func (s TextBoxStyle) TabSize() TabSize                         { return s.tabSize }
func (s TextBoxStyle) ParagraphSpacing() int                    { return s.paragraphSpacing }
func (s TextBoxStyle) TrailingSpaces() bool                     { return s.trailingSpaces }
func (s TextBoxStyle) LeadingSpaces() bool                      { return s.leadingSpaces }
func (s TextBoxStyle) TextColor() render.ColorOption            { return s.textColor }
func (s TextBoxStyle) BackgroundColor() render.ColorOption      { return s.backgroundColor }
func (s TextBoxStyle) UnderlineColor() render.ColorOption       { return s.underlineColor }
func (s TextBoxStyle) StrikethroughColor() render.ColorOption   { return s.strikethroughColor }
func (s TextBoxStyle) AnsiEnabled() bool                        { return s.ansiEnabled }
func (s TextBoxStyle) Logger() *zerolog.Logger                  { return s.logger }

// WithHorizontalAlignment returns a copy with a new horizontal alignment.
func (s TextBoxStyle) WithHorizontalAlignment(h HorizontalAlignment) TextBoxStyle {
	s.horizontalAlignment = h
	return s
}

// WithVerticalAlignment returns a copy with a new vertical alignment.
func (s TextBoxStyle) WithVerticalAlignment(v VerticalAlignment) TextBoxStyle {
	s.verticalAlignment = v
	return s
}

// WithHeightMode returns a copy with a new height mode.
func (s TextBoxStyle) WithHeightMode(m HeightMode) TextBoxStyle {
	s.heightMode = m
	return s
}

// WithLineSpacing returns a copy with additional pixels of spacing
// inserted between lines.
func (s TextBoxStyle) WithLineSpacing(px int) TextBoxStyle {
	s.lineSpacing = px
	return s
}

// WithTabSize returns a copy with a new tab stop size.
func (s TextBoxStyle) WithTabSize(t TabSize) TextBoxStyle {
	s.tabSize = t
	return s
}

// WithParagraphSpacing returns a copy with additional pixels of vertical
// advance inserted after a NewLine-terminated line.
func (s TextBoxStyle) WithParagraphSpacing(px int) TextBoxStyle {
	s.paragraphSpacing = px
	return s
}

// WithTrailingSpaces controls whether whitespace past what would trigger
// a wrap is rendered (only meaningful for Left; other alignments compute
// this themselves).
func (s TextBoxStyle) WithTrailingSpaces(b bool) TextBoxStyle {
	s.trailingSpaces = b
	return s
}

// WithLeadingSpaces controls whether whitespace at the start of a line is
// rendered.
func (s TextBoxStyle) WithLeadingSpaces(b bool) TextBoxStyle {
	s.leadingSpaces = b
	return s
}

// WithTextColor returns a copy with a new initial text color.
func (s TextBoxStyle) WithTextColor(c render.ColorOption) TextBoxStyle {
	s.textColor = c
	return s
}

// WithBackgroundColor returns a copy with a new initial background color.
func (s TextBoxStyle) WithBackgroundColor(c render.ColorOption) TextBoxStyle {
	s.backgroundColor = c
	return s
}

// WithUnderlineColor returns a copy with a new initial underline color.
func (s TextBoxStyle) WithUnderlineColor(c render.ColorOption) TextBoxStyle {
	s.underlineColor = c
	return s
}

// WithStrikethroughColor returns a copy with a new initial strikethrough color.
func (s TextBoxStyle) WithStrikethroughColor(c render.ColorOption) TextBoxStyle {
	s.strikethroughColor = c
	return s
}

// WithAnsiEnabled controls whether in-band ANSI SGR/cursor escapes are
// recognized in the input text.
func (s TextBoxStyle) WithAnsiEnabled(b bool) TextBoxStyle {
	s.ansiEnabled = b
	return s
}

// WithLogger attaches a debug logger to the style's driver run. A nil
// logger (the default) disables layout diagnostics entirely.
func (s TextBoxStyle) WithLogger(l *zerolog.Logger) TextBoxStyle {
	s.logger = l
	return s
}

// startingSpaces and endingSpaces implement the per-alignment
// whitespace-rendering booleans: Left honors the style's leading/
// trailing flags, Justified always renders trailing whitespace so the
// stretch math stays correct, and every other alignment suppresses both.
func (h HorizontalAlignment) startingSpaces(leadingSpaces bool) bool {
	if h == Left {
		return leadingSpaces
	}
	return false
}

func (h HorizontalAlignment) endingSpaces(trailingSpaces bool) bool {
	switch h {
	case Left:
		return trailingSpaces
	case Justified:
		return true
	default:
		return false
	}
}

// StartingSpaces reports whether a line under this style should render
// whitespace that appears before its first word.
func (s TextBoxStyle) StartingSpaces() bool {
	return s.horizontalAlignment.startingSpaces(s.leadingSpaces)
}

// EndingSpaces reports whether a line under this style should render
// whitespace past what would otherwise trigger a wrap.
func (s TextBoxStyle) EndingSpaces() bool {
	return s.horizontalAlignment.endingSpaces(s.trailingSpaces)
}
