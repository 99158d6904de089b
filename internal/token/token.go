// Package token defines the tagged-union stream produced by Parser: the
// tokenizing front end of the layout pipeline. It never allocates; every
// slice a Token carries borrows from the caller's input string.
package token

import "fmt"

// Kind tags the variant held by a Token. Only the fields relevant to Kind
// are meaningful; this is a closed tagged union rather than an open
// interface hierarchy.
type Kind int

const (
	// KindWord is a maximal run of non-whitespace code points. NO-BREAK
	// SPACE (U+00A0) is a word character and never splits a Word.
	KindWord Kind = iota
	// KindWhitespace is N consecutive breaking space code points.
	KindWhitespace
	// KindBreak is an explicit break opportunity (soft hyphen or ZWSP).
	KindBreak
	// KindNewLine is a hard line break ('\n').
	KindNewLine
	// KindCarriageReturn resets the cursor column without a vertical move.
	KindCarriageReturn
	// KindTab expands to the next tab stop.
	KindTab
	// KindSgr is an in-band SGR (color/decoration) escape.
	KindSgr
	// KindCursorMove is an in-band non-SGR cursor escape (forward/backward).
	KindCursorMove
)

func (k Kind) String() string {
	switch k {
	case KindWord:
		return "Word"
	case KindWhitespace:
		return "Whitespace"
	case KindBreak:
		return "Break"
	case KindNewLine:
		return "NewLine"
	case KindCarriageReturn:
		return "CarriageReturn"
	case KindTab:
		return "Tab"
	case KindSgr:
		return "Sgr"
	case KindCursorMove:
		return "CursorMove"
	default:
		return "Unknown"
	}
}

// Sgr is the decoded payload of a KindSgr token. Reset is set for SGR 0
// (or an empty parameter list); the zero value changes nothing.
type Sgr struct {
	Reset           bool
	TextColor       ColorChange
	BackgroundColor ColorChange
	Underline       TriState
	Strikethrough   TriState
}

// TriState models an on/off/unchanged tri-state SGR attribute.
type TriState int

const (
	// Unchanged leaves the attribute as-is.
	Unchanged TriState = iota
	// On turns the attribute on.
	On
	// Off turns the attribute off.
	Off
)

// ColorChangeKind tags a ColorChange.
type ColorChangeKind int

const (
	// NoColorChange leaves the color unchanged.
	NoColorChange ColorChangeKind = iota
	// ColorReset resets the color to the renderer's default (inherit).
	ColorReset
	// ColorRGB sets an explicit RGB color.
	ColorRGB
)

// ColorChange carries a decoded 30-37/40-47/256-color/truecolor SGR color
// directive; the fixed 16-color table lookup happens in package ansi.
type ColorChange struct {
	Kind    ColorChangeKind
	R, G, B uint8
}

// Token is one element of the parser's output stream. Slice fields borrow
// from the input string and are only valid for its lifetime.
type Token struct {
	Kind Kind

	// Word, KindBreak's rendered form: the slice of input this token covers.
	Text string

	// Whitespace: number of breaking space code points in the run.
	Count int

	// Break: optional "if-broken-here" rendering (e.g. "-" for soft hyphen).
	BreakText    string
	HasBreakText bool

	// Sgr / CursorMove payloads.
	Sgr      Sgr
	CursorDx int // CursorMove: positive = forward, negative = backward
}

// Word constructs a KindWord token.
func Word(text string) Token { return Token{Kind: KindWord, Text: text} }

// Whitespace constructs a KindWhitespace token covering n space code points.
func Whitespace(n int) Token { return Token{Kind: KindWhitespace, Count: n} }

// Break constructs a KindBreak token. breakText/has describe the optional
// "if-broken-here" rendering.
func Break(breakText string, has bool) Token {
	return Token{Kind: KindBreak, BreakText: breakText, HasBreakText: has}
}

// NewLine constructs a KindNewLine token.
func NewLine() Token { return Token{Kind: KindNewLine} }

// CarriageReturn constructs a KindCarriageReturn token.
func CarriageReturn() Token { return Token{Kind: KindCarriageReturn} }

// Tab constructs a KindTab token.
func Tab() Token { return Token{Kind: KindTab} }

// SgrToken constructs a KindSgr token.
func SgrToken(s Sgr) Token { return Token{Kind: KindSgr, Sgr: s} }

// CursorMoveToken constructs a KindCursorMove token; dx is signed pixels-
// equivalent-in-spaces (positive forward, negative backward).
func CursorMoveToken(dx int) Token { return Token{Kind: KindCursorMove, CursorDx: dx} }

// WithWhitespaceCount returns a copy of a KindWhitespace token with a
// different count, used when a whitespace run is partially consumed and
// the remainder is carried to the next line.
func (t Token) WithWhitespaceCount(n int) Token {
	t.Count = n
	return t
}

func (t Token) String() string {
	switch t.Kind {
	case KindWord:
		return fmt.Sprintf("Word(%q)", t.Text)
	case KindWhitespace:
		return fmt.Sprintf("Whitespace(%d)", t.Count)
	case KindBreak:
		if t.HasBreakText {
			return fmt.Sprintf("Break(%q)", t.BreakText)
		}
		return "Break(none)"
	default:
		return t.Kind.String()
	}
}
