package token

import (
	"unicode"
	"unicode/utf8"

	"github.com/glyphbox/textbox/internal/ansi"
)

const (
	runeNBSP = ' ' // non-breaking space: word character
	runeSHY  = '­' // soft hyphen: break opportunity, renders as "-"
	runeZWSP = '​' // zero-width space: break opportunity, renders as ""
	runeESC  = ''
)

// Parser is a stateless, lazy tokenizer over a borrowed input string. It
// carries only a byte offset, so Clone (used for the measure/render split
// and for lookahead) is a plain value copy — no heap allocation.
type Parser struct {
	input string
	pos   int
	ansi  bool
}

// New creates a Parser over input. When ansiEnabled is true, ESC [ ... CSI
// sequences are recognized and lifted into Sgr/CursorMove tokens; otherwise
// ESC bytes are ordinary word characters and end up inside Word runs.
func New(input string, ansiEnabled bool) Parser {
	return Parser{input: input, ansi: ansiEnabled}
}

// Clone returns an independent copy of the parser's position. Because
// Parser holds no pointers, this is just a value copy.
func (p Parser) Clone() Parser { return p }

// IsEmpty reports whether the parser has no more input.
func (p Parser) IsEmpty() bool { return p.pos >= len(p.input) }

// Pos returns the current byte offset into the input, for tests asserting
// measure/render agreement.
func (p Parser) Pos() int { return p.pos }

// Next returns the next token and advances the parser. ok is false only
// at end of input.
func (p *Parser) Next() (Token, bool) {
	if p.IsEmpty() {
		return Token{}, false
	}

	r, size := utf8.DecodeRuneInString(p.input[p.pos:])

	switch {
	case r == '\n':
		p.pos += size
		return NewLine(), true
	case r == '\r':
		p.pos += size
		return CarriageReturn(), true
	case r == '\t':
		p.pos += size
		return Tab(), true
	case r == runeZWSP:
		p.pos += size
		return Break("", false), true
	case r == runeSHY:
		p.pos += size
		return Break("-", true), true
	case p.ansi && r == runeESC:
		if tok, n, ok := ansi.Parse(p.input[p.pos:]); ok {
			p.pos += n
			return fromAnsi(tok), true
		}
		// Malformed escape: swallow raw bytes up to and including a
		// terminal 'm', or else up to the next word boundary, as part of
		// a word run. Never produce invalid UTF-8.
		return p.consumeMalformedEscape(), true
	case isSpace(r):
		return p.consumeWhitespace(), true
	default:
		return p.consumeWord(), true
	}
}

// isSpace reports whether r is a breaking whitespace code point under this
// engine's rules: any Unicode whitespace except NBSP, which is a word
// character, and '\n', '\r' and '\t', which have tokens of their own.
func isSpace(r rune) bool {
	if r == runeNBSP || r == '\n' || r == '\r' || r == '\t' {
		return false
	}
	return unicode.IsSpace(r)
}

// isWordBoundary reports whether r terminates a Word run.
func isWordBoundary(r rune, ansiEnabled bool) bool {
	if r == '\n' || r == '\r' || r == '\t' || r == runeZWSP || r == runeSHY {
		return true
	}
	if ansiEnabled && r == runeESC {
		return true
	}
	return isSpace(r)
}

func (p *Parser) consumeWhitespace() Token {
	start := p.pos
	n := 0
	for !p.IsEmpty() {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if r == runeZWSP || !isSpace(r) {
			break
		}
		p.pos += size
		n++
	}
	_ = start
	return Whitespace(n)
}

func (p *Parser) consumeWord() Token {
	start := p.pos
	for !p.IsEmpty() {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if isWordBoundary(r, p.ansi) && r != runeNBSP {
			break
		}
		p.pos += size
	}
	return Word(p.input[start:p.pos])
}

// consumeMalformedEscape is reached when ansi is enabled but the bytes
// following ESC do not form a recognized CSI sequence. They are ignored
// as raw bytes: printable bytes become part of a word, the sequence is
// consumed up through a terminal 'm' if one follows, and a word boundary
// (whitespace, newline, another ESC, ...) is left for the next token.
func (p *Parser) consumeMalformedEscape() Token {
	start := p.pos
	// consume the ESC itself
	_, size := utf8.DecodeRuneInString(p.input[p.pos:])
	p.pos += size
	for !p.IsEmpty() {
		r, rsize := utf8.DecodeRuneInString(p.input[p.pos:])
		if isWordBoundary(r, p.ansi) {
			break
		}
		p.pos += rsize
		if r == 'm' {
			break
		}
	}
	return Word(p.input[start:p.pos])
}

func fromAnsi(t ansi.Token) Token {
	switch t.Kind {
	case ansi.KindSgr:
		return SgrToken(Sgr{
			Reset:           t.Sgr.Reset,
			TextColor:       colorChangeFromAnsi(t.Sgr.TextColor),
			BackgroundColor: colorChangeFromAnsi(t.Sgr.BackgroundColor),
			Underline:       triStateFromAnsi(t.Sgr.Underline),
			Strikethrough:   triStateFromAnsi(t.Sgr.Strikethrough),
		})
	case ansi.KindCursorMove:
		return CursorMoveToken(t.CursorDx)
	default:
		return Token{}
	}
}

func colorChangeFromAnsi(c ansi.ColorChange) ColorChange {
	kind := NoColorChange
	switch c.Kind {
	case ansi.ColorReset:
		kind = ColorReset
	case ansi.ColorRGB:
		kind = ColorRGB
	}
	return ColorChange{Kind: kind, R: c.R, G: c.G, B: c.B}
}

func triStateFromAnsi(t ansi.TriState) TriState {
	switch t {
	case ansi.On:
		return On
	case ansi.Off:
		return Off
	default:
		return Unchanged
	}
}
