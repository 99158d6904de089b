package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(p Parser) []Token {
	var out []Token
	for {
		tok, ok := p.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

func TestParser_WordsAndWhitespace(t *testing.T) {
	p := New("word wrapping", false)
	toks := collect(p)

	assert.Equal(t, []Token{
		Word("word"),
		Whitespace(1),
		Word("wrapping"),
	}, toks)
}

func TestParser_NewLineAndCarriageReturn(t *testing.T) {
	p := New("a\nb\rc", false)
	toks := collect(p)

	assert.Equal(t, []Token{
		Word("a"),
		NewLine(),
		Word("b"),
		CarriageReturn(),
		Word("c"),
	}, toks)
}

func TestParser_Tab(t *testing.T) {
	p := New("a\tb", false)
	toks := collect(p)
	assert.Equal(t, []Token{Word("a"), Tab(), Word("b")}, toks)
}

func TestParser_SoftHyphenAndZeroWidthSpace(t *testing.T) {
	p := New("sam­ple", false)
	toks := collect(p)
	assert.Equal(t, []Token{Word("sam"), Break("-", true), Word("ple")}, toks)

	p2 := New("foo​bar", false)
	toks2 := collect(p2)
	assert.Equal(t, []Token{Word("foo"), Break("", false), Word("bar")}, toks2)
}

func TestParser_NBSPIsAWordCharacter(t *testing.T) {
	p := New("glued words", false)
	toks := collect(p)
	assert.Equal(t, []Token{Word("glued words")}, toks)
}

func TestParser_MultipleSpacesCollapseToOneWhitespaceToken(t *testing.T) {
	p := New("a   b", false)
	toks := collect(p)
	assert.Equal(t, []Token{Word("a"), Whitespace(3), Word("b")}, toks)
}

func TestParser_AnsiSgrDisabledIsLiteralWord(t *testing.T) {
	p := New("\x1b[92m", false)
	toks := collect(p)
	if assert.Len(t, toks, 1) {
		assert.Equal(t, KindWord, toks[0].Kind)
	}
}

func TestParser_AnsiSgrEnabled(t *testing.T) {
	p := New("Lorem \x1b[92mIpsum", true)
	toks := collect(p)

	assert.Equal(t, []Token{
		Word("Lorem"),
		Whitespace(1),
		SgrToken(Sgr{TextColor: ColorChange{Kind: ColorRGB, R: 22, G: 198, B: 12}}),
		Word("Ipsum"),
	}, toks)
}

func TestParser_AnsiCursorMove(t *testing.T) {
	p := New("foo\x1b[2Dbar", true)
	toks := collect(p)

	assert.Equal(t, []Token{
		Word("foo"),
		CursorMoveToken(-2),
		Word("bar"),
	}, toks)
}

func TestParser_MalformedEscapeConsumedAsWord(t *testing.T) {
	p := New("a\x1b[zb", true)
	toks := collect(p)
	// malformed escape is swallowed as part of a word run, never panics
	// or produces invalid output.
	assert.NotEmpty(t, toks)
}

func TestToken_WithWhitespaceCount(t *testing.T) {
	w := Whitespace(5)
	got := w.WithWhitespaceCount(2)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, 5, w.Count, "original token must not be mutated")
}
