package textbox

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glyphbox/textbox/internal/testfont"
	"github.com/glyphbox/textbox/render"
	"github.com/glyphbox/textbox/style"
)

// A single word in a generous box: Justified falls back to left-pack
// on its one and only (last) line.
func TestJustified_SingleWordFallsBackToLeft(t *testing.T) {
	font := testfont.New()
	display := testfont.NewDisplay(55, 55)

	box := New("word", style.New().WithHorizontalAlignment(style.Justified))
	assert.NoError(t, box.Draw(font, display))

	assert.Equal(t, 'w', display.RuneAt(0, 0))
	assert.Equal(t, 'o', display.RuneAt(testfont.CharWidth, 0))
}

// Two words that together overflow the line wrap onto two lines.
func TestDraw_WrapsAtWordBoundary(t *testing.T) {
	font := testfont.New()
	display := testfont.NewDisplay(55, 55)

	box := New("word wrapping", style.New())
	assert.NoError(t, box.Draw(font, display))

	assert.Equal(t, 'w', display.RuneAt(0, 0))
	assert.Equal(t, 'w', display.RuneAt(0, testfont.CharHeight))
	assert.Equal(t, rune(0), display.RuneAt(5*testfont.CharWidth, 0), "line 1 does not spill into a 6th cell")
}

// A word longer than the whole line is split at a character boundary
// with no hyphen inserted.
func TestDraw_LongWordSplitsWithoutHyphen(t *testing.T) {
	font := testfont.New()
	display := testfont.NewDisplay(55, 55)

	box := New("word somereallylongword", style.New())
	assert.NoError(t, box.Draw(font, display))

	assert.Equal(t, 'w', display.RuneAt(0, 0))
	assert.Equal(t, 's', display.RuneAt(0, testfont.CharHeight))
	for x := 0; x < 55; x += testfont.CharWidth {
		assert.NotEqual(t, '-', display.RuneAt(x, testfont.CharHeight))
		assert.NotEqual(t, '-', display.RuneAt(x, 2*testfont.CharHeight))
	}
}

// A soft hyphen becomes a visible "-" only when the line actually
// breaks there; in a wider line it stays invisible.
func TestDraw_SoftHyphenVisibleOnlyWhenBrokenAt(t *testing.T) {
	font := testfont.New()

	narrow := testfont.NewDisplay(5*testfont.CharWidth, 24)
	box := New("sam­ple", style.New())
	assert.NoError(t, box.Draw(font, narrow))
	assert.Equal(t, 's', narrow.RuneAt(0, 0))
	assert.Equal(t, '-', narrow.RuneAt(3*testfont.CharWidth, 0))
	assert.Equal(t, 'p', narrow.RuneAt(0, testfont.CharHeight))

	wide := testfont.NewDisplay(6*testfont.CharWidth, 24)
	box2 := New("sam­ple", style.New())
	assert.NoError(t, box2.Draw(font, wide))
	assert.Equal(t, 's', wide.RuneAt(0, 0))
	assert.Equal(t, 'p', wide.RuneAt(3*testfont.CharWidth, 0))
	assert.Equal(t, rune(0), wide.RuneAt(0, testfont.CharHeight), "single line, no wrap")
}

// An internal NBSP renders as a space and is never a wrap point.
func TestDraw_NBSPGluedWordsNeverWrap(t *testing.T) {
	font := testfont.New()
	display := testfont.NewDisplay(200, 24)

	box := New("glued words", style.New())
	assert.NoError(t, box.Draw(font, display))

	assert.Equal(t, 'g', display.RuneAt(0, 0))
	assert.Equal(t, rune(0), display.RuneAt(0, testfont.CharHeight), "entire phrase stays on one line")
}

// An SGR color change takes effect before the word that follows it.
func TestDraw_AnsiColorChangeAppliesToFollowingWord(t *testing.T) {
	font := testfont.New()
	display := testfont.NewDisplay(200, 24)

	box := New("Lorem \x1b[92mIpsum", style.New().WithAnsiEnabled(true))
	assert.NoError(t, box.Draw(font, display))

	assert.Equal(t, render.ExplicitColor(render.Color{R: 22, G: 198, B: 12}), font.TextColor())
	assert.Equal(t, 'L', display.RuneAt(0, 0))
}

// A backward cursor move overdraws the preceding characters.
func TestDraw_CursorRewindOverstrikesPriorGlyph(t *testing.T) {
	font := testfont.New()
	display := testfont.NewDisplay(7*testfont.CharWidth, 8)

	box := New("foo\x1b[2Dsample", style.New().WithAnsiEnabled(true))
	assert.NoError(t, box.Draw(font, display))

	assert.Equal(t, 'f', display.RuneAt(0, 0))
	// the rewound cursor lands back on the 2nd char cell ("oo" -> "sample"
	// overstrikes starting there).
	assert.Equal(t, 's', display.RuneAt(1*testfont.CharWidth, 0))
}

func TestDraw_EmptyTextDrawsNothing(t *testing.T) {
	font := testfont.New()
	display := testfont.NewDisplay(55, 55)

	box := New("", style.New())
	assert.NoError(t, box.Draw(font, display))
	assert.Equal(t, rune(0), display.RuneAt(0, 0))
}

func TestDraw_FitToTextResizesToMeasuredHeight(t *testing.T) {
	font := testfont.New()
	display := testfont.NewDisplay(55, 200)

	box := New("word wrapping", style.New().WithHeightMode(style.FitToText()))
	assert.Equal(t, 2*testfont.CharHeight, box.MeasuredHeight(font, 55))
	assert.NoError(t, box.Draw(font, display))
}
