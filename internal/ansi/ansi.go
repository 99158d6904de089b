// Package ansi recognizes CSI escape sequences inside the parser's byte
// stream: SGR (color/decoration) and the two cursor-move forms
// (forward/backward). It is the "escape recognizer" component of the
// layout pipeline.
//
// The fixed 16-color SGR palette matches the Windows 10 console values
// bit-for-bit, so compatibility tests against that table pass.
package ansi

import (
	"strconv"
	"strings"
)

// Kind tags the decoded escape.
type Kind int

const (
	// KindSgr is a Select Graphic Rendition sequence ("ESC [ ... m").
	KindSgr Kind = iota
	// KindCursorMove is a cursor forward/backward sequence ("ESC [ n C/D").
	KindCursorMove
)

// ColorChangeKind tags a ColorChange.
type ColorChangeKind int

const (
	// NoColorChange leaves the color unchanged.
	NoColorChange ColorChangeKind = iota
	// ColorReset resets the color to the renderer's default.
	ColorReset
	// ColorRGB sets an explicit RGB color.
	ColorRGB
)

// ColorChange is a decoded text/background color directive.
type ColorChange struct {
	Kind    ColorChangeKind
	R, G, B uint8
}

// TriState models an on/off/unchanged SGR attribute.
type TriState int

const (
	// Unchanged leaves the attribute as-is.
	Unchanged TriState = iota
	// On turns the attribute on.
	On
	// Off turns the attribute off.
	Off
)

// Sgr is the decoded payload of an SGR escape. Reset is set for code 0
// (or an empty parameter list); the zero value changes nothing.
type Sgr struct {
	Reset           bool
	TextColor       ColorChange
	BackgroundColor ColorChange
	Underline       TriState
	Strikethrough   TriState
}

// Token is a decoded escape sequence.
type Token struct {
	Kind     Kind
	Sgr      Sgr
	CursorDx int
}

// Palette16 is the fixed 16-color table for SGR codes 30-37/90-97
// (foreground) and 40-47/100-107 (background), bit-exact to the Windows 10
// console palette.
var Palette16 = [16][3]uint8{
	{12, 12, 12},    // 0 black
	{197, 15, 31},   // 1 red
	{19, 161, 14},   // 2 green
	{193, 156, 0},   // 3 yellow
	{0, 55, 218},    // 4 blue
	{136, 23, 152},  // 5 magenta
	{58, 150, 221},  // 6 cyan
	{204, 204, 204}, // 7 white
	{118, 118, 118}, // 8 bright black (gray)
	{231, 72, 86},   // 9 bright red
	{22, 198, 12},   // 10 bright green
	{249, 241, 165}, // 11 bright yellow
	{59, 120, 255},  // 12 bright blue
	{180, 0, 158},   // 13 bright magenta
	{97, 214, 214},  // 14 bright cyan
	{242, 242, 242}, // 15 bright white
}

// Parse attempts to decode a CSI sequence at the start of s, which must
// begin with ESC ('\x1b'). It returns the decoded token, the number of
// bytes consumed (including the ESC), and whether decoding succeeded.
// On failure the caller must treat the bytes as raw input; Parse never
// partially consumes on failure (n is meaningless when ok is false).
func Parse(s string) (Token, int, bool) {
	if len(s) < 2 || s[0] != 0x1b || s[1] != '[' {
		return Token{}, 0, false
	}

	// Scan for the final byte, which for our supported sequences is in
	// {'m', 'C', 'D'}. CSI parameter bytes are digits and ';'.
	i := 2
	for i < len(s) {
		c := s[i]
		if c == ';' || (c >= '0' && c <= '9') {
			i++
			continue
		}
		break
	}
	if i >= len(s) {
		return Token{}, 0, false
	}
	final := s[i]
	params := s[2:i]
	n := i + 1

	switch final {
	case 'm':
		sgr, ok := parseSgr(params)
		if !ok {
			return Token{}, 0, false
		}
		return Token{Kind: KindSgr, Sgr: sgr}, n, true
	case 'C':
		dx, ok := parseCount(params, 1)
		if !ok {
			return Token{}, 0, false
		}
		return Token{Kind: KindCursorMove, CursorDx: dx}, n, true
	case 'D':
		dx, ok := parseCount(params, 1)
		if !ok {
			return Token{}, 0, false
		}
		return Token{Kind: KindCursorMove, CursorDx: -dx}, n, true
	default:
		return Token{}, 0, false
	}
}

func parseCount(params string, def int) (int, bool) {
	if params == "" {
		return def, true
	}
	v, err := strconv.Atoi(params)
	if err != nil || v < 0 {
		return 0, false
	}
	if v == 0 {
		return def, true
	}
	return v, true
}

// parseSgr decodes the semicolon-separated parameter list of an SGR
// sequence. An empty parameter list means reset (code 0).
func parseSgr(params string) (Sgr, bool) {
	if params == "" {
		return Sgr{Reset: true}, true
	}
	parts := strings.Split(params, ";")
	codes := make([]int, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			codes = append(codes, 0)
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return Sgr{}, false
		}
		codes = append(codes, v)
	}

	var sgr Sgr
	for i := 0; i < len(codes); i++ {
		c := codes[i]
		switch {
		case c == 0:
			sgr.Reset = true
		case c >= 30 && c <= 37:
			rgb := Palette16[c-30]
			sgr.TextColor = ColorChange{Kind: ColorRGB, R: rgb[0], G: rgb[1], B: rgb[2]}
		case c >= 90 && c <= 97:
			rgb := Palette16[c-90+8]
			sgr.TextColor = ColorChange{Kind: ColorRGB, R: rgb[0], G: rgb[1], B: rgb[2]}
		case c >= 40 && c <= 47:
			rgb := Palette16[c-40]
			sgr.BackgroundColor = ColorChange{Kind: ColorRGB, R: rgb[0], G: rgb[1], B: rgb[2]}
		case c >= 100 && c <= 107:
			rgb := Palette16[c-100+8]
			sgr.BackgroundColor = ColorChange{Kind: ColorRGB, R: rgb[0], G: rgb[1], B: rgb[2]}
		case c == 38 || c == 48:
			n, rgb, ok := parseExtendedColor(codes, &i)
			if !ok {
				return Sgr{}, false
			}
			change := ColorChange{Kind: ColorRGB, R: rgb[0], G: rgb[1], B: rgb[2]}
			_ = n
			if c == 38 {
				sgr.TextColor = change
			} else {
				sgr.BackgroundColor = change
			}
		case c == 39:
			sgr.TextColor = ColorChange{Kind: ColorReset}
		case c == 49:
			sgr.BackgroundColor = ColorChange{Kind: ColorReset}
		case c == 4:
			sgr.Underline = On
		case c == 24:
			sgr.Underline = Off
		case c == 9:
			sgr.Strikethrough = On
		case c == 29:
			sgr.Strikethrough = Off
		default:
			// Unsupported attribute code: ignored, not an error.
		}
	}
	return sgr, true
}

// parseExtendedColor decodes "38;5;n" (256-color) or "38;2;r;g;b"
// (truecolor) starting at codes[*i] == 38 or 48. It advances *i past the
// consumed parameters and returns the resolved RGB.
func parseExtendedColor(codes []int, i *int) (int, [3]uint8, bool) {
	if *i+1 >= len(codes) {
		return 0, [3]uint8{}, false
	}
	mode := codes[*i+1]
	switch mode {
	case 5: // 256-color
		if *i+2 >= len(codes) {
			return 0, [3]uint8{}, false
		}
		n := codes[*i+2]
		*i += 2
		return n, color256(n), true
	case 2: // truecolor
		if *i+4 >= len(codes) {
			return 0, [3]uint8{}, false
		}
		r, g, b := codes[*i+2], codes[*i+3], codes[*i+4]
		*i += 4
		return 0, [3]uint8{uint8(r), uint8(g), uint8(b)}, true
	default:
		return 0, [3]uint8{}, false
	}
}

// color256 resolves an xterm 256-color index to RGB: 0-15 the fixed
// palette, 16-231 the 6x6x6 cube, 232-255 the grayscale ramp.
func color256(n int) [3]uint8 {
	if n < 16 {
		return Palette16[n]
	}
	if n < 232 {
		n -= 16
		steps := [6]uint8{0, 95, 135, 175, 215, 255}
		r := steps[(n/36)%6]
		g := steps[(n/6)%6]
		b := steps[n%6]
		return [3]uint8{r, g, b}
	}
	level := uint8(8 + (n-232)*10)
	return [3]uint8{level, level, level}
}
