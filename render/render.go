// Package render declares the two external collaborators the layout engine
// drives but does not implement: the character renderer (glyph rasterizer)
// and the display target (pixel sink). Concrete rasterizers and display
// drivers live outside this module's scope.
package render

import "github.com/glyphbox/textbox/internal/geometry"

// Color is an explicit RGB pixel color.
type Color struct {
	R, G, B uint8
}

// ColorOptionKind tags a ColorOption.
type ColorOptionKind int

const (
	// ColorNone means the attribute is not drawn (fully transparent/off).
	ColorNone ColorOptionKind = iota
	// ColorExplicit carries an explicit Color.
	ColorExplicit
	// ColorInheritFromText means the attribute should track whatever the
	// text color is currently set to (underline/strikethrough color
	// inheriting from the text color).
	ColorInheritFromText
)

// ColorOption is the tri-state "none | explicit | inherit-from-text-color"
// value the character renderer's styling setters accept.
type ColorOption struct {
	Kind  ColorOptionKind
	Value Color
}

// NoColor is the "not drawn" ColorOption.
func NoColor() ColorOption { return ColorOption{Kind: ColorNone} }

// ExplicitColor wraps an explicit Color.
func ExplicitColor(c Color) ColorOption { return ColorOption{Kind: ColorExplicit, Value: c} }

// InheritFromTextColor is the "track the text color" ColorOption.
func InheritFromTextColor() ColorOption { return ColorOption{Kind: ColorInheritFromText} }

// DisplayTarget is a rectangular pixel sink. Clipped must return an
// adapter that transparently drops pixels outside sub, without mutating
// the receiver.
type DisplayTarget interface {
	BoundingBox() geometry.Rectangle
	Clipped(sub geometry.Rectangle) DisplayTarget
}

// CharacterRenderer measures and draws strings of a single monospace (or
// monospace-equivalent) font, and tracks the mutable style SGR escapes are
// allowed to change.
type CharacterRenderer interface {
	// DrawString draws text starting at pos into target and returns the
	// pen position immediately after the drawn text.
	DrawString(text string, pos geometry.Point, target DisplayTarget) (geometry.Point, error)

	// DrawWhitespace draws width pixels of blank/background space
	// starting at pos and returns the pen position after it.
	DrawWhitespace(width int, pos geometry.Point, target DisplayTarget) (geometry.Point, error)

	// MeasureString returns the width in pixels text would occupy if
	// drawn, without drawing it.
	MeasureString(text string) int

	// LineHeight returns the renderer's fixed line height in pixels.
	LineHeight() int

	SetTextColor(ColorOption)
	SetBackgroundColor(ColorOption)
	SetUnderlineColor(ColorOption)
	SetStrikethroughColor(ColorOption)
}
