// Package geometry provides the pixel-space value objects shared by the
// layout engine: points and axis-aligned rectangles.
package geometry

import "fmt"

// Point is an immutable 2D pixel coordinate.
type Point struct {
	X int
	Y int
}

// NewPoint creates a Point at (x, y).
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns a new Point offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Equals reports whether two points denote the same coordinate.
func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is an immutable width/height pair in pixels.
type Size struct {
	Width  int
	Height int
}

// NewSize creates a Size. Negative components are clamped to 0.
func NewSize(w, h int) Size {
	return Size{Width: max(0, w), Height: max(0, h)}
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Rectangle is an immutable axis-aligned pixel rectangle, top-left origin
// plus size. It is the bounding box every layout operation measures against.
type Rectangle struct {
	Top  Point
	Size Size
}

// NewRectangle creates a Rectangle with the given top-left corner and size.
func NewRectangle(top Point, size Size) Rectangle {
	return Rectangle{Top: top, Size: size}
}

// Left returns the x coordinate of the left edge.
func (r Rectangle) Left() int { return r.Top.X }

// Right returns the x coordinate of the first column past the right edge
// (i.e. the rectangle spans columns [Left, Right)).
func (r Rectangle) Right() int { return r.Top.X + r.Size.Width }

// TopEdge returns the y coordinate of the top edge.
func (r Rectangle) TopEdge() int { return r.Top.Y }

// Bottom returns the y coordinate of the first row past the bottom edge.
func (r Rectangle) Bottom() int { return r.Top.Y + r.Size.Height }

// Width returns the rectangle's width in pixels.
func (r Rectangle) Width() int { return r.Size.Width }

// Height returns the rectangle's height in pixels.
func (r Rectangle) Height() int { return r.Size.Height }

// Contains reports whether p lies within the rectangle (right/bottom exclusive).
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.TopEdge() && p.Y < r.Bottom()
}

// WithSize returns a new Rectangle with the same top-left corner and a
// different size.
func (r Rectangle) WithSize(size Size) Rectangle {
	return Rectangle{Top: r.Top, Size: size}
}

// WithHeight returns a new Rectangle with the same top-left corner and
// width, and a different height.
func (r Rectangle) WithHeight(h int) Rectangle {
	return r.WithSize(NewSize(r.Size.Width, h))
}

// Offset returns a new Rectangle translated by (dx, dy); size is unchanged.
func (r Rectangle) Offset(dx, dy int) Rectangle {
	return Rectangle{Top: r.Top.Add(dx, dy), Size: r.Size}
}

// Clipped returns the intersection of r and other. The result may have
// zero width or height if the rectangles do not overlap.
func (r Rectangle) Clipped(other Rectangle) Rectangle {
	left := max(r.Left(), other.Left())
	top := max(r.TopEdge(), other.TopEdge())
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if right < left {
		right = left
	}
	if bottom < top {
		bottom = top
	}
	return NewRectangle(NewPoint(left, top), NewSize(right-left, bottom-top))
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%s, %s)", r.Top, r.Size)
}
