// Package space implements the SpaceConfig capability: the policy object
// that decides how wide the next rendered whitespace block is.
package space

// Config decides the pixel width of rendered whitespace blocks within a
// single line. PeekNextWidth must not mutate state; Consume commits.
type Config interface {
	// PeekNextWidth returns the width in pixels of the next k spaces
	// without consuming them.
	PeekNextWidth(k int) int
	// Consume commits k spaces and returns their width in pixels.
	Consume(k int) int
}

// Uniform renders every space at the same fixed width (Left/Right/Center
// alignment, and Justified's last line).
type Uniform struct {
	SpaceWidth int
}

// NewUniform creates a Uniform space config with the given per-space width.
func NewUniform(spaceWidth int) Uniform {
	return Uniform{SpaceWidth: spaceWidth}
}

// PeekNextWidth implements Config.
func (u Uniform) PeekNextWidth(k int) int { return k * u.SpaceWidth }

// Consume implements Config.
func (u Uniform) Consume(k int) int { return k * u.SpaceWidth }

// Justified stretches the slack of a line across its individual inter-word
// space units: the first Extras space units get one extra pixel, the rest
// get BaseWidth. consumed tracks how many individual space
// units have been handed out so far, so a multi-space whitespace run that
// straddles the Extras boundary is split correctly between PeekNextWidth
// and Consume calls.
type Justified struct {
	BaseWidth int
	Extras    int
	consumed  int
}

// NewJustified creates a Justified space config. slack is the line's
// leftover pixels after packing words at minimum (1-space) gaps;
// spaceCount is the total number of individual inter-word space code
// points on the line.
func NewJustified(slack, spaceCount int) *Justified {
	if spaceCount <= 0 {
		return &Justified{BaseWidth: 0, Extras: 0}
	}
	return &Justified{
		BaseWidth: slack / spaceCount,
		Extras:    slack % spaceCount,
	}
}

// widthFrom computes the width of the next k space units starting at
// consumed units already handed out.
func (j *Justified) widthFrom(consumed, k int) int {
	extraHere := j.Extras - consumed
	if extraHere < 0 {
		extraHere = 0
	}
	if extraHere > k {
		extraHere = k
	}
	return k*j.BaseWidth + extraHere
}

// PeekNextWidth implements Config.
func (j *Justified) PeekNextWidth(k int) int {
	return j.widthFrom(j.consumed, k)
}

// Consume implements Config.
func (j *Justified) Consume(k int) int {
	w := j.widthFrom(j.consumed, k)
	j.consumed += k
	return w
}
