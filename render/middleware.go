package render

import "github.com/glyphbox/textbox/internal/geometry"

// Hooks are the observation points a Middleware can attach to. Each is
// optional; a nil hook is simply skipped. Ported from the original
// middleware example's CharacterLimiter (original_source/examples/
// middleware.rs), which observed and truncated the token stream — here
// the equivalent observation point is the draw calls the line renderer
// issues, since this port shares one CharacterRenderer interface for both
// the measure and render passes.
type Hooks struct {
	BeforeDrawString     func(text string, pos geometry.Point)
	AfterDrawString      func(text string, pos, newPos geometry.Point)
	BeforeDrawWhitespace func(width int, pos geometry.Point)
}

// Middleware wraps a CharacterRenderer to observe (and, via the hooks,
// veto nothing but record) draw calls without changing what gets drawn.
// Nothing in this module wraps a renderer with it; it is provided for
// callers.
type Middleware struct {
	Inner CharacterRenderer
	Hooks Hooks
}

// Wrap returns a Middleware decorating inner with hooks.
func Wrap(inner CharacterRenderer, hooks Hooks) *Middleware {
	return &Middleware{Inner: inner, Hooks: hooks}
}

func (m *Middleware) DrawString(text string, pos geometry.Point, target DisplayTarget) (geometry.Point, error) {
	if m.Hooks.BeforeDrawString != nil {
		m.Hooks.BeforeDrawString(text, pos)
	}
	newPos, err := m.Inner.DrawString(text, pos, target)
	if m.Hooks.AfterDrawString != nil {
		m.Hooks.AfterDrawString(text, pos, newPos)
	}
	return newPos, err
}

func (m *Middleware) DrawWhitespace(width int, pos geometry.Point, target DisplayTarget) (geometry.Point, error) {
	if m.Hooks.BeforeDrawWhitespace != nil {
		m.Hooks.BeforeDrawWhitespace(width, pos)
	}
	return m.Inner.DrawWhitespace(width, pos, target)
}

func (m *Middleware) MeasureString(text string) int { return m.Inner.MeasureString(text) }
func (m *Middleware) LineHeight() int               { return m.Inner.LineHeight() }

func (m *Middleware) SetTextColor(c ColorOption)          { m.Inner.SetTextColor(c) }
func (m *Middleware) SetBackgroundColor(c ColorOption)    { m.Inner.SetBackgroundColor(c) }
func (m *Middleware) SetUnderlineColor(c ColorOption)     { m.Inner.SetUnderlineColor(c) }
func (m *Middleware) SetStrikethroughColor(c ColorOption) { m.Inner.SetStrikethroughColor(c) }
