package lineparser

import "github.com/glyphbox/textbox/internal/token"

// Carry is the one-slot rendezvous channel the per-line iterator both
// reads and writes: the token deferred by one line's processing, handed
// to the next line. It is not a queue — at most one token is ever in
// flight.
type Carry struct {
	tok token.Token
	has bool
}

// Take removes and returns the carried token, if any.
func (c *Carry) Take() (token.Token, bool) {
	if !c.has {
		return token.Token{}, false
	}
	c.has = false
	t := c.tok
	c.tok = token.Token{}
	return t, true
}

// Peek returns the carried token without removing it.
func (c *Carry) Peek() (token.Token, bool) {
	return c.tok, c.has
}

// Set stores t as the carried token, replacing anything previously held.
func (c *Carry) Set(t token.Token) {
	c.tok = t
	c.has = true
}

// Clear empties the slot.
func (c *Carry) Clear() {
	c.has = false
	c.tok = token.Token{}
}

// HasValue reports whether the slot currently holds a token.
func (c *Carry) HasValue() bool { return c.has }

// IsCarriageReturn reports whether the slot currently holds a bare
// CarriageReturn token — the one case the text box driver must not
// follow with a vertical cursor advance.
func (c *Carry) IsCarriageReturn() bool {
	return c.has && c.tok.Kind == token.KindCarriageReturn
}
