package space

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniform(t *testing.T) {
	u := NewUniform(6)
	assert.Equal(t, 18, u.PeekNextWidth(3))
	assert.Equal(t, 18, u.Consume(3))
}

func TestJustified_DistributesExtrasToFirstSpaces(t *testing.T) {
	// slack=10 over 4 space units: base=2, extras=2 -> widths 3,3,2,2
	j := NewJustified(10, 4)

	assert.Equal(t, 3, j.Consume(1))
	assert.Equal(t, 3, j.Consume(1))
	assert.Equal(t, 2, j.Consume(1))
	assert.Equal(t, 2, j.Consume(1))
}

func TestJustified_PeekDoesNotConsume(t *testing.T) {
	j := NewJustified(10, 4)

	assert.Equal(t, 3, j.PeekNextWidth(1))
	assert.Equal(t, 3, j.PeekNextWidth(1), "peek must not mutate state")
	assert.Equal(t, 3, j.Consume(1))
	assert.Equal(t, 3, j.PeekNextWidth(1))
}

func TestJustified_SplitRunStraddlingExtrasBoundary(t *testing.T) {
	// slack=10 over 4 units: first two units get +1. A single whitespace
	// run of 3 units must split correctly across the boundary.
	j := NewJustified(10, 4)
	assert.Equal(t, 3+3+2, j.Consume(3))
	assert.Equal(t, 2, j.Consume(1))
}

func TestJustified_ZeroSpaceCount(t *testing.T) {
	j := NewJustified(10, 0)
	assert.Equal(t, 0, j.PeekNextWidth(1))
	assert.Equal(t, 0, j.Consume(1))
}
