package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectangle_Edges(t *testing.T) {
	r := NewRectangle(NewPoint(10, 20), NewSize(30, 40))

	assert.Equal(t, 10, r.Left())
	assert.Equal(t, 40, r.Right())
	assert.Equal(t, 20, r.TopEdge())
	assert.Equal(t, 60, r.Bottom())
	assert.Equal(t, 30, r.Width())
	assert.Equal(t, 40, r.Height())
}

func TestRectangle_Contains(t *testing.T) {
	r := NewRectangle(NewPoint(0, 0), NewSize(10, 10))

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"top-left corner", NewPoint(0, 0), true},
		{"inside", NewPoint(5, 5), true},
		{"right edge excluded", NewPoint(10, 5), false},
		{"bottom edge excluded", NewPoint(5, 10), false},
		{"negative", NewPoint(-1, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.p))
		})
	}
}

func TestRectangle_WithHeight(t *testing.T) {
	r := NewRectangle(NewPoint(5, 5), NewSize(10, 10))
	got := r.WithHeight(3)

	assert.Equal(t, NewPoint(5, 5), got.Top)
	assert.Equal(t, 10, got.Width())
	assert.Equal(t, 3, got.Height())
}

func TestRectangle_Clipped(t *testing.T) {
	a := NewRectangle(NewPoint(0, 0), NewSize(10, 10))
	b := NewRectangle(NewPoint(5, 5), NewSize(10, 10))

	got := a.Clipped(b)
	assert.Equal(t, NewRectangle(NewPoint(5, 5), NewSize(5, 5)), got)
}

func TestRectangle_Clipped_NoOverlap(t *testing.T) {
	a := NewRectangle(NewPoint(0, 0), NewSize(10, 10))
	b := NewRectangle(NewPoint(20, 20), NewSize(5, 5))

	got := a.Clipped(b)
	assert.Equal(t, 0, got.Width())
	assert.Equal(t, 0, got.Height())
}
