package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetDarkOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		x, y int
	}{
		{"x past width", 3, 3, 3, 0},
		{"y past height", 3, 3, 0, 3},
		{"negative x", 3, 3, -1, 0},
		{"negative y", 3, 3, 0, -1},
		{"both far out", 3, 3, 10, 10},
		{"zero width surface", 0, 3, 0, 0},
		{"zero height surface", 3, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurface(tt.w, tt.h, Black, White)
			assert.Panics(t, func() { s.SetDark(tt.x, tt.y) })
		})
	}
}

// TestSetDarkNoCorruption verifies that in-range writes land on exactly one
// dot and leave the neighbors alone.
func TestSetDarkNoCorruption(t *testing.T) {
	s := NewSurface(3, 3, Black, White)
	s.SetDark(1, 1)

	img := s.Image()
	assert.Equal(t, []Cell{{White, White}, {White, Black}, {White, White}}, img.Lines[0])
	assert.Equal(t, []HalfCell{{White}, {White}, {White}}, img.LastLine)
}

func TestSurfaceConsumedByConversion(t *testing.T) {
	s := NewSurface(2, 2, Black, White)
	s.SetDark(0, 0)
	_ = s.Image()

	assert.Panics(t, func() { s.SetDark(1, 1) }, "mutation after conversion")
	assert.Panics(t, func() { s.Image() }, "second conversion")
}

func TestSurfaceDimensions(t *testing.T) {
	s := NewSurface(4, 7, Black, White)
	assert.Equal(t, 4, s.Width())
	assert.Equal(t, 7, s.Height())

	empty := NewSurface(0, 5, Black, White)
	assert.Equal(t, 0, empty.Width())
	assert.Equal(t, 0, empty.Height())
}
