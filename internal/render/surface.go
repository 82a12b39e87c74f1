package render

import "fmt"

// Surface is a mutable accumulation buffer of dots over fixed dimensions.
// The QR encoder fills it by marking dark dots one coordinate at a time;
// once complete, it is converted into an Image exactly once.
type Surface struct {
	dots     []Dot
	width    int
	dark     Dot
	consumed bool
}

// NewSurface creates a width x height surface filled with the light dot.
// SetDark writes the dark dot.
func NewSurface(width, height int, dark, light Dot) *Surface {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("render: negative surface dimensions %dx%d", width, height))
	}
	dots := make([]Dot, width*height)
	if light != 0 {
		for i := range dots {
			dots[i] = light
		}
	}
	return &Surface{
		dots:  dots,
		width: width,
		dark:  dark,
	}
}

// Width returns the surface width in dots.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in dots.
func (s *Surface) Height() int {
	if s.width == 0 {
		return 0
	}
	return len(s.dots) / s.width
}

// SetDark marks the dot at (x, y) as dark. Coordinates outside the surface
// are a contract violation between the encoder and the surface, not a data
// problem, and panic. So does any write after the surface has been converted.
func (s *Surface) SetDark(x, y int) {
	if s.consumed {
		panic("render: surface mutated after conversion")
	}
	if x < 0 || y < 0 || x >= s.width || y >= s.Height() {
		panic(fmt.Sprintf("render: dot (%d,%d) out of bounds for %dx%d surface", x, y, s.width, s.Height()))
	}
	s.dots[x+y*s.width] = s.dark
}
