package render

// Dot is a single QR dot, either black or white.
type Dot uint8

const (
	// White is a light dot. The zero value, so fresh surfaces read as blank.
	White Dot = iota
	// Black is a dark dot.
	Black
)

// Cell is a rendering character covering two vertically stacked dots.
// Terminal characters are roughly twice as tall as they are wide, so packing
// two dots per cell displays a bitmap at close to its true aspect ratio.
type Cell struct {
	Top Dot
	Bot Dot
}

// Rune returns the unicode block character for the cell.
//
// Black is the filled state, so output reads correctly on a light background
// with a dark font color.
func (c Cell) Rune() rune {
	switch {
	case c.Top == Black && c.Bot == Black:
		return '█'
	case c.Top == Black:
		return '▀'
	case c.Bot == Black:
		return '▄'
	default:
		return ' '
	}
}

// HalfCell is a cell for the final row when the dot height is uneven. It is
// kept distinct from Cell because a dangling row occupies only the upper half
// of its character cell, which matters once 256-color rendering is involved:
// true black differs from the terminal's off-black background.
type HalfCell struct {
	Top Dot
}

// Rune returns the unicode block character for the half cell.
//
// A dangling dark row always renders as the upper half block, never the
// lower. See Cell.Rune for the fill convention.
func (h HalfCell) Rune() rune {
	if h.Top == Black {
		return '▀'
	}
	return ' '
}
