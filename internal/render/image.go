package render

import (
	"io"
	"strings"
)

// Image is a finished terminal rendering: full rows of two-dot cells, plus an
// optional trailing half row when the source height is uneven. Immutable once
// built.
type Image struct {
	Lines    [][]Cell
	LastLine []HalfCell // non-nil only for an odd dot height
}

// Image converts the surface into its terminal representation, pairing each
// even dot row with the row below it. The surface is consumed: any further
// mutation or a second conversion panics.
func (s *Surface) Image() *Image {
	if s.consumed {
		panic("render: surface converted twice")
	}
	s.consumed = true

	img := &Image{}
	if s.width == 0 {
		return img
	}

	w := s.width
	h := len(s.dots) / w
	img.Lines = make([][]Cell, 0, h/2)

	for row := 0; row+1 < h; row += 2 {
		top := s.dots[row*w : (row+1)*w]
		bot := s.dots[(row+1)*w : (row+2)*w]
		line := make([]Cell, w)
		for x := 0; x < w; x++ {
			line[x] = Cell{Top: top[x], Bot: bot[x]}
		}
		img.Lines = append(img.Lines, line)
	}

	if h%2 == 1 {
		last := s.dots[(h-1)*w:]
		img.LastLine = make([]HalfCell, w)
		for x := 0; x < w; x++ {
			img.LastLine[x] = HalfCell{Top: last[x]}
		}
	}

	return img
}

// Render writes the image to w, one terminal line per cell row, the half row
// last if present.
func (img *Image) Render(w io.Writer) error {
	_, err := io.WriteString(w, img.String())
	return err
}

// String returns the rendered image as a single string.
func (img *Image) String() string {
	var sb strings.Builder
	if len(img.Lines) > 0 {
		sb.Grow((len(img.Lines[0])*3 + 1) * (len(img.Lines) + 1))
	}
	for _, line := range img.Lines {
		for _, c := range line {
			sb.WriteRune(c.Rune())
		}
		sb.WriteByte('\n')
	}
	if img.LastLine != nil {
		for _, hc := range img.LastLine {
			sb.WriteRune(hc.Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
