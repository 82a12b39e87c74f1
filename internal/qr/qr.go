// Package qr bridges the QR encoder to the terminal renderer. The encoder
// owns the bitmap generation; this package only sizes a surface from the
// finished code and marks its dark modules.
package qr

import (
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"

	"github.com/nlordell/qrterm/internal/render"
)

// ErrEmptyData is returned when there is nothing to encode.
var ErrEmptyData = errors.New("empty data")

// Levels maps the error-correction level names accepted on the command line.
var Levels = map[string]qrcode.RecoveryLevel{
	"low":     qrcode.Low,
	"medium":  qrcode.Medium,
	"high":    qrcode.High,
	"highest": qrcode.Highest,
}

// Level resolves an error-correction level by name.
func Level(name string) (qrcode.RecoveryLevel, error) {
	level, ok := Levels[name]
	if !ok {
		return 0, fmt.Errorf("unknown error-correction level %q", name)
	}
	return level, nil
}

// Encode encodes data as a QR code and accumulates it onto a fresh surface,
// quiet zone included. The returned surface is ready for one-time conversion.
func Encode(data string, level qrcode.RecoveryLevel) (*render.Surface, error) {
	if data == "" {
		return nil, ErrEmptyData
	}

	code, err := qrcode.New(data, level)
	if err != nil {
		return nil, fmt.Errorf("encode QR code: %w", err)
	}

	bitmap := code.Bitmap()
	height := len(bitmap)
	width := 0
	if height > 0 {
		width = len(bitmap[0])
	}

	surface := render.NewSurface(width, height, render.Black, render.White)
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				surface.SetDark(x, y)
			}
		}
	}
	return surface, nil
}
