package render

import (
	"context"
	"image"
	"image/color"

	"github.com/solodev/pwaicons/internal/render/layout"
)

// Drawer is the set of primitives icons are drawn with.
// Colours are always opaque; boxes are corner-inclusive.
type Drawer interface {
	// Size returns the side of the square canvas in pixels.
	Size() int

	FillBackground(c color.RGBA)
	FillRect(box layout.Box, c color.RGBA)
	StrokeRect(box layout.Box, c color.RGBA)
	FillEllipse(box layout.Box, c color.RGBA)

	// StrokeArc draws the part of the ellipse inscribed in box between startDeg and
	// endDeg, measured clockwise from 3 o'clock. The stroke grows inward from the box.
	StrokeArc(box layout.Box, startDeg, endDeg float64, width int, c color.RGBA)
}

// Preview shows a finished image on an output device.
type Preview interface {
	Start(ctx context.Context) error
	Show(img image.Image) error
	Stop() error
}
