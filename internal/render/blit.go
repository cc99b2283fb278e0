package render

import (
	"image"
	"image/color"

	"github.com/solodev/pwaicons/internal/render/layout"
)

// pixelSetter is the part of an output device the blitter needs.
type pixelSetter interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// blit clears dst to the sheet background and draws src into the largest centred
// square, sampling nearest-neighbour.
func blit(dst pixelSetter, src image.Image) {
	bounds := dst.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.Set(x, y, SheetBackground)
		}
	}
	nnScale(dst, layout.CenterSquare(bounds), src)
}

// Helper: nearest-neighbor scale of src into dst rectangle.
func nnScale(dst pixelSetter, rect image.Rectangle, src image.Image) {
	srcWidth := src.Bounds().Dx()
	srcHeight := src.Bounds().Dy()
	dstWidth := rect.Dx()
	dstHeight := rect.Dy()
	if srcWidth == 0 || srcHeight == 0 {
		return
	}
	for y := 0; y < dstHeight; y++ {
		sy := src.Bounds().Min.Y + (y*srcHeight)/dstHeight
		for x := 0; x < dstWidth; x++ {
			sx := src.Bounds().Min.X + (x*srcWidth)/dstWidth
			r, g, b, _ := src.At(sx, sy).RGBA()
			// Framebuffers have no use for alpha.
			dst.Set(rect.Min.X+x, rect.Min.Y+y, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xFF})
		}
	}
}
