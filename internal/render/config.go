package render

import "image/color"

// Contact sheet configuration.
var (
	SheetBackground = color.RGBA{R: 0xF3, G: 0xF4, B: 0xF6, A: 0xFF} // #f3f4f6
	LabelColor      = color.RGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xFF} // #1f2937

	SheetSize    = 1024
	SheetPadding = 24
	LabelHeight  = 56
	LabelPoints  = 20.0
)

// DefaultFBDevice is the framebuffer the preview opens when none is given.
const DefaultFBDevice = "/dev/fb0"
