package icon

import "image/color"

// Brand palette. No alpha variation.
var (
	Primary = color.RGBA{R: 99, G: 102, B: 241, A: 0xFF} // #6366f1
	Dark    = color.RGBA{R: 79, G: 70, B: 229, A: 0xFF}  // #4f46e5
	White   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)
