package layout

import "image"

// Box is a corner-inclusive pixel box: it covers columns X0..X1 and rows Y0..Y1.
// Icon geometry is expressed this way, so a box from 48 to 144 is 97 pixels wide.
type Box struct {
	X0, Y0, X1, Y1 int
}

// Rect returns the half-open rectangle covering the same pixels as b.
func (b Box) Rect() image.Rectangle {
	return Normalize(image.Rect(b.X0, b.Y0, b.X1+1, b.Y1+1))
}

// Width is the extent X1-X0, not the pixel count.
func (b Box) Width() int { return b.X1 - b.X0 }

// Height is the extent Y1-Y0, not the pixel count.
func (b Box) Height() int { return b.Y1 - b.Y0 }

// Square returns the box of side 2*radius centred on (cx, cy).
func Square(cx, cy, radius int) Box {
	return Box{X0: cx - radius, Y0: cy - radius, X1: cx + radius, Y1: cy + radius}
}

// InsetBox shrinks b by marginPx on all sides.
func InsetBox(b Box, marginPx int) Box {
	return Box{X0: b.X0 + marginPx, Y0: b.Y0 + marginPx, X1: b.X1 - marginPx, Y1: b.Y1 - marginPx}
}

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitHorizontal splits rect into top and bottom parts.
// topHeightPx is clamped to [0, rect.Dy()].
func SplitHorizontal(rect image.Rectangle, topHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	topHeightPx = clamp(topHeightPx, 0, rect.Dy())
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+topHeightPx)
	bottom = image.Rect(rect.Min.X, rect.Min.Y+topHeightPx, rect.Max.X, rect.Max.Y)
	return top, bottom
}

type Grid2x2Rects struct {
	TopLeft     image.Rectangle
	TopRight    image.Rectangle
	BottomLeft  image.Rectangle
	BottomRight image.Rectangle
}

// Cells returns the quadrants in reading order.
func (g Grid2x2Rects) Cells() []image.Rectangle {
	return []image.Rectangle{g.TopLeft, g.TopRight, g.BottomLeft, g.BottomRight}
}

// Grid2x2 splits rect into four equal quadrants.
func Grid2x2(rect image.Rectangle) Grid2x2Rects {
	rect = Normalize(rect)
	midX := rect.Min.X + rect.Dx()/2
	midY := rect.Min.Y + rect.Dy()/2
	return Grid2x2Rects{
		TopLeft:     image.Rect(rect.Min.X, rect.Min.Y, midX, midY),
		TopRight:    image.Rect(midX, rect.Min.Y, rect.Max.X, midY),
		BottomLeft:  image.Rect(rect.Min.X, midY, midX, rect.Max.Y),
		BottomRight: image.Rect(midX, midY, rect.Max.X, rect.Max.Y),
	}
}

// CenterSquare returns the largest square that fits into rect, centred on both axes.
func CenterSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	side := min(rect.Dx(), rect.Dy())
	x := rect.Min.X + (rect.Dx()-side)/2
	y := rect.Min.Y + (rect.Dy()-side)/2
	return image.Rect(x, y, x+side, y+side)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
