package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/solodev/pwaicons/internal/render/layout"
	"golang.org/x/image/vector"
)

// segmentsPerTurn is how finely ellipses are flattened before rasterising.
const segmentsPerTurn = 256

// Canvas is an offscreen square RGBA buffer implementing Drawer.
// Rectangles are filled exactly; curves go through the vector rasterizer and are
// anti-aliased at their edges only.
type Canvas struct {
	img  *image.RGBA
	rast *vector.Rasterizer
}

var _ Drawer = (*Canvas)(nil)

// NewCanvas allocates a size x size canvas. It starts fully transparent; callers
// paint a background first.
func NewCanvas(size int) *Canvas {
	if size < 0 {
		size = 0
	}
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, size, size)),
		rast: vector.NewRasterizer(size, size),
	}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() int { return c.img.Bounds().Dx() }

func (c *Canvas) FillBackground(col color.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *Canvas) FillRect(box layout.Box, col color.RGBA) {
	r := box.Rect().Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// StrokeRect draws a one pixel outline along the edges of box.
func (c *Canvas) StrokeRect(box layout.Box, col color.RGBA) {
	c.FillRect(layout.Box{X0: box.X0, Y0: box.Y0, X1: box.X1, Y1: box.Y0}, col)
	c.FillRect(layout.Box{X0: box.X0, Y0: box.Y1, X1: box.X1, Y1: box.Y1}, col)
	c.FillRect(layout.Box{X0: box.X0, Y0: box.Y0, X1: box.X0, Y1: box.Y1}, col)
	c.FillRect(layout.Box{X0: box.X1, Y0: box.Y0, X1: box.X1, Y1: box.Y1}, col)
}

func (c *Canvas) FillEllipse(box layout.Box, col color.RGBA) {
	e := ellipseIn(box)
	if e.rx <= 0 || e.ry <= 0 || c.Size() == 0 {
		return
	}
	c.begin()
	e.trace(c.rast, 0, 360, false)
	c.rast.ClosePath()
	c.flush(col)
}

func (c *Canvas) StrokeArc(box layout.Box, startDeg, endDeg float64, width int, col color.RGBA) {
	outer := ellipseIn(box)
	if outer.rx <= 0 || outer.ry <= 0 || c.Size() == 0 || endDeg <= startDeg {
		return
	}
	if width < 1 {
		width = 1
	}
	inner := outer
	inner.rx = math.Max(outer.rx-float64(width), 0)
	inner.ry = math.Max(outer.ry-float64(width), 0)

	c.begin()
	outer.trace(c.rast, startDeg, endDeg, false)
	inner.trace(c.rast, startDeg, endDeg, true)
	c.rast.ClosePath()
	c.flush(col)
}

func (c *Canvas) begin() {
	size := c.Size()
	c.rast.Reset(size, size)
}

func (c *Canvas) flush(col color.RGBA) {
	c.rast.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// ellipse is an axis-aligned ellipse in continuous pixel coordinates.
type ellipse struct {
	cx, cy float64
	rx, ry float64
}

// ellipseIn returns the ellipse touching the outer edges of the pixels in box.
func ellipseIn(box layout.Box) ellipse {
	x0, y0 := float64(box.X0), float64(box.Y0)
	x1, y1 := float64(box.X1+1), float64(box.Y1+1)
	return ellipse{
		cx: (x0 + x1) / 2,
		cy: (y0 + y1) / 2,
		rx: (x1 - x0) / 2,
		ry: (y1 - y0) / 2,
	}
}

func (e ellipse) point(deg float64) (float32, float32) {
	rad := deg * math.Pi / 180
	return float32(e.cx + e.rx*math.Cos(rad)), float32(e.cy + e.ry*math.Sin(rad))
}

// trace appends the arc from startDeg to endDeg as line segments. A forward trace
// opens a new contour; a reverse trace continues the open one from endDeg back.
func (e ellipse) trace(z *vector.Rasterizer, startDeg, endDeg float64, reverse bool) {
	sweep := endDeg - startDeg
	n := int(math.Ceil(segmentsPerTurn * sweep / 360))
	if n < 1 {
		n = 1
	}
	for i := 0; i <= n; i++ {
		step := i
		if reverse {
			step = n - i
		}
		x, y := e.point(startDeg + sweep*float64(step)/float64(n))
		if i == 0 && !reverse {
			z.MoveTo(x, y)
			continue
		}
		z.LineTo(x, y)
	}
}
