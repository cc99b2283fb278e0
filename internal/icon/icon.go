package icon

import (
	"image"

	"github.com/solodev/pwaicons/internal/render"
)

// Render draws the icon at size x size pixels. size must be positive.
func Render(size int, maskable bool) *image.RGBA {
	c := render.NewCanvas(size)
	Draw(c, LayoutFor(size, maskable))
	return c.Image()
}

// Draw paints l onto d, starting from a white background.
func Draw(d render.Drawer, l Layout) {
	d.FillBackground(White)
	for _, s := range l.Shapes {
		switch s.Kind {
		case ShapeRect:
			d.FillRect(s.Box, s.Fill)
			if s.Outline.A != 0 {
				d.StrokeRect(s.Box, s.Outline)
			}
		case ShapeEllipse:
			d.FillEllipse(s.Box, s.Fill)
		case ShapeArc:
			d.StrokeArc(s.Box, s.Start, s.End, s.Width, s.Fill)
		}
	}
}
