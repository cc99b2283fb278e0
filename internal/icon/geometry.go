package icon

import (
	"image/color"

	"github.com/solodev/pwaicons/internal/render/layout"
)

// BaseSize is the side the standard layout was designed at.
const BaseSize = 192

type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeEllipse
	ShapeArc
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRect:
		return "rect"
	case ShapeEllipse:
		return "ellipse"
	case ShapeArc:
		return "arc"
	default:
		return "unknown"
	}
}

// Shape is one drawing call. Outline is only used by rectangles and is skipped when
// fully transparent. Width, Start and End are only used by arcs.
type Shape struct {
	Name    string
	Kind    ShapeKind
	Box     layout.Box
	Fill    color.RGBA
	Outline color.RGBA
	Width   int
	Start   float64
	End     float64
}

// Layout is the ordered list of shapes for one icon, painted over a white canvas.
type Layout struct {
	Size     int
	Maskable bool
	Shapes   []Shape
}

// Shape returns the first shape with the given name.
func (l Layout) Shape(name string) (Shape, bool) {
	for _, s := range l.Shapes {
		if s.Name == name {
			return s, true
		}
	}
	return Shape{}, false
}

// LayoutFor selects the standard or maskable layout.
func LayoutFor(size int, maskable bool) Layout {
	if maskable {
		return MaskableLayout(size)
	}
	return StandardLayout(size)
}

// StandardLayout is the briefcase on a white square. Every coordinate is a base-192
// constant multiplied by size/192 and truncated on its own, so sums of scaled terms
// can differ by a pixel from the scaled sum.
func StandardLayout(size int) Layout {
	scale := float64(size) / BaseSize
	s := func(base int) int { return int(float64(base) * scale) }

	bx, by := s(48), s(60)
	bw, bh := s(96), s(80)
	body := layout.Box{X0: bx, Y0: by, X1: bx + bw, Y1: by + bh}

	shapes := []Shape{
		{Name: "body", Kind: ShapeRect, Box: body, Fill: Primary, Outline: Primary},
		{Name: "lid", Kind: ShapeRect, Box: layout.Box{X0: bx, Y0: by, X1: bx + bw, Y1: by + s(16)}, Fill: Dark},
		{
			Name:  "handle",
			Kind:  ShapeArc,
			Box:   layout.Box{X0: s(72) - s(5), Y0: s(40), X1: s(120) + s(5), Y1: by},
			Fill:  Primary,
			Width: s(8),
			Start: 0,
			End:   180,
		},
	}

	dotY, dotR := s(115), s(4)
	for _, dotX := range []int{s(72), s(96), s(120)} {
		shapes = append(shapes, Shape{Name: "rivet", Kind: ShapeEllipse, Box: layout.Square(dotX, dotY, dotR), Fill: White})
	}
	return Layout{Size: size, Shapes: shapes}
}

// MaskableLayout keeps the briefcase inside the safe zone of a primary disc. Its
// constants are fractions of size rather than base-192 coordinates.
func MaskableLayout(size int) Layout {
	f := func(frac float64) int { return int(float64(size) * frac) }

	margin := f(0.05)
	bx, by := f(0.3), f(0.35)
	bw, bh := f(0.4), f(0.3)
	handleY := int(float64(by) * 0.8)

	return Layout{
		Size:     size,
		Maskable: true,
		Shapes: []Shape{
			{Name: "badge", Kind: ShapeEllipse, Box: layout.InsetBox(layout.Box{X1: size, Y1: size}, margin), Fill: Primary},
			{Name: "body", Kind: ShapeRect, Box: layout.Box{X0: bx, Y0: by, X1: bx + bw, Y1: by + bh}, Fill: Dark},
			{
				Name:  "handle",
				Kind:  ShapeArc,
				Box:   layout.Box{X0: bx + 5, Y0: handleY, X1: bx + bw - 5, Y1: by},
				Fill:  White,
				Width: f(0.05),
				Start: 0,
				End:   180,
			},
		},
	}
}
