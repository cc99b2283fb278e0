package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/corona10/goimagehash"
	"github.com/google/go-cmp/cmp"
	"github.com/solodev/pwaicons/internal/render/layout"
)

func TestRenderDimensions(t *testing.T) {
	for _, size := range []int{192, 512} {
		for _, maskable := range []bool{false, true} {
			t.Run(fmt.Sprintf("%d/maskable=%v", size, maskable), func(t *testing.T) {
				img := Render(size, maskable)
				if got := img.Bounds(); got != image.Rect(0, 0, size, size) {
					t.Errorf("Bounds() = %v, want %dx%d", got, size, size)
				}
			})
		}
	}
}

func TestRenderStandardPalette(t *testing.T) {
	img := Render(192, false)

	var primary, dark bool
	for y := 60; y <= 140; y++ {
		for x := 48; x <= 144; x++ {
			switch img.RGBAAt(x, y) {
			case Primary:
				primary = true
			case Dark:
				dark = true
			}
		}
	}
	if !primary {
		t.Error("no primary pixel inside the briefcase")
	}
	if !dark {
		t.Error("no dark pixel inside the briefcase")
	}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"body", 96, 100, Primary},
		{"lid", 96, 70, Dark},
		{"rivet", 96, 115, White},
		{"handle", 96, 56, Primary},
		{"above handle", 96, 45, White},
		{"corner", 0, 0, White},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRenderMaskable(t *testing.T) {
	for _, size := range []int{192, 512} {
		img := Render(size, true)
		last := size - 1
		for _, p := range []image.Point{{0, 0}, {last, 0}, {0, last}, {last, last}} {
			if got := img.RGBAAt(p.X, p.Y); got != White {
				t.Errorf("size %d corner %v = %v, want white", size, p, got)
			}
		}
		margin := int(float64(size) * 0.05)
		for i := 0; i < margin; i++ {
			if got := img.RGBAAt(i, i); got != White {
				t.Errorf("size %d diagonal (%d,%d) = %v, want white", size, i, i, got)
			}
		}
	}

	img := Render(192, true)
	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"badge", 20, 96, Primary},
		{"body", 95, 100, Dark},
		{"handle", 95, 63, White},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	for _, maskable := range []bool{false, true} {
		a := Render(512, maskable)
		b := Render(512, maskable)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Errorf("maskable=%v: two renders differ", maskable)
		}
	}
}

func TestRenderBodySpan(t *testing.T) {
	tests := []struct {
		size int
		row  int
	}{
		{192, 130},
		{512, 350},
	}
	for _, tt := range tests {
		body, _ := StandardLayout(tt.size).Shape("body")
		first, last := nonWhiteSpan(Render(tt.size, false), tt.row)
		if first != body.Box.X0 || last != body.Box.X1 {
			t.Errorf("size %d row %d span = [%d,%d], want [%d,%d]", tt.size, tt.row, first, last, body.Box.X0, body.Box.X1)
		}
		if got, want := last-first+1, body.Box.Rect().Dx(); got != want {
			t.Errorf("size %d pixel width = %d, want %d", tt.size, got, want)
		}
	}
}

func TestRenderScalesPerceptually(t *testing.T) {
	for _, maskable := range []bool{false, true} {
		small, err := goimagehash.PerceptionHash(Render(192, maskable))
		if err != nil {
			t.Fatal(err)
		}
		large, err := goimagehash.PerceptionHash(Render(512, maskable))
		if err != nil {
			t.Fatal(err)
		}
		distance, err := small.Distance(large)
		if err != nil {
			t.Fatal(err)
		}
		if distance > 10 {
			t.Errorf("maskable=%v: perceptual distance 192 vs 512 = %d, want <= 10", maskable, distance)
		}
	}
}

func TestDrawOrder(t *testing.T) {
	rec := &recorder{}
	Draw(rec, StandardLayout(192))
	want := []string{
		"background",
		"rect body",
		"outline body",
		"rect lid",
		"arc handle",
		"ellipse rivet",
		"ellipse rivet",
		"ellipse rivet",
	}
	if diff := cmp.Diff(want, rec.named(StandardLayout(192))); diff != "" {
		t.Errorf("draw calls (-want +got):\n%s", diff)
	}
}

func nonWhiteSpan(img *image.RGBA, y int) (first, last int) {
	first, last = -1, -1
	for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
		if img.RGBAAt(x, y) == White {
			continue
		}
		if first < 0 {
			first = x
		}
		last = x
	}
	return first, last
}

// recorder is a Drawer that logs calls instead of painting.
type recorder struct {
	calls []call
}

type call struct {
	op  string
	box layout.Box
}

func (r *recorder) Size() int                   { return 192 }
func (r *recorder) FillBackground(c color.RGBA) { r.calls = append(r.calls, call{op: "background"}) }
func (r *recorder) FillRect(box layout.Box, c color.RGBA) {
	r.calls = append(r.calls, call{op: "rect", box: box})
}
func (r *recorder) StrokeRect(box layout.Box, c color.RGBA) {
	r.calls = append(r.calls, call{op: "outline", box: box})
}
func (r *recorder) FillEllipse(box layout.Box, c color.RGBA) {
	r.calls = append(r.calls, call{op: "ellipse", box: box})
}
func (r *recorder) StrokeArc(box layout.Box, startDeg, endDeg float64, width int, c color.RGBA) {
	r.calls = append(r.calls, call{op: "arc", box: box})
}

// named maps each recorded call back to the shape that owns its box.
func (r *recorder) named(l Layout) []string {
	var out []string
	for _, c := range r.calls {
		if c.op == "background" {
			out = append(out, c.op)
			continue
		}
		name := "?"
		for _, s := range l.Shapes {
			if s.Box == c.box {
				name = s.Name
				break
			}
		}
		out = append(out, c.op+" "+name)
	}
	return out
}
