package layout

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBoxRectIsInclusive(t *testing.T) {
	b := Box{X0: 48, Y0: 60, X1: 144, Y1: 140}
	got := b.Rect()
	want := image.Rect(48, 60, 145, 141)
	if got != want {
		t.Errorf("Rect() = %v, want %v", got, want)
	}
	if got.Dx() != b.Width()+1 {
		t.Errorf("Dx() = %d, want Width()+1 = %d", got.Dx(), b.Width()+1)
	}
}

func TestSquareAndInsetBox(t *testing.T) {
	if got, want := Square(96, 115, 4), (Box{X0: 92, Y0: 111, X1: 100, Y1: 119}); got != want {
		t.Errorf("Square = %+v, want %+v", got, want)
	}
	if got, want := InsetBox(Box{X0: 0, Y0: 0, X1: 192, Y1: 192}, 9), (Box{X0: 9, Y0: 9, X1: 183, Y1: 183}); got != want {
		t.Errorf("InsetBox = %+v, want %+v", got, want)
	}
}

func TestInset(t *testing.T) {
	tests := []struct {
		name    string
		rect    image.Rectangle
		padding int
		want    image.Rectangle
	}{
		{"positive", image.Rect(0, 0, 100, 50), 10, image.Rect(10, 10, 90, 40)},
		{"zero", image.Rect(0, 0, 100, 50), 0, image.Rect(0, 0, 100, 50)},
		{"collapsed", image.Rect(0, 0, 10, 10), 8, image.Rect(2, 2, 8, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Inset(tt.rect, tt.padding); got != tt.want {
				t.Errorf("Inset = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitHorizontalClamps(t *testing.T) {
	rect := image.Rect(0, 0, 40, 100)
	top, bottom := SplitHorizontal(rect, 150)
	if top != rect {
		t.Errorf("top = %v, want %v", top, rect)
	}
	if !bottom.Empty() {
		t.Errorf("bottom = %v, want empty", bottom)
	}
	top, bottom = SplitHorizontal(rect, 60)
	if top.Dy() != 60 || bottom.Dy() != 40 {
		t.Errorf("split heights = %d/%d, want 60/40", top.Dy(), bottom.Dy())
	}
}

func TestGrid2x2(t *testing.T) {
	got := Grid2x2(image.Rect(0, 0, 1024, 1024)).Cells()
	want := []image.Rectangle{
		image.Rect(0, 0, 512, 512),
		image.Rect(512, 0, 1024, 512),
		image.Rect(0, 512, 512, 1024),
		image.Rect(512, 512, 1024, 1024),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestCenterSquare(t *testing.T) {
	tests := []struct {
		rect image.Rectangle
		want image.Rectangle
	}{
		{image.Rect(0, 0, 1920, 1080), image.Rect(420, 0, 1500, 1080)},
		{image.Rect(10, 10, 110, 310), image.Rect(10, 110, 110, 210)},
		{image.Rect(0, 0, 0, 0), image.Rect(0, 0, 0, 0)},
	}
	for _, tt := range tests {
		if got := CenterSquare(tt.rect); got != tt.want {
			t.Errorf("CenterSquare(%v) = %v, want %v", tt.rect, got, tt.want)
		}
	}
}
