package render

import (
	"image"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"github.com/solodev/pwaicons/internal/assets"
	"github.com/solodev/pwaicons/internal/render/layout"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// SheetEntry is one labelled image on the contact sheet.
type SheetEntry struct {
	Label string
	Image image.Image
}

// LoadLabelFace parses the bundled TrueType font at LabelPoints.
// A parse failure falls back to basicfont so a sheet can always be produced.
func LoadLabelFace(l logger) font.Face {
	tt, err := truetype.Parse(assets.FontTTF)
	if err != nil {
		if l != nil {
			l.Errorf("sheet", "truetype parse failed, using basicfont: %v", err)
		}
		return basicfont.Face7x13
	}
	if l != nil {
		l.Infof("sheet", "loaded truetype label font at %.0fpt", LabelPoints)
	}
	return truetype.NewFace(tt, &truetype.Options{Size: LabelPoints, DPI: 72, Hinting: font.HintingFull})
}

// BuildSheet lays out up to four entries on a 2x2 grid, each scaled into the
// largest centred square of its cell with the label underneath. Extra entries are
// ignored.
func BuildSheet(face font.Face, entries []SheetEntry) *image.RGBA {
	if face == nil {
		face = basicfont.Face7x13
	}
	sheet := image.NewRGBA(image.Rect(0, 0, SheetSize, SheetSize))
	draw.Draw(sheet, sheet.Bounds(), &image.Uniform{C: SheetBackground}, image.Point{}, draw.Src)

	cells := layout.Grid2x2(sheet.Bounds()).Cells()
	for i, entry := range entries {
		if i >= len(cells) {
			break
		}
		cell := layout.Inset(cells[i], SheetPadding)
		imageArea, labelArea := layout.SplitHorizontal(cell, cell.Dy()-LabelHeight)
		if entry.Image != nil {
			target := layout.CenterSquare(imageArea)
			xdraw.CatmullRom.Scale(sheet, target, entry.Image, entry.Image.Bounds(), xdraw.Over, nil)
		}
		drawLabel(sheet, labelArea, entry.Label, face)
	}
	return sheet
}

// drawLabel centres text horizontally and vertically inside area.
func drawLabel(dst *image.RGBA, area image.Rectangle, text string, face font.Face) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(LabelColor),
		Face: face,
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()

	textWidth := drawer.MeasureString(text).Ceil()
	x := area.Min.X + (area.Dx()-textWidth)/2
	baseline := area.Min.Y + (area.Dy()+ascent-descent)/2
	drawer.Dot = fixed.P(x, baseline)
	drawer.DrawString(text)
}
