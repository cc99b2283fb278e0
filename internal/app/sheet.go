package app

import (
	"context"
	"image"
	"path/filepath"

	"github.com/k1LoW/errors"
	"github.com/solodev/pwaicons/internal/render"
)

// SheetName is the default contact sheet file inside StaticDir.
const SheetName = "icons-sheet.png"

// BuildSheet renders every target onto one labelled contact sheet.
func (app *App) BuildSheet() *image.RGBA {
	targets := Targets()
	entries := make([]render.SheetEntry, 0, len(targets))
	for _, t := range targets {
		entries = append(entries, render.SheetEntry{Label: t.FileName(), Image: app.render(t)})
	}
	return render.BuildSheet(render.LoadLabelFace(app.logger()), entries)
}

// WriteSheet writes the contact sheet to path, or to StaticDir/SheetName when path
// is empty.
func (app *App) WriteSheet(ctx context.Context, path string) (_ string, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if path == "" {
		path = filepath.Join(app.StaticDir, SheetName)
	}
	if err := writePNG(path, app.BuildSheet()); err != nil {
		app.logger().Errorf("sheet", "%v", err)
		return "", err
	}
	app.logger().Infof("sheet", "wrote %s", path)
	return path, nil
}
