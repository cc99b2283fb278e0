package app

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/k1LoW/errors"
)

// Generate renders every target and writes it into StaticDir.
//
// The directory must already exist; it is never created. The first failure aborts
// the run and files written before it are left in place.
func (app *App) Generate(ctx context.Context) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	out := app.out()
	l := app.logger()
	green := color.New(color.FgGreen)

	fmt.Fprintln(out, "Generating PWA icons...")
	l.Infof("generate", "static dir %s", app.StaticDir)

	for _, t := range Targets() {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(app.StaticDir, t.FileName())
		if err := writePNG(path, app.render(t)); err != nil {
			l.Errorf("generate", "%v", err)
			return err
		}
		l.Infof("generate", "wrote %s (%dx%d, maskable=%v)", path, t.Size, t.Size, t.Maskable)
		green.Fprint(out, "✓")
		fmt.Fprintf(out, " Created %s\n", t.FileName())
	}

	if app.Favicon {
		if err := app.writeFavicon(); err != nil {
			l.Errorf("generate", "%v", err)
			return err
		}
		green.Fprint(out, "✓")
		fmt.Fprintf(out, " Created %s\n", FaviconName)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "✅ PWA icons generated successfully!")
	fmt.Fprintf(out, "Icons saved in: %s\n", app.StaticDir)
	return nil
}

// writePNG encodes img fully before touching the filesystem, so an encoder failure
// never leaves a truncated file behind.
func writePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
