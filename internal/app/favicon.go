package app

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"
	xdraw "golang.org/x/image/draw"
)

const (
	FaviconName = "favicon.ico"
	FaviconSize = 48
)

// writeFavicon downscales the standard 192 icon into StaticDir/favicon.ico.
func (app *App) writeFavicon() error {
	src := app.render(Target{Size: 192})
	dst := image.NewRGBA(image.Rect(0, 0, FaviconSize, FaviconSize))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	path := filepath.Join(app.StaticDir, FaviconName)
	var buf bytes.Buffer
	if err := ico.Encode(&buf, dst); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	app.logger().Infof("favicon", "wrote %s (%dx%d)", path, FaviconSize, FaviconSize)
	return nil
}
