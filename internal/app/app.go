package app

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/solodev/pwaicons/internal/icon"
)

// App generates the PWA icon set and its companions (favicon, contact sheet,
// framebuffer preview).
type App struct {
	StaticDir string
	Favicon   bool
	Out       io.Writer
	Logger    Logger

	// Render draws one icon. Defaults to icon.Render.
	Render func(size int, maskable bool) *image.RGBA
}

func New(cfg Config, out io.Writer) *App {
	return &App{
		StaticDir: cfg.StaticDir,
		Favicon:   cfg.Favicon,
		Out:       out,
		Logger:    NoopLogger{},
		Render:    icon.Render,
	}
}

func (app *App) render(t Target) *image.RGBA {
	if app.Render == nil {
		return icon.Render(t.Size, t.Maskable)
	}
	return app.Render(t.Size, t.Maskable)
}

func (app *App) logger() Logger {
	if app.Logger == nil {
		return NoopLogger{}
	}
	return app.Logger
}

func (app *App) out() io.Writer {
	if app.Out == nil {
		return io.Discard
	}
	return app.Out
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
