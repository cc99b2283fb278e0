package app

import (
	"context"
	"time"

	"github.com/k1LoW/errors"
	"github.com/solodev/pwaicons/internal/render"
	"github.com/solodev/pwaicons/internal/system"
)

type PreviewOptions struct {
	// Hold is how long the sheet stays up; zero waits for a key or ctx.
	Hold time.Duration
	// Console switches the VT into graphics mode and hides the cursor while the
	// sheet is shown.
	Console bool
	// WatchKeys leaves the preview on Esc, Q or F4.
	WatchKeys bool
}

// Preview shows the contact sheet on p until the hold time elapses, ctx is done or
// an exit key is pressed. Ending the preview any of these ways is not an error.
func (app *App) Preview(ctx context.Context, p render.Preview, opts PreviewOptions) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	l := app.logger()
	sheet := app.BuildSheet()

	if err := p.Start(ctx); err != nil {
		l.Errorf("preview", "start failed: %v", err)
		return err
	}
	defer func() {
		if err := p.Stop(); err != nil {
			l.Errorf("preview", "stop failed: %v", err)
		}
	}()

	if opts.Console {
		_ = system.SetGraphicsModeWithLog(l)
		_ = system.HideCursorWithLog(l)
		defer func() { _ = system.ShowCursorWithLog(l); _ = system.RestoreTextModeWithLog(l) }()
	}

	if err := p.Show(sheet); err != nil {
		l.Errorf("preview", "show failed: %v", err)
		return err
	}

	var (
		waitCtx context.Context
		cancel  context.CancelFunc
	)
	if opts.Hold > 0 {
		waitCtx, cancel = context.WithTimeout(ctx, opts.Hold)
	} else {
		waitCtx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	if opts.WatchKeys {
		system.StartExitOnKey(waitCtx, l, cancel)
	}
	<-waitCtx.Done()
	l.Infof("preview", "preview closed: %v", context.Cause(waitCtx))
	return nil
}
