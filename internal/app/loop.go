package app

import (
	"errors"
	"fmt"

	"github.com/kk-code-lab/lessnt/internal/ui/canvas"
	"github.com/kk-code-lab/lessnt/internal/ui/input"
)

// Run enters the terminal display mode, runs the draw/input loop until quit,
// and restores the terminal on every way out, panics included.
func (app *Application) Run() (err error) {
	if err := app.screen.Enter(); err != nil {
		return fmt.Errorf("preparing terminal: %w", err)
	}
	stopSignals := app.watchSignals()
	defer stopSignals()
	defer func() {
		_ = app.out.Flush()
		if rerr := app.screen.Restore(); rerr != nil && err == nil {
			err = fmt.Errorf("restoring terminal: %w", rerr)
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			_ = app.out.Flush()
			_ = app.screen.Restore()
			panic(r)
		}
	}()

	return app.loop()
}

func (app *Application) loop() error {
	redraw := true
	for {
		if redraw {
			if err := app.draw(); err != nil {
				return err
			}
		}

		ev, err := app.input.Next()
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		app.debug.printf("event %s", ev)

		redraw = true
		switch ev {
		case input.EventQuit:
			return nil
		case input.EventScrollDown:
			err = app.pager.ScrollDown()
		case input.EventScrollUp:
			err = app.pager.ScrollUp()
		default:
			redraw = false
		}
		if err != nil {
			return err
		}
	}
}

// draw composes and writes one frame. A frame whose composition runs out of
// bounds is dropped; the previous frame stays on screen.
func (app *Application) draw() error {
	if err := app.composer.Compose(app.canvas, app.pager); err != nil {
		var bounds *canvas.BoundsError
		if errors.As(err, &bounds) {
			app.debug.printf("frame dropped: %v", err)
			return nil
		}
		return err
	}
	if err := app.frame.Draw(app.out, app.canvas); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return app.out.Flush()
}
