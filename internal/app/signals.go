package app

import (
	"os"
	"os/signal"
)

var exitProcess = os.Exit

// watchSignals restores the terminal and exits when the process is asked to
// terminate while the pager is on screen. The returned func stops watching.
func (app *Application) watchSignals() func() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, terminationSignals()...)
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-ch:
			app.debug.printf("signal %v", sig)
			_ = app.screen.Restore()
			exitProcess(1)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}
