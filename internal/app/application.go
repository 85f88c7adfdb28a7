package app

import (
	"bufio"
	"io"
	"os"

	"github.com/kk-code-lab/lessnt/internal/config"
	fsutil "github.com/kk-code-lab/lessnt/internal/fs"
	"github.com/kk-code-lab/lessnt/internal/term"
	"github.com/kk-code-lab/lessnt/internal/ui/canvas"
	"github.com/kk-code-lab/lessnt/internal/ui/input"
	pagerpkg "github.com/kk-code-lab/lessnt/internal/ui/pager"
	"github.com/kk-code-lab/lessnt/internal/ui/render"
	"github.com/kk-code-lab/lessnt/internal/ui/view"
)

// Screen is the terminal mode switch used around the draw loop.
type Screen interface {
	Enter() error
	Restore() error
}

// Options overrides the process streams, mainly for tests. Zero values mean
// stdin, stdout and the real terminal.
type Options struct {
	In     io.Reader
	Out    io.Writer
	Screen Screen
}

// Application represents the running pager.
type Application struct {
	cfg      config.Config
	file     *fsutil.TextFile
	pager    *pagerpkg.Pager
	canvas   *canvas.Canvas
	frame    *render.Frame
	composer *view.Composer
	input    *input.Decoder
	out      *bufio.Writer
	screen   Screen
	debug    *debugLog
}

// NewApplication opens path and loads its first page. Nothing on the terminal
// changes until Run.
func NewApplication(path string, cfg config.Config, opts Options) (*Application, error) {
	if err := cfg.Geometry.Validate(); err != nil {
		return nil, err
	}

	file, err := fsutil.Open(path)
	if err != nil {
		return nil, err
	}

	debug := newDebugLog(cfg.DebugLog)
	debug.printf("open %s encoding=%s", path, file.Encoding)

	var eviction pagerpkg.EvictionPolicy
	if cfg.KeepChunks > 0 {
		eviction = pagerpkg.KeepWindow(cfg.KeepChunks)
	}
	geom := cfg.Geometry
	pg, err := pagerpkg.New(file, pagerpkg.Options{
		BodyHeight:   geom.BodyHeight(),
		ContentWidth: geom.ContentWidth(),
		NewDecoder:   file.Encoding.NewDecoder,
		Eviction:     eviction,
	})
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	debug.printf("rows=%d chunks=%d", pg.TotalLines(), pg.TotalChunks())

	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	screen := opts.Screen
	if screen == nil {
		screen = term.New(int(os.Stdin.Fd()), out)
	}

	return &Application{
		cfg:      cfg,
		file:     file,
		pager:    pg,
		canvas:   canvas.New(geom.Rows, geom.Cols),
		frame:    render.NewFrame(geom.Rows, geom.Cols),
		composer: view.NewComposer(cfg, file.Name),
		input:    input.NewDecoder(in),
		out:      bufio.NewWriterSize(out, geom.Rows*geom.Cols*4),
		screen:   screen,
		debug:    debug,
	}, nil
}

// Close releases the file.
func (app *Application) Close() error {
	if app.file == nil {
		return nil
	}
	err := app.file.Close()
	app.file = nil
	return err
}

// Position reports the pager window, for status reporting and tests.
func (app *Application) Position() (chunk, offset int) {
	return app.pager.Position()
}
