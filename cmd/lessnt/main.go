package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	apppkg "github.com/kk-code-lab/lessnt/internal/app"
	"github.com/kk-code-lab/lessnt/internal/config"
	fsutil "github.com/kk-code-lab/lessnt/internal/fs"
)

func printHelp(w io.Writer) {
	fmt.Fprint(w, `lessnt - Terminal file pager

USAGE:
    lessnt [OPTIONS] FILE

OPTIONS:
    -h, --help            Show this help message and exit

KEYS:
    j, Down               Scroll down one row
    k, Up                 Scroll up one row
    q, Ctrl-C             Quit

ENVIRONMENT:
    LESSNT_GUTTER_COLOR   Gutter color (name or #rrggbb)
    LESSNT_TEXT_COLOR     Text color
    LESSNT_STATUS_FG      Status bar foreground
    LESSNT_STATUS_BG      Status bar background
    LESSNT_KEEP_CHUNKS    Chunks kept on each side of the window (0 keeps all)
    LESSNT_DEBUG_LOG      Append debug output to this file
`)
}

var newApplication = func(path string, cfg config.Config) (runner, error) {
	return apppkg.NewApplication(path, cfg, apppkg.Options{})
}

type runner interface {
	Run() error
	Close() error
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Getenv))
}

func run(args []string, stdout io.Writer, getenv func(string) string) int {
	if len(args) == 0 {
		fmt.Fprintln(stdout, "lessnt: missing file argument (see lessnt --help)")
		return 1
	}
	switch args[0] {
	case "-h", "--help":
		printHelp(stdout)
		return 0
	}

	cfg, err := config.Load(getenv)
	if err != nil {
		fmt.Fprintf(stdout, "lessnt: %v\n", err)
		return 1
	}

	app, err := newApplication(args[0], cfg)
	if err != nil {
		var openErr *fsutil.OpenError
		if errors.As(err, &openErr) {
			fmt.Fprintf(stdout, "lessnt: %v\n", openErr)
		} else {
			fmt.Fprintf(stdout, "lessnt: error initializing: %v\n", err)
		}
		return 1
	}
	defer func() {
		_ = app.Close()
	}()

	if err := app.Run(); err != nil {
		fmt.Fprintf(stdout, "lessnt: %v\n", err)
		return 1
	}
	return 0
}
