package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/dirtop/internal/dirtop"
	"github.com/idelchi/dirtop/internal/render"
)

// streams holds the outputs of a scan and how to tell whether they are terminals.
type streams struct {
	out        io.Writer
	err        io.Writer
	isTerminal func(io.Writer) bool
}

// stdStreams returns the process standard output and error.
func stdStreams() streams {
	return streams{out: os.Stdout, err: os.Stderr, isTerminal: isTerminal}
}

func logic(ctx context.Context, options dirtop.Options, std streams) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger(std.err, options.Debug, std.isTerminal(std.err))
	ctx = logger.WithContext(ctx)

	if options.Lines == 0 {
		options.Lines = detectLines(std.out, std.isTerminal)
	}

	walker := dirtop.FastWalker{Depth: options.Depth, DirSize: options.DirSize}

	switch options.Output {
	case "json":
		stats, err := dirtop.Run(ctx, options, walker, nil)
		if err != nil {
			return err
		}

		return PrintJSON(stats, std.out)
	case "table":
		stats, err := dirtop.Run(ctx, options, walker, nil)
		if err != nil {
			return err
		}

		return PrintTable(stats, std.out)
	case "live":
		// Debug output would tear the viewport apart
		if options.Debug {
			options.Interval = 0
		}

		view := render.New(std.out, options.Lines)

		if options.Interval > 0 && std.isTerminal(std.out) {
			// Hide cursor for in-place updates; restore on exit.
			view.HideCursor()
			defer view.ShowCursor()
		}

		_, err := dirtop.Run(ctx, options, walker, view)

		return err
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
