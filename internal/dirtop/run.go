package dirtop

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// DefaultInterval is the default interval between live refreshes.
const DefaultInterval = 200 * time.Millisecond

// Renderer displays the current largest directories.
type Renderer interface {
	// Init reserves display space. It is called once, before the first Render.
	Init() error
	// Render redraws the entry counter and the top directories.
	Render(total uint64, top []DirSize) error
}

// scan carries the state of one Run. It is only touched from the walk callback
// and, once the walk has returned, from Run itself.
type scan struct {
	opt    Options
	agg    *Aggregator
	view   Renderer
	tick   <-chan time.Time
	errors int64
	log    *zerolog.Logger
}

// visit records one entry and repaints if the refresh interval has elapsed.
func (s *scan) visit(entry Entry) error {
	if entry.Err != nil {
		s.errors++
		s.log.Debug().Err(entry.Err).Str("path", entry.Path).Msg("skipping unreadable entry")

		return nil
	}

	if !s.agg.RecordEntry(entry.Path, entry.Size, entry.IsDir) {
		s.log.Debug().Str("path", entry.Path).Msg("skipping entry outside root")

		return nil
	}

	select {
	case <-s.tick:
		return s.render()
	default:
		return nil
	}
}

func (s *scan) render() error {
	top := SelectTop(s.agg.Snapshot(), s.opt.Lines, s.opt.NoParent)
	if err := s.view.Render(s.agg.Entries(), top); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	return nil
}

// Run scans opt.Path with walker and returns the final statistics.
//
// If view is non-nil and opt.Interval > 0, view is initialized before the walk
// and repainted whenever the interval has elapsed, checked once per entry.
// With a zero interval, view is initialized and rendered once after the walk.
// A final render always happens when view is non-nil.
//
// The walk can be cancelled via ctx.
func Run(ctx context.Context, opt Options, walker Walker, view Renderer) (*Result, error) {
	if opt.Path == "" {
		opt.Path = "."
	}

	opt.Path = filepath.Clean(opt.Path)

	// validate path exists and is accessible
	if statInfo, err := os.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", opt.Path)
	}

	if opt.Lines <= 0 {
		opt.Lines = DefaultLines
	}

	log := zerolog.Ctx(ctx)
	log.Debug().
		Str("path", opt.Path).
		Dur("interval", opt.Interval).
		Int("lines", opt.Lines).
		Bool("no_parent", opt.NoParent).
		Int("depth", opt.Depth).
		Msg("starting scan")

	s := &scan{
		opt:  opt,
		agg:  NewAggregator(opt.Path),
		view: view,
		log:  log,
	}

	live := view != nil && opt.Interval > 0

	if live {
		if err := view.Init(); err != nil {
			return nil, fmt.Errorf("initializing view: %w", err)
		}

		ticker := time.NewTicker(opt.Interval)
		defer ticker.Stop()

		s.tick = ticker.C
	}

	start := time.Now()

	if err := walker.Walk(ctx, opt.Path, s.visit); err != nil {
		return nil, err
	}

	if view != nil {
		if !live {
			if err := view.Init(); err != nil {
				return nil, fmt.Errorf("initializing view: %w", err)
			}
		}

		if err := s.render(); err != nil {
			return nil, err
		}
	}

	root, _ := s.agg.Size(opt.Path)

	top := SelectTop(s.agg.Snapshot(), opt.Lines, opt.NoParent)
	// Convert all paths to slash format for display
	for i := range top {
		top[i].Path = filepath.ToSlash(top[i].Path)
	}

	result := &Result{
		Root:        filepath.ToSlash(opt.Path),
		Entries:     s.agg.Entries(),
		Directories: s.agg.Len(),
		TotalBytes:  root,
		Errors:      s.errors,
		Top:         top,
		Elapsed:     time.Since(start),
		Lines:       opt.Lines,
	}

	log.Debug().
		Uint64("entries", result.Entries).
		Int("directories", result.Directories).
		Uint64("bytes", result.TotalBytes).
		Int64("errors", result.Errors).
		Dur("elapsed", result.Elapsed).
		Msg("scan complete")

	return result, nil
}
