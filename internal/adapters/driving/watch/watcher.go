// Package watch reruns a conversion whenever its input file changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/kimushu/altera-bootloader/internal/logger"
)

// DefaultInterval is the minimum time between two rebuilds.
const DefaultInterval = 250 * time.Millisecond

// RebuildFunc regenerates the output. Errors are reported and watching
// continues.
type RebuildFunc func(ctx context.Context) error

// Watcher triggers rebuilds for one file.
type Watcher struct {
	path    string
	rebuild RebuildFunc
	limiter *rate.Limiter
	onError func(error)
}

// New creates a watcher for path. interval bounds how often rebuild can
// run; zero selects DefaultInterval. onError receives rebuild and watch
// errors and may be nil.
func New(path string, interval time.Duration, rebuild RebuildFunc, onError func(error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	if onError == nil {
		onError = func(error) {}
	}
	return &Watcher{
		path:    abs,
		rebuild: rebuild,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		onError: onError,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run performs an initial rebuild and then one per batch of changes until
// ctx is cancelled. The parent directory is watched so that editors which
// replace the file by renaming are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	logger.Info("watching %s", w.path)

	w.runRebuild(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.handleFsEvent(event) {
				continue
			}
			if err := w.limiter.Wait(ctx); err != nil {
				// Only fails on cancellation.
				return nil
			}
			drain(fw.Events)
			w.runRebuild(ctx)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.onError(fmt.Errorf("watch error: %w", err))
		}
	}
}

// handleFsEvent reports whether event should trigger a rebuild.
func (w *Watcher) handleFsEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
		logger.Debug("%s: %s", event.Op, event.Name)
		return true
	}
	return false
}

func (w *Watcher) runRebuild(ctx context.Context) {
	if err := w.rebuild(ctx); err != nil && !errors.Is(err, context.Canceled) {
		w.onError(err)
	}
}

// drain discards events already queued so one save triggers one rebuild.
func drain(events <-chan fsnotify.Event) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
