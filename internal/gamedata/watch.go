// Package gamedata copies canonical content into the game engine's data directory.
package gamedata

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/radovskyb/watcher"
	"golang.org/x/sync/errgroup"
)

// SyncFunc is called after every sync performed by Watch
type SyncFunc func(*Result, error)

// Watch syncs once, then polls opts.SourceDir every interval and syncs again
// whenever a file under it is written, created, removed or renamed. It blocks
// until ctx is cancelled or the watcher fails.
func Watch(ctx context.Context, opts Options, interval time.Duration, reporter Reporter, onSync SyncFunc) error {
	if interval <= 0 {
		return fmt.Errorf("watch interval must be positive, got %s", interval)
	}

	result, err := Sync(opts, reporter)
	if onSync != nil {
		onSync(result, err)
	}
	if err != nil {
		return err
	}

	w := watcher.New()
	// one resync per polling cycle no matter how many files changed
	w.SetMaxEvents(1)
	w.FilterOps(watcher.Write, watcher.Create, watcher.Remove, watcher.Rename, watcher.Move)
	if err := w.AddRecursive(opts.SourceDir); err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)

	// Polling loop; returns once the watcher is closed
	g.Go(func() error {
		if err := w.Start(interval); err != nil {
			return fmt.Errorf("watcher failed: %w", err)
		}
		return nil
	})

	// Resync loop
	g.Go(func() error {
		w.Wait()
		for {
			select {
			case <-gCtx.Done():
				stopWatcher(w)
				return nil
			case event := <-w.Event:
				slog.Debug("content changed", "op", event.Op.String(), "path", event.Path)
				result, err := Sync(opts, reporter)
				if onSync != nil {
					onSync(result, err)
				}
			case err := <-w.Error:
				slog.Warn("watcher error", "error", err)
			}
		}
	})

	return g.Wait()
}

// stopWatcher closes w while draining the channels its polling loop may be
// blocked sending on.
func stopWatcher(w *watcher.Watcher) {
	go w.Close()
	for {
		select {
		case <-w.Event:
		case <-w.Error:
		case <-w.Closed:
			return
		}
	}
}
