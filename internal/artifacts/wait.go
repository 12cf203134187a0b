package artifacts

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultRescanInterval is the poll fallback used when filesystem events are
// quiet or unavailable (network volumes often deliver none).
const DefaultRescanInterval = 10 * time.Second

// Wait blocks until every path exists. It rescans on filesystem events in the
// paths' parent directories and on a fixed interval fallback. notify, when
// set, is called with the currently missing set each time it changes. Returns
// nil once all paths exist, or ctx.Err() on cancellation/timeout.
func Wait(ctx context.Context, paths []string, interval time.Duration, notify func(missing []string)) error {
	if interval <= 0 {
		interval = DefaultRescanInterval
	}

	watcher, err := fsnotify.NewWatcher()
	if err == nil {
		defer watcher.Close()
		seen := map[string]struct{}{}
		for _, p := range paths {
			dir := filepath.Dir(p)
			if _, ok := seen[dir]; ok {
				continue
			}
			seen[dir] = struct{}{}
			// Unwatchable dirs (volume not mounted yet) fall back to polling.
			_ = watcher.Add(dir)
		}
	}

	var (
		events <-chan fsnotify.Event
		errs   <-chan error
	)
	if watcher != nil {
		events = watcher.Events
		errs = watcher.Errors
	}
	return waitLoop(ctx, paths, interval, events, errs, notify)
}

func waitLoop(ctx context.Context, paths []string, interval time.Duration, events <-chan fsnotify.Event, errs <-chan error, notify func(missing []string)) error {
	last := -1
	for {
		missing := Missing(paths)
		if len(missing) == 0 {
			return nil
		}
		if notify != nil && len(missing) != last {
			notify(missing)
			last = len(missing)
		}
		select {
		case <-events:
		case <-errs:
			// Watcher trouble must not stall the loop; the rescan below
			// covers whatever event was lost.
		case <-time.After(interval):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
