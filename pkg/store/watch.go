package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchQuiet = 100 * time.Millisecond

// Event is emitted by Local.Watch when the cache slot changes on disk.
type Event struct {
	Path string
}

// Watch streams change events for the cache slot until ctx is cancelled.
// Bursts of writes are coalesced into one event. The channel is closed once
// ctx is done or the watcher fails.
func (l *Local) Watch(ctx context.Context) (<-chan Event, error) {
	if l == nil || l.basePath == "" {
		return nil, errors.New("store: local cache base path unknown")
	}
	if err := os.MkdirAll(l.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	// The slot may not exist yet, so watch its directory.
	if err := watcher.Add(l.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", l.basePath, err)
	}

	target := filepath.Clean(l.Path())
	events := make(chan Event, 1)

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				l.logger.Debug("watcher close", "err", err)
			}
		}()

		// A burst of writes arms the timer once; the event goes out when it
		// fires.
		quiet := time.NewTimer(time.Hour)
		quiet.Stop()
		defer quiet.Stop()
		armed := false

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				l.logger.Debug("watcher error", "err", err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != target {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				if !armed {
					quiet.Reset(watchQuiet)
					armed = true
				}
			case <-quiet.C:
				armed = false
				select {
				case events <- Event{Path: target}:
				default:
					// One undelivered event already covers this change.
				}
			}
		}
	}()

	return events, nil
}
