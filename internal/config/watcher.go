package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadEvent signals that the watched config file changed on disk.
type ReloadEvent struct {
	Path string
	Time time.Time
}

// Watcher monitors the config file for changes so the demo can hot-reload
// its tab set and theme without restarting.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

// NewWatcher creates a watcher for the config file at path. The parent
// directory is watched rather than the file itself, since editors typically
// replace files via rename and would otherwise orphan the watch.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch directory %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		path:     path,
		watcher:  fsw,
		debounce: 100 * time.Millisecond,
	}, nil
}

// Watch starts watching and returns a channel of reload events. Cancelling
// the context stops watching. The returned channel is closed when the
// context is cancelled or the watcher encounters a fatal error.
func (w *Watcher) Watch(ctx context.Context) <-chan ReloadEvent {
	out := make(chan ReloadEvent, 8)

	go func() {
		defer close(out)

		// Debounce timer to coalesce rapid filesystem events; a single
		// save can produce several writes plus a rename.
		var debounceTimer *time.Timer
		pending := false

		resetDebounce := func() {
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(w.debounce)
		}

		// Initialize a stopped timer.
		debounceTimer = time.NewTimer(0)
		if !debounceTimer.Stop() {
			<-debounceTimer.C
		}

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != filepath.Base(w.path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				pending = true
				resetDebounce()

			case <-debounceTimer.C:
				if !pending {
					continue
				}
				pending = false
				select {
				case out <- ReloadEvent{Path: w.path, Time: time.Now()}:
				case <-ctx.Done():
					return
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				// Keep watching through transient errors.
				_ = err
			}
		}
	}()

	return out
}

// Close stops watching and cleans up resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
