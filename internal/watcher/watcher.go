package watcher

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of writes into a single event.
const DefaultDebounce = 250 * time.Millisecond

// Event signals that the watched file changed and should be reprocessed.
type Event struct {
	Path string
	Op   fsnotify.Op
}

// Watcher reports changes to a single file using OS-level notifications.
// The parent directory is watched so the file can be deleted, rotated or
// replaced by an atomic rename without losing the watch.
type Watcher struct {
	fsw      *fsnotify.Watcher
	Events   chan Event
	path     string
	debounce time.Duration
}

// New creates a Watcher for path. A non-positive debounce uses DefaultDebounce.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("cannot watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		fsw:      fsw,
		Events:   make(chan Event, 1),
		path:     abs,
		debounce: debounce,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Start begins listening for file events. It blocks until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	defer w.fsw.Close()
	defer close(w.Events)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	var last fsnotify.Op
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			// Only content changes and (re)appearance trigger a rerun.
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			last = ev.Op
			timer.Reset(w.debounce)
		case <-timer.C:
			select {
			case w.Events <- Event{Path: w.path, Op: last}:
			case <-ctx.Done():
				return
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("watcher error: %v", err)
		}
	}
}
