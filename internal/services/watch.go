package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"workflow-planner/internal/helpers"
)

// DefaultDebounce groups the burst of events editors emit on save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher calls a handler whenever one file changes.
type Watcher struct {
	path     string
	debounce time.Duration
}

// NewWatcher creates a watcher for path
func NewWatcher(path string, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{path: filepath.Clean(path), debounce: debounce}
}

// isRelevant reports whether the event rewrites the watched file. The
// directory is watched, so editors that save by rename still count.
func isRelevant(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// Run blocks until ctx is done, calling onChange after each settled change.
// Handler errors are reported and watching continues.
func (w *Watcher) Run(ctx context.Context, onChange func() error) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}
	helpers.PrintInfo("Watching %s for changes (Ctrl+C to stop)", w.path)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if isRelevant(event, w.path) {
				helpers.PrintDebug("watch event: %s", event)
				timer.Reset(w.debounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			helpers.PrintWarning("Watch error: %v", err)
		case <-timer.C:
			if err := onChange(); err != nil {
				helpers.PrintError("%v", err)
			}
		}
	}
}
