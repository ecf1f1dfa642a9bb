package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"rustgen/manifest"
)

// DefaultDebounce is how long the watcher waits after the last manifest
// change before re-running generation.
const DefaultDebounce = 250 * time.Millisecond

// Watcher re-runs a generation pass when manifests change on disk.
type Watcher struct {
	fw       *fsnotify.Watcher
	debounce time.Duration
	run      func(context.Context) error
	logf     func(format string, args ...any)

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher builds a watcher around the run callback. debounce <= 0 falls
// back to DefaultDebounce, logf may be nil to discard diagnostics.
func NewWatcher(debounce time.Duration, run func(context.Context) error, logf func(string, ...any)) (*Watcher, error) {
	if run == nil {
		return nil, fmt.Errorf("missing run callback")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fs watcher: %w", err)
	}
	return &Watcher{fw: fw, debounce: debounce, run: run, logf: logf}, nil
}

// Close releases the underlying fs watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fw.Close()
}

// Watch blocks, dispatching debounced runs until ctx ends or the watcher is
// closed. Ошибка run останавливает наблюдение; сбои самого fsnotify только
// логируются.
func (w *Watcher) Watch(ctx context.Context, dirs []string) error {
	for _, dir := range dirs {
		if err := w.fw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if !isManifestChange(event) {
				continue
			}
			w.schedule(fire)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			w.logf("watch error: %v", err)
		case <-fire:
			if err := w.run(ctx); err != nil {
				return err
			}
		}
	}
}

// schedule перезапускает таймер: серия быстрых правок даёт один прогон.
func (w *Watcher) schedule(fire chan<- struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case fire <- struct{}{}:
		default:
		}
	})
}

// isManifestChange reports whether the event touches a manifest file.
func isManifestChange(event fsnotify.Event) bool {
	if !strings.HasSuffix(event.Name, manifest.Extension) {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0
}
