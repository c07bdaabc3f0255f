package patterns

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads an external patterns file when it changes on disk and
// atomically swaps the active QueryService. Intended for local authoring of
// a custom library; the bundled embedded library never changes and needs no
// watcher.
//
// A reload that fails validation is logged and discarded; the previously
// loaded library stays active.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	logger  *slog.Logger
	current atomic.Pointer[QueryService]

	debounce time.Duration
	timerMu  sync.Mutex
	timer    *time.Timer

	stopChan chan struct{}
	stopped  bool
	mu       sync.Mutex
}

// DefaultDebounce groups rapid editor write events into one reload.
const DefaultDebounce = 200 * time.Millisecond

// NewWatcher loads path once and prepares a watcher over it.
// The initial load must succeed; later reloads may fail without effect.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	qs, err := LoadAndQuery(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fsw,
		path:     path,
		logger:   logger,
		debounce: DefaultDebounce,
		stopChan: make(chan struct{}),
	}
	w.current.Store(qs)
	return w, nil
}

// Query returns the currently active QueryService.
// Safe for concurrent use; the returned value is immutable.
func (w *Watcher) Query() *QueryService {
	return w.current.Load()
}

// Start begins watching the patterns file. Safe to call once.
func (w *Watcher) Start() error {
	// Watch the parent directory: editors replace files via rename, which
	// drops a watch on the file itself.
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}

	w.logger.Info("patterns watcher started", "path", w.path)
	go w.eventLoop()
	return nil
}

// Stop stops the watcher. Safe to call multiple times (idempotent).
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.stopChan)

	w.timerMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timerMu.Unlock()

	err := w.watcher.Close()
	w.logger.Info("patterns watcher stopped")
	return err
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("patterns watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.logger.Debug("patterns file event", "op", event.Op.String(), "file", event.Name)
	w.debounceReload()
}

func (w *Watcher) debounceReload() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		if err := w.Reload(); err != nil {
			w.logger.Warn("patterns reload failed, keeping previous library", "error", err)
		}
	})
}

// Reload re-reads the patterns file and swaps the active QueryService if the
// new content validates.
func (w *Watcher) Reload() error {
	qs, err := LoadAndQuery(w.path)
	if err != nil {
		return err
	}
	w.current.Store(qs)
	w.logger.Info("patterns reloaded", "path", w.path, "patterns", len(qs.Library.Patterns))
	return nil
}
