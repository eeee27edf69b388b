package taxonomy

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"resumatch/internal/errors"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a taxonomy file when it changes on disk. Each reload builds
// a fresh Taxonomy and hands it to the callback; a file that fails to parse is
// logged and the previous taxonomy stays in use.
type Watcher struct {
	mu sync.Mutex

	path          string
	lastModTime   time.Time
	lastSize      int64
	fsWatcher     *fsnotify.Watcher
	debounceDelay time.Duration
	debounceTimer *time.Timer

	stopChan   chan struct{}
	reloadChan chan struct{}

	onReload func(*Taxonomy)
	logger   *errors.Logger

	running bool
}

// NewWatcher creates a watcher for path. Call Start to begin watching.
func NewWatcher(path string, debounceDelay time.Duration, onReload func(*Taxonomy), logger *errors.Logger) *Watcher {
	if debounceDelay == 0 {
		debounceDelay = 500 * time.Millisecond
	}
	if logger == nil {
		logger = errors.NewNopLogger()
	}
	return &Watcher{
		path:          path,
		debounceDelay: debounceDelay,
		stopChan:      make(chan struct{}),
		reloadChan:    make(chan struct{}, 1),
		onReload:      onReload,
		logger:        logger,
	}
}

// Start begins watching the taxonomy file and its directory. The directory
// watch catches editors that save by renaming a temp file over the original.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("taxonomy watcher is already running")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		_ = fsw.Close()
		return fmt.Errorf("failed to watch directory %s: %w", filepath.Dir(w.path), err)
	}
	w.fsWatcher = fsw

	if stat, err := os.Stat(w.path); err == nil {
		w.lastModTime, w.lastSize = stat.ModTime(), stat.Size()
	}

	w.running = true
	go w.watchLoop()

	w.logger.Info("Taxonomy file watcher started",
		"file", w.path,
		"debounce_delay", w.debounceDelay)
	return nil
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	close(w.stopChan)
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.running = false

	if err := w.fsWatcher.Close(); err != nil {
		w.logger.LogError(err, "Failed to close taxonomy file watcher")
		return err
	}

	w.logger.Info("Taxonomy file watcher stopped")
	return nil
}

// IsRunning returns whether the watcher is currently running
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if w.shouldProcessEvent(event) {
				w.scheduleReload()
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.LogError(err, "Taxonomy file watcher error")

		case <-w.reloadChan:
			if w.hasFileChanged() {
				w.reload()
			}

		case <-w.stopChan:
			return
		}
	}
}

func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (w *Watcher) hasFileChanged() bool {
	stat, err := os.Stat(w.path)
	if err != nil {
		return false
	}
	if stat.ModTime().Equal(w.lastModTime) && stat.Size() == w.lastSize {
		return false
	}
	w.lastModTime, w.lastSize = stat.ModTime(), stat.Size()
	return true
}

func (w *Watcher) reload() {
	t, err := LoadFile(w.path)
	if err != nil {
		w.logger.LogError(err, "Taxonomy reload failed, keeping previous taxonomy", "file", w.path)
		return
	}
	w.logger.Info("Taxonomy reloaded", "file", w.path, "skills", t.Len())
	w.onReload(t)
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounceDelay, func() {
		select {
		case w.reloadChan <- struct{}{}:
		default:
		}
	})
}
