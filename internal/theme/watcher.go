package theme

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the active theme file for changes and rebuilds it.
// Rebuilt themes go to the change callback, not into the shared Theme:
// the receiver installs them on its own painting goroutine. Only user
// themes have a file to watch; starting a watcher while a bundled theme
// is active is a no-op.
type Watcher struct {
	watcher  *fsnotify.Watcher
	loader   *Loader
	logger   *slog.Logger
	onChange func(Theme)
	done     chan struct{}
	mu       sync.Mutex
	running  bool
}

// NewWatcher creates a watcher for the loader's current theme file.
func NewWatcher(loader *Loader, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher: watcher,
		loader:  loader,
		logger:  logger,
		done:    make(chan struct{}),
	}, nil
}

// SetChangeCallback sets the callback invoked with the rebuilt theme
// after a file change. It runs on the watcher goroutine; the receiver is
// responsible for installing the theme where painting happens.
func (w *Watcher) SetChangeCallback(callback func(Theme)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = callback
}

// Start begins watching the theme file for changes.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}

	path := w.loader.ThemePath()
	if path == "" {
		w.mu.Unlock()
		w.logger.Debug("not watching bundled theme")
		return nil
	}

	w.running = true
	w.mu.Unlock()

	// Watch the directory containing the file (more reliable for writes)
	if err := w.watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	go w.watch(path)
	return nil
}

// watch is the main watch loop.
func (w *Watcher) watch(path string) {
	filename := filepath.Base(path)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filename {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.logger.Debug("theme file changed, rebuilding", "file", path)
				t, changed, err := w.loader.Rebuild()
				if err != nil {
					w.logger.Warn("failed to rebuild theme", "error", err)
					continue
				}
				if changed {
					w.mu.Lock()
					callback := w.onChange
					w.mu.Unlock()
					if callback != nil {
						callback(t)
					}
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("theme watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	w.running = false
	close(w.done)
	return w.watcher.Close()
}
