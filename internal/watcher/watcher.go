// Package watcher provides file system watching for re-running a clustering
// batch when its input file changes.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watcher monitors one input file and calls onChange after its content
// settles. It watches the parent directory, so editors that replace the
// file atomically (write to a temp file, rename over the target) are still
// observed.
type Watcher struct {
	targetPath string // the input file
	parentPath string // parent directory (what we actually watch)
	onChange   func()
	watcher    *fsnotify.Watcher
	ctx        context.Context
	cancel     context.CancelFunc
	mu         sync.Mutex
	running    bool
	debounce   time.Duration
}

// New creates a Watcher for the given input file. The onChange callback
// runs after writes to the file have settled for the debounce window.
func New(targetPath string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(targetPath)
	if err != nil {
		fsw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Watcher{
		targetPath: abs,
		parentPath: filepath.Dir(abs),
		onChange:   onChange,
		watcher:    fsw,
		ctx:        ctx,
		cancel:     cancel,
		debounce:   200 * time.Millisecond,
	}, nil
}

// Start begins watching for input changes.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.addWatch(); err != nil {
		return err
	}

	go w.watchLoop()
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	w.running = false
	w.cancel()
	return w.watcher.Close()
}

// addWatch adds the parent directory to the watch list.
func (w *Watcher) addWatch() error {
	if _, err := os.Stat(w.parentPath); err != nil {
		return err
	}
	return w.watcher.Add(w.parentPath)
}

// watchLoop is the main event loop.
func (w *Watcher) watchLoop() {
	var debounceTimer *time.Timer

	for {
		select {
		case <-w.ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != w.targetPath {
				continue
			}
			// Create covers atomic replacement, where the target is
			// recreated by a rename.
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			log.Debug().
				Str("path", w.targetPath).
				Str("op", event.Op.String()).
				Msg("Input file changed")

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounce, w.fire)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("Watcher error")
		}
	}
}

// fire calls the onChange callback after the debounce window.
func (w *Watcher) fire() {
	log.Info().Str("path", w.targetPath).Msg("Input settled, re-running batch")
	if w.onChange != nil {
		w.onChange()
	}
}
