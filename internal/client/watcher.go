package client

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// BookmarkWatcher watches the bookmark file for changes. It uses fsnotify on
// the file's parent directory rather than the file itself, so edits that
// replace the file by rename (the save strategy of most editors, and of
// bookmarks.Save) are still observed.
type BookmarkWatcher struct {
	watcher *fsnotify.Watcher
	events  chan struct{}
	errors  chan error
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
	path    string
}

// NewBookmarkWatcher creates a new BookmarkWatcher instance.
// The watcher must be started with Start() before it will emit events.
func NewBookmarkWatcher() (*BookmarkWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &BookmarkWatcher{
		watcher: watcher,
		events:  make(chan struct{}, 16),
		errors:  make(chan error, 4),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching the directory containing path and emits an event
// whenever the bookmark file itself is created, written, renamed, or removed.
func (bw *BookmarkWatcher) Start(path string) error {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.running {
		return fmt.Errorf("watcher already running")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve bookmark path %s: %w", path, err)
	}
	bw.path = abs

	if err := bw.watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", filepath.Dir(abs), err)
	}

	bw.running = true
	bw.wg.Add(1)
	go bw.processEvents()

	return nil
}

// Stop stops watching and cleans up resources. It blocks until the event
// processing goroutine has exited.
func (bw *BookmarkWatcher) Stop() error {
	bw.mu.Lock()
	if !bw.running {
		bw.mu.Unlock()
		return nil
	}
	bw.running = false
	bw.mu.Unlock()

	close(bw.done)

	if err := bw.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}

	bw.wg.Wait()

	close(bw.events)
	close(bw.errors)

	return nil
}

// Events returns the channel that signals bookmark file changes.
// This channel is closed when the watcher is stopped.
func (bw *BookmarkWatcher) Events() <-chan struct{} {
	return bw.events
}

// Errors returns the channel that emits watcher errors.
// This channel is closed when the watcher is stopped.
func (bw *BookmarkWatcher) Errors() <-chan error {
	return bw.errors
}

func (bw *BookmarkWatcher) processEvents() {
	defer bw.wg.Done()

	for {
		select {
		case <-bw.done:
			return

		case event, ok := <-bw.watcher.Events:
			if !ok {
				return
			}

			if !bw.relevant(event) {
				continue
			}

			select {
			case bw.events <- struct{}{}:
			case <-bw.done:
				return
			default:
				// an unconsumed signal is already pending; coalesce
			}

		case err, ok := <-bw.watcher.Errors:
			if !ok {
				return
			}

			select {
			case bw.errors <- err:
			case <-bw.done:
				return
			}
		}
	}
}

// relevant reports whether event concerns the watched bookmark file.
// Chmod-only events are ignored.
func (bw *BookmarkWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != filepath.Base(bw.path) {
		return false
	}

	return event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Rename) ||
		event.Has(fsnotify.Remove)
}
