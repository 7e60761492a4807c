package source

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/grindlemire/go-table/internal/debug"
)

// Watcher reports changes to a single file. Bursts of writes are coalesced:
// Changes holds at most one pending notification.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	changes chan struct{}
	errors  chan error
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching the file at path. The containing directory is
// watched so that editors replacing the file are noticed too.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("source: creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("source: watching %s: %w", path, err)
	}

	w := &Watcher{
		watcher: fw,
		path:    abs,
		changes: make(chan struct{}, 1),
		errors:  make(chan error, 10),
		done:    make(chan struct{}),
	}
	go w.watch()
	return w, nil
}

func (w *Watcher) watch() {
	defer close(w.changes)
	defer close(w.errors)

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debug.Log("source: %s %s", ev.Op, ev.Name)
			select {
			case w.changes <- struct{}{}:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			case <-w.done:
				return
			}
		}
	}
}

// Changes delivers a value after the file changed. It is closed when the
// watcher stops.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Errors delivers errors reported by the file system.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Run calls reload after every change until ctx is done, the watcher is
// closed or reload fails. File system errors end the loop.
func (w *Watcher) Run(ctx context.Context, reload func() error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-w.changes:
			if !ok {
				return nil
			}
			if err := reload(); err != nil {
				return err
			}
		case err, ok := <-w.errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("source: watching %s: %w", w.path, err)
		}
	}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}
