package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"

	"go.trai.ch/mate/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

// skipDirectories are directory names that never contain build inputs.
var skipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

const eventBuffer = 64

// Watcher watches a directory tree recursively using fsnotify.
// Subdirectories created while watching are picked up as they appear.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	events    chan ports.WatchEvent
}

// New creates a Watcher.
func New(log ports.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file system watcher")
	}

	return &Watcher{
		fsWatcher: fsw,
		logger:    log,
		events:    make(chan ports.WatchEvent, eventBuffer),
	}, nil
}

// Start begins watching root and every directory below it. Events are
// delivered through Events until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context, root string) error {
	for dir := range directoriesUnder(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to watch directory"), "dir", dir)
		}
	}

	go w.pump(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator over the watch events. The iterator ends when
// the watcher stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// pump converts raw fsnotify events and forwards them until the context is
// cancelled or the underlying watcher closes.
func (w *Watcher) pump(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			converted, ok := convert(event)
			if !ok {
				continue
			}

			select {
			case w.events <- converted:
			case <-ctx.Done():
				return
			}

			if converted.Operation == ports.OpCreate {
				w.watchNewDirectory(event.Name)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Error(zerr.Wrap(err, "file system watcher error"))
		}
	}
}

// watchNewDirectory adds a freshly created directory, and anything already
// nested inside it, to the watch set.
func (w *Watcher) watchNewDirectory(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || skipDirectories[info.Name()] {
		return
	}

	for dir := range directoriesUnder(path) {
		_ = w.fsWatcher.Add(dir)
	}
}

// directoriesUnder yields root and every watchable directory below it.
// Unreadable directories are skipped rather than failing the walk.
func directoriesUnder(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable entries are skipped
			}

			if !d.IsDir() {
				return nil
			}

			if skipDirectories[d.Name()] {
				return fs.SkipDir
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// convert maps an fsnotify event onto the ports event type. Events that
// carry none of the interesting operations are dropped.
func convert(event fsnotify.Event) (ports.WatchEvent, bool) {
	switch {
	case event.Op.Has(fsnotify.Write):
		return ports.WatchEvent{Path: event.Name, Operation: ports.OpWrite}, true
	case event.Op.Has(fsnotify.Create):
		return ports.WatchEvent{Path: event.Name, Operation: ports.OpCreate}, true
	case event.Op.Has(fsnotify.Remove):
		return ports.WatchEvent{Path: event.Name, Operation: ports.OpRemove}, true
	case event.Op.Has(fsnotify.Rename):
		return ports.WatchEvent{Path: event.Name, Operation: ports.OpRename}, true
	}

	return ports.WatchEvent{}, false
}
