package config

import (
	"context"
	"path/filepath"

	"github.com/docdyhr/mcp-wordpress-sub011/pkg/logging"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes the config file for on-disk changes. The loaded
// configuration stays immutable for the process lifetime, so a change is
// only surfaced as a restart-required notice in the log.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given config file path.
func NewWatcher(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the containing directory: editors replace files on save, which
	// would otherwise drop a watch set on the file itself.
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return &Watcher{path: path, watcher: fsWatcher}, nil
}

// Start runs the watch loop until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	defer w.watcher.Close()

	target := filepath.Clean(w.path)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				logging.Warn("Config", "Configuration file %s changed on disk; restart the server to apply", w.path)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Error("Config", err, "Config watcher error")
		}
	}
}
