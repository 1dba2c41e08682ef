package niceplots

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchThemeFile loads the theme in path and passes it to fn, then does
// so again whenever the file is written or replaced, until ctx is done.
// Load errors go to fn as well and do not stop the watch. The error
// returned is from setting up or running the watcher; ctx ending is not
// an error.
func WatchThemeFile(ctx context.Context, path string, fn func(Theme, error)) error {
	path = filepath.Clean(path)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("niceplots: watch %s: %w", path, err)
	}
	defer w.Close()

	// Editors often replace files instead of writing them, so the
	// directory is watched.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("niceplots: watch %s: %w", path, err)
	}

	fn(LoadThemeFile(path))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				fn(LoadThemeFile(path))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("niceplots: watch %s: %w", path, err)
		}
	}
}
