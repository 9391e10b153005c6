package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 300 * time.Millisecond

// fileWatcher reports settled changes to one file. It watches the parent
// directory so that editors which save by rename are still seen.
type fileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
}

func newFileWatcher(path string, debounce time.Duration) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &fileWatcher{watcher: w, path: abs, debounce: debounce}, nil
}

// run calls onChange once the file has been quiet for the debounce window
// after a create, write or rename. It returns when ctx is done and closes
// the underlying watcher.
func (fw *fileWatcher) run(ctx context.Context, onChange func(context.Context)) error {
	defer fw.watcher.Close()
	logger := loggerFromContext(ctx)

	tick := time.NewTicker(max(fw.debounce/4, 10*time.Millisecond))
	defer tick.Stop()

	var pending time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("Deck changed", "path", event.Name, "op", event.Op.String())
			pending = time.Now()

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watch error", "err", err)

		case <-tick.C:
			if !pending.IsZero() && time.Since(pending) >= fw.debounce {
				pending = time.Time{}
				onChange(ctx)
			}
		}
	}
}
