// Package watch re-runs a callback whenever the project tree changes,
// debouncing bursts of filesystem events. It backs verify's --watch flag.
package watch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/harrison/repoaudit/internal/ignore"
)

// Run watches root (and every non-ignored subdirectory) and invokes onChange
// after events have been quiet for the debounce interval. It blocks until
// done is closed. Newly created directories are added to the watch as they
// appear.
func Run(root string, rules ignore.Rules, debounce time.Duration, done <-chan struct{}, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addRecursive(watcher, root, rules); err != nil {
		return err
	}

	// Drained timer so the first Reset arms it cleanly.
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-done:
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if !rules.Dir(filepath.Base(event.Name)) {
						_ = addRecursive(watcher, event.Name, rules)
					}
				}
			}
			timer.Reset(debounce)

		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			// Watch errors are non-fatal; the next scan reflects reality.

		case <-timer.C:
			onChange()
		}
	}
}

// addRecursive registers dir and every non-ignored directory beneath it.
func addRecursive(watcher *fsnotify.Watcher, dir string, rules ignore.Rules) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, skip
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && rules.Dir(d.Name()) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}
