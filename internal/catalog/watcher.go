package catalog

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the override snapshot whenever the file changes, until ctx
// is cancelled. The initial load happens before watching starts so a bad
// snapshot is reported at startup rather than on first change.
func (c *Catalog) Watch(ctx context.Context, path string) error {
	if err := c.LoadOverride(path); err != nil {
		return err
	}
	log.Printf("Canonical table override loaded from %s (%d entries)", path, c.Len())

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	// Watch the directory, not the file: editors and atomic writes replace
	// the inode and would silently detach a file-level watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		target := filepath.Clean(path)

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				// Small delay so the writer finishes before we read.
				time.Sleep(100 * time.Millisecond)

				if err := c.LoadOverride(path); err != nil {
					log.Printf("Override snapshot reload failed, keeping current table: %v", err)
					continue
				}
				log.Printf("Canonical table override reloaded (%d entries)", c.Len())

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Override snapshot watcher error: %v", err)
			}
		}
	}()

	return nil
}
