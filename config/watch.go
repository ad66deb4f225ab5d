package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// OverrideWatcher signals when an override file is written. It never touches
// the configuration itself; the game loop reloads on its own goroutine.
type OverrideWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	changed chan struct{}
	done    chan struct{}
}

// WatchOverrides starts watching path until ctx is done or Close is called.
// The parent directory is watched since editors often replace files on save.
func WatchOverrides(ctx context.Context, path string) (*OverrideWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	ow := &OverrideWatcher{
		path:    abs,
		watcher: w,
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go ow.run(ctx)
	return ow, nil
}

func (ow *OverrideWatcher) run(ctx context.Context) {
	defer close(ow.done)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ow.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != ow.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			// Coalesce: one pending signal covers any number of writes
			select {
			case ow.changed <- struct{}{}:
			default:
			}
		case err, ok := <-ow.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[config] watch error: %v", err)
		}
	}
}

// Changed receives a value after the file was written.
func (ow *OverrideWatcher) Changed() <-chan struct{} {
	return ow.changed
}

// Close stops the watcher and waits for its goroutine to exit.
func (ow *OverrideWatcher) Close() error {
	err := ow.watcher.Close()
	<-ow.done
	return err
}
