package project

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"executive-assistant/pkg/log"
)

const (
	watchDebounce = 500 * time.Millisecond
	// watchMaxWait bounds how long a burst of writes can postpone a reload.
	watchMaxWait = 2 * time.Second
)

// Watch reloads st whenever its snapshot file is rewritten. The parent
// directory is watched so atomic rename-into-place writes are seen.
// It blocks until ctx is cancelled.
func Watch(ctx context.Context, st *Store, l log.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	target := filepath.Clean(st.Path())
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}
	l.Infof(ctx, "project.Watch: watching %s", target)

	var (
		pending <-chan time.Time
		first   time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			now := time.Now()
			if pending == nil {
				first = now
			}
			pending = time.After(debounceDelay(now.Sub(first)))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			l.Warnf(ctx, "project.Watch: watcher error: %v", err)

		case <-pending:
			pending = nil
			snap, err := st.Reload()
			if err != nil {
				l.Warnf(ctx, "project.Watch: reload failed, keeping previous snapshot: %v", err)
				continue
			}
			l.Infof(ctx, "project.Watch: reloaded %d projects", snap.Len())
		}
	}
}

// debounceDelay is the quiet period to wait after an event, clipped so the
// reload fires no later than watchMaxWait after the first pending event.
func debounceDelay(elapsed time.Duration) time.Duration {
	left := watchMaxWait - elapsed
	if left < 0 {
		return 0
	}
	if left < watchDebounce {
		return left
	}
	return watchDebounce
}
