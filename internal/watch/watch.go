// Package watch re-runs map generation when its input files change.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 500 * time.Millisecond

// Run calls fn once, then again each time one of paths is written, created,
// or renamed, until ctx is done. Errors from fn are logged and do not stop
// the loop. Each file's parent directory is watched so that replace-on-save
// editors are seen.
func Run(ctx context.Context, paths []string, debounce time.Duration, fn func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return eris.Wrap(err, "watch: create watcher")
	}
	defer watcher.Close()

	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return eris.Wrapf(err, "watch: resolve %s", p)
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return eris.Wrapf(err, "watch: add %s", dir)
		}
	}

	runOnce(fn)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !Relevant(ev, targets) {
				continue
			}
			zap.L().Debug("watch: input changed", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			zap.L().Warn("watch: watcher error", zap.Error(err))
		case <-timer.C:
			runOnce(fn)
		}
	}
}

func runOnce(fn func() error) {
	if err := fn(); err != nil {
		zap.L().Error("watch: update failed", zap.Error(err))
	}
}

// Relevant reports whether ev touches one of the watched files in a way that
// can change its content.
func Relevant(ev fsnotify.Event, targets map[string]bool) bool {
	abs, err := filepath.Abs(ev.Name)
	if err != nil || !targets[abs] {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
