package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/rileyhilliard/chartkit/internal/errors"
	"github.com/rileyhilliard/chartkit/internal/logger"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 150 * time.Millisecond

// WatchOptions tunes Watch.
type WatchOptions struct {
	Debounce time.Duration
	Logger   logger.Logger
}

// Watch calls onChange after the file at path is written, created or
// replaced, until ctx is cancelled. The parent directory is watched so
// editors that save via rename keep triggering events.
func Watch(ctx context.Context, path string, onChange func(), opts WatchOptions) error {
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrData,
			fmt.Sprintf("Can't resolve '%s'", path), "")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrData,
			"Can't start the file watcher",
			"Raise the inotify watch limit or run without --watch")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.WrapWithCode(err, errors.ErrData,
			fmt.Sprintf("Can't watch '%s'", filepath.Dir(abs)),
			"Check the directory exists and is readable")
	}
	log.Debug("watching %s", abs)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			log.Debug("change %s on %s", ev.Op, ev.Name)
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error: %v", err)
		}
	}
}
