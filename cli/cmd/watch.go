package cmd

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ardnew/fxc/log"
)

// defaultDebounce is how long the watcher waits for changes to settle before
// rerunning.
const defaultDebounce = 150 * time.Millisecond

// watch calls run each time a file accepted by match changes below one of
// dirs, until ctx is done. Bursts of events within debounce are coalesced
// into one call. Errors from run are logged and do not stop the watch.
func watch(
	ctx context.Context,
	dirs []string,
	debounce time.Duration,
	match func(path string) bool,
	run func(ctx context.Context) error,
) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return ErrWatch.Wrap(err)
	}
	defer w.Close()

	for _, dir := range dirs {
		if err := watchRecursive(w, dir); err != nil {
			return ErrWatch.With(slog.String("dir", dir)).Wrap(err)
		}
	}

	timer := time.NewTimer(debounce)
	timer.Stop()

	log.InfoContext(ctx, "watching sources", slog.Any("dirs", dirs))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) {
				if err := watchRecursive(w, event.Name); err != nil {
					log.WarnContext(ctx, "cannot watch new directory",
						slog.String("path", event.Name),
						slog.Any("error", err),
					)
				}
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			if !match(event.Name) {
				continue
			}

			log.DebugContext(ctx, "source changed",
				slog.String("path", event.Name),
				slog.String("op", event.Op.String()),
			)

			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			log.WarnContext(ctx, "watcher error", slog.Any("error", err))

		case <-timer.C:
			if err := run(ctx); err != nil {
				log.ErrorContext(ctx, "rerun failed", slog.Any("error", err))
			}
		}
	}
}

// watchRecursive adds path and every directory below it to w. Paths that are
// not directories are ignored.
func watchRecursive(w *fsnotify.Watcher, path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		return w.Add(p)
	})
}
