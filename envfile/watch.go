package envfile

import (
	"context"
	"path/filepath"

	"gopkg.in/fsnotify.v1"

	"github.com/envvault/envvault.go/log"
)

// Watcher reports on-disk changes to an overlay file after startup.
//
// The snapshot built from the overlay is immutable for the life of the
// process, so the watcher never reloads anything. It only logs a warning
// telling the operator that a restart is needed for the change to apply.
type Watcher struct {
	cancel context.CancelFunc
}

// Stop stops the watcher.
//
// It's OK to call Stop multiple times.
// Calls after the first one are essentially no-op.
func (w *Watcher) Stop() {
	w.cancel()
}

// Watch starts watching the overlay file at path for changes.
//
// The returned Watcher keeps running until Stop is called or ctx is
// cancelled, whichever comes first.
func Watch(ctx context.Context, path string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the parent directory instead of the file itself,
	// because only watching the file won't give us CREATE events,
	// which will happen with atomic renames.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	w := &Watcher{cancel: cancel}
	go w.watcherLoop(ctx, watcher, path)
	return w, nil
}

func (w *Watcher) watcherLoop(ctx context.Context, watcher *fsnotify.Watcher, path string) {
	file := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			watcher.Close()
			return

		case err := <-watcher.Errors:
			log.Errorw(
				"envfile: watcher error",
				"path", path,
				"err", err,
			)

		case ev := <-watcher.Events:
			if filepath.Base(ev.Name) != file {
				continue
			}

			switch ev.Op {
			default:
				// Ignore uninterested events.
			case fsnotify.Create, fsnotify.Write:
				log.Warnw(
					"envfile: overlay file changed on disk, the running snapshot is unchanged, restart to apply",
					"path", path,
				)
			}
		}
	}
}
