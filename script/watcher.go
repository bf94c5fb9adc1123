package script

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/ggpd"
)

// Watcher reports changes to class files.
//
// The directories of the watched files are watched, so editors that save
// by replacing the file are seen too. Changed paths arrive on Changes;
// the host drains it on its own dispatch thread and calls
// [Runtime.Reload].
type Watcher struct {
	w       *fsnotify.Watcher
	changes chan string
	errs    chan error
	done    chan struct{}

	mu    sync.Mutex
	files map[string]bool
	dirs  map[string]bool

	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewWatcher returns a watcher for paths.
func NewWatcher(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("script: watcher: %w", err)
	}
	w := &Watcher{
		w:       fw,
		changes: make(chan string, 16),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
		files:   make(map[string]bool),
		dirs:    make(map[string]bool),
	}
	for _, p := range paths {
		if err := w.Add(p); err != nil {
			w.Close()
			return nil, err
		}
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Add starts watching path.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("script: watch %s: %w", path, err)
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.dirs[dir] {
		if err := w.w.Add(dir); err != nil {
			return fmt.Errorf("script: watch %s: %w", dir, err)
		}
		w.dirs[dir] = true
	}
	w.files[abs] = true
	return nil
}

// Changes delivers the absolute path of every class file written,
// created or renamed into place.
func (w *Watcher) Changes() <-chan string { return w.changes }

// Errors delivers watcher errors. Errors are dropped when nobody reads.
func (w *Watcher) Errors() <-chan error { return w.errs }

func (w *Watcher) watched(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[path]
}

func (w *Watcher) run() {
	defer w.wg.Done()
	defer close(w.changes)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			path := filepath.Clean(ev.Name)
			if !w.watched(path) {
				continue
			}
			ggpd.Logger().Debug("script: file changed", "path", path, "op", ev.Op.String())
			select {
			case w.changes <- path:
			case <-w.done:
				return
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
				ggpd.Logger().Warn("script: watcher error dropped", "err", err)
			}
		}
	}
}

// Close stops the watcher and closes Changes.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.w.Close()
		w.wg.Wait()
	})
	return err
}

// ReloadChanged drains pending changes without blocking and reloads
// each changed class in r. It returns the reloaded classes and the first
// error.
func (w *Watcher) ReloadChanged(r *Runtime) ([]*Class, error) {
	var (
		out      []*Class
		firstErr error
	)
	for {
		select {
		case path, ok := <-w.changes:
			if !ok {
				return out, firstErr
			}
			c, err := r.Reload(path)
			if err != nil {
				ggpd.Logger().Warn("script: reload failed", "path", path, "err", err)
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			ggpd.Logger().Info("script: class reloaded", "class", c.Name(), "path", path)
			out = append(out, c)
		default:
			return out, firstErr
		}
	}
}
