package config

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/philipp01105/safelog/logger"
)

// Watcher re-applies a configuration file to a registry whenever the
// file changes, giving running processes runtime level updates without
// a restart. The parent directory is watched rather than the file
// itself, because editors and config-management tools typically replace
// the file instead of writing in place.
type Watcher struct {
	path    string
	reg     *logger.Registry
	fw      *fsnotify.Watcher
	onError func(error)
	done    chan struct{}
	once    sync.Once
}

// WatchOption customizes a Watcher.
type WatchOption func(*Watcher)

// WithErrorHandler installs a callback for load or watch errors. The
// previous configuration stays in effect when a reload fails. Without a
// handler, errors are dropped: a broken config file must never take the
// logging subsystem down with it.
func WithErrorHandler(fn func(error)) WatchOption {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// Watch applies the file once and then keeps re-applying it on change
// until Close is called.
func Watch(path string, reg *logger.Registry, opts ...WatchOption) (*Watcher, error) {
	w := &Watcher{
		path: path,
		reg:  reg,
		done: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := ApplyFile(path, reg); err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}
	w.fw = fw

	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	base := filepath.Base(w.path)
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := ApplyFile(w.path, w.reg); err != nil {
				w.fail(err)
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.fail(err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) fail(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}

// Close stops watching. The last applied configuration remains active.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fw.Close()
	})
	return err
}
