package settings

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a settings file whenever it changes on disk. Successfully decoded configs are sent on
// Configs and failures on Errors; the owner of the character applies new configs between ticks.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher

	Configs chan MovementConfig
	Errors  chan error

	closeCh chan struct{}
	once    sync.Once
}

// Watch starts watching the settings file at path. The parent directory is watched rather than the file
// itself, since most editors replace files on save.
func Watch(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		path:    filepath.Clean(path),
		watcher: w,
		Configs: make(chan MovementConfig, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. Configs and Errors are closed once the watcher has stopped.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Configs)
	defer close(w.Errors)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			c, err := Load(w.path)
			if err != nil {
				w.send(nil, err)
				continue
			}
			w.send(&c, nil)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		case <-w.closeCh:
			return
		}
	}
}

// send delivers a result, dropping a stale pending one so that the owner always sees the newest config.
func (w *Watcher) send(c *MovementConfig, err error) {
	if c != nil {
		select {
		case <-w.Configs:
		default:
		}
		select {
		case w.Configs <- *c:
		case <-w.closeCh:
		}
		return
	}
	select {
	case w.Errors <- err:
	default:
	}
}
