package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long a file must stay quiet before a change is reported.
const settleDelay = 100 * time.Millisecond

// Watcher reports changes to a single config file. Editors often replace a
// file instead of writing it, so the parent directory is watched. A burst of
// events (truncate then write) is reported once, after the last of them.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	Events   chan string
	Errors   chan error
	closeCh  chan struct{}
	once     sync.Once
}

func NewWatcher(path string) (*Watcher, error) {
	return newWatcher(path, settleDelay)
}

func newWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher:  w,
		path:     abs,
		debounce: debounce,
		Events:   make(chan string, 4),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Changed reports, without blocking, whether the file changed since the last call.
func (w *Watcher) Changed() bool {
	changed := false
	for {
		select {
		case <-w.Events:
			changed = true
		default:
			return changed
		}
	}
}

func (w *Watcher) run() {
	var timer *time.Timer
	var settled <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

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
			// Restart the quiet period on every event
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			settled = timer.C
		case <-settled:
			settled = nil
			select {
			case w.Events <- w.path:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
