package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce drops repeat events for one file that editors emit per save.
const debounce = 100 * time.Millisecond

var watchedExt = map[string]bool{
	".yaml":  true,
	".yml":   true,
	".tengo": true,
}

// Watcher reports edits to tuning files and enemy scripts. Game code polls
// it once per tick with Changed.
type Watcher struct {
	fs      *fsnotify.Watcher
	changed chan struct{}
	errs    chan error
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fs,
		changed: make(chan struct{}, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			now := time.Now()
			if t, seen := last[event.Name]; seen && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			// changed holds at most one pending flag.
			select {
			case w.changed <- struct{}{}:
			default:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		case <-w.done:
			return
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	return watchedExt[strings.ToLower(filepath.Ext(event.Name))]
}

// Changed reports whether any watched file changed since the last call,
// without blocking. Watch errors are handed to onErr.
func (w *Watcher) Changed(onErr func(error)) bool {
	select {
	case err := <-w.errs:
		if onErr != nil {
			onErr(err)
		}
	default:
	}

	select {
	case <-w.changed:
		return true
	default:
		return false
	}
}
