package tui

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the ledger file for changes using fsnotify, so a `watch`
// session refreshes while another inkwell process (or a scheduler-driven
// run) executes units. The parent directory is watched because editors and
// atomic renames replace the file inode.
type Watcher struct {
	Changes <-chan struct{} // Read-only external channel

	path    string // ledger file being watched
	changes chan struct{}
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the ledger at path.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan struct{}, 1)
	w := &Watcher{
		Changes: ch,
		path:    path,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start begins watching the ledger's directory for changes.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: the executor saves the ledger after every unit, which can
	// arrive in quick bursts.
	const debounce = 200 * time.Millisecond
	var pending bool
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	base := filepath.Base(w.path)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				pending = true
			}
		case <-ticker.C:
			if pending {
				pending = false
				select {
				case w.changes <- struct{}{}:
				default:
				}
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
