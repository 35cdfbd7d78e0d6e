package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/docworks/docnav/internal/logging"
	"github.com/docworks/docnav/internal/logging/events"
)

// Event signals that the workspace contents changed and a rescan produced a
// fresh document inventory, or that the rescan failed.
type Event struct {
	Documents []Document
	Err       error
}

// Watcher observes the workspace directory and publishes a rescanned
// inventory after changes settle. Rapid bursts of file events collapse into
// a single rescan via the debounce window.
type Watcher struct {
	root     string
	fsw      *fsnotify.Watcher
	debounce time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	eventsCh chan Event
	wg       sync.WaitGroup
}

// NewWatcher starts watching root and its subdirectories.
func NewWatcher(root string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		root:     root,
		fsw:      fsw,
		debounce: debounce,
		ctx:      ctx,
		cancel:   cancel,
		eventsCh: make(chan Event, 4),
	}
	if err := w.addRecursive(root); err != nil {
		cancel()
		fsw.Close()
		return nil, err
	}
	w.wg.Add(1)
	go w.loop()
	go func() {
		w.wg.Wait()
		close(w.eventsCh)
	}()
	return w, nil
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return fs.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// Events returns the channel of workspace events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsCh
}

// Stop cancels the watcher. The events channel closes once the loop exits.
func (w *Watcher) Stop() {
	w.cancel()
	w.fsw.Close()
}

// Wait blocks until the watch loop has exited and the channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-w.ctx.Done():
			return
		case evt, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			events.Workspace.Change(evt.Name, evt.Op.String())
			if evt.Op&fsnotify.Create != 0 {
				// New subdirectories need their own watch entry.
				if err := w.addRecursive(w.root); err != nil {
					logging.Errorf("rewatch %s: %v", w.root, err)
				}
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			events.Workspace.Error(err)
		case <-fire:
			fire = nil
			docs, errs := Scan(w.root)
			var err error
			if len(errs) > 0 {
				err = errs[0]
			}
			events.Workspace.Scan(w.root, len(docs))
			select {
			case w.eventsCh <- Event{Documents: docs, Err: err}:
			case <-w.ctx.Done():
				return
			}
		}
	}
}
