package workspace

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event reports a document that was re-analyzed or dropped. Document is
// nil for removals.
type Event struct {
	Path     string
	Document *Document
}

type Watcher struct {
	workspace *Workspace
	fsw       *fsnotify.Watcher
	debounce  time.Duration

	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op

	events   chan Event
	stopOnce sync.Once
}

func NewWatcher(w *Workspace) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		workspace: w,
		fsw:       fsw,
		debounce:  100 * time.Millisecond,
		pending:   make(map[string]fsnotify.Op),
		events:    make(chan Event, 64),
	}, nil
}

// Events is closed when the watcher stops.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start watches every directory below the workspace root until ctx is
// done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.addRecursive(w.workspace.RootDir()); err != nil {
		return err
	}
	go w.run(ctx)
	w.workspace.log.Infof("watching %s", w.workspace.RootDir())
	return nil
}

func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(info.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			w.workspace.log.Warningf("watch %s: %s", path, err)
		}
		return nil
	})
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.events)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.workspace.log.Errorf("watch: %s", err)
		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addRecursive(event.Name); err != nil {
				w.workspace.log.Warningf("watch %s: %s", event.Name, err)
			}
			return
		}
	}
	if !w.workspace.Matches(event.Name) {
		return
	}
	w.pendingMu.Lock()
	w.pending[event.Name] |= event.Op
	w.pendingMu.Unlock()
}

func (w *Watcher) flush(ctx context.Context) {
	w.pendingMu.Lock()
	pending := w.pending
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	for path := range pending {
		if ctx.Err() != nil {
			return
		}
		content, err := os.ReadFile(path)
		if err != nil {
			w.workspace.RemoveFile(path)
			w.workspace.log.Debugf("dropped %s", path)
			w.send(ctx, Event{Path: path})
			continue
		}
		doc := w.workspace.UpdateFile(path, content)
		w.send(ctx, Event{Path: path, Document: doc})
	}
}

func (w *Watcher) send(ctx context.Context, event Event) {
	select {
	case w.events <- event:
	case <-ctx.Done():
	}
}
