// Package watch emits debounced change events for the record areas of a
// workspace. The dashboard holds no cache, so the watcher is advisory: it
// tells interested callers that a fresh aggregation would see something new.
package watch

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/7D-codes/lifeos-core/internal/workspace"
)

// Event is one settled workspace change.
type Event struct {
	Path string
	Op   string // create, modify, delete, rename
	Time time.Time
}

// Stats counts watcher activity since Start.
type Stats struct {
	Created  int
	Modified int
	Deleted  int
	Errors   int
}

// Watcher monitors the task, fact, daily-note, and project areas of a
// workspace. Rapid bursts of writes to the same path are debounced into a
// single event.
type Watcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	ws       *workspace.Workspace
	log      *zap.Logger
	pending  map[string]pendingEvent
	debounce time.Duration
	events   chan Event
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
	stats    Stats
}

type pendingEvent struct {
	op   string
	seen time.Time
}

// New creates a Watcher over ws. Events are delivered on Events() until Stop.
func New(ws *workspace.Workspace, log *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		fsw:      fsw,
		ws:       ws,
		log:      log,
		pending:  make(map[string]pendingEvent),
		debounce: 500 * time.Millisecond,
		events:   make(chan Event, 64),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Events returns the channel settled changes are delivered on. It is closed
// by Stop.
func (w *Watcher) Events() <-chan Event { return w.events }

// Start registers the record directories and begins the event loop. Missing
// directories are created first so a freshly initialized workspace can be
// watched immediately.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.ws.EnsureLayout(); err != nil {
		w.log.Warn("failed to ensure workspace layout", zap.Error(err))
	}

	dirs := []string{
		w.ws.TasksDir(),
		w.ws.FactsDir(),
		w.ws.DailyDir(),
		w.ws.ProjectsDir(),
		filepath.Dir(w.ws.GraphPath()),
	}
	for _, dir := range dirs {
		if err := w.fsw.Add(dir); err != nil {
			w.log.Warn("failed to watch directory", zap.String("dir", dir), zap.Error(err))
			continue
		}
		w.log.Debug("watching directory", zap.String("dir", dir))
	}

	// Project records live one level down (projects/{id}/meta.json), so each
	// existing project directory is watched as well.
	if entries, err := os.ReadDir(w.ws.ProjectsDir()); err == nil {
		for _, e := range entries {
			if e.IsDir() {
				_ = w.fsw.Add(filepath.Join(w.ws.ProjectsDir(), e.Name()))
			}
		}
	}

	go w.run()
	return nil
}

// Stop shuts the watcher down and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	_ = w.fsw.Close()
	close(w.events)
}

// GetStats returns a copy of the activity counters.
func (w *Watcher) GetStats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case <-w.stopCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", zap.Error(err))
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-tick.C:
			w.flush()
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if !interesting(ev.Name) {
		return
	}

	var op string
	switch {
	case ev.Op&fsnotify.Create != 0:
		op = "create"
	case ev.Op&fsnotify.Write != 0:
		op = "modify"
	case ev.Op&fsnotify.Remove != 0:
		op = "delete"
	case ev.Op&fsnotify.Rename != 0:
		op = "rename"
	default:
		return // chmod etc.
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	switch op {
	case "create":
		w.stats.Created++
	case "modify":
		w.stats.Modified++
	case "delete", "rename":
		w.stats.Deleted++
	}
	w.pending[ev.Name] = pendingEvent{op: op, seen: time.Now()}

	// A new project directory needs its own watch for meta.json changes.
	if op == "create" && filepath.Dir(ev.Name) == w.ws.ProjectsDir() {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			_ = w.fsw.Add(ev.Name)
		}
	}
}

// flush delivers events whose debounce window has settled.
func (w *Watcher) flush() {
	now := time.Now()

	w.mu.Lock()
	var settled []Event
	for path, p := range w.pending {
		if now.Sub(p.seen) >= w.debounce {
			settled = append(settled, Event{Path: path, Op: p.op, Time: p.seen})
			delete(w.pending, path)
		}
	}
	w.mu.Unlock()

	for _, ev := range settled {
		select {
		case w.events <- ev:
		default:
			w.log.Debug("dropping event, channel full", zap.String("path", ev.Path))
		}
	}
}

// interesting reports whether a path is a record the dashboard cares about.
func interesting(path string) bool {
	switch {
	case strings.HasSuffix(path, ".json"), strings.HasSuffix(path, ".md"):
		return true
	}
	// Bare directory events (new project dirs) matter too.
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
