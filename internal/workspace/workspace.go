// Package workspace reads and writes the file-backed LifeOS workspace: one
// JSON file per task, one directory per project, one JSON file per fact, and
// a single knowledge-graph snapshot.
//
// Loading is deliberately tolerant. A missing file or directory is an empty
// result, not an error; a malformed record is logged and skipped so that one
// bad file never fails a whole aggregation.
package workspace

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Default workspace root, used when neither config nor environment provide
// one.
const DefaultRoot = "~/.openclaw/workspace"

// Workspace is a handle on one workspace root. It holds no state beyond the
// root path and a logger; every read goes back to disk.
type Workspace struct {
	root string
	log  *zap.Logger
}

// New returns a Workspace rooted at root. A nil logger is replaced with a
// no-op logger.
func New(root string, log *zap.Logger) *Workspace {
	if log == nil {
		log = zap.NewNop()
	}
	return &Workspace{root: root, log: log}
}

// Root returns the workspace root path.
func (w *Workspace) Root() string { return w.root }

// TasksDir returns the directory holding one JSON record per task.
func (w *Workspace) TasksDir() string { return filepath.Join(w.root, "tasks") }

// ProjectsDir returns the directory holding one subdirectory per project.
func (w *Workspace) ProjectsDir() string {
	return filepath.Join(w.root, "life", "areas", "projects")
}

// FactsDir returns the directory holding one JSON record per fact.
func (w *Workspace) FactsDir() string {
	return filepath.Join(w.root, "memory", "facts")
}

// DailyDir returns the directory holding daily markdown notes.
func (w *Workspace) DailyDir() string {
	return filepath.Join(w.root, "memory", "daily")
}

// GraphPath returns the path of the knowledge-graph snapshot.
func (w *Workspace) GraphPath() string {
	return filepath.Join(w.root, ".openclaw", "graph.json")
}

// EnsureLayout idempotently creates the expected directory skeleton. Safe to
// call repeatedly and concurrently: MkdirAll is a no-op on existing
// directories.
func (w *Workspace) EnsureLayout() error {
	dirs := []string{
		w.TasksDir(),
		w.DailyDir(),
		w.FactsDir(),
		w.ProjectsDir(),
		filepath.Join(w.root, ".openclaw"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// readJSON parses path into out. A missing file yields (false, nil).
// Malformed content is logged at Warn and also yields (false, nil): the
// record is treated as absent so aggregation can continue.
func readJSON(log *zap.Logger, path string, out any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("failed to read record", zap.String("path", path), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Warn("skipping malformed record", zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}

// listFiles returns the names of regular files in dir, filtered by extension
// when ext is non-empty. A missing directory is an empty listing.
func listFiles(dir, ext string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext != "" && !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, e.Name())
	}
	return names
}

// listDirs returns the names of subdirectories of dir. A missing directory is
// an empty listing.
func listDirs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}
