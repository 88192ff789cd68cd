package workspace

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/7D-codes/lifeos-core/internal/types"
)

// Projects loads every project directory's meta.json, annotates each with its
// on-disk path and optional summary.md, and returns them ordered by priority
// ascending (urgent first), then update timestamp descending.
func (w *Workspace) Projects() []types.Project {
	var projects []types.Project
	for _, dir := range listDirs(w.ProjectsDir()) {
		if p, ok := w.ProjectByID(dir); ok {
			projects = append(projects, p)
		}
	}

	sort.SliceStable(projects, func(i, j int) bool {
		a, b := projects[i], projects[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		return a.UpdatedAt.After(b.UpdatedAt)
	})
	return projects
}

// ProjectByID loads one project by its directory name. The summary is
// best-effort: a missing or unreadable summary.md leaves Summary empty rather
// than failing the load.
func (w *Workspace) ProjectByID(id string) (types.Project, bool) {
	dir := filepath.Join(w.ProjectsDir(), id)

	var p types.Project
	if !readJSON(w.log, filepath.Join(dir, "meta.json"), &p) {
		return types.Project{}, false
	}

	p.Path = dir
	if data, err := os.ReadFile(filepath.Join(dir, "summary.md")); err == nil {
		p.Summary = string(data)
	}
	return p, true
}
