package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/7D-codes/lifeos-core/internal/types"
)

// ErrTaskNotFound is returned by the write-back operations when no record
// exists for the requested task id. No filesystem write happens in that case.
var ErrTaskNotFound = errors.New("task not found")

// Tasks loads every task record, skipping unreadable or malformed files.
// Results are ordered by update timestamp descending; ties break on
// filename ascending so the ordering is stable run to run.
func (w *Workspace) Tasks() []types.Task {
	dir := w.TasksDir()

	type loaded struct {
		task types.Task
		file string
	}
	var all []loaded
	for _, name := range listFiles(dir, ".json") {
		var t types.Task
		if readJSON(w.log, filepath.Join(dir, name), &t) {
			all = append(all, loaded{task: t, file: name})
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if !a.task.UpdatedAt.Equal(b.task.UpdatedAt) {
			return a.task.UpdatedAt.After(b.task.UpdatedAt)
		}
		return a.file < b.file
	})

	tasks := make([]types.Task, len(all))
	for i, l := range all {
		tasks[i] = l.task
	}
	return tasks
}

// TaskByID loads a single task record. The second return is false when the
// record is absent or unreadable.
func (w *Workspace) TaskByID(id string) (types.Task, bool) {
	var t types.Task
	ok := readJSON(w.log, w.taskPath(id), &t)
	return t, ok
}

// SaveTask overwrites the task's record file, stamping UpdatedAt first. The
// whole file is rewritten; last writer wins.
func (w *Workspace) SaveTask(t *types.Task) error {
	t.UpdatedAt = time.Now().UTC()
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal task %s: %w", t.ID, err)
	}
	if err := os.WriteFile(w.taskPath(t.ID), data, 0644); err != nil {
		return fmt.Errorf("failed to write task %s: %w", t.ID, err)
	}
	return nil
}

// UpdateTaskStatus sets the status of one task and persists it. Returns
// ErrTaskNotFound when no record backs the id.
func (w *Workspace) UpdateTaskStatus(id string, status types.TaskStatus) (*types.Task, error) {
	return w.mutateTask(id, func(t *types.Task) { t.Status = status })
}

// UpdateTaskPriority sets the priority of one task and persists it.
func (w *Workspace) UpdateTaskPriority(id string, priority types.Priority) (*types.Task, error) {
	return w.mutateTask(id, func(t *types.Task) { t.Priority = priority })
}

// UpdateTaskAssignee sets or clears (empty agentID) the assignee of one task
// and persists it.
func (w *Workspace) UpdateTaskAssignee(id, agentID string) (*types.Task, error) {
	return w.mutateTask(id, func(t *types.Task) { t.AssignedTo = agentID })
}

// mutateTask applies a single-field mutation and rewrites the record. There
// is deliberately no optimistic-concurrency check: two racing writers to the
// same task are resolved by the later filesystem write.
func (w *Workspace) mutateTask(id string, mutate func(*types.Task)) (*types.Task, error) {
	t, ok := w.TaskByID(id)
	if !ok {
		return nil, ErrTaskNotFound
	}
	mutate(&t)
	if err := w.SaveTask(&t); err != nil {
		return nil, err
	}
	w.log.Info("task updated",
		zap.String("task", id),
		zap.String("status", string(t.Status)),
		zap.String("priority", string(t.Priority)))
	return &t, nil
}

func (w *Workspace) taskPath(id string) string {
	return filepath.Join(w.TasksDir(), id+".json")
}
