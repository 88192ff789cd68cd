// Package derive computes read-only views over a workspace snapshot: filters
// (overdue, due today, by project, by milestone), progress summaries, and
// dashboard statistics. Every function is pure and deterministic given the
// snapshot and the reference time; none of them touch the filesystem.
package derive

import (
	"math"
	"time"

	"github.com/7D-codes/lifeos-core/internal/types"
)

// OverdueTasks returns tasks whose due date is strictly before now's date and
// whose status is not done. The comparison is date-only: a task due earlier
// today is not overdue.
func OverdueTasks(snap *types.Snapshot, now time.Time) []types.Task {
	today := types.DateOf(now)
	var out []types.Task
	for _, t := range snap.Tasks {
		if t.DueDate != "" && t.DueDate < today && t.Status != types.StatusDone {
			out = append(out, t)
		}
	}
	return out
}

// TasksDueToday returns tasks whose due date equals now's date exactly,
// regardless of status.
func TasksDueToday(snap *types.Snapshot, now time.Time) []types.Task {
	today := types.DateOf(now)
	var out []types.Task
	for _, t := range snap.Tasks {
		if t.DueDate == today {
			out = append(out, t)
		}
	}
	return out
}

// HighPriorityTasks returns not-done tasks at high or urgent priority.
func HighPriorityTasks(snap *types.Snapshot) []types.Task {
	var out []types.Task
	for _, t := range snap.Tasks {
		if (t.Priority == types.PriorityHigh || t.Priority == types.PriorityUrgent) &&
			t.Status != types.StatusDone {
			out = append(out, t)
		}
	}
	return out
}

// UnassignedTasks returns not-done tasks with no assignee.
func UnassignedTasks(snap *types.Snapshot) []types.Task {
	var out []types.Task
	for _, t := range snap.Tasks {
		if t.AssignedTo == "" && t.Status != types.StatusDone {
			out = append(out, t)
		}
	}
	return out
}

// TasksForProject returns tasks whose project reference matches the given
// project id. Matching is an exact string compare against the composite
// "projects/{id}" form; there is no prefix or fuzzy resolution.
func TasksForProject(snap *types.Snapshot, projectID string) []types.Task {
	ref := types.ProjectRefFor(projectID)
	var out []types.Task
	for _, t := range snap.Tasks {
		if t.ProjectRef == ref {
			out = append(out, t)
		}
	}
	return out
}

// TasksForMilestone returns the intersection of a project's tasks and an
// exact milestone-reference match.
func TasksForMilestone(snap *types.Snapshot, projectID, milestoneID string) []types.Task {
	ref := types.ProjectRefFor(projectID)
	var out []types.Task
	for _, t := range snap.Tasks {
		if t.ProjectRef == ref && t.MilestoneRef == milestoneID {
			out = append(out, t)
		}
	}
	return out
}

// TasksByStatus returns tasks in the given state.
func TasksByStatus(snap *types.Snapshot, status types.TaskStatus) []types.Task {
	var out []types.Task
	for _, t := range snap.Tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// ProjectProgress counts a project's tasks by state and computes an integer
// completion percentage. A project with no tasks is 0% complete, never a
// division by zero.
func ProjectProgress(snap *types.Snapshot, projectID string) types.ProjectProgress {
	tasks := TasksForProject(snap, projectID)

	p := types.ProjectProgress{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case types.StatusDone:
			p.Completed++
		case types.StatusInProgress:
			p.InProgress++
		case types.StatusTodo:
			p.Todo++
		}
	}
	p.Percentage = percentage(p.Completed, p.Total)
	return p
}

// MilestoneProgress computes completion over the task ids a milestone lists.
// Ids with no backing task in the snapshot are excluded from both the
// numerator and the denominator.
func MilestoneProgress(snap *types.Snapshot, m types.Milestone) types.MilestoneProgress {
	byID := make(map[string]types.Task, len(snap.Tasks))
	for _, t := range snap.Tasks {
		byID[t.ID] = t
	}

	var p types.MilestoneProgress
	for _, id := range m.Tasks {
		t, ok := byID[id]
		if !ok {
			continue
		}
		p.Total++
		if t.Status == types.StatusDone {
			p.Completed++
		}
	}
	p.Percentage = percentage(p.Completed, p.Total)
	return p
}

// percentage is round-half-up of completed/total*100, with the 0-of-0
// convention of 0%.
func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
