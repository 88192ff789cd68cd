package derive

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/7D-codes/lifeos-core/internal/types"
)

func TestStats_FullAggregation(t *testing.T) {
	snap := &types.Snapshot{
		Tasks: []types.Task{
			{ID: "1", Status: types.StatusDone, Priority: types.PriorityHigh},
			{ID: "2", Status: types.StatusInProgress, Priority: types.PriorityHigh},
			{ID: "3", Status: types.StatusTodo, Priority: types.PriorityMedium, DueDate: "2024-01-01"},
			{ID: "4", Status: types.StatusBlocked, Priority: types.PriorityUrgent},
			{ID: "5", Status: types.StatusTodo, Priority: types.PriorityLow},
		},
		Projects: []types.Project{
			{ID: "a", Status: types.ProjectActive},
			{ID: "b", Status: types.ProjectActive},
			{ID: "c", Status: types.ProjectArchived},
			{ID: "d", Status: types.ProjectPaused},
		},
		Facts: []types.Fact{
			{ID: "f1", Universal: true},
			{ID: "f2"},
		},
	}

	want := types.DashboardStats{
		Tasks: types.TaskStats{
			Total:      5,
			Completed:  1,
			InProgress: 1,
			Todo:       2,
			Blocked:    1,
			// Counts high only, and only when not done: task 2.
			HighPriority: 1,
			Overdue:      1,
		},
		Projects: types.ProjectStats{Total: 4, Active: 2, Archived: 1, Paused: 1},
		Facts:    types.FactStats{Total: 2, Universal: 1},
	}

	if diff := cmp.Diff(want, Stats(snap, testNow)); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestStats_EmptySnapshotIsAllZero(t *testing.T) {
	if diff := cmp.Diff(types.DashboardStats{}, Stats(&types.Snapshot{}, testNow)); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}
