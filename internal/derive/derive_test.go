package derive

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/7D-codes/lifeos-core/internal/types"
)

var testNow = time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)

func task(id string, status types.TaskStatus, due string) types.Task {
	return types.Task{ID: id, Title: id, Status: status, Priority: types.PriorityMedium, DueDate: due}
}

func ids(tasks []types.Task) []string {
	out := []string{}
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestOverdueAndDueToday(t *testing.T) {
	snap := &types.Snapshot{Tasks: []types.Task{
		task("past-todo", types.StatusTodo, "2024-01-01"),
		task("today-todo", types.StatusTodo, "2026-03-15"),
		task("future-done", types.StatusDone, "2099-01-01"),
	}}

	overdue := OverdueTasks(snap, testNow)
	if diff := cmp.Diff([]string{"past-todo"}, ids(overdue)); diff != "" {
		t.Errorf("overdue mismatch (-want +got):\n%s", diff)
	}

	dueToday := TasksDueToday(snap, testNow)
	if diff := cmp.Diff([]string{"today-todo"}, ids(dueToday)); diff != "" {
		t.Errorf("dueToday mismatch (-want +got):\n%s", diff)
	}

	if got := Stats(snap, testNow).Tasks.Overdue; got != 1 {
		t.Errorf("stats overdue = %d, want 1", got)
	}
}

func TestOverdueAndDueTodayAreDisjoint(t *testing.T) {
	snap := &types.Snapshot{Tasks: []types.Task{
		task("a", types.StatusTodo, "2026-03-14"),
		task("b", types.StatusTodo, "2026-03-15"),
		task("c", types.StatusInProgress, "2026-03-15"),
		task("d", types.StatusTodo, "2026-03-16"),
		task("e", types.StatusTodo, ""),
	}}

	overdue := map[string]bool{}
	for _, task := range OverdueTasks(snap, testNow) {
		overdue[task.ID] = true
	}
	for _, task := range TasksDueToday(snap, testNow) {
		if overdue[task.ID] {
			t.Errorf("task %s in both overdue and dueToday", task.ID)
		}
	}
}

func TestOverdue_DateOnlyComparison(t *testing.T) {
	// Due today but the wall clock is already past any plausible "time of
	// day": still not overdue, because comparison is date-only.
	endOfDay := time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)
	snap := &types.Snapshot{Tasks: []types.Task{task("t", types.StatusTodo, "2026-03-15")}}

	if got := OverdueTasks(snap, endOfDay); len(got) != 0 {
		t.Errorf("task due today counted as overdue: %v", ids(got))
	}
}

func TestOverdue_DoneTasksExcluded(t *testing.T) {
	snap := &types.Snapshot{Tasks: []types.Task{
		task("done-late", types.StatusDone, "2020-01-01"),
		task("blocked-late", types.StatusBlocked, "2020-01-01"),
	}}
	if diff := cmp.Diff([]string{"blocked-late"}, ids(OverdueTasks(snap, testNow))); diff != "" {
		t.Errorf("overdue mismatch (-want +got):\n%s", diff)
	}
}

func TestHighPriorityTasks(t *testing.T) {
	snap := &types.Snapshot{Tasks: []types.Task{
		{ID: "h", Status: types.StatusTodo, Priority: types.PriorityHigh},
		{ID: "u", Status: types.StatusInProgress, Priority: types.PriorityUrgent},
		{ID: "h-done", Status: types.StatusDone, Priority: types.PriorityHigh},
		{ID: "m", Status: types.StatusTodo, Priority: types.PriorityMedium},
	}}
	if diff := cmp.Diff([]string{"h", "u"}, ids(HighPriorityTasks(snap))); diff != "" {
		t.Errorf("high priority mismatch (-want +got):\n%s", diff)
	}
}

func TestTasksForProjectAndMilestone(t *testing.T) {
	snap := &types.Snapshot{Tasks: []types.Task{
		{ID: "in", Status: types.StatusTodo, ProjectRef: "projects/alpha"},
		{ID: "in-m1", Status: types.StatusTodo, ProjectRef: "projects/alpha", MilestoneRef: "m1"},
		{ID: "other", Status: types.StatusTodo, ProjectRef: "projects/beta", MilestoneRef: "m1"},
		// Prefix matches must not count: matching is exact-string.
		{ID: "prefix", Status: types.StatusTodo, ProjectRef: "projects/alpha-2"},
		{ID: "bare", Status: types.StatusTodo},
	}}

	if diff := cmp.Diff([]string{"in", "in-m1"}, ids(TasksForProject(snap, "alpha"))); diff != "" {
		t.Errorf("project filter mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"in-m1"}, ids(TasksForMilestone(snap, "alpha", "m1"))); diff != "" {
		t.Errorf("milestone filter mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectProgress(t *testing.T) {
	ref := types.ProjectRefFor("alpha")
	snap := &types.Snapshot{Tasks: []types.Task{
		{ID: "1", Status: types.StatusDone, ProjectRef: ref},
		{ID: "2", Status: types.StatusDone, ProjectRef: ref},
		{ID: "3", Status: types.StatusInProgress, ProjectRef: ref},
		{ID: "4", Status: types.StatusTodo, ProjectRef: ref},
		{ID: "5", Status: types.StatusBlocked, ProjectRef: ref},
		{ID: "6", Status: types.StatusDone, ProjectRef: "projects/beta"},
	}}

	want := types.ProjectProgress{Total: 5, Completed: 2, InProgress: 1, Todo: 1, Percentage: 40}
	if diff := cmp.Diff(want, ProjectProgress(snap, "alpha")); diff != "" {
		t.Errorf("progress mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectProgress_EmptyProjectIsZeroPercent(t *testing.T) {
	got := ProjectProgress(&types.Snapshot{}, "nothing")
	want := types.ProjectProgress{}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("progress mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectProgress_PercentageRounding(t *testing.T) {
	ref := types.ProjectRefFor("p")
	// 1 of 3 complete: 33.33 rounds down to 33. 2 of 3: 66.67 rounds up to 67.
	snap := &types.Snapshot{Tasks: []types.Task{
		{ID: "1", Status: types.StatusDone, ProjectRef: ref},
		{ID: "2", Status: types.StatusTodo, ProjectRef: ref},
		{ID: "3", Status: types.StatusTodo, ProjectRef: ref},
	}}
	if got := ProjectProgress(snap, "p").Percentage; got != 33 {
		t.Errorf("percentage = %d, want 33", got)
	}

	snap.Tasks[1].Status = types.StatusDone
	if got := ProjectProgress(snap, "p").Percentage; got != 67 {
		t.Errorf("percentage = %d, want 67", got)
	}

	// Half rounds up.
	snap.Tasks = []types.Task{
		{ID: "1", Status: types.StatusDone, ProjectRef: ref},
		{ID: "2", Status: types.StatusDone, ProjectRef: ref},
		{ID: "3", Status: types.StatusDone, ProjectRef: ref},
		{ID: "4", Status: types.StatusTodo, ProjectRef: ref},
		{ID: "5", Status: types.StatusTodo, ProjectRef: ref},
		{ID: "6", Status: types.StatusTodo, ProjectRef: ref},
		{ID: "7", Status: types.StatusTodo, ProjectRef: ref},
		{ID: "8", Status: types.StatusTodo, ProjectRef: ref},
	}
	// 3/8 = 37.5 rounds to 38.
	if got := ProjectProgress(snap, "p").Percentage; got != 38 {
		t.Errorf("percentage = %d, want 38", got)
	}
}

func TestMilestoneProgress_MissingTasksExcluded(t *testing.T) {
	snap := &types.Snapshot{Tasks: []types.Task{
		{ID: "real-done", Status: types.StatusDone},
		{ID: "real-todo", Status: types.StatusTodo},
	}}

	m1 := types.Milestone{ID: "m1", Tasks: []string{"real-done", "ghost-1"}}
	m2 := types.Milestone{ID: "m2", Tasks: []string{"real-todo", "ghost-2"}}

	got1 := MilestoneProgress(snap, m1)
	want1 := types.MilestoneProgress{Total: 1, Completed: 1, Percentage: 100}
	if diff := cmp.Diff(want1, got1); diff != "" {
		t.Errorf("m1 mismatch (-want +got):\n%s", diff)
	}

	got2 := MilestoneProgress(snap, m2)
	want2 := types.MilestoneProgress{Total: 1, Completed: 0, Percentage: 0}
	if diff := cmp.Diff(want2, got2); diff != "" {
		t.Errorf("m2 mismatch (-want +got):\n%s", diff)
	}
}

func TestMilestoneProgress_AllMissingIsZero(t *testing.T) {
	m := types.Milestone{ID: "m", Tasks: []string{"ghost-a", "ghost-b"}}
	got := MilestoneProgress(&types.Snapshot{}, m)
	if diff := cmp.Diff(types.MilestoneProgress{}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestUnassignedTasks(t *testing.T) {
	snap := &types.Snapshot{Tasks: []types.Task{
		{ID: "free", Status: types.StatusTodo},
		{ID: "owned", Status: types.StatusTodo, AssignedTo: "agent-1"},
		{ID: "free-done", Status: types.StatusDone},
	}}
	if diff := cmp.Diff([]string{"free"}, ids(UnassignedTasks(snap))); diff != "" {
		t.Errorf("unassigned mismatch (-want +got):\n%s", diff)
	}
}
