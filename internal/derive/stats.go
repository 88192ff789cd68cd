package derive

import (
	"time"

	"github.com/7D-codes/lifeos-core/internal/types"
)

// Stats aggregates the dashboard counters from a snapshot. Pure counting, no
// caching: callers recompute on every request.
//
// The highPriority counter intentionally counts priority == high only (not
// urgent), matching what the dashboard header has always shown; the
// HighPriorityTasks view is the broader high-or-urgent filter.
func Stats(snap *types.Snapshot, now time.Time) types.DashboardStats {
	today := types.DateOf(now)

	var s types.DashboardStats
	s.Tasks.Total = len(snap.Tasks)
	for _, t := range snap.Tasks {
		switch t.Status {
		case types.StatusDone:
			s.Tasks.Completed++
		case types.StatusInProgress:
			s.Tasks.InProgress++
		case types.StatusTodo:
			s.Tasks.Todo++
		case types.StatusBlocked:
			s.Tasks.Blocked++
		}
		if t.Priority == types.PriorityHigh && t.Status != types.StatusDone {
			s.Tasks.HighPriority++
		}
		if t.DueDate != "" && t.DueDate < today && t.Status != types.StatusDone {
			s.Tasks.Overdue++
		}
	}

	s.Projects.Total = len(snap.Projects)
	for _, p := range snap.Projects {
		switch p.Status {
		case types.ProjectActive:
			s.Projects.Active++
		case types.ProjectArchived:
			s.Projects.Archived++
		case types.ProjectPaused:
			s.Projects.Paused++
		}
	}

	s.Facts.Total = len(snap.Facts)
	for _, f := range snap.Facts {
		if f.Universal {
			s.Facts.Universal++
		}
	}
	return s
}
