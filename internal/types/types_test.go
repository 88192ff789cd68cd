package types

import (
	"testing"
	"time"
)

func TestPriorityRank(t *testing.T) {
	order := []Priority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() >= order[i].Rank() {
			t.Errorf("%s should rank before %s", order[i-1], order[i])
		}
	}
	if Priority("unknown").Rank() <= PriorityLow.Rank() {
		t.Error("unknown priority should rank after low")
	}
}

func TestValidTaskStatus(t *testing.T) {
	for _, s := range []TaskStatus{StatusTodo, StatusInProgress, StatusDone, StatusBlocked} {
		if !ValidTaskStatus(s) {
			t.Errorf("%s should be valid", s)
		}
	}
	if ValidTaskStatus("cancelled") {
		t.Error("cancelled should be invalid")
	}
	if ValidTaskStatus("") {
		t.Error("empty status should be invalid")
	}
}

func TestValidPriority(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent} {
		if !ValidPriority(p) {
			t.Errorf("%s should be valid", p)
		}
	}
	if ValidPriority("asap") {
		t.Error("asap should be invalid")
	}
}

func TestProjectRefFor(t *testing.T) {
	if got := ProjectRefFor("alpha"); got != "projects/alpha" {
		t.Errorf("ProjectRefFor = %s, want projects/alpha", got)
	}
}

func TestDateOf(t *testing.T) {
	// The date portion is taken in UTC regardless of the input zone.
	loc := time.FixedZone("UTC+13", 13*3600)
	early := time.Date(2026, 3, 16, 1, 0, 0, 0, loc) // still 2026-03-15 in UTC
	if got := DateOf(early); got != "2026-03-15" {
		t.Errorf("DateOf = %s, want 2026-03-15", got)
	}
	if got := DateOf(time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)); got != "2026-03-15" {
		t.Errorf("DateOf = %s, want 2026-03-15", got)
	}
}
