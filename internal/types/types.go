// Package types defines the canonical workspace data model shared by the
// loader, the derivation layer, and the HTTP API. All records are identified
// by a stable string id; timestamps are RFC3339, due dates are date-only
// strings (YYYY-MM-DD) compared lexically.
package types

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
	StatusBlocked    TaskStatus = "blocked"
)

// ValidTaskStatus reports whether s is one of the known task states.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone, StatusBlocked:
		return true
	}
	return false
}

// Priority orders work from low to urgent.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ValidPriority reports whether p is one of the known priorities.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Rank maps a priority to a sort key, most urgent first. Unknown priorities
// sort after low.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// Task is one persisted task record (tasks/{id}.json).
//
// ProjectRef is a composite reference of the form "projects/{id}";
// MilestoneRef is a bare milestone id and is only meaningful when ProjectRef
// is set.
type Task struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Status       TaskStatus `json:"status"`
	Priority     Priority   `json:"priority"`
	DueDate      string     `json:"dueDate,omitempty"`
	ProjectRef   string     `json:"projectRef,omitempty"`
	MilestoneRef string     `json:"milestoneRef,omitempty"`
	AssignedTo   string     `json:"assignedTo,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectArchived ProjectStatus = "archived"
	ProjectPaused   ProjectStatus = "paused"
)

// Milestone groups an ordered list of task ids inside a project. Listed ids
// with no backing task record are ignored by progress computation.
type Milestone struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Status   TaskStatus `json:"status"`
	Priority Priority   `json:"priority"`
	DueDate  string     `json:"dueDate,omitempty"`
	Tasks    []string   `json:"tasks"`
}

// ProjectLinks holds outbound references from a project to related records.
type ProjectLinks struct {
	Tasks    []string `json:"tasks,omitempty"`
	People   []string `json:"people,omitempty"`
	Projects []string `json:"projects,omitempty"`
	Facts    []string `json:"facts,omitempty"`
	Agents   []string `json:"agents,omitempty"`
}

// Project is one project directory's meta.json, annotated at load time with
// its on-disk path and the contents of its optional summary.md.
type Project struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Status     ProjectStatus `json:"status"`
	Priority   Priority      `json:"priority"`
	Tags       []string      `json:"tags,omitempty"`
	Milestones []Milestone   `json:"milestones,omitempty"`
	Links      ProjectLinks  `json:"links,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`

	// Populated by the loader, not persisted in meta.json.
	Path    string `json:"path,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// FactType classifies a remembered fact.
type FactType string

const (
	FactPreference   FactType = "preference"
	FactWorkflow     FactType = "workflow"
	FactConstraint   FactType = "constraint"
	FactRelationship FactType = "relationship"
	FactPlain        FactType = "fact"
)

// Fact is one persisted memory record (memory/facts/{id}.json). Read-only
// from the dashboard's perspective.
type Fact struct {
	ID         string    `json:"id"`
	Type       FactType  `json:"type"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags,omitempty"`
	EntityRef  string    `json:"entityRef,omitempty"`
	ProjectRef string    `json:"projectRef,omitempty"`
	Universal  bool      `json:"universal"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"createdAt"`
}

// EdgeType is the relation carried by a graph edge.
type EdgeType string

const (
	EdgePartOf     EdgeType = "part_of"
	EdgeBelongsTo  EdgeType = "belongs_to"
	EdgeAssignedTo EdgeType = "assigned_to"
	EdgeDependsOn  EdgeType = "depends_on"
	EdgeReferences EdgeType = "references"
)

// GraphNode is a typed, labeled node, optionally positioned for layout.
type GraphNode struct {
	ID    string   `json:"id"`
	Type  string   `json:"type"`
	Label string   `json:"label"`
	X     *float64 `json:"x,omitempty"`
	Y     *float64 `json:"y,omitempty"`
}

// GraphEdge connects two node ids with a typed relation.
type GraphEdge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Type   EdgeType `json:"type"`
}

// GraphData is the single knowledge-graph snapshot (.openclaw/graph.json),
// passed through to clients unmodified.
type GraphData struct {
	Version     int         `json:"version"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Nodes       []GraphNode `json:"nodes"`
	Edges       []GraphEdge `json:"edges"`
}

// Snapshot is the full in-memory view of the workspace at one point in time.
// It is disposable: rebuilt from disk on every request, never mutated.
type Snapshot struct {
	Tasks    []Task
	Projects []Project
	Facts    []Fact
	Graph    *GraphData
}

// TaskStats aggregates task counts for the dashboard.
type TaskStats struct {
	Total        int `json:"total"`
	Completed    int `json:"completed"`
	InProgress   int `json:"inProgress"`
	Todo         int `json:"todo"`
	Blocked      int `json:"blocked"`
	HighPriority int `json:"highPriority"`
	Overdue      int `json:"overdue"`
}

// ProjectStats aggregates project counts by status.
type ProjectStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Archived int `json:"archived"`
	Paused   int `json:"paused"`
}

// FactStats aggregates fact counts.
type FactStats struct {
	Total     int `json:"total"`
	Universal int `json:"universal"`
}

// DashboardStats is derived on every request and never persisted.
type DashboardStats struct {
	Tasks    TaskStats    `json:"tasks"`
	Projects ProjectStats `json:"projects"`
	Facts    FactStats    `json:"facts"`
}

// ProjectProgress summarizes task completion for one project.
type ProjectProgress struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Todo       int `json:"todo"`
	Percentage int `json:"percentage"`
}

// MilestoneProgress summarizes completion of the tasks a milestone lists.
type MilestoneProgress struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Percentage int `json:"percentage"`
}

// ProjectRefFor builds the composite reference tasks use to point at a
// project.
func ProjectRefFor(projectID string) string {
	return "projects/" + projectID
}

// DateOf returns the date portion of t in the workspace's canonical
// YYYY-MM-DD form, in UTC to match record producers.
func DateOf(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
