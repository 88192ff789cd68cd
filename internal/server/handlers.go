package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/7D-codes/lifeos-core/internal/derive"
	"github.com/7D-codes/lifeos-core/internal/types"
	"github.com/7D-codes/lifeos-core/internal/workspace"
)

// dataResponse is the full dashboard payload. Collections are always arrays,
// never null; the graph is null when the snapshot file is absent.
type dataResponse struct {
	Tasks    []types.Task         `json:"tasks"`
	Projects []types.Project      `json:"projects"`
	Facts    []types.Fact         `json:"facts"`
	Graph    *types.GraphData     `json:"graph"`
	Stats    types.DashboardStats `json:"stats"`
	Overdue  []types.Task         `json:"overdue"`
	DueToday []types.Task         `json:"dueToday"`
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	if err := s.ws.EnsureLayout(); err != nil {
		s.log.Error("failed to ensure workspace layout", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError,
			errorResponse{Error: "Failed to load data", Details: err.Error()})
		return
	}

	snap, err := s.ws.Snapshot(r.Context())
	if err != nil {
		s.log.Error("failed to aggregate workspace", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError,
			errorResponse{Error: "Failed to load data", Details: err.Error()})
		return
	}

	now := time.Now()
	s.writeJSON(w, http.StatusOK, dataResponse{
		Tasks:    orEmpty(snap.Tasks),
		Projects: orEmpty(snap.Projects),
		Facts:    orEmpty(snap.Facts),
		Graph:    snap.Graph,
		Stats:    derive.Stats(snap, now),
		Overdue:  orEmpty(derive.OverdueTasks(snap, now)),
		DueToday: orEmpty(derive.TasksDueToday(snap, now)),
	})
}

// taskPatch is the consolidated mutation request. When both fields are
// present, status wins.
type taskPatch struct {
	TaskID   string           `json:"taskId"`
	Status   types.TaskStatus `json:"status,omitempty"`
	Priority types.Priority   `json:"priority,omitempty"`
}

func (s *Server) handleTaskPatch(w http.ResponseWriter, r *http.Request) {
	var req taskPatch
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	var (
		updated *types.Task
		err     error
	)
	switch {
	case req.Status != "":
		if !types.ValidTaskStatus(req.Status) {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid status"})
			return
		}
		updated, err = s.ws.UpdateTaskStatus(req.TaskID, req.Status)
	case req.Priority != "":
		if !types.ValidPriority(req.Priority) {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid priority"})
			return
		}
		updated, err = s.ws.UpdateTaskPriority(req.TaskID, req.Priority)
	default:
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No valid update provided"})
		return
	}

	if errors.Is(err, workspace.ErrTaskNotFound) {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "Task not found"})
		return
	}
	if err != nil {
		s.log.Error("failed to update task", zap.String("task", req.TaskID), zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError,
			errorResponse{Error: "Failed to update task", Details: err.Error()})
		return
	}

	s.writeJSON(w, http.StatusOK, updated)
}

// orEmpty keeps empty collections as [] in JSON instead of null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
