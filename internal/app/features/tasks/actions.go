// internal/app/features/tasks/actions.go
package tasks

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/gardenadmin/internal/app/system/alert"
	"github.com/dalemusser/gardenadmin/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// reload refreshes the panels a task change can affect.
func (h *Handler) reload(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error { h.Board.LoadTasks(ctx); return nil })
	g.Go(func() error { h.Board.LoadStats(ctx); return nil })
	_ = g.Wait()
}

// HandleComplete marks a task completed.
// POST /tasks/{id}/complete
func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")
	staffID := strings.TrimSpace(r.FormValue("staffId"))

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Action(), h.Log, "mark completed")
	defer cancel()

	res, err := h.API.MarkCompleted(ctx, taskID, staffID)
	h.AuditLog.TaskCompleted(ctx, r, taskID, err)
	if err != nil {
		h.Log.Warn("mark completed failed", zap.String("task_id", taskID), zap.Error(err))
		alert.Write(w, alert.ServerError(err, "Failed to mark task complete"))
		return
	}

	h.reload(r.Context())
	msg := res.Message
	if msg == "" {
		msg = "Task marked as completed"
	}
	alert.Write(w, alert.Success(msg), alert.EventTasksChanged, alert.EventStatsChanged, alert.EventStaffChanged)
}

// HandleReassign moves a task to the staff member named in the form.
// POST /tasks/{id}/reassign
func (h *Handler) HandleReassign(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")
	staffID := strings.TrimSpace(r.FormValue("staffId"))
	if staffID == "" {
		alert.Write(w, alert.Error("Please select a staff member"))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Action(), h.Log, "reassign task")
	defer cancel()

	res, err := h.API.ReassignTask(ctx, taskID, staffID)
	if err != nil {
		h.AuditLog.TaskReassigned(ctx, r, taskID, "", staffID, err)
		h.Log.Warn("reassign failed", zap.String("task_id", taskID), zap.Error(err))
		alert.Write(w, alert.ServerError(err, "Failed to reassign task"))
		return
	}
	h.AuditLog.TaskReassigned(ctx, r, taskID, res.OldStaffID, staffID, nil)

	h.reload(r.Context())
	msg := res.Message
	if msg == "" {
		msg = "Task reassigned"
	}
	alert.Write(w, alert.Success(msg), alert.EventTasksChanged, alert.EventStatsChanged, alert.EventStaffChanged)
}
