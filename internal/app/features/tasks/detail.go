// internal/app/features/tasks/detail.go
package tasks

import (
	"net/http"

	"github.com/dalemusser/gardenadmin/internal/app/system/alert"
	"github.com/dalemusser/gardenadmin/internal/app/system/format"
	"github.com/dalemusser/gardenadmin/internal/app/system/gardenapi"
	"github.com/dalemusser/gardenadmin/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
)

// ServeDetail fetches one task and renders the detail modal.
// GET /tasks/{id}
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Fetch(), h.Log, "task detail")
	defer cancel()

	task, err := h.API.Task(ctx, taskID)
	if err != nil {
		if gardenapi.IsNotFound(err) {
			h.ErrLog.LogBadRequest(w, r, "task not found", err, "Task not found.", "/tasks")
			return
		}
		h.ErrLog.LogServerError(w, r, "load task detail failed", err, "Failed to load task details.", "/tasks")
		return
	}

	v := BuildDetail(*task, h.Board.Staff().Items)
	v.OriginalImageURL = format.AbsURL(h.MediaBase, v.OriginalImageURL)
	v.CompletionImageURL = format.AbsURL(h.MediaBase, v.CompletionImageURL)
	v.CSRFToken = csrf.Token(r)
	templates.RenderSnippet(w, "task_detail_modal", v)
}

// ServeUnassigned lists open tasks whose assignee is missing or inactive.
// GET /tasks/unassigned
func (h *Handler) ServeUnassigned(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Fetch(), h.Log, "unassigned tasks")
	defer cancel()

	items, err := h.API.UnassignedTasks(ctx)
	if err != nil {
		alert.Write(w, alert.Failure(err, "Failed to load unassigned tasks"))
		return
	}
	templates.RenderSnippet(w, "tasks_unassigned", BuildUnassigned(items, h.Board.Staff().Items))
}
