// internal/app/features/staff/modalhandlers.go
package staff

import (
	"net/http"
	"strings"

	"github.com/dalemusser/gardenadmin/internal/app/system/format"
	"github.com/dalemusser/gardenadmin/internal/app/system/timeouts"
	"github.com/dalemusser/gardenadmin/internal/app/system/uistate"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *Handler) remember(w http.ResponseWriter, r *http.Request, m Modal) {
	id := uistate.ModalIdentity{StaffID: m.StaffID, StaffName: m.StaffName, Filter: m.Filter}
	if err := h.UIState.SaveModalIdentity(w, r, id); err != nil {
		h.Log.Warn("save modal state failed", zap.Error(err))
	}
}

// ServeModal opens the staff tasks modal in the loading state. The modal
// body then requests /staff/tasks, which loads the pending tasks.
// GET /staff/{id}/tasks?name=
func (h *Handler) ServeModal(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")
	name := query.Get(r, "name")
	if name == "" {
		name = staffID
	}

	m := Modal{}.Open(staffID, name)
	h.remember(w, r, m)
	templates.RenderSnippet(w, "staff_tasks_modal", BuildModal(m, h.MediaBase))
}

// ServeModalTasks loads the tasks of the remembered staff member with the
// requested filter and renders the modal body.
// GET /staff/tasks?status=
func (h *Handler) ServeModalTasks(w http.ResponseWriter, r *http.Request) {
	id, ok := h.UIState.ModalIdentity(r)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	m := Modal{}.Open(id.StaffID, id.StaffName)
	status := query.Get(r, "status")
	if status == "" {
		status = id.Filter
	}
	m = m.SetFilter(status)
	if m.Filter != id.Filter {
		h.remember(w, r, m)
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Fetch(), h.Log, "staff tasks")
	defer cancel()

	m = m.Load(ctx, h.API)
	if m.State == ModalError {
		h.Log.Warn("staff tasks load failed", zap.String("staff_id", m.StaffID), zap.String("filter", m.Filter))
	}
	templates.RenderSnippet(w, "staff_tasks_content", BuildModal(m, h.MediaBase))
}

// HandleCloseModal forgets the modal identity and removes the modal.
// POST /staff/modal/close
func (h *Handler) HandleCloseModal(w http.ResponseWriter, r *http.Request) {
	if err := h.UIState.ClearModal(w, r); err != nil {
		h.Log.Warn("clear modal state failed", zap.Error(err))
	}
	w.WriteHeader(http.StatusOK)
}

type imageData struct {
	URL string
}

// ServeImage renders the image preview modal.
// GET /staff/image?url=
func (h *Handler) ServeImage(w http.ResponseWriter, r *http.Request) {
	u := strings.TrimSpace(query.Get(r, "url"))
	u = format.AbsURL(h.MediaBase, u)
	if !urlutil.IsValidAbsHTTPURL(u) {
		h.ErrLog.LogBadRequest(w, r, "bad image url", nil, "Invalid image URL.", "/staff")
		return
	}
	templates.RenderSnippet(w, "image_modal", imageData{URL: u})
}
