// internal/app/features/settings/system.go
package settings

import (
	"fmt"
	"net/http"

	"github.com/dalemusser/gardenadmin/internal/app/system/alert"
	"github.com/dalemusser/gardenadmin/internal/app/system/format"
	"github.com/dalemusser/gardenadmin/internal/app/system/timeouts"
	"github.com/dalemusser/gardenadmin/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// SystemView is the system information card.
type SystemView struct {
	Tasks    int
	Students int
	Staff    int
	Files    int
	SizeMB   string
	Error    string
}

// ServeSystem renders database and storage totals.
// GET /settings/system
func (h *Handler) ServeSystem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Fetch(), h.Log, "system stats")
	defer cancel()

	var v SystemView
	st, err := h.API.SystemStats(ctx)
	if err != nil {
		h.Log.Warn("system stats failed", zap.Error(err))
		v.Error = "Failed to load system information"
	} else {
		v = SystemView{
			Tasks:    st.Database.TotalTasks,
			Students: st.Database.TotalStudents,
			Staff:    st.Database.TotalStaff,
			Files:    st.Storage.TotalFiles,
			SizeMB:   format.MB(st.Storage.TotalSize),
		}
	}
	templates.RenderSnippet(w, "settings_system", v)
}

// HandleProcessQueue assigns queued tasks to staff and reloads the stats.
// POST /settings/queue/process
func (h *Handler) HandleProcessQueue(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Action(), h.Log, "process queue")
	defer cancel()

	res, err := h.API.ProcessQueue(ctx)
	assigned := 0
	if res != nil {
		assigned = res.TasksAssigned
	}
	h.AuditLog.QueueProcessed(ctx, r, assigned, err)
	if err != nil {
		h.Log.Warn("process queue failed", zap.Error(err))
		alert.Write(w, alert.ServerError(err, "Failed to process queue"))
		return
	}

	h.Board.LoadStats(r.Context())
	alert.Write(w, alert.Success(fmt.Sprintf("Assigned %d tasks", assigned)),
		alert.EventStatsChanged, alert.EventTasksChanged)
}

// HandleToggleAutoRefresh flips periodic refresh and re-renders the header
// status.
// POST /settings/autorefresh
func (h *Handler) HandleToggleAutoRefresh(w http.ResponseWriter, r *http.Request) {
	if h.Refresh != nil {
		on := h.Refresh.Toggle()
		h.Log.Info("auto refresh toggled", zap.Bool("enabled", on))
	}
	templates.RenderSnippet(w, viewdata.StatusTemplate, viewdata.NewBaseVM(r, h.Board.Active()))
}
