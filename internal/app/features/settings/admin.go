// internal/app/features/settings/admin.go
package settings

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/gardenadmin/internal/app/store/audit"
	"github.com/dalemusser/gardenadmin/internal/app/system/format"
	"github.com/dalemusser/gardenadmin/internal/app/system/timeouts"
	"github.com/dalemusser/gardenadmin/internal/app/system/viewdata"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// recentEvents is how many audit events the page lists.
const recentEvents = 20

type eventRow struct {
	When    string
	Type    string
	Target  string
	Success bool
	Reason  string
}

type settingsVM struct {
	viewdata.BaseVM
	RefreshInterval string
	MaxImageSize    string
	MaxVideoSize    string
	AutoRefresh     bool
	Saved           bool
	Error           string
	Events          []eventRow
}

// ServeSettings displays the settings form.
// GET /settings
func (h *Handler) ServeSettings(w http.ResponseWriter, r *http.Request) {
	h.Board.SetActive(models.SectionSettings)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Fetch())
	defer cancel()

	s, err := h.Store.Get(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load settings failed", err, "Failed to load settings.", "/dashboard")
		return
	}

	vm := h.newVM(ctx, r)
	vm.RefreshInterval = strconv.Itoa(s.RefreshIntervalSecs)
	vm.MaxImageSize = strconv.Itoa(s.MaxImageSizeMB)
	vm.MaxVideoSize = strconv.Itoa(s.MaxVideoSizeMB)
	vm.AutoRefresh = s.AutoRefresh
	vm.Saved = query.Get(r, "saved") == "1"
	templates.Render(w, r, "settings_page", vm)
}

// HandleSettings validates and saves the settings form, then applies the
// refresh preferences to the running controller.
// POST /settings
func (h *Handler) HandleSettings(w http.ResponseWriter, r *http.Request) {
	f := Form{
		RefreshInterval: r.FormValue("refresh_interval"),
		MaxImageSize:    r.FormValue("max_image_size"),
		MaxVideoSize:    r.FormValue("max_video_size"),
		AutoRefresh:     r.FormValue("auto_refresh") != "",
	}
	s, invalid := f.Parse()
	if invalid != "" {
		h.renderWithError(w, r, f, invalid)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Action())
	defer cancel()

	err := h.Store.Save(ctx, s)
	h.AuditLog.SettingsUpdated(ctx, r, Details(s), err)
	if err != nil {
		h.Log.Error("failed to save settings", zap.Error(err))
		h.renderWithError(w, r, f, "Failed to save settings.")
		return
	}

	h.apply(s)
	http.Redirect(w, r, "/settings?saved=1", http.StatusSeeOther)
}

// apply pushes saved settings into the refresh controller.
func (h *Handler) apply(s models.DashboardSettings) {
	if h.Refresh == nil {
		return
	}
	h.Refresh.SetInterval(s.RefreshInterval())
	if s.AutoRefresh {
		h.Refresh.Enable(s.RefreshInterval())
	} else {
		h.Refresh.Disable()
	}
	h.Log.Info("refresh settings applied",
		zap.Bool("auto_refresh", s.AutoRefresh),
		zap.Duration("interval", s.RefreshInterval()))
}

func (h *Handler) renderWithError(w http.ResponseWriter, r *http.Request, f Form, errMsg string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Fetch())
	defer cancel()

	vm := h.newVM(ctx, r)
	vm.RefreshInterval = f.RefreshInterval
	vm.MaxImageSize = f.MaxImageSize
	vm.MaxVideoSize = f.MaxVideoSize
	vm.AutoRefresh = f.AutoRefresh
	vm.Error = errMsg
	templates.Render(w, r, "settings_page", vm)
}

func (h *Handler) newVM(ctx context.Context, r *http.Request) settingsVM {
	return settingsVM{
		BaseVM: viewdata.NewBaseVM(r, models.SectionSettings),
		Events: h.recent(ctx),
	}
}

func (h *Handler) recent(ctx context.Context) []eventRow {
	if h.Events == nil {
		return nil
	}
	events, err := h.Events.GetRecent(ctx, recentEvents)
	if err != nil {
		h.Log.Warn("load audit events failed", zap.Error(err))
		return nil
	}
	return eventRows(events)
}

func eventRows(events []audit.Event) []eventRow {
	rows := make([]eventRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, eventRow{
			When:    format.DateTime(e.Timestamp, "Unknown"),
			Type:    e.EventType,
			Target:  e.Target,
			Success: e.Success,
			Reason:  e.FailureReason,
		})
	}
	return rows
}
