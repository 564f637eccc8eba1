// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/gardenadmin/internal/app/system/alert"
	"github.com/dalemusser/gardenadmin/internal/app/system/board"
	"github.com/dalemusser/gardenadmin/internal/app/system/viewdata"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the dashboard section, the stat cards shared by every
// section, and the manual refresh.
type Handler struct {
	Board *board.Board
	Log   *zap.Logger
}

// NewHandler constructs a dashboard Handler.
func NewHandler(b *board.Board, logger *zap.Logger) *Handler {
	return &Handler{
		Board: b,
		Log:   logger,
	}
}

type pageData struct {
	viewdata.BaseVM
	Stats    StatsView
	Activity ActivityView
	Charts   ChartsView
}

// ServeDashboard loads stats, recent activity and charts, then renders the
// dashboard page.
// GET /dashboard
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	h.Board.SetActive(models.SectionDashboard)
	h.Board.LoadDashboard(r.Context())

	data := pageData{
		BaseVM:   viewdata.NewBaseVM(r, models.SectionDashboard),
		Stats:    BuildStats(h.Board.Stats()),
		Activity: BuildActivity(h.Board.Activity()),
		Charts:   BuildCharts(),
	}
	templates.Render(w, r, "dashboard_page", data)
}

// ServeStats renders the stat cards from the current snapshot.
// GET /dashboard/stats
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	templates.RenderSnippet(w, "dashboard_stats", BuildStats(h.Board.Stats()))
}

// ServeActivity renders the recent activity list from the current snapshot.
// GET /dashboard/activity
func (h *Handler) ServeActivity(w http.ResponseWriter, r *http.Request) {
	templates.RenderSnippet(w, "dashboard_activity", BuildActivity(h.Board.Activity()))
}

// HandleRefresh reloads the active section and the stats, tells every
// panel on the page to redraw, and answers with the new header status.
// POST /dashboard/refresh
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	h.Board.Refresh(r.Context())
	h.Log.Debug("manual refresh", zap.String("section", h.Board.Active()))

	alert.SetTrigger(w, alert.EventRefreshed)
	templates.RenderSnippet(w, viewdata.StatusTemplate, viewdata.NewBaseVM(r, h.Board.Active()))
}

// ServeLastUpdate renders the header refresh status. since is the update
// time (unix ms) the page last saw; when the board has refreshed after it,
// panels are told to redraw so auto-refresh ticks reach the browser.
// GET /dashboard/last-update?since=
func (h *Handler) ServeLastUpdate(w http.ResponseWriter, r *http.Request) {
	since, _ := strconv.ParseInt(query.Get(r, "since"), 10, 64)
	if last := h.Board.LastUpdate(); !last.IsZero() && last.UnixMilli() > since {
		alert.SetTrigger(w, alert.EventRefreshed)
	}
	templates.RenderSnippet(w, viewdata.StatusTemplate, viewdata.NewBaseVM(r, h.Board.Active()))
}
