// internal/app/features/analytics/summary.go
package analytics

import (
	"net/http"

	"github.com/dalemusser/gardenadmin/internal/app/system/viewdata"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
)

type pageData struct {
	viewdata.BaseVM
	Ranges  []Option
	Summary SummaryView
}

// ServePage loads analytics for the requested (or last used) range.
// GET /analytics
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	h.Board.SetActive(models.SectionAnalytics)
	h.Board.LoadAnalytics(r.Context(), query.Get(r, "range"))

	rng := h.Board.AnalyticsRange()
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, models.SectionAnalytics),
		Ranges:  RangeOptions(rng),
		Summary: BuildSummary(h.Board.Analytics(), rng),
	}
	templates.Render(w, r, "analytics_page", data)
}

// ServeSummary reloads analytics for a range and renders the summary cards.
// An unknown range keeps the previous one.
// GET /analytics/summary?range=
func (h *Handler) ServeSummary(w http.ResponseWriter, r *http.Request) {
	h.Board.LoadAnalytics(r.Context(), query.Get(r, "range"))
	templates.RenderSnippet(w, "analytics_summary", BuildSummary(h.Board.Analytics(), h.Board.AnalyticsRange()))
}
