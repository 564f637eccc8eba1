// internal/app/features/analytics/report.go
package analytics

import (
	"io"
	"net/http"
	"strconv"

	"github.com/dalemusser/gardenadmin/internal/app/system/timeouts"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// ServeReport streams the server's PDF report as an attachment.
// GET /analytics/report?range=
func (h *Handler) ServeReport(w http.ResponseWriter, r *http.Request) {
	rng := query.Get(r, "range")
	if !models.IsValidRange(rng) {
		rng = h.Board.AnalyticsRange()
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Report(), h.Log, "generate report")
	defer cancel()

	rep, err := h.Reports.GenerateReport(ctx, rng)
	h.AuditLog.ReportGenerated(ctx, r, rng, err)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "generate report failed", err, "Error generating report.", "/analytics")
		return
	}
	defer rep.Close()

	name := ReportFilename(rng, h.Now().UnixMilli())
	w.Header().Set("Content-Type", rep.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	if rep.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(rep.Size, 10))
	}
	w.WriteHeader(http.StatusOK)

	n, err := io.Copy(w, rep.Body)
	if err != nil {
		h.Log.Warn("report stream interrupted", zap.String("range", rng), zap.Int64("bytes", n), zap.Error(err))
		return
	}
	h.Log.Info("report generated", zap.String("range", rng), zap.Int64("bytes", n))
}
