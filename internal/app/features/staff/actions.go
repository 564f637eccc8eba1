// internal/app/features/staff/actions.go
package staff

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/gardenadmin/internal/app/system/alert"
	"github.com/dalemusser/gardenadmin/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// reload refreshes the staff list and the stat cards.
func (h *Handler) reload(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error { h.Board.LoadStaff(ctx); return nil })
	g.Go(func() error { h.Board.LoadStats(ctx); return nil })
	_ = g.Wait()
}

// HandleCreate creates a staff account.
// POST /staff
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	staffID := strings.TrimSpace(r.FormValue("staffId"))
	name := strings.TrimSpace(r.FormValue("name"))
	if staffID == "" || name == "" {
		alert.Write(w, alert.Error("Please fill in all fields"))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Action(), h.Log, "create staff")
	defer cancel()

	_, err := h.API.CreateStaff(ctx, staffID, name)
	h.AuditLog.StaffCreated(ctx, r, staffID, name, err)
	if err != nil {
		h.Log.Warn("create staff failed", zap.String("staff_id", staffID), zap.Error(err))
		alert.Write(w, alert.ServerError(err, "Failed to create staff"))
		return
	}

	h.reload(r.Context())
	alert.Write(w, alert.Success("Staff member created successfully"), alert.EventStaffChanged, alert.EventStatsChanged)
}

// HandleSetActive activates or deactivates a staff account.
// POST /staff/{id}/active
func (h *Handler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")
	active, err := strconv.ParseBool(r.FormValue("active"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad active flag", err, "Failed to update staff status", "/staff")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Action(), h.Log, "set staff active")
	defer cancel()

	res, err := h.API.SetStaffActive(ctx, staffID, active)
	h.AuditLog.StaffActiveChanged(ctx, r, staffID, active, err)
	if err != nil {
		h.Log.Warn("set staff active failed", zap.String("staff_id", staffID), zap.Error(err))
		alert.Write(w, alert.Failure(err, "Failed to update staff status"))
		return
	}

	h.reload(r.Context())
	msg := res.Message
	if msg == "" {
		msg = "Staff status updated"
	}
	alert.Write(w, alert.Success(msg), alert.EventStaffChanged, alert.EventStatsChanged)
}
