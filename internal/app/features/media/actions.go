// internal/app/features/media/actions.go
package media

import (
	"net/http"

	"github.com/dalemusser/gardenadmin/internal/app/system/alert"
	"github.com/dalemusser/gardenadmin/internal/app/system/gardenapi"
	"github.com/dalemusser/gardenadmin/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleCleanup deletes media older than the default age and reloads the
// gallery.
// POST /media/cleanup
func (h *Handler) HandleCleanup(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Action(), h.Log, "cleanup media")
	defer cancel()

	days := gardenapi.DefaultCleanupDays
	res, err := h.API.CleanupMedia(ctx, days)
	deleted := 0
	if res != nil {
		deleted = res.FilesDeleted
	}
	h.AuditLog.MediaCleanup(ctx, r, days, deleted, err)
	if err != nil {
		h.Log.Warn("media cleanup failed", zap.Error(err))
		alert.Write(w, alert.Failure(err, "Failed to clean up media"))
		return
	}

	h.Log.Info("media cleanup", zap.Int("files_deleted", res.FilesDeleted), zap.Int64("space_freed", res.SpaceFreed))
	h.Board.LoadMedia(r.Context())
	alert.Write(w, alert.Success(CleanupMessage(res)), alert.EventMediaChanged)
}
