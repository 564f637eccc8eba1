// internal/app/features/analytics/routes.go
package analytics

import "github.com/go-chi/chi/v5"

// Routes mounts analytics (typically at "/analytics").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePage)
	r.Get("/summary", h.ServeSummary)
	r.Get("/report", h.ServeReport)
	return r
}
