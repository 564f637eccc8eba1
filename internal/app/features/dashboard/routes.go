// internal/app/features/dashboard/routes.go
package dashboard

import "github.com/go-chi/chi/v5"

// Routes wires the dashboard feature under whatever mount point
// the top-level router chooses (e.g., "/dashboard").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeDashboard)
	r.Get("/stats", h.ServeStats)
	r.Get("/activity", h.ServeActivity)
	r.Get("/last-update", h.ServeLastUpdate)
	r.Post("/refresh", h.HandleRefresh)
	return r
}
