// internal/app/features/tasks/routes.go
package tasks

import "github.com/go-chi/chi/v5"

// Routes mounts the tasks section (typically at "/tasks").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/list", h.ServeListFragment)
	r.Get("/export.csv", h.ServeExport)
	r.Get("/unassigned", h.ServeUnassigned)

	r.Get("/{id}", h.ServeDetail)
	r.Post("/{id}/complete", h.HandleComplete)
	r.Post("/{id}/reassign", h.HandleReassign)

	return r
}
