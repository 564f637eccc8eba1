// internal/app/features/students/routes.go
package students

import "github.com/go-chi/chi/v5"

// Routes mounts the students section (typically at "/students").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/list", h.ServeListFragment)
	return r
}
