// internal/app/features/media/routes.go
package media

import "github.com/go-chi/chi/v5"

// Routes mounts the media gallery (typically at "/media").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/list", h.ServeListFragment)
	r.Post("/cleanup", h.HandleCleanup)
	return r
}
