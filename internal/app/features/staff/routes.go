// internal/app/features/staff/routes.go
package staff

import "github.com/go-chi/chi/v5"

// Routes mounts staff management (typically at "/staff").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/list", h.ServeListFragment)
	r.Post("/", h.HandleCreate)
	r.Post("/{id}/active", h.HandleSetActive)

	// Staff tasks modal (HTMX)
	r.Get("/{id}/tasks", h.ServeModal)
	r.Get("/tasks", h.ServeModalTasks)
	r.Post("/modal/close", h.HandleCloseModal)
	r.Get("/image", h.ServeImage)

	return r
}
