package roster

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListStudents)
	r.Get("/{id}", h.GetStudent)
	return r
}
