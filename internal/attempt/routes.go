package attempt

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Begin)
	r.Get("/{id}", h.Get)
	r.Delete("/{id}", h.Cancel)
	r.Post("/{id}/tables/{table}", h.ToggleTable)
	r.Post("/{id}/start", h.Start)
	r.Post("/{id}/answers", h.SubmitAnswer)
	r.Post("/{id}/restart", h.Restart)
	r.Get("/{id}/feedback", h.Feedback)
	r.Post("/{id}/save", h.Save)
	return r
}
