package result

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListResults)
	r.Get("/students/{studentID}", h.ListResultsByStudent)
	return r
}

func AnalyticsRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetOverview)
	r.Get("/students/{studentID}", h.GetStudentSummary)
	return r
}
