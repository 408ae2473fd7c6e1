package result

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/tabuada-lambda/internal/config"
	"github.com/saulo-duarte/tabuada-lambda/internal/roster"
)

type Handler struct {
	service ResultService
}

func NewHandler(s ResultService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	results, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list results")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, results)
}

func (h *Handler) ListResultsByStudent(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	studentID := chi.URLParam(r, "studentID")
	results, err := h.service.ListByStudent(r.Context(), studentID)
	if err != nil {
		if errors.Is(err, roster.ErrStudentNotFound) {
			http.Error(w, "student not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to list student results")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, results)
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	overview, err := h.service.Overview(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to build analytics overview")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, overview)
}

func (h *Handler) GetStudentSummary(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	studentID := chi.URLParam(r, "studentID")
	summary, err := h.service.StudentSummary(r.Context(), studentID)
	if err != nil {
		if errors.Is(err, roster.ErrStudentNotFound) {
			http.Error(w, "student not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to build student summary")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, summary)
}
