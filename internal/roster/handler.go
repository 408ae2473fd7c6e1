package roster

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/tabuada-lambda/internal/config"
)

type Handler struct {
	repo StudentRepository
}

func NewHandler(repo StudentRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) ListStudents(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.repo.List())
}

func (h *Handler) GetStudent(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	student, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrStudentNotFound) {
			http.Error(w, "student not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to get student")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, student)
}
