package attempt

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/tabuada-lambda/internal/config"
	"github.com/saulo-duarte/tabuada-lambda/internal/evaluation"
	"github.com/saulo-duarte/tabuada-lambda/internal/roster"
)

type Handler struct {
	service AttemptService
}

func NewHandler(s AttemptService) *Handler {
	return &Handler{service: s}
}

func writeError(w http.ResponseWriter, log logrus.FieldLogger, err error, action string) {
	switch {
	case errors.Is(err, evaluation.ErrInvalidInput), errors.Is(err, ErrInvalidID):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrAttemptNotFound):
		http.Error(w, "evaluation not found", http.StatusNotFound)
	case errors.Is(err, roster.ErrStudentNotFound):
		http.Error(w, "student not found", http.StatusNotFound)
	case errors.Is(err, evaluation.ErrWrongPhase), errors.Is(err, evaluation.ErrSessionClosed):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.WithError(err).Errorf("Failed to %s", action)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) Begin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req BeginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body to begin evaluation")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.StudentID == "" {
		http.Error(w, "student_id required", http.StatusBadRequest)
		return
	}

	view, err := h.service.Begin(r.Context(), req.StudentID)
	if err != nil {
		writeError(w, log, err, "begin evaluation")
		return
	}

	config.JSON(w, http.StatusCreated, view)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	view, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err, "get evaluation")
		return
	}

	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) ToggleTable(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	table, err := strconv.Atoi(chi.URLParam(r, "table"))
	if err != nil {
		http.Error(w, "invalid table", http.StatusBadRequest)
		return
	}

	view, err := h.service.ToggleTable(r.Context(), chi.URLParam(r, "id"), table)
	if err != nil {
		writeError(w, log, err, "toggle table")
		return
	}

	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	view, err := h.service.Start(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err, "start quiz")
		return
	}

	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body to submit answer")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.service.Submit(r.Context(), chi.URLParam(r, "id"), req.Raw())
	if err != nil {
		writeError(w, log, err, "submit answer")
		return
	}

	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) Restart(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	view, err := h.service.Restart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err, "restart evaluation")
		return
	}

	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.Cancel(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, log, err, "cancel evaluation")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Feedback(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	view, err := h.service.Feedback(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err, "get feedback")
		return
	}

	status := http.StatusOK
	if !view.Ready {
		status = http.StatusAccepted
	}
	config.JSON(w, status, view)
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	res, err := h.service.Save(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err, "save evaluation")
		return
	}

	config.JSON(w, http.StatusCreated, res)
}
