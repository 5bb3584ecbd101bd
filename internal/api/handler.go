package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"

	practicesession "github.com/qbank-local/backend/internal/domain/practice_session"
	"github.com/qbank-local/backend/internal/domain/questionbank"
	"github.com/qbank-local/backend/internal/infrastructure/tabular"
	"github.com/qbank-local/backend/internal/service"
)

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	quiz   *service.QuizService
	logger *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(quiz *service.QuizService, logger *slog.Logger) *Handler {
	return &Handler{
		quiz:   quiz,
		logger: logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes {"error": msg} with the given status code.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON reads the request body into v. On failure it writes a 400 and
// returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

type validator interface {
	Validate() error
}

// decodeAndValidate decodes the body and runs its Validate method.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleServiceError maps quiz errors to HTTP responses. Returns true if an
// error was handled (caller should return).
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	var verr *questionbank.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(w, http.StatusUnprocessableEntity, verr.Error())
	case errors.Is(err, tabular.ErrUnsupportedFormat):
		respondError(w, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, service.ErrNoSources):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, practicesession.ErrReviewMode),
		errors.Is(err, practicesession.ErrEmptyView),
		errors.Is(err, service.ErrNoBank):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, practicesession.ErrIndexOutOfRange),
		errors.Is(err, practicesession.ErrInvalidChoice):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("quiz error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
