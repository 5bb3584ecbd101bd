package api

import (
	"log/slog"
	"net/http"
	"time"
)

// RegisterRoutes mounts every quiz endpoint on mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /health", h.health)

	// Bank
	mux.HandleFunc("GET /bank", h.getBank)
	mux.HandleFunc("POST /bank/reload", h.reloadBank)
	mux.HandleFunc("POST /bank/upload", h.uploadBank)
	mux.HandleFunc("GET /sources", h.listSources)

	// Session
	mux.HandleFunc("GET /session", h.getSession)
	mux.HandleFunc("PUT /session/filters", h.applyFilters)
	mux.HandleFunc("POST /session/reset", h.resetSession)
	mux.HandleFunc("POST /session/answers", h.submitAnswer)
	mux.HandleFunc("POST /session/navigate", h.navigate)
	mux.HandleFunc("PUT /session/review-mode", h.setReviewMode)
	mux.HandleFunc("PUT /session/explanation", h.setExplanation)

	// Questions of the session
	mux.HandleFunc("POST /session/questions/{index}/flag", h.toggleFlag)
	mux.HandleFunc("POST /session/questions/{index}/favorite", h.toggleFavorite)

	// Stats & export
	mux.HandleFunc("GET /stats/categories", h.categoryStats)
	mux.HandleFunc("GET /export/results.csv", h.exportResults)
}

// health reports liveness.
// @Summary  Health check
// @Tags     System
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Logging logs one line per request.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
			)
		})
	}
}

// CORS allows a browser front end on another origin to call the API.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
