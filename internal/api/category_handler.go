package api

import (
	"net/http"

	"github.com/qbank-local/backend/internal/domain/category"
)

// ── Request / Response types ────────────────────────────────────────────────

type CategoryStatsResponse struct {
	Category    string  `json:"category" example:"Networking"`
	Attempts    int     `json:"attempts" example:"3"`
	Correct     int     `json:"correct" example:"2"`
	AccuracyPct float64 `json:"accuracy_pct" example:"66.7"`
}

type StatsResponse struct {
	Categories []CategoryStatsResponse `json:"categories"`
	Overall    CategoryStatsResponse   `json:"overall"`
}

func toCategoryStats(name string, st category.Stats) CategoryStatsResponse {
	return CategoryStatsResponse{
		Category:    name,
		Attempts:    st.Attempts,
		Correct:     st.Correct,
		AccuracyPct: st.AccuracyPct,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// categoryStats returns answer accuracy per category.
// @Summary      Category stats
// @Description  Attempts, correct answers and accuracy per category of the current session. Categories without attempts are omitted.
// @Tags         Stats
// @Produce      json
// @Success      200  {object}  StatsResponse
// @Failure      409  {object}  map[string]string  "no bank loaded"
// @Router       /stats/categories [get]
func (h *Handler) categoryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.quiz.Stats()
	if h.handleServiceError(w, err) {
		return
	}

	resp := StatsResponse{
		Categories: make([]CategoryStatsResponse, 0, len(stats)),
		Overall:    toCategoryStats("", category.Overall(stats)),
	}
	for _, row := range category.Sorted(stats) {
		resp.Categories = append(resp.Categories, toCategoryStats(row.Category, row.Stats))
	}
	respondJSON(w, http.StatusOK, resp)
}
