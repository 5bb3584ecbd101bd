package api

import (
	"net/http"
	"strconv"

	practicesession "github.com/qbank-local/backend/internal/domain/practice_session"
)

// pathIndex parses the {index} path value. On failure it writes a 400.
func pathIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	idx, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "index must be an integer")
		return 0, false
	}
	return idx, true
}

// toggleFlag flags or unflags a question.
// @Summary      Toggle flag
// @Description  Flag or unflag the question at a filtered-view index.
// @Tags         Questions
// @Produce      json
// @Param        index  path      int  true  "Filtered-view index"
// @Success      200    {object}  SessionResponse
// @Failure      400    {object}  map[string]string  "index out of range"
// @Router       /session/questions/{index}/flag [post]
func (h *Handler) toggleFlag(w http.ResponseWriter, r *http.Request) {
	idx, ok := pathIndex(w, r)
	if !ok {
		return
	}
	h.dispatch(w, r, practicesession.ToggleFlag{Index: idx})
}

// toggleFavorite marks or unmarks a question as favorite.
// @Summary      Toggle favorite
// @Tags         Questions
// @Produce      json
// @Param        index  path      int  true  "Filtered-view index"
// @Success      200    {object}  SessionResponse
// @Failure      400    {object}  map[string]string  "index out of range"
// @Router       /session/questions/{index}/favorite [post]
func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	idx, ok := pathIndex(w, r)
	if !ok {
		return
	}
	h.dispatch(w, r, practicesession.ToggleFavorite{Index: idx})
}
