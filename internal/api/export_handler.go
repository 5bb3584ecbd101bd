package api

import (
	"net/http"

	practicesession "github.com/qbank-local/backend/internal/domain/practice_session"
	"github.com/qbank-local/backend/internal/infrastructure/tabular"
)

// exportResults downloads the answered questions as CSV.
// @Summary      Export results
// @Description  Answered questions in presentation order. A SourceFile column is added when questions came from several files.
// @Tags         Export
// @Produce      text/csv
// @Success      200  {file}    file
// @Failure      409  {object}  map[string]string  "no bank loaded"
// @Router       /export/results.csv [get]
func (h *Handler) exportResults(w http.ResponseWriter, r *http.Request) {
	rows, withSource, err := h.quiz.Results()
	if h.handleServiceError(w, err) {
		return
	}

	header, records := practicesession.ResultsTable(rows, withSource)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="results.csv"`)
	w.WriteHeader(http.StatusOK)
	if err := tabular.WriteCSV(w, header, records); err != nil {
		h.logger.Error("write results csv", "error", err)
	}
}
