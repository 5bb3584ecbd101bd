package api

import (
	"net/http"

	"github.com/qbank-local/backend/internal/domain/questionbank"
	"github.com/qbank-local/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type BankResponse struct {
	TotalQuestions int            `json:"total_questions" example:"42"`
	Sources        []string       `json:"sources"`
	Categories     map[string]int `json:"categories"`
	Difficulties   map[string]int `json:"difficulties"`
	Malformed      int            `json:"malformed" example:"0"`
	Options        FilterOptions  `json:"options"`
}

// FilterOptions lists the values the filter pickers offer.
type FilterOptions struct {
	Categories   []string `json:"categories"`
	Difficulties []string `json:"difficulties"`
}

type LoadResponse struct {
	Bank     BankResponse `json:"bank"`
	Failures []string     `json:"failures"`
}

func toBankResponse(bank *questionbank.QuestionBank) BankResponse {
	summary := bank.Summarize()
	categories, difficulties := bank.Options()
	return BankResponse{
		TotalQuestions: summary.TotalQuestions,
		Sources:        nonNilStrings(summary.Sources),
		Categories:     summary.Categories,
		Difficulties:   summary.Difficulties,
		Malformed:      summary.Malformed,
		Options: FilterOptions{
			Categories:   nonNilStrings(categories),
			Difficulties: nonNilStrings(difficulties),
		},
	}
}

func toLoadResponse(report *service.LoadReport) LoadResponse {
	resp := LoadResponse{
		Bank:     toBankResponse(report.Bank),
		Failures: make([]string, 0, len(report.Failures)),
	}
	for _, f := range report.Failures {
		resp.Failures = append(resp.Failures, f.Error())
	}
	return resp
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getBank describes the loaded question bank.
// @Summary      Get the question bank
// @Description  Question count, sources and per-category/difficulty counts of the loaded bank.
// @Tags         Bank
// @Produce      json
// @Success      200  {object}  BankResponse
// @Failure      409  {object}  map[string]string  "no bank loaded"
// @Router       /bank [get]
func (h *Handler) getBank(w http.ResponseWriter, r *http.Request) {
	bank, _, err := h.quiz.Bank()
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toBankResponse(bank))
}

// reloadBank re-reads the configured sources.
// @Summary      Reload the question bank
// @Description  Re-read the configured files or folder. Sources that fail validation are skipped and listed in failures. The session is rebuilt.
// @Tags         Bank
// @Produce      json
// @Success      200  {object}  LoadResponse
// @Failure      422  {object}  map[string]string  "no usable source"
// @Failure      500  {object}  map[string]string
// @Router       /bank/reload [post]
func (h *Handler) reloadBank(w http.ResponseWriter, r *http.Request) {
	report, err := h.quiz.Reload(r.Context())
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toLoadResponse(report))
}

// maxUploadSize bounds uploaded question files.
const maxUploadSize = 32 << 20

// uploadBank replaces the bank with a single uploaded file.
// @Summary      Upload a question file
// @Description  Load one CSV or Excel file as the whole question bank. A file with missing columns is rejected and the current bank is kept.
// @Tags         Bank
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV or Excel (.xlsx, .xlsm, .xls) question file"
// @Success      200   {object}  LoadResponse
// @Failure      400   {object}  map[string]string
// @Failure      415   {object}  map[string]string  "unsupported file type"
// @Failure      422   {object}  map[string]string  "missing required columns"
// @Router       /bank/upload [post]
func (h *Handler) uploadBank(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "multipart field \"file\" is required")
		return
	}
	defer file.Close()

	report, err := h.quiz.Upload(r.Context(), header.Filename, file)
	if h.handleServiceError(w, err) {
		return
	}
	h.logger.Info("question file uploaded", "file", header.Filename, "questions", report.Bank.Len())
	respondJSON(w, http.StatusOK, toLoadResponse(report))
}
