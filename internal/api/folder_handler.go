package api

import (
	"io/fs"
	"net/http"
	"os"

	"github.com/pkg/errors"

	"github.com/qbank-local/backend/internal/domain/folder"
)

// ── Request / Response types ────────────────────────────────────────────────

type SourcesResponse struct {
	Folder    string   `json:"folder" example:"questions"`
	Available []string `json:"available"` // supported files currently in the folder
	Files     []string `json:"files"`     // explicitly configured files, if any
	Loaded    []string `json:"loaded"`    // sources of the bank in memory
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listSources lists the question files the service can load.
// @Summary      List question sources
// @Description  Supported files in the questions folder and the sources of the loaded bank.
// @Tags         Bank
// @Produce      json
// @Success      200  {object}  SourcesResponse
// @Failure      500  {object}  map[string]string
// @Router       /sources [get]
func (h *Handler) listSources(w http.ResponseWriter, r *http.Request) {
	src := h.quiz.Source()
	resp := SourcesResponse{
		Folder:    src.Dir,
		Available: []string{},
		Files:     nonNilStrings(src.Files),
		Loaded:    []string{},
	}

	if src.Dir != "" {
		f, err := folder.Scan(os.DirFS(src.Dir), src.Dir)
		switch {
		case err == nil:
			resp.Available = nonNilStrings(f.Sources)
		case errors.Is(err, fs.ErrNotExist):
		default:
			h.logger.Error("scan questions folder", "dir", src.Dir, "error", err)
			respondError(w, http.StatusInternalServerError, "failed to list questions folder")
			return
		}
	}

	if bank, _, err := h.quiz.Bank(); err == nil {
		resp.Loaded = nonNilStrings(bank.Sources)
	}
	respondJSON(w, http.StatusOK, resp)
}
