package api

import (
	"net/http"
	"time"

	"github.com/pkg/errors"

	practicesession "github.com/qbank-local/backend/internal/domain/practice_session"
	"github.com/qbank-local/backend/internal/domain/questionbank"
	"github.com/qbank-local/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type FiltersRequest struct {
	Category   []string `json:"category" example:"Networking"`
	Difficulty []string `json:"difficulty" example:"Easy"`
	Shuffle    *bool    `json:"shuffle,omitempty" example:"true"`
}

type SubmitAnswerRequest struct {
	Choice string `json:"choice" example:"B"`
}

func (r *SubmitAnswerRequest) Validate() error {
	if r.Choice == "" {
		return errors.New("choice is required")
	}
	return nil
}

type NavigateRequest struct {
	Delta int `json:"delta" example:"1"`
}

type ReviewModeRequest struct {
	Enabled bool `json:"enabled"`
}

type ExplanationRequest struct {
	Visible bool `json:"visible"`
}

type SessionResponse struct {
	Loaded       bool              `json:"loaded"`
	Empty        bool              `json:"empty"`
	Filters      FiltersRequest    `json:"filters"`
	Position     int               `json:"position" example:"0"`
	Answered     int               `json:"answered" example:"3"`
	Total        int               `json:"total" example:"10"`
	Percent      float64           `json:"percent" example:"30"`
	ReviewMode   bool              `json:"review_mode"`
	CanGoBack    bool              `json:"can_go_back"`
	CanGoForward bool              `json:"can_go_forward"`
	SaveError    string            `json:"save_error,omitempty"`
	Current      *QuestionResponse `json:"current,omitempty"`
}

type ChoiceResponse struct {
	Letter string `json:"letter" example:"A"`
	Text   string `json:"text" example:"Hash table"`
}

type AnswerResponse struct {
	Choice    string `json:"choice" example:"B"`
	IsCorrect bool   `json:"is_correct"`
	Timestamp string `json:"timestamp" example:"2026-03-14T09:26:53Z"`
}

// QuestionResponse is the question under the cursor. The answer key,
// explanation and reference are only included once the explanation is visible.
type QuestionResponse struct {
	Index       int              `json:"index" example:"4"`
	Number      int              `json:"number" example:"1"`
	Text        string           `json:"text"`
	Choices     []ChoiceResponse `json:"choices"`
	Category    string           `json:"category" example:"Networking"`
	Difficulty  string           `json:"difficulty" example:"Easy"`
	Source      string           `json:"source,omitempty" example:"networking.csv"`
	Flagged     bool             `json:"flagged"`
	Favorite    bool             `json:"favorite"`
	Answer      *AnswerResponse  `json:"answer,omitempty"`
	Correct     string           `json:"correct,omitempty" example:"B"`
	Explanation string           `json:"explanation,omitempty"`
	Reference   string           `json:"reference,omitempty"`
}

func toSessionResponse(st service.State) SessionResponse {
	resp := SessionResponse{
		Loaded: st.Loaded,
		Empty:  st.Empty,
		Filters: FiltersRequest{
			Category:   nonNilStrings(st.Config.Filter.Category),
			Difficulty: nonNilStrings(st.Config.Filter.Difficulty),
			Shuffle:    &st.Config.Shuffle,
		},
		Position:     st.Position,
		Answered:     st.Progress.Answered,
		Total:        st.Progress.Total,
		Percent:      st.Progress.Percent,
		ReviewMode:   st.ReviewMode,
		CanGoBack:    st.CanGoBack,
		CanGoForward: st.CanGoForward,
		SaveError:    st.SaveError,
	}
	if st.Current != nil {
		resp.Current = toQuestionResponse(st.Current)
	}
	return resp
}

func toQuestionResponse(cur *service.CurrentQuestion) *QuestionResponse {
	q := cur.Question
	resp := &QuestionResponse{
		Index:      cur.Index,
		Number:     cur.Number,
		Text:       q.Text,
		Choices:    make([]ChoiceResponse, 0, len(q.Choices)),
		Category:   q.Category,
		Difficulty: q.Difficulty,
		Source:     q.SourceTag,
		Flagged:    cur.Flagged,
		Favorite:   cur.Favorite,
	}
	for _, c := range q.Choices {
		if c.Text == "" {
			continue
		}
		resp.Choices = append(resp.Choices, ChoiceResponse{Letter: c.Letter, Text: c.Text})
	}
	if cur.Answer != nil {
		resp.Answer = &AnswerResponse{
			Choice:    cur.Answer.Choice,
			IsCorrect: cur.Answer.IsCorrect,
			Timestamp: cur.Answer.Timestamp.UTC().Format(time.RFC3339),
		}
	}
	if cur.ExplanationVisible {
		resp.Correct = q.Correct
		resp.Explanation = q.Explanation
		resp.Reference = q.Reference
	}
	return resp
}

// dispatch applies ev and writes the resulting session.
func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request, ev practicesession.Event) {
	st, err := h.quiz.Dispatch(r.Context(), ev)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(st))
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getSession returns the session status and current question.
// @Summary      Get the session
// @Tags         Session
// @Produce      json
// @Success      200  {object}  SessionResponse
// @Router       /session [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toSessionResponse(h.quiz.State()))
}

// applyFilters rebuilds the session with new filters.
// @Summary      Apply filters
// @Description  Set category and difficulty filters and the shuffle choice. The session is rebuilt: answers and position are cleared, flags and favorites kept.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      FiltersRequest  true  "Filters"
// @Success      200   {object}  SessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "no bank loaded"
// @Router       /session/filters [put]
func (h *Handler) applyFilters(w http.ResponseWriter, r *http.Request) {
	var req FiltersRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	config := h.quiz.State().Config
	config.Filter = questionbank.FilterSpec{Category: req.Category, Difficulty: req.Difficulty}
	if req.Shuffle != nil {
		config.Shuffle = *req.Shuffle
	}

	st, err := h.quiz.ApplyFilters(r.Context(), config)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(st))
}

// resetSession starts the session over.
// @Summary      Reset the session
// @Description  Rebuild the session and clear answers, flags and favorites.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  SessionResponse
// @Failure      409  {object}  map[string]string  "no bank loaded"
// @Router       /session/reset [post]
func (h *Handler) resetSession(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, practicesession.Reset{})
}

// submitAnswer grades a choice for the current question.
// @Summary      Submit an answer
// @Description  Grade a letter A-E against the current question. Resubmitting overwrites the earlier answer.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitAnswerRequest  true  "Chosen letter"
// @Success      200   {object}  SessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "review mode or empty view"
// @Router       /session/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.dispatch(w, r, practicesession.Submit{Choice: req.Choice})
}

// navigate moves the cursor.
// @Summary      Navigate
// @Description  Move the cursor by delta. The cursor is clamped at both ends and never wraps.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      NavigateRequest  true  "Delta"
// @Success      200   {object}  SessionResponse
// @Failure      400   {object}  map[string]string
// @Router       /session/navigate [post]
func (h *Handler) navigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.dispatch(w, r, practicesession.Navigate{Delta: req.Delta})
}

// setReviewMode turns review mode on or off.
// @Summary      Set review mode
// @Description  In review mode answers are read-only and explanations are always shown.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      ReviewModeRequest  true  "Review mode"
// @Success      200   {object}  SessionResponse
// @Router       /session/review-mode [put]
func (h *Handler) setReviewMode(w http.ResponseWriter, r *http.Request) {
	var req ReviewModeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.dispatch(w, r, practicesession.SetReviewMode{Enabled: req.Enabled})
}

// setExplanation shows or hides the explanation.
// @Summary      Show or hide the explanation
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      ExplanationRequest  true  "Visibility"
// @Success      200   {object}  SessionResponse
// @Router       /session/explanation [put]
func (h *Handler) setExplanation(w http.ResponseWriter, r *http.Request) {
	var req ExplanationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.dispatch(w, r, practicesession.SetExplanation{Visible: req.Visible})
}
