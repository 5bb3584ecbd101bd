package practicesession

import (
	"slices"
	"strconv"
	"time"

	"github.com/qbank-local/backend/internal/domain/questionbank"
)

// RecordDocument is the persisted form of an AnswerRecord.
type RecordDocument struct {
	Choice     string `json:"choice"`
	IsCorrect  bool   `json:"is_correct"`
	Timestamp  string `json:"timestamp"`
	QuestionID string `json:"question_id,omitempty"`
}

// Snapshot is the persisted progress document. Answers, flags and favorites
// are keyed by FilteredView index, so a snapshot belongs to one bank and
// filter combination. Order and Position are optional.
type Snapshot struct {
	Timestamp string                    `json:"timestamp"`
	Answers   map[string]RecordDocument `json:"answers"`
	Flags     []int                     `json:"flags"`
	Favs      []int                     `json:"favs"`
	Filters   questionbank.FilterSpec   `json:"filters"`
	Shuffle   *bool                     `json:"shuffle,omitempty"`
	Order     []int                     `json:"order,omitempty"`
	Position  int                       `json:"position,omitempty"`
}

// timestampLayouts are accepted when reading answer timestamps; the last one
// matches naive ISO-8601 timestamps without a zone.
var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999"}

// Snapshot captures the persistable part of the session.
func (s *Session) Snapshot() *Snapshot {
	shuffle := s.Config.Shuffle
	snap := &Snapshot{
		Timestamp: s.now().Format(time.RFC3339),
		Answers:   make(map[string]RecordDocument, len(s.Answers)),
		Flags:     s.Flags.Sorted(),
		Favs:      s.Favorites.Sorted(),
		Filters: questionbank.FilterSpec{
			Category:   nonNil(s.Config.Filter.Category),
			Difficulty: nonNil(s.Config.Filter.Difficulty),
		},
		Shuffle:  &shuffle,
		Order:    slices.Clone(s.Order),
		Position: s.Position,
	}
	for idx, rec := range s.Answers {
		snap.Answers[strconv.Itoa(idx)] = RecordDocument{
			Choice:     rec.Choice,
			IsCorrect:  rec.IsCorrect,
			Timestamp:  rec.Timestamp.Format(time.RFC3339Nano),
			QuestionID: rec.QuestionID,
		}
	}
	return snap
}

// Config returns the session config stored in the snapshot. A document
// without a shuffle setting shuffles.
func (snap *Snapshot) Config() SessionConfig {
	if snap == nil {
		return DefaultConfig()
	}
	config := SessionConfig{Filter: snap.Filters, Shuffle: true}
	if snap.Shuffle != nil {
		config.Shuffle = *snap.Shuffle
	}
	return config
}

// RestoreReport tells how much of a snapshot was accepted.
type RestoreReport struct {
	Answers       int
	Dropped       int // stale or unreadable answer records
	OrderRestored bool
}

// Restore loads answers, flags, favorites and, when it is still a valid
// permutation, the presentation order from snap. Records that point outside
// the view, or whose question fingerprint no longer matches, are dropped.
// Records without a fingerprint are trusted.
func (s *Session) Restore(snap *Snapshot) RestoreReport {
	var report RestoreReport
	if snap == nil {
		return report
	}

	if isPermutation(snap.Order, len(s.View)) {
		s.Order = slices.Clone(snap.Order)
		s.Position = min(max(snap.Position, 0), max(len(s.Order)-1, 0))
		report.OrderRestored = true
	}

	s.Answers = make(map[int]AnswerRecord, len(snap.Answers))
	for key, doc := range snap.Answers {
		idx, err := strconv.Atoi(key)
		if err != nil || !s.View.Has(idx) {
			report.Dropped++
			continue
		}
		if doc.QuestionID != "" && doc.QuestionID != s.View[idx].ID {
			report.Dropped++
			continue
		}
		s.Answers[idx] = AnswerRecord{
			Choice:     doc.Choice,
			IsCorrect:  doc.IsCorrect,
			Timestamp:  parseTimestamp(doc.Timestamp),
			QuestionID: doc.QuestionID,
		}
		report.Answers++
	}

	s.Flags = restoreSet(snap.Flags, s.View)
	s.Favorites = restoreSet(snap.Favs, s.View)
	return report
}

func restoreSet(indices []int, view questionbank.FilteredView) IndexSet {
	set := IndexSet{}
	for _, idx := range indices {
		if view.Has(idx) {
			set[idx] = struct{}{}
		}
	}
	return set
}

func isPermutation(order []int, n int) bool {
	if n == 0 || len(order) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
