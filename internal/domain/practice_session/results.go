package practicesession

import (
	"strconv"
	"time"
)

// ResultColumns is the header of the results export. SourceFile is only
// written when the view carries source tags.
var ResultColumns = []string{
	"QuestionIndex", "Question", "YourChoice", "Correct", "IsCorrect",
	"Timestamp", "Category", "Difficulty",
}

const sourceColumn = "SourceFile"

// ResultRow is one answered question in presentation order.
type ResultRow struct {
	QuestionIndex int
	Question      string
	YourChoice    string
	Correct       string
	IsCorrect     bool
	Timestamp     time.Time
	Category      string
	Difficulty    string
	SourceFile    string
}

// Results lists answered questions in presentation order.
func (s *Session) Results() []ResultRow {
	var rows []ResultRow
	for _, idx := range s.Order {
		rec, ok := s.Answers[idx]
		if !ok || !s.View.Has(idx) {
			continue
		}
		q := s.View[idx]
		rows = append(rows, ResultRow{
			QuestionIndex: idx,
			Question:      q.Text,
			YourChoice:    rec.Choice,
			Correct:       q.Correct,
			IsCorrect:     rec.IsCorrect,
			Timestamp:     rec.Timestamp,
			Category:      q.Category,
			Difficulty:    q.Difficulty,
			SourceFile:    q.SourceTag,
		})
	}
	return rows
}

// HasSourceTags reports whether any question in the view came from a tagged source.
func (s *Session) HasSourceTags() bool {
	for _, q := range s.View {
		if q.SourceTag != "" {
			return true
		}
	}
	return false
}

// ResultsTable renders rows as a header plus string records.
func ResultsTable(rows []ResultRow, withSource bool) ([]string, [][]string) {
	header := append([]string{}, ResultColumns...)
	if withSource {
		header = append(header, sourceColumn)
	}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.QuestionIndex),
			r.Question,
			r.YourChoice,
			r.Correct,
			strconv.FormatBool(r.IsCorrect),
			r.Timestamp.Format(time.RFC3339),
			r.Category,
			r.Difficulty,
		}
		if withSource {
			rec = append(rec, r.SourceFile)
		}
		records = append(records, rec)
	}
	return header, records
}
