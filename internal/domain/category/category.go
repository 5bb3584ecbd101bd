package category

import (
	"math"
	"sort"

	practicesession "github.com/qbank-local/backend/internal/domain/practice_session"
	"github.com/qbank-local/backend/internal/domain/questionbank"
)

// Stats is the answer performance for one category.
type Stats struct {
	Attempts    int
	Correct     int
	AccuracyPct float64 // rounded to one decimal, half to even
}

// Row is a Stats value labelled with its category, for ordered display.
type Row struct {
	Category string
	Stats
}

// Summarize folds answers into per-category stats. Categories without
// attempts are omitted. Answers whose index falls outside view are skipped.
func Summarize(answers map[int]practicesession.AnswerRecord, view questionbank.FilteredView) map[string]Stats {
	out := make(map[string]Stats)
	for idx, rec := range answers {
		if !view.Has(idx) {
			continue
		}
		cat := view[idx].Category
		st := out[cat]
		st.Attempts++
		if rec.IsCorrect {
			st.Correct++
		}
		out[cat] = st
	}
	for cat, st := range out {
		st.AccuracyPct = accuracy(st.Correct, st.Attempts)
		out[cat] = st
	}
	return out
}

// Sorted returns the stats ordered by category name.
func Sorted(stats map[string]Stats) []Row {
	rows := make([]Row, 0, len(stats))
	for cat, st := range stats {
		rows = append(rows, Row{Category: cat, Stats: st})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Category < rows[j].Category })
	return rows
}

// Overall totals every category.
func Overall(stats map[string]Stats) Stats {
	var total Stats
	for _, st := range stats {
		total.Attempts += st.Attempts
		total.Correct += st.Correct
	}
	total.AccuracyPct = accuracy(total.Correct, total.Attempts)
	return total
}

func accuracy(correct, attempts int) float64 {
	if attempts == 0 {
		return 0
	}
	return math.RoundToEven(1000*float64(correct)/float64(attempts)) / 10
}
