package questionbank

import "sort"

// QuestionBank is the immutable set of questions loaded by one Load/Reload.
type QuestionBank struct {
	Questions []Question
	Sources   []string
}

// New creates a bank over the given questions.
func New(questions []Question, sources ...string) *QuestionBank {
	return &QuestionBank{
		Questions: questions,
		Sources:   sources,
	}
}

// Combine concatenates banks in order. Each question keeps its SourceTag.
func Combine(banks ...*QuestionBank) *QuestionBank {
	combined := &QuestionBank{}
	for _, b := range banks {
		if b == nil {
			continue
		}
		combined.Questions = append(combined.Questions, b.Questions...)
		combined.Sources = append(combined.Sources, b.Sources...)
	}
	return combined
}

// Tag sets SourceTag on every question of the bank.
func (qb *QuestionBank) Tag(source string) {
	for i := range qb.Questions {
		qb.Questions[i].SourceTag = source
	}
}

func (qb *QuestionBank) Len() int {
	if qb == nil {
		return 0
	}
	return len(qb.Questions)
}

// Options returns the sorted distinct categories and difficulties,
// used to populate filter pickers.
func (qb *QuestionBank) Options() (categories, difficulties []string) {
	cats := make(map[string]struct{})
	diffs := make(map[string]struct{})
	for _, q := range qb.Questions {
		if q.Category != "" {
			cats[q.Category] = struct{}{}
		}
		if q.Difficulty != "" {
			diffs[q.Difficulty] = struct{}{}
		}
	}
	return sortedKeys(cats), sortedKeys(diffs)
}

// Malformed returns the validation problems of every question.
func (qb *QuestionBank) Malformed() []error {
	var errs []error
	for _, q := range qb.Questions {
		if err := q.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
