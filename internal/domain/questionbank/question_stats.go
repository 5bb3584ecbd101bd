package questionbank

// BankSummary counts the questions of a bank per category and difficulty.
type BankSummary struct {
	TotalQuestions int
	Sources        []string
	Categories     map[string]int
	Difficulties   map[string]int
	Malformed      int // rows whose answer key names no choice
}

// Summarize computes a BankSummary.
func (qb *QuestionBank) Summarize() BankSummary {
	s := BankSummary{
		TotalQuestions: qb.Len(),
		Categories:     make(map[string]int),
		Difficulties:   make(map[string]int),
	}
	if qb == nil {
		return s
	}
	s.Sources = qb.Sources
	for _, q := range qb.Questions {
		s.Categories[q.Category]++
		s.Difficulties[q.Difficulty]++
		if q.Validate() != nil {
			s.Malformed++
		}
	}
	return s
}
