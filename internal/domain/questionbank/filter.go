package questionbank

// FilterSpec restricts a bank by category and difficulty. An empty set
// places no restriction on that dimension.
type FilterSpec struct {
	Category   []string `json:"Category"`
	Difficulty []string `json:"Difficulty"`
}

// IsEmpty reports whether the spec restricts nothing.
func (f FilterSpec) IsEmpty() bool {
	return len(f.Category) == 0 && len(f.Difficulty) == 0
}

// FilteredView is the ordered subset of a bank matching a FilterSpec,
// re-indexed from 0.
type FilteredView []Question

// Has reports whether idx addresses a question of the view.
func (v FilteredView) Has(idx int) bool {
	return idx >= 0 && idx < len(v)
}

// Apply filters bank by spec, preserving bank order. An empty result is valid.
func Apply(bank *QuestionBank, spec FilterSpec) FilteredView {
	if bank == nil {
		return FilteredView{}
	}
	if spec.IsEmpty() {
		view := make(FilteredView, len(bank.Questions))
		copy(view, bank.Questions)
		return view
	}
	cats := toSet(spec.Category)
	diffs := toSet(spec.Difficulty)

	view := make(FilteredView, 0, len(bank.Questions))
	for _, q := range bank.Questions {
		if !allowed(cats, q.Category) || !allowed(diffs, q.Difficulty) {
			continue
		}
		view = append(view, q)
	}
	return view
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func allowed(set map[string]struct{}, v string) bool {
	if set == nil {
		return true
	}
	_, ok := set[v]
	return ok
}
