package questionbank

import "strings"

// RequiredColumns lists the header names every source must carry.
var RequiredColumns = []string{
	"Question", "A", "B", "C", "D", "E",
	"Correct", "Explanation", "Reference", "Category", "Difficulty",
}

// Parse turns a header plus string rows into questions. Extra columns are
// ignored, short rows are padded with empty cells and blank rows skipped.
// A missing required column rejects the whole source with *ValidationError.
func Parse(source string, header []string, rows [][]string) ([]Question, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}

	var missing []string
	for _, c := range RequiredColumns {
		if _, ok := pos[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Source: source, Missing: missing}
	}

	cell := func(row []string, col string) string {
		i := pos[col]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	questions := make([]Question, 0, len(rows))
	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		choices := make([]string, len(Letters))
		for i, l := range Letters {
			choices[i] = cell(row, l)
		}
		questions = append(questions, NewQuestion(
			cell(row, "Question"),
			choices,
			cell(row, "Correct"),
			cell(row, "Explanation"),
			cell(row, "Reference"),
			cell(row, "Category"),
			cell(row, "Difficulty"),
		))
	}
	return questions, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
