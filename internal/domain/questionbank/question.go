package questionbank

import (
	"fmt"
	"strings"

	"github.com/qbank-local/backend/internal/id"
)

// Letters are the choice keys in presentation order.
var Letters = []string{"A", "B", "C", "D", "E"}

// Choice is one lettered answer option.
type Choice struct {
	Letter string
	Text   string
}

// Question is a single multiple-choice item. Its identity inside a bank is
// its position; ID is a content fingerprint used to spot stale progress.
type Question struct {
	ID          string
	Text        string
	Choices     [5]Choice
	Correct     string
	Explanation string
	Reference   string
	Category    string
	Difficulty  string
	SourceTag   string // base name of the originating file, empty for single uploads
}

// NewQuestion builds a normalized question. choices are given in A..E order;
// missing trailing entries are left empty.
func NewQuestion(text string, choices []string, correct, explanation, reference, category, difficulty string) Question {
	q := Question{
		Text:        strings.TrimSpace(text),
		Correct:     NormalizeLetter(correct),
		Explanation: strings.TrimSpace(explanation),
		Reference:   strings.TrimSpace(reference),
		Category:    strings.TrimSpace(category),
		Difficulty:  strings.TrimSpace(difficulty),
	}
	for i, l := range Letters {
		q.Choices[i].Letter = l
		if i < len(choices) {
			q.Choices[i].Text = strings.TrimSpace(choices[i])
		}
	}
	q.ID = q.fingerprint()
	return q
}

func (q Question) fingerprint() string {
	parts := []string{q.Text, q.Correct}
	for _, c := range q.Choices {
		parts = append(parts, c.Text)
	}
	return id.Fingerprint(parts...)
}

// ChoiceText returns the text behind a letter, or "" when the letter is unknown.
func (q Question) ChoiceText(letter string) string {
	for _, c := range q.Choices {
		if c.Letter == letter {
			return c.Text
		}
	}
	return ""
}

// HasReferenceURL reports whether Reference is a link worth rendering.
func (q Question) HasReferenceURL() bool {
	r := strings.ToLower(q.Reference)
	return strings.HasPrefix(r, "http://") || strings.HasPrefix(r, "https://")
}

// Validate checks that Correct names a choice with text. Banks are loaded
// permissively, so this is only used for reporting.
func (q Question) Validate() error {
	if len(q.Correct) != 1 {
		return &MalformedError{Question: q.Text, Reason: fmt.Sprintf("correct answer %q is not a single letter", q.Correct)}
	}
	if q.ChoiceText(q.Correct) == "" {
		return &MalformedError{Question: q.Text, Reason: fmt.Sprintf("correct answer %s has no choice text", q.Correct)}
	}
	return nil
}

// NormalizeLetter trims, uppercases and strips a leading "CHOICE " marker.
func NormalizeLetter(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "CHOICE ")
	return strings.TrimSpace(s)
}
