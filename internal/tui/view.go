package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/qbank-local/backend/internal/domain/category"
	"github.com/qbank-local/backend/internal/domain/questionbank"
	"github.com/qbank-local/backend/internal/service"
)

var (
	styleCorrect   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true) // Green
	styleIncorrect = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)  // Red
	styleFlag      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleSubtle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleHeader    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleError     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleCursor    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleBarFull   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleBox       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

const barWidth = 30

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	switch {
	case m.screen == screenStats:
		b.WriteString(m.viewStats())
	case !m.state.Loaded:
		b.WriteString(styleSubtle.Render("No question bank loaded."))
	case m.state.Empty:
		b.WriteString(styleSubtle.Render("No questions match the current filters. Press C or D to change them."))
	default:
		b.WriteString(m.viewQuestion())
	}

	if m.err != nil {
		b.WriteString("\n" + styleError.Render("! "+m.err.Error()))
	}
	if m.state.SaveError != "" {
		b.WriteString("\n" + styleError.Render("progress not saved: "+m.state.SaveError))
	}
	b.WriteString("\n\n" + m.viewHelp())
	return b.String()
}

func (m *model) viewHeader() string {
	st := m.state
	filled := 0
	if st.Progress.Total > 0 {
		filled = barWidth * st.Progress.Answered / st.Progress.Total
	}
	bar := styleBarFull.Render(strings.Repeat("█", filled)) + styleSubtle.Render(strings.Repeat("░", barWidth-filled))

	mode := ""
	if st.ReviewMode {
		mode = styleFlag.Render(" [review]")
	}
	title := styleHeader.Render("Quizbank") + mode
	progress := fmt.Sprintf("%s %d/%d answered (%.0f%%)", bar, st.Progress.Answered, st.Progress.Total, st.Progress.Percent)
	filters := styleSubtle.Render(fmt.Sprintf("category: %s | difficulty: %s | shuffle: %t",
		filterLabel(st.Config.Filter.Category), filterLabel(st.Config.Filter.Difficulty), st.Config.Shuffle))
	return title + "\n" + progress + "\n" + filters
}

func (m *model) viewQuestion() string {
	cur := m.state.Current
	if cur == nil {
		return ""
	}
	q := cur.Question

	var b strings.Builder
	marks := ""
	if cur.Flagged {
		marks += styleFlag.Render(" ⚑ flagged")
	}
	if cur.Favorite {
		marks += styleFlag.Render(" ★ favorite")
	}
	fmt.Fprintf(&b, "Question %d of %d%s\n", cur.Number, m.state.Progress.Total, marks)
	b.WriteString(styleSubtle.Render(fmt.Sprintf("%s · %s", q.Category, q.Difficulty)))
	if q.SourceTag != "" {
		b.WriteString(styleSubtle.Render(" · " + q.SourceTag))
	}
	b.WriteString("\n\n" + q.Text + "\n\n")

	for _, c := range q.Choices {
		if c.Text == "" {
			continue
		}
		b.WriteString(m.viewChoice(cur, c))
		b.WriteString("\n")
	}

	if cur.Answer != nil {
		verdict := styleIncorrect.Render("✗ Incorrect")
		if cur.Answer.IsCorrect {
			verdict = styleCorrect.Render("✓ Correct")
		}
		fmt.Fprintf(&b, "\n%s (you chose %s)\n", verdict, cur.Answer.Choice)
	}

	if cur.ExplanationVisible {
		var exp strings.Builder
		fmt.Fprintf(&exp, "Correct answer: %s\n", q.Correct)
		if q.Explanation != "" {
			exp.WriteString(q.Explanation)
		}
		if q.HasReferenceURL() {
			exp.WriteString("\n" + styleSubtle.Render("Reference: "+q.Reference))
		}
		b.WriteString("\n" + styleBox.Render(strings.TrimRight(exp.String(), "\n")))
	}
	return b.String()
}

func (m *model) viewChoice(cur *service.CurrentQuestion, c questionbank.Choice) string {
	cursor := "  "
	if c.Letter == m.selected {
		cursor = styleCursor.Render("> ")
	}
	line := fmt.Sprintf("%s) %s", c.Letter, c.Text)
	switch {
	case cur.ExplanationVisible && c.Letter == cur.Question.Correct:
		line = styleCorrect.Render(line)
	case cur.Answer != nil && cur.Answer.Choice == c.Letter && cur.Answer.IsCorrect:
		line = styleCorrect.Render(line)
	case cur.Answer != nil && cur.Answer.Choice == c.Letter:
		line = styleIncorrect.Render(line)
	}
	return cursor + line
}

func (m *model) viewStats() string {
	stats, err := m.quiz.Stats()
	if err != nil {
		return styleError.Render(err.Error())
	}
	if len(stats) == 0 {
		return styleSubtle.Render("No answers yet.")
	}

	var b strings.Builder
	b.WriteString(styleHeader.Render("Category performance") + "\n")
	fmt.Fprintf(&b, "%-24s %8s %8s %9s\n", "Category", "Attempts", "Correct", "Accuracy")
	for _, row := range category.Sorted(stats) {
		fmt.Fprintf(&b, "%-24s %8d %8d %8.1f%%\n", row.Category, row.Attempts, row.Correct, row.AccuracyPct)
	}
	total := category.Overall(stats)
	b.WriteString(styleSubtle.Render(fmt.Sprintf("%-24s %8d %8d %8.1f%%", "Overall", total.Attempts, total.Correct, total.AccuracyPct)))
	return b.String()
}

func (m *model) viewHelp() string {
	if m.screen == screenStats {
		return styleSubtle.Render("t/esc back · q quit")
	}
	return styleSubtle.Render(strings.Join([]string{
		"a-e/↑↓ choose · enter submit · n/p next/prev · f flag · s favorite",
		"x explanation · r review mode · C category · D difficulty · S shuffle · R reset · t stats · q quit",
	}, "\n"))
}
