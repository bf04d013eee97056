package form

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"smart-checker/api/internal/smart"
)

// Headers are the column titles of the results table.
var Headers = []string{"SMART element", "Score", "Evidence (from your text)", "How to improve"}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	labelStyle  = cellStyle.Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#d33")).Bold(true)
	noteStyle   = lipgloss.NewStyle().Faint(true)

	badgeColors = map[smart.Score]lipgloss.Color{
		smart.ScoreStrong:  lipgloss.Color("#2e7d32"),
		smart.ScorePartial: lipgloss.Color("#b26a00"),
		smart.ScoreMissing: lipgloss.Color("#c62828"),
	}
)

// Table renders rows as a bordered terminal table.
func Table(rows []Row, width int) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return labelStyle
			case col == 1 && row >= 0 && row < len(rows):
				return cellStyle.Foreground(badgeColor(rows[row].Score))
			default:
				return cellStyle
			}
		})
	if width > 0 {
		t = t.Width(width)
	}
	for _, r := range rows {
		t.Row(r.Label, r.Badge, r.EvidenceText(), r.FeedbackText())
	}
	return t.String()
}

// RenderText writes the form outcome: the error box, or the table and the disclaimer.
func RenderText(w io.Writer, f *Form, width int) error {
	if f.Error != "" {
		_, err := fmt.Fprintln(w, errorStyle.Render("Issue:")+" "+f.Error)
		return err
	}
	if f.Result == nil {
		return nil
	}
	if _, err := fmt.Fprintln(w, Table(f.Rows(), width)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, noteStyle.Render(Disclaimer))
	return err
}

func badgeColor(s smart.Score) lipgloss.Color {
	if c, ok := badgeColors[s]; ok {
		return c
	}
	return badgeColors[smart.ScoreMissing]
}
