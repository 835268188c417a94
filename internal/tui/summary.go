package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type SummaryRow struct {
	Label string
	Value string
}

// RenderSummary renders the end-of-run totals as a bordered two-column
// block.
func RenderSummary(rows []SummaryRow) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorDim)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return labelStyle.Padding(0, 1)
			}
			return valueStyle.Padding(0, 1)
		})
	for _, row := range rows {
		t.Row(row.Label, row.Value)
	}
	return t.Render()
}

var valueStyle = lipgloss.NewStyle().Foreground(ColorInk).Bold(true)
