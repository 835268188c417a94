package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"squish/internal/processor"
)

// RenderReport renders the per-file report table: one row per processed
// file with sizes, reduction, and status.
func RenderReport(outcomes []processor.FileOutcome) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorDim)).
		Headers("#", "FILE", "SIZE", "OUTPUT", "SIZE", "SAVED", "STATUS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Foreground(ColorAccent).Bold(true).Padding(0, 1)
			}
			if outcomes[row].Err != nil {
				return lipgloss.NewStyle().Foreground(ColorError).Padding(0, 1)
			}
			return lipgloss.NewStyle().Foreground(ColorInk).Padding(0, 1)
		})

	for _, o := range outcomes {
		if o.Err != nil {
			t.Row(
				fmt.Sprintf("%d", o.Index),
				o.DisplayPath,
				FormatBytes(o.OriginalBytes),
				"-", "-", "-",
				"failed: "+o.Err.Error(),
			)
			continue
		}
		t.Row(
			fmt.Sprintf("%d", o.Index),
			o.DisplayPath,
			FormatBytes(o.OriginalBytes),
			o.OutputPath,
			FormatBytes(o.OutputBytes),
			fmt.Sprintf("%.2f%%", o.Reduction()),
			"ok",
		)
	}
	return t.Render()
}
