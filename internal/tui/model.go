// Package tui renders the live progress line and the end-of-run summary
// and report table.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"squish/internal/processor"
)

// Model is the bubbletea model for the transient progress display. It
// consumes ProgressUpdate deltas and redraws a single in-place block; the
// structural outcome data flows through FileOutcome values, not this view.
type Model struct {
	updates   <-chan processor.ProgressUpdate
	started   time.Time
	width     int
	total     int
	processed int
	errors    int
	metaCount int
	bytesIn   int64
	bytesOut  int64
	quitting  bool
}

type doneMsg struct{}

type updateMsg processor.ProgressUpdate

func NewModel(updates <-chan processor.ProgressUpdate) Model {
	return Model{updates: updates, started: time.Now()}
}

func (m Model) Init() tea.Cmd {
	return listenForUpdates(m.updates)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case updateMsg:
		m.total += msg.TotalDelta
		m.processed += msg.ProcessedDelta
		m.errors += msg.ErrorDelta
		m.metaCount += msg.MetaDelta
		m.bytesIn += msg.BytesInDelta
		m.bytesOut += msg.BytesOutDelta
		return m, listenForUpdates(m.updates)
	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	barWidth := 40
	if m.width > 0 {
		barWidth = int(math.Min(60, float64(m.width-10)))
		if barWidth < 20 {
			barWidth = 20
		}
	}

	ratio := 0.0
	if m.total > 0 {
		ratio = float64(m.processed) / float64(m.total)
		if ratio > 1 {
			ratio = 1
		}
	}

	bar := renderBar(barWidth, ratio)
	elapsed := time.Since(m.started).Round(time.Millisecond)

	status := labelStyle.Render(fmt.Sprintf("processing %d of %d", m.processed, m.total))
	if m.errors > 0 {
		status += dimStyle.Render(fmt.Sprintf("  errors:%d", m.errors))
	}

	lines := []string{
		titleStyle.Render("squish 🗜"),
		status,
		labelStyle.Render(fmt.Sprintf("Saved so far: %s", FormatBytes(m.bytesIn-m.bytesOut))),
		labelStyle.Render(fmt.Sprintf("Metadata entries removed: %d", m.metaCount)),
		dimStyle.Render(fmt.Sprintf("Elapsed: %s", elapsed)),
		barStyle.Render(bar),
	}

	return strings.Join(lines, "\n")
}

func listenForUpdates(updates <-chan processor.ProgressUpdate) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return doneMsg{}
		}
		return updateMsg(update)
	}
}

func renderBar(width int, ratio float64) string {
	filled := int(math.Round(ratio * float64(width)))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(ColorInk)
	barStyle   = lipgloss.NewStyle().Foreground(ColorAccent)
	dimStyle   = lipgloss.NewStyle().Foreground(ColorDim)
)
