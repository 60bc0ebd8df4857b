package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are rebuilt from CurrentTheme on every frame so a theme switch
// applies at once.
type styles struct {
	canvas, water, panel, header lipgloss.Style
	label, value, graph, help    lipgloss.Style
	running, paused, selected    lipgloss.Style
}

func currentStyles() styles {
	t := CurrentTheme
	return styles{
		canvas:   lipgloss.NewStyle().Padding(1, 2),
		water:    lipgloss.NewStyle().Foreground(t.Water),
		panel:    lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Border).Padding(1, 2).Width(panelWidth),
		header:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true).MarginBottom(1),
		label:    lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value:    lipgloss.NewStyle().Foreground(t.Text),
		graph:    lipgloss.NewStyle().Foreground(t.GraphHue).Padding(1, 0),
		help:     lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		running:  lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		paused:   lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		selected: lipgloss.NewStyle().Bold(true).Foreground(t.Hull),
	}
}

// ProgressBar renders a fill bar for a value in [0, 1].
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	filled = max(0, min(width, filled))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	t := CurrentTheme
	switch {
	case percent > 0.8:
		return lipgloss.NewStyle().Foreground(t.Warning).Render(bar)
	case percent > 0.4:
		return lipgloss.NewStyle().Foreground(t.Accent).Render(bar)
	}
	return lipgloss.NewStyle().Foreground(t.Success).Render(bar)
}
