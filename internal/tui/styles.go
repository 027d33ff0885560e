package tui

import (
	"github.com/charmbracelet/lipgloss"
	"max.ks1230/gastos-client/internal/entity/expense"
	"max.ks1230/gastos-client/internal/model/notify"
)

type Styles struct {
	Title    lipgloss.Style
	Online   lipgloss.Style
	Offline  lipgloss.Style
	Muted    lipgloss.Style
	Total    lipgloss.Style
	Selected lipgloss.Style
	Amount   lipgloss.Style
	Summary  lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Confirm  lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#667eea")).Padding(0, 1),
		Online:   lipgloss.NewStyle().Foreground(lipgloss.Color("#2ecc71")),
		Offline:  lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
		Total:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e74c3c")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#667eea")),
		Amount:   lipgloss.NewStyle().Bold(true),
		Summary:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#27ae60")).Padding(0, 1),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#c0392b")).Padding(0, 1),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#2980b9")).Padding(0, 1),
		Confirm:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f39c12")),
	}
}

// badge paints text on the backend colour, or the default one when unset.
func badge(text, color string) string {
	if color == "" {
		color = expense.DefaultColor
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(color)).
		Padding(0, 1).
		Render(text)
}

func (s Styles) notification(kind notify.Kind) lipgloss.Style {
	switch kind {
	case notify.Success:
		return s.Success
	case notify.Error:
		return s.Error
	}
	return s.Info
}
