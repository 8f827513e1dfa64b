package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	metricKey  lipgloss.Style
	metricMeta lipgloss.Style
	warning    lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	mealTitle  lipgloss.Style
	mealBody   lipgloss.Style
	note       lipgloss.Style
	faint      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		metricKey:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		metricMeta: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		mealTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		mealBody:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		note:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("252")),
		faint:      lipgloss.NewStyle().Faint(true),
	}
}
