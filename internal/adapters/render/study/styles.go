package study

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title       lipgloss.Style
	header      lipgloss.Style
	series      lipgloss.Style
	lowPriority lipgloss.Style
	detail      lipgloss.Style
	instance    lipgloss.Style
	section     lipgloss.Style
	empty       lipgloss.Style
	note        lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:       lipgloss.NewStyle().Bold(true),
		header:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		series:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		lowPriority: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		detail:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		instance:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		section:     lipgloss.NewStyle().MarginTop(1),
		empty:       lipgloss.NewStyle().Faint(true),
		note:        lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("178")),
	}
}
