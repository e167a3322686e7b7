package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	message   lipgloss.Style
	cursor    lipgloss.Style
	selected  lipgloss.Style
	option    lipgloss.Style
	hint      lipgloss.Style
	help      lipgloss.Style
	noteTitle lipgloss.Style
	noteBody  lipgloss.Style
	noteBox   lipgloss.Style
	answer    lipgloss.Style
}

func newStyles() styles {
	return styles{
		message:   lipgloss.NewStyle().Bold(true),
		cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		option:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		help:      lipgloss.NewStyle().Faint(true),
		noteTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		noteBody:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		noteBox:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("244")).Padding(0, 1),
		answer:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
