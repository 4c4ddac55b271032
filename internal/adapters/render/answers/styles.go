package answers

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	day        lipgloss.Style
	part       lipgloss.Style
	answer     lipgloss.Style
	match      lipgloss.Style
	mismatch   lipgloss.Style
	missing    lipgloss.Style
	expected   lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	timing     lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		day:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		part:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		answer:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		match:      lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		mismatch:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		missing:    lipgloss.NewStyle().Faint(true),
		expected:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		timing:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
