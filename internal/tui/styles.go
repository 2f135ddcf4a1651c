// Package tui implements the interactive prediction form.
package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the form.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Selected lipgloss.Style
	Value    lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
	Result   lipgloss.Style
	Fraud    lipgloss.Style
	NotFraud lipgloss.Style
}

// DefaultStyles returns the standard color scheme.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(22),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1),
		Result: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2).
			MarginTop(1),
		Fraud:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		NotFraud: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("40")),
	}
}
