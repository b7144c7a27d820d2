package tui

import "github.com/charmbracelet/lipgloss"

// Style controls rendering. The zero value renders plain text.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text   lipgloss.Style
	Cursor lipgloss.Style

	Key      lipgloss.Style
	KeyArmed lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Key:           lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		KeyArmed:      lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Bold(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
