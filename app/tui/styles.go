package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#4a90d9")
	dim    = lipgloss.Color("#6c6c6c")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(accent).
			Padding(0, 1).
			MarginBottom(1)

	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(dim)

	formStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().Width(22).Foreground(accent)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5cb85c"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#d9534f")).Bold(true)
	filterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f0ad4e"))

	helpKeyStyle  = lipgloss.NewStyle().Foreground(accent)
	helpDescStyle = lipgloss.NewStyle().Foreground(dim)
	helpSepStyle  = lipgloss.NewStyle().Foreground(dim)
)
