package ui

import "github.com/charmbracelet/lipgloss"

// ANSI colors so the help output follows the user's terminal theme.
var (
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	DescStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	FlagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// AmountStyle highlights totals printed by the extract command.
	AmountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)
