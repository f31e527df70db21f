package main

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	emphStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
)

func successText(s string) string {
	return successStyle.Render(s)
}

func errorText(s string) string {
	return errorStyle.Render(s)
}

func emphText(s string) string {
	return emphStyle.Render(s)
}
