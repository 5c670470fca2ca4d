package pontocli

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)
