package preview

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(18)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).MarginTop(1)
	helpStyle   = lipgloss.NewStyle().MarginTop(1)
)
