package render

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1).
			Width(48)

	badgeHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	badgeMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	badgeLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true)
)
