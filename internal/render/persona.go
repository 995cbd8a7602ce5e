package render

import (
	"strings"

	"github.com/autonara/smartmatch/internal/core"
	"github.com/charmbracelet/lipgloss"
)

// PersonaBanner renders the backend-inferred lifestyle summary.
func PersonaBanner(p core.Persona) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(p.Label))
	b.WriteString("\n")

	if len(p.PrimaryNeeds) > 0 {
		b.WriteString(labelStyle.Render("Primary needs"))
		b.WriteString("\n")
		b.WriteString(chipRow(p.PrimaryNeeds))
		b.WriteString("\n")
	}

	if len(p.SecondaryNeeds) > 0 {
		b.WriteString(labelStyle.Render("Secondary needs"))
		b.WriteString("\n")
		b.WriteString(chipRow(p.SecondaryNeeds))
		b.WriteString("\n")
	}

	if len(p.Constraints) > 0 {
		b.WriteString(labelStyle.Render("Constraints"))
		b.WriteString("\n")
		b.WriteString(chipRow(p.Constraints))
		b.WriteString("\n")
	}

	return b.String()
}

func chipRow(items []string) string {
	chips := make([]string, 0, len(items))
	for _, item := range items {
		chips = append(chips, Chip(item))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, chips...)
}
