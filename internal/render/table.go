package render

import (
	"strconv"

	"github.com/autonara/smartmatch/internal/core"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// maxTableRows caps the comparison table at the top matches.
const maxTableRows = 3

// ComparisonTable renders the top matches side by side.
func ComparisonTable(matches []core.Match) string {
	if len(matches) == 0 {
		return ""
	}
	if len(matches) > maxTableRows {
		matches = matches[:maxTableRows]
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return labelStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("Vehicle", "Fit", "Band", "Fuel", "Seats", "Price")

	for _, m := range matches {
		fuel, seats, price := "—", "—", "—"
		if m.Specs != nil {
			if m.Specs.FuelType != "" {
				fuel = m.Specs.FuelType
			}
			if m.Specs.Seats > 0 {
				seats = strconv.Itoa(m.Specs.Seats)
			}
			if m.Specs.Price > 0 {
				price = FormatINR(m.Specs.Price)
			}
		}
		band := FormatPriceBand(m.PriceBand)
		if band == "" {
			band = "—"
		}

		t.Row(m.Name, strconv.Itoa(m.Score)+"%", band, fuel, seats, price)
	}

	return t.Render()
}
