package render

import (
	"fmt"
	"strings"

	"github.com/autonara/smartmatch/internal/core"
)

// maxCardReasons caps how many supporting reasons a card shows.
const maxCardReasons = 2

// VehicleCard renders one recommended vehicle.
func VehicleCard(m core.Match) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.Name))
	b.WriteString("  ")
	b.WriteString(ScoreBadge(m.Score))
	b.WriteString("\n")

	var tags []string
	if band := FormatPriceBand(m.PriceBand); band != "" {
		tags = append(tags, band)
	}
	if m.BodyType != "" {
		tags = append(tags, m.BodyType)
	}
	if m.Specs != nil && m.Specs.FuelType != "" {
		tags = append(tags, m.Specs.FuelType)
	}
	if len(tags) > 0 {
		b.WriteString(dimStyle.Render(strings.Join(tags, " · ")))
		b.WriteString("\n")
	}

	if m.Specs != nil && m.Specs.Price > 0 {
		b.WriteString(FormatINR(m.Specs.Price))
		b.WriteString("\n")
	}

	reasons := m.Reasons
	if len(reasons) > maxCardReasons {
		reasons = reasons[:maxCardReasons]
	}
	for _, reason := range reasons {
		b.WriteString(fmt.Sprintf("• %s\n", reason))
	}

	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}
