package render

import "fmt"

// ScoreBadge renders a lifestyle-fit percentage, color-banded by strength.
func ScoreBadge(score int) string {
	text := fmt.Sprintf("%d%% fit", score)
	switch {
	case score >= 80:
		return badgeHigh.Render(text)
	case score >= 60:
		return badgeMid.Render(text)
	default:
		return badgeLow.Render(text)
	}
}

// Chip renders one short tag, the terminal cousin of the UI pill.
func Chip(text string) string {
	return chipStyle.Render(text)
}
