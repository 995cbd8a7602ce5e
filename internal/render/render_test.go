package render

import (
	"strings"
	"testing"

	"github.com/autonara/smartmatch/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestVehicleCardShowsAtMostTwoReasons(t *testing.T) {
	card := VehicleCard(core.Match{
		ID:        "v1",
		Name:      "Grand Vitara",
		Score:     82,
		PriceBand: "upper_mid",
		BodyType:  "SUV",
		Reasons:   []string{"good mileage", "spacious boot", "strong resale value"},
	})

	assert.Contains(t, card, "Grand Vitara")
	assert.Contains(t, card, "82% fit")
	assert.Contains(t, card, "Upper Mid")
	assert.Contains(t, card, "good mileage")
	assert.Contains(t, card, "spacious boot")
	assert.NotContains(t, card, "strong resale value")
}

func TestVehicleCardWithSpecs(t *testing.T) {
	card := VehicleCard(core.Match{
		Name:  "City",
		Score: 74,
		Specs: &core.CarSpecs{FuelType: "petrol", Price: 1250000},
	})

	assert.Contains(t, card, "petrol")
	assert.Contains(t, card, "₹12,50,000")
}

func TestComparisonTableShowsAtMostThreeMatches(t *testing.T) {
	matches := []core.Match{
		{Name: "Alpha", Score: 90},
		{Name: "Bravo", Score: 80},
		{Name: "Charlie", Score: 70},
		{Name: "Delta", Score: 60},
	}

	out := ComparisonTable(matches)

	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Bravo")
	assert.Contains(t, out, "Charlie")
	assert.NotContains(t, out, "Delta")
	assert.Contains(t, out, "90%")
}

func TestComparisonTableEmpty(t *testing.T) {
	assert.Empty(t, ComparisonTable(nil))
}

func TestPersonaBanner(t *testing.T) {
	banner := PersonaBanner(core.Persona{
		Label:          "Weekend Explorer",
		PrimaryNeeds:   []string{"ground clearance", "boot space"},
		SecondaryNeeds: []string{"mileage"},
		Constraints:    []string{"under 15 lakh"},
	})

	for _, want := range []string{"Weekend Explorer", "Primary needs", "ground clearance", "Secondary needs", "mileage", "Constraints", "under 15 lakh"} {
		assert.Contains(t, banner, want)
	}
}

func TestScoreBadgeText(t *testing.T) {
	for _, score := range []int{95, 70, 40} {
		badge := ScoreBadge(score)
		assert.True(t, strings.Contains(badge, "% fit"), "badge %q missing fit text", badge)
	}
}
