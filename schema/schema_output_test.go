package schema_test

import (
	"testing"

	"github.com/huangsam/attribution/schema"
	"github.com/stretchr/testify/assert"
)

func TestGetShareLabel(t *testing.T) {
	tests := []struct {
		name     string
		pct      float64
		expected string
	}{
		{"Major Upper", 100.0, "Major"},
		{"Major Lower", 25.0, "Major"},
		{"Significant Upper", 24.9, "Significant"},
		{"Significant Lower", 15.0, "Significant"},
		{"Minor Upper", 14.9, "Minor"},
		{"Minor Lower", 5.0, "Minor"},
		{"Marginal Upper", 4.9, "Marginal"},
		{"Marginal Zero", 0.0, "Marginal"},
		{"Negative Share", -10.0, "Marginal"}, // Edge case
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, schema.GetShareLabel(tt.pct))
		})
	}
}

func TestEnrichResults(t *testing.T) {
	results := []schema.AttributionResult{
		{Channel: "Google Ads", AttributionPercentage: 40.0},
		{Channel: "Email Campaign", AttributionPercentage: 16.0},
		{Channel: "Referral", AttributionPercentage: 1.5},
	}

	enriched := schema.EnrichResults(results)

	assert.Len(t, enriched, 3)
	assert.Equal(t, 1, enriched[0].Rank)
	assert.Equal(t, "Major", enriched[0].Label)
	assert.Equal(t, "Google Ads", enriched[0].Channel)
	assert.Equal(t, 2, enriched[1].Rank)
	assert.Equal(t, "Significant", enriched[1].Label)
	assert.Equal(t, 3, enriched[2].Rank)
	assert.Equal(t, "Marginal", enriched[2].Label)
}

func TestEnrichResultsEmpty(t *testing.T) {
	assert.Empty(t, schema.EnrichResults(nil))
}

func TestJourneyHelpers(t *testing.T) {
	j := schema.Journey{
		ConversionValue: 500,
		Touchpoints: []schema.Touchpoint{
			{Sequence: 1, Channel: "Google Ads", Cost: 120.5},
			{Sequence: 2, Channel: "Email Campaign"},
			{Sequence: 3, Channel: "Google Ads", Cost: 30},
		},
	}

	assert.InDelta(t, 150.5, j.TotalCost(), 1e-9)
	assert.Equal(t, []string{"Google Ads", "Email Campaign"}, j.UniqueChannels())
	assert.InDelta(t, 1500.0, schema.TotalRevenue([]schema.Journey{j, j, j}), 1e-9)
}

func TestModelDisplayName(t *testing.T) {
	assert.Equal(t, "U-Shaped", schema.PositionBasedModel.DisplayName())
	assert.Equal(t, "Last Non-Direct", schema.LastNonDirectModel.DisplayName())
	assert.Equal(t, "custom", schema.AttributionModel("custom").DisplayName())
	assert.Len(t, schema.AllModels, len(schema.ValidModels))
	assert.NotContains(t, schema.VarianceModels, schema.LastNonDirectModel)
}
