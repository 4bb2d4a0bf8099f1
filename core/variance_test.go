package core

import (
	"testing"

	"github.com/huangsam/attribution/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalyzeVarianceEmpty checks that no journeys gives an empty, non-nil list.
func TestAnalyzeVarianceEmpty(t *testing.T) {
	records, err := AnalyzeVariance(nil)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

// TestVarianceFromComparisons checks the statistics on hand built model outputs.
func TestVarianceFromComparisons(t *testing.T) {
	comparisons := []schema.ModelComparison{
		{ModelName: "First-Touch", Channels: []schema.AttributionResult{
			{Channel: "Steady", AttributedRevenue: 50},
			{Channel: "Swing", AttributedRevenue: 100},
		}},
		{ModelName: "Last-Touch", Channels: []schema.AttributionResult{
			{Channel: "Swing", AttributedRevenue: 300},
		}},
	}

	records := varianceFromComparisons(comparisons)
	require.Len(t, records, 2)

	swing := records[0]
	assert.Equal(t, "Swing", swing.Channel)
	assert.Equal(t, 200.0, swing.AvgRevenue)
	assert.Equal(t, 100.0, swing.StdDev)
	assert.Equal(t, 50.0, swing.CoefficientOfVariation)
	assert.Equal(t, 100.0, swing.MinRevenue)
	assert.Equal(t, 300.0, swing.MaxRevenue)
	assert.Equal(t, 2, swing.Models)

	steady := records[1]
	assert.Equal(t, "Steady", steady.Channel)
	assert.Equal(t, 50.0, steady.AvgRevenue)
	assert.Equal(t, 0.0, steady.StdDev)
	assert.Equal(t, 0.0, steady.CoefficientOfVariation)
	assert.Equal(t, 1, steady.Models)
}

// TestVarianceZeroMean checks the division guard on a zero revenue channel.
func TestVarianceZeroMean(t *testing.T) {
	comparisons := []schema.ModelComparison{
		{Channels: []schema.AttributionResult{{Channel: "Free", AttributedRevenue: 0}}},
		{Channels: []schema.AttributionResult{{Channel: "Free", AttributedRevenue: 0}}},
	}
	records := varianceFromComparisons(comparisons)
	require.Len(t, records, 1)
	assert.Equal(t, 0.0, records[0].CoefficientOfVariation)
}

// TestAnalyzeVarianceSkipsLastNonDirect checks the six model population.
func TestAnalyzeVarianceSkipsLastNonDirect(t *testing.T) {
	journeys := []schema.Journey{
		journey("J001", 1000, tp("Google Ads", 14, 100), tp("Organic Search", 7, 0), tp(schema.DirectChannel, 0, 0)),
	}
	records, err := AnalyzeVariance(journeys)
	require.NoError(t, err)

	for _, r := range records {
		assert.LessOrEqual(t, r.Models, len(schema.VarianceModels))
		assert.LessOrEqual(t, r.MinRevenue, r.AvgRevenue)
		assert.GreaterOrEqual(t, r.MaxRevenue, r.AvgRevenue)
	}
	for i := 1; i < len(records); i++ {
		assert.GreaterOrEqual(t, records[i-1].CoefficientOfVariation, records[i].CoefficientOfVariation)
	}

	// Organic Search only ever gets weighted credit, so first and last touch leave it out.
	for _, r := range records {
		if r.Channel == "Organic Search" {
			assert.Equal(t, 4, r.Models)
		}
	}
}

// TestMeanStdDev tests the population statistics helper.
func TestMeanStdDev(t *testing.T) {
	mean, std := meanStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Equal(t, 5.0, mean)
	assert.Equal(t, 2.0, std)

	mean, std = meanStdDev(nil)
	assert.Equal(t, 0.0, mean)
	assert.Equal(t, 0.0, std)
}
