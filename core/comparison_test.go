package core

import (
	"testing"

	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompareAll checks model order and that each entry matches a direct run.
func TestCompareAll(t *testing.T) {
	journeys := []schema.Journey{
		journey("J001", 1000, tp("Google Ads", 10, 200), tp("Blog Content", 4, 0), tp(schema.DirectChannel, 0, 0)),
		journey("J002", 400, tp("Referral", 3, 0), tp("Email Campaign", 0, 0)),
	}

	comparisons, err := CompareAll(journeys)
	require.NoError(t, err)
	require.Len(t, comparisons, len(schema.AllModels))

	expectedNames := []string{"First-Touch", "Last-Touch", "Last Non-Direct", "Linear", "Time Decay", "U-Shaped", "W-Shaped"}
	for i, cmp := range comparisons {
		assert.Equal(t, expectedNames[i], cmp.ModelName)
		assert.Equal(t, schema.AllModels[i], cmp.Model)

		direct, err := Compute(cmp.Model, journeys)
		require.NoError(t, err)
		assert.Equal(t, direct, cmp.Channels)
	}
}

// TestCompareAllNoData checks the empty snapshot.
func TestCompareAllNoData(t *testing.T) {
	_, err := CompareAll([]schema.Journey{})
	assert.ErrorIs(t, err, contract.ErrNoData)
}

// TestLimitResults tests the result limit helpers.
func TestLimitResults(t *testing.T) {
	results := []schema.AttributionResult{
		{Channel: "A", AttributedRevenue: 30},
		{Channel: "B", AttributedRevenue: 20},
		{Channel: "C", AttributedRevenue: 10},
	}

	t.Run("limit", func(t *testing.T) {
		limited := limitResults(results, 2)
		assert.Len(t, limited, 2)
		assert.Equal(t, "B", limited[1].Channel)
	})

	t.Run("limit exceeds length", func(t *testing.T) {
		assert.Len(t, limitResults(results, 10), 3)
	})

	t.Run("zero means all", func(t *testing.T) {
		assert.Len(t, limitResults(results, 0), 3)
	})

	t.Run("comparisons", func(t *testing.T) {
		cmps := []schema.ModelComparison{{ModelName: "Linear", Channels: results}, {ModelName: "W-Shaped", Channels: results[:1]}}
		limited := limitComparisons(cmps, 1)
		assert.Len(t, limited[0].Channels, 1)
		assert.Len(t, limited[1].Channels, 1)
		assert.Len(t, cmps[0].Channels, 3)
	})
}
