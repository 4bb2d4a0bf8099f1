package core

import (
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateJourneysDeterministic checks that a seed reproduces the same data.
func TestGenerateJourneysDeterministic(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 30, 15, 500, time.UTC)
	a := GenerateJourneys(rand.New(rand.NewPCG(42, 42)), 20, now)
	b := GenerateJourneys(rand.New(rand.NewPCG(42, 42)), 20, now)
	c := GenerateJourneys(rand.New(rand.NewPCG(43, 43)), 20, now)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

// TestGenerateJourneysShape checks the invariants every generated journey holds.
func TestGenerateJourneysShape(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 30, 15, 0, time.UTC)
	journeys := GenerateJourneys(rand.New(rand.NewPCG(1, 2)), 150, now)
	require.Len(t, journeys, 150)

	assert.Equal(t, "J001", journeys[0].JourneyID)
	assert.Equal(t, "J150", journeys[149].JourneyID)

	for _, j := range journeys {
		assert.NotEmpty(t, j.CustomerName)
		assert.GreaterOrEqual(t, j.ConversionValue, 1000.0)
		assert.LessOrEqual(t, j.ConversionValue, 50000.0)
		assert.GreaterOrEqual(t, j.TimeToConversion, 1)
		assert.LessOrEqual(t, j.TimeToConversion, 45)
		assert.False(t, j.ConversionDate.After(now))
		assert.False(t, j.ConversionDate.Before(now.AddDate(0, 0, -90).Add(-time.Second)))

		n := len(j.Touchpoints)
		assert.Equal(t, n, j.TouchpointCount)
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 8)
		assert.Contains(t, closers, j.Touchpoints[n-1].Channel)

		prevDays := j.TimeToConversion + 1
		for i, tp := range j.Touchpoints {
			assert.Equal(t, i+1, tp.Sequence)
			assert.Contains(t, Channels, tp.Channel)
			assert.Contains(t, InteractionTypes, tp.InteractionType)
			assert.LessOrEqual(t, tp.DaysBeforeConversion, prevDays)
			prevDays = tp.DaysBeforeConversion
			assert.Equal(t, j.ConversionDate.AddDate(0, 0, -tp.DaysBeforeConversion), tp.Timestamp)

			if slices.Contains(PaidChannels, tp.Channel) {
				assert.GreaterOrEqual(t, tp.Cost, 50.0)
				assert.LessOrEqual(t, tp.Cost, 5000.0)
			} else {
				assert.Equal(t, 0.0, tp.Cost)
			}
		}
		assert.Equal(t, 0, j.Touchpoints[n-1].DaysBeforeConversion)
	}
}

// TestGenerateJourneysZero checks the empty request.
func TestGenerateJourneysZero(t *testing.T) {
	journeys := GenerateJourneys(rand.New(rand.NewPCG(1, 1)), 0, time.Now())
	assert.Empty(t, journeys)
}
