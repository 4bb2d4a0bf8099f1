package core

import (
	"time"

	"github.com/huangsam/attribution/schema"
)

var testConversion = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

// tp builds a touchpoint; sequence numbers are filled in by journey.
func tp(channel string, daysBefore int, cost float64) schema.Touchpoint {
	return schema.Touchpoint{
		Channel:              channel,
		Cost:                 cost,
		InteractionType:      "Click",
		DaysBeforeConversion: daysBefore,
		Timestamp:            testConversion.AddDate(0, 0, -daysBefore),
	}
}

// journey builds a journey with 1-based sequences in the given order.
func journey(id string, value float64, tps ...schema.Touchpoint) schema.Journey {
	for i := range tps {
		tps[i].Sequence = i + 1
	}
	ttc := 0
	if len(tps) > 0 {
		ttc = tps[0].DaysBeforeConversion
	}
	return schema.Journey{
		JourneyID:        id,
		CustomerName:     "Test Customer",
		ConversionValue:  value,
		ConversionDate:   testConversion,
		TouchpointCount:  len(tps),
		TimeToConversion: ttc,
		Touchpoints:      tps,
	}
}

// findResult returns the result row for channel, or false.
func findResult(results []schema.AttributionResult, channel string) (schema.AttributionResult, bool) {
	for _, r := range results {
		if r.Channel == channel {
			return r, true
		}
	}
	return schema.AttributionResult{}, false
}
