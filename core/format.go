package core

import (
	"math"
	"sort"

	"github.com/huangsam/attribution/schema"
)

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// safeDiv returns a/b, or 0 when b is 0.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// formatResults turns the accumulators into rounded result rows ranked by revenue.
// Channels with equal revenue keep their first-seen order.
func formatResults(book *channelBook, totalRevenue float64) []schema.AttributionResult {
	results := make([]schema.AttributionResult, 0, book.len())
	for _, channel := range book.order {
		acc := book.byChannel[channel]

		var avgPosition float64
		if len(acc.positions) > 0 {
			sum := 0
			for _, p := range acc.positions {
				sum += p
			}
			avgPosition = float64(sum) / float64(len(acc.positions))
		}

		var roas float64
		if acc.cost > 0 {
			roas = acc.revenue / acc.cost
		}

		var pct float64
		if totalRevenue > 0 {
			pct = acc.revenue / totalRevenue * 100
		}

		results = append(results, schema.AttributionResult{
			Channel:               channel,
			AttributedRevenue:     round2(acc.revenue),
			AttributionPercentage: round2(pct),
			TouchpointCount:       acc.touchpoints,
			Cost:                  round2(acc.cost),
			ROAS:                  round2(roas),
			ConversionsInfluenced: acc.conversions,
			AvgPosition:           round2(avgPosition),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AttributedRevenue > results[j].AttributedRevenue
	})
	return results
}
