package core

import (
	"math"
	"sort"

	"github.com/huangsam/attribution/schema"
)

// AnalyzeVariance measures how far each channel's attributed revenue moves
// across models. A channel missing from a model's output is left out of that
// channel's population rather than counted as zero. No journeys yields an
// empty list.
func AnalyzeVariance(journeys []schema.Journey) ([]schema.VarianceRecord, error) {
	if len(journeys) == 0 {
		return []schema.VarianceRecord{}, nil
	}
	comparisons, err := computeModels(schema.VarianceModels, journeys)
	if err != nil {
		return nil, err
	}
	return varianceFromComparisons(comparisons), nil
}

// varianceFromComparisons builds the variance records from per-model results,
// sorted by coefficient of variation descending.
func varianceFromComparisons(comparisons []schema.ModelComparison) []schema.VarianceRecord {
	revenues := make(map[string][]float64)
	var channels []string
	for _, cmp := range comparisons {
		for _, r := range cmp.Channels {
			if _, ok := revenues[r.Channel]; !ok {
				channels = append(channels, r.Channel)
			}
			revenues[r.Channel] = append(revenues[r.Channel], r.AttributedRevenue)
		}
	}

	records := make([]schema.VarianceRecord, 0, len(channels))
	for _, channel := range channels {
		values := revenues[channel]
		mean, stdDev := meanStdDev(values)

		var cv float64
		if mean > 0 {
			cv = stdDev / mean * 100
		}

		minRev, maxRev := values[0], values[0]
		for _, v := range values[1:] {
			minRev = math.Min(minRev, v)
			maxRev = math.Max(maxRev, v)
		}

		records = append(records, schema.VarianceRecord{
			Channel:                channel,
			AvgRevenue:             round2(mean),
			StdDev:                 round2(stdDev),
			CoefficientOfVariation: round2(cv),
			MinRevenue:             round2(minRev),
			MaxRevenue:             round2(maxRev),
			Models:                 len(values),
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CoefficientOfVariation > records[j].CoefficientOfVariation
	})
	return records
}

// meanStdDev returns the mean and population standard deviation of values.
func meanStdDev(values []float64) (mean, stdDev float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(len(values))

	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(sq / float64(len(values)))
}
