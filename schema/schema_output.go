package schema

// EnrichedAttributionResult adds presentation data to an AttributionResult.
type EnrichedAttributionResult struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	AttributionResult
}

// GetShareLabel returns a plain text label for a channel's share of total revenue.
func GetShareLabel(pct float64) string {
	switch {
	case pct >= 25:
		return "Major"
	case pct >= 15:
		return "Significant"
	case pct >= 5:
		return "Minor"
	default:
		return "Marginal"
	}
}

// EnrichResults adds rank and label to a list of attribution results.
func EnrichResults(results []AttributionResult) []EnrichedAttributionResult {
	output := make([]EnrichedAttributionResult, len(results))
	for i, r := range results {
		output[i] = EnrichedAttributionResult{
			Rank:              i + 1,
			Label:             GetShareLabel(r.AttributionPercentage),
			AttributionResult: r,
		}
	}
	return output
}

// ModelDefinition is one row of the model catalogue.
type ModelDefinition struct {
	Model AttributionModel `json:"model"`
	Name  string           `json:"name"`
	Rule  string           `json:"rule"`
}
