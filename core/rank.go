package core

import "github.com/huangsam/attribution/schema"

// limitResults returns the first 'limit' ranked results. If limit is greater
// than the number of results, all results are returned.
func limitResults(results []schema.AttributionResult, limit int) []schema.AttributionResult {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}

// limitComparisons applies limitResults to every model of a comparison.
func limitComparisons(comparisons []schema.ModelComparison, limit int) []schema.ModelComparison {
	limited := make([]schema.ModelComparison, len(comparisons))
	for i, cmp := range comparisons {
		cmp.Channels = limitResults(cmp.Channels, limit)
		limited[i] = cmp
	}
	return limited
}
