package schema

// AttributionResult is the per-channel rollup produced by one model.
type AttributionResult struct {
	Channel               string  `json:"channel"`
	AttributedRevenue     float64 `json:"attributed_revenue"`
	AttributionPercentage float64 `json:"attribution_percentage"`
	TouchpointCount       int     `json:"touchpoint_count"`
	Cost                  float64 `json:"cost"`
	ROAS                  float64 `json:"roas"`
	ConversionsInfluenced int     `json:"conversions_influenced"`
	AvgPosition           float64 `json:"avg_position"`
}

// ModelComparison packages the results of one model for side-by-side display.
type ModelComparison struct {
	ModelName string              `json:"model_name"`
	Model     AttributionModel    `json:"model"`
	Channels  []AttributionResult `json:"channels"`
}

// VarianceRecord describes how much a channel's attributed revenue moves across models.
type VarianceRecord struct {
	Channel                string  `json:"channel"`
	AvgRevenue             float64 `json:"avg_revenue"`
	StdDev                 float64 `json:"std_dev"`
	CoefficientOfVariation float64 `json:"coefficient_of_variation"`
	MinRevenue             float64 `json:"min_revenue"`
	MaxRevenue             float64 `json:"max_revenue"`
	Models                 int     `json:"models"` // number of models the channel appeared in
}
