package schema

// Stats holds the overall numbers of a journey snapshot.
type Stats struct {
	TotalConversions    int     `json:"total_conversions"`
	TotalRevenue        float64 `json:"total_revenue"`
	AvgTouchpoints      float64 `json:"avg_touchpoints"`
	AvgTimeToConversion float64 `json:"avg_time_to_conversion"`
	TotalMarketingSpend float64 `json:"total_marketing_spend"`
	OverallROAS         float64 `json:"overall_roas"`
}

// ChannelMetrics holds interaction based metrics for one channel.
type ChannelMetrics struct {
	Channel           string  `json:"channel"`
	ConversionRate    float64 `json:"conversion_rate"`
	CPA               float64 `json:"cpa"`
	TotalInteractions int     `json:"total_interactions"`
	Conversions       int     `json:"conversions"`
	Revenue           float64 `json:"revenue"`
	Spend             float64 `json:"spend"`
}

// RevenueTrend is one day of conversions.
type RevenueTrend struct {
	Date              string  `json:"date"`
	Revenue           float64 `json:"revenue"`
	Conversions       int     `json:"conversions"`
	Spend             float64 `json:"spend"`
	CumulativeRevenue float64 `json:"cumulative_revenue"`
	ROAS              float64 `json:"roas"`
}

// ChannelSynergy counts journeys in which two channels appear together.
type ChannelSynergy struct {
	Channel1      string `json:"channel1"`
	Channel2      string `json:"channel2"`
	CoOccurrences int    `json:"co_occurrences"`
}

// FunnelStage groups journeys by their touchpoint count.
type FunnelStage struct {
	TouchpointCount    int     `json:"touchpoint_count"`
	Journeys           int     `json:"journeys"`
	Revenue            float64 `json:"revenue"`
	AvgConversionValue float64 `json:"avg_conversion_value"`
}

// Performer is a condensed channel entry for the top/bottom lists.
type Performer struct {
	Channel string  `json:"channel"`
	Revenue float64 `json:"revenue"`
	ROAS    float64 `json:"roas"`
}

// TopPerformers holds the best and worst channels by linear revenue.
type TopPerformers struct {
	Top    []Performer `json:"top"`
	Bottom []Performer `json:"bottom"`
}
