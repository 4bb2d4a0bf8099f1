// Package schema has the data contracts and constants shared by all parts of attribution.
package schema

import "time"

// Touchpoint is a single marketing interaction inside a journey.
type Touchpoint struct {
	Sequence             int       `json:"sequence"`               // 1-based position in the journey
	Channel              string    `json:"channel"`                // Marketing channel name
	Timestamp            time.Time `json:"timestamp"`              // When the interaction happened
	Cost                 float64   `json:"cost"`                   // Spend for this interaction, 0 for organic
	InteractionType      string    `json:"interaction_type"`       // Click, View, Engagement, ...
	DaysBeforeConversion int       `json:"days_before_conversion"` // Non-increasing as sequence grows
}

// Journey is the ordered set of touchpoints leading to one conversion.
type Journey struct {
	JourneyID        string       `json:"journey_id"`
	CustomerName     string       `json:"customer_name"`
	ConversionValue  float64      `json:"conversion_value"`
	ConversionDate   time.Time    `json:"conversion_date"`
	TouchpointCount  int          `json:"touchpoint_count"`
	TimeToConversion int          `json:"time_to_conversion"`
	Touchpoints      []Touchpoint `json:"touchpoints"`
}

// TotalCost returns the spend across all touchpoints of the journey.
func (j Journey) TotalCost() float64 {
	var total float64
	for _, tp := range j.Touchpoints {
		total += tp.Cost
	}
	return total
}

// UniqueChannels returns the distinct channels of the journey in first-seen order.
func (j Journey) UniqueChannels() []string {
	seen := make(map[string]struct{}, len(j.Touchpoints))
	channels := make([]string, 0, len(j.Touchpoints))
	for _, tp := range j.Touchpoints {
		if _, ok := seen[tp.Channel]; ok {
			continue
		}
		seen[tp.Channel] = struct{}{}
		channels = append(channels, tp.Channel)
	}
	return channels
}

// TotalRevenue sums conversion values over all journeys.
func TotalRevenue(journeys []Journey) float64 {
	var total float64
	for _, j := range journeys {
		total += j.ConversionValue
	}
	return total
}
