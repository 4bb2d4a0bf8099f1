package schema

import "time"

// StoreStatus represents the status of the journey store.
type StoreStatus struct {
	Backend          string    `json:"backend"`
	Connected        bool      `json:"connected"`
	TotalJourneys    int       `json:"total_journeys"`
	TotalTouchpoints int       `json:"total_touchpoints"`
	OldestConversion time.Time `json:"oldest_conversion"`
	LatestConversion time.Time `json:"latest_conversion"`
	SchemaVersion    int       `json:"schema_version"`
	TableSizeBytes   int64     `json:"table_size_bytes"`
}
