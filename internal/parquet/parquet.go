// Package parquet provides data structures and functions for exporting journeys
// and attribution results to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/attribution/schema"
	"github.com/parquet-go/parquet-go"
)

// JourneyRow represents one conversion journey without its touchpoints.
// This struct maps to the journeys database table.
type JourneyRow struct {
	// JourneyID is the unique identifier of the journey
	JourneyID string `parquet:"journey_id,snappy"`

	// CustomerName is a display label (nullable)
	CustomerName *string `parquet:"customer_name,optional,snappy"`

	// ConversionValue is the revenue of the conversion
	ConversionValue float64 `parquet:"conversion_value,snappy"`

	// ConversionDate is when the customer converted
	ConversionDate time.Time `parquet:"conversion_date,snappy"`

	// TouchpointCount is the number of touchpoints in the journey
	TouchpointCount int32 `parquet:"touchpoint_count,snappy"`

	// TimeToConversion is the number of days from first touch to conversion
	TimeToConversion int32 `parquet:"time_to_conversion,snappy"`

	// TotalCost is the spend across all touchpoints
	TotalCost float64 `parquet:"total_cost,snappy"`
}

// TouchpointRow represents one marketing interaction of a journey.
// This struct maps to the touchpoints database table.
type TouchpointRow struct {
	JourneyID            string    `parquet:"journey_id,snappy"`
	Sequence             int32     `parquet:"sequence,snappy"`
	Channel              string    `parquet:"channel,dict,snappy"`
	Timestamp            time.Time `parquet:"timestamp,snappy"`
	Cost                 float64   `parquet:"cost,snappy"`
	InteractionType      string    `parquet:"interaction_type,dict,snappy"`
	DaysBeforeConversion int32     `parquet:"days_before_conversion,snappy"`
}

// AttributionRow is one ranked channel of one model's results.
type AttributionRow struct {
	Model                 string  `parquet:"model,dict,snappy"`
	Rank                  int32   `parquet:"rank,snappy"`
	Channel               string  `parquet:"channel,dict,snappy"`
	AttributedRevenue     float64 `parquet:"attributed_revenue,snappy"`
	AttributionPercentage float64 `parquet:"attribution_percentage,snappy"`
	TouchpointCount       int32   `parquet:"touchpoint_count,snappy"`
	Cost                  float64 `parquet:"cost,snappy"`
	ROAS                  float64 `parquet:"roas,snappy"`
	ConversionsInfluenced int32   `parquet:"conversions_influenced,snappy"`
	AvgPosition           float64 `parquet:"avg_position,snappy"`
	Label                 string  `parquet:"label,dict,snappy"`
}

// WriteRows writes rows to w as a single Parquet file.
// The schema is derived from the struct tags of T.
func WriteRows[T any](w io.Writer, rows []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// writeFile creates outputPath and writes rows into it.
func writeFile[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return WriteRows(file, rows)
}

// WriteJourneysParquet writes a slice of JourneyRow structs to a Parquet file.
func WriteJourneysParquet(data []JourneyRow, outputPath string) error {
	return writeFile(data, outputPath)
}

// WriteTouchpointsParquet writes a slice of TouchpointRow structs to a Parquet file.
func WriteTouchpointsParquet(data []TouchpointRow, outputPath string) error {
	return writeFile(data, outputPath)
}

// ConvertJourneys flattens journeys into journey rows and touchpoint rows.
func ConvertJourneys(journeys []schema.Journey) ([]JourneyRow, []TouchpointRow) {
	journeyRows := make([]JourneyRow, len(journeys))
	var touchpointRows []TouchpointRow
	for i, j := range journeys {
		var name *string
		if j.CustomerName != "" {
			n := j.CustomerName
			name = &n
		}
		journeyRows[i] = JourneyRow{
			JourneyID:        j.JourneyID,
			CustomerName:     name,
			ConversionValue:  j.ConversionValue,
			ConversionDate:   j.ConversionDate,
			TouchpointCount:  int32(len(j.Touchpoints)),
			TimeToConversion: int32(j.TimeToConversion),
			TotalCost:        j.TotalCost(),
		}
		for _, tp := range j.Touchpoints {
			touchpointRows = append(touchpointRows, TouchpointRow{
				JourneyID:            j.JourneyID,
				Sequence:             int32(tp.Sequence),
				Channel:              tp.Channel,
				Timestamp:            tp.Timestamp,
				Cost:                 tp.Cost,
				InteractionType:      tp.InteractionType,
				DaysBeforeConversion: int32(tp.DaysBeforeConversion),
			})
		}
	}
	return journeyRows, touchpointRows
}

// ConvertAttributionResults turns ranked results of one model into rows.
func ConvertAttributionResults(model schema.AttributionModel, results []schema.AttributionResult) []AttributionRow {
	rows := make([]AttributionRow, len(results))
	for i, r := range results {
		rows[i] = AttributionRow{
			Model:                 string(model),
			Rank:                  int32(i + 1),
			Channel:               r.Channel,
			AttributedRevenue:     r.AttributedRevenue,
			AttributionPercentage: r.AttributionPercentage,
			TouchpointCount:       int32(r.TouchpointCount),
			Cost:                  r.Cost,
			ROAS:                  r.ROAS,
			ConversionsInfluenced: int32(r.ConversionsInfluenced),
			AvgPosition:           r.AvgPosition,
			Label:                 schema.GetShareLabel(r.AttributionPercentage),
		}
	}
	return rows
}

// ConvertComparisons flattens every model of a comparison into one table.
func ConvertComparisons(comparisons []schema.ModelComparison) []AttributionRow {
	var rows []AttributionRow
	for _, cmp := range comparisons {
		rows = append(rows, ConvertAttributionResults(cmp.Model, cmp.Channels)...)
	}
	return rows
}
