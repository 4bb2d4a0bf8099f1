package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/internal/parquet"
	"github.com/huangsam/attribution/schema"
)

// dateFormat is used for conversion dates and touchpoint timestamps.
const dateFormat = "2006-01-02"

// journeyPath joins the channels of a journey in touch order.
func journeyPath(j schema.Journey) string {
	channels := make([]string, len(j.Touchpoints))
	for i, tp := range j.Touchpoints {
		channels[i] = tp.Channel
	}
	return strings.Join(channels, " → ")
}

// PrintJourneys outputs a list of stored journeys.
func PrintJourneys(journeys []schema.Journey, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, journeys)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVJourneys(w, journeys, fmtFloat, intFmt)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		journeyRows, _ := parquet.ConvertJourneys(journeys)
		if err := writeParquetRows(cfg.OutputFile, journeyRows); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJourneysTable(w, journeys, cfg, fmtFloat, intFmt)
		}, "Wrote table")
	}
	return nil
}

func writeCSVJourneys(w io.Writer, journeys []schema.Journey, fmtFloat func(float64) string, intFmt string) error {
	header := []string{"journey_id", "customer_name", "conversion_value", "conversion_date", "touchpoint_count", "time_to_conversion", "total_cost", "path"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, j := range journeys {
			rec := []string{
				j.JourneyID,
				j.CustomerName,
				fmtFloat(j.ConversionValue),
				j.ConversionDate.Format(dateFormat),
				fmt.Sprintf(intFmt, j.TouchpointCount),
				fmt.Sprintf(intFmt, j.TimeToConversion),
				fmtFloat(j.TotalCost()),
				journeyPath(j),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeJourneysTable(w io.Writer, journeys []schema.Journey, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	pathWidth := GetMaxTableTextWidth(cfg, 75)
	data := make([][]string, 0, len(journeys))
	for _, j := range journeys {
		data = append(data, []string{
			j.JourneyID,
			j.CustomerName,
			fmtFloat(j.ConversionValue),
			j.ConversionDate.Format(dateFormat),
			fmt.Sprintf(intFmt, j.TouchpointCount),
			fmt.Sprintf(intFmt, j.TimeToConversion),
			contract.TruncateText(journeyPath(j), pathWidth),
		})
	}
	if err := renderTable(w, []string{"ID", "Customer", "Value", "Converted", "Touches", "Days", "Path"}, data); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d journeys (revenue: %s)\n", len(journeys), fmtFloat(schema.TotalRevenue(journeys)))
	return err
}

// PrintJourneyDetail outputs one journey with every touchpoint.
func PrintJourneyDetail(journey schema.Journey, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, journey)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"journey_id", "sequence", "channel", "timestamp", "cost", "interaction_type", "days_before_conversion"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, tp := range journey.Touchpoints {
					if err := cw.Write([]string{
						journey.JourneyID,
						fmt.Sprintf(intFmt, tp.Sequence),
						tp.Channel,
						tp.Timestamp.Format(dateFormat),
						fmtFloat(tp.Cost),
						tp.InteractionType,
						fmt.Sprintf(intFmt, tp.DaysBeforeConversion),
					}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return parquetUnsupported("a single journey")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if _, err := fmt.Fprintf(w, "Journey %s (%s)\nConverted %s for %s after %d days\n",
				journey.JourneyID, journey.CustomerName, journey.ConversionDate.Format(dateFormat),
				fmtFloat(journey.ConversionValue), journey.TimeToConversion); err != nil {
				return err
			}
			data := make([][]string, 0, len(journey.Touchpoints))
			for _, tp := range journey.Touchpoints {
				data = append(data, []string{
					fmt.Sprintf(intFmt, tp.Sequence),
					tp.Channel,
					tp.InteractionType,
					tp.Timestamp.Format(dateFormat),
					fmt.Sprintf(intFmt, tp.DaysBeforeConversion),
					fmtFloat(tp.Cost),
				})
			}
			return renderTable(w, []string{"Seq", "Channel", "Interaction", "Date", "Days Before", "Cost"}, data)
		}, "Wrote table")
	}
	return nil
}

// PrintGenerated reports how many sample journeys were stored.
func PrintGenerated(count int, cfg *contract.Config) error {
	message := fmt.Sprintf("Generated %d sample journeys", count)
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, map[string]any{"message": message, "count": count})
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "✅ %s (store backend: %s)\n", message, cfg.StoreBackend)
		return err
	}, "Wrote summary")
}
