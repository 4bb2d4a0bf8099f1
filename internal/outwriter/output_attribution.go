package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/internal/parquet"
	"github.com/huangsam/attribution/schema"
)

// PrintAttributionResults outputs the results of one model, dispatching based on the output format configured.
func PrintAttributionResults(results []schema.AttributionResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONAttribution(w, results)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVAttribution(w, results, fmtFloat, intFmt)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeParquetRows(cfg.OutputFile, parquet.ConvertAttributionResults(cfg.Model, results)); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAttributionTable(w, results, cfg, fmtFloat, intFmt, duration)
		}, "Wrote table")
	}
	return nil
}

// writeJSONAttribution writes the results with rank and label added.
func writeJSONAttribution(w io.Writer, results []schema.AttributionResult) error {
	return writeJSON(w, schema.EnrichResults(results))
}

// writeCSVAttribution writes the results in CSV format.
func writeCSVAttribution(w io.Writer, results []schema.AttributionResult, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"channel",
		"attributed_revenue",
		"attribution_percentage",
		"touchpoint_count",
		"cost",
		"roas",
		"conversions_influenced",
		"avg_position",
		"label",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, r := range results {
			rec := []string{
				strconv.Itoa(i + 1),
				r.Channel,
				fmtFloat(r.AttributedRevenue),
				fmtFloat(r.AttributionPercentage),
				fmt.Sprintf(intFmt, r.TouchpointCount),
				fmtFloat(r.Cost),
				fmtFloat(r.ROAS),
				fmt.Sprintf(intFmt, r.ConversionsInfluenced),
				fmtFloat(r.AvgPosition),
				contract.GetPlainLabel(r.AttributionPercentage),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeAttributionTable generates and writes the human-readable table.
func writeAttributionTable(w io.Writer, results []schema.AttributionResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	headers := []string{"Rank", "Channel", "Revenue", "Share %", "Touches", "Cost", "ROAS", "Conversions", "Avg Pos", "Label"}
	channelWidth := GetMaxTableTextWidth(cfg, 90)

	var data [][]string
	var totalRevenue, totalCost float64
	for i, r := range results {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateText(r.Channel, channelWidth),
			fmtFloat(r.AttributedRevenue),
			fmtFloat(r.AttributionPercentage),
			fmt.Sprintf(intFmt, r.TouchpointCount),
			fmtFloat(r.Cost),
			roasText(r.ROAS, r.Cost, cfg, fmtFloat),
			fmt.Sprintf(intFmt, r.ConversionsInfluenced),
			fmtFloat(r.AvgPosition),
			shareLabel(r.AttributionPercentage, cfg),
		})
		totalRevenue += r.AttributedRevenue
		totalCost += r.Cost
	}

	if err := renderTable(w, headers, data); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s model: %d channels (revenue: %s, spend: %s)\n",
		cfg.Model.DisplayName(), len(results), fmtFloat(totalRevenue), fmtFloat(totalCost)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Attribution completed in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}
