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

// PrintComparisonResults outputs every model side by side, dispatching based on the output format configured.
func PrintComparisonResults(comparisons []schema.ModelComparison, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, comparisons)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVComparison(w, comparisons, fmtFloat, intFmt)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeParquetRows(cfg.OutputFile, parquet.ConvertComparisons(comparisons)); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeComparisonTable(w, comparisons, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
	return nil
}

// writeCSVComparison writes one row per model and channel.
func writeCSVComparison(w io.Writer, comparisons []schema.ModelComparison, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"model",
		"rank",
		"channel",
		"attributed_revenue",
		"attribution_percentage",
		"touchpoint_count",
		"cost",
		"roas",
		"conversions_influenced",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, cmp := range comparisons {
			for i, r := range cmp.Channels {
				rec := []string{
					string(cmp.Model),
					strconv.Itoa(i + 1),
					r.Channel,
					fmtFloat(r.AttributedRevenue),
					fmtFloat(r.AttributionPercentage),
					fmt.Sprintf(intFmt, r.TouchpointCount),
					fmtFloat(r.Cost),
					fmtFloat(r.ROAS),
					fmt.Sprintf(intFmt, r.ConversionsInfluenced),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// writeComparisonTable pivots the comparison into one row per channel and one
// revenue column per model. Channels keep the order in which models first list them.
func writeComparisonTable(w io.Writer, comparisons []schema.ModelComparison, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	headers := []string{"Channel"}
	var channels []string
	revenue := make(map[string][]string)
	for m, cmp := range comparisons {
		headers = append(headers, cmp.ModelName)
		for _, r := range cmp.Channels {
			if _, ok := revenue[r.Channel]; !ok {
				channels = append(channels, r.Channel)
				revenue[r.Channel] = make([]string, len(comparisons))
			}
			revenue[r.Channel][m] = fmtFloat(r.AttributedRevenue)
		}
	}

	channelWidth := GetMaxTableTextWidth(cfg, 14*len(comparisons))
	data := make([][]string, 0, len(channels))
	for _, ch := range channels {
		row := []string{contract.TruncateText(ch, channelWidth)}
		for _, v := range revenue[ch] {
			if v == "" {
				v = "-"
			}
			row = append(row, v)
		}
		data = append(data, row)
	}

	if err := renderTable(w, headers, data); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Compared %d models across %d channels in %v\n", len(comparisons), len(channels), duration); err != nil {
		return err
	}
	return nil
}
