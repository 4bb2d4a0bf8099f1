package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/schema"
)

// highVariation is the coefficient of variation, in percent, at which models clearly disagree.
const highVariation = 50.0

// PrintVarianceResults outputs the cross-model variance records.
func PrintVarianceResults(records []schema.VarianceRecord, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, records)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVVariance(w, records, fmtFloat, intFmt)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return parquetUnsupported("variance")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeVarianceTable(w, records, cfg, fmtFloat, intFmt, duration)
		}, "Wrote table")
	}
	return nil
}

func writeCSVVariance(w io.Writer, records []schema.VarianceRecord, fmtFloat func(float64) string, intFmt string) error {
	header := []string{"channel", "avg_revenue", "std_dev", "coefficient_of_variation", "min_revenue", "max_revenue", "models"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range records {
			rec := []string{
				r.Channel,
				fmtFloat(r.AvgRevenue),
				fmtFloat(r.StdDev),
				fmtFloat(r.CoefficientOfVariation),
				fmtFloat(r.MinRevenue),
				fmtFloat(r.MaxRevenue),
				fmt.Sprintf(intFmt, r.Models),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeVarianceTable(w io.Writer, records []schema.VarianceRecord, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	headers := []string{"Channel", "Avg Revenue", "Std Dev", "CV %", "Min", "Max", "Models"}
	channelWidth := GetMaxTableTextWidth(cfg, 70)

	data := make([][]string, 0, len(records))
	for _, r := range records {
		cv := fmtFloat(r.CoefficientOfVariation)
		if cfg.UseColors && r.CoefficientOfVariation >= highVariation {
			cv = color.New(color.FgRed, color.Bold).Sprint(cv)
		}
		data = append(data, []string{
			contract.TruncateText(r.Channel, channelWidth),
			fmtFloat(r.AvgRevenue),
			fmtFloat(r.StdDev),
			cv,
			fmtFloat(r.MinRevenue),
			fmtFloat(r.MaxRevenue),
			fmt.Sprintf(intFmt, r.Models),
		})
	}

	if err := renderTable(w, headers, data); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Variance across %d models for %d channels computed in %v\n", len(schema.VarianceModels), len(records), duration); err != nil {
		return err
	}
	return nil
}
