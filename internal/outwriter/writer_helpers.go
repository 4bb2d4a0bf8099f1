package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/internal/parquet"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// errParquetNeedsFile is returned when parquet output would go to a terminal.
var errParquetNeedsFile = errors.New("--output-file is required for parquet output")

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// writeParquetRows writes rows to the configured output file as Parquet.
func writeParquetRows[T any](outputFile string, rows []T) error {
	if outputFile == "" {
		return errParquetNeedsFile
	}
	return writeWithFile(outputFile, func(w io.Writer) error {
		return parquet.WriteRows(w, rows)
	}, "Wrote Parquet")
}

// parquetUnsupported reports that a result type has no Parquet layout.
func parquetUnsupported(what string) error {
	return fmt.Errorf("parquet output is not supported for %s; use text, csv or json", what)
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// renderTable writes a right aligned table with the given headers and rows.
func renderTable(w io.Writer, headers []string, data [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// shareLabel returns the share label, colored when colors are enabled.
func shareLabel(pct float64, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(pct)
	}
	return contract.GetPlainLabel(pct)
}

// roasText formats a ROAS figure, green when spend paid back and red otherwise.
func roasText(roas float64, cost float64, cfg *contract.Config, fmtFloat func(float64) string) string {
	text := fmtFloat(roas) + "x"
	if !cfg.UseColors || cost == 0 {
		return text
	}
	if roas >= 1 {
		return color.New(color.FgGreen).Sprint(text)
	}
	return color.New(color.FgRed).Sprint(text)
}
