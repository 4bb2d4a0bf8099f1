package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/schema"
)

// PrintModelDefinitions outputs the model catalogue in comparison order.
func PrintModelDefinitions(defs []schema.ModelDefinition, cfg *contract.Config) error {
	rows := make([][]string, 0, len(defs))
	for _, d := range defs {
		rows = append(rows, []string{string(d.Model), d.Name, d.Rule})
	}

	return printReport(cfg, "model definitions", defs,
		func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"model", "name", "rule"}, func(cw *csv.Writer) error {
				return cw.WriteAll(rows)
			})
		},
		func(w io.Writer) error {
			return renderTable(w, []string{"Model", "Name", "Credit Rule"}, rows)
		})
}
