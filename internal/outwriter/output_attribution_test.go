package outwriter

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	parquetgo "github.com/parquet-go/parquet-go"

	"github.com/huangsam/attribution/internal/parquet"
	"github.com/huangsam/attribution/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintAttributionResults(t *testing.T) {
	results := sampleResults()

	t.Run("json adds rank and label", func(t *testing.T) {
		cfg := testConfig(t, schema.JSONOut, "out.json")
		require.NoError(t, PrintAttributionResults(results, cfg, time.Second))

		var rows []map[string]any
		require.NoError(t, json.Unmarshal([]byte(readOutput(t, cfg)), &rows))
		require.Len(t, rows, 2)
		assert.Equal(t, float64(1), rows[0]["rank"])
		assert.Equal(t, "Google Ads", rows[0]["channel"])
		assert.Equal(t, "Major", rows[0]["label"])
		assert.Equal(t, 600.0, rows[0]["attributed_revenue"])
		assert.Equal(t, float64(2), rows[1]["rank"])
	})

	t.Run("csv", func(t *testing.T) {
		cfg := testConfig(t, schema.CSVOut, "out.csv")
		require.NoError(t, PrintAttributionResults(results, cfg, time.Second))

		lines := strings.Split(strings.TrimSpace(readOutput(t, cfg)), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[0], "rank,channel,attributed_revenue"))
		assert.Equal(t, "1,Google Ads,600.00,60.00,3,200.00,3.00,2,1.50,Major", lines[1])
	})

	t.Run("table", func(t *testing.T) {
		cfg := testConfig(t, schema.TextOut, "out.txt")
		require.NoError(t, PrintAttributionResults(results, cfg, time.Second))

		out := readOutput(t, cfg)
		assert.Contains(t, out, "Google Ads")
		assert.Contains(t, out, "3.00x")
		assert.Contains(t, out, "Linear model: 2 channels (revenue: 1000.00, spend: 200.00)")
		assert.Contains(t, out, "Store backend: sqlite")
	})

	t.Run("parquet", func(t *testing.T) {
		cfg := testConfig(t, schema.ParquetOut, "out.parquet")
		require.NoError(t, PrintAttributionResults(results, cfg, time.Second))

		rows, err := parquetgo.ReadFile[parquet.AttributionRow](cfg.OutputFile)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "linear", rows[0].Model)
		assert.Equal(t, int32(1), rows[0].Rank)
		assert.Equal(t, "Email Campaign", rows[1].Channel)
	})

	t.Run("parquet needs a file", func(t *testing.T) {
		cfg := testConfig(t, schema.ParquetOut, "unused")
		cfg.OutputFile = ""
		assert.Error(t, PrintAttributionResults(results, cfg, time.Second))
	})
}

func TestPrintComparisonResults(t *testing.T) {
	comparisons := []schema.ModelComparison{
		{ModelName: "First-Touch", Model: schema.FirstTouchModel, Channels: []schema.AttributionResult{
			{Channel: "Google Ads", AttributedRevenue: 1000, AttributionPercentage: 100},
		}},
		{ModelName: "Linear", Model: schema.LinearModel, Channels: sampleResults()},
	}

	t.Run("json", func(t *testing.T) {
		cfg := testConfig(t, schema.JSONOut, "cmp.json")
		require.NoError(t, PrintComparisonResults(comparisons, cfg, time.Second))

		var decoded []schema.ModelComparison
		require.NoError(t, json.Unmarshal([]byte(readOutput(t, cfg)), &decoded))
		assert.Equal(t, comparisons, decoded)
	})

	t.Run("csv has one row per model and channel", func(t *testing.T) {
		cfg := testConfig(t, schema.CSVOut, "cmp.csv")
		require.NoError(t, PrintComparisonResults(comparisons, cfg, time.Second))

		lines := strings.Split(strings.TrimSpace(readOutput(t, cfg)), "\n")
		require.Len(t, lines, 4)
		assert.True(t, strings.HasPrefix(lines[1], "first_touch,1,Google Ads"))
		assert.True(t, strings.HasPrefix(lines[3], "linear,2,Email Campaign"))
	})

	t.Run("table pivots channels", func(t *testing.T) {
		cfg := testConfig(t, schema.TextOut, "cmp.txt")
		require.NoError(t, PrintComparisonResults(comparisons, cfg, time.Second))

		out := readOutput(t, cfg)
		assert.Contains(t, out, "Email Campaign")
		assert.Contains(t, out, "-")
		assert.Contains(t, out, "Compared 2 models across 2 channels")
	})

	t.Run("parquet", func(t *testing.T) {
		cfg := testConfig(t, schema.ParquetOut, "cmp.parquet")
		require.NoError(t, PrintComparisonResults(comparisons, cfg, time.Second))

		rows, err := parquetgo.ReadFile[parquet.AttributionRow](cfg.OutputFile)
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})
}

func TestPrintVarianceResults(t *testing.T) {
	records := []schema.VarianceRecord{
		{Channel: "Google Ads", AvgRevenue: 500, StdDev: 300, CoefficientOfVariation: 60, MinRevenue: 100, MaxRevenue: 900, Models: 6},
	}

	t.Run("csv", func(t *testing.T) {
		cfg := testConfig(t, schema.CSVOut, "var.csv")
		require.NoError(t, PrintVarianceResults(records, cfg, time.Second))
		assert.Contains(t, readOutput(t, cfg), "Google Ads,500.00,300.00,60.00,100.00,900.00,6")
	})

	t.Run("table", func(t *testing.T) {
		cfg := testConfig(t, schema.TextOut, "var.txt")
		cfg.UseColors = true
		require.NoError(t, PrintVarianceResults(records, cfg, time.Second))
		out := readOutput(t, cfg)
		assert.Contains(t, out, "60.00")
		assert.Contains(t, out, "Variance across 6 models for 1 channels")
	})

	t.Run("parquet unsupported", func(t *testing.T) {
		cfg := testConfig(t, schema.ParquetOut, "var.parquet")
		assert.ErrorContains(t, PrintVarianceResults(records, cfg, time.Second), "not supported")
	})
}
