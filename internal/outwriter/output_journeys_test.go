package outwriter

import (
	"encoding/json"
	"strings"
	"testing"

	parquetgo "github.com/parquet-go/parquet-go"

	"github.com/huangsam/attribution/internal/parquet"
	"github.com/huangsam/attribution/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJourneyPath(t *testing.T) {
	assert.Equal(t, "Google Ads → Email Campaign", journeyPath(sampleJourney()))
	assert.Equal(t, "", journeyPath(schema.Journey{}))
}

func TestPrintJourneys(t *testing.T) {
	journeys := []schema.Journey{sampleJourney()}

	t.Run("json", func(t *testing.T) {
		cfg := testConfig(t, schema.JSONOut, "journeys.json")
		require.NoError(t, PrintJourneys(journeys, cfg))
		var decoded []schema.Journey
		require.NoError(t, json.Unmarshal([]byte(readOutput(t, cfg)), &decoded))
		require.Len(t, decoded, 1)
		assert.Equal(t, "J001", decoded[0].JourneyID)
		assert.Len(t, decoded[0].Touchpoints, 2)
	})

	t.Run("csv", func(t *testing.T) {
		cfg := testConfig(t, schema.CSVOut, "journeys.csv")
		require.NoError(t, PrintJourneys(journeys, cfg))
		lines := strings.Split(strings.TrimSpace(readOutput(t, cfg)), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "J001,Alice Johnson,1000.00,2025-03-15,2,4,200.00,Google Ads → Email Campaign", lines[1])
	})

	t.Run("table", func(t *testing.T) {
		cfg := testConfig(t, schema.TextOut, "journeys.txt")
		require.NoError(t, PrintJourneys(journeys, cfg))
		assert.Contains(t, readOutput(t, cfg), "Showing 1 journeys (revenue: 1000.00)")
	})

	t.Run("parquet", func(t *testing.T) {
		cfg := testConfig(t, schema.ParquetOut, "journeys.parquet")
		require.NoError(t, PrintJourneys(journeys, cfg))
		rows, err := parquetgo.ReadFile[parquet.JourneyRow](cfg.OutputFile)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.InDelta(t, 200.0, rows[0].TotalCost, 1e-9)
	})
}

func TestPrintJourneyDetail(t *testing.T) {
	journey := sampleJourney()

	t.Run("csv touchpoints", func(t *testing.T) {
		cfg := testConfig(t, schema.CSVOut, "detail.csv")
		require.NoError(t, PrintJourneyDetail(journey, cfg))
		lines := strings.Split(strings.TrimSpace(readOutput(t, cfg)), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "J001,1,Google Ads,2025-03-11,200.00,Click,4", lines[1])
	})

	t.Run("table", func(t *testing.T) {
		cfg := testConfig(t, schema.TextOut, "detail.txt")
		require.NoError(t, PrintJourneyDetail(journey, cfg))
		out := readOutput(t, cfg)
		assert.Contains(t, out, "Journey J001 (Alice Johnson)")
		assert.Contains(t, out, "Converted 2025-03-15 for 1000.00 after 4 days")
		assert.Contains(t, out, "Click")
	})

	t.Run("parquet unsupported", func(t *testing.T) {
		cfg := testConfig(t, schema.ParquetOut, "detail.parquet")
		assert.Error(t, PrintJourneyDetail(journey, cfg))
	})
}

func TestPrintGenerated(t *testing.T) {
	cfg := testConfig(t, schema.JSONOut, "gen.json")
	require.NoError(t, PrintGenerated(150, cfg))
	assert.JSONEq(t, `{"message": "Generated 150 sample journeys", "count": 150}`, readOutput(t, cfg))

	cfg = testConfig(t, schema.TextOut, "gen.txt")
	require.NoError(t, PrintGenerated(10, cfg))
	assert.Contains(t, readOutput(t, cfg), "Generated 10 sample journeys (store backend: sqlite)")
}
