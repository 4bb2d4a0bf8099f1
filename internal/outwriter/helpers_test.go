package outwriter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/schema"
	"github.com/stretchr/testify/require"
)

var testConversion = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

// testConfig returns a config writing to a file inside a temp dir.
func testConfig(t *testing.T, output schema.OutputMode, name string) *contract.Config {
	t.Helper()
	return &contract.Config{
		Model:        schema.LinearModel,
		Precision:    2,
		Output:       output,
		OutputFile:   filepath.Join(t.TempDir(), name),
		Width:        120,
		StoreBackend: schema.SQLiteBackend,
	}
}

func readOutput(t *testing.T, cfg *contract.Config) string {
	t.Helper()
	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	return string(data)
}

func sampleResults() []schema.AttributionResult {
	return []schema.AttributionResult{
		{Channel: "Google Ads", AttributedRevenue: 600, AttributionPercentage: 60, TouchpointCount: 3, Cost: 200, ROAS: 3, ConversionsInfluenced: 2, AvgPosition: 1.5},
		{Channel: "Email Campaign", AttributedRevenue: 400, AttributionPercentage: 40, TouchpointCount: 2, ConversionsInfluenced: 2, AvgPosition: 2},
	}
}

func sampleJourney() schema.Journey {
	return schema.Journey{
		JourneyID:        "J001",
		CustomerName:     "Alice Johnson",
		ConversionValue:  1000,
		ConversionDate:   testConversion,
		TouchpointCount:  2,
		TimeToConversion: 4,
		Touchpoints: []schema.Touchpoint{
			{Sequence: 1, Channel: "Google Ads", Timestamp: testConversion.AddDate(0, 0, -4), Cost: 200, InteractionType: "Click", DaysBeforeConversion: 4},
			{Sequence: 2, Channel: "Email Campaign", Timestamp: testConversion, InteractionType: "Open"},
		},
	}
}
