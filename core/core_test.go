package core

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/internal/iocache"
	"github.com/huangsam/attribution/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mockManager(journeys []schema.Journey, err error) (*iocache.MockStoreManager, *iocache.MockJourneyStore) {
	store := &iocache.MockJourneyStore{}
	store.On("ListJourneys", mock.Anything, mock.AnythingOfType("int")).Return(journeys, err)
	mgr := &iocache.MockStoreManager{}
	mgr.On("GetJourneyStore").Return(store)
	return mgr, store
}

func testConfig() *contract.Config {
	return &contract.Config{
		Model:        schema.LinearModel,
		ResultLimit:  contract.DefaultResultLimit,
		Precision:    contract.DefaultPrecision,
		Output:       schema.JSONOut,
		JourneyCount: 10,
		Seed:         99,
	}
}

// TestGetAttributionResults covers the store to engine path.
func TestGetAttributionResults(t *testing.T) {
	ctx := context.Background()

	t.Run("limits results", func(t *testing.T) {
		mgr, store := mockManager(reportJourneys(), nil)
		cfg := testConfig()
		cfg.ResultLimit = 2

		results, _, err := GetAttributionResults(ctx, cfg, mgr)
		require.NoError(t, err)
		assert.Len(t, results, 2)
		store.AssertCalled(t, "ListJourneys", mock.Anything, schema.MaxJourneys)
	})

	t.Run("empty store", func(t *testing.T) {
		mgr, _ := mockManager([]schema.Journey{}, nil)
		_, _, err := GetAttributionResults(ctx, testConfig(), mgr)
		assert.ErrorIs(t, err, contract.ErrNoData)
	})

	t.Run("store failure", func(t *testing.T) {
		mgr, _ := mockManager(nil, errors.New("connection refused"))
		_, _, err := GetAttributionResults(ctx, testConfig(), mgr)
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("no store", func(t *testing.T) {
		mgr := &iocache.MockStoreManager{}
		mgr.On("GetJourneyStore").Return(nil)
		_, _, err := GetAttributionResults(ctx, testConfig(), mgr)
		assert.Error(t, err)
	})
}

// TestGetComparisonAndVarianceResults checks the multi model paths.
func TestGetComparisonAndVarianceResults(t *testing.T) {
	ctx := context.Background()
	mgr, _ := mockManager(reportJourneys(), nil)

	comparisons, _, err := GetComparisonResults(ctx, testConfig(), mgr)
	require.NoError(t, err)
	assert.Len(t, comparisons, len(schema.AllModels))

	records, _, err := GetVarianceResults(ctx, testConfig(), mgr)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	emptyMgr, _ := mockManager(nil, nil)
	records, _, err = GetVarianceResults(ctx, testConfig(), emptyMgr)
	require.NoError(t, err)
	assert.Empty(t, records)
}

// TestGenerateAndStore checks that generated journeys replace the store contents.
func TestGenerateAndStore(t *testing.T) {
	store := &iocache.MockJourneyStore{}
	store.On("ReplaceJourneys", mock.Anything, mock.MatchedBy(func(js []schema.Journey) bool {
		return len(js) == 10 && js[0].JourneyID == "J001"
	})).Return(nil)
	mgr := &iocache.MockStoreManager{}
	mgr.On("GetJourneyStore").Return(store)

	count, err := GenerateAndStore(context.Background(), testConfig(), mgr)
	require.NoError(t, err)
	assert.Equal(t, 10, count)
	store.AssertExpectations(t)
}

// TestExecuteModelWritesJSON runs the command path into a file.
func TestExecuteModelWritesJSON(t *testing.T) {
	mgr, _ := mockManager(reportJourneys(), nil)
	cfg := testConfig()
	cfg.OutputFile = filepath.Join(t.TempDir(), "linear.json")

	require.NoError(t, ExecuteModel(context.Background(), cfg, mgr))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, float64(1), rows[0]["rank"])
	assert.Contains(t, rows[0], "attributed_revenue")
	assert.Contains(t, rows[0], "label")
}

// TestExecuteShowJourney checks the not found path.
func TestExecuteShowJourney(t *testing.T) {
	store := &iocache.MockJourneyStore{}
	store.On("GetJourney", mock.Anything, "J404").Return(schema.Journey{}, contract.ErrJourneyNotFound)
	mgr := &iocache.MockStoreManager{}
	mgr.On("GetJourneyStore").Return(store)

	cfg := testConfig()
	cfg.JourneyID = "J404"
	err := ExecuteShowJourney(context.Background(), cfg, mgr)
	assert.ErrorIs(t, err, contract.ErrJourneyNotFound)
}

func TestModelDefinitions(t *testing.T) {
	defs := ModelDefinitions()
	require.Len(t, defs, len(schema.AllModels))
	for i, d := range defs {
		assert.Equal(t, schema.AllModels[i], d.Model)
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Rule, "model %s has no rule", d.Model)
	}
	assert.Equal(t, "U-Shaped", defs[5].Name)
}
