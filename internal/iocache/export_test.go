package iocache

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteJourneyExport(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	mgr := &JourneyStoreManager{journeys: store}
	out := filepath.Join(t.TempDir(), "export")

	t.Run("requires output file", func(t *testing.T) {
		err := ExecuteJourneyExport(ctx, mgr, "")
		assert.ErrorContains(t, err, "--output-file")
	})

	t.Run("no data", func(t *testing.T) {
		err := ExecuteJourneyExport(ctx, mgr, out)
		assert.ErrorIs(t, err, contract.ErrNoData)
	})

	t.Run("writes both files", func(t *testing.T) {
		require.NoError(t, store.ReplaceJourneys(ctx, sampleJourneys()))
		require.NoError(t, ExecuteJourneyExport(ctx, mgr, out))

		for _, suffix := range []string{".journeys.parquet", ".touchpoints.parquet"} {
			info, err := os.Stat(out + suffix)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		}
	})

	t.Run("uninitialized store", func(t *testing.T) {
		mock := &MockStoreManager{}
		mock.On("GetJourneyStore").Return(nil)
		err := ExecuteJourneyExport(ctx, mock, out)
		assert.ErrorContains(t, err, "not initialized")
	})
}

func TestMockJourneyStoreSatisfiesContract(t *testing.T) {
	store := &MockJourneyStore{}
	store.On("GetStatus").Return(schema.StoreStatus{Backend: "sqlite"}, nil)
	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Backend)
	store.AssertExpectations(t)
}
