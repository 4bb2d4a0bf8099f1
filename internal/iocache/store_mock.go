package iocache

import (
	"context"

	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetJourneyStore implements the StoreManager interface.
func (m *MockStoreManager) GetJourneyStore() contract.JourneyStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.JourneyStore)
	return store
}

// MockJourneyStore is a mock implementation of JourneyStore for testing.
type MockJourneyStore struct {
	mock.Mock
}

var _ contract.JourneyStore = &MockJourneyStore{} // Compile-time check

// ListJourneys implements the JourneyStore interface.
func (m *MockJourneyStore) ListJourneys(ctx context.Context, limit int) ([]schema.Journey, error) {
	args := m.Called(ctx, limit)
	journeys, _ := args.Get(0).([]schema.Journey)
	return journeys, args.Error(1)
}

// GetJourney implements the JourneyStore interface.
func (m *MockJourneyStore) GetJourney(ctx context.Context, journeyID string) (schema.Journey, error) {
	args := m.Called(ctx, journeyID)
	return args.Get(0).(schema.Journey), args.Error(1)
}

// ReplaceJourneys implements the JourneyStore interface.
func (m *MockJourneyStore) ReplaceJourneys(ctx context.Context, journeys []schema.Journey) error {
	args := m.Called(ctx, journeys)
	return args.Error(0)
}

// GetStatus implements the JourneyStore interface.
func (m *MockJourneyStore) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the JourneyStore interface.
func (m *MockJourneyStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
