package iocache

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/schema"
)

// MemoryStore keeps journeys in process memory. It backs the none backend,
// so data lives only as long as the process.
type MemoryStore struct {
	mu       sync.RWMutex
	journeys []schema.Journey
}

var _ contract.JourneyStore = &MemoryStore{} // Compile-time check

// NewMemoryStore returns an empty in-memory journey store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// ListJourneys returns up to limit journeys ordered by id.
func (ms *MemoryStore) ListJourneys(_ context.Context, limit int) ([]schema.Journey, error) {
	if limit <= 0 || limit > schema.MaxJourneys {
		limit = schema.MaxJourneys
	}
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	n := min(limit, len(ms.journeys))
	out := make([]schema.Journey, n)
	for i := range n {
		out[i] = cloneJourney(ms.journeys[i])
	}
	return out, nil
}

// GetJourney returns one journey by id.
func (ms *MemoryStore) GetJourney(_ context.Context, journeyID string) (schema.Journey, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	for _, j := range ms.journeys {
		if j.JourneyID == journeyID {
			return cloneJourney(j), nil
		}
	}
	return schema.Journey{}, fmt.Errorf("%w: %s", contract.ErrJourneyNotFound, journeyID)
}

// ReplaceJourneys swaps the stored journeys for a copy of the given set.
func (ms *MemoryStore) ReplaceJourneys(_ context.Context, journeys []schema.Journey) error {
	next := make([]schema.Journey, len(journeys))
	for i, j := range journeys {
		next[i] = cloneJourney(j)
	}
	slices.SortStableFunc(next, func(a, b schema.Journey) int {
		return strings.Compare(a.JourneyID, b.JourneyID)
	})

	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.journeys = next
	return nil
}

// GetStatus returns status information about the in-memory store.
func (ms *MemoryStore) GetStatus() (schema.StoreStatus, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	status := schema.StoreStatus{
		Backend:       string(schema.NoneBackend),
		Connected:     true,
		TotalJourneys: len(ms.journeys),
	}
	for i, j := range ms.journeys {
		status.TotalTouchpoints += len(j.Touchpoints)
		if i == 0 || j.ConversionDate.Before(status.OldestConversion) {
			status.OldestConversion = j.ConversionDate
		}
		if i == 0 || j.ConversionDate.After(status.LatestConversion) {
			status.LatestConversion = j.ConversionDate
		}
	}
	return status, nil
}

// Close drops the stored journeys.
func (ms *MemoryStore) Close() error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.journeys = nil
	return nil
}

func cloneJourney(j schema.Journey) schema.Journey {
	j.Touchpoints = slices.Clone(j.Touchpoints)
	if j.Touchpoints == nil {
		j.Touchpoints = []schema.Touchpoint{}
	}
	return j
}
