// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/attribution/schema"
)

// JourneyReader is the read side of the journey store.
// The engine only ever needs this half.
type JourneyReader interface {
	// ListJourneys returns up to limit journeys ordered by id, each with its
	// touchpoints ordered by sequence. A limit <= 0 means schema.MaxJourneys.
	ListJourneys(ctx context.Context, limit int) ([]schema.Journey, error)

	// GetJourney returns one journey or ErrJourneyNotFound.
	GetJourney(ctx context.Context, journeyID string) (schema.Journey, error)
}

// JourneyStore defines the interface for journey storage.
// This allows mocking the store for testing.
type JourneyStore interface {
	JourneyReader

	// ReplaceJourneys atomically swaps the stored journeys for the given set.
	ReplaceJourneys(ctx context.Context, journeys []schema.Journey) error

	// GetStatus returns status information about the store.
	GetStatus() (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// StoreManager defines the interface for managing the journey store.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetJourneyStore() JourneyStore
}
