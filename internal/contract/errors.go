package contract

import "errors"

// Sentinel errors shared by the engine, the store and the surfaces.
var (
	// ErrInvalidModel is returned for a model name that is not recognized.
	ErrInvalidModel = errors.New("invalid model")

	// ErrNoData is returned when an attribution is requested over zero journeys.
	ErrNoData = errors.New("no journeys found, generate sample data first")

	// ErrJourneyNotFound is returned when a single journey lookup misses.
	ErrJourneyNotFound = errors.New("journey not found")
)
