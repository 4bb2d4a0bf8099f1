package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/huangsam/attribution/core"
	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/schema"
)

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Attribution API"})
}

// handleGenerateData replaces the stored journeys with fresh samples.
// Optional query parameters: count (1..1000) and seed.
func (s *Server) handleGenerateData(w http.ResponseWriter, r *http.Request) {
	cfg := s.cfg.Clone()
	if cfg.JourneyCount <= 0 {
		cfg.JourneyCount = contract.DefaultJourneyCount
	}
	if v := r.URL.Query().Get("count"); v != "" {
		count, err := strconv.Atoi(v)
		if err != nil || count < 1 || count > schema.MaxJourneys {
			writeDetail(w, http.StatusBadRequest, fmt.Sprintf("count must be between 1 and %d", schema.MaxJourneys))
			return
		}
		cfg.JourneyCount = count
	}
	if v := r.URL.Query().Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, "seed must be an integer")
			return
		}
		cfg.Seed = seed
	}

	count, err := core.GenerateAndStore(r.Context(), cfg, s.mgr)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Generated %d sample journeys", count),
		"count":   count,
	})
}

func (s *Server) handleListJourneys(w http.ResponseWriter, r *http.Request) {
	journeys, err := core.LoadJourneys(r.Context(), s.mgr)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(journeys))
}

func (s *Server) handleGetJourney(w http.ResponseWriter, r *http.Request) {
	if s.mgr == nil || s.mgr.GetJourneyStore() == nil {
		s.writeError(w, r, fmt.Errorf("journey store is not initialized"))
		return
	}
	journey, err := s.mgr.GetJourneyStore().GetJourney(r.Context(), chi.URLParam(r, "journeyID"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, journey)
}

// handleAttribution runs one model. Missing data is reported before an unknown model.
func (s *Server) handleAttribution(w http.ResponseWriter, r *http.Request) {
	journeys, err := core.LoadJourneys(r.Context(), s.mgr)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	name := chi.URLParam(r, "model")
	results, err := core.ComputeByName(name, journeys)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if model, err := contract.NormalizeModel(name); err == nil {
		s.metrics.countComputation(string(model))
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleCompareAll(w http.ResponseWriter, r *http.Request) {
	journeys, err := core.LoadJourneys(r.Context(), s.mgr)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	comparisons, err := core.CompareAll(journeys)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	for _, cmp := range comparisons {
		s.metrics.countComputation(string(cmp.Model))
	}
	writeJSON(w, http.StatusOK, comparisons)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	journeys, err := core.LoadJourneys(r.Context(), s.mgr)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, core.ComputeStats(journeys))
}

func (s *Server) handleAdvancedMetrics(w http.ResponseWriter, r *http.Request) {
	journeys, err := core.LoadJourneys(r.Context(), s.mgr)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(core.ComputeChannelMetrics(journeys)))
}

func (s *Server) handleRevenueTrends(w http.ResponseWriter, r *http.Request) {
	journeys, err := core.LoadJourneys(r.Context(), s.mgr)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(core.ComputeRevenueTrends(journeys)))
}

func (s *Server) handleChannelSynergy(w http.ResponseWriter, r *http.Request) {
	journeys, err := core.LoadJourneys(r.Context(), s.mgr)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(core.ComputeChannelSynergy(journeys)))
}

func (s *Server) handleFunnel(w http.ResponseWriter, r *http.Request) {
	journeys, err := core.LoadJourneys(r.Context(), s.mgr)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(core.ComputeFunnel(journeys)))
}

func (s *Server) handleTopPerformers(w http.ResponseWriter, r *http.Request) {
	journeys, err := core.LoadJourneys(r.Context(), s.mgr)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	performers, err := core.ComputeTopPerformers(journeys)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, performers)
}

func (s *Server) handleVariance(w http.ResponseWriter, r *http.Request) {
	journeys, err := core.LoadJourneys(r.Context(), s.mgr)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	records, err := core.AnalyzeVariance(journeys)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// orEmpty keeps empty collections encoded as [] instead of null.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
