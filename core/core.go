// Package core has core logic for attribution, comparison and reporting.
package core

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/internal/outwriter"
	"github.com/huangsam/attribution/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// errStoreNotReady is returned when the journey store was never initialized.
var errStoreNotReady = errors.New("journey store is not initialized")

// LoadJourneys reads one snapshot of journeys from the store.
func LoadJourneys(ctx context.Context, mgr contract.StoreManager) ([]schema.Journey, error) {
	store := journeyStore(mgr)
	if store == nil {
		return nil, errStoreNotReady
	}
	journeys, err := store.ListJourneys(ctx, schema.MaxJourneys)
	if err != nil {
		return nil, fmt.Errorf("failed to load journeys: %w", err)
	}
	return journeys, nil
}

func journeyStore(mgr contract.StoreManager) contract.JourneyStore {
	if mgr == nil {
		return nil
	}
	return mgr.GetJourneyStore()
}

// GetAttributionResults computes the configured model and trims it to the result limit.
func GetAttributionResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) ([]schema.AttributionResult, time.Duration, error) {
	start := time.Now()
	journeys, err := LoadJourneys(ctx, mgr)
	if err != nil {
		return nil, 0, err
	}
	results, err := Compute(cfg.Model, journeys)
	if err != nil {
		return nil, 0, err
	}
	return limitResults(results, cfg.ResultLimit), time.Since(start), nil
}

// GetComparisonResults runs every model over the same snapshot.
func GetComparisonResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) ([]schema.ModelComparison, time.Duration, error) {
	start := time.Now()
	journeys, err := LoadJourneys(ctx, mgr)
	if err != nil {
		return nil, 0, err
	}
	comparisons, err := CompareAll(journeys)
	if err != nil {
		return nil, 0, err
	}
	return limitComparisons(comparisons, cfg.ResultLimit), time.Since(start), nil
}

// GetVarianceResults measures how much the models disagree per channel.
func GetVarianceResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) ([]schema.VarianceRecord, time.Duration, error) {
	start := time.Now()
	journeys, err := LoadJourneys(ctx, mgr)
	if err != nil {
		return nil, 0, err
	}
	records, err := AnalyzeVariance(journeys)
	if err != nil {
		return nil, 0, err
	}
	if cfg.ResultLimit > 0 && len(records) > cfg.ResultLimit {
		records = records[:cfg.ResultLimit]
	}
	return records, time.Since(start), nil
}

// ExecuteModel prints the results of a single attribution model.
func ExecuteModel(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	results, duration, err := GetAttributionResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintAttributionResults(results, cfg, duration)
}

// ExecuteCompare prints every model side by side.
func ExecuteCompare(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	comparisons, duration, err := GetComparisonResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintComparisonResults(comparisons, cfg, duration)
}

// ExecuteVariance prints the cross-model variance per channel.
func ExecuteVariance(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	records, duration, err := GetVarianceResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintVarianceResults(records, cfg, duration)
}

// ModelDefinitions lists every model with its credit rule.
func ModelDefinitions() []schema.ModelDefinition {
	defs := make([]schema.ModelDefinition, 0, len(schema.AllModels))
	for _, m := range schema.AllModels {
		defs = append(defs, schema.ModelDefinition{Model: m, Name: m.DisplayName(), Rule: schema.ModelRules[m]})
	}
	return defs
}

// ExecuteModelDefinitions prints the model catalogue. No journeys are read.
func ExecuteModelDefinitions(_ context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	return outwriter.PrintModelDefinitions(ModelDefinitions(), cfg)
}

// ExecuteStats prints the overall numbers of the stored journeys.
func ExecuteStats(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	journeys, err := LoadJourneys(ctx, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintStats(ComputeStats(journeys), cfg)
}

// ExecuteChannelMetrics prints conversion rate and CPA per channel.
func ExecuteChannelMetrics(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	journeys, err := LoadJourneys(ctx, mgr)
	if err != nil {
		return err
	}
	metrics := ComputeChannelMetrics(journeys)
	if cfg.ResultLimit > 0 && len(metrics) > cfg.ResultLimit {
		metrics = metrics[:cfg.ResultLimit]
	}
	return outwriter.PrintChannelMetrics(metrics, cfg)
}

// ExecuteRevenueTrends prints revenue per conversion day.
func ExecuteRevenueTrends(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	journeys, err := LoadJourneys(ctx, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintRevenueTrends(ComputeRevenueTrends(journeys), cfg)
}

// ExecuteChannelSynergy prints how often channels share a journey.
func ExecuteChannelSynergy(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	journeys, err := LoadJourneys(ctx, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintChannelSynergy(ComputeChannelSynergy(journeys), cfg)
}

// ExecuteFunnel prints journeys grouped by touchpoint count.
func ExecuteFunnel(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	journeys, err := LoadJourneys(ctx, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintFunnel(ComputeFunnel(journeys), cfg)
}

// ExecuteTopPerformers prints the best and worst channels under linear attribution.
func ExecuteTopPerformers(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	journeys, err := LoadJourneys(ctx, mgr)
	if err != nil {
		return err
	}
	performers, err := ComputeTopPerformers(journeys)
	if err != nil {
		return err
	}
	return outwriter.PrintTopPerformers(performers, cfg)
}

// ExecuteListJourneys prints a summary row per stored journey.
func ExecuteListJourneys(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	store := journeyStore(mgr)
	if store == nil {
		return errStoreNotReady
	}
	journeys, err := store.ListJourneys(ctx, cfg.ResultLimit)
	if err != nil {
		return fmt.Errorf("failed to list journeys: %w", err)
	}
	return outwriter.PrintJourneys(journeys, cfg)
}

// ExecuteShowJourney prints one journey with its touchpoints.
func ExecuteShowJourney(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	store := journeyStore(mgr)
	if store == nil {
		return errStoreNotReady
	}
	journey, err := store.GetJourney(ctx, cfg.JourneyID)
	if err != nil {
		return err
	}
	return outwriter.PrintJourneyDetail(journey, cfg)
}

// GenerateAndStore replaces the stored journeys with freshly generated samples.
// A zero seed draws one from the clock.
func GenerateAndStore(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (int, error) {
	store := journeyStore(mgr)
	if store == nil {
		return 0, errStoreNotReady
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	journeys := GenerateJourneys(rng, cfg.JourneyCount, time.Now())
	if err := store.ReplaceJourneys(ctx, journeys); err != nil {
		return 0, fmt.Errorf("failed to store journeys: %w", err)
	}
	return len(journeys), nil
}

// ExecuteGenerate generates sample journeys and reports how many were stored.
func ExecuteGenerate(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	count, err := GenerateAndStore(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintGenerated(count, cfg)
}
