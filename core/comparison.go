package core

import (
	"sync"

	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/schema"
)

// CompareAll runs every model over the same journeys and returns one entry per
// model in the fixed comparison order.
func CompareAll(journeys []schema.Journey) ([]schema.ModelComparison, error) {
	if len(journeys) == 0 {
		return nil, contract.ErrNoData
	}
	return computeModels(schema.AllModels, journeys)
}

// computeModels runs each model in its own goroutine. Results land in a slice
// indexed like models, so the output order never depends on scheduling.
func computeModels(models []schema.AttributionModel, journeys []schema.Journey) ([]schema.ModelComparison, error) {
	comparisons := make([]schema.ModelComparison, len(models))
	errs := make([]error, len(models))

	var wg sync.WaitGroup
	for i, model := range models {
		wg.Add(1)
		go func(i int, model schema.AttributionModel) {
			defer wg.Done()
			results, err := Compute(model, journeys)
			if err != nil {
				errs[i] = err
				return
			}
			comparisons[i] = schema.ModelComparison{
				ModelName: model.DisplayName(),
				Model:     model,
				Channels:  results,
			}
		}(i, model)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return comparisons, nil
}
