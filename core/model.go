package core

import (
	"fmt"
	"math"

	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/schema"
)

// halfLifeDays is the time decay half-life.
const halfLifeDays = 7.0

// Position shares for the U-shaped and W-shaped models.
const (
	uShapedEndShare    = 0.40
	uShapedMiddleShare = 0.20
	wShapedAnchorShare = 0.30
	wShapedOtherShare  = 0.10
)

// winnerFunc picks the index of the touchpoint that takes all the credit.
type winnerFunc func(tps []schema.Touchpoint) int

// weightFunc returns one credit share per touchpoint; the shares sum to 1.
type weightFunc func(tps []schema.Touchpoint) []float64

// modelRule is either a winner-take-all rule or a weighted rule.
type modelRule struct {
	winner  winnerFunc
	weights weightFunc
}

// modelRules is the dispatch table for every supported model.
var modelRules = map[schema.AttributionModel]modelRule{
	schema.FirstTouchModel:    {winner: firstTouchWinner},
	schema.LastTouchModel:     {winner: lastTouchWinner},
	schema.LastNonDirectModel: {winner: lastNonDirectWinner},
	schema.LinearModel:        {weights: linearWeights},
	schema.TimeDecayModel:     {weights: timeDecayWeights},
	schema.PositionBasedModel: {weights: positionBasedWeights},
	schema.WShapedModel:       {weights: wShapedWeights},
}

// ComputeByName resolves a user supplied model name and runs it.
func ComputeByName(name string, journeys []schema.Journey) ([]schema.AttributionResult, error) {
	if len(journeys) == 0 {
		return nil, contract.ErrNoData
	}
	model, err := contract.NormalizeModel(name)
	if err != nil {
		return nil, err
	}
	return Compute(model, journeys)
}

// Compute attributes the conversion value of every journey to channels using
// the given model and returns the ranked per-channel results.
// The journeys are only read.
func Compute(model schema.AttributionModel, journeys []schema.Journey) ([]schema.AttributionResult, error) {
	if len(journeys) == 0 {
		return nil, contract.ErrNoData
	}
	rule, ok := modelRules[model]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", contract.ErrInvalidModel, model)
	}

	book := newChannelBook()
	for _, j := range journeys {
		if len(j.Touchpoints) == 0 {
			continue
		}
		if rule.winner != nil {
			creditWinner(book, j, rule.winner(j.Touchpoints))
		} else {
			creditWeighted(book, j, rule.weights(j.Touchpoints))
		}
	}
	return formatResults(book, schema.TotalRevenue(journeys)), nil
}

// creditWinner gives the whole journey value to the channel at index winner.
// Touchpoint, cost and position tallies cover every touchpoint of that channel.
func creditWinner(book *channelBook, j schema.Journey, winner int) {
	channel := j.Touchpoints[winner].Channel
	acc := book.get(channel)
	acc.revenue += j.ConversionValue
	acc.conversions++
	for _, tp := range j.Touchpoints {
		if tp.Channel != channel {
			continue
		}
		acc.touchpoints++
		acc.cost += tp.Cost
		acc.positions = append(acc.positions, tp.Sequence)
	}
}

// creditWeighted gives each touchpoint its share of the journey value.
// A channel counts one conversion per journey no matter how often it appears.
func creditWeighted(book *channelBook, j schema.Journey, weights []float64) {
	influenced := make(map[string]struct{}, len(j.Touchpoints))
	for i, tp := range j.Touchpoints {
		acc := book.get(tp.Channel)
		acc.revenue += j.ConversionValue * weights[i]
		acc.touchpoints++
		acc.cost += tp.Cost
		acc.positions = append(acc.positions, tp.Sequence)
		if _, ok := influenced[tp.Channel]; !ok {
			influenced[tp.Channel] = struct{}{}
			acc.conversions++
		}
	}
}

func firstTouchWinner(_ []schema.Touchpoint) int {
	return 0
}

func lastTouchWinner(tps []schema.Touchpoint) int {
	return len(tps) - 1
}

// lastNonDirectWinner walks backwards to the last touchpoint that is not direct
// traffic, falling back to the last touchpoint when every touch is direct.
func lastNonDirectWinner(tps []schema.Touchpoint) int {
	for i := len(tps) - 1; i >= 0; i-- {
		if tps[i].Channel != schema.DirectChannel {
			return i
		}
	}
	return len(tps) - 1
}

func linearWeights(tps []schema.Touchpoint) []float64 {
	n := len(tps)
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1 / float64(n)
	}
	return weights
}

// timeDecayWeights halves a touchpoint's weight for every week before conversion.
func timeDecayWeights(tps []schema.Touchpoint) []float64 {
	weights := make([]float64, len(tps))
	var total float64
	for i, tp := range tps {
		weights[i] = math.Pow(2, -float64(tp.DaysBeforeConversion)/halfLifeDays)
		total += weights[i]
	}
	if total == 0 {
		return linearWeights(tps)
	}
	for i := range weights {
		weights[i] /= total
	}
	return weights
}

// positionBasedWeights gives 40% to each end and spreads 20% over the middle.
// Two touchpoints have no middle and split evenly.
func positionBasedWeights(tps []schema.Touchpoint) []float64 {
	n := len(tps)
	switch n {
	case 1:
		return []float64{1}
	case 2:
		return []float64{0.5, 0.5}
	}
	weights := make([]float64, n)
	middle := uShapedMiddleShare / float64(n-2)
	for i := range weights {
		weights[i] = middle
	}
	weights[0] = uShapedEndShare
	weights[n-1] = uShapedEndShare
	return weights
}

// wShapedWeights gives 30% to the first, middle (index n/2) and last touchpoints
// and spreads 10% over the rest. With exactly three touchpoints there is no rest,
// so the three anchors split the value evenly.
func wShapedWeights(tps []schema.Touchpoint) []float64 {
	n := len(tps)
	switch n {
	case 1:
		return []float64{1}
	case 2:
		return []float64{0.5, 0.5}
	case 3:
		third := 1.0 / 3
		return []float64{third, third, third}
	}
	weights := make([]float64, n)
	other := wShapedOtherShare / float64(n-3)
	for i := range weights {
		weights[i] = other
	}
	weights[0] = wShapedAnchorShare
	weights[n/2] = wShapedAnchorShare
	weights[n-1] = wShapedAnchorShare
	return weights
}
