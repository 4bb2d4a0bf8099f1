package core

import (
	"sort"

	"github.com/huangsam/attribution/schema"
)

// performerCount is the size of the top and bottom lists.
const performerCount = 5

// ComputeStats summarizes a journey snapshot.
func ComputeStats(journeys []schema.Journey) schema.Stats {
	if len(journeys) == 0 {
		return schema.Stats{}
	}

	var revenue, spend float64
	var touchpoints, days int
	for _, j := range journeys {
		revenue += j.ConversionValue
		touchpoints += len(j.Touchpoints)
		days += j.TimeToConversion
		spend += j.TotalCost()
	}

	n := float64(len(journeys))
	return schema.Stats{
		TotalConversions:    len(journeys),
		TotalRevenue:        round2(revenue),
		AvgTouchpoints:      round1(float64(touchpoints) / n),
		AvgTimeToConversion: round1(float64(days) / n),
		TotalMarketingSpend: round2(spend),
		OverallROAS:         round2(safeDiv(revenue, spend)),
	}
}

// ComputeChannelMetrics reports interaction based metrics per channel, ranked by
// conversion rate. Each journey's value is split evenly over its distinct channels.
func ComputeChannelMetrics(journeys []schema.Journey) []schema.ChannelMetrics {
	type tally struct {
		interactions int
		conversions  int
		revenue      float64
		spend        float64
	}
	tallies := make(map[string]*tally)
	var order []string

	for _, j := range journeys {
		for _, tp := range j.Touchpoints {
			t, ok := tallies[tp.Channel]
			if !ok {
				t = &tally{}
				tallies[tp.Channel] = t
				order = append(order, tp.Channel)
			}
			t.interactions++
			t.spend += tp.Cost
		}
		unique := j.UniqueChannels()
		for _, channel := range unique {
			t := tallies[channel]
			t.conversions++
			t.revenue += j.ConversionValue / float64(len(unique))
		}
	}

	metrics := make([]schema.ChannelMetrics, 0, len(order))
	for _, channel := range order {
		t := tallies[channel]
		metrics = append(metrics, schema.ChannelMetrics{
			Channel:           channel,
			ConversionRate:    round2(safeDiv(float64(t.conversions), float64(t.interactions)) * 100),
			CPA:               round2(safeDiv(t.spend, float64(t.conversions))),
			TotalInteractions: t.interactions,
			Conversions:       t.conversions,
			Revenue:           round2(t.revenue),
			Spend:             round2(t.spend),
		})
	}
	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].ConversionRate > metrics[j].ConversionRate
	})
	return metrics
}

// ComputeRevenueTrends groups conversions by UTC day, oldest first, with a
// running revenue total.
func ComputeRevenueTrends(journeys []schema.Journey) []schema.RevenueTrend {
	type day struct {
		conversions int
		revenue     float64
		spend       float64
	}
	days := make(map[string]*day)
	for _, j := range journeys {
		key := j.ConversionDate.UTC().Format("2006-01-02")
		d, ok := days[key]
		if !ok {
			d = &day{}
			days[key] = d
		}
		d.conversions++
		d.revenue += j.ConversionValue
		d.spend += j.TotalCost()
	}

	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	trends := make([]schema.RevenueTrend, 0, len(keys))
	var cumulative float64
	for _, k := range keys {
		d := days[k]
		cumulative += d.revenue
		trends = append(trends, schema.RevenueTrend{
			Date:              k,
			Revenue:           round2(d.revenue),
			Conversions:       d.conversions,
			Spend:             round2(d.spend),
			CumulativeRevenue: round2(cumulative),
			ROAS:              round2(safeDiv(d.revenue, d.spend)),
		})
	}
	return trends
}

// ComputeChannelSynergy counts, for every ordered pair of channels, the journeys
// in which both appear. A channel paired with itself counts its own journeys.
func ComputeChannelSynergy(journeys []schema.Journey) []schema.ChannelSynergy {
	counts := make(map[string]map[string]int)
	var rows []string
	cols := make(map[string][]string)

	for _, j := range journeys {
		channels := j.UniqueChannels()
		for _, ch1 := range channels {
			inner, ok := counts[ch1]
			if !ok {
				inner = make(map[string]int)
				counts[ch1] = inner
				rows = append(rows, ch1)
			}
			for _, ch2 := range channels {
				if _, seen := inner[ch2]; !seen {
					cols[ch1] = append(cols[ch1], ch2)
				}
				inner[ch2]++
			}
		}
	}

	synergy := make([]schema.ChannelSynergy, 0)
	for _, ch1 := range rows {
		for _, ch2 := range cols[ch1] {
			synergy = append(synergy, schema.ChannelSynergy{
				Channel1:      ch1,
				Channel2:      ch2,
				CoOccurrences: counts[ch1][ch2],
			})
		}
	}
	return synergy
}

// ComputeFunnel groups journeys by how many touchpoints they took.
func ComputeFunnel(journeys []schema.Journey) []schema.FunnelStage {
	stages := make(map[int]*schema.FunnelStage)
	for _, j := range journeys {
		count := len(j.Touchpoints)
		stage, ok := stages[count]
		if !ok {
			stage = &schema.FunnelStage{TouchpointCount: count}
			stages[count] = stage
		}
		stage.Journeys++
		stage.Revenue += j.ConversionValue
	}

	counts := make([]int, 0, len(stages))
	for c := range stages {
		counts = append(counts, c)
	}
	sort.Ints(counts)

	funnel := make([]schema.FunnelStage, 0, len(counts))
	for _, c := range counts {
		stage := stages[c]
		funnel = append(funnel, schema.FunnelStage{
			TouchpointCount:    c,
			Journeys:           stage.Journeys,
			Revenue:            round2(stage.Revenue),
			AvgConversionValue: round2(stage.Revenue / float64(stage.Journeys)),
		})
	}
	return funnel
}

// ComputeTopPerformers ranks channels by linear attribution and returns the
// five best and the five worst. With fewer than ten channels the lists overlap.
func ComputeTopPerformers(journeys []schema.Journey) (schema.TopPerformers, error) {
	performers := schema.TopPerformers{Top: []schema.Performer{}, Bottom: []schema.Performer{}}
	if len(journeys) == 0 {
		return performers, nil
	}
	results, err := Compute(schema.LinearModel, journeys)
	if err != nil {
		return performers, err
	}

	n := min(performerCount, len(results))
	for _, r := range results[:n] {
		performers.Top = append(performers.Top, toPerformer(r))
	}
	for _, r := range results[len(results)-n:] {
		performers.Bottom = append(performers.Bottom, toPerformer(r))
	}
	return performers, nil
}

func toPerformer(r schema.AttributionResult) schema.Performer {
	return schema.Performer{Channel: r.Channel, Revenue: r.AttributedRevenue, ROAS: r.ROAS}
}
