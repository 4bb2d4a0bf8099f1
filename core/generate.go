package core

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/huangsam/attribution/schema"
)

// Channels is the fixed channel set journeys are drawn from.
var Channels = []string{
	"Google Ads", "Facebook Ads", "Instagram", "LinkedIn", "Email Campaign",
	"Organic Search", schema.DirectChannel, "YouTube", "Blog Content", "Webinar", "Referral",
}

// PaidChannels carry a cost per touchpoint; all other channels are free.
var PaidChannels = []string{"Google Ads", "Facebook Ads", "Instagram", "LinkedIn", "YouTube"}

// InteractionTypes tags what a customer did at a touchpoint.
var InteractionTypes = []string{"Click", "View", "Engagement", "Download", "Form Fill"}

var (
	organicOpeners = []string{"Organic Search", "Blog Content", "Referral"}
	closers        = []string{schema.DirectChannel, "Organic Search", "Email Campaign"}
)

var customerNames = []string{
	"Aarav Sharma", "Vivaan Patel", "Aditya Kumar", "Vihaan Singh", "Arjun Reddy",
	"Sai Krishnan", "Reyansh Mehta", "Ayaan Gupta", "Krishna Desai", "Ishaan Verma",
	"Shaurya Joshi", "Atharv Nair", "Pranav Iyer", "Dhruv Rao", "Kabir Malhotra",
	"Aadhya Sharma", "Ananya Patel", "Diya Kumar", "Sara Singh", "Ira Reddy",
	"Myra Krishnan", "Navya Mehta", "Pari Gupta", "Kiara Desai", "Anika Verma",
	"Priya Agarwal", "Neha Bansal", "Rajesh Kumar", "Suresh Menon", "Lakshmi Ramesh",
	"Meera Subramanian", "Karthik Murthy", "Divya Balakrishnan", "Vikram Chawla",
}

const (
	lookbackDays    = 90
	minValue        = 1000.0
	maxValue        = 50000.0
	maxTimeToConv   = 45
	minTouchpoints  = 2
	maxTouchpoints  = 8
	minPaidCost     = 50.0
	maxPaidCost     = 5000.0
	patternPaid     = "paid_first"
	patternOrganic  = "organic_first"
	patternMixed    = "mixed"
	journeyIDFormat = "J%03d"
)

var patterns = []string{patternPaid, patternOrganic, patternMixed}

// GenerateJourneys builds count sample journeys converting within the 90 days before now.
// The same rng seed and now always give the same journeys.
func GenerateJourneys(rng *rand.Rand, count int, now time.Time) []schema.Journey {
	end := now.UTC().Truncate(time.Second)
	start := end.AddDate(0, 0, -lookbackDays)

	journeys := make([]schema.Journey, 0, count)
	for i := range count {
		value := round2(minValue + rng.Float64()*(maxValue-minValue))
		ttc := 1 + rng.IntN(maxTimeToConv)
		conversionDate := start.AddDate(0, 0, rng.IntN(lookbackDays+1))
		n := minTouchpoints + rng.IntN(maxTouchpoints-minTouchpoints+1)

		journeys = append(journeys, schema.Journey{
			JourneyID:        fmt.Sprintf(journeyIDFormat, i+1),
			CustomerName:     pick(rng, customerNames),
			ConversionValue:  value,
			ConversionDate:   conversionDate,
			TouchpointCount:  n,
			TimeToConversion: ttc,
			Touchpoints:      generateTouchpoints(rng, n, ttc, conversionDate),
		})
	}
	return journeys
}

func generateTouchpoints(rng *rand.Rand, n, ttc int, conversionDate time.Time) []schema.Touchpoint {
	pattern := pick(rng, patterns)
	available := slices.Clone(Channels)

	touchpoints := make([]schema.Touchpoint, 0, n)
	for seq := 1; seq <= n; seq++ {
		var channel string
		switch {
		case seq == 1 && pattern == patternPaid:
			channel = pick(rng, PaidChannels)
		case seq == 1 && pattern == patternOrganic:
			channel = pick(rng, organicOpeners)
		case seq == n:
			channel = pick(rng, closers)
		default:
			channel = pick(rng, available)
		}
		if idx := slices.Index(available, channel); idx >= 0 {
			available = slices.Delete(available, idx, idx+1)
		}

		daysBefore := int(math.Floor(float64(ttc) / float64(n) * float64(n-seq)))

		var cost float64
		if slices.Contains(PaidChannels, channel) {
			cost = round2(minPaidCost + rng.Float64()*(maxPaidCost-minPaidCost))
		}

		touchpoints = append(touchpoints, schema.Touchpoint{
			Sequence:             seq,
			Channel:              channel,
			Timestamp:            conversionDate.AddDate(0, 0, -daysBefore),
			Cost:                 cost,
			InteractionType:      pick(rng, InteractionTypes),
			DaysBeforeConversion: daysBefore,
		})
	}
	return touchpoints
}

func pick(rng *rand.Rand, from []string) string {
	return from[rng.IntN(len(from))]
}
