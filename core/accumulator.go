package core

// channelAccumulator collects the running totals of one channel during a model run.
type channelAccumulator struct {
	revenue     float64
	touchpoints int
	cost        float64
	conversions int
	positions   []int
}

// channelBook keeps accumulators keyed by channel and remembers first-seen order,
// which is the tie-break order once results are ranked.
type channelBook struct {
	byChannel map[string]*channelAccumulator
	order     []string
}

func newChannelBook() *channelBook {
	return &channelBook{byChannel: make(map[string]*channelAccumulator)}
}

// get returns the accumulator for channel, creating it on first use.
func (b *channelBook) get(channel string) *channelAccumulator {
	acc, ok := b.byChannel[channel]
	if !ok {
		acc = &channelAccumulator{}
		b.byChannel[channel] = acc
		b.order = append(b.order, channel)
	}
	return acc
}

// len returns the number of distinct channels seen.
func (b *channelBook) len() int {
	return len(b.order)
}
