package listings

import "github.com/criscode097/vacarent/internal/listing"

// StatsResponse flattens the aggregate plus the derived average price.
type StatsResponse struct {
	listing.Stats
	AvgPrice int `json:"avg_price"`
}

func toStatsResponse(s listing.Stats) StatsResponse {
	return StatsResponse{Stats: s, AvgPrice: s.AvgPrice()}
}

type PriorityOption struct {
	Value listing.Priority `json:"value"`
	Label string           `json:"label"`
}

// PriorityOptions feeds the priority selector, lowest tier first.
func PriorityOptions() []PriorityOption {
	tiers := []listing.Priority{listing.PriorityLow, listing.PriorityMedium, listing.PriorityHigh}
	opts := make([]PriorityOption, 0, len(tiers))
	for _, p := range tiers {
		opts = append(opts, PriorityOption{Value: p, Label: listing.PriorityLabels[p]})
	}
	return opts
}
