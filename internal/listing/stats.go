package listing

import "math"

// Stats is the aggregate report over a listing collection.
type Stats struct {
	Total         int              `json:"total"`
	Active        int              `json:"active"`
	Inactive      int              `json:"inactive"`
	TotalPrice    float64          `json:"total_price"`
	TotalCapacity int              `json:"total_capacity"`
	ByCategory    map[string]int   `json:"by_category"`
	ByPriority    map[Priority]int `json:"by_priority"`
}

// ComputeStats folds the collection into counters in a single pass. Only
// tags actually present in the input appear in the breakdown maps.
func ComputeStats(items []Item) Stats {
	stats := Stats{
		ByCategory: make(map[string]int),
		ByPriority: make(map[Priority]int),
	}
	for _, item := range items {
		stats.Total++
		if item.Active {
			stats.Active++
		} else {
			stats.Inactive++
		}
		stats.TotalPrice += item.Price
		stats.TotalCapacity += item.Capacity
		stats.ByCategory[item.Category]++
		stats.ByPriority[item.Priority]++
	}
	return stats
}

// AvgPrice is the rounded mean nightly price, zero for an empty collection.
func (s Stats) AvgPrice() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(s.TotalPrice / float64(s.Total)))
}
