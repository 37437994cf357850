package listing

import "strings"

// FilterAll is the passthrough sentinel for the select-style filters.
const FilterAll = "all"

// Filters is the full filter selection. Zero values are normalized to the
// passthrough sentinels so an empty Filters{} matches everything.
type Filters struct {
	Status   string `json:"status"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	Search   string `json:"search"`
}

func (f Filters) normalized() Filters {
	if f.Status == "" {
		f.Status = FilterAll
	}
	if f.Category == "" {
		f.Category = FilterAll
	}
	if f.Priority == "" {
		f.Priority = FilterAll
	}
	return f
}

// ByStatus keeps items matching an "active"/"inactive" selector.
func ByStatus(items []Item, status string) []Item {
	if status == FilterAll || status == "" {
		return items
	}
	wantActive := status == "active"
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Active == wantActive {
			out = append(out, item)
		}
	}
	return out
}

// ByCategory keeps items of one category tag.
func ByCategory(items []Item, category string) []Item {
	if category == FilterAll || category == "" {
		return items
	}
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// ByPriority keeps items of one price tier.
func ByPriority(items []Item, priority string) []Item {
	if priority == FilterAll || priority == "" {
		return items
	}
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if string(item.Priority) == priority {
			out = append(out, item)
		}
	}
	return out
}

// Search keeps items whose name or description contains the query,
// case-insensitively. A blank query is a passthrough.
func Search(items []Item, query string) []Item {
	if strings.TrimSpace(query) == "" {
		return items
	}
	q := strings.ToLower(query)
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Description), q) {
			out = append(out, item)
		}
	}
	return out
}

// Apply runs the filter pipeline in its fixed order: status, category,
// priority, then text search. All stages are intersective, so the order
// only pins down determinism, not the result set.
func Apply(items []Item, f Filters) []Item {
	f = f.normalized()
	stages := []func([]Item) []Item{
		func(in []Item) []Item { return ByStatus(in, f.Status) },
		func(in []Item) []Item { return ByCategory(in, f.Category) },
		func(in []Item) []Item { return ByPriority(in, f.Priority) },
		func(in []Item) []Item { return Search(in, f.Search) },
	}
	for _, stage := range stages {
		items = stage(items)
	}
	return items
}
