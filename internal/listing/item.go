package listing

import "time"

// Priority is the nightly-price tier of a listing.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// PriorityLabels maps tiers to their display names.
var PriorityLabels = map[Priority]string{
	PriorityLow:    "Economic",
	PriorityMedium: "Standard",
	PriorityHigh:   "Premium",
}

// Item is a flat listing record. Unlike the entity catalog there is no
// variant payload; the category is just a tag and every operation on items
// produces a new value instead of mutating in place.
type Item struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Active      bool     `json:"active"`
	Priority    Priority `json:"priority"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

// Draft carries the fields a caller supplies when creating an item.
type Draft struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Priority    Priority `json:"priority"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
}

// Changes is a partial update; nil fields are left untouched.
type Changes struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Capacity    *int      `json:"capacity,omitempty"`
	Active      *bool     `json:"active,omitempty"`
}

func dateStamp() string {
	return time.Now().Format("2006-01-02")
}

// NewItem builds a record from a draft, filling defaults for anything left
// blank: active listing, medium tier, apartment category, capacity 1.
func NewItem(d Draft) Item {
	item := Item{
		ID:          time.Now().UnixMilli(),
		Name:        d.Name,
		Description: d.Description,
		Active:      true,
		Priority:    d.Priority,
		Category:    d.Category,
		Price:       d.Price,
		Capacity:    d.Capacity,
		CreatedAt:   dateStamp(),
	}
	if item.Priority == "" {
		item.Priority = PriorityMedium
	}
	if item.Category == "" {
		item.Category = "apartment"
	}
	if item.Price < 0 {
		item.Price = 0
	}
	if item.Capacity < 1 {
		item.Capacity = 1
	}
	return item
}

// Add returns a new slice with the item appended. The input is not touched.
func Add(items []Item, item Item) []Item {
	out := make([]Item, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

// Update applies a partial change to the item with the given id and stamps
// its update date. Unknown ids leave the collection unchanged.
func Update(items []Item, id int64, ch Changes) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		if item.ID == id {
			if ch.Name != nil {
				item.Name = *ch.Name
			}
			if ch.Description != nil {
				item.Description = *ch.Description
			}
			if ch.Category != nil {
				item.Category = *ch.Category
			}
			if ch.Priority != nil {
				item.Priority = *ch.Priority
			}
			if ch.Price != nil {
				item.Price = *ch.Price
			}
			if ch.Capacity != nil {
				item.Capacity = *ch.Capacity
			}
			if ch.Active != nil {
				item.Active = *ch.Active
			}
			item.UpdatedAt = dateStamp()
		}
		out[i] = item
	}
	return out
}

// Delete drops the item with the given id.
func Delete(items []Item, id int64) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// Toggle flips the availability flag of the item with the given id.
func Toggle(items []Item, id int64) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		if item.ID == id {
			item.Active = !item.Active
		}
		out[i] = item
	}
	return out
}

// ClearInactive keeps only available listings.
func ClearInactive(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Active {
			out = append(out, item)
		}
	}
	return out
}

// Find returns the item with the given id and whether it exists.
func Find(items []Item, id int64) (Item, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}
