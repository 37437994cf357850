package catalog

import "github.com/criscode097/vacarent/internal/domain"

type CreatePropertyRequest struct {
	Type     string  `json:"type" binding:"required,oneof=apartment house villa cabin"`
	Name     string  `json:"name" binding:"required"`
	Location string  `json:"location" binding:"required"`
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`

	// Variant fields; only the ones matching Type are read.
	Floor        int     `json:"floor"`
	HasElevator  bool    `json:"has_elevator"`
	Bedrooms     int     `json:"bedrooms"`
	HasGarden    bool    `json:"has_garden"`
	HasPool      bool    `json:"has_pool"`
	SquareMeters float64 `json:"square_meters"`
	HasFireplace bool    `json:"has_fireplace"`
	PetFriendly  bool    `json:"pet_friendly"`
}

type UpdatePropertyRequest struct {
	Location *string  `json:"location,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}

// FilterQuery mirrors the list-view filter bar.
type FilterQuery struct {
	Status string `form:"status"`
	Type   string `form:"type"`
	Search string `form:"search"`
}

type TypeOption struct {
	Value domain.PropertyType `json:"value"`
	Label string              `json:"label"`
}

// TypeOptions feeds the property-type selector.
func TypeOptions() []TypeOption {
	labels := map[domain.PropertyType]string{
		domain.TypeApartment: "Apartment",
		domain.TypeHouse:     "House",
		domain.TypeVilla:     "Villa",
		domain.TypeCabin:     "Cabin",
	}
	types := domain.ValidPropertyTypes()
	opts := make([]TypeOption, 0, len(types))
	for _, pt := range types {
		opts = append(opts, TypeOption{Value: pt, Label: labels[pt]})
	}
	return opts
}
