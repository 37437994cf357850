package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

type PropertyType string

const (
	TypeApartment PropertyType = "apartment"
	TypeHouse     PropertyType = "house"
	TypeVilla     PropertyType = "villa"
	TypeCabin     PropertyType = "cabin"
)

func ValidPropertyTypes() []PropertyType {
	return []PropertyType{TypeApartment, TypeHouse, TypeVilla, TypeCabin}
}

func ParsePropertyType(s string) (PropertyType, error) {
	switch PropertyType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeApartment:
		return TypeApartment, nil
	case TypeHouse:
		return TypeHouse, nil
	case TypeVilla:
		return TypeVilla, nil
	case TypeCabin:
		return TypeCabin, nil
	default:
		return "", validationErrorf("invalid property type: %q", s)
	}
}

type apartmentDetails struct {
	floor       int
	hasElevator bool
}

type houseDetails struct {
	bedrooms  int
	hasGarden bool
}

type villaDetails struct {
	hasPool      bool
	squareMeters float64
}

type cabinDetails struct {
	hasFireplace bool
	petFriendly  bool
}

// Property is a closed variant set: the shared attributes live on the struct,
// the variant payload hangs off exactly one of the details pointers and the
// typ tag says which. Fields are unexported; mutation goes through the
// setters so the invariants (non-empty name/location, price >= 0) hold for
// the entity's whole lifetime.
type Property struct {
	id       string
	typ      PropertyType
	name     string
	location string
	price    float64
	capacity int
	active   bool
	created  string

	apartment *apartmentDetails
	house     *houseDetails
	villa     *villaDetails
	cabin     *cabinDetails
}

// newProperty validates the shared fields. Numeric junk does not fail
// construction: an invalid price falls back to 0 and an invalid capacity to
// 1. This lenient-default policy comes from the original system and is
// load-bearing for callers, so it stays.
func newProperty(typ PropertyType, name, location string, pricePerNight float64, capacity int) (*Property, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationErrorf("property name cannot be empty")
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, validationErrorf("property location cannot be empty")
	}

	if math.IsNaN(pricePerNight) || pricePerNight < 0 {
		pricePerNight = 0
	}
	if capacity < 1 {
		capacity = 1
	}

	return &Property{
		id:       uuid.NewString(),
		typ:      typ,
		name:     name,
		location: location,
		price:    pricePerNight,
		capacity: capacity,
		active:   true,
		created:  dateStamp(),
	}, nil
}

func NewApartment(name, location string, pricePerNight float64, capacity, floor int, hasElevator bool) (*Property, error) {
	p, err := newProperty(TypeApartment, name, location, pricePerNight, capacity)
	if err != nil {
		return nil, err
	}
	if floor == 0 {
		floor = 1
	}
	p.apartment = &apartmentDetails{floor: floor, hasElevator: hasElevator}
	return p, nil
}

func NewHouse(name, location string, pricePerNight float64, capacity, bedrooms int, hasGarden bool) (*Property, error) {
	p, err := newProperty(TypeHouse, name, location, pricePerNight, capacity)
	if err != nil {
		return nil, err
	}
	if bedrooms < 1 {
		bedrooms = 1
	}
	p.house = &houseDetails{bedrooms: bedrooms, hasGarden: hasGarden}
	return p, nil
}

func NewVilla(name, location string, pricePerNight float64, capacity int, hasPool bool, squareMeters float64) (*Property, error) {
	p, err := newProperty(TypeVilla, name, location, pricePerNight, capacity)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(squareMeters) || squareMeters < 0 {
		squareMeters = 0
	}
	p.villa = &villaDetails{hasPool: hasPool, squareMeters: squareMeters}
	return p, nil
}

func NewCabin(name, location string, pricePerNight float64, capacity int, hasFireplace, petFriendly bool) (*Property, error) {
	p, err := newProperty(TypeCabin, name, location, pricePerNight, capacity)
	if err != nil {
		return nil, err
	}
	p.cabin = &cabinDetails{hasFireplace: hasFireplace, petFriendly: petFriendly}
	return p, nil
}

func (p *Property) ID() string            { return p.id }
func (p *Property) Type() PropertyType    { return p.typ }
func (p *Property) Name() string          { return p.name }
func (p *Property) Location() string      { return p.location }
func (p *Property) PricePerNight() float64 { return p.price }
func (p *Property) Capacity() int         { return p.capacity }
func (p *Property) IsActive() bool        { return p.active }
func (p *Property) DateCreated() string   { return p.created }

func (p *Property) Floor() int {
	if p.apartment == nil {
		return 0
	}
	return p.apartment.floor
}

func (p *Property) HasElevator() bool {
	return p.apartment != nil && p.apartment.hasElevator
}

func (p *Property) Bedrooms() int {
	if p.house == nil {
		return 0
	}
	return p.house.bedrooms
}

func (p *Property) HasGarden() bool {
	return p.house != nil && p.house.hasGarden
}

func (p *Property) HasPool() bool {
	return p.villa != nil && p.villa.hasPool
}

func (p *Property) SquareMeters() float64 {
	if p.villa == nil {
		return 0
	}
	return p.villa.squareMeters
}

func (p *Property) HasFireplace() bool {
	return p.cabin != nil && p.cabin.hasFireplace
}

func (p *Property) PetFriendly() bool {
	return p.cabin != nil && p.cabin.petFriendly
}

func (p *Property) SetLocation(location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return validationErrorf("property location cannot be empty")
	}
	p.location = location
	return nil
}

func (p *Property) SetPricePerNight(price float64) error {
	if math.IsNaN(price) || price < 0 {
		return validationErrorf("price per night cannot be negative")
	}
	p.price = price
	return nil
}

// Activate marks the property as available. Toggling to the state the
// property is already in is a no-op failure Result, not an error.
func (p *Property) Activate() Result {
	if p.active {
		return Fail("property is already available")
	}
	p.active = true
	return OK(fmt.Sprintf("%q marked as available", p.name), nil)
}

// Deactivate marks the property as unavailable (occupied).
func (p *Property) Deactivate() Result {
	if !p.active {
		return Fail("property is already unavailable")
	}
	p.active = false
	return OK(fmt.Sprintf("%q marked as unavailable", p.name), nil)
}

// PropertyInfo is the flat projection handed to the rendering boundary. Only
// the fields of the property's own variant are populated.
type PropertyInfo struct {
	ID            string       `json:"id"`
	Type          PropertyType `json:"type"`
	Name          string       `json:"name"`
	Location      string       `json:"location"`
	PricePerNight float64      `json:"price_per_night"`
	Capacity      int          `json:"capacity"`
	Active        bool         `json:"active"`
	DateCreated   string       `json:"date_created"`

	Floor        *int     `json:"floor,omitempty"`
	HasElevator  *bool    `json:"has_elevator,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	HasGarden    *bool    `json:"has_garden,omitempty"`
	HasPool      *bool    `json:"has_pool,omitempty"`
	SquareMeters *float64 `json:"square_meters,omitempty"`
	HasFireplace *bool    `json:"has_fireplace,omitempty"`
	PetFriendly  *bool    `json:"pet_friendly,omitempty"`
}

func (p *Property) Info() PropertyInfo {
	info := PropertyInfo{
		ID:            p.id,
		Type:          p.typ,
		Name:          p.name,
		Location:      p.location,
		PricePerNight: p.price,
		Capacity:      p.capacity,
		Active:        p.active,
		DateCreated:   p.created,
	}

	switch {
	case p.apartment != nil:
		info.Floor = &p.apartment.floor
		info.HasElevator = &p.apartment.hasElevator
	case p.house != nil:
		info.Bedrooms = &p.house.bedrooms
		info.HasGarden = &p.house.hasGarden
	case p.villa != nil:
		info.HasPool = &p.villa.hasPool
		info.SquareMeters = &p.villa.squareMeters
	case p.cabin != nil:
		info.HasFireplace = &p.cabin.hasFireplace
		info.PetFriendly = &p.cabin.petFriendly
	}

	return info
}

func dateStamp() string {
	return time.Now().Format("2006-01-02")
}
