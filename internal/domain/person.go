package domain

import (
	"math"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

type Role string

const (
	RoleGuest Role = "guest"
	RoleHost  Role = "host"
)

const defaultCountry = "not specified"

// Single-pass format check, same pattern the original system used. Anything
// stricter belongs to an email-verification flow, not the entity.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type guestDetails struct {
	country       string
	totalBookings int
}

type hostDetails struct {
	totalProperties int
	rating          float64
}

// Person is the user entity, a closed guest/host variant set mirroring the
// Property layout: shared attributes plus one variant payload selected by
// the role tag.
type Person struct {
	id           string
	role         Role
	name         string
	email        string
	registered   string
	passwordHash string

	guest *guestDetails
	host  *hostDetails
}

func newPerson(role Role, name, email string) (*Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationErrorf("name cannot be empty")
	}
	if !emailPattern.MatchString(email) {
		return nil, validationErrorf("invalid email: %q", email)
	}

	return &Person{
		id:         uuid.NewString(),
		role:       role,
		name:       name,
		email:      email,
		registered: dateStamp(),
	}, nil
}

// NewGuest creates a guest. An empty country falls back to "not specified".
func NewGuest(name, email, country string) (*Person, error) {
	p, err := newPerson(RoleGuest, name, email)
	if err != nil {
		return nil, err
	}
	country = strings.TrimSpace(country)
	if country == "" {
		country = defaultCountry
	}
	p.guest = &guestDetails{country: country}
	return p, nil
}

// NewHost creates a host. The rating is clamped into [1,5]; an unusable
// rating (zero or NaN) falls back to the default of 5.
func NewHost(name, email string, rating float64) (*Person, error) {
	p, err := newPerson(RoleHost, name, email)
	if err != nil {
		return nil, err
	}
	if rating == 0 || math.IsNaN(rating) {
		rating = 5
	}
	rating = math.Min(5, math.Max(1, rating))
	p.host = &hostDetails{rating: rating}
	return p, nil
}

func (p *Person) ID() string               { return p.id }
func (p *Person) Role() Role               { return p.role }
func (p *Person) Name() string             { return p.name }
func (p *Person) Email() string            { return p.email }
func (p *Person) RegistrationDate() string { return p.registered }
func (p *Person) PasswordHash() string     { return p.passwordHash }

func (p *Person) SetPasswordHash(hash string) {
	p.passwordHash = hash
}

func (p *Person) Country() string {
	if p.guest == nil {
		return ""
	}
	return p.guest.country
}

func (p *Person) TotalBookings() int {
	if p.guest == nil {
		return 0
	}
	return p.guest.totalBookings
}

// RegisterBooking bumps the guest's booking counter. No-op for hosts.
func (p *Person) RegisterBooking() {
	if p.guest != nil {
		p.guest.totalBookings++
	}
}

func (p *Person) TotalProperties() int {
	if p.host == nil {
		return 0
	}
	return p.host.totalProperties
}

// AddProperty bumps the host's published-property counter. No-op for guests.
func (p *Person) AddProperty() {
	if p.host != nil {
		p.host.totalProperties++
	}
}

func (p *Person) Rating() float64 {
	if p.host == nil {
		return 0
	}
	return p.host.rating
}

// PersonInfo is the serializable projection for the rendering boundary. The
// password hash never leaves the entity.
type PersonInfo struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             Role   `json:"role"`
	RegistrationDate string `json:"registration_date"`

	Country         *string  `json:"country,omitempty"`
	TotalBookings   *int     `json:"total_bookings,omitempty"`
	TotalProperties *int     `json:"total_properties,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
}

func (p *Person) Info() PersonInfo {
	info := PersonInfo{
		ID:               p.id,
		Name:             p.name,
		Email:            p.email,
		Role:             p.role,
		RegistrationDate: p.registered,
	}

	switch {
	case p.guest != nil:
		info.Country = &p.guest.country
		info.TotalBookings = &p.guest.totalBookings
	case p.host != nil:
		info.TotalProperties = &p.host.totalProperties
		info.Rating = &p.host.rating
	}

	return info
}
