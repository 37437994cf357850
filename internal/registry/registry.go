package registry

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/criscode097/vacarent/internal/domain"
)

// MaxProperties caps the catalog size. Adds past the cap are rejected with
// an operational failure, never an error.
const MaxProperties = 500

// Registry is the in-memory catalog: properties, users and bookings behind
// one mutex. Entities are stored by reference; list accessors hand out
// copied slices so callers can re-sort or filter without holding the lock.
type Registry struct {
	mu         sync.Mutex
	properties []*domain.Property
	users      []*domain.Person
	bookings   []*domain.Booking
}

func New() *Registry {
	return &Registry{}
}

// AddProperty appends a property unless the catalog is full.
func (r *Registry) AddProperty(p *domain.Property) domain.Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.properties) >= MaxProperties {
		return domain.Fail(fmt.Sprintf("catalog limit of %d properties reached", MaxProperties))
	}
	r.properties = append(r.properties, p)
	return domain.OK(fmt.Sprintf("%q added to the catalog", p.Name()), p.Info())
}

// RemoveProperty deletes by id. Bookings referencing the property are kept;
// they carry their own snapshot of it.
func (r *Registry) RemoveProperty(id string) domain.Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.properties {
		if p.ID() == id {
			r.properties = append(r.properties[:i], r.properties[i+1:]...)
			return domain.OK(fmt.Sprintf("%q removed from the catalog", p.Name()), p.Info())
		}
	}
	return domain.Fail("property not found")
}

// FindProperty returns the stored entity, or nil when absent.
func (r *Registry) FindProperty(id string) *domain.Property {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findProperty(id)
}

func (r *Registry) findProperty(id string) *domain.Property {
	for _, p := range r.properties {
		if p.ID() == id {
			return p
		}
	}
	return nil
}

// ListProperties returns a copy of the property slice.
func (r *Registry) ListProperties() []*domain.Property {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Property, len(r.properties))
	copy(out, r.properties)
	return out
}

// ToggleProperty flips availability of the property with the given id.
func (r *Registry) ToggleProperty(id string) domain.Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.findProperty(id)
	if p == nil {
		return domain.Fail("property not found")
	}
	if p.IsActive() {
		return p.Deactivate()
	}
	return p.Activate()
}

// AddUser registers a person. The email must not already be taken; the
// comparison is an exact match, no case folding.
func (r *Registry) AddUser(u *domain.Person) domain.Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email() == u.Email() {
			return domain.Fail(fmt.Sprintf("email %q is already registered", u.Email()))
		}
	}
	r.users = append(r.users, u)
	return domain.OK(fmt.Sprintf("%s registered as %s", u.Name(), u.Role()), u.Info())
}

// FindUser returns the user with the given id, or nil.
func (r *Registry) FindUser(id string) *domain.Person {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID() == id {
			return u
		}
	}
	return nil
}

// FindUserByEmail looks up a user by exact email match.
func (r *Registry) FindUserByEmail(email string) *domain.Person {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email() == email {
			return u
		}
	}
	return nil
}

// ListUsers returns a copy of the user slice.
func (r *Registry) ListUsers() []*domain.Person {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Person, len(r.users))
	copy(out, r.users)
	return out
}

// AddBooking records a completed reservation.
func (r *Registry) AddBooking(b *domain.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, b)
}

// ListBookings returns a copy of the booking slice.
func (r *Registry) ListBookings() []*domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

// BySearch keeps properties whose name or location contains the term,
// case-insensitively. A blank term matches everything. The package-level
// filters compose, so callers can chain them over one listed slice.
func BySearch(props []*domain.Property, term string) []*domain.Property {
	term = strings.ToLower(strings.TrimSpace(term))
	var out []*domain.Property
	for _, p := range props {
		if term == "" ||
			strings.Contains(strings.ToLower(p.Name()), term) ||
			strings.Contains(strings.ToLower(p.Location()), term) {
			out = append(out, p)
		}
	}
	return out
}

// ByType keeps properties of the given variant.
func ByType(props []*domain.Property, pt domain.PropertyType) []*domain.Property {
	var out []*domain.Property
	for _, p := range props {
		if p.Type() == pt {
			out = append(out, p)
		}
	}
	return out
}

// ByStatus keeps properties matching the availability flag.
func ByStatus(props []*domain.Property, active bool) []*domain.Property {
	var out []*domain.Property
	for _, p := range props {
		if p.IsActive() == active {
			out = append(out, p)
		}
	}
	return out
}

// Search matches the whole catalog by name or location.
func (r *Registry) Search(term string) []*domain.Property {
	return BySearch(r.ListProperties(), term)
}

// FilterByType keeps catalog properties of the given variant.
func (r *Registry) FilterByType(pt domain.PropertyType) []*domain.Property {
	return ByType(r.ListProperties(), pt)
}

// FilterByStatus keeps catalog properties matching the availability flag.
func (r *Registry) FilterByStatus(active bool) []*domain.Property {
	return ByStatus(r.ListProperties(), active)
}

// Stats is the aggregate catalog report. Counts always reconcile:
// Active+Inactive == TotalProperties and the ByType counts sum to it.
type Stats struct {
	TotalProperties int                         `json:"total_properties"`
	Active          int                         `json:"active"`
	Inactive        int                         `json:"inactive"`
	ByType          map[domain.PropertyType]int `json:"by_type"`
	TotalUsers      int                         `json:"total_users"`
	TotalBookings   int                         `json:"total_bookings"`
	AveragePrice    int                         `json:"average_price"`
}

// Snapshot computes catalog statistics in one pass. The average nightly
// price is rounded to the nearest whole unit and zero for an empty catalog.
func (r *Registry) Snapshot() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := Stats{
		TotalProperties: len(r.properties),
		TotalUsers:      len(r.users),
		TotalBookings:   len(r.bookings),
		ByType:          make(map[domain.PropertyType]int),
	}

	var priceSum float64
	for _, p := range r.properties {
		if p.IsActive() {
			stats.Active++
		} else {
			stats.Inactive++
		}
		stats.ByType[p.Type()]++
		priceSum += p.PricePerNight()
	}
	if stats.TotalProperties > 0 {
		stats.AveragePrice = int(math.Round(priceSum / float64(stats.TotalProperties)))
	}
	return stats
}
