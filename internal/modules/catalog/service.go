package catalog

import (
	"strings"

	"github.com/criscode097/vacarent/internal/domain"
	"github.com/criscode097/vacarent/internal/notify"
	"github.com/criscode097/vacarent/internal/registry"
)

// Service exposes the property catalog to the HTTP layer: creation with
// variant dispatch, filtered listing, toggling and statistics.
type Service struct {
	catalog  Catalog
	notifier ChangeNotifier
}

func NewService(catalog Catalog, notifier ChangeNotifier) *Service {
	return &Service{catalog: catalog, notifier: notifier}
}

// CreateProperty builds the variant named by the request and stores it.
// Construction problems surface as a domain.ValidationError; a full
// catalog comes back as a failed Result.
func (s *Service) CreateProperty(req CreatePropertyRequest) (domain.Result, error) {
	pt, err := domain.ParsePropertyType(req.Type)
	if err != nil {
		return domain.Result{}, err
	}

	var p *domain.Property
	switch pt {
	case domain.TypeApartment:
		p, err = domain.NewApartment(req.Name, req.Location, req.Price, req.Capacity, req.Floor, req.HasElevator)
	case domain.TypeHouse:
		p, err = domain.NewHouse(req.Name, req.Location, req.Price, req.Capacity, req.Bedrooms, req.HasGarden)
	case domain.TypeVilla:
		p, err = domain.NewVilla(req.Name, req.Location, req.Price, req.Capacity, req.HasPool, req.SquareMeters)
	case domain.TypeCabin:
		p, err = domain.NewCabin(req.Name, req.Location, req.Price, req.Capacity, req.HasFireplace, req.PetFriendly)
	}
	if err != nil {
		return domain.Result{}, err
	}

	res := s.catalog.AddProperty(p)
	if res.Success {
		s.notifier.Broadcast(notify.Changed(notify.ScopeCatalog))
	}
	return res, nil
}

// List applies the filter bar in its fixed order: status, then type, then
// text search over name and location. The filtering itself lives in the
// registry package; this just wires the query onto it.
func (s *Service) List(q FilterQuery) []domain.PropertyInfo {
	props := s.catalog.ListProperties()

	if q.Status != "" && q.Status != "all" {
		props = registry.ByStatus(props, q.Status == "active")
	}
	if q.Type != "" && q.Type != "all" {
		if pt, err := domain.ParsePropertyType(q.Type); err == nil {
			props = registry.ByType(props, pt)
		}
	}
	props = registry.BySearch(props, q.Search)

	infos := make([]domain.PropertyInfo, len(props))
	for i, p := range props {
		infos[i] = p.Info()
	}
	return infos
}

// Get returns one property projection.
func (s *Service) Get(id string) (domain.PropertyInfo, error) {
	p := s.catalog.FindProperty(id)
	if p == nil {
		return domain.PropertyInfo{}, ErrPropertyNotFound
	}
	return p.Info(), nil
}

// Update mutates location and nightly rate through the entity setters.
func (s *Service) Update(id string, req UpdatePropertyRequest) (domain.PropertyInfo, error) {
	p := s.catalog.FindProperty(id)
	if p == nil {
		return domain.PropertyInfo{}, ErrPropertyNotFound
	}

	if req.Location != nil {
		if err := p.SetLocation(*req.Location); err != nil {
			return domain.PropertyInfo{}, err
		}
	}
	if req.Price != nil {
		if err := p.SetPricePerNight(*req.Price); err != nil {
			return domain.PropertyInfo{}, err
		}
	}

	s.notifier.Broadcast(notify.Changed(notify.ScopeCatalog))
	return p.Info(), nil
}

// Remove deletes a property. Bookings that reference it stay untouched.
func (s *Service) Remove(id string) domain.Result {
	res := s.catalog.RemoveProperty(id)
	if res.Success {
		s.notifier.Broadcast(notify.Changed(notify.ScopeCatalog))
	}
	return res
}

// Toggle flips a property's availability.
func (s *Service) Toggle(id string) domain.Result {
	res := s.catalog.ToggleProperty(id)
	if res.Success {
		s.notifier.Broadcast(notify.Changed(notify.ScopeCatalog))
	}
	return res
}

// Stats reports the aggregate catalog counters.
func (s *Service) Stats() registry.Stats {
	return s.catalog.Snapshot()
}

// Users lists every registered account, optionally narrowed by role and
// by a case-insensitive search over name and email.
func (s *Service) Users(role, search string) []domain.PersonInfo {
	term := strings.ToLower(strings.TrimSpace(search))
	users := s.catalog.ListUsers()
	infos := make([]domain.PersonInfo, 0, len(users))
	for _, u := range users {
		if role != "" && role != "all" && string(u.Role()) != role {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(u.Name()), term) &&
			!strings.Contains(strings.ToLower(u.Email()), term) {
			continue
		}
		infos = append(infos, u.Info())
	}
	return infos
}

// UserByEmail looks one account up by its exact email.
func (s *Service) UserByEmail(email string) (domain.PersonInfo, error) {
	u := s.catalog.FindUserByEmail(email)
	if u == nil {
		return domain.PersonInfo{}, ErrUserNotFound
	}
	return u.Info(), nil
}
