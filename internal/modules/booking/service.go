package booking

import (
	"github.com/criscode097/vacarent/internal/domain"
	"github.com/criscode097/vacarent/internal/notify"
)

// Service creates reservations and runs the surrounding workflow.
type Service struct {
	store    Reservations
	notifier ChangeNotifier
}

func NewService(store Reservations, notifier ChangeNotifier) *Service {
	return &Service{store: store, notifier: notifier}
}

// Create books a property for the authenticated guest. The booking itself
// only snapshots data; the workflow afterwards bumps the guest's counter
// and marks the property occupied. The two mutations are deliberately
// separate steps, mirroring how a deletion never cascades back either.
func (s *Service) Create(guestID string, req CreateBookingRequest) (domain.BookingInfo, error) {
	property := s.store.FindProperty(req.PropertyID)
	if property == nil {
		return domain.BookingInfo{}, ErrPropertyNotFound
	}

	guest := s.store.FindUser(guestID)
	if guest == nil {
		return domain.BookingInfo{}, ErrGuestNotFound
	}
	if guest.Role() != domain.RoleGuest {
		return domain.BookingInfo{}, ErrGuestsOnly
	}

	b, err := domain.NewBooking(property, guest, req.CheckIn, req.CheckOut)
	if err != nil {
		return domain.BookingInfo{}, err
	}
	s.store.AddBooking(b)

	guest.RegisterBooking()
	// Occupying the property can be a no-op when it was already
	// unavailable; the booking stands regardless.
	property.Deactivate()

	s.notifier.Broadcast(notify.Changed(notify.ScopeBookings))
	s.notifier.Broadcast(notify.Changed(notify.ScopeCatalog))

	return b.Info(), nil
}

// Quote prices a stay without creating anything.
func (s *Service) Quote(req QuoteRequest) (Quote, error) {
	property := s.store.FindProperty(req.PropertyID)
	if property == nil {
		return Quote{}, ErrPropertyNotFound
	}

	nights, err := domain.CalculateNights(req.CheckIn, req.CheckOut)
	if err != nil {
		return Quote{}, err
	}
	if nights <= 0 {
		return Quote{}, domain.ErrInvalidDateRange
	}

	return Quote{
		PropertyID:    property.ID(),
		Nights:        nights,
		PricePerNight: property.PricePerNight(),
		TotalPrice:    float64(nights) * property.PricePerNight(),
	}, nil
}

// List returns every recorded reservation, oldest first.
func (s *Service) List() []domain.BookingInfo {
	bookings := s.store.ListBookings()
	infos := make([]domain.BookingInfo, len(bookings))
	for i, b := range bookings {
		infos[i] = b.Info()
	}
	return infos
}
