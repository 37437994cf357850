package booking

import (
	"github.com/criscode097/vacarent/internal/domain"
	"github.com/criscode097/vacarent/internal/notify"
)

// Reservations is the slice of the registry the booking service uses.
type Reservations interface {
	FindProperty(id string) *domain.Property
	FindUser(id string) *domain.Person
	AddBooking(b *domain.Booking)
	ListBookings() []*domain.Booking
}

// ChangeNotifier pushes collection-changed events to connected viewers.
type ChangeNotifier interface {
	Broadcast(event notify.ChangeEvent)
}
