package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/criscode097/vacarent/internal/domain"
	"github.com/criscode097/vacarent/internal/notify"
	"github.com/criscode097/vacarent/internal/registry"
)

type recordingNotifier struct {
	events []notify.ChangeEvent
}

func (n *recordingNotifier) Broadcast(event notify.ChangeEvent) {
	n.events = append(n.events, event)
}

type fixture struct {
	svc      *Service
	reg      *registry.Registry
	notifier *recordingNotifier
	villa    *domain.Property
	guest    *domain.Person
	host     *domain.Person
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	reg := registry.New()
	notifier := &recordingNotifier{}

	villa, err := domain.NewVilla("Villa Paraíso", "Cartagena", 100, 8, true, 450)
	require.NoError(t, err)
	require.True(t, reg.AddProperty(villa).Success)

	guest, err := domain.NewGuest("Ana García", "ana@ejemplo.com", "Colombia")
	require.NoError(t, err)
	require.True(t, reg.AddUser(guest).Success)

	host, err := domain.NewHost("María López", "maria@ejemplo.com", 5)
	require.NoError(t, err)
	require.True(t, reg.AddUser(host).Success)

	return &fixture{
		svc:      NewService(reg, notifier),
		reg:      reg,
		notifier: notifier,
		villa:    villa,
		guest:    guest,
		host:     host,
	}
}

func TestCreate_BooksAndRunsWorkflow(t *testing.T) {
	f := newFixture(t)

	info, err := f.svc.Create(f.guest.ID(), CreateBookingRequest{
		PropertyID: f.villa.ID(),
		CheckIn:    "2025-07-10",
		CheckOut:   "2025-07-15",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, info.Nights)
	assert.Equal(t, 500.0, info.TotalPrice)
	assert.Equal(t, "Villa Paraíso", info.PropertyName)
	assert.Equal(t, "Ana García", info.GuestName)

	// Workflow side effects: guest counter up, property occupied.
	assert.Equal(t, 1, f.guest.TotalBookings())
	assert.False(t, f.villa.IsActive())

	require.Len(t, f.notifier.events, 2)
	assert.Equal(t, "bookings.changed", f.notifier.events[0].Type)
	assert.Equal(t, "catalog.changed", f.notifier.events[1].Type)

	assert.Len(t, f.svc.List(), 1)
}

func TestCreate_InvalidRange(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(f.guest.ID(), CreateBookingRequest{
		PropertyID: f.villa.ID(),
		CheckIn:    "2025-07-15",
		CheckOut:   "2025-07-15",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	assert.Empty(t, f.svc.List())
	assert.Equal(t, 0, f.guest.TotalBookings())
}

func TestCreate_UnknownReferences(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(f.guest.ID(), CreateBookingRequest{PropertyID: "missing", CheckIn: "2025-07-10", CheckOut: "2025-07-12"})
	assert.ErrorIs(t, err, ErrPropertyNotFound)

	_, err = f.svc.Create("missing", CreateBookingRequest{PropertyID: f.villa.ID(), CheckIn: "2025-07-10", CheckOut: "2025-07-12"})
	assert.ErrorIs(t, err, ErrGuestNotFound)

	_, err = f.svc.Create(f.host.ID(), CreateBookingRequest{PropertyID: f.villa.ID(), CheckIn: "2025-07-10", CheckOut: "2025-07-12"})
	assert.ErrorIs(t, err, ErrGuestsOnly)
}

func TestCreate_SnapshotSurvivesPropertyRemoval(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(f.guest.ID(), CreateBookingRequest{
		PropertyID: f.villa.ID(),
		CheckIn:    "2025-07-10",
		CheckOut:   "2025-07-12",
	})
	require.NoError(t, err)

	require.True(t, f.reg.RemoveProperty(f.villa.ID()).Success)

	bookings := f.svc.List()
	require.Len(t, bookings, 1)
	assert.Equal(t, "Villa Paraíso", bookings[0].PropertyName)
}

func TestQuote(t *testing.T) {
	f := newFixture(t)

	q, err := f.svc.Quote(QuoteRequest{PropertyID: f.villa.ID(), CheckIn: "2025-07-10", CheckOut: "2025-07-15"})
	require.NoError(t, err)
	assert.Equal(t, 5, q.Nights)
	assert.Equal(t, 500.0, q.TotalPrice)

	_, err = f.svc.Quote(QuoteRequest{PropertyID: f.villa.ID(), CheckIn: "2025-07-15", CheckOut: "2025-07-10"})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = f.svc.Quote(QuoteRequest{PropertyID: "missing", CheckIn: "2025-07-10", CheckOut: "2025-07-15"})
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}
