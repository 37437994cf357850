package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Booking is an immutable reservation record. It captures the property and
// guest as denormalized snapshots (ids and names, plus the nightly rate
// folded into the total), so later renames or price changes never rewrite
// history — and a deleted property leaves its bookings intact.
type Booking struct {
	id           string
	propertyID   string
	propertyName string
	guestName    string
	checkIn      string
	checkOut     string
	totalPrice   float64
	createdAt    string
}

// CalculateNights returns the rounded day difference between two YYYY-MM-DD
// dates. Zero or negative means the range is not bookable.
func CalculateNights(checkIn, checkOut string) (int, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 0, validationErrorf("invalid check-in date: %q", checkIn)
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 0, validationErrorf("invalid check-out date: %q", checkOut)
	}
	return int(math.Round(out.Sub(in).Hours() / 24)), nil
}

// NewBooking snapshots the property and guest at the moment of reservation.
// The total is nights x the property's current nightly rate; it is never
// re-derived afterwards.
func NewBooking(property *Property, guest *Person, checkIn, checkOut string) (*Booking, error) {
	nights, err := CalculateNights(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if nights <= 0 {
		return nil, ErrInvalidDateRange
	}

	return &Booking{
		id:           uuid.NewString(),
		propertyID:   property.ID(),
		propertyName: property.Name(),
		guestName:    guest.Name(),
		checkIn:      checkIn,
		checkOut:     checkOut,
		totalPrice:   float64(nights) * property.PricePerNight(),
		createdAt:    dateStamp(),
	}, nil
}

func (b *Booking) ID() string           { return b.id }
func (b *Booking) PropertyID() string   { return b.propertyID }
func (b *Booking) PropertyName() string { return b.propertyName }
func (b *Booking) GuestName() string    { return b.guestName }
func (b *Booking) CheckIn() string      { return b.checkIn }
func (b *Booking) CheckOut() string     { return b.checkOut }
func (b *Booking) TotalPrice() float64  { return b.totalPrice }
func (b *Booking) CreatedAt() string    { return b.createdAt }

// Nights re-derives the stay length from the stored dates.
func (b *Booking) Nights() int {
	nights, _ := CalculateNights(b.checkIn, b.checkOut)
	return nights
}

type BookingInfo struct {
	ID           string  `json:"id"`
	PropertyID   string  `json:"property_id"`
	PropertyName string  `json:"property_name"`
	GuestName    string  `json:"guest_name"`
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	Nights       int     `json:"nights"`
	TotalPrice   float64 `json:"total_price"`
	CreatedAt    string  `json:"created_at"`
}

func (b *Booking) Info() BookingInfo {
	return BookingInfo{
		ID:           b.id,
		PropertyID:   b.propertyID,
		PropertyName: b.propertyName,
		GuestName:    b.guestName,
		CheckIn:      b.checkIn,
		CheckOut:     b.checkOut,
		Nights:       b.Nights(),
		TotalPrice:   b.totalPrice,
		CreatedAt:    b.createdAt,
	}
}
