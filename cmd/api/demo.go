package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/criscode097/vacarent/internal/domain"
	"github.com/criscode097/vacarent/internal/modules/booking"
	"github.com/criscode097/vacarent/internal/registry"
)

// seedDemoData fills the registry with a small sample catalog so the API
// is browsable right after startup. Enabled with DEMO_DATA=1.
func seedDemoData(reg *registry.Registry, bookings *booking.Service) {
	villa, err := domain.NewVilla("Villa Paraíso", "Cartagena, Colombia", 350, 8, true, 450)
	if err != nil {
		log.Fatal(err)
	}
	apartment, err := domain.NewApartment("Apto Moderno El Poblado", "Medellín, Colombia", 95, 3, 7, true)
	if err != nil {
		log.Fatal(err)
	}
	cabin, err := domain.NewCabin("Cabaña del Bosque", "Santa Fe de Antioquia", 60, 5, true, true)
	if err != nil {
		log.Fatal(err)
	}
	house, err := domain.NewHouse("Casa Colonial", "Barichara, Colombia", 130, 6, 4, true)
	if err != nil {
		log.Fatal(err)
	}

	for _, p := range []*domain.Property{villa, apartment, cabin, house} {
		if res := reg.AddProperty(p); !res.Success {
			log.Fatalf("demo property rejected: %s", res.Message)
		}
	}
	cabin.Deactivate()

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	ana, err := domain.NewGuest("Ana García", "ana@ejemplo.com", "Colombia")
	if err != nil {
		log.Fatal(err)
	}
	carlos, err := domain.NewGuest("Carlos Ruiz", "carlos@ejemplo.com", "México")
	if err != nil {
		log.Fatal(err)
	}
	maria, err := domain.NewHost("María López", "maria@ejemplo.com", 5)
	if err != nil {
		log.Fatal(err)
	}

	for _, u := range []*domain.Person{ana, carlos, maria} {
		u.SetPasswordHash(string(hash))
		if res := reg.AddUser(u); !res.Success {
			log.Fatalf("demo user rejected: %s", res.Message)
		}
	}

	if _, err := bookings.Create(ana.ID(), booking.CreateBookingRequest{
		PropertyID: villa.ID(),
		CheckIn:    "2025-07-10",
		CheckOut:   "2025-07-15",
	}); err != nil {
		log.Fatal(err)
	}

	log.Println("demo data loaded: 4 properties, 3 users, 1 booking")
}
