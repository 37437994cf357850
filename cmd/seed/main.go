package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/criscode097/vacarent/internal/database"
	"github.com/criscode097/vacarent/internal/listing"
	"github.com/criscode097/vacarent/internal/repository"
)

// Writes a sample listing snapshot so the functional API has data on a
// fresh database.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "vacarent.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	repo := repository.NewListingRepository(db)
	if err := repo.Migrate(); err != nil {
		log.Fatal("migration failed:", err)
	}

	items := []listing.Item{
		{
			ID: 1001, Name: "Villa Paraíso", Description: "Villa frente al mar con piscina privada",
			Active: true, Priority: listing.PriorityHigh, Category: "villa",
			Price: 350, Capacity: 8, CreatedAt: "2025-01-10",
		},
		{
			ID: 1002, Name: "Apto Moderno El Poblado", Description: "Apartamento céntrico con vista a la ciudad",
			Active: true, Priority: listing.PriorityMedium, Category: "apartment",
			Price: 95, Capacity: 3, CreatedAt: "2025-01-15",
		},
		{
			ID: 1003, Name: "Cabaña del Bosque", Description: "Cabaña acogedora rodeada de naturaleza",
			Active: false, Priority: listing.PriorityLow, Category: "cabin",
			Price: 60, Capacity: 5, CreatedAt: "2025-02-01",
		},
		{
			ID: 1004, Name: "Casa Colonial", Description: "Casa tradicional en el centro histórico",
			Active: true, Priority: listing.PriorityMedium, Category: "house",
			Price: 130, Capacity: 6, CreatedAt: "2025-02-15",
		},
	}

	if err := repo.Save(context.Background(), items); err != nil {
		log.Fatal("seed failed:", err)
	}

	log.Printf("seeded %d listings into %s", len(items), dsn)
}
