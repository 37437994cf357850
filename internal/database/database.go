package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registers the pure-Go "sqlite" driver used below.
	_ "modernc.org/sqlite"
)

// Connect opens the snapshot database. A postgres:// DSN selects
// PostgreSQL; anything else is treated as a SQLite file path, which keeps
// local development free of a running server.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("using SQLite snapshot store:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}
