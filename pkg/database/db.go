package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres connection behind the remote data gateway.
// A missing DSN is not fatal: the portal degrades to the seed catalog, so
// this returns nil and logs a diagnostic instead of exiting.
func Connect(dsn string) *gorm.DB {
	if dsn == "" {
		log.Println("DATABASE_URL is not set; running in offline (seed catalog) mode")
		return nil
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("failed to connect database, running in offline mode: %v", err)
		return nil
	}

	return db
}
