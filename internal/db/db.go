package db

import (
	"log"
	"os"
	"strings"

	"saarthi/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = os.Getenv("POSTGRES_URL")
	}

	var err error
	// Disallowed hosts fall back to the embedded store, same as an unset URL
	if dsn == "" || strings.Contains(dsn, "neon.tech") {
		dbFile := os.Getenv("SQLITE_DB")
		if dbFile == "" {
			dbFile = "saarthi.db"
		}
		log.Printf("DATABASE_URL not usable, using SQLite database at %s", dbFile)
		DB, err = gorm.Open(sqlite.Open(dbFile), &gorm.Config{})
	} else {
		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	Seed(DB)
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Post{},
		&models.Comment{},
		&models.ChatMessage{},
		&models.JournalEntry{},
		&models.Emotion{},
		&models.Verse{},
		&models.Interaction{},
		&models.ThoughtOfTheDay{},
		&models.Scripture{},
	)
}
