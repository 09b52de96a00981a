package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/itousif38-netizen/SN-ENTP/store"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// App is the shared entity store, loaded once at startup.
var App *store.Store

func Connect() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	dsn := os.Getenv("DB_DSN")
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
}

// InitStore rehydrates the entity store from the database. Must run after
// migrations so the kv_entries table exists.
func InitStore() {
	App = store.Load(store.NewKVPersister(DB))
	log.Println("✅ Entity store loaded")
}
