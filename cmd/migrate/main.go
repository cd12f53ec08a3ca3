package main

import (
	"log"

	"jobbridge_backend/database"
	"jobbridge_backend/internal/config"
)

func main() {
	config.LoadConfig()

	if err := database.AutoMigrate(); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}
