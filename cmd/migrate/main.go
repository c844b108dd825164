package main

import (
	"log"

	"geosuggest/config"
	"geosuggest/migration"
)

func main() {
	config.InitConfig()

	// Run the migrations
	if err := migration.RunMigrations(); err != nil {
		log.Fatalf("Migration error: %v", err)
	}
}
