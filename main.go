package main

import (
	"context"
	"log"
	"net/http"

	"geosuggest/api"
	"geosuggest/cache"
	"geosuggest/config"
	"geosuggest/database"
	"geosuggest/mapping"
	"geosuggest/suggest"
)

func main() {
	// Initialize configuration
	config.InitConfig()

	// Initialize database
	if err := database.InitDB(); err != nil {
		log.Fatal(err)
	}

	// Initialize Redis
	if err := cache.InitRedis(); err != nil {
		log.Fatal(err)
	}

	// Initialize the suggestion index and rebuild it from the database
	mapping.SetDefaultPrecision(config.Cfg.Suggest.DefaultPrecision)
	suggest.SetIndexPrecision(config.Cfg.Suggest.IndexPrecision)
	suggest.SetDefaultTechnique(suggest.ExpansionTechnique(config.Cfg.Suggest.Technique))
	suggest.InitSpatialIndex()
	if err := suggest.WarmUp(context.Background()); err != nil {
		log.Fatal(err)
	}

	// Register routes
	router := api.RegisterRoutes()

	// Start the server
	log.Printf("Server started on %s", config.Cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(config.Cfg.Server.Addr, router))
}
