package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func RegisterRoutes() http.Handler {
	router := mux.NewRouter()

	// Suggestion entry endpoints
	router.HandleFunc("/suggestions", CreateSuggestion).Methods("POST")
	router.HandleFunc("/suggestions/{suggestion_id}", GetSuggestion).Methods("GET")
	router.HandleFunc("/suggestions/{suggestion_id}", DeleteSuggestion).Methods("DELETE")

	// Completion query endpoint
	router.HandleFunc("/suggest", Suggest).Methods("POST")

	// Health endpoint
	router.HandleFunc("/healthz", HealthCheck).Methods("GET")

	// Add CORS support
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	return cors(router)
}
