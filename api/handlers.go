package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/lib/pq"

	"geosuggest/cache"
	"geosuggest/config"
	"geosuggest/database"
	"geosuggest/geocontext"
	"geosuggest/geohash"
	"geosuggest/models"
	"geosuggest/suggest"
)

// CreateSuggestion handles registering a new completion entry
func CreateSuggestion(w http.ResponseWriter, r *http.Request) {
	var s models.Suggestion
	err := json.NewDecoder(r.Body).Decode(&s)
	if err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if s.Text == "" {
		http.Error(w, "Suggestion text is required", http.StatusBadRequest)
		return
	}

	// Calculate the index cell for the entry's location
	s.Geohash = geohash.Encode(s.Latitude, s.Longitude, uint(suggest.IndexPrecision()))

	if s.Weight == 0 {
		s.Weight = 1
	}

	err = database.DB.QueryRow(
		`INSERT INTO suggestions (text, weight, latitude, longitude, geohash) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		s.Text, s.Weight, s.Latitude, s.Longitude, s.Geohash,
	).Scan(&s.ID)
	if err != nil {
		if pgErr, ok := err.(*pq.Error); ok && strings.Contains(pgErr.Message, "duplicate key") {
			http.Error(w, "Suggestion already exists", http.StatusConflict)
		} else {
			http.Error(w, "Failed to create suggestion", http.StatusInternalServerError)
		}
		return
	}

	// Add the entry to the live index
	if err := suggest.Index(context.Background(), s); err != nil {
		http.Error(w, "Failed to index suggestion", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}

// GetSuggestion handles fetching a completion entry by ID
func GetSuggestion(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	idStr := vars["suggestion_id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "Invalid suggestion ID", http.StatusBadRequest)
		return
	}

	var s models.Suggestion
	err = database.DB.QueryRow(
		`SELECT id, text, weight, latitude, longitude, geohash FROM suggestions WHERE id=$1`,
		id,
	).Scan(&s.ID, &s.Text, &s.Weight, &s.Latitude, &s.Longitude, &s.Geohash)
	if err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "Suggestion not found", http.StatusNotFound)
		} else {
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}

// DeleteSuggestion handles removing a completion entry by ID
func DeleteSuggestion(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	idStr := vars["suggestion_id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "Invalid suggestion ID", http.StatusBadRequest)
		return
	}

	var s models.Suggestion
	err = database.DB.QueryRow(
		`SELECT id, text, weight, latitude, longitude, geohash FROM suggestions WHERE id=$1`,
		id,
	).Scan(&s.ID, &s.Text, &s.Weight, &s.Latitude, &s.Longitude, &s.Geohash)
	if err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "Suggestion not found", http.StatusNotFound)
		} else {
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	_, err = database.DB.Exec(`DELETE FROM suggestions WHERE id=$1`, id)
	if err != nil {
		http.Error(w, "Failed to delete suggestion", http.StatusInternalServerError)
		return
	}

	if err := suggest.Remove(context.Background(), s); err != nil {
		http.Error(w, "Failed to remove suggestion from index", http.StatusInternalServerError)
		return
	}

	response := map[string]string{"message": "Suggestion deleted"}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Suggest handles geo-filtered completion queries
func Suggest(w http.ResponseWriter, r *http.Request) {
	var query struct {
		Prefix    string          `json:"prefix"`
		Size      int             `json:"size"`
		Technique string          `json:"technique"`
		Context   json.RawMessage `json:"context"`
	}

	err := json.NewDecoder(r.Body).Decode(&query)
	if err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(query.Context) == 0 {
		http.Error(w, "Missing geo context", http.StatusBadRequest)
		return
	}

	qc, err := geocontext.ParseQueryContext(query.Context)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	size := query.Size
	if size <= 0 || size > config.Cfg.Suggest.MaxResults {
		size = config.Cfg.Suggest.MaxResults
	}

	results, err := suggest.Query(r.Context(), query.Prefix,
		qc, suggest.ExpansionTechnique(query.Technique), size)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if results == nil {
		results = []suggest.Result{}
	}

	response := map[string]interface{}{
		"prefix":  query.Prefix,
		"context": qc,
		"results": results,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HealthCheck reports readiness of the database and cache connections
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	if err := database.DB.Ping(); err != nil {
		status["status"] = "degraded"
		status["database"] = err.Error()
	}
	if err := cache.Rdb.Ping(r.Context()).Err(); err != nil {
		status["status"] = "degraded"
		status["redis"] = err.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}
