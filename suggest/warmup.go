package suggest

import (
	"context"
	"log"

	"geosuggest/database"
	"geosuggest/models"
)

// WarmUp rebuilds the redis cell sets and the spatial index from the
// suggestions table.
func WarmUp(ctx context.Context) error {
	rows, err := database.DB.Query(
		`SELECT id, text, weight, latitude, longitude, geohash FROM suggestions`)
	if err != nil {
		return err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var s models.Suggestion
		if err := rows.Scan(&s.ID, &s.Text, &s.Weight, &s.Latitude, &s.Longitude, &s.Geohash); err != nil {
			return err
		}
		if err := Index(ctx, s); err != nil {
			return err
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}
	log.Printf("Warmed up suggestion index with %d entries", count)
	return nil
}
