package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"geosuggest/cache"
	"geosuggest/geocontext"
	"geosuggest/geohash"
	"geosuggest/mapping"
	"geosuggest/models"
)

var indexMapping = mapping.NewGeoContextMapping("location", mapping.DefaultPrecision())

// SetIndexPrecision reconfigures the cell length suggestions are indexed at.
func SetIndexPrecision(precision int) {
	indexMapping = mapping.NewGeoContextMapping("location", precision)
}

// IndexPrecision returns the cell length suggestions are indexed at.
func IndexPrecision() int {
	return indexMapping.Precision
}

func cellKey(cell string) string {
	return fmt.Sprintf("suggest:%s", cell)
}

// Index stores a suggestion in the redis set of every cell its location maps
// to and registers it in the spatial index.
func Index(ctx context.Context, s models.Suggestion) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	p := geohash.NewPoint(s.Latitude, s.Longitude)
	for _, cell := range indexMapping.IndexCells(p) {
		if err := cache.Rdb.SAdd(ctx, cellKey(cell), payload).Err(); err != nil {
			return fmt.Errorf("failed to index suggestion %d in cell %s: %w", s.ID, cell, err)
		}
	}
	insertSpatial(s)
	return nil
}

// Remove drops a suggestion from its cell sets and the spatial index.
func Remove(ctx context.Context, s models.Suggestion) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	p := geohash.NewPoint(s.Latitude, s.Longitude)
	for _, cell := range indexMapping.IndexCells(p) {
		if err := cache.Rdb.SRem(ctx, cellKey(cell), payload).Err(); err != nil {
			return fmt.Errorf("failed to remove suggestion %d from cell %s: %w", s.ID, cell, err)
		}
	}
	removeSpatial(s)
	return nil
}

// Result is one scored completion.
type Result struct {
	Suggestion models.Suggestion `json:"suggestion"`
	Score      int               `json:"score"`
}

// Query returns suggestions whose text completes prefix, restricted to the
// candidates the geo context expands to and scored by weight times boost.
func Query(ctx context.Context, prefix string, qc *geocontext.GeoQueryContext, technique ExpansionTechnique, limit int) ([]Result, error) {
	candidates, err := Candidates(ctx, qc, technique)
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, s := range candidates {
		if !matchesPrefix(s.Text, prefix) {
			continue
		}
		results = append(results, Result{Suggestion: s, Score: score(s, qc)})
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Suggestion.Text < results[j].Suggestion.Text
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func matchesPrefix(text, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(text), strings.ToLower(prefix))
}

func score(s models.Suggestion, qc *geocontext.GeoQueryContext) int {
	weight := s.Weight
	if weight == 0 {
		weight = 1
	}
	return weight * qc.Boost
}
