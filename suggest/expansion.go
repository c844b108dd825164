package suggest

import (
	"context"
	"encoding/json"
	"errors"

	"geosuggest/cache"
	"geosuggest/geocontext"
	"geosuggest/geohash"
	"geosuggest/models"
)

// ExpansionTechnique selects how a query context widens into a candidate
// pool before prefix filtering.
type ExpansionTechnique string

const (
	// CellExpansion unions the redis sets of the cells the context's
	// neighbour precisions expand to.
	CellExpansion ExpansionTechnique = "cells"
	// SpatialExpansion queries the in-memory R-tree around the context's
	// point, doubling the radius until something is found.
	SpatialExpansion ExpansionTechnique = "spatial"
)

var defaultTechnique = CellExpansion

// SetDefaultTechnique sets the technique used when a query does not name one.
func SetDefaultTechnique(technique ExpansionTechnique) {
	defaultTechnique = technique
}

const (
	spatialStartRadius = 0.01 // degrees
	spatialMaxRetries  = 8
)

// Candidates gathers the raw suggestion pool for a normalized context.
func Candidates(ctx context.Context, qc *geocontext.GeoQueryContext, technique ExpansionTechnique) ([]models.Suggestion, error) {
	if technique == "" {
		technique = defaultTechnique
	}
	switch technique {
	case CellExpansion:
		return cellCandidates(ctx, qc)
	case SpatialExpansion:
		return spatialCandidates(qc)
	default:
		return nil, errors.New("unsupported expansion technique")
	}
}

func cellCandidates(ctx context.Context, qc *geocontext.GeoQueryContext) ([]models.Suggestion, error) {
	cells := indexMapping.QueryCells(qc.GeoHash, qc.Neighbours)
	seen := make(map[int64]struct{})
	var candidates []models.Suggestion

	for _, cell := range cells {
		members, err := cache.Rdb.SMembers(ctx, cellKey(cell)).Result()
		if err != nil {
			continue
		}
		for _, member := range members {
			var s models.Suggestion
			if err := json.Unmarshal([]byte(member), &s); err != nil {
				continue
			}
			if _, dup := seen[s.ID]; dup {
				continue
			}
			seen[s.ID] = struct{}{}
			candidates = append(candidates, s)
		}
	}
	return candidates, nil
}

func spatialCandidates(qc *geocontext.GeoQueryContext) ([]models.Suggestion, error) {
	lat, lon := geohash.DecodeCenter(qc.GeoHash)

	radius := spatialStartRadius
	for i := 0; i < spatialMaxRetries; i++ {
		if found := searchSpatial(lat, lon, radius); len(found) > 0 {
			return found, nil
		}
		radius *= 2 // Increase the search radius for the next retry
	}
	return nil, nil
}
