// Package geocontext normalizes the geo context attached to completion
// queries. A context may arrive as a raw geohash string, a lat/lon pair or a
// structured point object; all forms reduce to one canonical tuple of
// geohash, boost, precision and the neighbour precisions to match at.
package geocontext

import (
	"encoding/json"
	"errors"

	"geosuggest/geohash"
	"geosuggest/mapping"
)

// ErrNoGeoLocation is returned when a context is finalized without any
// location source: no geohash, no point and no complete lat/lon pair.
var ErrNoGeoLocation = errors.New("no geohash or geo point provided")

// ErrContextShape is returned when the raw context token is neither an
// object nor a string.
var ErrContextShape = errors.New("geo context must be an object or string")

// GeoQueryContext is the canonical form of a query-time geo context.
// Neighbours holds precision levels, not adjacent cells: the context also
// matches indexed cells at each listed geohash length.
type GeoQueryContext struct {
	GeoHash    string
	Boost      int
	Precision  int
	Neighbours []int
}

// NewGeoQueryContext builds a context from a point with an explicit boost,
// precision and neighbour precisions.
func NewGeoQueryContext(p geohash.Point, boost, precision int, neighbours ...int) *GeoQueryContext {
	return NewGeoHashQueryContext(p.GeoHash(), boost, precision, neighbours...)
}

// NewGeoHashQueryContext builds a context from a raw geohash string. All
// other constructors funnel into this one.
func NewGeoHashQueryContext(hash string, boost, precision int, neighbours ...int) *GeoQueryContext {
	return &GeoQueryContext{
		GeoHash:    hash,
		Boost:      boost,
		Precision:  precision,
		Neighbours: neighbours,
	}
}

// FromPoint builds a context for a point with a boost of 1 and the default
// precision.
func FromPoint(p geohash.Point) *GeoQueryContext {
	return FromPointWithBoost(p, 1)
}

// FromPointWithBoost builds a context for a point with the given boost and
// the default precision.
func FromPointWithBoost(p geohash.Point, boost int) *GeoQueryContext {
	return NewGeoQueryContext(p, boost, mapping.DefaultPrecision())
}

// FromGeoHash builds a context for a geohash with a boost of 1 and the
// default precision.
func FromGeoHash(hash string) *GeoQueryContext {
	return FromGeoHashWithBoost(hash, 1)
}

// FromGeoHashWithBoost builds a context for a geohash with the given boost
// and the default precision.
func FromGeoHashWithBoost(hash string, boost int) *GeoQueryContext {
	return NewGeoHashQueryContext(hash, boost, mapping.DefaultPrecision())
}

// contextValue is the nested object the canonical geohash is emitted under.
type contextValue struct {
	GeoHash string `json:"geohash"`
}

// wireContext fixes the field order of the serialized form; the tag names
// match the mapping package's field constants.
type wireContext struct {
	Context    contextValue `json:"context"`
	Boost      int          `json:"boost"`
	Neighbours []int        `json:"neighbours"`
	Precision  int          `json:"precision"`
}

// MarshalJSON emits the wire form consumed by the suggester: the geohash
// nested under the context key, then boost, neighbours and precision.
func (qc *GeoQueryContext) MarshalJSON() ([]byte, error) {
	neighbours := qc.Neighbours
	if neighbours == nil {
		neighbours = []int{}
	}
	return json.Marshal(wireContext{
		Context:    contextValue{GeoHash: qc.GeoHash},
		Boost:      qc.Boost,
		Neighbours: neighbours,
		Precision:  qc.Precision,
	})
}
