// Package mapping holds the geo context mapping configuration shared between
// index time and query time: the wire-format field names, the default cell
// precision, and the expansion of a context into matchable cells.
package mapping

import (
	"geosuggest/geohash"
)

// defaultPrecision is set once at startup and read-only afterwards.
var defaultPrecision = 6

// DefaultPrecision returns the geohash string length used when neither the
// mapping nor the query context specifies one.
func DefaultPrecision() int {
	return defaultPrecision
}

// SetDefaultPrecision overrides the default cell precision from
// configuration; values outside the encoder's range are clamped.
func SetDefaultPrecision(precision int) {
	if precision <= 0 {
		return
	}
	if precision > geohash.MaxPrecision {
		precision = geohash.MaxPrecision
	}
	defaultPrecision = precision
}

// Wire-format field names recognized by the geo context parser and emitted
// by its serializer.
const (
	FieldContext    = "context"
	FieldBoost      = "boost"
	FieldNeighbours = "neighbours"
	FieldPrecision  = "precision"
	FieldLat        = "lat"
	FieldLon        = "lon"
	FieldGeoHash    = "geohash"
)

// GeoContextMapping describes one named geo context attached to the
// suggestion index.
type GeoContextMapping struct {
	Name      string
	Precision int
}

// NewGeoContextMapping returns a mapping with the precision clamped to the
// encoder's valid range; non-positive values fall back to DefaultPrecision.
func NewGeoContextMapping(name string, precision int) GeoContextMapping {
	if precision <= 0 {
		precision = DefaultPrecision()
	}
	if precision > geohash.MaxPrecision {
		precision = geohash.MaxPrecision
	}
	return GeoContextMapping{Name: name, Precision: precision}
}

// IndexCells returns the cell prefixes an indexed point is stored under.
func (m GeoContextMapping) IndexCells(p geohash.Point) []string {
	return []string{p.GeoHashWithPrecision(m.Precision)}
}

// QueryCells expands a normalized query context into the cells to look up:
// the context's cell at the mapping precision, plus, for every neighbour
// precision, the cell truncated to that length together with its eight
// surrounding cells. Duplicates are dropped, order is preserved.
func (m GeoContextMapping) QueryCells(hash string, neighbours []int) []string {
	seen := make(map[string]struct{})
	var cells []string
	add := func(c string) {
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		cells = append(cells, c)
	}

	add(Truncate(hash, m.Precision))
	for _, np := range neighbours {
		cell := Truncate(hash, np)
		add(cell)
		for _, n := range geohash.GetNeighbors(cell) {
			add(n)
		}
	}
	return cells
}

// Truncate shortens a geohash to the given precision; hashes already shorter
// are returned whole.
func Truncate(hash string, precision int) string {
	if precision <= 0 {
		precision = DefaultPrecision()
	}
	if precision >= len(hash) {
		return hash
	}
	return hash[:precision]
}
