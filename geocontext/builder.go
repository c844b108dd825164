package geocontext

import (
	"math"

	"geosuggest/geohash"
	"geosuggest/mapping"
)

// Builder assembles a GeoQueryContext field by field. Setters perform no
// cross-validation; everything is checked once in Finish. The point and
// geohash setters overwrite each other, so the last location written wins.
type Builder struct {
	boost         int
	boostSet      bool
	precision     int
	precisionSet  bool
	neighbours    []int
	neighboursSet bool
	point         *geohash.Point
	geoHash       string
	lat           float64
	lon           float64
}

// NewBuilder returns a builder with all fields unset; lat and lon start at
// NaN so a half-supplied pair is detectable.
func NewBuilder() *Builder {
	return &Builder{lat: math.NaN(), lon: math.NaN()}
}

// Boost sets the relevance multiplier.
func (b *Builder) Boost(boost int) *Builder {
	b.boost = boost
	b.boostSet = true
	return b
}

// Precision sets the target geohash length.
func (b *Builder) Precision(precision int) *Builder {
	b.precision = precision
	b.precisionSet = true
	return b
}

// Neighbours sets the precision levels to match at. An explicitly empty
// slice is kept empty and not re-defaulted by Finish.
func (b *Builder) Neighbours(neighbours []int) *Builder {
	b.neighbours = neighbours
	b.neighboursSet = true
	return b
}

// Point sets the location from a resolved point, displacing any geohash set
// earlier.
func (b *Builder) Point(p geohash.Point) *Builder {
	b.point = &p
	b.geoHash = ""
	return b
}

// GeoHash sets the location from a raw cell string, displacing any point set
// earlier.
func (b *Builder) GeoHash(hash string) *Builder {
	b.geoHash = hash
	b.point = nil
	return b
}

// Lat sets a bare latitude, paired with Lon at Finish time.
func (b *Builder) Lat(lat float64) *Builder {
	b.lat = lat
	return b
}

// Lon sets a bare longitude, paired with Lat at Finish time.
func (b *Builder) Lon(lon float64) *Builder {
	b.lon = lon
	return b
}

// Finish resolves the canonical geohash and neighbour set. Exactly one of
// point, geohash or the lat/lon pair must have supplied the location;
// otherwise ErrNoGeoLocation is returned.
func (b *Builder) Finish() (*GeoQueryContext, error) {
	point := b.point
	if point == nil {
		switch {
		case b.geoHash != "":
			p, err := geohash.FromGeoHash(b.geoHash)
			if err != nil {
				return nil, err
			}
			point = &p
		case !math.IsNaN(b.lat) && !math.IsNaN(b.lon):
			p := geohash.NewPoint(b.lat, b.lon)
			point = &p
		default:
			return nil, ErrNoGeoLocation
		}
	}

	qc := &GeoQueryContext{
		GeoHash:   point.GeoHash(),
		Boost:     1,
		Precision: mapping.DefaultPrecision(),
	}
	if b.boostSet {
		qc.Boost = b.boost
	}
	if b.precisionSet {
		qc.Precision = b.precision
	}
	if b.neighboursSet {
		qc.Neighbours = b.neighbours
	} else {
		qc.Neighbours = []int{qc.Precision}
	}
	return qc, nil
}
