package geohash

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmcloughlin/geohash"
	"github.com/tidwall/gjson"
)

// Point is a geographic coordinate pair. A point built from a geohash string
// keeps that string, so GeoHash returns the original cell identifier instead
// of a re-encoded one.
type Point struct {
	Lat float64
	Lon float64

	hash string
}

// NewPoint returns a point for the given coordinates.
func NewPoint(lat, lon float64) Point {
	return Point{Lat: lat, Lon: lon}
}

// FromGeoHash decodes a geohash string into the center point of its cell,
// retaining the string as the point's canonical hash.
func FromGeoHash(s string) (Point, error) {
	if err := geohash.Validate(s); err != nil {
		return Point{}, fmt.Errorf("invalid geohash %q: %w", s, err)
	}
	lat, lon := geohash.DecodeCenter(s)
	return Point{Lat: lat, Lon: lon, hash: s}, nil
}

// GeoHash returns the cell identifier of the point: the retained source
// string when the point came from one, otherwise the coordinates encoded at
// maximum precision.
func (p Point) GeoHash() string {
	if p.hash != "" {
		return p.hash
	}
	return geohash.EncodeWithPrecision(p.Lat, p.Lon, MaxPrecision)
}

// GeoHashWithPrecision returns the cell identifier truncated or encoded to
// the given string length.
func (p Point) GeoHashWithPrecision(precision int) string {
	if precision <= 0 || precision > MaxPrecision {
		precision = MaxPrecision
	}
	if p.hash != "" {
		if precision >= len(p.hash) {
			return p.hash
		}
		return p.hash[:precision]
	}
	return geohash.EncodeWithPrecision(p.Lat, p.Lon, uint(precision))
}

// ParsePoint reads a point from any of its accepted wire forms: an object
// with lat/lon or a geohash field, a "lat,lon" string, a bare geohash
// string, or a [lon, lat] array.
func ParsePoint(res gjson.Result) (Point, error) {
	switch {
	case res.IsObject():
		if gh := res.Get("geohash"); gh.Exists() {
			return FromGeoHash(gh.String())
		}
		lat := res.Get("lat")
		lon := res.Get("lon")
		if !lat.Exists() || !lon.Exists() {
			return Point{}, fmt.Errorf("geo point expected lat and lon fields")
		}
		return NewPoint(lat.Float(), lon.Float()), nil
	case res.IsArray():
		coords := res.Array()
		if len(coords) != 2 {
			return Point{}, fmt.Errorf("geo point array must be [lon, lat]")
		}
		return NewPoint(coords[1].Float(), coords[0].Float()), nil
	case res.Type == gjson.String:
		s := strings.TrimSpace(res.String())
		if strings.Contains(s, ",") {
			return parseLatLonString(s)
		}
		return FromGeoHash(s)
	}
	return Point{}, fmt.Errorf("geo point must be an object, array or string")
}

func parseLatLonString(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("geo point string must be \"lat,lon\"")
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}
	return NewPoint(lat, lon), nil
}
