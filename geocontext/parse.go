package geocontext

import (
	"geosuggest/geohash"
	"geosuggest/mapping"

	"github.com/tidwall/gjson"
)

// fieldHandler applies one recognized wire-format field to the builder.
type fieldHandler func(b *Builder, value gjson.Result) error

// geoContextFields is the field-dispatch table for the object form. It is
// built once at package init and read-only afterwards, so concurrent parses
// need no synchronization.
var geoContextFields = map[string]fieldHandler{
	mapping.FieldContext: func(b *Builder, value gjson.Result) error {
		if value.Type == gjson.String {
			b.GeoHash(value.String())
			return nil
		}
		p, err := geohash.ParsePoint(value)
		if err != nil {
			return err
		}
		b.Point(p)
		return nil
	},
	mapping.FieldBoost: func(b *Builder, value gjson.Result) error {
		b.Boost(int(value.Int()))
		return nil
	},
	mapping.FieldPrecision: func(b *Builder, value gjson.Result) error {
		b.Precision(int(value.Int()))
		return nil
	},
	mapping.FieldNeighbours: func(b *Builder, value gjson.Result) error {
		elems := value.Array()
		neighbours := make([]int, 0, len(elems))
		for _, e := range elems {
			neighbours = append(neighbours, int(e.Int()))
		}
		b.Neighbours(neighbours)
		return nil
	},
	mapping.FieldLat: func(b *Builder, value gjson.Result) error {
		b.Lat(value.Float())
		return nil
	},
	mapping.FieldLon: func(b *Builder, value gjson.Result) error {
		b.Lon(value.Float())
		return nil
	},
}

// Parse reads one JSON token and returns the normalized context. An object
// is read through the field table with unknown fields ignored; a bare string
// is taken directly as a geohash; any other shape is rejected with
// ErrContextShape. The result is always finalized before it is returned.
func Parse(res gjson.Result) (*GeoQueryContext, error) {
	b := NewBuilder()
	switch {
	case res.IsObject():
		var fieldErr error
		res.ForEach(func(key, value gjson.Result) bool {
			handler, ok := geoContextFields[key.String()]
			if !ok {
				return true
			}
			if err := handler(b, value); err != nil {
				fieldErr = err
				return false
			}
			return true
		})
		if fieldErr != nil {
			return nil, fieldErr
		}
	case res.Type == gjson.String:
		p, err := geohash.FromGeoHash(res.String())
		if err != nil {
			return nil, err
		}
		b.Point(p)
	default:
		return nil, ErrContextShape
	}
	return b.Finish()
}

// ParseQueryContext parses a raw JSON document holding a single geo context.
func ParseQueryContext(raw []byte) (*GeoQueryContext, error) {
	return Parse(gjson.ParseBytes(raw))
}
