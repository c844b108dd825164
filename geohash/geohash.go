package geohash

import (
	"github.com/mmcloughlin/geohash"
)

// MaxPrecision is the longest cell string the encoder produces.
const MaxPrecision = 12

// Encode coordinates into a geohash with specified precision.
func Encode(lat, lon float64, precision uint) string {
	return geohash.EncodeWithPrecision(lat, lon, precision)
}

// GetNeighbors returns the geohashes of neighboring cells.
func GetNeighbors(hash string) []string {
	neighbors := geohash.Neighbors(hash)
	return neighbors
}

// Valid reports whether s is a well-formed geohash string.
func Valid(s string) bool {
	return s != "" && geohash.Validate(s) == nil
}

// DecodeCenter returns the center coordinates of a geohash cell.
func DecodeCenter(hash string) (lat, lon float64) {
	return geohash.DecodeCenter(hash)
}
