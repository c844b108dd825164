package models

// Suggestion is one completion entry with its location context. Geohash is
// derived from the coordinates at the configured index precision.
type Suggestion struct {
	ID        int64   `json:"id"`
	Text      string  `json:"text"`
	Weight    int     `json:"weight"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Geohash   string  `json:"geohash"`
}
