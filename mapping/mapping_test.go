package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"geosuggest/geohash"
)

func TestNewGeoContextMapping(t *testing.T) {
	m := NewGeoContextMapping("location", 4)
	assert.Equal(t, 4, m.Precision)

	// Non-positive precision falls back to the default
	m = NewGeoContextMapping("location", 0)
	assert.Equal(t, DefaultPrecision(), m.Precision)

	// Precision is clamped to the encoder's range
	m = NewGeoContextMapping("location", 40)
	assert.Equal(t, 12, m.Precision)
}

func TestSetDefaultPrecision(t *testing.T) {
	orig := DefaultPrecision()
	defer SetDefaultPrecision(orig)

	SetDefaultPrecision(4)
	assert.Equal(t, 4, DefaultPrecision())
	assert.Equal(t, 4, NewGeoContextMapping("location", 0).Precision)

	// Out-of-range values are clamped or ignored
	SetDefaultPrecision(40)
	assert.Equal(t, 12, DefaultPrecision())
	SetDefaultPrecision(0)
	assert.Equal(t, 12, DefaultPrecision())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "u4pr", Truncate("u4pruydqqvj", 4))
	assert.Equal(t, "u4pr", Truncate("u4pr", 6))
	assert.Equal(t, "u4pruy", Truncate("u4pruydqqvj", 0))
}

func TestQueryCells(t *testing.T) {
	m := NewGeoContextMapping("location", 6)

	cells := m.QueryCells("u4pruydqqvj", []int{4})
	// Main cell at the mapping precision plus the neighbour cell and its
	// eight adjacent cells.
	assert.Contains(t, cells, "u4pruy")
	assert.Contains(t, cells, "u4pr")
	assert.Len(t, cells, 10)

	seen := make(map[string]struct{})
	for _, c := range cells {
		_, dup := seen[c]
		assert.False(t, dup, "duplicate cell %s", c)
		seen[c] = struct{}{}
	}
}

func TestQueryCellsEmptyNeighbours(t *testing.T) {
	m := NewGeoContextMapping("location", 6)
	cells := m.QueryCells("u4pruydqqvj", []int{})
	assert.Equal(t, []string{"u4pruy"}, cells)
}

func TestQueryCellsNeighbourAtMappingPrecision(t *testing.T) {
	m := NewGeoContextMapping("location", 6)
	cells := m.QueryCells("u4pruydqqvj", []int{6})
	// Main cell and its eight adjacent cells, deduplicated.
	assert.Len(t, cells, 9)
	assert.Equal(t, "u4pruy", cells[0])
}

func TestIndexCells(t *testing.T) {
	m := NewGeoContextMapping("location", 6)

	p := geohash.NewPoint(57.64911, 10.40744)
	cells := m.IndexCells(p)
	assert.Len(t, cells, 1)
	assert.Equal(t, "u4pruy", cells[0])
}
