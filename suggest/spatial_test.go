package suggest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geosuggest/geocontext"
	"geosuggest/models"
)

func seedSpatial(t *testing.T, entries ...models.Suggestion) {
	t.Helper()
	InitSpatialIndex()
	for _, s := range entries {
		insertSpatial(s)
	}
}

func TestSearchSpatial(t *testing.T) {
	near := models.Suggestion{ID: 1, Text: "Cafe Aurora", Weight: 2, Latitude: 57.6491, Longitude: 10.4074}
	far := models.Suggestion{ID: 2, Text: "Cafe Borealis", Weight: 1, Latitude: 40.0, Longitude: -70.0}
	seedSpatial(t, near, far)

	found := searchSpatial(57.649, 10.407, 0.01)
	require.Len(t, found, 1)
	assert.Equal(t, int64(1), found[0].ID)

	// A wide enough search sees both
	found = searchSpatial(50.0, -30.0, 60.0)
	assert.Len(t, found, 2)
}

func TestRemoveSpatial(t *testing.T) {
	s := models.Suggestion{ID: 1, Text: "Cafe Aurora", Latitude: 57.6491, Longitude: 10.4074}
	seedSpatial(t, s)

	removeSpatial(s)
	assert.Empty(t, searchSpatial(57.649, 10.407, 0.01))
}

func TestQuerySpatialExpansion(t *testing.T) {
	seedSpatial(t,
		models.Suggestion{ID: 1, Text: "Cafe Aurora", Weight: 2, Latitude: 57.6491, Longitude: 10.4074},
		models.Suggestion{ID: 2, Text: "Cafe Nordkap", Weight: 5, Latitude: 57.6492, Longitude: 10.4075},
		models.Suggestion{ID: 3, Text: "Bakery Skagen", Weight: 9, Latitude: 57.6493, Longitude: 10.4076},
		models.Suggestion{ID: 4, Text: "Cafe Borealis", Weight: 9, Latitude: 40.0, Longitude: -70.0},
	)

	qc, err := geocontext.NewBuilder().Lat(57.6491).Lon(10.4074).Boost(3).Finish()
	require.NoError(t, err)

	results, err := Query(context.Background(), "cafe", qc, SpatialExpansion, 10)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Sorted by weight * boost, highest first
	assert.Equal(t, "Cafe Nordkap", results[0].Suggestion.Text)
	assert.Equal(t, 15, results[0].Score)
	assert.Equal(t, "Cafe Aurora", results[1].Suggestion.Text)
	assert.Equal(t, 6, results[1].Score)
}

func TestQuerySpatialExpansionLimit(t *testing.T) {
	seedSpatial(t,
		models.Suggestion{ID: 1, Text: "Cafe Aurora", Weight: 1, Latitude: 57.6491, Longitude: 10.4074},
		models.Suggestion{ID: 2, Text: "Cafe Nordkap", Weight: 2, Latitude: 57.6492, Longitude: 10.4075},
		models.Suggestion{ID: 3, Text: "Cafe Polaris", Weight: 3, Latitude: 57.6493, Longitude: 10.4076},
	)

	qc, err := geocontext.NewBuilder().Lat(57.6491).Lon(10.4074).Finish()
	require.NoError(t, err)

	results, err := Query(context.Background(), "cafe", qc, SpatialExpansion, 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "Cafe Polaris", results[0].Suggestion.Text)
}

func TestQueryUsesDefaultTechnique(t *testing.T) {
	seedSpatial(t,
		models.Suggestion{ID: 1, Text: "Cafe Aurora", Weight: 2, Latitude: 57.6491, Longitude: 10.4074},
	)

	SetDefaultTechnique(SpatialExpansion)
	defer SetDefaultTechnique(CellExpansion)

	qc, err := geocontext.NewBuilder().Lat(57.6491).Lon(10.4074).Finish()
	require.NoError(t, err)

	// An unnamed technique falls back to the configured default
	results, err := Query(context.Background(), "cafe", qc, "", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Cafe Aurora", results[0].Suggestion.Text)
}

func TestQueryUnsupportedTechnique(t *testing.T) {
	qc, err := geocontext.NewBuilder().GeoHash("u4pruydqqvj").Finish()
	require.NoError(t, err)

	_, err = Query(context.Background(), "cafe", qc, ExpansionTechnique("voronoi"), 10)
	assert.Error(t, err)
}

func TestQuerySpatialExpansionNothingNearby(t *testing.T) {
	InitSpatialIndex()

	qc, err := geocontext.NewBuilder().Lat(57.6491).Lon(10.4074).Finish()
	require.NoError(t, err)

	results, err := Query(context.Background(), "cafe", qc, SpatialExpansion, 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMatchesPrefix(t *testing.T) {
	assert.True(t, matchesPrefix("Cafe Aurora", "cafe"))
	assert.True(t, matchesPrefix("cafe aurora", "CAFE"))
	assert.True(t, matchesPrefix("Cafe Aurora", ""))
	assert.False(t, matchesPrefix("Bakery", "cafe"))
}

func TestScoreDefaultsWeight(t *testing.T) {
	qc := &geocontext.GeoQueryContext{Boost: 4}
	assert.Equal(t, 4, score(models.Suggestion{}, qc))
	assert.Equal(t, 12, score(models.Suggestion{Weight: 3}, qc))
}
