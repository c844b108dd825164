package suggest

import (
	"sync"

	"github.com/dhconnelly/rtreego"

	"geosuggest/models"
)

// spatialEntry wraps a suggestion to satisfy the rtreego.Spatial interface.
type spatialEntry struct {
	s models.Suggestion
}

var _ rtreego.Spatial = spatialEntry{}

// Bounds returns a small rectangle around the suggestion's location.
func (e spatialEntry) Bounds() rtreego.Rect {
	zeroDistance := 0.0001 // A very small distance to represent the bounding box
	point := rtreego.Point{e.s.Latitude, e.s.Longitude}
	return point.ToRect(zeroDistance)
}

var (
	spatialTree *rtreego.Rtree
	spatialLock sync.Mutex
)

// InitSpatialIndex resets the in-memory R-tree used for spatial expansion.
func InitSpatialIndex() {
	spatialLock.Lock()
	defer spatialLock.Unlock()
	spatialTree = rtreego.NewTree(2, 25, 50)
}

func insertSpatial(s models.Suggestion) {
	spatialLock.Lock()
	defer spatialLock.Unlock()
	if spatialTree == nil {
		return
	}
	spatialTree.Insert(spatialEntry{s: s})
}

func removeSpatial(s models.Suggestion) {
	spatialLock.Lock()
	defer spatialLock.Unlock()
	if spatialTree == nil {
		return
	}
	spatialTree.Delete(spatialEntry{s: s})
}

// searchSpatial returns the suggestions within radius degrees of a point.
func searchSpatial(lat, lon, radius float64) []models.Suggestion {
	spatialLock.Lock()
	defer spatialLock.Unlock()
	if spatialTree == nil {
		return nil
	}
	point := rtreego.Point{lat, lon}
	var out []models.Suggestion
	for _, item := range spatialTree.SearchIntersect(point.ToRect(radius)) {
		if entry, ok := item.(spatialEntry); ok {
			out = append(out, entry.s)
		}
	}
	return out
}
