package kml

import (
	"github.com/dhconnelly/rtreego"
)

// Bounds is a geographic bounding box in decimal degrees.
type Bounds struct {
	MinLon float64 // Western edge
	MaxLon float64 // Eastern edge
	MinLat float64 // Southern edge
	MaxLat float64 // Northern edge
}

// Contains returns true if the point (lon, lat) is within the bounds.
func (b Bounds) Contains(lon, lat float64) bool {
	return lon >= b.MinLon && lon <= b.MaxLon &&
		lat >= b.MinLat && lat <= b.MaxLat
}

// Intersects returns true if the given bounds intersects with this bounds.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxLon < b.MinLon ||
		other.MinLon > b.MaxLon ||
		other.MaxLat < b.MinLat ||
		other.MinLat > b.MaxLat)
}

// Union returns the smallest bounds covering both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	out := b
	if other.MinLon < out.MinLon {
		out.MinLon = other.MinLon
	}
	if other.MaxLon > out.MaxLon {
		out.MaxLon = other.MaxLon
	}
	if other.MinLat < out.MinLat {
		out.MinLat = other.MinLat
	}
	if other.MaxLat > out.MaxLat {
		out.MaxLat = other.MaxLat
	}
	return out
}

// Expand returns a new Bounds expanded by the given margin in all directions.
//
// Margin is in decimal degrees.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinLon: b.MinLon - margin,
		MaxLon: b.MaxLon + margin,
		MinLat: b.MinLat - margin,
		MaxLat: b.MaxLat + margin,
	}
}

// IndexEntry is one indexed placemark with its computed geometry bounds.
type IndexEntry struct {
	Name      string
	Placemark *Placemark
	GeoBounds Bounds
}

// Bounds converts the entry's geographic bounds to an R-tree rectangle.
func (e *IndexEntry) Bounds() rtreego.Rect {
	point := rtreego.Point{e.GeoBounds.MinLon, e.GeoBounds.MinLat}

	// R-tree rectangles need non-zero dimensions; point geometries get a
	// small epsilon (~11 meters at the equator).
	const epsilon = 0.0001
	lonLength := e.GeoBounds.MaxLon - e.GeoBounds.MinLon
	latLength := e.GeoBounds.MaxLat - e.GeoBounds.MinLat
	if lonLength < epsilon {
		lonLength = epsilon
	}
	if latLength < epsilon {
		latLength = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{lonLength, latLength})
	return rect
}

// SpatialIndex answers bounding-box queries over a document's placemarks.
//
// Queries are O(log N) via an R-tree instead of O(N) linear scan, which
// matters for documents carrying tens of thousands of placemarks.
//
// Example:
//
//	idx := kml.NewSpatialIndex(file)
//	hits := idx.Search(kml.Bounds{
//	    MinLon: -122.5, MaxLon: -122.0,
//	    MinLat: 37.5, MaxLat: 38.0,
//	})
type SpatialIndex struct {
	entries []*IndexEntry
	rtree   *rtreego.Rtree
}

// NewSpatialIndex indexes every placemark in the document that carries a
// geometry with at least one coordinate. Placemarks without a locatable
// geometry are skipped.
func NewSpatialIndex(f *KMLFile) *SpatialIndex {
	var pms []*Placemark
	for _, ft := range f.Features() {
		collectPlacemarks(ft, &pms)
	}

	// 2D, min=25 children, max=50 children.
	idx := &SpatialIndex{rtree: rtreego.NewTree(2, 25, 50)}
	for _, p := range pms {
		gb, ok := geometryBounds(p.Geometry)
		if !ok {
			continue
		}
		entry := &IndexEntry{
			Name:      derefString(p.Name),
			Placemark: p,
			GeoBounds: gb,
		}
		idx.entries = append(idx.entries, entry)
		idx.rtree.Insert(entry)
	}
	return idx
}

// Search returns the placemarks whose geometry bounds intersect b, in no
// particular order.
func (idx *SpatialIndex) Search(b Bounds) []*Placemark {
	if idx.rtree == nil {
		return idx.searchLinear(b)
	}

	point := rtreego.Point{b.MinLon, b.MinLat}
	lengths := []float64{b.MaxLon - b.MinLon, b.MaxLat - b.MinLat}
	const epsilon = 0.0001
	if lengths[0] < epsilon {
		lengths[0] = epsilon
	}
	if lengths[1] < epsilon {
		lengths[1] = epsilon
	}
	queryRect, _ := rtreego.NewRect(point, lengths)

	spatials := idx.rtree.SearchIntersect(queryRect)
	result := make([]*Placemark, 0, len(spatials))
	for _, spatial := range spatials {
		result = append(result, spatial.(*IndexEntry).Placemark)
	}
	return result
}

func (idx *SpatialIndex) searchLinear(b Bounds) []*Placemark {
	var result []*Placemark
	for _, e := range idx.entries {
		if b.Intersects(e.GeoBounds) {
			result = append(result, e.Placemark)
		}
	}
	return result
}

// Count returns the number of indexed placemarks.
func (idx *SpatialIndex) Count() int {
	return len(idx.entries)
}

// Bounds returns the union of all indexed placemark bounds.
func (idx *SpatialIndex) Bounds() Bounds {
	if len(idx.entries) == 0 {
		return Bounds{}
	}
	b := idx.entries[0].GeoBounds
	for i := 1; i < len(idx.entries); i++ {
		b = b.Union(idx.entries[i].GeoBounds)
	}
	return b
}

// All returns every index entry.
func (idx *SpatialIndex) All() []*IndexEntry {
	return idx.entries
}

// geometryBounds computes the bounding box of a geometry. ok is false when
// the geometry is nil or has no coordinates anywhere.
func geometryBounds(g Geometry) (Bounds, bool) {
	switch g := g.(type) {
	case *Point:
		if g.Coordinates == nil {
			return Bounds{}, false
		}
		c := *g.Coordinates
		return Bounds{MinLon: c.Lon, MaxLon: c.Lon, MinLat: c.Lat, MaxLat: c.Lat}, true
	case *LineString:
		return coordsBounds(g.Coordinates)
	case *LinearRing:
		return coordsBounds(g.Coordinates)
	case *Polygon:
		var b Bounds
		ok := false
		if g.OuterBoundary != nil {
			b, ok = coordsBounds(g.OuterBoundary.Coordinates)
		}
		for _, ring := range g.InnerBoundaries {
			if rb, rok := coordsBounds(ring.Coordinates); rok {
				if ok {
					b = b.Union(rb)
				} else {
					b, ok = rb, true
				}
			}
		}
		return b, ok
	case *MultiGeometry:
		var b Bounds
		ok := false
		for _, sub := range g.Geometries {
			if sb, sok := geometryBounds(sub); sok {
				if ok {
					b = b.Union(sb)
				} else {
					b, ok = sb, true
				}
			}
		}
		return b, ok
	case *Model:
		if g.Location == nil || g.Location.Longitude == nil || g.Location.Latitude == nil {
			return Bounds{}, false
		}
		lon, lat := *g.Location.Longitude, *g.Location.Latitude
		return Bounds{MinLon: lon, MaxLon: lon, MinLat: lat, MaxLat: lat}, true
	case *GxTrack:
		return coordsBounds(g.Coords)
	case *GxMultiTrack:
		var b Bounds
		ok := false
		for _, t := range g.Tracks {
			if tb, tok := coordsBounds(t.Coords); tok {
				if ok {
					b = b.Union(tb)
				} else {
					b, ok = tb, true
				}
			}
		}
		return b, ok
	}
	return Bounds{}, false
}

func coordsBounds(coords Coordinates) (Bounds, bool) {
	if len(coords) == 0 {
		return Bounds{}, false
	}
	b := Bounds{
		MinLon: coords[0].Lon, MaxLon: coords[0].Lon,
		MinLat: coords[0].Lat, MaxLat: coords[0].Lat,
	}
	for _, c := range coords[1:] {
		if c.Lon < b.MinLon {
			b.MinLon = c.Lon
		}
		if c.Lon > b.MaxLon {
			b.MaxLon = c.Lon
		}
		if c.Lat < b.MinLat {
			b.MinLat = c.Lat
		}
		if c.Lat > b.MaxLat {
			b.MaxLat = c.Lat
		}
	}
	return b, true
}
