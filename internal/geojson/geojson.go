// Package geojson decodes RFC 7946 GeoJSON documents into render-ready features.
package geojson

// GeometryType represents the type of a GeoJSON geometry.
type GeometryType int

const (
	// GeometryTypeUnknown is the zero value, never produced by a successful decode.
	GeometryTypeUnknown GeometryType = iota

	// GeometryTypePoint represents a single point location.
	GeometryTypePoint

	// GeometryTypeMultiPoint represents a set of point locations.
	GeometryTypeMultiPoint

	// GeometryTypeLineString represents a line composed of connected points.
	GeometryTypeLineString

	// GeometryTypeMultiLineString represents a set of lines.
	GeometryTypeMultiLineString

	// GeometryTypePolygon represents a closed area with optional holes.
	GeometryTypePolygon

	// GeometryTypeMultiPolygon represents a set of polygons.
	GeometryTypeMultiPolygon
)

// String returns the GeoJSON name of the geometry type.
func (g GeometryType) String() string {
	switch g {
	case GeometryTypePoint:
		return "Point"
	case GeometryTypeMultiPoint:
		return "MultiPoint"
	case GeometryTypeLineString:
		return "LineString"
	case GeometryTypeMultiLineString:
		return "MultiLineString"
	case GeometryTypePolygon:
		return "Polygon"
	case GeometryTypeMultiPolygon:
		return "MultiPolygon"
	default:
		return "Unknown"
	}
}

// Geometry is a decoded GeoJSON geometry.
//
// Coordinates follow the GeoJSON convention: [longitude, latitude] pairs, with an
// optional third element (elevation) that is preserved but never interpreted.
// Exactly one of Points, Lines, or Polygons is populated, depending on Type:
//
//	Point, MultiPoint           -> Points
//	LineString, MultiLineString -> Lines
//	Polygon, MultiPolygon       -> Polygons
type Geometry struct {
	Type GeometryType

	// Points contains [lon, lat] pairs for point geometries.
	Points [][]float64

	// Lines contains one coordinate sequence per line.
	Lines [][][]float64

	// Polygons contains one entry per polygon; each polygon is a list of rings
	// (exterior first), and each ring is a closed coordinate sequence.
	Polygons [][][][]float64
}

// Feature is a decoded GeoJSON feature: geometry plus free-form properties.
type Feature struct {
	ID         string
	Geometry   Geometry
	Properties map[string]interface{}
}

// FeatureCollection is an ordered set of decoded features.
type FeatureCollection struct {
	Features []Feature
}

// EachPath calls fn once for every coordinate sequence in the geometry: each
// line of a line geometry, each ring of a polygon, and a 1-element sequence
// per point. Iteration order is the document order.
func (g *Geometry) EachPath(fn func(coords [][]float64)) {
	switch g.Type {
	case GeometryTypePoint, GeometryTypeMultiPoint:
		for _, pt := range g.Points {
			fn([][]float64{pt})
		}
	case GeometryTypeLineString, GeometryTypeMultiLineString:
		for _, line := range g.Lines {
			fn(line)
		}
	case GeometryTypePolygon, GeometryTypeMultiPolygon:
		for _, poly := range g.Polygons {
			for _, ring := range poly {
				fn(ring)
			}
		}
	}
}

// Bounds returns the minimum bounding box of the geometry in decimal degrees.
// ok is false when the geometry contains no coordinates.
func (g *Geometry) Bounds() (minLon, minLat, maxLon, maxLat float64, ok bool) {
	first := true
	g.EachPath(func(coords [][]float64) {
		for _, c := range coords {
			if len(c) < 2 {
				continue
			}
			lon, lat := c[0], c[1]
			if first {
				minLon, maxLon = lon, lon
				minLat, maxLat = lat, lat
				first = false
				continue
			}
			if lon < minLon {
				minLon = lon
			}
			if lon > maxLon {
				maxLon = lon
			}
			if lat < minLat {
				minLat = lat
			}
			if lat > maxLat {
				maxLat = lat
			}
		}
	})
	return minLon, minLat, maxLon, maxLat, !first
}
