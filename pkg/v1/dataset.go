package geodeck

import (
	"github.com/geodeck/geodeck/internal/geojson"
)

// GeometryType represents the type of a feature geometry.
type GeometryType int

const (
	// GeometryTypePoint represents one or more point locations.
	GeometryTypePoint GeometryType = iota

	// GeometryTypeLineString represents one or more polylines.
	GeometryTypeLineString

	// GeometryTypePolygon represents one or more closed areas.
	GeometryTypePolygon
)

// String returns the string representation of the geometry type.
func (g GeometryType) String() string {
	switch g {
	case GeometryTypePoint:
		return "Point"
	case GeometryTypeLineString:
		return "LineString"
	case GeometryTypePolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// Geometry represents the spatial representation of a feature.
//
// Coordinates follow GeoJSON convention: longitude before latitude, in WGS-84
// decimal degrees. Multi-geometries are flattened: a MultiPolygon becomes a
// polygon geometry with several ring groups.
type Geometry struct {
	// Type indicates the geometry type (Point, LineString, or Polygon).
	Type GeometryType

	// Points contains point locations (Point geometries only).
	Points []Coordinate

	// Paths contains polylines (LineString geometries only).
	Paths []Path

	// Rings contains one entry per polygon, each a list of closed rings with the
	// exterior ring first (Polygon geometries only).
	Rings [][]Path
}

// eachPath visits every coordinate sequence in the geometry.
func (g *Geometry) eachPath(fn func(Path)) {
	switch g.Type {
	case GeometryTypePoint:
		for _, pt := range g.Points {
			fn(Path{pt})
		}
	case GeometryTypeLineString:
		for _, p := range g.Paths {
			fn(p)
		}
	case GeometryTypePolygon:
		for _, rings := range g.Rings {
			for _, ring := range rings {
				fn(ring)
			}
		}
	}
}

// Feature represents a geographic object from a dataset.
//
// Access feature data via methods:
//   - ID() returns the identifier from the source document (may be empty)
//   - Geometry() returns the spatial representation
//   - Properties() returns all properties
//   - Property(name) returns a specific property value
type Feature struct {
	id         string
	geometry   Geometry
	properties map[string]interface{}
}

// ID returns the feature identifier from the source document.
func (f *Feature) ID() string {
	return f.id
}

// Geometry returns the spatial representation of the feature.
func (f *Feature) Geometry() Geometry {
	return f.geometry
}

// Properties returns all feature properties as a map.
func (f *Feature) Properties() map[string]interface{} {
	return f.properties
}

// Property returns a specific property value by name.
//
// Returns the value and true if the property exists, or nil and false if not.
func (f *Feature) Property(name string) (interface{}, bool) {
	val, ok := f.properties[name]
	return val, ok
}

// Dataset represents a loaded geographic dataset.
//
// A dataset contains an ordered collection of features plus a spatial index for
// viewport queries. All fields are private to maintain encapsulation.
type Dataset struct {
	name         string
	features     []Feature
	spatialIndex *spatialIndex
	bounds       Bounds
}

// spatialIndex provides fast spatial queries using per-feature bounds.
type spatialIndex struct {
	features []Feature
	bounds   []Bounds
}

// Name returns the dataset name (source path or URL by default).
func (d *Dataset) Name() string {
	return d.name
}

// Features returns all features in the dataset.
func (d *Dataset) Features() []Feature {
	return d.features
}

// FeatureCount returns the number of features in the dataset.
func (d *Dataset) FeatureCount() int {
	return len(d.features)
}

// Bounds returns the geographic coverage area of the dataset.
//
// This is the minimum bounding box containing all features.
func (d *Dataset) Bounds() Bounds {
	return d.bounds
}

// FeaturesInBounds returns all features that intersect the given bounding box.
//
// This is the primary method for viewport-based rendering: only features that
// could be visible in the viewport are returned.
//
// Example:
//
//	viewport := geodeck.Bounds{
//	    MinLon: -71.5, MaxLon: -71.0,
//	    MinLat: 42.0, MaxLat: 42.5,
//	}
//	visible := dataset.FeaturesInBounds(viewport)
func (d *Dataset) FeaturesInBounds(bounds Bounds) []Feature {
	if d.spatialIndex == nil {
		return d.featuresInBoundsLinear(bounds)
	}

	result := make([]Feature, 0, len(d.features)/10) // Estimate 10% visible
	for i, fb := range d.spatialIndex.bounds {
		if bounds.Intersects(fb) {
			result = append(result, d.spatialIndex.features[i])
		}
	}
	return result
}

// featuresInBoundsLinear performs linear search when no spatial index exists.
func (d *Dataset) featuresInBoundsLinear(bounds Bounds) []Feature {
	result := make([]Feature, 0, len(d.features)/10)
	for _, feature := range d.features {
		if bounds.Intersects(featureBounds(feature)) {
			result = append(result, feature)
		}
	}
	return result
}

// NewDataset builds a dataset from explicit features.
//
// Useful for programmatically constructed data (e.g. arc endpoints). The spatial
// index and bounds are computed immediately.
func NewDataset(name string, features []Feature) *Dataset {
	d := &Dataset{name: name, features: features}
	d.buildSpatialIndex()
	return d
}

// NewFeature constructs a feature from a geometry and optional properties.
func NewFeature(id string, geometry Geometry, properties map[string]interface{}) Feature {
	return Feature{id: id, geometry: geometry, properties: properties}
}

// convertCollection converts a decoded GeoJSON collection to the public type.
func convertCollection(name string, fc *geojson.FeatureCollection) *Dataset {
	features := make([]Feature, len(fc.Features))
	for i, f := range fc.Features {
		features[i] = Feature{
			id:         f.ID,
			geometry:   convertGeometry(f.Geometry),
			properties: f.Properties,
		}
	}
	return NewDataset(name, features)
}

// convertGeometry flattens the wire-level geometry into render-ready paths.
func convertGeometry(g geojson.Geometry) Geometry {
	switch g.Type {
	case geojson.GeometryTypePoint, geojson.GeometryTypeMultiPoint:
		points := make([]Coordinate, 0, len(g.Points))
		for _, pt := range g.Points {
			if len(pt) >= 2 {
				points = append(points, Coordinate{Lon: pt[0], Lat: pt[1]})
			}
		}
		return Geometry{Type: GeometryTypePoint, Points: points}

	case geojson.GeometryTypeLineString, geojson.GeometryTypeMultiLineString:
		paths := make([]Path, 0, len(g.Lines))
		for _, line := range g.Lines {
			paths = append(paths, convertPath(line))
		}
		return Geometry{Type: GeometryTypeLineString, Paths: paths}

	case geojson.GeometryTypePolygon, geojson.GeometryTypeMultiPolygon:
		polys := make([][]Path, 0, len(g.Polygons))
		for _, poly := range g.Polygons {
			rings := make([]Path, 0, len(poly))
			for _, ring := range poly {
				rings = append(rings, convertPath(ring))
			}
			polys = append(polys, rings)
		}
		return Geometry{Type: GeometryTypePolygon, Rings: polys}
	}
	return Geometry{}
}

func convertPath(coords [][]float64) Path {
	path := make(Path, 0, len(coords))
	for _, c := range coords {
		if len(c) >= 2 {
			path = append(path, Coordinate{Lon: c[0], Lat: c[1]})
		}
	}
	return path
}

// buildSpatialIndex creates a spatial index for fast bounding box queries.
func (d *Dataset) buildSpatialIndex() {
	if len(d.features) == 0 {
		return
	}

	d.spatialIndex = &spatialIndex{
		features: d.features,
		bounds:   make([]Bounds, len(d.features)),
	}

	var datasetBounds *Bounds
	for i, feature := range d.features {
		fb := featureBounds(feature)
		d.spatialIndex.bounds[i] = fb

		if datasetBounds == nil {
			b := fb
			datasetBounds = &b
		} else {
			b := datasetBounds.Union(fb)
			datasetBounds = &b
		}
	}

	if datasetBounds != nil {
		d.bounds = *datasetBounds
	}
}
