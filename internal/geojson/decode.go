package geojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeOptions configures decoding behavior.
type DecodeOptions struct {
	// ValidateGeometry enables coordinate range and ring closure checks.
	ValidateGeometry bool

	// SkipInvalid causes features with invalid or unknown geometry to be dropped
	// instead of failing the whole decode. Only consulted per-feature; a document
	// that is not GeoJSON at all always fails.
	SkipInvalid bool
}

// DefaultDecodeOptions returns default options.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{
		ValidateGeometry: true,
		SkipInvalid:      false,
	}
}

// rawGeometry mirrors the wire shape of a GeoJSON geometry. Coordinates are kept
// raw because their nesting depth depends on the type member.
type rawGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// rawDocument covers the three top-level GeoJSON object kinds: FeatureCollection,
// Feature, and bare geometry.
type rawDocument struct {
	Type        string                 `json:"type"`
	Features    []rawFeature           `json:"features"`
	Geometry    *rawGeometry           `json:"geometry"`
	Properties  map[string]interface{} `json:"properties"`
	ID          interface{}            `json:"id"`
	Coordinates json.RawMessage        `json:"coordinates"`
}

type rawFeature struct {
	Type       string                 `json:"type"`
	Geometry   *rawGeometry           `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
	ID         interface{}            `json:"id"`
}

// Decode reads a GeoJSON document and returns its features.
//
// The top-level object may be a FeatureCollection, a single Feature, or a bare
// geometry (which is wrapped into a single feature with no properties).
func Decode(r io.Reader, opts DecodeOptions) (*FeatureCollection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read GeoJSON: %w", err)
	}
	return DecodeBytes(data, opts)
}

// DecodeBytes decodes an in-memory GeoJSON document. See Decode.
func DecodeBytes(data []byte, opts DecodeOptions) (*FeatureCollection, error) {
	var doc rawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ErrInvalidDocument{Reason: err.Error()}
	}

	switch doc.Type {
	case "FeatureCollection":
		fc := &FeatureCollection{Features: make([]Feature, 0, len(doc.Features))}
		for i, rf := range doc.Features {
			f, err := decodeFeature(rf, opts)
			if err != nil {
				if opts.SkipInvalid {
					continue
				}
				return nil, fmt.Errorf("feature %d: %w", i, err)
			}
			fc.Features = append(fc.Features, f)
		}
		return fc, nil

	case "Feature":
		f, err := decodeFeature(rawFeature{
			Type:       doc.Type,
			Geometry:   doc.Geometry,
			Properties: doc.Properties,
			ID:         doc.ID,
		}, opts)
		if err != nil {
			return nil, err
		}
		return &FeatureCollection{Features: []Feature{f}}, nil

	case "Point", "MultiPoint", "LineString", "MultiLineString", "Polygon", "MultiPolygon":
		geom, err := decodeGeometry(&rawGeometry{Type: doc.Type, Coordinates: doc.Coordinates}, opts)
		if err != nil {
			return nil, err
		}
		return &FeatureCollection{Features: []Feature{{Geometry: geom}}}, nil

	case "":
		return nil, &ErrInvalidDocument{Reason: "missing type member"}
	default:
		return nil, &ErrInvalidDocument{Reason: fmt.Sprintf("unsupported top-level type %q", doc.Type)}
	}
}

func decodeFeature(rf rawFeature, opts DecodeOptions) (Feature, error) {
	if rf.Geometry == nil {
		return Feature{}, &ErrInvalidGeometry{Reason: "feature has null geometry"}
	}
	geom, err := decodeGeometry(rf.Geometry, opts)
	if err != nil {
		return Feature{}, err
	}
	return Feature{
		ID:         featureID(rf.ID),
		Geometry:   geom,
		Properties: rf.Properties,
	}, nil
}

// featureID normalizes the optional GeoJSON id member, which may be a string or
// a number, into a string.
func featureID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return ""
	}
}

func decodeGeometry(rg *rawGeometry, opts DecodeOptions) (Geometry, error) {
	geom := Geometry{}

	switch rg.Type {
	case "Point":
		var pt []float64
		if err := json.Unmarshal(rg.Coordinates, &pt); err != nil {
			return geom, &ErrInvalidGeometry{Type: GeometryTypePoint, Reason: err.Error()}
		}
		geom.Type = GeometryTypePoint
		geom.Points = [][]float64{pt}

	case "MultiPoint":
		if err := json.Unmarshal(rg.Coordinates, &geom.Points); err != nil {
			return geom, &ErrInvalidGeometry{Type: GeometryTypeMultiPoint, Reason: err.Error()}
		}
		geom.Type = GeometryTypeMultiPoint

	case "LineString":
		var line [][]float64
		if err := json.Unmarshal(rg.Coordinates, &line); err != nil {
			return geom, &ErrInvalidGeometry{Type: GeometryTypeLineString, Reason: err.Error()}
		}
		geom.Type = GeometryTypeLineString
		geom.Lines = [][][]float64{line}

	case "MultiLineString":
		if err := json.Unmarshal(rg.Coordinates, &geom.Lines); err != nil {
			return geom, &ErrInvalidGeometry{Type: GeometryTypeMultiLineString, Reason: err.Error()}
		}
		geom.Type = GeometryTypeMultiLineString

	case "Polygon":
		var poly [][][]float64
		if err := json.Unmarshal(rg.Coordinates, &poly); err != nil {
			return geom, &ErrInvalidGeometry{Type: GeometryTypePolygon, Reason: err.Error()}
		}
		geom.Type = GeometryTypePolygon
		geom.Polygons = [][][][]float64{poly}

	case "MultiPolygon":
		if err := json.Unmarshal(rg.Coordinates, &geom.Polygons); err != nil {
			return geom, &ErrInvalidGeometry{Type: GeometryTypeMultiPolygon, Reason: err.Error()}
		}
		geom.Type = GeometryTypeMultiPolygon

	default:
		return geom, &ErrUnknownGeometryType{Type: rg.Type}
	}

	if opts.ValidateGeometry {
		if err := ValidateGeometry(&geom); err != nil {
			return geom, err
		}
	}

	return geom, nil
}
