package geojson

import (
	"fmt"
)

// ValidateCoordinate validates a single coordinate pair.
// GeoJSON coordinates must be within valid geographic bounds.
func ValidateCoordinate(lat, lon float64) error {
	if lat < -90.0 || lat > 90.0 {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	if lon < -180.0 || lon > 180.0 {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	return nil
}

// ValidateGeometry validates geometry per RFC 7946 structural rules.
func ValidateGeometry(geometry *Geometry) error {
	if geometry == nil {
		return &ErrInvalidGeometry{Reason: "geometry is nil"}
	}

	switch geometry.Type {
	case GeometryTypePoint, GeometryTypeMultiPoint:
		for i, pt := range geometry.Points {
			if err := validatePosition(geometry.Type, i, pt); err != nil {
				return err
			}
		}

	case GeometryTypeLineString, GeometryTypeMultiLineString:
		for _, line := range geometry.Lines {
			if len(line) < 2 {
				return &ErrInvalidGeometry{
					Type:   geometry.Type,
					Reason: fmt.Sprintf("line must have at least 2 positions, got %d", len(line)),
				}
			}
			for i, pt := range line {
				if err := validatePosition(geometry.Type, i, pt); err != nil {
					return err
				}
			}
		}

	case GeometryTypePolygon, GeometryTypeMultiPolygon:
		for _, poly := range geometry.Polygons {
			for _, ring := range poly {
				// RFC 7946 §3.1.6: rings have 4+ positions and close on themselves
				if len(ring) < 4 {
					return &ErrInvalidGeometry{
						Type:   geometry.Type,
						Reason: fmt.Sprintf("ring must have at least 4 positions, got %d", len(ring)),
					}
				}
				first, last := ring[0], ring[len(ring)-1]
				if len(first) < 2 || len(last) < 2 || first[0] != last[0] || first[1] != last[1] {
					return &ErrInvalidGeometry{
						Type:   geometry.Type,
						Reason: "ring is not closed",
					}
				}
				for i, pt := range ring {
					if err := validatePosition(geometry.Type, i, pt); err != nil {
						return err
					}
				}
			}
		}

	default:
		return &ErrInvalidGeometry{Reason: "geometry has unknown type"}
	}

	return nil
}

// validatePosition checks a single position: 2 or 3 values, in-range lon/lat.
// The optional third value (elevation) is not validated.
func validatePosition(geomType GeometryType, index int, pos []float64) error {
	if len(pos) < 2 || len(pos) > 3 {
		return &ErrInvalidGeometry{
			Type:   geomType,
			Reason: fmt.Sprintf("position %d must have 2 or 3 values [lon, lat] or [lon, lat, elevation], got %d", index, len(pos)),
		}
	}
	lon, lat := pos[0], pos[1]
	if err := ValidateCoordinate(lat, lon); err != nil {
		return &ErrInvalidGeometry{
			Type:   geomType,
			Reason: fmt.Sprintf("position %d invalid: %v", index, err),
		}
	}
	return nil
}
