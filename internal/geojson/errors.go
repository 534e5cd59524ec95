package geojson

import (
	"fmt"
)

// ErrInvalidCoordinate indicates a coordinate outside valid geographic bounds
type ErrInvalidCoordinate struct {
	Lat, Lon float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: lat=%f lon=%f (lat must be ±90, lon must be ±180)",
		e.Lat, e.Lon)
}

// ErrUnknownGeometryType indicates a geometry "type" member not defined by RFC 7946
type ErrUnknownGeometryType struct {
	Type string
}

func (e *ErrUnknownGeometryType) Error() string {
	return fmt.Sprintf("unknown GeoJSON geometry type: %q", e.Type)
}

// ErrInvalidGeometry indicates geometry that violates GeoJSON structural rules
type ErrInvalidGeometry struct {
	Type   GeometryType
	Reason string
}

func (e *ErrInvalidGeometry) Error() string {
	if e.Type != 0 {
		return fmt.Sprintf("invalid geometry (%v): %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("invalid geometry: %s", e.Reason)
}

// ErrInvalidDocument indicates a document that is not a usable GeoJSON object
type ErrInvalidDocument struct {
	Reason string
}

func (e *ErrInvalidDocument) Error() string {
	return fmt.Sprintf("invalid GeoJSON document: %s", e.Reason)
}
