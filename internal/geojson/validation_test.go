package geojson

import (
	"testing"
)

// TestValidateCoordinate tests geographic range checks
func TestValidateCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{"origin", 0, 0, false},
		{"north pole", 90, 0, false},
		{"south pole", -90, 0, false},
		{"date line", 0, 180, false},
		{"anti date line", 0, -180, false},
		{"lat too high", 90.1, 0, true},
		{"lat too low", -91, 0, true},
		{"lon too high", 0, 180.5, true},
		{"lon too low", 0, -181, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinate(tt.lat, tt.lon)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCoordinate(%f, %f) error = %v, wantErr %v",
					tt.lat, tt.lon, err, tt.wantErr)
			}
		})
	}
}

// TestValidateGeometry tests structural geometry rules
func TestValidateGeometry(t *testing.T) {
	tests := []struct {
		name    string
		geom    Geometry
		wantErr bool
	}{
		{
			name: "valid point",
			geom: Geometry{Type: GeometryTypePoint, Points: [][]float64{{-71.05, 42.35}}},
		},
		{
			name: "valid 3d point",
			geom: Geometry{Type: GeometryTypePoint, Points: [][]float64{{-71.05, 42.35, 12.0}}},
		},
		{
			name:    "point with 4 values",
			geom:    Geometry{Type: GeometryTypePoint, Points: [][]float64{{1, 2, 3, 4}}},
			wantErr: true,
		},
		{
			name: "valid linestring",
			geom: Geometry{Type: GeometryTypeLineString, Lines: [][][]float64{
				{{-71.05, 42.35}, {-71.04, 42.36}},
			}},
		},
		{
			name: "degenerate linestring",
			geom: Geometry{Type: GeometryTypeLineString, Lines: [][][]float64{
				{{-71.05, 42.35}},
			}},
			wantErr: true,
		},
		{
			name: "valid polygon",
			geom: Geometry{Type: GeometryTypePolygon, Polygons: [][][][]float64{
				{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}},
			}},
		},
		{
			name: "unclosed ring",
			geom: Geometry{Type: GeometryTypePolygon, Polygons: [][][][]float64{
				{{{0, 0}, {1, 0}, {1, 1}, {2, 2}}},
			}},
			wantErr: true,
		},
		{
			name: "short ring",
			geom: Geometry{Type: GeometryTypePolygon, Polygons: [][][][]float64{
				{{{0, 0}, {1, 0}, {0, 0}}},
			}},
			wantErr: true,
		},
		{
			name:    "unknown type",
			geom:    Geometry{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGeometry(&tt.geom)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGeometry() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestValidateGeometryNil tests the nil geometry case
func TestValidateGeometryNil(t *testing.T) {
	if err := ValidateGeometry(nil); err == nil {
		t.Error("Expected error for nil geometry")
	}
}
