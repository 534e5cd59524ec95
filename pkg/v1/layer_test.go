package geodeck

import (
	"image"
	"testing"
)

// TestLayerDefaults tests option fallback across layer types
func TestLayerDefaults(t *testing.T) {
	tests := []struct {
		name   string
		layer  Layer
		wantID string
	}{
		{"path", NewPathLayer(nil, PathLayerOptions{}), "path"},
		{"geojson", NewGeoJSONLayer(nil, GeoJSONLayerOptions{}), "geojson"},
		{"scatterplot", NewScatterplotLayer(nil, ScatterplotLayerOptions{}), "scatterplot"},
		{"arc", NewArcLayer(nil, ArcLayerOptions{}), "arc"},
		{"bitmap", NewBitmapLayer(nil, Bounds{}, BitmapLayerOptions{}), "bitmap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layer.ID(); got != tt.wantID {
				t.Errorf("Expected default ID %q, got %q", tt.wantID, got)
			}
			if !tt.layer.Visible() {
				t.Error("Expected new layer to be visible")
			}
			tt.layer.SetVisible(false)
			if tt.layer.Visible() {
				t.Error("Expected SetVisible(false) to hide the layer")
			}
		})
	}
}

// TestLayerCustomID tests ID override
func TestLayerCustomID(t *testing.T) {
	l := NewPathLayer(nil, PathLayerOptions{ID: "graticule"})
	if l.ID() != "graticule" {
		t.Errorf("Expected custom ID graticule, got %q", l.ID())
	}
}

// TestBitmapLayerGlobeSkipped tests that rasters only draw in flat views
func TestBitmapLayerGlobeSkipped(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	world := Bounds{MinLon: -180, MaxLon: 180, MinLat: -90, MaxLat: 90}

	scene := NewScene(SceneOptions{Width: 200, Height: 100})
	scene.AddView(NewGlobeView(DefaultGlobeViewOptions()))
	scene.AddLayer(NewBitmapLayer(img, world, BitmapLayerOptions{ID: "basemap"}))

	if _, err := scene.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	// Nothing was drawn, so nothing is pickable.
	if _, ok := scene.Pick(100, 50); ok {
		t.Error("Expected no pick hit for a bitmap in a globe view")
	}
}

// TestBitmapLayerMapPickable tests the raster footprint in a flat view
func TestBitmapLayerMapPickable(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	world := Bounds{MinLon: -180, MaxLon: 180, MinLat: -90, MaxLat: 90}

	scene := NewScene(SceneOptions{Width: 300, Height: 150})
	scene.AddView(NewMapView(DefaultMapViewOptions()))
	scene.AddLayer(NewBitmapLayer(img, world, BitmapLayerOptions{ID: "basemap"}))

	if _, err := scene.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	info, ok := scene.Pick(150, 75)
	if !ok || info.LayerID != "basemap" {
		t.Errorf("Expected basemap pick at the map center, got %+v, %v", info, ok)
	}
}

// TestScatterplotGetRadius tests the per-feature radius override
func TestScatterplotGetRadius(t *testing.T) {
	data := NewDataset("airports", []Feature{
		pointFeature("big", 0, 0, map[string]interface{}{"traffic": 50.0}),
	})
	l := NewScatterplotLayer(data, ScatterplotLayerOptions{
		ID: "airports",
		GetRadius: func(f *Feature) float64 {
			traffic, _ := f.Property("traffic")
			if v, ok := traffic.(float64); ok {
				return v / 10
			}
			return 0
		},
	})

	scene := NewScene(SceneOptions{Width: 200, Height: 100})
	scene.AddView(NewMapView(DefaultMapViewOptions()))
	scene.AddLayer(l)
	if _, err := scene.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// Radius 5 plus pick slop: a hit 5px from the center, a miss at 10px.
	if _, ok := scene.Pick(104, 50); !ok {
		t.Error("Expected hit inside the scaled radius")
	}
	if _, ok := scene.Pick(110, 50); ok {
		t.Error("Expected miss outside the scaled radius")
	}
}
