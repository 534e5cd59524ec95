package geodeck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

// TestLoadDatasetFile tests loading a local GeoJSON file
func TestLoadDatasetFile(t *testing.T) {
	loader := NewDataLoader(DefaultLoaderOptions())

	d, err := loader.LoadDataset(context.Background(), filepath.Join("testdata", "airports.geojson"))
	if err != nil {
		t.Fatalf("LoadDataset failed: %v", err)
	}
	if d.FeatureCount() != 3 {
		t.Errorf("Expected 3 features, got %d", d.FeatureCount())
	}

	f := d.Features()[0]
	if f.ID() != "JFK" {
		t.Errorf("Expected first feature JFK, got %q", f.ID())
	}
	if name, _ := f.Property("name"); name != "John F Kennedy Intl" {
		t.Errorf("Unexpected name property: %v", name)
	}
}

// TestLoadDatasetMissing tests the missing-file error path
func TestLoadDatasetMissing(t *testing.T) {
	loader := NewDataLoader(DefaultLoaderOptions())
	if _, err := loader.LoadDataset(context.Background(), "testdata/nope.geojson"); err == nil {
		t.Error("Expected error for a missing file")
	}
}

// TestLoadDatasetRemote tests loading over HTTP
func TestLoadDatasetRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"type": "FeatureCollection",
			"features": [{
				"type": "Feature",
				"properties": {"name": "equator"},
				"geometry": {"type": "LineString", "coordinates": [[-180, 0], [180, 0]]}
			}]
		}`))
	}))
	defer server.Close()

	loader := NewDataLoader(DefaultLoaderOptions())
	d, err := loader.LoadDataset(context.Background(), server.URL+"/equator.geojson")
	if err != nil {
		t.Fatalf("LoadDataset failed: %v", err)
	}
	if d.FeatureCount() != 1 {
		t.Errorf("Expected 1 feature, got %d", d.FeatureCount())
	}
	if d.Features()[0].Geometry().Type != GeometryTypeLineString {
		t.Errorf("Expected line geometry, got %v", d.Features()[0].Geometry().Type)
	}
}

// TestLoadDatasetCached tests the cache in front of the loader
func TestLoadDatasetCached(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"type":"FeatureCollection","features":[]}`))
	}))
	defer server.Close()

	loader := NewDataLoader(DefaultLoaderOptions())
	url := server.URL + "/data.geojson"

	for i := 0; i < 3; i++ {
		if _, err := loader.LoadDataset(context.Background(), url); err != nil {
			t.Fatalf("LoadDataset failed: %v", err)
		}
	}
	if requests != 1 {
		t.Errorf("Expected 1 network request, got %d", requests)
	}

	// One miss, two hits.
	if rate := loader.CacheHitRate(); rate < 0.6 || rate > 0.7 {
		t.Errorf("Expected hit rate near 2/3, got %f", rate)
	}
}

// TestLoadDatasetValidation tests that invalid coordinates fail the load
func TestLoadDatasetValidation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"type": "FeatureCollection",
			"features": [{
				"type": "Feature",
				"properties": {},
				"geometry": {"type": "Point", "coordinates": [200, 95]}
			}]
		}`))
	}))
	defer server.Close()

	strict := NewDataLoader(DefaultLoaderOptions())
	if _, err := strict.LoadDataset(context.Background(), server.URL); err == nil {
		t.Error("Expected validation error for out-of-range coordinates")
	}

	lenient := NewDataLoader(LoaderOptions{ValidateGeometry: true, SkipInvalid: true})
	d, err := lenient.LoadDataset(context.Background(), server.URL+"/other")
	if err != nil {
		t.Fatalf("Expected skip-invalid load to succeed: %v", err)
	}
	if d.FeatureCount() != 0 {
		t.Errorf("Expected invalid feature to be skipped, got %d features", d.FeatureCount())
	}
}
