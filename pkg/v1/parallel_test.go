package geodeck

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func parallelTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "broken") {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"type":"FeatureCollection","features":[]}`))
	}))
	t.Cleanup(server.Close)
	return server
}

// TestLoadDatasetsParallel tests concurrent loading with ordered results
func TestLoadDatasetsParallel(t *testing.T) {
	server := parallelTestServer(t)
	loader := NewDataLoader(DefaultLoaderOptions())

	sources := []string{
		filepath.Join("testdata", "airports.geojson"),
		server.URL + "/a.geojson",
		server.URL + "/b.geojson",
	}

	datasets, errs := LoadDatasetsParallel(context.Background(), sources, loader, LoadOptions{
		Parallel: true,
		Workers:  2,
	})
	if len(errs) != 0 {
		t.Fatalf("Unexpected errors: %v", errs)
	}
	if len(datasets) != 3 {
		t.Fatalf("Expected 3 datasets, got %d", len(datasets))
	}
	// Results preserve source order regardless of completion order.
	if datasets[0].Name() != sources[0] {
		t.Errorf("Expected first result %s, got %s", sources[0], datasets[0].Name())
	}
}

// TestLoadDatasetsParallelSkipErrors tests collecting failures
func TestLoadDatasetsParallelSkipErrors(t *testing.T) {
	server := parallelTestServer(t)
	loader := NewDataLoader(DefaultLoaderOptions())

	var errLog bytes.Buffer
	sources := []string{
		server.URL + "/ok.geojson",
		server.URL + "/broken.geojson",
	}

	datasets, errs := LoadDatasetsParallel(context.Background(), sources, loader, LoadOptions{
		Parallel:   true,
		SkipErrors: true,
		ErrorLog:   &errLog,
	})
	if len(datasets) != 1 {
		t.Errorf("Expected 1 dataset, got %d", len(datasets))
	}
	if len(errs) != 1 {
		t.Errorf("Expected 1 collected error, got %d", len(errs))
	}
	if !strings.Contains(errLog.String(), "broken.geojson") {
		t.Errorf("Expected error log to name the failing source, got %q", errLog.String())
	}
}

// TestLoadDatasetsParallelFailFast tests stopping on the first error
func TestLoadDatasetsParallelFailFast(t *testing.T) {
	server := parallelTestServer(t)
	loader := NewDataLoader(DefaultLoaderOptions())

	datasets, errs := LoadDatasetsParallel(context.Background(), []string{
		server.URL + "/broken.geojson",
	}, loader, LoadOptions{Parallel: true, SkipErrors: false})

	if datasets != nil {
		t.Errorf("Expected nil datasets on failure, got %d", len(datasets))
	}
	if len(errs) != 1 {
		t.Errorf("Expected 1 error, got %d", len(errs))
	}
}

// TestLoadDatasetsProgress tests the progress callback
func TestLoadDatasetsProgress(t *testing.T) {
	server := parallelTestServer(t)
	loader := NewDataLoader(DefaultLoaderOptions())

	var mu sync.Mutex
	var seen []int
	sources := []string{
		server.URL + "/a.geojson",
		server.URL + "/b.geojson",
		server.URL + "/c.geojson",
	}

	_, errs := LoadDatasetsParallel(context.Background(), sources, loader, LoadOptions{
		Parallel: true,
		Progress: func(loaded, total int) {
			mu.Lock()
			seen = append(seen, loaded)
			mu.Unlock()
			if total != 3 {
				t.Errorf("Expected total 3, got %d", total)
			}
		},
	})
	if len(errs) != 0 {
		t.Fatalf("Unexpected errors: %v", errs)
	}
	if len(seen) != 3 || seen[len(seen)-1] != 3 {
		t.Errorf("Expected progress through 3, got %v", seen)
	}
}

// TestLoadDatasetsSerial tests the non-parallel fallback
func TestLoadDatasetsSerial(t *testing.T) {
	loader := NewDataLoader(DefaultLoaderOptions())

	datasets, errs := LoadDatasetsParallel(context.Background(), []string{
		filepath.Join("testdata", "airports.geojson"),
	}, loader, LoadOptions{Parallel: false})

	if len(errs) != 0 {
		t.Fatalf("Unexpected errors: %v", errs)
	}
	if len(datasets) != 1 || datasets[0].FeatureCount() != 3 {
		t.Errorf("Expected 1 dataset with 3 features, got %d", len(datasets))
	}
}

// TestLoadDatasetsEmpty tests the zero-source edge case
func TestLoadDatasetsEmpty(t *testing.T) {
	loader := NewDataLoader(DefaultLoaderOptions())
	datasets, errs := LoadDatasetsParallel(context.Background(), nil, loader, DefaultLoadOptions())
	if len(datasets) != 0 || errs != nil {
		t.Errorf("Expected empty result, got %d datasets, %v", len(datasets), errs)
	}
}
