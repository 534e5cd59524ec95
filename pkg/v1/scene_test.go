package geodeck

import (
	"path/filepath"
	"testing"
)

func scatterAt(id string, lon, lat float64, props map[string]interface{}) *ScatterplotLayer {
	data := NewDataset(id, []Feature{pointFeature(id, lon, lat, props)})
	return NewScatterplotLayer(data, ScatterplotLayerOptions{ID: id, Radius: 6})
}

// TestSceneRenderDefaults tests rendering with no explicit views
func TestSceneRenderDefaults(t *testing.T) {
	scene := NewScene(SceneOptions{Width: 200, Height: 100})
	scene.AddLayer(NewPathLayer(GenerateGraticule(90), DefaultPathLayerOptions()))

	img, err := scene.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 100 {
		t.Errorf("Expected 200x100 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

// TestScenePick tests picking a rendered marker
func TestScenePick(t *testing.T) {
	scene := NewScene(SceneOptions{Width: 200, Height: 100})
	scene.AddView(NewMapView(DefaultMapViewOptions()))
	scene.AddLayer(scatterAt("airports", 0, 0, map[string]interface{}{"name": "null island"}))

	if _, ok := scene.Pick(100, 50); ok {
		t.Error("Expected no pick result before the first render")
	}

	if _, err := scene.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// (0, 0) projects to the viewport center.
	info, ok := scene.Pick(100, 50)
	if !ok {
		t.Fatal("Expected a pick hit at the marker position")
	}
	if info.LayerID != "airports" {
		t.Errorf("Expected layer airports, got %q", info.LayerID)
	}
	if info.ViewName != "map" {
		t.Errorf("Expected view map, got %q", info.ViewName)
	}
	if name, _ := info.Object["name"].(string); name != "null island" {
		t.Errorf("Expected picked properties, got %v", info.Object)
	}

	if _, ok := scene.Pick(5, 5); ok {
		t.Error("Expected no pick hit away from the marker")
	}
}

// TestScenePickTopmost tests that later layers win overlapping picks
func TestScenePickTopmost(t *testing.T) {
	scene := NewScene(SceneOptions{Width: 200, Height: 100})
	scene.AddView(NewMapView(DefaultMapViewOptions()))
	scene.AddLayer(scatterAt("below", 0, 0, nil))
	scene.AddLayer(scatterAt("above", 0, 0, nil))

	if _, err := scene.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	info, ok := scene.Pick(100, 50)
	if !ok {
		t.Fatal("Expected a pick hit")
	}
	if info.LayerID != "above" {
		t.Errorf("Expected topmost layer above, got %q", info.LayerID)
	}
}

// TestSceneHiddenLayerNotPickable tests that hidden layers render nothing
func TestSceneHiddenLayerNotPickable(t *testing.T) {
	scene := NewScene(SceneOptions{Width: 200, Height: 100})
	scene.AddView(NewMapView(DefaultMapViewOptions()))

	layer := scatterAt("airports", 0, 0, nil)
	layer.SetVisible(false)
	scene.AddLayer(layer)

	if _, err := scene.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if _, ok := scene.Pick(100, 50); ok {
		t.Error("Expected no pick hit for a hidden layer")
	}
}

// TestSceneDualView tests side-by-side viewport assignment and per-view picks
func TestSceneDualView(t *testing.T) {
	scene := NewScene(SceneOptions{Width: 400, Height: 200})
	flat := NewMapView(MapViewOptions{Name: "flat"})
	globe := NewGlobeView(GlobeViewOptions{Name: "globe"})
	scene.AddView(flat)
	scene.AddView(globe)
	scene.AddLayer(scatterAt("airports", 0, 0, nil))

	if _, err := scene.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if vp := flat.Viewport(); vp.X != 0 || vp.Width != 200 {
		t.Errorf("Unexpected flat viewport: %+v", vp)
	}
	if vp := globe.Viewport(); vp.X != 200 || vp.Width != 200 {
		t.Errorf("Unexpected globe viewport: %+v", vp)
	}

	// The same marker is pickable in both views at their centers.
	left, ok := scene.Pick(100, 100)
	if !ok || left.ViewName != "flat" {
		t.Errorf("Expected flat-view hit at (100, 100), got %+v, %v", left, ok)
	}
	right, ok := scene.Pick(300, 100)
	if !ok || right.ViewName != "globe" {
		t.Errorf("Expected globe-view hit at (300, 100), got %+v, %v", right, ok)
	}
}

// TestScenePickClippedToView tests that clipped-away geometry is not pickable
func TestScenePickClippedToView(t *testing.T) {
	scene := NewScene(SceneOptions{Width: 400, Height: 200})
	scene.AddView(NewMapView(MapViewOptions{Name: "flat", Zoom: 2}))
	scene.AddView(NewGlobeView(GlobeViewOptions{Name: "globe"}))

	// At zoom 2 the flat view projects lon 60 to x ~= 270.7, which lands in
	// the globe's half of the canvas where the clip rect removed the marker.
	scene.AddLayer(scatterAt("pts", 60, 0, nil))

	if _, err := scene.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if info, ok := scene.Pick(271, 100); ok {
		t.Errorf("Expected no hit where the flat view clipped the marker, got %+v", info)
	}

	// The same marker really is drawn by the globe view, further east.
	info, ok := scene.Pick(378, 100)
	if !ok || info.ViewName != "globe" {
		t.Errorf("Expected globe-view hit at (378, 100), got %+v, %v", info, ok)
	}
}

// TestSceneViewGapTooLarge tests the viewport sizing error
func TestSceneViewGapTooLarge(t *testing.T) {
	scene := NewScene(SceneOptions{Width: 100, Height: 100, ViewGap: 200})
	scene.AddView(NewMapView(MapViewOptions{Name: "a"}))
	scene.AddView(NewMapView(MapViewOptions{Name: "b"}))

	if _, err := scene.Render(); err == nil {
		t.Error("Expected error when views cannot fit the canvas")
	}
}

// TestSceneRenderPNG tests writing the rendered scene to disk
func TestSceneRenderPNG(t *testing.T) {
	scene := NewScene(SceneOptions{Width: 64, Height: 64, Theme: DarkTheme()})
	scene.AddLayer(NewPathLayer(GenerateGraticule(90), DefaultPathLayerOptions()))

	path := filepath.Join(t.TempDir(), "scene.png")
	if err := scene.RenderPNG(path); err != nil {
		t.Fatalf("RenderPNG failed: %v", err)
	}
}

// TestSceneWidgets tests that widget drawing does not disturb rendering
func TestSceneWidgets(t *testing.T) {
	scene := NewScene(SceneOptions{Width: 300, Height: 150})
	scene.AddView(NewMapView(DefaultMapViewOptions()))
	scene.AddLayer(scatterAt("airports", 0, 0, nil))
	scene.AddWidget(NewZoomWidget(DefaultZoomWidgetOptions()))
	scene.AddWidget(NewCompassWidget(DefaultCompassWidgetOptions()))
	scene.AddWidget(NewFullscreenWidget(DefaultFullscreenWidgetOptions()))
	scene.AddWidget(NewLayerListWidget(DefaultLayerListWidgetOptions()))

	if _, err := scene.Render(); err != nil {
		t.Fatalf("Render with widgets failed: %v", err)
	}
	if _, ok := scene.Pick(150, 75); !ok {
		t.Error("Expected the marker to remain pickable under widgets")
	}
}
