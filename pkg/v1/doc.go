// Package geodeck composes geospatial scenes: datasets, rendering layers,
// map projections, and overlay widgets, rendered to images through the gg
// drawing library.
//
// # Basic Usage
//
//	scene := geodeck.NewScene(geodeck.DefaultSceneOptions())
//	scene.AddView(geodeck.NewMapView(geodeck.DefaultMapViewOptions()))
//	scene.AddLayer(geodeck.NewPathLayer(geodeck.GenerateGraticule(30),
//	    geodeck.PathLayerOptions{ID: "graticule"}))
//
//	img, err := scene.Render()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Views
//
// A scene holds one or more views sharing the canvas side by side. MapView is
// a flat equirectangular projection; GlobeView is an orthographic globe. Every
// layer is drawn once per view:
//
//	scene.AddView(geodeck.NewMapView(geodeck.MapViewOptions{Name: "flat"}))
//	scene.AddView(geodeck.NewGlobeView(geodeck.GlobeViewOptions{
//	    Name:   "globe",
//	    Center: geodeck.Coordinate{Lon: -30, Lat: 20},
//	}))
//
// # Layers
//
// Layers are configuration records with documented defaults, constructed once
// and added to the scene in draw order:
//
//	countries, _ := loader.LoadDataset(ctx, "countries.geojson")
//	scene.AddLayer(geodeck.NewGeoJSONLayer(countries, geodeck.GeoJSONLayerOptions{
//	    ID:     "countries",
//	    Filled: true,
//	}))
//	scene.AddLayer(geodeck.NewScatterplotLayer(airports,
//	    geodeck.ScatterplotLayerOptions{ID: "airports"}))
//
// # Picking
//
// Rendering builds a screen-space spatial index over everything drawn. Pick
// answers "what is under this pixel" after a render:
//
//	if info, ok := scene.Pick(412, 187); ok {
//	    fmt.Printf("hit %s[%d]: %v\n", info.LayerID, info.Index, info.Object)
//	}
//
// # Data Loading
//
// DataLoader reads GeoJSON from local files or HTTP URLs with an LRU cache in
// front; LoadDatasetsParallel loads many sources through a worker pool. Remote
// fetching is rate limited (see pkg/geodata).
//
// # Themes
//
// Scene colors come from a Theme value computed once at startup and passed by
// parameter. LightTheme and DarkTheme are provided; ThemeFor(dark) selects
// between them from a configuration flag.
package geodeck
