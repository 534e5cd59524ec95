package main

import (
	"context"
	"fmt"
	"log"

	"github.com/geodeck/geodeck/pkg/geodata"
	geodeck "github.com/geodeck/geodeck/pkg/v1"
)

func main() {
	ctx := context.Background()

	// Download the country outlines from the builtin catalog
	catalog := geodata.BuiltinCatalog()
	entry, _ := catalog.Lookup("world-countries")

	fetcher := geodata.NewFetcher(geodata.DefaultFetcherOptions())
	path, err := fetcher.FetchFile(ctx, entry.URL, ".cache")
	if err != nil {
		log.Fatal(err)
	}

	loader := geodeck.NewDataLoader(geodeck.DefaultLoaderOptions())
	countries, err := loader.LoadDataset(ctx, path)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Countries: %d features\n", countries.FeatureCount())

	// Flat map and orthographic globe side by side
	scene := geodeck.NewScene(geodeck.SceneOptions{Width: 1400, Height: 600})
	scene.AddView(geodeck.NewMapView(geodeck.MapViewOptions{Name: "map", Zoom: 1}))
	scene.AddView(geodeck.NewGlobeView(geodeck.GlobeViewOptions{
		Name:   "globe",
		Center: geodeck.Coordinate{Lon: 10, Lat: 45},
	}))

	scene.AddLayer(geodeck.NewGeoJSONLayer(countries, geodeck.GeoJSONLayerOptions{
		ID:     "countries",
		Filled: true,
	}))
	scene.AddLayer(geodeck.NewPathLayer(geodeck.GenerateGraticule(30), geodeck.PathLayerOptions{
		ID: "graticule",
	}))

	scene.AddWidget(geodeck.NewZoomWidget(geodeck.DefaultZoomWidgetOptions()))
	scene.AddWidget(geodeck.NewCompassWidget(geodeck.DefaultCompassWidgetOptions()))

	if err := scene.RenderPNG("dual-view.png"); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Wrote dual-view.png")
}
