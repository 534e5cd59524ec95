package main

import (
	"context"
	"fmt"
	"log"

	geodeck "github.com/geodeck/geodeck/pkg/v1"
)

func main() {
	// Load a dataset
	loader := geodeck.NewDataLoader(geodeck.DefaultLoaderOptions())
	airports, err := loader.LoadDataset(context.Background(), "airports.geojson")
	if err != nil {
		log.Fatal(err)
	}

	// Print dataset info
	fmt.Printf("Dataset: %s\n", airports.Name())
	fmt.Printf("Features: %d\n", airports.FeatureCount())

	bounds := airports.Bounds()
	fmt.Printf("Bounds: [%.4f,%.4f] to [%.4f,%.4f]\n",
		bounds.MinLon, bounds.MinLat,
		bounds.MaxLon, bounds.MaxLat)

	// Render it to a PNG
	scene := geodeck.NewScene(geodeck.DefaultSceneOptions())
	scene.AddLayer(geodeck.NewScatterplotLayer(airports, geodeck.ScatterplotLayerOptions{
		ID: "airports",
	}))

	if err := scene.RenderPNG("airports.png"); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Wrote airports.png")
}
