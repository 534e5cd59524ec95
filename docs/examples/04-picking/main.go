package main

import (
	"context"
	"fmt"
	"log"

	geodeck "github.com/geodeck/geodeck/pkg/v1"
)

func main() {
	loader := geodeck.NewDataLoader(geodeck.DefaultLoaderOptions())
	airports, err := loader.LoadDataset(context.Background(), "airports.geojson")
	if err != nil {
		log.Fatal(err)
	}

	scene := geodeck.NewScene(geodeck.SceneOptions{Width: 1024, Height: 512})
	view := geodeck.NewMapView(geodeck.MapViewOptions{Zoom: 1})
	scene.AddView(view)
	scene.AddLayer(geodeck.NewScatterplotLayer(airports, geodeck.ScatterplotLayerOptions{
		ID:     "airports",
		Radius: 4,
	}))

	// Picking works against the most recent render
	if _, err := scene.Render(); err != nil {
		log.Fatal(err)
	}

	// Probe a grid of canvas positions and report what is under each
	hits := 0
	for y := 0.0; y < 512; y += 32 {
		for x := 0.0; x < 1024; x += 32 {
			info, ok := scene.Pick(x, y)
			if !ok {
				continue
			}
			hits++

			coord, _ := view.Unproject(x, y)
			name, _ := info.Object["name"]
			fmt.Printf("(%4.0f,%4.0f) -> %s[%d] %v near (%.1f, %.1f)\n",
				x, y, info.LayerID, info.Index, name, coord.Lon, coord.Lat)
		}
	}
	fmt.Printf("Probed grid, %d hits\n", hits)
}
