package main

import (
	"fmt"
	"log"

	geodeck "github.com/geodeck/geodeck/pkg/v1"
)

func main() {
	// Generate grid lines at 30 degree resolution
	grid := geodeck.GenerateGraticule(30)
	fmt.Printf("Graticule paths: %d\n", len(grid))

	for i, path := range grid[:4] {
		fmt.Printf("  path %d: %d points, starts at (%.0f, %.0f)\n",
			i, len(path), path[0].Lon, path[0].Lat)
	}

	// Render the grid alone on a dark canvas
	scene := geodeck.NewScene(geodeck.SceneOptions{
		Width:  1024,
		Height: 512,
		Theme:  geodeck.DarkTheme(),
	})
	scene.AddLayer(geodeck.NewPathLayer(grid, geodeck.PathLayerOptions{
		ID: "graticule",
	}))

	if err := scene.RenderPNG("graticule.png"); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Wrote graticule.png")
}
