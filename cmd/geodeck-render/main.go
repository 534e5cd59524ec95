// Command geodeck-render renders the bundled world demo to a PNG: a basemap
// raster, country outlines, airport markers, great-circle arcs out of London,
// and a graticule grid, shown side by side in a flat map and a globe view.
//
// Configuration comes from flags and an optional .env file:
//
//	GEODECK_DARK_MODE=true   # dark palette
//	GEODECK_DATA_DIR=.cache  # where downloads land
//	GEODECK_OUTPUT=demo.png  # output path
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/geodeck/geodeck/pkg/geodata"
	geodeck "github.com/geodeck/geodeck/pkg/v1"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not read .env: %v", err)
	}

	var (
		output  = flag.String("o", envOr("GEODECK_OUTPUT", "geodeck.png"), "output PNG path")
		dataDir = flag.String("data", envOr("GEODECK_DATA_DIR", ".geodeck-cache"), "download cache directory")
		dark    = flag.Bool("dark", envBool("GEODECK_DARK_MODE"), "use the dark palette")
		width   = flag.Int("width", 1600, "canvas width in pixels")
		height  = flag.Int("height", 700, "canvas height in pixels")
		timeout = flag.Duration("timeout", 2*time.Minute, "total download timeout")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	theme := geodeck.ThemeFor(*dark)
	log.Printf("Rendering with the %s theme", theme.Mode)

	scene, err := buildScene(ctx, *dataDir, theme, *width, *height)
	if err != nil {
		log.Fatalf("Build scene: %v", err)
	}

	if err := scene.RenderPNG(*output); err != nil {
		log.Fatalf("Render: %v", err)
	}
	log.Printf("Wrote %s", *output)
}

// buildScene downloads the demo datasets and assembles the full layer stack.
func buildScene(ctx context.Context, dataDir string, theme geodeck.Theme, width, height int) (*geodeck.Scene, error) {
	catalog := geodata.BuiltinCatalog()
	fetcher := geodata.NewFetcher(geodata.DefaultFetcherOptions())

	countriesPath, err := fetchEntry(ctx, fetcher, catalog, "world-countries", dataDir)
	if err != nil {
		return nil, err
	}
	airportsPath, err := fetchEntry(ctx, fetcher, catalog, "airports", dataDir)
	if err != nil {
		return nil, err
	}
	basemapPath, err := fetchEntry(ctx, fetcher, catalog, "world-basemap", dataDir)
	if err != nil {
		return nil, err
	}

	loader := geodeck.NewDataLoader(geodeck.LoaderOptions{
		CacheSize:        256 * 1024 * 1024,
		ValidateGeometry: true,
		SkipInvalid:      true,
	})

	sources := []string{countriesPath, airportsPath}
	datasets, errs := geodeck.LoadDatasetsParallel(ctx, sources, loader, geodeck.LoadOptions{
		Parallel:   true,
		SkipErrors: false,
		Progress: func(loaded, total int) {
			log.Printf("Loaded %d/%d datasets", loaded, total)
		},
		ErrorLog: os.Stderr,
	})
	if len(errs) > 0 {
		return nil, errs[0]
	}
	countries, airports := datasets[0], datasets[1]
	log.Printf("Countries: %d features, airports: %d features",
		countries.FeatureCount(), airports.FeatureCount())

	basemap, err := geodeck.LoadImageFile(basemapPath)
	if err != nil {
		return nil, err
	}

	scene := geodeck.NewScene(geodeck.SceneOptions{
		Width:   width,
		Height:  height,
		Theme:   theme,
		ViewGap: 8,
	})
	scene.AddView(geodeck.NewMapView(geodeck.MapViewOptions{Name: "map", Zoom: 1.5}))
	scene.AddView(geodeck.NewGlobeView(geodeck.GlobeViewOptions{
		Name:   "globe",
		Center: geodeck.Coordinate{Lon: -0.45, Lat: 51.47},
	}))

	world := geodeck.Bounds{MinLon: -180, MaxLon: 180, MinLat: -90, MaxLat: 90}
	scene.AddLayer(geodeck.NewBitmapLayer(basemap, world, geodeck.BitmapLayerOptions{
		ID:      "basemap",
		Opacity: 0.8,
	}))
	scene.AddLayer(geodeck.NewGeoJSONLayer(countries, geodeck.GeoJSONLayerOptions{
		ID: "countries",
	}))
	scene.AddLayer(geodeck.NewPathLayer(geodeck.GenerateGraticule(30), geodeck.PathLayerOptions{
		ID: "graticule",
	}))
	scene.AddLayer(geodeck.NewArcLayer(hubArcs(airports, 16), geodeck.DefaultArcLayerOptions()))
	scene.AddLayer(geodeck.NewScatterplotLayer(airports, geodeck.ScatterplotLayerOptions{
		ID:     "airports",
		Radius: 3,
		GetRadius: func(f *geodeck.Feature) float64 {
			if t, _ := f.Property("type"); t == "major" {
				return 5
			}
			return 0
		},
	}))

	scene.AddWidget(geodeck.NewZoomWidget(geodeck.DefaultZoomWidgetOptions()))
	scene.AddWidget(geodeck.NewCompassWidget(geodeck.DefaultCompassWidgetOptions()))
	scene.AddWidget(geodeck.NewFullscreenWidget(geodeck.DefaultFullscreenWidgetOptions()))
	scene.AddWidget(geodeck.NewLayerListWidget(geodeck.DefaultLayerListWidgetOptions()))

	return scene, nil
}

// fetchEntry resolves a catalog name and downloads it into the cache directory.
func fetchEntry(ctx context.Context, fetcher *geodata.Fetcher, catalog *geodata.Catalog, name, dataDir string) (string, error) {
	entry, ok := catalog.Lookup(name)
	if !ok {
		log.Fatalf("Unknown catalog entry: %s", name)
	}
	log.Printf("Fetching %s (%s)", entry.Name, entry.Kind)
	return fetcher.FetchFile(ctx, entry.URL, dataDir)
}

// hubArcs builds great-circle arcs from Heathrow to the first n major airports.
func hubArcs(airports *geodeck.Dataset, n int) []geodeck.Arc {
	hub := geodeck.Coordinate{Lon: -0.4543, Lat: 51.4700}

	var arcs []geodeck.Arc
	for _, f := range airports.Features() {
		if len(arcs) >= n {
			break
		}
		if t, _ := f.Property("type"); t != "major" {
			continue
		}
		g := f.Geometry()
		if g.Type != geodeck.GeometryTypePoint || len(g.Points) == 0 {
			continue
		}
		arcs = append(arcs, geodeck.Arc{
			Source:     hub,
			Target:     g.Points[0],
			Properties: f.Properties(),
		})
	}
	return arcs
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
