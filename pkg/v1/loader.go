package geodeck

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // Register decoders for basemap rasters
	_ "image/png"
	"os"
	"strings"
	"sync/atomic"

	"github.com/geodeck/geodeck/internal/geojson"
	"github.com/geodeck/geodeck/pkg/geodata"
)

// LoaderOptions configures dataset loading behavior.
type LoaderOptions struct {
	// CacheSize sets the maximum dataset cache memory in bytes.
	// Default: 256MB. Set to 0 for unlimited.
	CacheSize int64

	// ValidateGeometry enables coordinate range and ring closure checks.
	ValidateGeometry bool

	// SkipInvalid drops features with invalid geometry instead of failing the
	// whole dataset.
	SkipInvalid bool

	// Fetcher handles remote sources. Default: geodata.NewFetcher with
	// default options.
	Fetcher *geodata.Fetcher
}

// DefaultLoaderOptions returns loader options with defaults.
func DefaultLoaderOptions() LoaderOptions {
	return LoaderOptions{
		CacheSize:        256 * 1024 * 1024,
		ValidateGeometry: true,
		SkipInvalid:      false,
	}
}

// DataLoader loads GeoJSON datasets from local paths or HTTP URLs, with an LRU
// cache in front.
//
// Example:
//
//	loader := geodeck.NewDataLoader(geodeck.DefaultLoaderOptions())
//	countries, err := loader.LoadDataset(ctx, "testdata/countries.geojson")
//	airports, err := loader.LoadDataset(ctx,
//	    "https://example.com/airports.geojson")
type DataLoader struct {
	cache    *DatasetCache
	fetcher  *geodata.Fetcher
	validate bool
	skip     bool
	hits     atomic.Int64
	misses   atomic.Int64
}

// NewDataLoader creates a dataset loader.
func NewDataLoader(opts LoaderOptions) *DataLoader {
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = geodata.NewFetcher(geodata.DefaultFetcherOptions())
	}
	return &DataLoader{
		cache:    NewDatasetCache(opts.CacheSize),
		fetcher:  fetcher,
		validate: opts.ValidateGeometry,
		skip:     opts.SkipInvalid,
	}
}

// LoadDataset loads and decodes a GeoJSON dataset.
//
// source may be a local file path or an http(s) URL. Results are cached; the
// source string is the cache key.
func (l *DataLoader) LoadDataset(ctx context.Context, source string) (*Dataset, error) {
	loaded := false
	dataset, err := l.cache.Get(source, func() (*Dataset, error) {
		loaded = true
		return l.loadDataset(ctx, source)
	})
	if err != nil {
		return nil, err
	}
	if loaded {
		l.misses.Add(1)
	} else {
		l.hits.Add(1)
	}
	return dataset, nil
}

func (l *DataLoader) loadDataset(ctx context.Context, source string) (*Dataset, error) {
	data, err := l.readSource(ctx, source)
	if err != nil {
		return nil, err
	}

	fc, err := geojson.DecodeBytes(data, geojson.DecodeOptions{
		ValidateGeometry: l.validate,
		SkipInvalid:      l.skip,
	})
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}

	return convertCollection(source, fc), nil
}

// LoadImage loads a raster image (PNG or JPEG) from a local path or URL.
//
// Images are not cached; basemap rasters are typically loaded once per scene.
func (l *DataLoader) LoadImage(ctx context.Context, source string) (image.Image, error) {
	data, err := l.readSource(ctx, source)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", source, err)
	}
	return img, nil
}

// readSource fetches a URL or reads a local file.
func (l *DataLoader) readSource(ctx context.Context, source string) ([]byte, error) {
	if isRemote(source) {
		return l.fetcher.Fetch(ctx, source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return data, nil
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Cache returns the underlying dataset cache.
func (l *DataLoader) Cache() *DatasetCache {
	return l.cache
}

// CacheHitRate returns the cache hit rate (0.0 to 1.0).
func (l *DataLoader) CacheHitRate() float64 {
	hits := l.hits.Load()
	total := hits + l.misses.Load()
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// LoadImageFile decodes a PNG or JPEG image from a local file.
//
// Convenience for constructing a BitmapLayer without a DataLoader.
func LoadImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}
