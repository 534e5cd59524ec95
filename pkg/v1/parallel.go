package geodeck

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
)

// LoadOptions controls parallel loading behavior and error handling.
type LoadOptions struct {
	// Parallel enables concurrent dataset loading.
	// When true, datasets are loaded using multiple worker goroutines.
	Parallel bool

	// Workers specifies the number of parallel loader goroutines.
	// If 0, defaults to runtime.NumCPU().
	// Only used when Parallel is true.
	Workers int

	// SkipErrors causes loading to continue even when individual datasets fail.
	// Failed datasets are skipped and errors are collected.
	// When false, the first error stops loading and is returned immediately.
	SkipErrors bool

	// Progress is an optional callback for tracking loading progress.
	// Called after each dataset is loaded (successfully or with error).
	// Parameters: (loaded, total) where loaded is the count processed so far.
	Progress func(loaded, total int)

	// ErrorLog is an optional writer for detailed error reporting.
	// Each loading error is written here with the source and error details.
	ErrorLog io.Writer
}

// DefaultLoadOptions returns load options with sensible defaults.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Parallel:   true,
		Workers:    runtime.NumCPU(),
		SkipErrors: true,
		Progress:   nil,
		ErrorLog:   nil,
	}
}

// LoadDatasetsParallel loads multiple datasets in parallel with progress
// reporting.
//
// This uses a worker pool to load datasets concurrently, which matters mostly
// for remote sources where download latency dominates. The returned slice
// preserves the order of sources; failed sources are omitted.
//
// Example:
//
//	sources := []string{"countries.geojson", "airports.geojson"}
//	datasets, errs := geodeck.LoadDatasetsParallel(ctx, sources, loader,
//	    geodeck.LoadOptions{
//	        Parallel:   true,
//	        SkipErrors: true,
//	        Progress: func(loaded, total int) {
//	            fmt.Printf("\rLoading: %d/%d", loaded, total)
//	        },
//	        ErrorLog: os.Stderr,
//	    })
func LoadDatasetsParallel(ctx context.Context, sources []string, loader *DataLoader, opts LoadOptions) ([]*Dataset, []error) {
	if len(sources) == 0 {
		return []*Dataset{}, nil
	}

	if !opts.Parallel {
		return loadDatasetsSerial(ctx, sources, loader, opts)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(sources) {
		workers = len(sources)
	}

	type loadResult struct {
		index   int
		dataset *Dataset
		err     error
	}

	jobs := make(chan int, len(sources))
	results := make(chan loadResult, len(sources))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				dataset, err := loader.LoadDataset(ctx, sources[index])
				results <- loadResult{
					index:   index,
					dataset: dataset,
					err:     err,
				}
			}
		}()
	}

	for i := range sources {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	datasetMap := make(map[int]*Dataset)
	var errors []error
	loaded := 0

	for result := range results {
		loaded++

		if opts.Progress != nil {
			opts.Progress(loaded, len(sources))
		}

		if result.err != nil {
			err := fmt.Errorf("%s: %w", sources[result.index], result.err)

			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "Error loading dataset: %v\n", err)
			}

			if opts.SkipErrors {
				errors = append(errors, err)
				continue
			}
			return nil, []error{err}
		}

		datasetMap[result.index] = result.dataset
	}

	// Build ordered result list
	datasets := make([]*Dataset, 0, len(datasetMap))
	for i := 0; i < len(sources); i++ {
		if dataset, ok := datasetMap[i]; ok {
			datasets = append(datasets, dataset)
		}
	}

	return datasets, errors
}

// loadDatasetsSerial loads datasets one at a time (fallback when Parallel=false).
func loadDatasetsSerial(ctx context.Context, sources []string, loader *DataLoader, opts LoadOptions) ([]*Dataset, []error) {
	datasets := make([]*Dataset, 0, len(sources))
	var errors []error

	for i, source := range sources {
		if opts.Progress != nil {
			opts.Progress(i, len(sources))
		}

		dataset, err := loader.LoadDataset(ctx, source)
		if err != nil {
			err := fmt.Errorf("%s: %w", source, err)

			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "Error loading dataset: %v\n", err)
			}

			if opts.SkipErrors {
				errors = append(errors, err)
				continue
			}
			return nil, []error{err}
		}

		datasets = append(datasets, dataset)
	}

	if opts.Progress != nil {
		opts.Progress(len(sources), len(sources))
	}

	return datasets, errors
}
