package geodeck

import (
	"container/list"
	"fmt"
	"sync"
	"time"
)

// DatasetCache manages loaded datasets with an LRU eviction policy.
//
// The cache stores fully-decoded datasets in memory and evicts least-recently-
// used entries when memory limits are exceeded. This enables lazy loading of
// datasets on demand while keeping frequently accessed ones readily available.
//
// Memory estimation is approximate, based on feature and coordinate counts.
//
// Example:
//
//	cache := geodeck.NewDatasetCache(256 * 1024 * 1024) // 256MB limit
//
//	dataset, err := cache.Get("airports.geojson", func() (*geodeck.Dataset, error) {
//	    return loader.LoadDataset(ctx, "airports.geojson")
//	})
type DatasetCache struct {
	maxMemory  int64 // Maximum memory in bytes
	usedMemory int64 // Current memory usage estimate
	datasets   map[string]*cacheEntry
	lru        *list.List // LRU list (most recent at front)
	mu         sync.RWMutex
}

// cacheEntry tracks a cached dataset and its metadata
type cacheEntry struct {
	name         string
	dataset      *Dataset
	memorySize   int64
	element      *list.Element // Position in LRU list
	lastAccessed time.Time
	accessCount  int
}

// NewDatasetCache creates a new cache with the specified memory limit in bytes.
//
// The limit is enforced approximately - actual memory usage may temporarily
// exceed it during loading. Set to 0 for unlimited cache size.
func NewDatasetCache(maxMemoryBytes int64) *DatasetCache {
	return &DatasetCache{
		maxMemory: maxMemoryBytes,
		datasets:  make(map[string]*cacheEntry),
		lru:       list.New(),
	}
}

// Get retrieves a dataset from cache or loads it using the provided loader
// function.
//
// If the dataset is cached, it's returned immediately and moved to the front of
// the LRU list. If not, the loader function is called, and the result is cached
// for future access. The loader is only called on cache miss.
func (c *DatasetCache) Get(name string, loader func() (*Dataset, error)) (*Dataset, error) {
	// Fast path: check cache with read lock
	c.mu.RLock()
	if entry, ok := c.datasets[name]; ok {
		c.mu.RUnlock()

		// Update access metadata with write lock
		c.mu.Lock()
		entry.lastAccessed = time.Now()
		entry.accessCount++
		c.lru.MoveToFront(entry.element)
		c.mu.Unlock()

		return entry.dataset, nil
	}
	c.mu.RUnlock()

	// Cache miss - load dataset
	dataset, err := loader()
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	// Add to cache; on failure the dataset is still usable uncached
	if err := c.Add(name, dataset); err != nil {
		return dataset, nil
	}

	return dataset, nil
}

// Add adds a dataset to the cache.
//
// If the cache is at capacity, least-recently-used entries are evicted to make
// room. Returns an error if the dataset is larger than the memory limit.
func (c *DatasetCache) Add(name string, dataset *Dataset) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Check if already cached
	if entry, ok := c.datasets[name]; ok {
		entry.dataset = dataset
		entry.lastAccessed = time.Now()
		entry.accessCount++
		c.lru.MoveToFront(entry.element)
		return nil
	}

	memSize := estimateDatasetMemory(dataset)

	if c.maxMemory > 0 && memSize > c.maxMemory {
		return fmt.Errorf("dataset too large for cache (%d bytes > %d bytes max)",
			memSize, c.maxMemory)
	}

	// Evict until we have space
	if c.maxMemory > 0 {
		for c.usedMemory+memSize > c.maxMemory && c.lru.Len() > 0 {
			c.evictLRU()
		}
	}

	entry := &cacheEntry{
		name:         name,
		dataset:      dataset,
		memorySize:   memSize,
		lastAccessed: time.Now(),
		accessCount:  1,
	}
	entry.element = c.lru.PushFront(entry)
	c.datasets[name] = entry
	c.usedMemory += memSize

	return nil
}

// evictLRU removes the least recently used dataset from cache.
// Must be called with c.mu locked.
func (c *DatasetCache) evictLRU() {
	elem := c.lru.Back()
	if elem == nil {
		return
	}

	entry := elem.Value.(*cacheEntry)
	c.lru.Remove(elem)
	delete(c.datasets, entry.name)
	c.usedMemory -= entry.memorySize
}

// Remove explicitly removes a dataset from the cache.
func (c *DatasetCache) Remove(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.datasets[name]; ok {
		c.lru.Remove(entry.element)
		delete(c.datasets, name)
		c.usedMemory -= entry.memorySize
	}
}

// Clear removes all datasets from the cache.
func (c *DatasetCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.datasets = make(map[string]*cacheEntry)
	c.lru.Init()
	c.usedMemory = 0
}

// Stats returns cache statistics.
func (c *DatasetCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	totalAccess := 0
	for _, entry := range c.datasets {
		totalAccess += entry.accessCount
	}

	return CacheStats{
		DatasetCount: len(c.datasets),
		UsedMemory:   c.usedMemory,
		MaxMemory:    c.maxMemory,
		TotalAccess:  totalAccess,
	}
}

// CacheStats holds cache performance metrics.
type CacheStats struct {
	DatasetCount int   // Number of datasets currently cached
	UsedMemory   int64 // Estimated memory usage in bytes
	MaxMemory    int64 // Maximum memory limit in bytes
	TotalAccess  int   // Total accesses across all cached datasets
}

// estimateDatasetMemory estimates memory usage for a dataset.
//
// This is approximate and based on:
//   - Base overhead: ~1KB per dataset
//   - Feature overhead: ~512 bytes per feature
//   - Coordinates: 16 bytes per coordinate
//
// Actual usage varies with property counts and string data.
func estimateDatasetMemory(dataset *Dataset) int64 {
	if dataset == nil {
		return 0
	}

	size := int64(1024)
	size += int64(dataset.FeatureCount()) * 512

	for i := range dataset.features {
		coords := 0
		dataset.features[i].geometry.eachPath(func(p Path) {
			coords += len(p)
		})
		size += int64(coords) * 16
	}

	return size
}
