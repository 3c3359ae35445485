package mesh

import (
	"fmt"
	"sync"
)

// AssetManager caches meshes loaded from disk by path, assigning each a
// caller-visible shape ID (the value stamped into every leaf the builder
// emits for that mesh's faces). It is adapted from the teacher engine's
// AssetManager, trimmed to the one asset kind the builder cares about.
type AssetManager struct {
	mu       sync.RWMutex
	meshes   map[string]*TriangleMesh
	shapeIDs map[string]uint32
	nextID   uint32

	loaded    int
	cacheHits int
	cacheMiss int
}

// NewAssetManager creates an empty manager.
func NewAssetManager() *AssetManager {
	return &AssetManager{
		meshes:   make(map[string]*TriangleMesh),
		shapeIDs: make(map[string]uint32),
	}
}

// LoadMesh loads (or returns the cached) mesh at path, assigning it a fresh
// shape ID on first load.
func (am *AssetManager) LoadMesh(path string) (*TriangleMesh, error) {
	am.mu.RLock()
	if m, ok := am.meshes[path]; ok {
		am.mu.RUnlock()
		am.mu.Lock()
		am.cacheHits++
		am.mu.Unlock()
		return m, nil
	}
	am.mu.RUnlock()

	am.mu.Lock()
	shapeID := am.nextID
	am.nextID++
	am.mu.Unlock()

	m, err := LoadOBJ(path, shapeID)
	if err != nil {
		return nil, fmt.Errorf("asset manager: %w", err)
	}

	am.mu.Lock()
	am.meshes[path] = m
	am.shapeIDs[path] = shapeID
	am.loaded++
	am.cacheMiss++
	am.mu.Unlock()

	return m, nil
}

// LoadMeshAsync loads path on a separate goroutine and invokes callback
// with the result.
func (am *AssetManager) LoadMeshAsync(path string, callback func(*TriangleMesh, error)) {
	go func() {
		m, err := am.LoadMesh(path)
		callback(m, err)
	}()
}

// PreloadMeshes loads every path in parallel, returning the first error
// encountered (if any). All successful loads remain cached.
func (am *AssetManager) PreloadMeshes(paths []string) error {
	var wg sync.WaitGroup
	errs := make(chan error, len(paths))

	for _, p := range paths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			if _, err := am.LoadMesh(path); err != nil {
				errs <- err
			}
		}(p)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Providers returns every cached mesh as a Provider slice, in an order
// matching the given path list — the input order the builder requires.
func (am *AssetManager) Providers(paths []string) ([]Provider, error) {
	am.mu.RLock()
	defer am.mu.RUnlock()

	providers := make([]Provider, 0, len(paths))
	for _, p := range paths {
		m, ok := am.meshes[p]
		if !ok {
			return nil, fmt.Errorf("asset manager: %s not loaded", p)
		}
		providers = append(providers, m)
	}
	return providers, nil
}

// Stats reports cache effectiveness.
func (am *AssetManager) Stats() AssetManagerStats {
	am.mu.RLock()
	defer am.mu.RUnlock()
	total := am.cacheHits + am.cacheMiss
	rate := 0.0
	if total > 0 {
		rate = float64(am.cacheHits) / float64(total)
	}
	return AssetManagerStats{
		LoadedMeshes: am.loaded,
		CacheHits:    am.cacheHits,
		CacheMisses:  am.cacheMiss,
		CacheHitRate: rate,
	}
}

// AssetManagerStats summarizes the manager's cache behavior.
type AssetManagerStats struct {
	LoadedMeshes int
	CacheHits    int
	CacheMisses  int
	CacheHitRate float64
}

func (s AssetManagerStats) String() string {
	return fmt.Sprintf("meshes: %d loaded | cache: %.1f%% hit rate (%d hits, %d misses)",
		s.LoadedMeshes, s.CacheHitRate*100, s.CacheHits, s.CacheMisses)
}
