package mesh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSimpleOBJ(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	contents := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestAssetManagerLoadAssignsShapeIDs(t *testing.T) {
	dir := t.TempDir()
	p0 := writeSimpleOBJ(t, dir, "a.obj")
	p1 := writeSimpleOBJ(t, dir, "b.obj")

	am := NewAssetManager()
	m0, err := am.LoadMesh(p0)
	require.NoError(t, err)
	m1, err := am.LoadMesh(p1)
	require.NoError(t, err)

	require.Equal(t, uint32(0), m0.ShapeID())
	require.Equal(t, uint32(1), m1.ShapeID())
}

func TestAssetManagerCachesByPath(t *testing.T) {
	dir := t.TempDir()
	p0 := writeSimpleOBJ(t, dir, "a.obj")

	am := NewAssetManager()
	first, err := am.LoadMesh(p0)
	require.NoError(t, err)
	second, err := am.LoadMesh(p0)
	require.NoError(t, err)

	require.Same(t, first, second)

	stats := am.Stats()
	require.Equal(t, 1, stats.LoadedMeshes)
	require.Equal(t, 1, stats.CacheHits)
	require.Equal(t, 1, stats.CacheMisses)
	require.InDelta(t, 0.5, stats.CacheHitRate, 1e-9)
}

func TestAssetManagerPreloadAndProviders(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeSimpleOBJ(t, dir, "a.obj"),
		writeSimpleOBJ(t, dir, "b.obj"),
		writeSimpleOBJ(t, dir, "c.obj"),
	}

	am := NewAssetManager()
	require.NoError(t, am.PreloadMeshes(paths))

	providers, err := am.Providers(paths)
	require.NoError(t, err)
	require.Len(t, providers, 3)

	seen := make(map[uint32]bool)
	for _, p := range providers {
		seen[p.ShapeID()] = true
	}
	require.Len(t, seen, 3)
}

func TestAssetManagerProvidersErrorsOnUnloadedPath(t *testing.T) {
	am := NewAssetManager()
	_, err := am.Providers([]string{"/never/loaded.obj"})
	require.Error(t, err)
}

func TestAssetManagerLoadMeshAsync(t *testing.T) {
	dir := t.TempDir()
	p0 := writeSimpleOBJ(t, dir, "a.obj")

	am := NewAssetManager()
	done := make(chan error, 1)
	am.LoadMeshAsync(p0, func(m *TriangleMesh, err error) {
		done <- err
	})

	require.NoError(t, <-done)
}

func TestAssetManagerStatsStringFormat(t *testing.T) {
	stats := AssetManagerStats{LoadedMeshes: 2, CacheHits: 1, CacheMisses: 2, CacheHitRate: 1.0 / 3.0}
	require.Contains(t, stats.String(), "2 loaded")
	require.Contains(t, stats.String(), "1 hits")
}
