package mesh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirstar13/rtbvh/vecmath"
)

func writeOBJ(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.obj")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadOBJSingleTriangle(t *testing.T) {
	path := writeOBJ(t, `
# comment
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`)
	m, err := LoadOBJ(path, 3)
	require.NoError(t, err)
	require.Equal(t, 3, m.NumVertices())
	require.Equal(t, 1, m.NumFaces())
	require.Equal(t, uint32(3), m.ShapeID())

	i0, i1, i2 := m.Face(0)
	require.Equal(t, vecmath.New(0, 0, 0), m.Vertex(i0))
	require.Equal(t, vecmath.New(1, 0, 0), m.Vertex(i1))
	require.Equal(t, vecmath.New(0, 1, 0), m.Vertex(i2))
}

func TestLoadOBJFanTriangulatesQuad(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`)
	m, err := LoadOBJ(path, 0)
	require.NoError(t, err)
	require.Equal(t, 2, m.NumFaces())
	require.True(t, m.IsPureTriangle())

	f0a, f0b, f0c := m.Face(0)
	require.Equal(t, [3]uint32{0, 1, 2}, [3]uint32{f0a, f0b, f0c})
	f1a, f1b, f1c := m.Face(1)
	require.Equal(t, [3]uint32{0, 2, 3}, [3]uint32{f1a, f1b, f1c})
}

func TestLoadOBJNegativeRelativeIndices(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`)
	m, err := LoadOBJ(path, 0)
	require.NoError(t, err)
	i0, i1, i2 := m.Face(0)
	require.Equal(t, [3]uint32{0, 1, 2}, [3]uint32{i0, i1, i2})
}

func TestLoadOBJVertexTextureNormalIndices(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
f 1/1/1 2/2/1 3/3/1
`)
	m, err := LoadOBJ(path, 0)
	require.NoError(t, err)
	require.Equal(t, 1, m.NumFaces())
}

func TestLoadOBJMissingFile(t *testing.T) {
	_, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj"), 0)
	require.Error(t, err)
}

func TestLoadOBJInvalidVertex(t *testing.T) {
	path := writeOBJ(t, "v not-a-number 0 0\n")
	_, err := LoadOBJ(path, 0)
	require.Error(t, err)
}

func TestLoadOBJFaceIndexOutOfRange(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 9
`)
	_, err := LoadOBJ(path, 0)
	require.Error(t, err)
}
