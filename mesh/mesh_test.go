package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirstar13/rtbvh/vecmath"
)

func TestTriangleMeshAddVertexAddTriangle(t *testing.T) {
	m := NewTriangleMesh(7, nil, nil)

	i0 := m.AddVertex(vecmath.New(0, 0, 0))
	i1 := m.AddVertex(vecmath.New(1, 0, 0))
	i2 := m.AddVertex(vecmath.New(0, 1, 0))
	m.AddTriangle(i0, i1, i2)

	require.Equal(t, 1, m.NumFaces())
	require.Equal(t, 3, m.NumVertices())
	require.True(t, m.IsPureTriangle())
	require.Equal(t, uint32(7), m.ShapeID())

	f0, f1, f2 := m.Face(0)
	require.Equal(t, i0, f0)
	require.Equal(t, i1, f1)
	require.Equal(t, i2, f2)
	require.Equal(t, vecmath.New(1, 0, 0), m.Vertex(f1))
}

func TestNewTriangleMeshDoesNotCopySlices(t *testing.T) {
	verts := []vecmath.Vec3{vecmath.New(0, 0, 0)}
	faces := [][3]uint32{{0, 0, 0}}
	m := NewTriangleMesh(0, verts, faces)

	require.Equal(t, 1, m.NumVertices())
	require.Equal(t, 1, m.NumFaces())

	verts[0] = vecmath.New(5, 6, 7)
	faces[0] = [3]uint32{0, 0, 1}
	require.Equal(t, vecmath.New(5, 6, 7), m.Vertex(0))
	_, _, f2 := m.Face(0)
	require.Equal(t, uint32(1), f2)
}
