// Package mesh supplies the mesh-provider contract the bvh2 builder
// consumes (spec §6) along with a concrete in-memory implementation, an
// OBJ loader, and a caching asset manager. None of this is part of the
// builder's core; it is the "mesh loading" external collaborator the
// accelerator spec explicitly keeps outside the builder.
package mesh

import "github.com/mirstar13/rtbvh/vecmath"

// Provider is everything the bvh2 builder needs from a mesh. It mirrors
// the teacher engine's Mesh type but strips out rendering/transform state
// the builder has no use for.
type Provider interface {
	// NumFaces returns the number of triangular faces in the mesh.
	NumFaces() int
	// Vertex returns the position of vertex i.
	Vertex(i uint32) vecmath.Vec3
	// Face returns the three vertex indices of face i.
	Face(i int) (i0, i1, i2 uint32)
	// IsPureTriangle reports whether every face in the mesh is a
	// triangle. The builder refuses to run on a mesh that reports false.
	IsPureTriangle() bool
	// ShapeID is the caller-assigned identifier stamped into every leaf
	// produced from this mesh's faces.
	ShapeID() uint32
}

// TriangleMesh is a minimal in-memory Provider: a flat vertex array and a
// flat face array, both indexed the way obj_loader.go's output is.
type TriangleMesh struct {
	vertices []vecmath.Vec3
	faces    [][3]uint32
	shapeID  uint32
}

// NewTriangleMesh builds a TriangleMesh from vertex positions and
// triangle-index triples. It copies neither slice; callers must not mutate
// them afterward.
func NewTriangleMesh(shapeID uint32, vertices []vecmath.Vec3, faces [][3]uint32) *TriangleMesh {
	return &TriangleMesh{shapeID: shapeID, vertices: vertices, faces: faces}
}

func (m *TriangleMesh) NumFaces() int { return len(m.faces) }

// NumVertices returns the number of vertices in the mesh's vertex array.
func (m *TriangleMesh) NumVertices() int { return len(m.vertices) }

func (m *TriangleMesh) Vertex(i uint32) vecmath.Vec3 { return m.vertices[i] }

func (m *TriangleMesh) Face(i int) (uint32, uint32, uint32) {
	f := m.faces[i]
	return f[0], f[1], f[2]
}

func (m *TriangleMesh) IsPureTriangle() bool { return true }

func (m *TriangleMesh) ShapeID() uint32 { return m.shapeID }

// AddTriangle appends a new face referencing three existing vertex indices.
func (m *TriangleMesh) AddTriangle(i0, i1, i2 uint32) {
	m.faces = append(m.faces, [3]uint32{i0, i1, i2})
}

// AddVertex appends a vertex and returns its index.
func (m *TriangleMesh) AddVertex(v vecmath.Vec3) uint32 {
	m.vertices = append(m.vertices, v)
	return uint32(len(m.vertices) - 1)
}
