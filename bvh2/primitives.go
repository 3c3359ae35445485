package bvh2

import (
	"fmt"

	"github.com/mirstar13/rtbvh/geom"
	"github.com/mirstar13/rtbvh/mesh"
	"github.com/mirstar13/rtbvh/vecmath"
)

// primMeta is the (mesh, face index) back-reference for one extracted
// primitive. It is never reordered during build; only the refs index
// array is permuted (spec §3).
type primMeta struct {
	provider  mesh.Provider
	faceIndex int
}

// primitiveScratch holds the structure-of-arrays scratch buffers spec §3
// describes: one AABB min/max/centroid per primitive, metadata, and the
// refs index array partitioned during the build.
type primitiveScratch struct {
	aabbMin  []vecmath.Vec3
	aabbMax  []vecmath.Vec3
	centroid []vecmath.Vec3
	meta     []primMeta
	refs     []uint32
}

// extractPrimitives walks every mesh and face in input order, computing
// each triangle's AABB and centroid with 4-wide vector arithmetic, and
// accumulating the scene AABB and the scene centroid AABB (spec §4.1).
func extractPrimitives(meshes []mesh.Provider) (*primitiveScratch, geom.AABB, geom.AABB, error) {
	total := 0
	for i, m := range meshes {
		if !m.IsPureTriangle() {
			return nil, geom.AABB{}, geom.AABB{}, fmt.Errorf("bvh2: mesh %d: %w", i, ErrInvalidPrimitive)
		}
		total += m.NumFaces()
	}
	if total == 0 {
		return nil, geom.AABB{}, geom.AABB{}, ErrEmptyInput
	}

	scratch := &primitiveScratch{
		aabbMin:  make([]vecmath.Vec3, total),
		aabbMax:  make([]vecmath.Vec3, total),
		centroid: make([]vecmath.Vec3, total),
		meta:     make([]primMeta, total),
		refs:     make([]uint32, total),
	}

	sceneBox := geom.Empty()
	centroidBox := geom.Empty()

	cursor := 0
	for _, m := range meshes {
		for face := 0; face < m.NumFaces(); face++ {
			i0, i1, i2 := m.Face(face)
			v0 := m.Vertex(i0)
			v1 := m.Vertex(i1)
			v2 := m.Vertex(i2)

			pmin, pmax, centroid := geom.TriangleBounds(v0, v1, v2)

			scratch.aabbMin[cursor] = pmin
			scratch.aabbMax[cursor] = pmax
			scratch.centroid[cursor] = centroid
			scratch.meta[cursor] = primMeta{provider: m, faceIndex: face}
			scratch.refs[cursor] = uint32(cursor)

			sceneBox = sceneBox.ExtendPoint(pmin).ExtendPoint(pmax)
			centroidBox = centroidBox.ExtendPoint(centroid)

			cursor++
		}
	}

	return scratch, sceneBox, centroidBox, nil
}

// boundsOf computes the tight AABB and centroid AABB of the primitives
// named by refs, by re-reading the (immutable) scratch arrays. Used after
// partitioning, since the binned SAH boxes are only an approximation
// (spec §4.2: "do not reuse the binned approximation for the node's
// stored boxes — those must be tight").
func (s *primitiveScratch) boundsOf(refs []uint32) (box, centroidBox geom.AABB) {
	box = geom.Empty()
	centroidBox = geom.Empty()
	for _, r := range refs {
		box = box.ExtendPoint(s.aabbMin[r]).ExtendPoint(s.aabbMax[r])
		centroidBox = centroidBox.ExtendPoint(s.centroid[r])
	}
	return box, centroidBox
}
