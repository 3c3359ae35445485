package geom

import "github.com/mirstar13/rtbvh/vecmath"

// Face holds the three vertex indices of a triangular face within a mesh's
// vertex array. It is the "record holding three vertex indices" the mesh
// provider contract (spec §6) requires.
type Face struct {
	I0, I1, I2 uint32
}

// TriangleBounds computes the AABB and centroid of the triangle (v0, v1, v2)
// using the 4-wide component-wise min/max/add/scale from vecmath, matching
// spec §4.1's extraction algorithm.
func TriangleBounds(v0, v1, v2 vecmath.Vec3) (min, max, centroid vecmath.Vec3) {
	min = vecmath.Min(vecmath.Min(v0, v1), v2)
	max = vecmath.Max(vecmath.Max(v0, v1), v2)
	centroid = vecmath.Scale(vecmath.Add(min, max), 0.5)
	return min, max, centroid
}
