// Package geom holds the axis-aligned bounding box, ray, and triangle types
// shared by the mesh and bvh2 packages. It generalizes the teacher engine's
// float64 Point-based AABB to the float32 vecmath.Vec3 the builder's scratch
// buffers use, and adds the surface-area operation the binned SAH split
// evaluator needs plus a slab ray test.
package geom

import "github.com/mirstar13/rtbvh/vecmath"

// AABB is an axis-aligned bounding box defined by its min and max corners.
type AABB struct {
	Min vecmath.Vec3
	Max vecmath.Vec3
}

// Empty returns an AABB that contains no points: its min is +inf and its
// max is -inf, so unioning it with anything yields that thing unchanged.
func Empty() AABB {
	return AABB{Min: vecmath.PosInf(), Max: vecmath.NegInf()}
}

// FromPoints returns the tight AABB enclosing the given points.
func FromPoints(points ...vecmath.Vec3) AABB {
	box := Empty()
	for _, p := range points {
		box = box.ExtendPoint(p)
	}
	return box
}

// ExtendPoint returns a new AABB that also encloses p.
func (a AABB) ExtendPoint(p vecmath.Vec3) AABB {
	return AABB{Min: vecmath.Min(a.Min, p), Max: vecmath.Max(a.Max, p)}
}

// Union returns the smallest AABB enclosing both a and b.
func Union(a, b AABB) AABB {
	return AABB{Min: vecmath.Min(a.Min, b.Min), Max: vecmath.Max(a.Max, b.Max)}
}

// Centroid returns the midpoint of the box.
func (a AABB) Centroid() vecmath.Vec3 {
	return vecmath.Scale(vecmath.Add(a.Min, a.Max), 0.5)
}

// Extent returns Max - Min componentwise.
func (a AABB) Extent() vecmath.Vec3 {
	return vecmath.Sub(a.Max, a.Min)
}

// LongestAxis returns the index (0=X, 1=Y, 2=Z) of the axis with the
// largest extent.
func (a AABB) LongestAxis() int {
	e := a.Extent()
	axis := 0
	longest := e.X
	if e.Y > longest {
		axis, longest = 1, e.Y
	}
	if e.Z > longest {
		axis = 2
	}
	return axis
}

// SurfaceArea returns the surface area of the box. A degenerate (empty)
// box — any extent negative — has zero surface area, matching the SAH
// convention that an empty bin contributes nothing to the cost.
func (a AABB) SurfaceArea() float32 {
	e := a.Extent()
	if e.X < 0 || e.Y < 0 || e.Z < 0 {
		return 0
	}
	return 2 * (e.X*e.Y + e.Y*e.Z + e.Z*e.X)
}

// Valid reports whether Min <= Max componentwise.
func (a AABB) Valid() bool {
	return a.Min.X <= a.Max.X && a.Min.Y <= a.Max.Y && a.Min.Z <= a.Max.Z
}
