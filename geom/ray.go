package geom

import "github.com/mirstar13/rtbvh/vecmath"

// Ray is a parametric ray for testing against AABBs. The builder itself
// never traces a ray (that is the traversal kernel's job, out of scope per
// the accelerator's own spec), and none of the cmd tools use it; the slab
// test here mirrors the test a real kernel would run against the node
// array's boxes.
type Ray struct {
	Origin vecmath.Vec3
	Dir    vecmath.Vec3
}

// IntersectsAABB runs the classic slab test against box, returning whether
// the ray hits it within [tMin, tMax] and the entry distance.
func (r Ray) IntersectsAABB(box AABB, tMin, tMax float32) (bool, float32) {
	for axis := 0; axis < 3; axis++ {
		origin := r.Origin.Component(axis)
		dir := r.Dir.Component(axis)
		lo := box.Min.Component(axis)
		hi := box.Max.Component(axis)

		if dir == 0 {
			if origin < lo || origin > hi {
				return false, 0
			}
			continue
		}

		invD := 1 / dir
		t0 := (lo - origin) * invD
		t1 := (hi - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false, 0
		}
	}
	return true, tMin
}
