// Package vecmath provides the float32 vector arithmetic the BVH builder's
// per-primitive scratch buffers are built on. Vec3 carries a padding lane so
// that component-wise min/max/add/scale read as 4-wide operations even
// though Go has no portable SIMD intrinsics to back them.
package vecmath

import "math"

// Vec3 is a 3-component vector stored with an unused 4th lane. The lane
// exists so extraction code can reason about "4-wide" loads the way the
// original SSE implementation does; it must never leak into a min/max
// reduction (see PosInf / NegInf).
type Vec3 struct {
	X, Y, Z, _W float32
}

// New builds a Vec3 from three components; the padding lane is always zero.
func New(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// PosInf returns a vector suitable for seeding a running minimum: every
// real component will compare less than +inf.
func PosInf() Vec3 {
	inf := float32(math.Inf(1))
	return Vec3{X: inf, Y: inf, Z: inf}
}

// NegInf returns a vector suitable for seeding a running maximum.
func NegInf() Vec3 {
	inf := float32(math.Inf(-1))
	return Vec3{X: inf, Y: inf, Z: inf}
}

// Min returns the component-wise minimum of a and b.
func Min(a, b Vec3) Vec3 {
	return Vec3{X: minf(a.X, b.X), Y: minf(a.Y, b.Y), Z: minf(a.Z, b.Z)}
}

// Max returns the component-wise maximum of a and b.
func Max(a, b Vec3) Vec3 {
	return Vec3{X: maxf(a.X, b.X), Y: maxf(a.Y, b.Y), Z: maxf(a.Z, b.Z)}
}

// Add returns the component-wise sum of a and b.
func Add(a, b Vec3) Vec3 {
	return Vec3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Sub returns the component-wise difference a - b.
func Sub(a, b Vec3) Vec3 {
	return Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Scale returns v scaled uniformly by s.
func Scale(v Vec3, s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Component returns the value of v along the given axis (0=X, 1=Y, 2=Z).
func (v Vec3) Component(axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// IsFinite reports whether all three real components are finite.
func (v Vec3) IsFinite() bool {
	return !math.IsInf(float64(v.X), 0) && !math.IsNaN(float64(v.X)) &&
		!math.IsInf(float64(v.Y), 0) && !math.IsNaN(float64(v.Y)) &&
		!math.IsInf(float64(v.Z), 0) && !math.IsNaN(float64(v.Z))
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
