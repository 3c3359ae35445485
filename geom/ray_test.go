package geom

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirstar13/rtbvh/vecmath"
)

func TestIntersectsAABBHit(t *testing.T) {
	box := AABB{Min: vecmath.New(-1, -1, -1), Max: vecmath.New(1, 1, 1)}
	r := Ray{Origin: vecmath.New(0, 0, -5), Dir: vecmath.New(0, 0, 1)}

	hit, t0 := r.IntersectsAABB(box, 0, 1000)
	require.True(t, hit)
	require.InDelta(t, 4.0, t0, 1e-5)
}

func TestIntersectsAABBMiss(t *testing.T) {
	box := AABB{Min: vecmath.New(-1, -1, -1), Max: vecmath.New(1, 1, 1)}
	r := Ray{Origin: vecmath.New(5, 5, -5), Dir: vecmath.New(0, 0, 1)}

	hit, _ := r.IntersectsAABB(box, 0, 1000)
	require.False(t, hit)
}

func TestIntersectsAABBParallelOutsideSlab(t *testing.T) {
	box := AABB{Min: vecmath.New(-1, -1, -1), Max: vecmath.New(1, 1, 1)}
	r := Ray{Origin: vecmath.New(5, 0, -5), Dir: vecmath.New(0, 0, 1)}

	hit, _ := r.IntersectsAABB(box, 0, 1000)
	require.False(t, hit)
}

func TestIntersectsAABBBeyondTMaxClipped(t *testing.T) {
	box := AABB{Min: vecmath.New(-1, -1, -1), Max: vecmath.New(1, 1, 1)}
	r := Ray{Origin: vecmath.New(0, 0, -5), Dir: vecmath.New(0, 0, 1)}

	hit, _ := r.IntersectsAABB(box, 0, 3)
	require.False(t, hit)
}
