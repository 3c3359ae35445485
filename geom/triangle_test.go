package geom

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirstar13/rtbvh/vecmath"
)

func TestTriangleBounds(t *testing.T) {
	v0 := vecmath.New(0, 0, 0)
	v1 := vecmath.New(2, 0, 0)
	v2 := vecmath.New(0, 2, 0)

	min, max, centroid := TriangleBounds(v0, v1, v2)

	require.Equal(t, vecmath.New(0, 0, 0), min)
	require.Equal(t, vecmath.New(2, 2, 0), max)
	require.Equal(t, vecmath.New(1, 1, 0), centroid)
}

func TestTriangleBoundsDegenerate(t *testing.T) {
	p := vecmath.New(3, 3, 3)
	min, max, centroid := TriangleBounds(p, p, p)

	require.Equal(t, p, min)
	require.Equal(t, p, max)
	require.Equal(t, p, centroid)
}
