package main

import (
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// mat4 stores a 4x4 matrix in row-major order, matching the teacher
// renderer's Matrix4x4 convention; uploadMat4 uploads it with
// gl.UniformMatrix4fv's transpose flag set, the same way the teacher's
// uploadMatrix does, so GLSL sees the expected column-major layout.
type mat4 [16]float32

func identity() mat4 {
	return mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// perspective builds a standard OpenGL perspective projection, following
// the same derivation the teacher's buildProjectionMatrix uses: a vertical
// field of view in radians, an aspect ratio, and near/far clip planes.
func perspective(fovY, aspect, near, far float64) mat4 {
	f := 1.0 / math.Tan(fovY/2.0)
	return mat4{
		float32(f / aspect), 0, 0, 0,
		0, float32(f), 0, 0,
		0, 0, float32((far + near) / (near - far)), float32((2 * far * near) / (near - far)),
		0, 0, -1, 0,
	}
}

func lookAt(eye, center, up [3]float32) mat4 {
	f := normalize(sub(center, eye))
	s := normalize(cross(f, up))
	u := cross(s, f)

	return mat4{
		s[0], s[1], s[2], -dot(s, eye),
		u[0], u[1], u[2], -dot(u, eye),
		-f[0], -f[1], -f[2], dot(f, eye),
		0, 0, 0, 1,
	}
}

func uploadMat4(loc int32, m mat4) {
	gl.UniformMatrix4fv(loc, 1, true, &m[0])
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func normalize(a [3]float32) [3]float32 {
	l := float32(math.Sqrt(float64(dot(a, a))))
	if l == 0 {
		return a
	}
	return [3]float32{a[0] / l, a[1] / l, a[2] / l}
}
