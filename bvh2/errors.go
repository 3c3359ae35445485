package bvh2

import "errors"

// Sentinel errors surfaced by Build. All three are fatal for the call: the
// builder's previously built tree (if any) is preserved unchanged and the
// scratch state for the failed attempt is discarded.
var (
	// ErrInvalidPrimitive is returned when a mesh reports non-triangular
	// faces (Provider.IsPureTriangle() == false).
	ErrInvalidPrimitive = errors.New("bvh2: mesh is not pure-triangle")

	// ErrEmptyInput is returned when the total face count across all
	// input meshes is zero.
	ErrEmptyInput = errors.New("bvh2: no faces to build")

	// ErrOutOfMemory is returned when the aligned node-array allocator
	// fails. Allocation of the per-primitive scratch buffers is not
	// checked and does not report this error.
	ErrOutOfMemory = errors.New("bvh2: allocation failed")
)
