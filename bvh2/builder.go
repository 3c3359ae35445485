// Package bvh2 builds a binary bounding-volume hierarchy over a flat set
// of input triangle meshes: a single-threaded, synchronous pipeline of
// primitive extraction, a binned-SAH/median split evaluator, a
// stack-driven recursive builder, and a fixed 64-byte node encoder. The
// output is a contiguous, indexed Node array ready for cache-efficient
// ray traversal; this package never traces a ray itself.
package bvh2

import (
	"github.com/mirstar13/rtbvh/geom"
	"github.com/mirstar13/rtbvh/mesh"
)

// Builder owns the built node array across calls. It is not reentrant —
// the same Builder must not have Build called concurrently — but two
// Builders on disjoint inputs may run on separate goroutines without any
// shared state (spec §5).
type Builder struct {
	cfg   Config
	nodes []Node
	store *alignedNodes
}

// New creates a Builder with the given configuration. NumBins is clamped
// to a minimum of 2 (and defaulted to DefaultNumBins when left zero) the
// first time it's used, not at construction, so a zero Config is valid
// and resolves to DefaultConfig()'s behavior.
func New(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// Build replaces any previously built tree with a new one over meshes.
// Meshes are walked in input order; within each mesh, faces are walked in
// index order (spec §4.1). On error, the builder is left exactly as it
// was before the call (spec §7): the new scratch state is discarded and
// Clear is never implicitly invoked.
func (b *Builder) Build(meshes []mesh.Provider) error {
	cfg := b.cfg.normalized()

	scratch, sceneBox, sceneCentroidBox, err := extractPrimitives(meshes)
	if err != nil {
		return err
	}

	n := len(scratch.refs)
	totalNodes := 2*n - 1

	buf, err := newAlignedNodes(totalNodes)
	if err != nil {
		return err
	}
	nodes := buf.Nodes

	counter := 0
	allocNode := func() int {
		idx := counter
		counter++
		return idx
	}

	// pending is one entry of the explicit work stack spec §4.3 requires:
	// the refs slice to partition, its already-known box pair (handed
	// down from the parent's split so it never needs recomputation), and
	// the node index this subproblem must emit into.
	type pending struct {
		refs        []uint32
		box         geom.AABB
		centroidBox geom.AABB
		nodeIndex   int
	}

	rootIndex := allocNode()
	stack := []pending{{refs: scratch.refs, box: sceneBox, centroidBox: sceneCentroidBox, nodeIndex: rootIndex}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(top.refs) <= MaxLeafPrimitives {
			ref := top.refs[0]
			meta := scratch.meta[ref]
			i0, i1, i2 := meta.provider.Face(meta.faceIndex)
			v0 := meta.provider.Vertex(i0)
			v1 := meta.provider.Vertex(i1)
			v2 := meta.provider.Vertex(i2)
			setLeaf(&nodes[top.nodeIndex], v0, v1, v2, meta.provider.ShapeID(), uint32(meta.faceIndex))
			continue
		}

		decision := evaluateAndPartition(scratch, top.refs, top.box, top.centroidBox, cfg)

		leftRefs := top.refs[:decision.leftCount]
		rightRefs := top.refs[decision.leftCount:]

		leftIndex := allocNode()
		rightIndex := allocNode()

		setInternal(&nodes[top.nodeIndex],
			decision.leftBox.Min, decision.leftBox.Max,
			decision.rightBox.Min, decision.rightBox.Max,
			uint32(leftIndex), uint32(rightIndex))

		// Push right before left so left is popped first: the stack is
		// LIFO, so this realizes the required depth-first,
		// left-before-right emission order (spec §4.3 determinism).
		stack = append(stack, pending{
			refs: rightRefs, box: decision.rightBox, centroidBox: decision.rightCentroidBox, nodeIndex: rightIndex,
		})
		stack = append(stack, pending{
			refs: leftRefs, box: decision.leftBox, centroidBox: decision.leftCentroidBox, nodeIndex: leftIndex,
		})
	}

	b.store = buf
	b.nodes = nodes[:counter]
	return nil
}

// Clear releases the built tree. Idempotent: calling it on an already
// empty builder is a no-op.
func (b *Builder) Clear() {
	b.store = nil
	b.nodes = nil
}

// Nodes returns the current node array. Index 0 is the root; it is valid
// (and the caller's to read) only between a successful Build and the next
// Build or Clear call (spec §5's "build-then-publish" contract).
func (b *Builder) Nodes() []Node {
	return b.nodes
}

// NodeCount returns len(Nodes()).
func (b *Builder) NodeCount() int {
	return len(b.nodes)
}
