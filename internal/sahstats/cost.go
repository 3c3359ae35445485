// Package sahstats computes summary statistics over a built bvh2 tree,
// used by cmd/bvhstat to report how good a build is without needing a
// full ray-tracing traversal kernel.
package sahstats

import "github.com/mirstar13/rtbvh/bvh2"

// Stats summarizes a built tree.
type Stats struct {
	NodeCount     int
	LeafCount     int
	InternalCount int
	MaxDepth      int
	ExpectedCost  float64
}

// Compute walks nodes (as returned by Builder.Nodes) and tallies node
// counts, max depth, and the SAH-weighted expected traversal cost: the
// sum over every internal node of traversalCost + (SA(left)*countLeft +
// SA(right)*countRight) / SA(root), matching the cost term spec §4.2
// scores candidate splits with, but evaluated over the actual built tree
// rather than a candidate plane.
func Compute(nodes []bvh2.Node, traversalCost float32) Stats {
	if len(nodes) == 0 {
		return Stats{}
	}

	var s Stats
	s.NodeCount = len(nodes)

	rootSA := rootSurfaceArea(nodes[0])

	var walk func(idx, depth int) (leafCount int, cost float64)
	walk = func(idx, depth int) (int, float64) {
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		n := nodes[idx]
		if n.IsLeaf() {
			s.LeafCount++
			return 1, 0
		}
		s.InternalCount++

		leftCount, leftCost := walk(int(n.AddrLeft), depth+1)
		rightCount, rightCost := walk(int(n.AddrRight), depth+1)

		leftSA := boxSurfaceArea(n.ALo, n.AHi)
		rightSA := boxSurfaceArea(n.BLo, n.BHi)

		var nodeCost float64
		if rootSA > 0 {
			nodeCost = float64(traversalCost) +
				(leftSA*float64(leftCount)+rightSA*float64(rightCount))/rootSA
		}

		return leftCount + rightCount, leftCost + rightCost + nodeCost
	}

	_, totalCost := walk(0, 0)
	s.ExpectedCost = totalCost

	return s
}

func rootSurfaceArea(root bvh2.Node) float64 {
	if root.IsLeaf() {
		return boxSurfaceArea(root.ALo, root.AHi)
	}
	var lo, hi [3]float32
	for i := 0; i < 3; i++ {
		lo[i] = min(root.ALo[i], root.BLo[i])
		hi[i] = max(root.AHi[i], root.BHi[i])
	}
	return boxSurfaceArea(lo, hi)
}

func boxSurfaceArea(lo, hi [3]float32) float64 {
	ex := float64(hi[0] - lo[0])
	ey := float64(hi[1] - lo[1])
	ez := float64(hi[2] - lo[2])
	if ex < 0 || ey < 0 || ez < 0 {
		return 0
	}
	return 2 * (ex*ey + ey*ez + ez*ex)
}
