package bvh2

import (
	"sort"

	"github.com/mirstar13/rtbvh/geom"
)

// binEpsilon keeps the top bin's upper edge strictly inside [0, B) after
// the floor() in the bin-index formula (spec §4.2 step 2).
const binEpsilon = 1e-4

// splitDecision is the outcome of evaluateAndPartition: refs has already
// been reordered in place so that the first leftCount entries belong to
// the left child, with tight (not binned-approximate) boxes for both
// halves.
type splitDecision struct {
	axis                       int
	leftCount                  int
	leftBox, leftCentroidBox   geom.AABB
	rightBox, rightCentroidBox geom.AABB
}

// evaluateAndPartition chooses a split for a subproblem of more than one
// primitive and partitions refs in place accordingly. It always succeeds:
// binned SAH is tried first when configured and the slice is large enough,
// falling back to equal-count median split whenever SAH finds nothing
// better than a leaf (spec §4.2's acceptance rule).
func evaluateAndPartition(scratch *primitiveScratch, refs []uint32, box, centroidBox geom.AABB, cfg Config) splitDecision {
	count := len(refs)

	if cfg.UseSAH && count >= MinSAHPrimitives {
		if d, ok := trySAHSplit(scratch, refs, box, centroidBox, cfg); ok {
			return d
		}
	}

	return medianSplit(scratch, refs, centroidBox)
}

type binAccum struct {
	count int
	box   geom.AABB
}

// trySAHSplit runs the binned SAH sweep of spec §4.2 and reports whether
// the best candidate beats the leaf cost (count primitives, cost 1 each).
func trySAHSplit(scratch *primitiveScratch, refs []uint32, box, centroidBox geom.AABB, cfg Config) (splitDecision, bool) {
	count := len(refs)
	parentSA := box.SurfaceArea()
	leafCost := float32(count)

	numBins := cfg.NumBins
	if numBins < minNumBins {
		numBins = DefaultNumBins
	}

	bestFound := false
	var bestCost float32
	var bestAxis, bestSplit int

	for axis := 0; axis < 3; axis++ {
		lo := centroidBox.Min.Component(axis)
		hi := centroidBox.Max.Component(axis)
		extent := hi - lo
		if extent <= 0 {
			// Zero centroid extent on this axis: no meaningful split
			// plane exists (spec §4.2 step 1, and the "all triangles
			// coincident" boundary case in §8).
			continue
		}

		k := float32(numBins) * (1 - binEpsilon) / extent

		bins := make([]binAccum, numBins)
		for i := range bins {
			bins[i].box = geom.Empty()
		}
		binOf := make([]int, len(refs))
		for i, r := range refs {
			c := scratch.centroid[r].Component(axis)
			bin := int(k * (c - lo))
			if bin < 0 {
				bin = 0
			}
			if bin > numBins-1 {
				bin = numBins - 1
			}
			binOf[i] = bin
			bins[bin].count++
			bins[bin].box = geom.Union(bins[bin].box, geom.AABB{Min: scratch.aabbMin[r], Max: scratch.aabbMax[r]})
		}

		leftCounts := make([]int, numBins)
		leftBoxes := make([]geom.AABB, numBins)
		acc := 0
		accBox := geom.Empty()
		for i := 0; i < numBins; i++ {
			acc += bins[i].count
			accBox = geom.Union(accBox, bins[i].box)
			leftCounts[i] = acc
			leftBoxes[i] = accBox
		}

		rightCounts := make([]int, numBins)
		rightBoxes := make([]geom.AABB, numBins)
		acc = 0
		accBox = geom.Empty()
		for i := numBins - 1; i >= 0; i-- {
			acc += bins[i].count
			accBox = geom.Union(accBox, bins[i].box)
			rightCounts[i] = acc
			rightBoxes[i] = accBox
		}

		for split := 1; split < numBins; split++ {
			lc := leftCounts[split-1]
			rc := rightCounts[split]
			if lc == 0 || rc == 0 {
				continue
			}
			cost := cfg.TraversalCost +
				(leftBoxes[split-1].SurfaceArea()*float32(lc)+rightBoxes[split].SurfaceArea()*float32(rc))/parentSA
			if !bestFound || cost < bestCost {
				bestFound = true
				bestCost = cost
				bestAxis = axis
				bestSplit = split
			}
		}
	}

	if !bestFound || bestCost >= leafCost {
		return splitDecision{}, false
	}

	// Re-derive each primitive's bin on the winning axis to partition
	// refs in place; recomputing here (instead of caching every axis's
	// bin assignment) keeps memory proportional to one axis at a time.
	lo := centroidBox.Min.Component(bestAxis)
	hi := centroidBox.Max.Component(bestAxis)
	k := float32(numBins) * (1 - binEpsilon) / (hi - lo)

	leftCount := stablePartition(refs, func(r uint32) bool {
		c := scratch.centroid[r].Component(bestAxis)
		bin := int(k * (c - lo))
		if bin < 0 {
			bin = 0
		}
		if bin > numBins-1 {
			bin = numBins - 1
		}
		return bin < bestSplit
	})

	leftBox, leftCentroidBox := scratch.boundsOf(refs[:leftCount])
	rightBox, rightCentroidBox := scratch.boundsOf(refs[leftCount:])

	return splitDecision{
		axis:             bestAxis,
		leftCount:        leftCount,
		leftBox:          leftBox,
		leftCentroidBox:  leftCentroidBox,
		rightBox:         rightBox,
		rightCentroidBox: rightCentroidBox,
	}, true
}

// medianSplit partitions refs into two equal-as-possible halves along the
// longest centroid axis, breaking exact centroid ties by reference index
// so the result is fully deterministic (spec §4.2, §4.3 determinism law).
func medianSplit(scratch *primitiveScratch, refs []uint32, centroidBox geom.AABB) splitDecision {
	axis := centroidBox.LongestAxis()

	sort.SliceStable(refs, func(i, j int) bool {
		ci := scratch.centroid[refs[i]].Component(axis)
		cj := scratch.centroid[refs[j]].Component(axis)
		if ci != cj {
			return ci < cj
		}
		return refs[i] < refs[j]
	})

	mid := len(refs) / 2
	leftBox, leftCentroidBox := scratch.boundsOf(refs[:mid])
	rightBox, rightCentroidBox := scratch.boundsOf(refs[mid:])

	return splitDecision{
		axis:             axis,
		leftCount:        mid,
		leftBox:          leftBox,
		leftCentroidBox:  leftCentroidBox,
		rightBox:         rightBox,
		rightCentroidBox: rightCentroidBox,
	}
}

// stablePartition reorders refs so every element for which belongsLeft
// returns true comes first, preserving relative order within each group,
// and returns the count of left-belonging elements.
func stablePartition(refs []uint32, belongsLeft func(uint32) bool) int {
	left := make([]uint32, 0, len(refs))
	right := make([]uint32, 0, len(refs))
	for _, r := range refs {
		if belongsLeft(r) {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}
	copy(refs, left)
	copy(refs[len(left):], right)
	return len(left)
}
