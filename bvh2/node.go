package bvh2

import "github.com/mirstar13/rtbvh/vecmath"

// Node is the fixed 64-byte encoded record described in spec §3. Internal
// nodes store both children's AABBs inline; leaves overload the same slots
// to carry the three triangle vertices, discriminated by AddrLeft ==
// InvalidID.
//
// Field order and sizes match the wire layout exactly (12+4+12+4+12+4+12+4
// = 64 bytes), so a []Node slice can be handed to a GPU upload routine
// without repacking.
type Node struct {
	ALo       [3]float32 // left child AABB min, or leaf vertex 0
	AddrLeft  uint32     // left child index, or InvalidID for a leaf
	AHi       [3]float32 // left child AABB max, or leaf vertex 1
	ShapeID   uint32     // InvalidID for internal nodes; mesh ID for leaves
	BLo       [3]float32 // right child AABB min, or leaf vertex 2
	AddrRight uint32     // right child index, or InvalidID for a leaf
	BHi       [3]float32 // right child AABB max; zero for leaves
	PrimID    uint32     // InvalidID for internal nodes; face index for leaves
}

// IsLeaf reports whether n encodes a single triangle rather than a pair of
// child references. This is the named predicate spec §9 asks for instead
// of inlining the sentinel check at every call site.
func (n *Node) IsLeaf() bool {
	return n.AddrLeft == InvalidID
}

// LeftBox returns the left child's AABB. Only meaningful when !n.IsLeaf().
func (n *Node) LeftBox() (min, max vecmath.Vec3) {
	return arrToVec(n.ALo), arrToVec(n.AHi)
}

// RightBox returns the right child's AABB. Only meaningful when !n.IsLeaf().
func (n *Node) RightBox() (min, max vecmath.Vec3) {
	return arrToVec(n.BLo), arrToVec(n.BHi)
}

// Triangle returns the three vertex positions carried by a leaf node.
// Only meaningful when n.IsLeaf().
func (n *Node) Triangle() (v0, v1, v2 vecmath.Vec3) {
	return arrToVec(n.ALo), arrToVec(n.AHi), arrToVec(n.BLo)
}

func setInternal(n *Node, leftMin, leftMax, rightMin, rightMax vecmath.Vec3, addrLeft, addrRight uint32) {
	n.ALo = vecToArr(leftMin)
	n.AHi = vecToArr(leftMax)
	n.BLo = vecToArr(rightMin)
	n.BHi = vecToArr(rightMax)
	n.AddrLeft = addrLeft
	n.AddrRight = addrRight
	n.ShapeID = InvalidID
	n.PrimID = InvalidID
}

func setLeaf(n *Node, v0, v1, v2 vecmath.Vec3, shapeID, primID uint32) {
	n.ALo = vecToArr(v0)
	n.AHi = vecToArr(v1)
	n.BLo = vecToArr(v2)
	n.BHi = [3]float32{0, 0, 0}
	n.AddrLeft = InvalidID
	n.AddrRight = InvalidID
	n.ShapeID = shapeID
	n.PrimID = primID
}

func vecToArr(v vecmath.Vec3) [3]float32 { return [3]float32{v.X, v.Y, v.Z} }

func arrToVec(a [3]float32) vecmath.Vec3 { return vecmath.New(a[0], a[1], a[2]) }
