// Command bvhfly is a terminal tool for walking a built BVH2 tree
// node-by-node under keyboard control: the left/right arrow keys (or J/L)
// descend into the left/right child and the up arrow (or K) backs up to
// the parent, printing each node's
// box and leaf/internal status. It is grounded in the teacher engine's
// SilentInputManager (win_input.go), trimmed from a continuous WASD-fly
// camera reader down to single-keypress tree navigation.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/eiannone/keyboard"

	"github.com/mirstar13/rtbvh/bvh2"
	"github.com/mirstar13/rtbvh/mesh"
)

func main() {
	objPath := flag.String("obj", "", "OBJ mesh to load")
	useSAH := flag.Bool("sah", true, "use binned SAH splitting")
	flag.Parse()

	if *objPath == "" {
		fmt.Fprintln(os.Stderr, "usage: bvhfly -obj mesh.obj [-sah]")
		os.Exit(2)
	}

	tm, err := mesh.LoadOBJ(*objPath, 0)
	if err != nil {
		log.Fatalf("load obj: %v", err)
	}

	cfg := bvh2.DefaultConfig()
	cfg.UseSAH = *useSAH
	builder := bvh2.New(cfg)
	if err := builder.Build([]mesh.Provider{tm}); err != nil {
		log.Fatalf("build bvh: %v", err)
	}

	nodes := builder.Nodes()
	if len(nodes) == 0 {
		fmt.Println("empty tree")
		return
	}

	if err := keyboard.Open(); err != nil {
		log.Fatalf("open keyboard: %v", err)
	}
	defer keyboard.Close()

	nav := &navigator{nodes: nodes, path: []int{0}}
	nav.printCurrent()

	fmt.Println("j/left: left child   l/right: right child   k/up: parent   x/esc: quit")

	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			continue
		}

		switch {
		case key == keyboard.KeyEsc || char == 'x' || char == 'X':
			return
		case key == keyboard.KeyArrowLeft || char == 'j' || char == 'J':
			nav.descendLeft()
		case key == keyboard.KeyArrowRight || char == 'l' || char == 'L':
			nav.descendRight()
		case key == keyboard.KeyArrowUp || char == 'k' || char == 'K':
			nav.ascend()
		default:
			continue
		}
		nav.printCurrent()
	}
}

// navigator tracks the path from the root to the current node as a stack
// of indices, so ascend can pop back to the parent without the Node
// array itself needing parent pointers (it has none — spec keeps nodes
// child-addressed only).
type navigator struct {
	nodes []bvh2.Node
	path  []int
}

func (n *navigator) current() int {
	return n.path[len(n.path)-1]
}

func (n *navigator) descendLeft() {
	cur := n.nodes[n.current()]
	if cur.IsLeaf() {
		fmt.Println("at a leaf, cannot descend")
		return
	}
	n.path = append(n.path, int(cur.AddrLeft))
}

func (n *navigator) descendRight() {
	cur := n.nodes[n.current()]
	if cur.IsLeaf() {
		fmt.Println("at a leaf, cannot descend")
		return
	}
	n.path = append(n.path, int(cur.AddrRight))
}

func (n *navigator) ascend() {
	if len(n.path) == 1 {
		fmt.Println("already at root")
		return
	}
	n.path = n.path[:len(n.path)-1]
}

func (n *navigator) printCurrent() {
	idx := n.current()
	node := n.nodes[idx]
	fmt.Printf("node %d (depth %d): ", idx, len(n.path)-1)

	if node.IsLeaf() {
		v0, v1, v2 := node.Triangle()
		fmt.Printf("leaf, shape=%d prim=%d, v0=%v v1=%v v2=%v\n",
			node.ShapeID, node.PrimID, v0, v1, v2)
		return
	}

	lmin, lmax := node.LeftBox()
	rmin, rmax := node.RightBox()
	fmt.Printf("internal, left=%d %v-%v, right=%d %v-%v\n",
		node.AddrLeft, lmin, lmax, node.AddrRight, rmin, rmax)
}
