// Command bvhstat loads one or more OBJ meshes, builds a BVH2 tree over
// them, and reports node counts and expected traversal cost. It is a
// CLI-only exerciser of the bvh2 package — no window, no GPU required.
package main

import (
	"fmt"
	"os"

	"github.com/mirstar13/rtbvh/cmd/bvhstat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
