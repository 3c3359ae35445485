package mesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mirstar13/rtbvh/vecmath"
)

// LoadOBJ loads a Wavefront OBJ file into a TriangleMesh. Faces with more
// than three vertices are fan-triangulated at load time — the builder
// itself never splits a face (spec §1 Non-goals), but a loader turning an
// n-gon into triangles before the mesh ever reaches the builder is a
// mesh-loading concern, not a builder one, and keeps IsPureTriangle true
// for every OBJ the scene actually ships.
func LoadOBJ(path string, shapeID uint32) (*TriangleMesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: open %s: %w", path, err)
	}
	defer file.Close()

	m := NewTriangleMesh(shapeID, nil, nil)

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		switch parts[0] {
		case "v":
			if len(parts) < 4 {
				return nil, fmt.Errorf("mesh: %s:%d: invalid vertex definition", path, lineNum)
			}
			x, err1 := strconv.ParseFloat(parts[1], 32)
			y, err2 := strconv.ParseFloat(parts[2], 32)
			z, err3 := strconv.ParseFloat(parts[3], 32)
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, fmt.Errorf("mesh: %s:%d: invalid vertex coordinates", path, lineNum)
			}
			m.AddVertex(vecmath.New(float32(x), float32(y), float32(z)))

		case "f":
			if len(parts) < 4 {
				return nil, fmt.Errorf("mesh: %s:%d: invalid face definition", path, lineNum)
			}
			indices := make([]uint32, 0, len(parts)-1)
			for _, tok := range parts[1:] {
				idx, err := parseFaceVertexIndex(tok, len(m.vertices))
				if err != nil {
					return nil, fmt.Errorf("mesh: %s:%d: %w", path, lineNum, err)
				}
				indices = append(indices, idx)
			}
			// Fan-triangulate polygons with more than three vertices.
			for i := 1; i < len(indices)-1; i++ {
				m.AddTriangle(indices[0], indices[i], indices[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mesh: %s: scan: %w", path, err)
	}

	return m, nil
}

// parseFaceVertexIndex parses an OBJ face token ("v", "v/vt", or
// "v/vt/vn") and returns the zero-based vertex index, resolving OBJ's
// negative (relative-to-end) indices against the vertex count seen so far.
func parseFaceVertexIndex(tok string, numVertices int) (uint32, error) {
	vertPart := strings.SplitN(tok, "/", 2)[0]
	n, err := strconv.Atoi(vertPart)
	if err != nil {
		return 0, fmt.Errorf("invalid face index %q", tok)
	}
	if n < 0 {
		n = numVertices + n + 1
	}
	if n < 1 || n > numVertices {
		return 0, fmt.Errorf("face index %q resolves out of range", tok)
	}
	return uint32(n - 1), nil
}
