// Command bvhviewer opens an OpenGL 4.1 window, loads an OBJ mesh, builds
// a BVH2 tree over it, and draws the mesh as shaded triangles with the
// tree's node boxes overlaid as a wireframe. It is a visual debugging
// aid for the bvh2 package, grounded in the teacher engine's OpenGL
// renderer conventions (shader program layout, vertex buffer upload
// pattern, GLFW window setup) rather than any full rendering pipeline.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/mirstar13/rtbvh/bvh2"
	"github.com/mirstar13/rtbvh/mesh"
	"github.com/mirstar13/rtbvh/vecmath"
)

func init() {
	// GLFW and OpenGL calls must all originate from one OS thread.
	runtime.LockOSThread()
}

const (
	triVertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

out vec3 FragColor;

uniform mat4 model;
uniform mat4 view;
uniform mat4 proj;

void main() {
    gl_Position = proj * view * model * vec4(aPos, 1.0);
    FragColor = aColor;
}
` + "\x00"

	triFragmentShaderSource = `
#version 410 core
in vec3 FragColor;
out vec4 color;

void main() {
    color = vec4(FragColor, 1.0);
}
` + "\x00"

	lineVertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

out vec3 FragColor;

uniform mat4 model;
uniform mat4 view;
uniform mat4 proj;

void main() {
    gl_Position = proj * view * model * vec4(aPos, 1.0);
    FragColor = aColor;
}
` + "\x00"

	lineFragmentShaderSource = `
#version 410 core
in vec3 FragColor;
out vec4 color;

void main() {
    color = vec4(FragColor, 1.0);
}
` + "\x00"
)

func main() {
	objPath := flag.String("obj", "", "OBJ mesh to load")
	maxDepth := flag.Int("max-depth", 6, "deepest BVH level to draw as a wireframe box")
	useSAH := flag.Bool("sah", true, "use binned SAH splitting")
	flag.Parse()

	if *objPath == "" {
		fmt.Fprintln(os.Stderr, "usage: bvhviewer -obj mesh.obj [-max-depth N] [-sah]")
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

	v := newViewer(800, 600)
	if err := v.initialize(); err != nil {
		log.Fatalf("initialize: %v", err)
	}
	defer v.terminate()

	triVerts := meshTriangleVertices(tm)
	lineVerts := bvhWireframeVertices(builder.Nodes(), *maxDepth)
	v.upload(triVerts, lineVerts)

	center, radius := boundingSphere(tm)
	v.frameScene(center, radius)

	for !v.window.ShouldClose() {
		v.render()
		glfw.PollEvents()
	}
}

// viewer owns the window, the two shader programs (shaded triangles and
// wireframe lines), and their vertex buffers. It mirrors the teacher's
// OpenGLRenderer split between a triangle pipeline and a line pipeline,
// trimmed to just those two passes — no PBR, textures or shadows, none
// of which this tool needs.
type viewer struct {
	window *glfw.Window
	width  int
	height int

	triProgram  uint32
	triVAO      uint32
	triVBO      uint32
	triModelLoc int32
	triViewLoc  int32
	triProjLoc  int32
	triCount    int32

	lineProgram  uint32
	lineVAO      uint32
	lineVBO      uint32
	lineModelLoc int32
	lineViewLoc  int32
	lineProjLoc  int32
	lineCount    int32

	view mat4
	proj mat4
}

func newViewer(width, height int) *viewer {
	return &viewer{width: width, height: height}
}

func (v *viewer) initialize() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(v.width, v.height, "bvhviewer", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	v.window = window
	v.window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	gl.Viewport(0, 0, int32(v.width), int32(v.height))
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.05, 0.05, 0.08, 1.0)

	if err := v.createTriProgram(); err != nil {
		return err
	}
	if err := v.createLineProgram(); err != nil {
		return err
	}
	v.createBuffers()

	v.proj = perspective(60.0*math.Pi/180.0, float64(v.width)/float64(v.height), 0.01, 1000.0)
	return nil
}

func (v *viewer) terminate() {
	glfw.Terminate()
}

func (v *viewer) createTriProgram() error {
	vs, err := compileShader(triVertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("tri vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(triFragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return fmt.Errorf("tri fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	program, err := linkProgram(vs, fs)
	if err != nil {
		return fmt.Errorf("link tri program: %w", err)
	}

	v.triProgram = program
	v.triModelLoc = gl.GetUniformLocation(program, gl.Str("model\x00"))
	v.triViewLoc = gl.GetUniformLocation(program, gl.Str("view\x00"))
	v.triProjLoc = gl.GetUniformLocation(program, gl.Str("proj\x00"))
	return nil
}

func (v *viewer) createLineProgram() error {
	vs, err := compileShader(lineVertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("line vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(lineFragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return fmt.Errorf("line fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	program, err := linkProgram(vs, fs)
	if err != nil {
		return fmt.Errorf("link line program: %w", err)
	}

	v.lineProgram = program
	v.lineModelLoc = gl.GetUniformLocation(program, gl.Str("model\x00"))
	v.lineViewLoc = gl.GetUniformLocation(program, gl.Str("view\x00"))
	v.lineProjLoc = gl.GetUniformLocation(program, gl.Str("proj\x00"))
	return nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		slog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(slog))
		return 0, fmt.Errorf("compile shader: %s", slog)
	}
	return shader, nil
}

func linkProgram(vs, fs uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		plog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(plog))
		return 0, fmt.Errorf("link program: %s", plog)
	}
	return program, nil
}

func (v *viewer) createBuffers() {
	gl.GenVertexArrays(1, &v.triVAO)
	gl.BindVertexArray(v.triVAO)
	gl.GenBuffers(1, &v.triVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.triVBO)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)

	gl.GenVertexArrays(1, &v.lineVAO)
	gl.BindVertexArray(v.lineVAO)
	gl.GenBuffers(1, &v.lineVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.lineVBO)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)
}

// upload pushes the mesh's shaded-triangle vertices and the BVH's
// wireframe-line vertices into their respective VBOs once, up front —
// both are static for the lifetime of this tool, unlike the teacher
// renderer which re-uploads every frame for a dynamic scene.
func (v *viewer) upload(triVerts, lineVerts []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, v.triVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(triVerts)*4, gl.Ptr(triVerts), gl.STATIC_DRAW)
	v.triCount = int32(len(triVerts) / 6)

	gl.BindBuffer(gl.ARRAY_BUFFER, v.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(lineVerts)*4, gl.Ptr(lineVerts), gl.STATIC_DRAW)
	v.lineCount = int32(len(lineVerts) / 6)
}

// frameScene points the camera at center from a fixed distance derived
// from the mesh's bounding radius, so any mesh fills the window without
// per-mesh tuning.
func (v *viewer) frameScene(center [3]float32, radius float32) {
	if radius <= 0 {
		radius = 1
	}
	eye := [3]float32{center[0], center[1], center[2] + radius*2.5}
	v.view = lookAt(eye, center, [3]float32{0, 1, 0})
}

func (v *viewer) render() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	model := identity()

	if v.triCount > 0 {
		gl.UseProgram(v.triProgram)
		uploadMat4(v.triModelLoc, model)
		uploadMat4(v.triViewLoc, v.view)
		uploadMat4(v.triProjLoc, v.proj)
		gl.BindVertexArray(v.triVAO)
		gl.DrawArrays(gl.TRIANGLES, 0, v.triCount)
	}

	if v.lineCount > 0 {
		gl.UseProgram(v.lineProgram)
		uploadMat4(v.lineModelLoc, model)
		uploadMat4(v.lineViewLoc, v.view)
		uploadMat4(v.lineProjLoc, v.proj)
		gl.BindVertexArray(v.lineVAO)
		gl.DrawArrays(gl.LINES, 0, v.lineCount)
	}

	v.window.SwapBuffers()
}

// meshTriangleVertices flattens every face of tm into interleaved
// position+color vertex data for the triangle VBO. Color is a flat gray
// so the wireframe overlay reads clearly against it.
func meshTriangleVertices(tm *mesh.TriangleMesh) []float32 {
	out := make([]float32, 0, tm.NumFaces()*3*6)
	for f := 0; f < tm.NumFaces(); f++ {
		i0, i1, i2 := tm.Face(f)
		for _, idx := range [3]uint32{i0, i1, i2} {
			p := tm.Vertex(idx)
			out = append(out, p.X, p.Y, p.Z, 0.6, 0.6, 0.65)
		}
	}
	return out
}

// bvhWireframeVertices walks nodes depth-first down to maxDepth and emits
// 12 line segments (24 vertices) per visited node box, color-coded by
// depth so nesting is visible at a glance.
func bvhWireframeVertices(nodes []bvh2.Node, maxDepth int) []float32 {
	if len(nodes) == 0 {
		return nil
	}

	var out []float32
	var walk func(idx, depth int)
	walk = func(idx, depth int) {
		if depth > maxDepth {
			return
		}
		n := nodes[idx]
		r, g, b := depthColor(depth)
		if n.IsLeaf() {
			v0, v1, v2 := n.Triangle()
			min, max := triangleBounds(v0, v1, v2)
			out = append(out, boxLines(min, max, r, g, b)...)
			return
		}
		lmin, lmax := n.LeftBox()
		rmin, rmax := n.RightBox()
		out = append(out, boxLines(lmin, lmax, r, g, b)...)
		out = append(out, boxLines(rmin, rmax, r, g, b)...)
		walk(int(n.AddrLeft), depth+1)
		walk(int(n.AddrRight), depth+1)
	}
	walk(0, 0)
	return out
}

func triangleBounds(v0, v1, v2 vecmath.Vec3) (min, max vecmath.Vec3) {
	min = vecmath.Min(vecmath.Min(v0, v1), v2)
	max = vecmath.Max(vecmath.Max(v0, v1), v2)
	return min, max
}

func depthColor(depth int) (r, g, b float32) {
	t := float32(depth%6) / 5.0
	return 1.0 - t, t, 0.3
}

type vec3f = [3]float32

func boxLines(minV, maxV vecmath.Vec3, r, g, b float32) []float32 {
	min := vec3f{minV.X, minV.Y, minV.Z}
	max := vec3f{maxV.X, maxV.Y, maxV.Z}
	corners := [8]vec3f{
		{min[0], min[1], min[2]}, {max[0], min[1], min[2]},
		{max[0], max[1], min[2]}, {min[0], max[1], min[2]},
		{min[0], min[1], max[2]}, {max[0], min[1], max[2]},
		{max[0], max[1], max[2]}, {min[0], max[1], max[2]},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	out := make([]float32, 0, len(edges)*2*6)
	for _, e := range edges {
		a, c := corners[e[0]], corners[e[1]]
		out = append(out, a[0], a[1], a[2], r, g, b)
		out = append(out, c[0], c[1], c[2], r, g, b)
	}
	return out
}

func boundingSphere(tm *mesh.TriangleMesh) (center vec3f, radius float32) {
	var min, max vec3f
	first := true
	for i := uint32(0); i < uint32(tm.NumVertices()); i++ {
		p := tm.Vertex(i)
		if first {
			min = vec3f{p.X, p.Y, p.Z}
			max = min
			first = false
			continue
		}
		min = vec3f{minf(min[0], p.X), minf(min[1], p.Y), minf(min[2], p.Z)}
		max = vec3f{maxf(max[0], p.X), maxf(max[1], p.Y), maxf(max[2], p.Z)}
	}
	if first {
		return vec3f{}, 1
	}
	center = vec3f{(min[0] + max[0]) / 2, (min[1] + max[1]) / 2, (min[2] + max[2]) / 2}
	dx, dy, dz := max[0]-center[0], max[1]-center[1], max[2]-center[2]
	radius = float32(math.Sqrt(float64(dx*dx + dy*dy + dz*dz)))
	return center, radius
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
