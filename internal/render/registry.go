// Package render draws the viewer's drawables with raylib: lit solid meshes, wireframes,
// point clouds and planar shadows. GPU resources are created lazily on first draw so they
// are allocated after the window/OpenGL context exists.
package render

import (
	"runtime"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-viewer/internal/shape"
)

// meshEntry is one uploaded mesh plus the model used to draw its wires.
// offset shifts the mesh in model space so the pose position is its center.
type meshEntry struct {
	mesh   rl.Mesh
	model  rl.Model
	offset rl.Vector3
	// vertices is a CPU copy of the positions for point rendering.
	vertices []float32
	// pinned keeps Go-owned vertex data addressable by raylib; such meshes are never unloaded by raylib.
	pinned *runtime.Pinner
}

// Registry caches one mesh per shape descriptor.
type Registry struct {
	cache map[shape.Descriptor]*meshEntry
}

// NewRegistry returns an empty registry. Meshes are created on first draw.
func NewRegistry() *Registry {
	return &Registry{cache: make(map[shape.Descriptor]*meshEntry)}
}

// mesh returns the cached mesh for d, generating and uploading it on first use.
func (r *Registry) mesh(d shape.Descriptor) *meshEntry {
	if e, ok := r.cache[d]; ok {
		return e
	}
	var e *meshEntry
	if shape.Generated(d.Kind) {
		e = uploadGeometry(shape.Mesh(d))
	} else {
		e = generate(d)
	}
	e.model = rl.LoadModelFromMesh(e.mesh)
	r.cache[d] = e
	return e
}

// groundMesh returns a size×size plane mesh on the XZ plane, centered at the origin.
func (r *Registry) groundMesh(size float32) *meshEntry {
	key := shape.Descriptor{Width: size, Depth: size, RadialSegments: -1}
	if e, ok := r.cache[key]; ok {
		return e
	}
	e := &meshEntry{mesh: rl.GenMeshPlane(size, size, 1, 1)}
	r.cache[key] = e
	return e
}

// generate builds the raylib parametric mesh for d. Raylib cylinders and cones have
// their base at Y=0, so they are offset by -height/2 to center them.
func generate(d shape.Descriptor) *meshEntry {
	var e meshEntry
	switch d.Kind {
	case shape.Sphere:
		e.mesh = rl.GenMeshSphere(d.Radius, int(d.HeightSegments), int(d.RadialSegments))
	case shape.Cylinder:
		e.mesh = rl.GenMeshCylinder(d.RadiusBottom, d.Height, int(d.RadialSegments))
		e.offset = rl.NewVector3(0, -d.Height/2, 0)
	case shape.Cone:
		e.mesh = rl.GenMeshCone(d.Radius, d.Height, int(d.RadialSegments))
		e.offset = rl.NewVector3(0, -d.Height/2, 0)
	case shape.Wheel:
		// raylib's torus takes the tube/ring ratio and the overall diameter
		e.mesh = rl.GenMeshTorus(d.Tube/d.Radius, 2*d.Radius, int(d.RadialSegments), int(d.TubularSegments))
	default:
		e.mesh = rl.GenMeshCube(d.Width, d.Height, d.Depth)
	}
	if e.mesh.VertexCount > 0 && e.mesh.Vertices != nil {
		src := unsafe.Slice(e.mesh.Vertices, int(e.mesh.VertexCount)*3)
		e.vertices = append([]float32(nil), src...)
	}
	return &e
}

// uploadGeometry hands generated geometry to raylib, the way a custom mesh is built in
// raylib's mesh generation example: Go slices behind the mesh pointers, then UploadMesh.
func uploadGeometry(g shape.Geometry) *meshEntry {
	e := &meshEntry{vertices: g.Positions, pinned: &runtime.Pinner{}}
	e.mesh = rl.Mesh{
		VertexCount:   int32(g.VertexCount()),
		TriangleCount: int32(g.TriangleCount()),
	}
	if len(g.Positions) > 0 {
		e.pinned.Pin(&g.Positions[0])
		e.mesh.Vertices = &g.Positions[0]
	}
	if len(g.Normals) > 0 {
		e.pinned.Pin(&g.Normals[0])
		e.mesh.Normals = &g.Normals[0]
	}
	if len(g.TexCoords) > 0 {
		e.pinned.Pin(&g.TexCoords[0])
		e.mesh.Texcoords = &g.TexCoords[0]
	}
	if len(g.Indices) > 0 {
		e.pinned.Pin(&g.Indices[0])
		e.mesh.Indices = &g.Indices[0]
	}
	rl.UploadMesh(&e.mesh, false)
	return e
}

// Unload releases every cached mesh. Meshes with Go-owned vertex data are only unpinned,
// since raylib would free their arrays; their GPU buffers go away with the context.
func (r *Registry) Unload() {
	for d, e := range r.cache {
		if e.pinned != nil {
			e.pinned.Unpin()
		} else {
			rl.UnloadMesh(&e.mesh)
		}
		delete(r.cache, d)
	}
}
