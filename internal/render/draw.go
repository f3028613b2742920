package render

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-viewer/internal/drawable"
	"shape-viewer/internal/lights"
	"shape-viewer/internal/pose"
	"shape-viewer/internal/texture"
)

const (
	// shadowLift raises projected shadows off the ground to avoid z-fighting.
	shadowLift = 0.01
	// pointShadowSize is the world-space side of one point's shadow square.
	pointShadowSize = 0.06
)

var shadowColor = rl.NewColor(0, 0, 0, 90)

// Frame is the per-frame lighting state.
type Frame struct {
	Eye        pose.Vec3
	Lights     []lights.Directional
	FogColor   color.RGBA
	FogDensity float32
}

// Renderer draws drawables. Call Begin once per frame inside BeginMode3D, then Draw for each
// drawable; call DrawPoints after EndMode3D to flush point-mode drawables.
type Renderer struct {
	meshes   *Registry
	lit      *litShader
	solid    rl.Material
	flat     rl.Material
	white    rl.Texture2D // raylib's default 1x1 texture, bound when a material has no map
	ready    bool
	textures map[*texture.Map]*gpuTexture
	points   []pointBatch
}

type pointBatch struct {
	world []rl.Vector3
	color rl.Color
	size  float32
	blend drawable.Blending
}

// New returns a renderer. GPU resources are created on the first Begin.
func New() *Renderer {
	return &Renderer{meshes: NewRegistry(), textures: make(map[*texture.Map]*gpuTexture)}
}

func (r *Renderer) ensure() {
	if r.ready {
		return
	}
	r.ready = true
	r.solid = rl.LoadMaterialDefault()
	if albedo := r.solid.GetMap(rl.MapAlbedo); albedo != nil {
		r.white = albedo.Texture
	}
	if r.lit = loadLitShader(); r.lit != nil {
		r.solid.Shader = r.lit.shader
	}
	r.flat = rl.LoadMaterialDefault()
}

// Begin sets the camera, lights and fog for this frame.
func (r *Renderer) Begin(f Frame) {
	r.ensure()
	r.points = r.points[:0]
	if r.lit != nil {
		r.lit.setFrame(f)
	}
}

// modelMatrix composes offset, scale, rotation (Z, then Y, then X) and translation.
// raylib's MatrixMultiply(a, b) applies a first.
func modelMatrix(p pose.Pose, offset rl.Vector3) rl.Matrix {
	m := rl.MatrixTranslate(offset.X, offset.Y, offset.Z)
	m = rl.MatrixMultiply(m, rl.MatrixScale(p.Scale.X, p.Scale.Y, p.Scale.Z))
	m = rl.MatrixMultiply(m, rl.MatrixRotateZ(p.Rotation.Z))
	m = rl.MatrixMultiply(m, rl.MatrixRotateY(p.Rotation.Y))
	m = rl.MatrixMultiply(m, rl.MatrixRotateX(p.Rotation.X))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(p.Position.X, p.Position.Y, p.Position.Z))
}

// Draw draws d according to its mode. Drawables without a shape are skipped.
func (r *Renderer) Draw(d *drawable.Drawable) {
	if d == nil || d.Shape == nil || d.Material == nil {
		return
	}
	e := r.meshes.mesh(*d.Shape)
	transform := modelMatrix(d.Pose, e.offset)
	switch d.Mode {
	case drawable.Solid:
		r.drawSolid(e, transform, d.Material)
	case drawable.Line:
		e.model.Transform = transform
		rl.DrawModelWires(e.model, rl.Vector3{}, 1, toColor(d.Material.Color))
	case drawable.Points:
		r.queuePoints(e, d)
	}
}

func (r *Renderer) drawSolid(e *meshEntry, transform rl.Matrix, m *drawable.Material) {
	tex, textured := r.textureFor(m.Map)
	tiling := [2]float32{1, 1}
	if m.Map != nil {
		tiling = m.Map.Repeat
	}
	if r.lit != nil {
		r.lit.setSurface(tiling, textured)
	}
	if albedo := r.solid.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = toColor(m.Color)
		albedo.Texture = r.white
		if textured {
			albedo.Texture = tex
		}
	}
	rl.DrawMesh(e.mesh, r.solid, transform)
}

// queuePoints transforms every vertex to world space for the 2D point pass. Point materials
// have no size attenuation, so points are drawn at a fixed pixel size after EndMode3D.
func (r *Renderer) queuePoints(e *meshEntry, d *drawable.Drawable) {
	b := pointBatch{
		color: toColor(d.Material.Color),
		size:  d.Material.Size,
		blend: d.Material.Blending,
		world: make([]rl.Vector3, 0, len(e.vertices)/3),
	}
	off := pose.Vec3{X: e.offset.X, Y: e.offset.Y, Z: e.offset.Z}
	for i := 0; i+2 < len(e.vertices); i += 3 {
		v := d.Pose.Apply(pose.Vec3{X: e.vertices[i], Y: e.vertices[i+1], Z: e.vertices[i+2]}.Add(off))
		b.world = append(b.world, rl.NewVector3(v.X, v.Y, v.Z))
	}
	r.points = append(r.points, b)
}

// DrawPoints draws the queued point batches as screen-space squares. Call after EndMode3D.
func (r *Renderer) DrawPoints(cam rl.Camera3D) {
	for _, b := range r.points {
		if b.blend == drawable.AdditiveBlending {
			rl.BeginBlendMode(rl.BlendAdditive)
		}
		size := b.size
		if size < 1 {
			size = 1
		}
		for _, w := range b.world {
			s := rl.GetWorldToScreen(w, cam)
			rl.DrawRectangleV(rl.NewVector2(s.X-size/2, s.Y-size/2), rl.NewVector2(size, size), b.color)
		}
		if b.blend == drawable.AdditiveBlending {
			rl.EndBlendMode()
		}
	}
}

// DrawShadow flattens d onto the plane y = groundY along l and draws it as a translucent
// dark silhouette. Point drawables drop one small square per vertex instead.
// Lights that do not shine downward cast nothing.
func (r *Renderer) DrawShadow(d *drawable.Drawable, l lights.Directional, groundY float32) {
	if d == nil || d.Shape == nil || !d.CastShadow {
		return
	}
	e := r.meshes.mesh(*d.Shape)
	if d.Mode == drawable.Points {
		r.drawPointShadow(e, d, l, groundY)
		return
	}
	p, ok := l.ShadowProjection(groundY, shadowLift)
	if !ok {
		return
	}
	project := rl.Matrix{
		M0: p[0], M4: p[1], M8: p[2], M12: p[3],
		M1: p[4], M5: p[5], M9: p[6], M13: p[7],
		M2: p[8], M6: p[9], M10: p[10], M14: p[11],
		M3: p[12], M7: p[13], M11: p[14], M15: p[15],
	}
	transform := rl.MatrixMultiply(modelMatrix(d.Pose, e.offset), project)
	if albedo := r.flat.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = shadowColor
	}
	rl.DisableBackfaceCulling()
	rl.DrawMesh(e.mesh, r.flat, transform)
	rl.EnableBackfaceCulling()
}

func (r *Renderer) drawPointShadow(e *meshEntry, d *drawable.Drawable, l lights.Directional, groundY float32) {
	size := rl.NewVector2(pointShadowSize, pointShadowSize)
	for _, s := range pointShadows(e.vertices, e.offset, d.Pose, l, groundY) {
		rl.DrawPlane(rl.NewVector3(s.X, s.Y+shadowLift, s.Z), size, shadowColor)
	}
}

// pointShadows places each model-space vertex in the world by p and projects it onto the
// ground along l. Vertices below the ground have no shadow.
func pointShadows(vertices []float32, offset rl.Vector3, p pose.Pose, l lights.Directional, groundY float32) []pose.Vec3 {
	off := pose.Vec3{X: offset.X, Y: offset.Y, Z: offset.Z}
	out := make([]pose.Vec3, 0, len(vertices)/3)
	for i := 0; i+2 < len(vertices); i += 3 {
		w := p.Apply(pose.Vec3{X: vertices[i], Y: vertices[i+1], Z: vertices[i+2]}.Add(off))
		if s, ok := l.ShadowPoint(w, groundY); ok {
			out = append(out, s)
		}
	}
	return out
}

// Ground is a textured square on the XZ plane.
type Ground struct {
	Size    float32
	Y       float32
	Texture rl.Texture2D
	Repeat  [2]float32
	Color   color.RGBA
}

// DrawGround draws g with the lit shader so it receives light and fog.
func (r *Renderer) DrawGround(g Ground) {
	e := r.meshes.groundMesh(g.Size)
	textured := rl.IsTextureValid(g.Texture)
	if r.lit != nil {
		r.lit.setSurface(g.Repeat, textured)
	}
	if albedo := r.solid.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = toColor(g.Color)
		albedo.Texture = r.white
		if textured {
			albedo.Texture = g.Texture
		}
	}
	rl.DrawMesh(e.mesh, r.solid, rl.MatrixTranslate(0, g.Y, 0))
}

// Unload frees meshes, textures and the shader.
func (r *Renderer) Unload() {
	r.meshes.Unload()
	for m, g := range r.textures {
		if rl.IsTextureValid(g.tex) {
			rl.UnloadTexture(g.tex)
		}
		delete(r.textures, m)
	}
	if r.lit != nil {
		rl.UnloadShader(r.lit.shader)
		r.lit = nil
	}
	r.ready = false
}
