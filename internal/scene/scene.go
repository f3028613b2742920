package scene

import (
	"image/color"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-viewer/internal/drawable"
	"shape-viewer/internal/lights"
	"shape-viewer/internal/orbit"
	"shape-viewer/internal/pose"
	"shape-viewer/internal/render"
	"shape-viewer/internal/texture"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220

	groundSize = 50
	groundY    = 0

	defaultFOV        = 45
	defaultFogDensity = 0.01

	orbitSpeed = 0.005 // radians per pixel
	zoomStep   = 0.1   // fraction of the distance per wheel notch
)

var (
	// ClearColor is the background behind the scene.
	ClearColor = rl.NewColor(120, 120, 120, 255)

	startEye     = pose.Vec3{X: -15, Y: 7, Z: 10}
	groundRepeat = [2]float32{10, 24}
	fogColor     = color.RGBA{255, 255, 255, 255}
)

// Overlay is drawn inside the 3D pass after the drawables, e.g. the transform gizmo.
// While Dragging reports true the camera does not orbit.
type Overlay interface {
	Dragging() bool
	Draw()
}

// Scene holds the orbit camera, the two lights, the ground and the drawables, and renders them.
// It is what the controller adds drawables to and what the panel edits lights and camera on.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	FogDensity  float32
	// InputBlocked, if set, disables camera input (e.g. while the terminal is open).
	InputBlocked func() bool
	Overlay      Overlay

	rig      orbit.Rig
	lights   [lights.Count]lights.Directional
	items    []*drawable.Drawable
	renderer *render.Renderer

	groundPath    string
	groundPending bool
	ground        render.Ground
}

// New returns a scene with the camera at (-15, 7, 10) looking at the origin, the default
// lights and fog, and the ground texture from assetsDir (loaded on the first Draw).
func New(assetsDir string) *Scene {
	s := &Scene{
		FogDensity: defaultFogDensity,
		rig:        orbit.New(startEye, pose.Vec3{}),
		lights:     lights.Defaults(),
		renderer:   render.New(),
		ground: render.Ground{
			Size:   groundSize,
			Y:      groundY,
			Repeat: groundRepeat,
			Color:  color.RGBA{255, 255, 255, 255},
		},
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = defaultFOV
	s.Camera.Projection = rl.CameraPerspective
	s.syncCamera()
	path := filepath.Join(assetsDir, filepath.FromSlash(texture.GroundPath))
	if _, err := os.Stat(path); err == nil {
		s.groundPath = path
		s.groundPending = true
	}
	return s
}

func (s *Scene) syncCamera() {
	eye := s.rig.Eye()
	s.Camera.Position = rl.NewVector3(eye.X, eye.Y, eye.Z)
	s.Camera.Target = rl.NewVector3(s.rig.Target.X, s.rig.Target.Y, s.rig.Target.Z)
}

// Add puts d in the scene. Adding the same drawable twice is a no-op.
func (s *Scene) Add(d *drawable.Drawable) {
	for _, it := range s.items {
		if it == d {
			return
		}
	}
	s.items = append(s.items, d)
}

// Remove takes d out of the scene.
func (s *Scene) Remove(d *drawable.Drawable) {
	for i, it := range s.items {
		if it == d {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Light returns the n-th light (1-based) for editing.
func (s *Scene) Light(n int) (*lights.Directional, bool) {
	if n < 1 || n > len(s.lights) {
		return nil, false
	}
	return &s.lights[n-1], true
}

// Lights returns a copy of both lights.
func (s *Scene) Lights() [lights.Count]lights.Directional {
	return s.lights
}

// FOV returns the vertical field of view in degrees.
func (s *Scene) FOV() float32 {
	return s.Camera.Fovy
}

// SetFOV sets the vertical field of view in degrees.
func (s *Scene) SetFOV(deg float32) {
	s.Camera.Fovy = deg
}

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Update runs the orbit controls once per frame: left-drag rotates around the target and
// the wheel zooms. Nothing moves while input is blocked or the overlay is dragging.
func (s *Scene) Update() {
	if s.InputBlocked != nil && s.InputBlocked() {
		return
	}
	if s.Overlay != nil && s.Overlay.Dragging() {
		return
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		d := rl.GetMouseDelta()
		s.rig.Rotate(-d.X*orbitSpeed, -d.Y*orbitSpeed)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.rig.Zoom(1 - wheel*zoomStep)
	}
	s.syncCamera()
}

// ensureGroundLoaded runs the first time we Draw with a pending ground texture so the
// upload happens after the window/GL context exists.
func (s *Scene) ensureGroundLoaded() {
	if !s.groundPending {
		return
	}
	s.groundPending = false
	tex := rl.LoadTexture(s.groundPath)
	if !rl.IsTextureValid(tex) {
		return
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterAnisotropic16x)
	rl.SetTextureWrap(tex, rl.WrapRepeat)
	s.ground.Texture = tex
}

// Draw renders the 3D scene: ground, a shadow per shadow-casting light, drawables, the grid
// when GridVisible, the overlay, and finally point-mode drawables in screen space.
// Call after ClearBackground and before 2D overlays (e.g. terminal).
func (s *Scene) Draw() {
	s.ensureGroundLoaded()
	rl.BeginMode3D(s.Camera)
	eye := s.rig.Eye()
	s.renderer.Begin(render.Frame{
		Eye:        eye,
		Lights:     s.lights[:],
		FogColor:   fogColor,
		FogDensity: s.FogDensity,
	})
	s.renderer.DrawGround(s.ground)
	for _, l := range s.lights {
		if !l.CastsShadow() {
			continue
		}
		for _, d := range s.items {
			s.renderer.DrawShadow(d, l, groundY)
		}
	}
	for _, d := range s.items {
		s.renderer.Draw(d)
	}
	if s.GridVisible {
		drawEditorGrid()
	}
	if s.Overlay != nil {
		s.Overlay.Draw()
	}
	rl.EndMode3D()
	s.renderer.DrawPoints(s.Camera)
}

// Unload frees GPU resources. Call before closing the window.
func (s *Scene) Unload() {
	s.renderer.Unload()
	if rl.IsTextureValid(s.ground.Texture) {
		rl.UnloadTexture(s.ground.Texture)
	}
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	const y = groundY + 0.005
	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), y, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), y, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), y, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), y, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	// Axis lines through origin (X=red, Y=green, Z=blue)
	rl.DrawLine3D(rl.NewVector3(-gridExtent, y, 0), rl.NewVector3(gridExtent, y, 0), axisX)
	rl.DrawLine3D(rl.NewVector3(0, -gridExtent, 0), rl.NewVector3(0, gridExtent, 0), axisY)
	rl.DrawLine3D(rl.NewVector3(0, y, -gridExtent), rl.NewVector3(0, y, gridExtent), axisZ)
}
