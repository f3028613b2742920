// Package gizmo is the interactive transform widget: three axis handles drawn at the
// attached pose that translate, rotate or scale it when dragged with the left mouse button.
package gizmo

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-viewer/internal/controller"
	"shape-viewer/internal/pose"
)

const (
	handleLength = 3.5
	handleRadius = 0.06
	tipSize      = 0.35
	pickRadius   = 12 // pixels from the handle's screen segment

	rotateSpeed = 0.01  // radians per pixel
	scaleSpeed  = 0.005 // scale fraction per pixel
)

var axisColors = [3]rl.Color{
	rl.NewColor(220, 60, 60, 255),
	rl.NewColor(60, 200, 60, 255),
	rl.NewColor(60, 90, 220, 255),
}

var activeColor = rl.NewColor(255, 220, 40, 255)

// Gizmo implements controller.Gizmo.
type Gizmo struct {
	target   *pose.Pose
	mode     controller.TransformMode
	camera   *rl.Camera3D
	dragAxis int // -1 when idle
	hover    int
}

// New returns a detached gizmo that picks handles through camera.
func New(camera *rl.Camera3D) *Gizmo {
	return &Gizmo{camera: camera, dragAxis: -1, hover: -1}
}

// Attach points the gizmo at target.
func (g *Gizmo) Attach(target *pose.Pose) {
	g.target = target
	g.dragAxis = -1
}

// Detach hides the gizmo and ends any drag.
func (g *Gizmo) Detach() {
	g.target = nil
	g.dragAxis = -1
	g.hover = -1
}

// SetMode sets what dragging a handle does.
func (g *Gizmo) SetMode(mode controller.TransformMode) {
	g.mode = mode
}

// Dragging reports whether a handle is being dragged.
func (g *Gizmo) Dragging() bool {
	return g.dragAxis >= 0
}

func (g *Gizmo) active() bool {
	return g.target != nil && g.mode != controller.TransformNone
}

func axisVector(axis int) rl.Vector3 {
	var v rl.Vector3
	switch axis {
	case 0:
		v.X = 1
	case 1:
		v.Y = 1
	default:
		v.Z = 1
	}
	return v
}

func (g *Gizmo) origin() rl.Vector3 {
	return rl.NewVector3(g.target.Position.X, g.target.Position.Y, g.target.Position.Z)
}

// screenAxis returns the handle's start and end in screen space.
func (g *Gizmo) screenAxis(axis int) (rl.Vector2, rl.Vector2) {
	o := g.origin()
	tip := rl.Vector3Add(o, rl.Vector3Scale(axisVector(axis), handleLength))
	return rl.GetWorldToScreen(o, *g.camera), rl.GetWorldToScreen(tip, *g.camera)
}

// pick returns the axis whose handle is under the mouse, or -1.
func (g *Gizmo) pick(mouse rl.Vector2) int {
	best, bestDist := -1, float32(pickRadius)
	for axis := 0; axis < 3; axis++ {
		a, b := g.screenAxis(axis)
		if d := segmentDistance(mouse, a, b); d <= bestDist {
			best, bestDist = axis, d
		}
	}
	return best
}

func segmentDistance(p, a, b rl.Vector2) float32 {
	ab := rl.Vector2Subtract(b, a)
	l2 := rl.Vector2LengthSqr(ab)
	if l2 == 0 {
		return rl.Vector2Distance(p, a)
	}
	t := rl.Vector2DotProduct(rl.Vector2Subtract(p, a), ab) / l2
	t = rl.Clamp(t, 0, 1)
	return rl.Vector2Distance(p, rl.Vector2Add(a, rl.Vector2Scale(ab, t)))
}

// Update handles hover, drag start, drag and release. Call once per frame before the camera
// controls so a drag on a handle does not also orbit the camera.
func (g *Gizmo) Update() {
	if !g.active() {
		g.dragAxis, g.hover = -1, -1
		return
	}
	mouse := rl.GetMousePosition()
	if g.dragAxis < 0 {
		g.hover = g.pick(mouse)
		if g.hover >= 0 && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			g.dragAxis = g.hover
		}
		return
	}
	if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		g.dragAxis = -1
		return
	}
	delta := rl.GetMouseDelta()
	if delta.X == 0 && delta.Y == 0 {
		return
	}
	a, b := g.screenAxis(g.dragAxis)
	dir := rl.Vector2Subtract(b, a)
	pixels := rl.Vector2Length(dir)
	if pixels < 1 {
		return
	}
	// mouse motion along the handle's on-screen direction
	along := rl.Vector2DotProduct(delta, rl.Vector2Scale(dir, 1/pixels))
	var amount float32
	switch g.mode {
	case controller.Translate:
		amount = along * handleLength / pixels
	case controller.Rotate:
		amount = along * rotateSpeed
	case controller.Scale:
		amount = along * scaleSpeed
	}
	g.mode.ApplyDrag(g.target, g.dragAxis, amount)
}

// Draw draws the handles at the target. Call inside BeginMode3D.
func (g *Gizmo) Draw() {
	if !g.active() {
		return
	}
	o := g.origin()
	rl.DisableDepthTest()
	for axis := 0; axis < 3; axis++ {
		c := axisColors[axis]
		if axis == g.dragAxis || (g.dragAxis < 0 && axis == g.hover) {
			c = activeColor
		}
		v := axisVector(axis)
		tip := rl.Vector3Add(o, rl.Vector3Scale(v, handleLength))
		rl.DrawCylinderEx(o, tip, handleRadius, handleRadius, 6, c)
		switch g.mode {
		case controller.Translate:
			end := rl.Vector3Add(tip, rl.Vector3Scale(v, tipSize*1.5))
			rl.DrawCylinderEx(tip, end, tipSize/2, 0, 12, c)
		case controller.Rotate:
			rl.DrawSphere(tip, tipSize/2, c)
		case controller.Scale:
			rl.DrawCube(tip, tipSize, tipSize, tipSize, c)
		}
	}
	rl.EnableDepthTest()
}
