// Package controller owns the viewer's single current object. It swaps geometry, render mode
// and texture while preserving the pose, drives the scripted animation, and keeps the
// transform gizmo and the animation from fighting over the pose.
//
// All methods run on the frame-loop thread. Texture decoding happens elsewhere; its results
// come back through OnTextureLoaded.
package controller

import (
	"context"
	"errors"

	"shape-viewer/internal/animation"
	"shape-viewer/internal/drawable"
	"shape-viewer/internal/pose"
	"shape-viewer/internal/shape"
	"shape-viewer/internal/texture"
)

// ErrStaleTexture is returned by OnTextureLoaded for a result that a newer request superseded.
var ErrStaleTexture = errors.New("texture result superseded by a newer request")

// Scene receives the current drawable. Remove is only called with a drawable previously added.
type Scene interface {
	Add(d *drawable.Drawable)
	Remove(d *drawable.Drawable)
}

// TextureLoader starts an asynchronous texture decode. Results are returned to OnTextureLoaded.
type TextureLoader interface {
	Load(ctx context.Context, req texture.Request)
}

// Options are the initial settings.
type Options struct {
	Geometry  shape.Kind
	Mode      drawable.Mode
	Texture   texture.Settings
	Animation animation.State
	AssetsDir string
	Loader    TextureLoader // nil disables texture loading
}

// DefaultOptions returns a solid box with the crate texture and a stopped up/down animation.
func DefaultOptions() Options {
	return Options{
		Geometry:  shape.Box,
		Mode:      drawable.Solid,
		Texture:   texture.DefaultSettings(),
		Animation: animation.DefaultState(),
		AssetsDir: "assets",
	}
}

// Controller is the object state machine: idle, animating or transforming.
type Controller struct {
	scene  Scene
	gizmo  Gizmo
	loader TextureLoader
	assets string

	current  *drawable.Drawable
	shape    shape.Descriptor
	material *drawable.Material // shared by line and solid drawables

	rest      pose.Pose
	anim      animation.State
	transform TransformMode

	tex      texture.Settings
	texPath  string
	texToken uint64
}

// New builds the default drawable from opts, places it at its rest height, adds it to scene
// and snapshots the rest pose. gizmo may be nil when there is no interactive widget.
func New(scene Scene, gizmo Gizmo, opts Options) *Controller {
	c := &Controller{
		scene:    scene,
		gizmo:    gizmo,
		loader:   opts.Loader,
		assets:   opts.AssetsDir,
		shape:    shape.Build(opts.Geometry),
		material: drawable.NewStandardMaterial(opts.Texture),
		anim:     opts.Animation,
		tex:      opts.Texture,
	}
	c.anim.Playing = false
	c.current = drawable.Build(opts.Mode, c.material)
	c.current.SetShape(c.shape)
	c.current.Pose.Position.Y = shape.RestHeight(c.shape)
	scene.Add(c.current)
	c.rest = c.current.Pose
	return c
}

func (c *Controller) mustCurrent() *drawable.Drawable {
	if c == nil || c.current == nil {
		panic("controller: used before initialization")
	}
	return c.current
}

// Current returns the drawable in the scene.
func (c *Controller) Current() *drawable.Drawable {
	return c.mustCurrent()
}

// Shape returns the current shape descriptor.
func (c *Controller) Shape() shape.Descriptor {
	return c.shape
}

// Material returns the shared object material (not the point-sprite material).
func (c *Controller) Material() *drawable.Material {
	return c.material
}

// Animation returns the animation settings.
func (c *Controller) Animation() animation.State {
	return c.anim
}

// TransformMode returns the active gizmo mode.
func (c *Controller) TransformMode() TransformMode {
	return c.transform
}

// RestPose returns the pose captured when the animation last started.
func (c *Controller) RestPose() pose.Pose {
	return c.rest
}

// TextureSettings returns the texture options.
func (c *Controller) TextureSettings() texture.Settings {
	return c.tex
}

// OnGeometryChange replaces the shape and drops the object to the new rest height.
// Animation and transform state are left alone.
func (c *Controller) OnGeometryChange(kind shape.Kind) {
	cur := c.mustCurrent()
	c.scene.Remove(cur)
	c.shape = shape.Build(kind)
	cur.SetShape(c.shape)
	c.scene.Add(cur)
	cur.Pose.Position.Y = shape.RestHeight(c.shape)
}

// OnModeChange replaces the drawable with one of the given mode, carrying over the shape
// and the full pose. An attached gizmo follows the new drawable.
func (c *Controller) OnModeChange(mode drawable.Mode) {
	old := c.mustCurrent()
	p := old.Pose
	next := drawable.Build(mode, c.material)
	next.SetShape(c.shape)
	next.Pose = p
	c.scene.Remove(old)
	c.scene.Add(next)
	c.current = next
	if c.transform != TransformNone && c.gizmo != nil {
		c.gizmo.Attach(&next.Pose)
	}
}

// OnTransformModeChange attaches the gizmo in the given mode, or detaches it for TransformNone.
// Entering a transform mode stops a playing animation first, restoring the rest pose.
func (c *Controller) OnTransformModeChange(mode TransformMode) {
	cur := c.mustCurrent()
	if mode == TransformNone {
		c.transform = TransformNone
		if c.gizmo != nil {
			c.gizmo.Detach()
		}
		return
	}
	if c.anim.Playing {
		c.OnAnimationPlayToggle(false)
	}
	c.transform = mode
	if c.gizmo != nil {
		c.gizmo.SetMode(mode)
		c.gizmo.Attach(&cur.Pose)
	}
}

// OnAnimationPlayToggle starts or stops the animation. Starting snapshots the rest pose and
// cancels any transform mode; stopping restores the rest pose exactly. Setting the current
// value again does nothing.
func (c *Controller) OnAnimationPlayToggle(play bool) {
	cur := c.mustCurrent()
	if play == c.anim.Playing {
		return
	}
	if play {
		if c.transform != TransformNone {
			c.transform = TransformNone
			if c.gizmo != nil {
				c.gizmo.Detach()
			}
		}
		c.rest = cur.Pose
	} else {
		cur.Pose = c.rest
	}
	c.anim.Playing = play
}

// SetMotion selects the scripted motion. It takes effect on the next Tick.
func (c *Controller) SetMotion(m animation.Motion) {
	c.anim.Motion = m
}

// SetSpeed sets the animation speed.
func (c *Controller) SetSpeed(speed float32) {
	c.anim.Speed = speed
}

// Tick advances the animation to nowMillis. It does nothing while stopped.
func (c *Controller) Tick(nowMillis float64) {
	cur := c.mustCurrent()
	if !c.anim.Playing {
		return
	}
	cur.Pose = animation.Apply(c.rest, c.anim.Motion, c.anim.Speed, nowMillis)
}

// ResetPose puts the object back at the origin on its rest height with no rotation and unit scale.
func (c *Controller) ResetPose() {
	cur := c.mustCurrent()
	cur.Pose = pose.At(0, shape.RestHeight(c.shape), 0)
}
