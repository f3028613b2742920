package controller

import (
	"shape-viewer/internal/animation"
	"shape-viewer/internal/drawable"
	"shape-viewer/internal/pose"
	"shape-viewer/internal/shape"
	"shape-viewer/internal/texture"
)

// Snapshot is a read-only copy of the controller state for the settings overlay.
type Snapshot struct {
	Geometry  shape.Kind
	Mode      drawable.Mode
	Pose      pose.Pose
	Transform TransformMode
	Animation animation.State
	Texture   texture.Settings
}

// Snapshot copies the current state.
func (c *Controller) Snapshot() Snapshot {
	cur := c.mustCurrent()
	return Snapshot{
		Geometry:  c.shape.Kind,
		Mode:      cur.Mode,
		Pose:      cur.Pose,
		Transform: c.transform,
		Animation: c.anim,
		Texture:   c.tex,
	}
}
