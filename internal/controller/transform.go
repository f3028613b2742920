package controller

import (
	"fmt"
	"strings"

	"shape-viewer/internal/pose"
)

// TransformMode selects what the transform gizmo does when dragged.
type TransformMode int

const (
	TransformNone TransformMode = iota
	Translate
	Rotate
	Scale
)

var transformNames = [...]string{
	TransformNone: "none",
	Translate:     "translate",
	Rotate:        "rotate",
	Scale:         "scale",
}

func (m TransformMode) String() string {
	if m < 0 || int(m) >= len(transformNames) {
		return fmt.Sprintf("TransformMode(%d)", int(m))
	}
	return transformNames[m]
}

// ParseTransformMode accepts none, translate, rotate or scale (case-insensitive).
func ParseTransformMode(s string) (TransformMode, error) {
	n := strings.TrimSpace(s)
	for i, name := range transformNames {
		if strings.EqualFold(n, name) {
			return TransformMode(i), nil
		}
	}
	return TransformNone, fmt.Errorf("unknown affine mode %q (use none, translate, rotate or scale)", s)
}

// Gizmo is the interactive transform widget. Attach points it at the pose it edits;
// the pose must stay valid until Detach or the next Attach.
type Gizmo interface {
	Attach(target *pose.Pose)
	Detach()
	SetMode(mode TransformMode)
}

// MinScale keeps a dragged scale from collapsing or mirroring the object.
const MinScale = 0.01

// ApplyDrag moves target along one axis (0=X, 1=Y, 2=Z) by amount according to mode:
// translate adds world units, rotate adds radians, scale multiplies by 1+amount.
func (m TransformMode) ApplyDrag(target *pose.Pose, axis int, amount float32) {
	switch m {
	case Translate:
		target.Position.SetAxis(axis, target.Position.Axis(axis)+amount)
	case Rotate:
		target.Rotation.SetAxis(axis, target.Rotation.Axis(axis)+amount)
	case Scale:
		s := target.Scale.Axis(axis) * (1 + amount)
		if s < MinScale {
			s = MinScale
		}
		target.Scale.SetAxis(axis, s)
	}
}
