// Package orbit is an orbit camera rig: the eye circles a target at a clamped distance.
package orbit

import (
	"github.com/chewxy/math32"

	"shape-viewer/internal/pose"
)

// Distance limits for zooming.
const (
	MinDistance = 1
	MaxDistance = 90
)

// polar angle is kept just off the poles so the up vector stays valid
const polarEpsilon = 1e-3

// Rig holds the orbit state in spherical coordinates around Target.
// Azimuth is measured around +Y from +Z; Polar from +Y.
type Rig struct {
	Target   pose.Vec3
	Distance float32
	Azimuth  float32
	Polar    float32
}

// New returns a rig whose eye starts at eye and looks at target.
func New(eye, target pose.Vec3) Rig {
	off := eye.Sub(target)
	r := Rig{Target: target, Distance: off.Length()}
	if r.Distance > 0 {
		r.Azimuth = math32.Atan2(off.X, off.Z)
		r.Polar = math32.Acos(clamp(off.Y/r.Distance, -1, 1))
	}
	r.Distance = clamp(r.Distance, MinDistance, MaxDistance)
	r.Polar = clamp(r.Polar, polarEpsilon, math32.Pi-polarEpsilon)
	return r
}

// Eye returns the camera position.
func (r Rig) Eye() pose.Vec3 {
	sp, cp := math32.Sincos(r.Polar)
	sa, ca := math32.Sincos(r.Azimuth)
	return r.Target.Add(pose.Vec3{X: sp * sa, Y: cp, Z: sp * ca}.Mul(r.Distance))
}

// Rotate moves the eye by the given azimuth and polar deltas in radians.
func (r *Rig) Rotate(dAzimuth, dPolar float32) {
	r.Azimuth += dAzimuth
	r.Polar = clamp(r.Polar+dPolar, polarEpsilon, math32.Pi-polarEpsilon)
}

// Zoom scales the distance by factor (below 1 moves closer), clamped to [MinDistance, MaxDistance].
func (r *Rig) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	r.Distance = clamp(r.Distance*factor, MinDistance, MaxDistance)
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
