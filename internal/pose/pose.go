package pose

import "github.com/chewxy/math32"

// Vec3 is a position, Euler rotation (radians) or scale triple.
type Vec3 struct {
	X, Y, Z float32
}

// Pose is the placement of the current object: position, Euler rotation in radians, and per-axis scale.
type Pose struct {
	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

// Identity returns a pose at the origin with no rotation and unit scale.
func Identity() Pose {
	return Pose{Scale: Vec3{1, 1, 1}}
}

// At returns an identity pose translated to (x, y, z).
func At(x, y, z float32) Pose {
	p := Identity()
	p.Position = Vec3{x, y, z}
	return p
}

// Array returns v as [x, y, z], the layout the renderer and inspector use.
func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// Axis returns component i (0=X, 1=Y, 2=Z).
func (v Vec3) Axis(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// SetAxis sets component i (0=X, 1=Y, 2=Z).
func (v *Vec3) SetAxis(i int, f float32) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	default:
		v.Z = f
	}
}

// ApproxEqual reports whether every component of v and o differ by at most tol.
func (v Vec3) ApproxEqual(o Vec3, tol float32) bool {
	return math32.Abs(v.X-o.X) <= tol && math32.Abs(v.Y-o.Y) <= tol && math32.Abs(v.Z-o.Z) <= tol
}

// ApproxEqual reports whether position, rotation and scale all match within tol.
func (p Pose) ApproxEqual(o Pose, tol float32) bool {
	return p.Position.ApproxEqual(o.Position, tol) &&
		p.Rotation.ApproxEqual(o.Rotation, tol) &&
		p.Scale.ApproxEqual(o.Scale, tol)
}
