package pose

import "github.com/chewxy/math32"

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul returns v scaled by s.
func (v Vec3) Mul(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Length returns the Euclidean length of v.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v with unit length, or v unchanged when it is zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// Rotate applies the Euler rotation r to v. Axes are applied Z first, then Y, then X,
// so the composed matrix is Rx·Ry·Rz.
func (v Vec3) Rotate(r Vec3) Vec3 {
	s, c := math32.Sincos(r.Z)
	v = Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
	s, c = math32.Sincos(r.Y)
	v = Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
	s, c = math32.Sincos(r.X)
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

// Apply maps a point from object space to world space: scale, rotate, then translate.
func (p Pose) Apply(v Vec3) Vec3 {
	v = Vec3{v.X * p.Scale.X, v.Y * p.Scale.Y, v.Z * p.Scale.Z}
	return v.Rotate(p.Rotation).Add(p.Position)
}
