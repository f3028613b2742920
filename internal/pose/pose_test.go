package pose

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	p := Identity()
	assert.Equal(t, Vec3{}, p.Position)
	assert.Equal(t, Vec3{}, p.Rotation)
	assert.Equal(t, Vec3{1, 1, 1}, p.Scale)

	at := At(1, 2, 3)
	assert.Equal(t, Vec3{1, 2, 3}, at.Position)
	assert.Equal(t, Vec3{1, 1, 1}, at.Scale)
}

func TestAxis(t *testing.T) {
	var v Vec3
	v.SetAxis(0, 1)
	v.SetAxis(1, 2)
	v.SetAxis(2, 3)
	assert.Equal(t, [3]float32{1, 2, 3}, v.Array())
	for i, want := range []float32{1, 2, 3} {
		assert.Equal(t, want, v.Axis(i))
	}
}

func TestApproxEqual(t *testing.T) {
	a := At(1, 1.5, -2)
	b := a
	b.Rotation.Y = 1e-7
	assert.True(t, a.ApproxEqual(b, 1e-6))
	b.Scale.X = 1.01
	assert.False(t, a.ApproxEqual(b, 1e-6))
}

func TestRotate(t *testing.T) {
	const tol = 1e-5
	half := math32.Pi / 2
	assert.True(t, Vec3{1, 0, 0}.Rotate(Vec3{Z: half}).ApproxEqual(Vec3{0, 1, 0}, tol))
	assert.True(t, Vec3{0, 0, 1}.Rotate(Vec3{Y: half}).ApproxEqual(Vec3{1, 0, 0}, tol))
	assert.True(t, Vec3{0, 1, 0}.Rotate(Vec3{X: half}).ApproxEqual(Vec3{0, 0, 1}, tol))
	// Z is applied before X
	assert.True(t, Vec3{1, 0, 0}.Rotate(Vec3{X: half, Z: half}).ApproxEqual(Vec3{0, 0, 1}, tol))
}

func TestApply(t *testing.T) {
	p := Pose{
		Position: Vec3{1, 2, 3},
		Rotation: Vec3{Y: math32.Pi},
		Scale:    Vec3{2, 1, 1},
	}
	assert.True(t, p.Apply(Vec3{1, 1, 0}).ApproxEqual(Vec3{-1, 3, 3}, 1e-5))
	assert.Equal(t, Vec3{4, 5, 6}, At(3, 3, 3).Apply(Vec3{1, 2, 3}))
}

func TestNormalize(t *testing.T) {
	assert.InDelta(t, 1, Vec3{3, 4, 12}.Normalize().Length(), 1e-6)
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
	assert.Equal(t, Vec3{2, 0, -1}, Vec3{3, 1, 1}.Sub(Vec3{1, 1, 2}))
}
