package animation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-viewer/internal/pose"
)

const tol = 1e-5

func restPose() pose.Pose {
	p := pose.At(1, 2, 3)
	p.Rotation = pose.Vec3{X: 0.1, Y: 0.2, Z: 0.3}
	p.Scale = pose.Vec3{X: 2, Y: 2, Z: 2}
	return p
}

func TestRotateYAccumulatesLinearly(t *testing.T) {
	rest := restPose()
	got := Apply(rest, RotateY, 1000, 0)
	assert.InDelta(t, rest.Rotation.Y, got.Rotation.Y, tol)

	got = Apply(rest, RotateY, 1000, 1000)
	assert.InDelta(t, rest.Rotation.Y+1000, got.Rotation.Y, 1e-2)

	got = Apply(rest, RotateY, 1, 1000)
	assert.InDelta(t, rest.Rotation.Y+1, got.Rotation.Y, tol)

	got = Apply(rest, RotateY, 1, 100000)
	assert.InDelta(t, rest.Rotation.Y+100, got.Rotation.Y, 1e-3, "not wrapped")
}

func TestUpDownPeak(t *testing.T) {
	rest := restPose()
	got := Apply(rest, UpDown, 1000, math.Pi/2)
	assert.InDelta(t, rest.Position.Y+0.5, got.Position.Y, tol)
	assert.Equal(t, rest.Position.X, got.Position.X)
	assert.Equal(t, rest.Position.Z, got.Position.Z)
	assert.Equal(t, rest.Rotation, got.Rotation)
}

func TestApplyMovesOnlyItsAxes(t *testing.T) {
	rest := restPose()
	// phase = 0.7 rad
	const now, speed = 700.0, float32(1)
	s, c := float32(math.Sin(0.7)), float32(math.Cos(0.7))

	tests := []struct {
		motion Motion
		want   func(p *pose.Pose)
	}{
		{UpDown, func(p *pose.Pose) { p.Position.Y += s * 0.5 }},
		{LeftRight, func(p *pose.Pose) { p.Position.X += s * 0.5 }},
		{ForwardBackward, func(p *pose.Pose) { p.Position.Z += s * 0.5 }},
		{RotateX, func(p *pose.Pose) { p.Rotation.X += 0.7 }},
		{RotateY, func(p *pose.Pose) { p.Rotation.Y += 0.7 }},
		{RotateZ, func(p *pose.Pose) { p.Rotation.Z += 0.7 }},
		{OrbitClockwise, func(p *pose.Pose) {
			p.Position.X += c * 0.5
			p.Position.Z += s * 0.5
		}},
		{OrbitCounterclockwise, func(p *pose.Pose) {
			p.Position.X += s * 0.5
			p.Position.Z += c * 0.5
		}},
	}
	for _, tt := range tests {
		t.Run(tt.motion.String(), func(t *testing.T) {
			want := rest
			tt.want(&want)
			got := Apply(rest, tt.motion, speed, now)
			assert.True(t, want.ApproxEqual(got, tol), "want %+v got %+v", want, got)
		})
	}
}

func TestParseMotion(t *testing.T) {
	for _, m := range Motions() {
		got, err := ParseMotion(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := ParseMotion("rotate-y")
	require.NoError(t, err)
	assert.Equal(t, RotateY, got)
	got, err = ParseMotion("go_around_clockwise")
	require.NoError(t, err)
	assert.Equal(t, OrbitClockwise, got)

	_, err = ParseMotion("spin wildly")
	assert.Error(t, err)
}

func TestDefaultStateAndNext(t *testing.T) {
	s := DefaultState()
	assert.False(t, s.Playing)
	assert.Equal(t, UpDown, s.Motion)
	assert.Equal(t, float32(1), s.Speed)
	assert.Equal(t, UpDown, OrbitCounterclockwise.Next())
	assert.Len(t, Motions(), 8)
}
