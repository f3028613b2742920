// Package animation holds the scripted motions that oscillate or spin the current object around its rest pose.
package animation

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"shape-viewer/internal/pose"
)

// Amplitude is the world-space offset of the oscillating motions.
const Amplitude = 0.5

// DefaultSpeed is the initial speed; the phase advances speed/1000 radians per millisecond.
const DefaultSpeed = 1

// Motion is one of the scripted motions.
type Motion int

const (
	UpDown Motion = iota
	LeftRight
	ForwardBackward
	RotateX
	RotateY
	RotateZ
	OrbitClockwise
	OrbitCounterclockwise
)

var motionNames = [...]string{
	UpDown:                "go up and down",
	LeftRight:             "go left and right",
	ForwardBackward:       "go forward and backward",
	RotateX:               "rotate x",
	RotateY:               "rotate y",
	RotateZ:               "rotate z",
	OrbitClockwise:        "go around clockwise",
	OrbitCounterclockwise: "go around counterclockwise",
}

// Motions returns all motions in panel order.
func Motions() []Motion {
	out := make([]Motion, len(motionNames))
	for i := range out {
		out[i] = Motion(i)
	}
	return out
}

func (m Motion) String() string {
	if m < 0 || int(m) >= len(motionNames) {
		return fmt.Sprintf("Motion(%d)", int(m))
	}
	return motionNames[m]
}

// Next returns the motion after m, wrapping around.
func (m Motion) Next() Motion {
	return Motion((int(m) + 1) % len(motionNames))
}

// ParseMotion accepts a display name ("rotate y") or the same with dashes or underscores ("rotate-y").
func ParseMotion(name string) (Motion, error) {
	n := strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(name))
	for i, s := range motionNames {
		if strings.EqualFold(n, s) {
			return Motion(i), nil
		}
	}
	return 0, fmt.Errorf("unknown animation type %q", name)
}

// State is the animation settings shown in the panel.
type State struct {
	Playing bool
	Motion  Motion
	Speed   float32
}

// DefaultState returns a stopped up/down animation at DefaultSpeed.
func DefaultState() State {
	return State{Motion: UpDown, Speed: DefaultSpeed}
}

// Phase returns the motion phase at nowMillis. It grows without bound.
func Phase(nowMillis float64, speed float32) float32 {
	return float32(nowMillis * float64(speed) / 1000)
}

// Apply returns rest with the motion's axes offset for the given time.
// Only the axes the motion drives change; everything else stays at rest.
func Apply(rest pose.Pose, m Motion, speed float32, nowMillis float64) pose.Pose {
	phase := Phase(nowMillis, speed)
	out := rest
	switch m {
	case UpDown:
		out.Position.Y = rest.Position.Y + math32.Sin(phase)*Amplitude
	case LeftRight:
		out.Position.X = rest.Position.X + math32.Sin(phase)*Amplitude
	case ForwardBackward:
		out.Position.Z = rest.Position.Z + math32.Sin(phase)*Amplitude
	case RotateX:
		out.Rotation.X = rest.Rotation.X + phase
	case RotateY:
		out.Rotation.Y = rest.Rotation.Y + phase
	case RotateZ:
		out.Rotation.Z = rest.Rotation.Z + phase
	case OrbitClockwise:
		out.Position.X = rest.Position.X + math32.Cos(phase)*Amplitude
		out.Position.Z = rest.Position.Z + math32.Sin(phase)*Amplitude
	case OrbitCounterclockwise:
		out.Position.X = rest.Position.X + math32.Sin(phase)*Amplitude
		out.Position.Z = rest.Position.Z + math32.Cos(phase)*Amplitude
	}
	return out
}
