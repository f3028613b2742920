// Package lights holds the viewer's two directional lights as plain settings.
// The scene reads them every frame; the panel edits them.
package lights

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"shape-viewer/internal/pose"
)

// Count is the number of directional lights in the scene.
const Count = 2

// Limits the panel enforces.
const (
	MaxIntensity = 10
	MaxPosition  = 20
)

// WarmWhite is the default light color, rgb(255, 220, 180).
var WarmWhite = color.RGBA{255, 220, 180, 255}

// Directional is a light shining from Position toward the origin.
type Directional struct {
	Intensity  float32
	Position   pose.Vec3
	Color      color.RGBA
	CastShadow bool
}

// Defaults returns the two warm lights above opposite corners of the ground.
func Defaults() [Count]Directional {
	return [Count]Directional{
		{Intensity: 1, Position: pose.Vec3{X: -5, Y: 10, Z: -5}, Color: WarmWhite, CastShadow: true},
		{Intensity: 1, Position: pose.Vec3{X: 5, Y: 10, Z: 5}, Color: WarmWhite, CastShadow: true},
	}
}

// ParseHex parses #RRGGBB, #RGB or 0xRRGGBB into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(h, "#"):
		h = h[1:]
	case strings.HasPrefix(strings.ToLower(h), "0x"):
		h = h[2:]
	}
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Direction returns the unit direction the light travels, from Position toward the origin.
func (d Directional) Direction() pose.Vec3 {
	return pose.Vec3{}.Sub(d.Position).Normalize()
}

// CastsShadow reports whether the light contributes a ground shadow: shadows are enabled,
// it has some intensity, and it travels downward.
func (d Directional) CastsShadow() bool {
	return d.CastShadow && d.Intensity > 0 && d.Direction().Y < 0
}

// ShadowPoint projects p along the light direction onto the plane y = groundY. It reports
// false when the light does not travel downward or p is already below the plane.
func (d Directional) ShadowPoint(p pose.Vec3, groundY float32) (pose.Vec3, bool) {
	dir := d.Direction()
	if dir.Y >= 0 || p.Y < groundY {
		return pose.Vec3{}, false
	}
	t := (groundY - p.Y) / dir.Y
	return p.Add(dir.Mul(t)), true
}

// ShadowProjection returns the row-major 4x4 matrix that flattens world points onto the
// plane y = groundY+lift along the light direction. ok is false when the light does not
// travel downward.
func (d Directional) ShadowProjection(groundY, lift float32) (m [16]float32, ok bool) {
	dir := d.Direction()
	if dir.Y >= 0 {
		return m, false
	}
	kx, kz := dir.X/dir.Y, dir.Z/dir.Y
	m = [16]float32{
		1, -kx, 0, kx * groundY,
		0, 0, 0, groundY + lift,
		0, -kz, 1, kz * groundY,
		0, 0, 0, 1,
	}
	return m, true
}
