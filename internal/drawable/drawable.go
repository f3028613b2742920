// Package drawable wraps a shape and a material into something the scene can render
// as points, lines or a filled surface.
package drawable

import (
	"fmt"
	"image/color"
	"strings"
	"sync/atomic"

	"shape-viewer/internal/pose"
	"shape-viewer/internal/shape"
	"shape-viewer/internal/texture"
)

// Mode is the rendering method.
type Mode int

const (
	Points Mode = iota
	Line
	Solid
)

var modeNames = [...]string{Points: "Point", Line: "Line", Solid: "Solid"}

// Modes returns all modes in panel order.
func Modes() []Mode {
	return []Mode{Points, Line, Solid}
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Next returns the mode after m, wrapping around.
func (m Mode) Next() Mode {
	return Mode((int(m) + 1) % len(modeNames))
}

// ParseMode accepts "Point", "Line", "Solid" (case-insensitive); "points" and "wireframe" are aliases.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "point", "points":
		return Points, nil
	case "line", "lines", "wireframe":
		return Line, nil
	case "solid", "mesh":
		return Solid, nil
	}
	return 0, fmt.Errorf("unknown method %q (use Point, Line or Solid)", name)
}

// Blending is how a material's fragments combine with the framebuffer.
type Blending int

const (
	NormalBlending Blending = iota
	AdditiveBlending
)

// Material is the surface description shared by line and solid drawables.
type Material struct {
	Color           color.RGBA
	Size            float32 // point size in pixels; points only
	SizeAttenuation bool
	Blending        Blending
	Transparent     bool
	Map             *texture.Map
}

// NewStandardMaterial returns a white, opaque material with an empty texture map from s.
func NewStandardMaterial(s texture.Settings) *Material {
	return &Material{
		Color:           color.RGBA{255, 255, 255, 255},
		SizeAttenuation: true,
		Map:             texture.NewMap(s),
	}
}

// PointMaterial returns the fixed point-sprite material: white, 3px, additive,
// transparent and constant screen size.
func PointMaterial() *Material {
	return &Material{
		Color:       color.RGBA{255, 255, 255, 255},
		Size:        3,
		Blending:    AdditiveBlending,
		Transparent: true,
	}
}

var nextID atomic.Uint64

// Drawable binds a shape and a material to a pose. Shape is nil until one is attached.
type Drawable struct {
	ID         uint64
	Mode       Mode
	Shape      *shape.Descriptor
	Material   *Material
	Pose       pose.Pose
	CastShadow bool
}

// Build creates a drawable for mode. Points ignores material and uses PointMaterial;
// Line and Solid keep the given material pointer so texture updates are shared.
func Build(mode Mode, material *Material) *Drawable {
	d := &Drawable{
		ID:         nextID.Add(1),
		Mode:       mode,
		Material:   material,
		Pose:       pose.Identity(),
		CastShadow: true,
	}
	if mode == Points {
		d.Material = PointMaterial()
	}
	return d
}

// SetShape attaches a copy of s.
func (d *Drawable) SetShape(s shape.Descriptor) {
	d.Shape = &s
}
